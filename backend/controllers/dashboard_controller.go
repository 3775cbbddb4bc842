package controllers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"eduvibe/backend/config"
	"eduvibe/backend/models"
	"eduvibe/backend/store"
	"eduvibe/backend/utils"
)

type DashboardController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewDashboardController(st store.Store, cfg *config.Config) *DashboardController {
	return &DashboardController{Store: st, Cfg: cfg}
}

func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	user, err := dc.Store.UserByID(userID)
	if err != nil {
		return utils.FailStore(c, err, "User not found.")
	}

	enrollments, err := dc.Store.EnrollmentsByUser(userID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	enrolledCourses := make([]fiber.Map, 0, len(enrollments))
	for _, enr := range enrollments {
		course, err := dc.Store.CourseByID(enr.CourseID)
		if err != nil {
			course = nil
		}
		enrolledCourses = append(enrolledCourses, fiber.Map{
			"enrollment": enr,
			"course":     course,
		})
	}

	history, err := dc.Store.SubmissionsByUser(userID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	totalEnrolled, avgProgress, completed := enrollmentStats(enrollments)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user": user,
		"stats": fiber.Map{
			"totalEnrolled": totalEnrolled,
			"avgProgress":   avgProgress,
			"completed":     completed,
			"streak":        streakDays(enrollments, history, time.Now().UTC()),
			"quizzesTaken":  len(history),
		},
		"enrolledCourses": enrolledCourses,
		"quizHistory":     history,
	})
}

func (dc *DashboardController) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	enrollments, err := dc.Store.EnrollmentsByUser(userID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	totalEnrolled, avgProgress, completed := enrollmentStats(enrollments)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"stats": fiber.Map{
			"totalEnrolled": totalEnrolled,
			"avgProgress":   avgProgress,
			"completed":     completed,
		},
	})
}

func enrollmentStats(enrollments []models.Enrollment) (totalEnrolled, avgProgress, completed int) {
	totalEnrolled = len(enrollments)
	if totalEnrolled == 0 {
		return 0, 0, 0
	}

	sum := 0
	for _, e := range enrollments {
		sum += e.Progress
		if e.Progress == 100 {
			completed++
		}
	}
	avgProgress = int(math.Round(float64(sum) / float64(totalEnrolled)))
	return totalEnrolled, avgProgress, completed
}

// streakDays counts consecutive calendar days ending at now on which the user
// recorded any activity: enrolling, updating progress, or submitting a quiz.
func streakDays(enrollments []models.Enrollment, history []models.QuizSubmission, now time.Time) int {
	active := make(map[string]bool)
	day := func(t time.Time) string { return t.UTC().Format("2006-01-02") }

	for _, e := range enrollments {
		active[day(e.EnrolledAt)] = true
		if e.LastUpdated != nil {
			active[day(*e.LastUpdated)] = true
		}
	}
	for _, sub := range history {
		active[day(sub.SubmittedAt)] = true
	}

	streak := 0
	for d := now; active[day(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
