package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"eduvibe/backend/config"
	"eduvibe/backend/store"
	"eduvibe/backend/utils"
)

type CoursesController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewCoursesController(st store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: st, Cfg: cfg}
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Store.Courses(c.Query("category"))
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"total":   len(courses),
		"courses": courses,
	})
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.Store.CourseByID(c.Params("id"))
	if err != nil {
		return utils.FailStore(c, err, "Course not found.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": course})
}

func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	course, err := cc.Store.CourseByID(c.Params("id"))
	if err != nil {
		return utils.FailStore(c, err, "Course not found.")
	}

	enrollment, err := cc.Store.Enroll(userID, course.ID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"message":    fmt.Sprintf("Successfully enrolled in %q!", course.Title),
		"enrollment": enrollment,
	})
}

func (cc *CoursesController) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	enrollment, err := cc.Store.Enrollment(userID, c.Params("id"))
	if err != nil {
		return utils.FailStore(c, err, "Not enrolled in this course.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"progress": enrollment})
}

func (cc *CoursesController) UpdateProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	// Both fields are optional; absent fields leave the stored value alone.
	var input struct {
		Progress      *int `json:"progress"`
		CurrentLesson *int `json:"currentLesson"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse JSON.")
	}

	enrollment, err := cc.Store.UpdateEnrollment(userID, c.Params("id"), input.Progress, input.CurrentLesson)
	if err != nil {
		return utils.FailStore(c, err, "Not enrolled in this course.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message":  "Progress updated.",
		"progress": enrollment,
	})
}
