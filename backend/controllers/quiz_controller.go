package controllers

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"eduvibe/backend/config"
	"eduvibe/backend/models"
	"eduvibe/backend/store"
	"eduvibe/backend/utils"
)

type QuizController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewQuizController(st store.Store, cfg *config.Config) *QuizController {
	return &QuizController{Store: st, Cfg: cfg}
}

const passingScore = 70

func (qc *QuizController) Submit(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	var input struct {
		CourseID string            `json:"courseId"`
		Answers  map[string]string `json:"answers"`
	}
	if err := c.BodyParser(&input); err != nil || input.CourseID == "" || input.Answers == nil {
		return utils.Fail(c, fiber.StatusBadRequest, "courseId and answers object are required.")
	}

	course, err := qc.Store.CourseByID(input.CourseID)
	if err != nil {
		return utils.FailStore(c, err, "Course not found.")
	}

	key := qc.Store.AnswerKey(course.ID)
	correct, total, score, passed, breakdown := scoreQuiz(key, input.Answers)

	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	submission := models.QuizSubmission{
		ID:          uuid.NewString(),
		UserID:      userID,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Correct:     correct,
		Total:       total,
		Score:       score,
		Passed:      passed,
		Breakdown:   breakdownJSON,
		SubmittedAt: time.Now().UTC(),
	}
	if err := qc.Store.CreateSubmission(&submission); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	message := fmt.Sprintf("You scored %d%%. A score of %d%% or above is required to pass.",
		score, passingScore)
	if passed {
		message = fmt.Sprintf("Congratulations! You scored %d%% and passed.", score)
	}

	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"message": message,
		"result":  submission,
	})
}

func (qc *QuizController) History(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	history, err := qc.Store.SubmissionsByUser(userID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"total":   len(history),
		"history": history,
	})
}

// scoreQuiz checks the submitted answers against the course answer key. The
// question count comes from the key, falling back to the submission when the
// course has no key.
func scoreQuiz(key, answers map[string]string) (correct, total, score int, passed bool, breakdown map[string]models.AnswerCheck) {
	total = len(key)
	if total == 0 {
		total = len(answers)
	}

	breakdown = make(map[string]models.AnswerCheck, len(answers))
	for q, answer := range answers {
		isCorrect := key[q] == answer && key[q] != ""
		if isCorrect {
			correct++
		}
		breakdown[q] = models.AnswerCheck{
			Submitted: answer,
			Correct:   key[q],
			IsCorrect: isCorrect,
		}
	}

	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}
	passed = score >= passingScore
	return correct, total, score, passed, breakdown
}
