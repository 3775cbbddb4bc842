package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizSubmission is immutable once created; a user may submit the same
// course's quiz any number of times, each attempt producing a new record.
type QuizSubmission struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"index" json:"userId"`
	CourseID    string         `json:"courseId"`
	CourseTitle string         `json:"courseTitle"`
	Correct     int            `json:"correct"`
	Total       int            `json:"total"`
	Score       int            `json:"score"`
	Passed      bool           `json:"passed"`
	Breakdown   datatypes.JSON `json:"breakdown"`
	SubmittedAt time.Time      `gorm:"index" json:"submittedAt"`
}

// AnswerCheck is one entry of the per-question breakdown. Correct carries the
// expected choice from the answer key.
type AnswerCheck struct {
	Submitted string `json:"submitted"`
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"isCorrect"`
}
