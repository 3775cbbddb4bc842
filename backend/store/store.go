// Package store holds the application's data access layer. The interface is
// injectable so tests can run against isolated fixtures instead of sharing
// process-wide state.
package store

import (
	"errors"

	"eduvibe/backend/models"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("duplicate record")
	ErrNotEnrolled = errors.New("not enrolled")
)

type Store interface {
	// Users. CreateUser fails with ErrConflict when the normalized email is
	// already taken.
	CreateUser(user *models.User) error
	UserByEmail(email string) (*models.User, error)
	UserByID(id string) (*models.User, error)

	// Catalog, read-only after the startup seed. Courses returns the dataset
	// in insertion order; category filters case-insensitively, with "" and
	// "All" meaning unfiltered.
	Courses(category string) ([]models.Course, error)
	CourseByID(id string) (*models.Course, error)

	// AnswerKey returns the fixed questionId -> expected choice map for a
	// course, or nil when the course has no quiz.
	AnswerKey(courseID string) map[string]string

	// Enrollments. Enroll is idempotent: the existing record is returned
	// when the (user, course) pair already exists.
	Enroll(userID, courseID string) (*models.Enrollment, error)
	Enrollment(userID, courseID string) (*models.Enrollment, error)
	UpdateEnrollment(userID, courseID string, progress, currentLesson *int) (*models.Enrollment, error)
	EnrollmentsByUser(userID string) ([]models.Enrollment, error)

	// Quiz submissions, append-only. SubmissionsByUser orders
	// most-recent-first.
	CreateSubmission(sub *models.QuizSubmission) error
	SubmissionsByUser(userID string) ([]models.QuizSubmission, error)

	// Contact messages.
	CreateContactMessage(msg *models.ContactMessage) error
	ContactMessages() ([]models.ContactMessage, error)
}
