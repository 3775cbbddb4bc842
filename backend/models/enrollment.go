package models

import "time"

// Enrollment links a user to a course. At most one exists per (user, course)
// pair; progress stays within [0,100].
type Enrollment struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	UserID        string     `gorm:"uniqueIndex:idx_user_course" json:"userId"`
	CourseID      string     `gorm:"uniqueIndex:idx_user_course" json:"courseId"`
	EnrolledAt    time.Time  `json:"enrolledAt"`
	Progress      int        `json:"progress"`
	CurrentLesson int        `json:"currentLesson"`
	LastUpdated   *time.Time `json:"updatedAt,omitempty"`
}
