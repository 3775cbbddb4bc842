package models

import "time"

// User is a registered student account. The password hash is excluded from
// every JSON rendering so no read path can leak it.
type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"not null" json:"fullName"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Age            int       `json:"age"`
	Phone          string    `json:"phone,omitempty"`
	Linkedin       string    `json:"linkedin,omitempty"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Role           string    `gorm:"default:student" json:"role"`
	AvatarInitials string    `json:"avatarInitials"`
	JoinedAt       time.Time `json:"joinedAt"`
}
