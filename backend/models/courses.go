package models

// Course is immutable reference data, seeded at startup and never mutated by
// requests. Seq preserves the insertion order of the static dataset.
type Course struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Seq         int            `gorm:"index" json:"-"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Duration    string         `json:"duration"`
	Price       int            `json:"price"`
	Rating      float64        `json:"rating"`
	Enrolled    int            `json:"enrolled"`
	Badge       string         `json:"badge,omitempty"`
	Description string         `json:"description"`
	Instructor  Instructor     `gorm:"embedded;embeddedPrefix:instructor_" json:"instructor"`
	Modules     []CourseModule `gorm:"foreignKey:CourseID" json:"modules"`
	VideoURL    string         `json:"videoUrl"`
}

type Instructor struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Avatar string `json:"avatar"`
}

type CourseModule struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	CourseID      string `gorm:"index" json:"-"`
	Title         string `json:"title"`
	Lessons       int    `json:"lessons"`
	SequenceOrder int    `json:"-"`
}
