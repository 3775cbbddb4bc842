package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eduvibe/backend/models"
)

// Gorm is the SQLite-backed Store. With the default ":memory:" DSN the
// dataset lives only for the lifetime of the process.
type Gorm struct {
	db   *gorm.DB
	keys map[string]map[string]string

	// mu serializes check-then-create paths (unique email, idempotent
	// enroll) and progress updates. Together with the single SQLite
	// connection it guarantees at most one mutation in flight.
	mu sync.Mutex
}

func Open(dsn string) (*Gorm, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// A second connection to ":memory:" would see an empty database, so the
	// pool is pinned to one.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseModule{},
		&models.Enrollment{},
		&models.QuizSubmission{},
		&models.ContactMessage{},
	)
	if err != nil {
		return nil, err
	}

	s := &Gorm{db: db, keys: quizAnswerKeys}
	if err := s.seedCatalog(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Gorm) seedCatalog() error {
	for i, course := range catalog {
		course.Seq = i + 1
		for j := range course.Modules {
			course.Modules[j].SequenceOrder = j + 1
		}
		if err := s.db.Create(&course).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Gorm) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.db.Create(user).Error
}

func (s *Gorm) UserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Gorm) UserByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Gorm) Courses(category string) ([]models.Course, error) {
	query := s.db.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order")
	}).Order("seq")

	if category != "" && category != "All" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(category))
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Gorm) CourseByID(id string) (*models.Course, error) {
	var course models.Course
	err := s.db.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order")
	}).First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *Gorm) AnswerKey(courseID string) map[string]string {
	return s.keys[courseID]
}

func (s *Gorm) Enroll(userID, courseID string) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := models.Enrollment{
		ID:            uuid.NewString(),
		UserID:        userID,
		CourseID:      courseID,
		EnrolledAt:    time.Now().UTC(),
		Progress:      0,
		CurrentLesson: 1,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *Gorm) Enrollment(userID, courseID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *Gorm) UpdateEnrollment(userID, courseID string, progress, currentLesson *int) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}

	if progress != nil {
		enrollment.Progress = clamp(*progress, 0, 100)
	}
	if currentLesson != nil {
		enrollment.CurrentLesson = *currentLesson
	}
	now := time.Now().UTC()
	enrollment.LastUpdated = &now

	if err := s.db.Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *Gorm) EnrollmentsByUser(userID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("user_id = ?", userID).Order("enrolled_at").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *Gorm) CreateSubmission(sub *models.QuizSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	return s.db.Create(sub).Error
}

func (s *Gorm) SubmissionsByUser(userID string) ([]models.QuizSubmission, error) {
	var subs []models.QuizSubmission
	err := s.db.Where("user_id = ?", userID).Order("submitted_at desc").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *Gorm) CreateContactMessage(msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	return s.db.Create(msg).Error
}

func (s *Gorm) ContactMessages() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := s.db.Order("received_at").Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
