package enrollmentRepo

import (
	"fmt"
	"sync"

	"pcos/models"
)

// MemoryEnrollmentRepo is the map-backed in-memory enrollment register.
// Insertion order is kept so lookups by student and course are stable.
type MemoryEnrollmentRepo struct {
	mu          sync.RWMutex
	enrollments map[string]*models.Enrollment
	order       []string
}

// NewMemoryEnrollmentRepo returns an empty in-memory enrollment register.
func NewMemoryEnrollmentRepo() *MemoryEnrollmentRepo {
	return &MemoryEnrollmentRepo{enrollments: make(map[string]*models.Enrollment)}
}

// cloneEnrollment copies the enrollment together with its assignment slice
// and exam pointer, so a returned snapshot cannot observe later mutations.
func cloneEnrollment(e *models.Enrollment) *models.Enrollment {
	copied := *e
	copied.Assignments = append([]float64(nil), e.Assignments...)
	if e.ExamScore != nil {
		score := *e.ExamScore
		copied.ExamScore = &score
	}
	return &copied
}

func (r *MemoryEnrollmentRepo) Insert(enrollment *models.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.enrollments[enrollment.ID]; exists {
		return fmt.Errorf("enrollment %s already exists in records", enrollment.ID)
	}
	r.enrollments[enrollment.ID] = enrollment
	r.order = append(r.order, enrollment.ID)
	return nil
}

func (r *MemoryEnrollmentRepo) GetByID(id string) (*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, fmt.Errorf("enrollment %s not found", id)
	}
	return cloneEnrollment(enrollment), nil
}

func (r *MemoryEnrollmentRepo) FindByStudentAndCourse(studentID, courseCode, semester string) (*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		e := r.enrollments[id]
		if e.StudentID == studentID && e.CourseCode == courseCode && e.Semester == semester {
			return cloneEnrollment(e), nil
		}
	}
	return nil, fmt.Errorf("enrollment for student %s in course %s not found", studentID, courseCode)
}

func (r *MemoryEnrollmentRepo) Mutate(id string, fn func(enrollment *models.Enrollment) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	enrollment, ok := r.enrollments[id]
	if !ok {
		return fmt.Errorf("enrollment %s not found", id)
	}
	return fn(enrollment)
}
