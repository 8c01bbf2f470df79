package studentRepo

import (
	"fmt"
	"sort"
	"sync"

	"pcos/models"
)

// MemoryStudentRepo is the map-backed in-memory student register.
type MemoryStudentRepo struct {
	mu       sync.RWMutex
	students map[string]*models.Student
}

// NewMemoryStudentRepo returns an empty in-memory student register.
func NewMemoryStudentRepo() *MemoryStudentRepo {
	return &MemoryStudentRepo{students: make(map[string]*models.Student)}
}

// cloneStudent copies the student together with its course and ledger
// slices, so a returned snapshot cannot observe later in-place mutations.
func cloneStudent(s *models.Student) *models.Student {
	copied := *s
	copied.EnrolledCourses = append([]string(nil), s.EnrolledCourses...)
	copied.CompletedCourses = append([]models.CompletedCourse(nil), s.CompletedCourses...)
	copied.PaymentHistory = append([]models.Payment(nil), s.PaymentHistory...)
	return &copied
}

func (r *MemoryStudentRepo) Insert(student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.students[student.ID]; exists {
		return fmt.Errorf("student %s already exists in records", student.ID)
	}
	r.students[student.ID] = student
	return nil
}

func (r *MemoryStudentRepo) GetByID(id string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	student, ok := r.students[id]
	if !ok {
		return nil, fmt.Errorf("student %s not found", id)
	}
	return cloneStudent(student), nil
}

func (r *MemoryStudentRepo) List() ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, cloneStudent(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryStudentRepo) Mutate(id string, fn func(student *models.Student) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return fmt.Errorf("student %s not found", id)
	}
	return fn(student)
}
