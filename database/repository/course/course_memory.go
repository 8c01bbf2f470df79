package courseRepo

import (
	"fmt"
	"sort"
	"sync"

	"pcos/models"
)

// MemoryCourseRepo is the map-backed in-memory course catalog.
type MemoryCourseRepo struct {
	mu      sync.RWMutex
	courses map[string]*models.Course
}

// NewMemoryCourseRepo returns an empty in-memory catalog.
func NewMemoryCourseRepo() *MemoryCourseRepo {
	return &MemoryCourseRepo{courses: make(map[string]*models.Course)}
}

// cloneCourse copies the course together with its roster and schedule
// slices, so a returned snapshot cannot observe later in-place mutations.
func cloneCourse(c *models.Course) *models.Course {
	copied := *c
	copied.Enrolled = append([]string(nil), c.Enrolled...)
	copied.Schedule = append([]models.ScheduleEntry(nil), c.Schedule...)
	return &copied
}

func (r *MemoryCourseRepo) Insert(course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.courses[course.Code]; exists {
		return fmt.Errorf("course %s already exists in catalog", course.Code)
	}
	r.courses[course.Code] = course
	return nil
}

func (r *MemoryCourseRepo) GetByCode(code string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.courses[code]
	if !ok {
		return nil, fmt.Errorf("course %s not found", code)
	}
	return cloneCourse(course), nil
}

func (r *MemoryCourseRepo) List() ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, cloneCourse(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *MemoryCourseRepo) Mutate(code string, fn func(course *models.Course) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	course, ok := r.courses[code]
	if !ok {
		return fmt.Errorf("course %s not found", code)
	}
	return fn(course)
}
