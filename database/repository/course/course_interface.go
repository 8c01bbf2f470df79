package courseRepo

import "pcos/models"

// CourseRepository defines data access for the course catalog.
type CourseRepository interface {
	Insert(course *models.Course) error
	GetByCode(code string) (*models.Course, error)
	List() ([]*models.Course, error)
	Mutate(code string, fn func(course *models.Course) error) error
}
