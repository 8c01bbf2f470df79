package studentRepo

import "pcos/models"

// StudentRepository defines data access for student records.
type StudentRepository interface {
	Insert(student *models.Student) error
	GetByID(id string) (*models.Student, error)
	List() ([]*models.Student, error)
	Mutate(id string, fn func(student *models.Student) error) error
}
