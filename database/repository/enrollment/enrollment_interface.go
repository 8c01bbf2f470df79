package enrollmentRepo

import "pcos/models"

// EnrollmentRepository defines data access for enrollment records.
type EnrollmentRepository interface {
	Insert(enrollment *models.Enrollment) error
	GetByID(id string) (*models.Enrollment, error)
	FindByStudentAndCourse(studentID, courseCode, semester string) (*models.Enrollment, error)
	Mutate(id string, fn func(enrollment *models.Enrollment) error) error
}
