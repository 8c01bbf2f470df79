package student

import (
	"fmt"

	studentRepo "pcos/database/repository/student"
	"pcos/models"
)

// StudentService manages the student register.
type StudentService interface {
	AddStudent(input StudentInput) (*models.Student, error)
	GetByID(id string) (*models.Student, error)
	List() ([]*models.Student, error)
	AddTuitionFee(studentID string, amount float64) (float64, error)
	Report(studentID string) (*models.StudentReport, error)
	Transcript(studentID string) (*models.Transcript, error)
}

// StudentInput carries the fields accepted when registering a student.
type StudentInput struct {
	StudentID     string
	Name          string
	Email         string
	Program       string
	AdmissionYear int
}

// DefaultStudentService is the production student register service.
type DefaultStudentService struct {
	Repo studentRepo.StudentRepository
}

// AddStudent validates the campus ID and email formats and inserts the
// record. Admission date defaults to the 1st of September of the
// admission year.
func (s *DefaultStudentService) AddStudent(input StudentInput) (*models.Student, error) {
	if err := models.ValidateStudentID(input.StudentID); err != nil {
		return nil, err
	}
	if err := models.ValidateStudentEmail(input.Email); err != nil {
		return nil, err
	}
	year := input.AdmissionYear
	if year == 0 {
		year = 2024
	}
	st := &models.Student{
		ID:            input.StudentID,
		Name:          input.Name,
		Email:         input.Email,
		Program:       input.Program,
		AdmissionYear: year,
		AdmissionDate: fmt.Sprintf("01-09-%04d", year),
	}
	if err := s.Repo.Insert(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *DefaultStudentService) GetByID(id string) (*models.Student, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultStudentService) List() ([]*models.Student, error) {
	return s.Repo.List()
}

// AddTuitionFee charges an amount onto the student's tuition balance.
func (s *DefaultStudentService) AddTuitionFee(studentID string, amount float64) (float64, error) {
	var balance float64
	err := s.Repo.Mutate(studentID, func(st *models.Student) error {
		st.TuitionBalance += amount
		balance = st.TuitionBalance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Report builds the JSON report view of a student record.
func (s *DefaultStudentService) Report(studentID string) (*models.StudentReport, error) {
	st, err := s.Repo.GetByID(studentID)
	if err != nil {
		return nil, err
	}
	return &models.StudentReport{
		StudentID:        st.ID,
		Name:             st.Name,
		Email:            st.Email,
		EnrolledCourses:  st.EnrolledCourses,
		FeesPaid:         st.FeesPaid,
		Balance:          st.Balance,
		PaymentHistory:   st.PaymentHistory,
		GPA:              st.GPA,
		TuitionBalance:   st.TuitionBalance,
		CompletedCourses: st.CompletedCourses,
	}, nil
}

// Transcript builds the academic summary for a student.
func (s *DefaultStudentService) Transcript(studentID string) (*models.Transcript, error) {
	st, err := s.Repo.GetByID(studentID)
	if err != nil {
		return nil, err
	}
	return &models.Transcript{
		Name:          st.Name,
		StudentID:     st.ID,
		Program:       st.Program,
		AdmissionYear: st.AdmissionYear,
		GPA:           st.GPA,
		TotalCredits:  st.TotalCredits,
		Courses:       st.CompletedCourses,
	}, nil
}
