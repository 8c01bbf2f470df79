package models

import "math"

// Payment is a single entry in a student's payment history.
type Payment struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // "DD-MM-YYYY"
}

// CompletedCourse pairs a course code with the letter grade earned.
type CompletedCourse struct {
	CourseCode string `json:"course_code"`
	Grade      string `json:"grade"`
}

// Student is a campus student record with its financial ledger.
type Student struct {
	ID               string            `json:"id"` // "PCOS-XX-01-NNNN", 15 chars
	Name             string            `json:"name"`
	Email            string            `json:"email"` // must end in the campus domain
	Program          string            `json:"program"`
	AdmissionYear    int               `json:"admission_year"`
	AdmissionDate    string            `json:"admission_date"` // "DD-MM-YYYY"
	EnrolledCourses  []string          `json:"enrolled_courses"`
	CompletedCourses []CompletedCourse `json:"completed_courses"`
	GPA              float64           `json:"gpa"`
	TotalCredits     int               `json:"total_credits"`
	FeesPaid         float64           `json:"fees_paid"`
	Balance          float64           `json:"balance"`
	TuitionBalance   float64           `json:"tuition_balance"`
	PaymentHistory   []Payment         `json:"payment_history"`
}

// gradePoints maps letter grades to GPA points.
var gradePoints = map[string]float64{
	"A": 4.0,
	"B": 3.0,
	"C": 2.0,
	"D": 1.0,
	"F": 0.0,
}

// RecalculateGPA recomputes the credit-weighted GPA from completed courses,
// rounded to two decimals. Unknown grades are skipped.
func (s *Student) RecalculateGPA() float64 {
	var totalPoints float64
	var totalCredits int

	for _, cc := range s.CompletedCourses {
		points, ok := gradePoints[cc.Grade]
		if !ok {
			continue
		}
		credits := CreditsForCode(cc.CourseCode)
		totalPoints += points * float64(credits)
		totalCredits += credits
	}

	if totalCredits == 0 {
		s.GPA = 0.0
		return s.GPA
	}
	s.GPA = math.Round(totalPoints/float64(totalCredits)*100) / 100
	return s.GPA
}

// CurrentSemesterCredits sums the credit weights of enrolled courses.
func (s *Student) CurrentSemesterCredits() int {
	total := 0
	for _, code := range s.EnrolledCourses {
		total += CreditsForCode(code)
	}
	return total
}
