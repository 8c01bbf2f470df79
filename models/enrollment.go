package models

// Enrollment statuses.
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentWithdrawn = "WITHDRAWN"
)

// Enrollment ties a student to a course for a semester and accumulates
// assessment results.
type Enrollment struct {
	ID             string    `json:"id"` // UUID
	StudentID      string    `json:"student_id"`
	CourseCode     string    `json:"course_code"`
	Semester       string    `json:"semester"`
	EnrollmentDate string    `json:"enrollment_date"` // "DD-MM-YYYY"
	Status         string    `json:"status"`          // ACTIVE | WITHDRAWN
	Grade          string    `json:"grade,omitempty"`
	Attendance     float64   `json:"attendance"` // Percentage, starts at 100
	ExamScore      *float64  `json:"exam_score,omitempty"`
	FinalGrade     string    `json:"final_grade,omitempty"`
	Assignments    []float64 `json:"assignments"`
}

// IsPassing reports whether the assigned grade is a passing one.
func (e *Enrollment) IsPassing() bool {
	switch e.Grade {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

// LetterGradeFor maps a weighted final score to a letter grade.
func LetterGradeFor(score float64) string {
	switch {
	case score >= 70:
		return "A"
	case score >= 60:
		return "B"
	case score >= 50:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
