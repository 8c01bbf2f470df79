package grading

import (
	"fmt"

	"pcos/config"
	enrollmentRepo "pcos/database/repository/enrollment"
	studentRepo "pcos/database/repository/student"
	"pcos/models"
)

// GradingService records assessment results on enrollment records.
type GradingService interface {
	AssignGrade(enrollmentID, grade string) error
	AddAssignmentScore(enrollmentID string, score float64) error
	SetExamScore(enrollmentID string, score float64) error
	FinalizeGrade(enrollmentID string) (string, error)
}

// DefaultGradingService is the production grading service.
type DefaultGradingService struct {
	Enrollments enrollmentRepo.EnrollmentRepository
	Students    studentRepo.StudentRepository
}

// AssignGrade writes a letter grade onto an enrollment.
func (s *DefaultGradingService) AssignGrade(enrollmentID, grade string) error {
	return s.Enrollments.Mutate(enrollmentID, func(e *models.Enrollment) error {
		e.Grade = grade
		return nil
	})
}

// AddAssignmentScore appends a score in [0, 100].
func (s *DefaultGradingService) AddAssignmentScore(enrollmentID string, score float64) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("invalid score %.1f, must be between 0 and 100", score)
	}
	return s.Enrollments.Mutate(enrollmentID, func(e *models.Enrollment) error {
		e.Assignments = append(e.Assignments, score)
		return nil
	})
}

// SetExamScore records the exam result in [0, 100].
func (s *DefaultGradingService) SetExamScore(enrollmentID string, score float64) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("invalid score %.1f, must be between 0 and 100", score)
	}
	return s.Enrollments.Mutate(enrollmentID, func(e *models.Enrollment) error {
		e.ExamScore = &score
		return nil
	})
}

// FinalizeGrade computes the weighted final grade from assignment average
// and exam score, writes it onto the enrollment, appends the completed
// course to the student record and refreshes the student's GPA. Calling it
// again on an already-finalized enrollment returns the recorded grade
// without touching the student record, so retries cannot inflate credits.
func (s *DefaultGradingService) FinalizeGrade(enrollmentID string) (string, error) {
	weights := gradeWeights()

	var finalGrade, studentID, courseCode string
	alreadyFinal := false
	err := s.Enrollments.Mutate(enrollmentID, func(e *models.Enrollment) error {
		if e.FinalGrade != "" {
			finalGrade = e.FinalGrade
			alreadyFinal = true
			return nil
		}
		if len(e.Assignments) == 0 || e.ExamScore == nil {
			return fmt.Errorf("enrollment %s has incomplete assessment data", e.ID)
		}
		var sum float64
		for _, a := range e.Assignments {
			sum += a
		}
		avg := sum / float64(len(e.Assignments))
		score := avg*weights.assignments + *e.ExamScore*weights.exam
		finalGrade = models.LetterGradeFor(score)
		e.FinalGrade = finalGrade
		studentID, courseCode = e.StudentID, e.CourseCode
		return nil
	})
	if err != nil {
		return "", err
	}
	if alreadyFinal {
		return finalGrade, nil
	}

	err = s.Students.Mutate(studentID, func(st *models.Student) error {
		st.CompletedCourses = append(st.CompletedCourses, models.CompletedCourse{
			CourseCode: courseCode,
			Grade:      finalGrade,
		})
		st.TotalCredits += models.CreditsForCode(courseCode)
		st.RecalculateGPA()
		return nil
	})
	if err != nil {
		return "", err
	}
	return finalGrade, nil
}

type weights struct {
	assignments float64
	exam        float64
}

func gradeWeights() weights {
	w := weights{
		assignments: config.AppConfig.AssignmentsWeight,
		exam:        config.AppConfig.ExamWeight,
	}
	if w.assignments == 0 && w.exam == 0 {
		w.assignments, w.exam = 0.3, 0.7
	}
	return w
}
