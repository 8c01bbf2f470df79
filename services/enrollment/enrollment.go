package enrollment

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	courseRepo "pcos/database/repository/course"
	enrollmentRepo "pcos/database/repository/enrollment"
	studentRepo "pcos/database/repository/student"
	"pcos/models"
)

// EnrollmentService records students into courses and serves their
// weekly schedules.
type EnrollmentService interface {
	Enroll(studentID, courseCode, semester string) (*models.Enrollment, error)
	Withdraw(enrollmentID string) error
	GetByID(enrollmentID string) (*models.Enrollment, error)
	Find(studentID, courseCode, semester string) (*models.Enrollment, error)
	StudentSchedule(studentID string) ([]models.ScheduleView, error)
}

// DefaultEnrollmentService is the production enrollment service.
type DefaultEnrollmentService struct {
	Students    studentRepo.StudentRepository
	Courses     courseRepo.CourseRepository
	Enrollments enrollmentRepo.EnrollmentRepository
	Now         func() time.Time
}

// NewEnrollmentService wires a DefaultEnrollmentService with the wall clock.
func NewEnrollmentService(
	students studentRepo.StudentRepository,
	courses courseRepo.CourseRepository,
	enrollments enrollmentRepo.EnrollmentRepository,
) *DefaultEnrollmentService {
	return &DefaultEnrollmentService{
		Students:    students,
		Courses:     courses,
		Enrollments: enrollments,
		Now:         time.Now,
	}
}

// Enroll registers studentID into courseCode for the given semester.
// Both records must exist; the course roster enforces duplicates and
// capacity. On success an ACTIVE enrollment record is created.
func (s *DefaultEnrollmentService) Enroll(studentID, courseCode, semester string) (*models.Enrollment, error) {
	if _, err := s.Students.GetByID(studentID); err != nil {
		return nil, err
	}

	err := s.Courses.Mutate(courseCode, func(c *models.Course) error {
		if slices.Contains(c.Enrolled, studentID) {
			return fmt.Errorf("student %s is already enrolled in %s", studentID, c.Code)
		}
		if len(c.Enrolled) >= c.MaxCapacity {
			return fmt.Errorf("course %s is full", c.Code)
		}
		c.Enrolled = append(c.Enrolled, studentID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.Students.Mutate(studentID, func(st *models.Student) error {
		st.EnrolledCourses = append(st.EnrolledCourses, courseCode)
		return nil
	}); err != nil {
		return nil, err
	}

	e := &models.Enrollment{
		ID:             uuid.New().String(),
		StudentID:      studentID,
		CourseCode:     courseCode,
		Semester:       semester,
		EnrollmentDate: s.Now().Format("02-01-2006"),
		Status:         models.EnrollmentActive,
		Attendance:     100.0,
	}
	if err := s.Enrollments.Insert(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Withdraw moves an ACTIVE enrollment to WITHDRAWN and removes the pairing
// from both the course roster and the student's course list.
func (s *DefaultEnrollmentService) Withdraw(enrollmentID string) error {
	var studentID, courseCode string
	err := s.Enrollments.Mutate(enrollmentID, func(e *models.Enrollment) error {
		if e.Status != models.EnrollmentActive {
			return fmt.Errorf("enrollment %s is not active", e.ID)
		}
		e.Status = models.EnrollmentWithdrawn
		studentID, courseCode = e.StudentID, e.CourseCode
		return nil
	})
	if err != nil {
		return err
	}

	// Roster cleanup is best-effort: the withdrawal itself already stands.
	_ = s.Students.Mutate(studentID, func(st *models.Student) error {
		if i := slices.Index(st.EnrolledCourses, courseCode); i >= 0 {
			st.EnrolledCourses = slices.Delete(st.EnrolledCourses, i, i+1)
		}
		return nil
	})
	_ = s.Courses.Mutate(courseCode, func(c *models.Course) error {
		if i := slices.Index(c.Enrolled, studentID); i >= 0 {
			c.Enrolled = slices.Delete(c.Enrolled, i, i+1)
		}
		return nil
	})
	return nil
}

func (s *DefaultEnrollmentService) GetByID(enrollmentID string) (*models.Enrollment, error) {
	return s.Enrollments.GetByID(enrollmentID)
}

// Find looks up the enrollment record for a student-course-semester triple.
func (s *DefaultEnrollmentService) Find(studentID, courseCode, semester string) (*models.Enrollment, error) {
	return s.Enrollments.FindByStudentAndCourse(studentID, courseCode, semester)
}

// StudentSchedule collects the weekly slots of every course the student is
// enrolled in, sorted by day order then start time.
func (s *DefaultEnrollmentService) StudentSchedule(studentID string) ([]models.ScheduleView, error) {
	st, err := s.Students.GetByID(studentID)
	if err != nil {
		return nil, err
	}

	var schedule []models.ScheduleView
	for _, code := range st.EnrolledCourses {
		c, err := s.Courses.GetByCode(code)
		if err != nil {
			continue
		}
		for _, entry := range c.Schedule {
			schedule = append(schedule, models.ScheduleView{
				CourseCode: c.Code,
				CourseName: c.Name,
				Day:        entry.Day,
				StartTime:  entry.StartLabel,
				EndTime:    entry.EndLabel,
				Venue:      entry.Venue,
				Lecturer:   c.Lecturer,
			})
		}
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		di, dj := models.DayOrder[schedule[i].Day], models.DayOrder[schedule[j].Day]
		if di != dj {
			return di < dj
		}
		return schedule[i].StartTime < schedule[j].StartTime
	})
	return schedule, nil
}
