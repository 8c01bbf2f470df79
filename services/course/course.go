package course

import (
	"fmt"
	"strings"

	"pcos/config"
	courseRepo "pcos/database/repository/course"
	"pcos/models"
)

// CourseService manages the course catalog and its weekly schedules.
type CourseService interface {
	AddCourse(input CourseInput) (*models.Course, error)
	GetByCode(code string) (*models.Course, error)
	List() ([]*models.Course, error)
	AssignLecturer(code, lecturer string) error
	AddSchedule(code string, entry ScheduleInput) (*models.ScheduleEntry, error)
	HasScheduleConflict(codeA, codeB string) (bool, error)
	Report(code string) (*models.CourseReport, error)
}

// CourseInput carries the fields accepted when creating a catalog entry.
type CourseInput struct {
	Code        string
	Name        string
	Lecturer    string
	Fee         float64
	Credits     int
	MaxCapacity int
}

// ScheduleInput is a raw weekly slot before clock parsing.
type ScheduleInput struct {
	Day       string
	StartTime string
	EndTime   string
	Venue     string
}

// DefaultCourseService is the production catalog service.
type DefaultCourseService struct {
	Repo courseRepo.CourseRepository
}

// AddCourse validates and inserts a catalog entry. The fee falls back to
// the campus fee schedule and capacity/credits to configured defaults.
func (s *DefaultCourseService) AddCourse(input CourseInput) (*models.Course, error) {
	if err := models.ValidateCourseCode(input.Code); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("invalid course name")
	}

	c := &models.Course{
		Code:        input.Code,
		Name:        input.Name,
		Lecturer:    input.Lecturer,
		Fee:         input.Fee,
		Credits:     input.Credits,
		MaxCapacity: input.MaxCapacity,
	}
	if c.Fee == 0 {
		c.Fee = defaultFeeFor(input.Code)
	}
	if c.Credits == 0 {
		c.Credits = models.CreditsForCode(input.Code)
	}
	if c.MaxCapacity == 0 {
		c.MaxCapacity = config.AppConfig.DefaultCapacity
		if c.MaxCapacity == 0 {
			c.MaxCapacity = 30
		}
	}
	if err := s.Repo.Insert(c); err != nil {
		return nil, err
	}
	return c, nil
}

// defaultFeeFor applies the campus fee schedule by course prefix.
func defaultFeeFor(code string) float64 {
	base := config.AppConfig.DefaultCourseFee
	if base == 0 {
		base = 50000
	}
	switch {
	case strings.HasPrefix(code, "CS"):
		return base + 20000
	case strings.HasPrefix(code, "SE"):
		return base + 25000
	default:
		return base
	}
}

func (s *DefaultCourseService) GetByCode(code string) (*models.Course, error) {
	return s.Repo.GetByCode(code)
}

func (s *DefaultCourseService) List() ([]*models.Course, error) {
	return s.Repo.List()
}

// AssignLecturer sets the lecturer on an existing catalog entry.
func (s *DefaultCourseService) AssignLecturer(code, lecturer string) error {
	return s.Repo.Mutate(code, func(c *models.Course) error {
		c.Lecturer = lecturer
		return nil
	})
}

// Report builds the JSON report view of a catalog entry.
func (s *DefaultCourseService) Report(code string) (*models.CourseReport, error) {
	c, err := s.Repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	return &models.CourseReport{
		CourseCode:     c.Code,
		CourseName:     c.Name,
		Lecturer:       c.Lecturer,
		Enrolled:       c.Enrolled,
		Schedule:       c.Schedule,
		Fee:            c.Fee,
		Credits:        c.Credits,
		MaxCapacity:    c.MaxCapacity,
		AvailableSeats: c.AvailableSeats(),
	}, nil
}
