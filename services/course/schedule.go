package course

import (
	"fmt"

	"pcos/config"
	"pcos/models"
)

// AddSchedule validates and appends a weekly slot to a course. Entries are
// checked for internal well-formedness only (parseable times, start before
// end, duration cap); conflicts against the course's own existing entries
// are not detected here.
func (s *DefaultCourseService) AddSchedule(code string, entry ScheduleInput) (*models.ScheduleEntry, error) {
	if !models.IsWeekday(entry.Day) {
		return nil, fmt.Errorf("invalid day %q, expected a weekday name", entry.Day)
	}
	start, err := models.ParseClock(entry.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := models.ParseClock(entry.EndTime)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, &models.InvalidIntervalError{Message: "end time must be after start time"}
	}
	maxMinutes := config.AppConfig.MaxClassMinutes
	if maxMinutes == 0 {
		maxMinutes = 180
	}
	if end-start > maxMinutes {
		return nil, &models.InvalidIntervalError{
			Message: fmt.Sprintf("class duration exceeds %d minutes", maxMinutes),
		}
	}

	se := models.ScheduleEntry{
		Day:        entry.Day,
		Start:      start,
		End:        end,
		StartLabel: entry.StartTime,
		EndLabel:   entry.EndTime,
		Venue:      entry.Venue,
	}
	err = s.Repo.Mutate(code, func(c *models.Course) error {
		c.Schedule = append(c.Schedule, se)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &se, nil
}

// HasScheduleConflict runs the cross-product overlap scan between the
// schedules of two courses. The minute predicate only fires when the day
// labels match exactly; the scan is read-only and stops on the first hit.
func (s *DefaultCourseService) HasScheduleConflict(codeA, codeB string) (bool, error) {
	a, err := s.Repo.GetByCode(codeA)
	if err != nil {
		return false, err
	}
	b, err := s.Repo.GetByCode(codeB)
	if err != nil {
		return false, err
	}
	return SchedulesConflict(a, b), nil
}

// SchedulesConflict is the pure cross-course conflict predicate.
func SchedulesConflict(a, b *models.Course) bool {
	for _, ea := range a.Schedule {
		for _, eb := range b.Schedule {
			if ea.Day != eb.Day {
				continue
			}
			if models.Overlaps(ea.Start, ea.End, eb.Start, eb.End) {
				return true
			}
		}
	}
	return false
}
