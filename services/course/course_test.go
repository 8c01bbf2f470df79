package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseRepo "pcos/database/repository/course"
)

func newTestService(t *testing.T) *DefaultCourseService {
	t.Helper()
	return &DefaultCourseService{Repo: courseRepo.NewMemoryCourseRepo()}
}

func addCourse(t *testing.T, svc *DefaultCourseService, code string) {
	t.Helper()
	_, err := svc.AddCourse(CourseInput{Code: code, Name: code + " lecture"})
	require.NoError(t, err)
}

func addSlot(t *testing.T, svc *DefaultCourseService, code, day, start, end string) {
	t.Helper()
	_, err := svc.AddSchedule(code, ScheduleInput{Day: day, StartTime: start, EndTime: end, Venue: "LT1"})
	require.NoError(t, err)
}

func TestAddCourseDefaults(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		code        string
		wantFee     float64
		wantCredits int
	}{
		{"CSE101", 70000, 3},
		{"SEN301", 75000, 3},
		{"MTH201", 50000, 2},
	}
	for _, tt := range tests {
		c, err := svc.AddCourse(CourseInput{Code: tt.code, Name: "Intro"})
		require.NoError(t, err)
		assert.Equal(t, tt.wantFee, c.Fee, tt.code)
		assert.Equal(t, tt.wantCredits, c.Credits, tt.code)
		assert.Equal(t, 30, c.MaxCapacity, tt.code)
	}
}

func TestAddCourseKeepsExplicitValues(t *testing.T) {
	svc := newTestService(t)

	c, err := svc.AddCourse(CourseInput{
		Code: "CSE102", Name: "Data Structures",
		Fee: 80000, Credits: 4, MaxCapacity: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 80000.0, c.Fee)
	assert.Equal(t, 4, c.Credits)
	assert.Equal(t, 50, c.MaxCapacity)
}

func TestAddCourseValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddCourse(CourseInput{Code: "cs101", Name: "Intro"})
	assert.Error(t, err)

	_, err = svc.AddCourse(CourseInput{Code: "CSE101", Name: "  "})
	assert.Error(t, err)
}

func TestAddScheduleValidation(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "CSE101")

	tests := []struct {
		name  string
		input ScheduleInput
	}{
		{"bad day", ScheduleInput{Day: "Funday", StartTime: "10:00", EndTime: "11:00"}},
		{"lowercase day", ScheduleInput{Day: "monday", StartTime: "10:00", EndTime: "11:00"}},
		{"bad start", ScheduleInput{Day: "Monday", StartTime: "25:00", EndTime: "11:00"}},
		{"bad end", ScheduleInput{Day: "Monday", StartTime: "10:00", EndTime: "11:60"}},
		{"start equals end", ScheduleInput{Day: "Monday", StartTime: "10:00", EndTime: "10:00"}},
		{"start after end", ScheduleInput{Day: "Monday", StartTime: "12:00", EndTime: "10:00"}},
		{"over duration cap", ScheduleInput{Day: "Monday", StartTime: "09:00", EndTime: "12:01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddSchedule("CSE101", tt.input)
			assert.Error(t, err)
		})
	}

	// Exactly at the 180 minute cap is allowed.
	se, err := svc.AddSchedule("CSE101", ScheduleInput{Day: "Monday", StartTime: "09:00", EndTime: "12:00", Venue: "LT1"})
	require.NoError(t, err)
	assert.Equal(t, 540, se.Start)
	assert.Equal(t, 720, se.End)
}

func TestAddScheduleUnknownCourse(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddSchedule("CSE999", ScheduleInput{Day: "Monday", StartTime: "10:00", EndTime: "11:00"})
	assert.Error(t, err)
}

func TestHasScheduleConflict(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "CSE101")
	addCourse(t, svc, "MTH201")
	addSlot(t, svc, "CSE101", "Monday", "10:00", "11:30")

	// Overlapping Monday slot conflicts.
	addSlot(t, svc, "MTH201", "Monday", "11:00", "12:00")
	got, err := svc.HasScheduleConflict("CSE101", "MTH201")
	require.NoError(t, err)
	assert.True(t, got)

	// Symmetric.
	got, err = svc.HasScheduleConflict("MTH201", "CSE101")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestHasScheduleConflictBackToBack(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "CSE101")
	addCourse(t, svc, "MTH201")
	addSlot(t, svc, "CSE101", "Monday", "10:00", "11:30")
	addSlot(t, svc, "MTH201", "Monday", "11:30", "12:30")

	got, err := svc.HasScheduleConflict("CSE101", "MTH201")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHasScheduleConflictDifferentDays(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "CSE101")
	addCourse(t, svc, "MTH201")
	addSlot(t, svc, "CSE101", "Monday", "10:00", "11:30")
	addSlot(t, svc, "MTH201", "Tuesday", "10:00", "11:30")

	got, err := svc.HasScheduleConflict("CSE101", "MTH201")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHasScheduleConflictEmptySchedules(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "CSE101")
	addCourse(t, svc, "MTH201")

	got, err := svc.HasScheduleConflict("CSE101", "MTH201")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = svc.HasScheduleConflict("CSE101", "CSE999")
	assert.Error(t, err)
}

func TestAssignLecturerAndReport(t *testing.T) {
	svc := newTestService(t)
	addCourse(t, svc, "CSE101")
	addSlot(t, svc, "CSE101", "Wednesday", "14:00", "16:00")

	require.NoError(t, svc.AssignLecturer("CSE101", "Dr. Okafor"))

	r, err := svc.Report("CSE101")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Okafor", r.Lecturer)
	assert.Empty(t, r.Enrolled)
	assert.Equal(t, 30, r.AvailableSeats)
	require.Len(t, r.Schedule, 1)
	assert.Equal(t, "Wednesday", r.Schedule[0].Day)
}
