package enrollmentRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcos/models"
)

func TestSnapshotsDoNotAliasLiveState(t *testing.T) {
	repo := NewMemoryEnrollmentRepo()
	exam := 60.0
	require.NoError(t, repo.Insert(&models.Enrollment{
		ID:          "E1",
		StudentID:   "PCOS-01-01-0001",
		CourseCode:  "CSE101",
		Semester:    "2024A",
		Status:      models.EnrollmentActive,
		Assignments: []float64{80},
		ExamScore:   &exam,
	}))

	snapshot, err := repo.GetByID("E1")
	require.NoError(t, err)

	require.NoError(t, repo.Mutate("E1", func(e *models.Enrollment) error {
		e.Assignments[0] = 10
		*e.ExamScore = 10
		return nil
	}))

	assert.Equal(t, 80.0, snapshot.Assignments[0])
	require.NotNil(t, snapshot.ExamScore)
	assert.Equal(t, 60.0, *snapshot.ExamScore)

	found, err := repo.FindByStudentAndCourse("PCOS-01-01-0001", "CSE101", "2024A")
	require.NoError(t, err)
	assert.Equal(t, 10.0, found.Assignments[0])
}
