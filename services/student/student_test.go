package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentRepo "pcos/database/repository/student"
)

func newTestService(t *testing.T) *DefaultStudentService {
	t.Helper()
	return &DefaultStudentService{Repo: studentRepo.NewMemoryStudentRepo()}
}

func TestAddStudent(t *testing.T) {
	svc := newTestService(t)

	st, err := svc.AddStudent(StudentInput{
		StudentID:     "PCOS-01-01-0001",
		Name:          "Amina",
		Email:         "amina@picos.edu",
		Program:       "CS",
		AdmissionYear: 2023,
	})
	require.NoError(t, err)
	assert.Equal(t, "01-09-2023", st.AdmissionDate)

	// Admission year defaults when omitted.
	st, err = svc.AddStudent(StudentInput{
		StudentID: "PCOS-01-01-0002",
		Name:      "Bayo",
		Email:     "bayo@picos.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, 2024, st.AdmissionYear)
	assert.Equal(t, "01-09-2024", st.AdmissionDate)
}

func TestAddStudentValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddStudent(StudentInput{StudentID: "BAD-ID", Email: "amina@picos.edu"})
	assert.Error(t, err)

	_, err = svc.AddStudent(StudentInput{StudentID: "PCOS-01-01-0001", Email: "amina@gmail.com"})
	assert.Error(t, err)
}

func TestAddTuitionFee(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddStudent(StudentInput{StudentID: "PCOS-01-01-0001", Name: "Amina", Email: "amina@picos.edu"})
	require.NoError(t, err)

	balance, err := svc.AddTuitionFee("PCOS-01-01-0001", 70000)
	require.NoError(t, err)
	assert.Equal(t, 70000.0, balance)

	balance, err = svc.AddTuitionFee("PCOS-01-01-0001", 50000)
	require.NoError(t, err)
	assert.Equal(t, 120000.0, balance)

	_, err = svc.AddTuitionFee("PCOS-01-01-9999", 100)
	assert.Error(t, err)
}

func TestReportAndTranscript(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddStudent(StudentInput{
		StudentID:     "PCOS-01-01-0001",
		Name:          "Amina",
		Email:         "amina@picos.edu",
		Program:       "CS",
		AdmissionYear: 2023,
	})
	require.NoError(t, err)

	r, err := svc.Report("PCOS-01-01-0001")
	require.NoError(t, err)
	assert.Equal(t, "Amina", r.Name)
	assert.Equal(t, 0.0, r.GPA)

	tr, err := svc.Transcript("PCOS-01-01-0001")
	require.NoError(t, err)
	assert.Equal(t, "CS", tr.Program)
	assert.Equal(t, 2023, tr.AdmissionYear)
	assert.Empty(t, tr.Courses)

	_, err = svc.Report("PCOS-01-01-9999")
	assert.Error(t, err)
}
