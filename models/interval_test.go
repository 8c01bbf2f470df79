package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint", 0, 60, 120, 180, false},
		{"touching endpoints do not conflict", 0, 60, 60, 120, false},
		{"partial overlap", 0, 90, 60, 120, true},
		{"contained", 0, 180, 60, 120, true},
		{"identical", 600, 690, 600, 690, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestTimeIntervalOverlaps(t *testing.T) {
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	a, err := NewTimeInterval(base, base.Add(time.Hour))
	require.NoError(t, err)

	backToBack, err := NewTimeInterval(base.Add(time.Hour), base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, a.Overlaps(backToBack))
	assert.False(t, backToBack.Overlaps(a))

	overlapping, err := NewTimeInterval(base.Add(30*time.Minute), base.Add(90*time.Minute))
	require.NoError(t, err)
	assert.True(t, a.Overlaps(overlapping))
	assert.True(t, overlapping.Overlaps(a))

	assert.True(t, a.Overlaps(a))
}

func TestNewTimeIntervalRejectsDegenerate(t *testing.T) {
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	_, err := NewTimeInterval(base, base)
	var invalid *InvalidIntervalError
	require.ErrorAs(t, err, &invalid)

	_, err = NewTimeInterval(base.Add(time.Hour), base)
	require.ErrorAs(t, err, &invalid)
}

func TestParseBookingInterval(t *testing.T) {
	interval, err := ParseBookingInterval("01-01-2025 09:00", "01-01-2025 10:30")
	require.NoError(t, err)
	assert.Equal(t, 1.5, interval.Hours())

	_, err = ParseBookingInterval("2025-01-01 09:00", "01-01-2025 10:30")
	assert.Error(t, err)

	_, err = ParseBookingInterval("01-01-2025 10:30", "01-01-2025 09:00")
	var invalid *InvalidIntervalError
	assert.ErrorAs(t, err, &invalid)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"10:30", 630, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"1030", 0, true},
		{"ab:cd", 0, true},
		{"9:05", 0, true},
		{"09:5", 0, true},
		{"-1:30", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday("Monday"))
	assert.True(t, IsWeekday("Sunday"))
	assert.False(t, IsWeekday("monday"))
	assert.False(t, IsWeekday("Mon"))
	assert.False(t, IsWeekday(""))
}
