package models

import (
	"fmt"
	"strconv"
	"time"
)

// BookingTimeLayout is the wire format for absolute booking timestamps.
const BookingTimeLayout = "02-01-2006 15:04"

// Weekday order used for schedule sorting and day-label validation.
var DayOrder = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

// IsWeekday reports whether day is one of the seven weekday names.
// Matching is case-sensitive on purpose: "monday" is not a valid label.
func IsWeekday(day string) bool {
	_, ok := DayOrder[day]
	return ok
}

// Overlaps reports whether the half-open minute ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count as overlap, so
// back-to-back slots sharing a boundary minute are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// TimeInterval is a half-open absolute time range [Start, End).
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeInterval builds a TimeInterval, rejecting degenerate ranges.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, &InvalidIntervalError{
			Message: fmt.Sprintf("end time %s must be after start time %s",
				end.Format(BookingTimeLayout), start.Format(BookingTimeLayout)),
		}
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps applies the same strict-inequality convention as the minute form.
func (ti TimeInterval) Overlaps(other TimeInterval) bool {
	return ti.Start.Before(other.End) && other.Start.Before(ti.End)
}

// Hours returns the interval length in fractional hours.
func (ti TimeInterval) Hours() float64 {
	return ti.End.Sub(ti.Start).Hours()
}

// ParseBookingTime parses an absolute timestamp in BookingTimeLayout.
func ParseBookingTime(s string) (time.Time, error) {
	t, err := time.Parse(BookingTimeLayout, s)
	if err != nil {
		return time.Time{}, &InvalidIntervalError{
			Message: fmt.Sprintf("invalid booking time %q, expected DD-MM-YYYY HH:MM", s),
		}
	}
	return t, nil
}

// ParseBookingInterval parses two absolute timestamps into a validated interval.
func ParseBookingInterval(start, end string) (TimeInterval, error) {
	s, err := ParseBookingTime(start)
	if err != nil {
		return TimeInterval{}, err
	}
	e, err := ParseBookingTime(end)
	if err != nil {
		return TimeInterval{}, err
	}
	return NewTimeInterval(s, e)
}

// ParseClock converts an "HH:MM" clock string to minutes from midnight.
// Both fields must be exactly two digits; "9:05" and "09:5" are rejected.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, &InvalidIntervalError{Message: fmt.Sprintf("invalid clock time %q, expected HH:MM", s)}
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	if h > 23 {
		return 0, &InvalidIntervalError{Message: fmt.Sprintf("invalid hour in clock time %q", s)}
	}
	if m > 59 {
		return 0, &InvalidIntervalError{Message: fmt.Sprintf("invalid minute in clock time %q", s)}
	}
	return h*60 + m, nil
}

// InvalidIntervalError reports a malformed or degenerate time range.
type InvalidIntervalError struct {
	Message string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalidInterval: %s", e.Message)
}
