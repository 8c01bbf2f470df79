package models

// ScheduleEntry is a recurring weekly time slot belonging to a course.
// Start and End are minutes from midnight; the labels keep the original
// "HH:MM" form for responses.
type ScheduleEntry struct {
	Day        string `json:"day"`         // One of the seven weekday names, case-sensitive
	Start      int    `json:"start"`       // Minutes from midnight
	End        int    `json:"end"`         // Minutes from midnight
	StartLabel string `json:"start_label"` // e.g., "10:00"
	EndLabel   string `json:"end_label"`   // e.g., "11:30"
	Venue      string `json:"venue"`
}

// Course is a catalog entry together with its roster and weekly schedule.
type Course struct {
	Code        string          `json:"code"`     // 6 chars: 3 uppercase letters + 3 digits
	Name        string          `json:"name"`     // Course title, non-empty
	Lecturer    string          `json:"lecturer"` // Assigned lecturer identifier
	Fee         float64         `json:"fee"`
	Credits     int             `json:"credits"`
	MaxCapacity int             `json:"max_capacity"`
	Enrolled    []string        `json:"enrolled"` // Student IDs, insertion order
	Schedule    []ScheduleEntry `json:"schedule"`
}

// AvailableSeats returns the remaining roster capacity.
func (c *Course) AvailableSeats() int {
	return c.MaxCapacity - len(c.Enrolled)
}

// CreditsForCode returns the credit weight used across GPA and semester
// totals: CS and SE courses carry 3 credits, everything else 2.
func CreditsForCode(code string) int {
	if len(code) >= 2 && (code[:2] == "CS" || code[:2] == "SE") {
		return 3
	}
	return 2
}
