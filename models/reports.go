package models

// StudentReport is the JSON report surface for a student record.
type StudentReport struct {
	StudentID        string            `json:"student_id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	EnrolledCourses  []string          `json:"enrolled_courses"`
	FeesPaid         float64           `json:"fees_paid"`
	Balance          float64           `json:"balance"`
	PaymentHistory   []Payment         `json:"payment_history"`
	GPA              float64           `json:"gpa"`
	TuitionBalance   float64           `json:"tuition_balance"`
	CompletedCourses []CompletedCourse `json:"completed_courses"`
}

// Transcript is the academic summary served per student.
type Transcript struct {
	Name          string            `json:"name"`
	StudentID     string            `json:"student_id"`
	Program       string            `json:"program"`
	AdmissionYear int               `json:"admission_year"`
	GPA           float64           `json:"gpa"`
	TotalCredits  int               `json:"total_credits"`
	Courses       []CompletedCourse `json:"courses"`
}

// CourseReport is the JSON report surface for a catalog entry.
type CourseReport struct {
	CourseCode     string          `json:"course_code"`
	CourseName     string          `json:"course_name"`
	Lecturer       string          `json:"lecturer"`
	Enrolled       []string        `json:"enrolled"`
	Schedule       []ScheduleEntry `json:"schedule"`
	Fee            float64         `json:"fee"`
	Credits        int             `json:"credits"`
	MaxCapacity    int             `json:"max_capacity"`
	AvailableSeats int             `json:"available_seats"`
}

// ScheduleView is one row of a student's weekly schedule.
type ScheduleView struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Venue      string `json:"venue"`
	Lecturer   string `json:"lecturer"`
}
