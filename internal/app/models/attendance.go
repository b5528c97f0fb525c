package models

// DateLayout is the calendar-date form used by attendance records.
const DateLayout = "2006-01-02"

// AttendanceRecord stores one student's status for one course on one date.
// Invariant: at most one record exists per (StudentID, CourseID, Date)
// triple; marking an already-marked triple replaces the status in place.
type AttendanceRecord struct {
	ID        int64            `json:"id" example:"42"`
	CourseID  int64            `json:"courseId" example:"101"`
	StudentID int64            `json:"studentId" example:"3"`
	Date      string           `json:"date" example:"2026-08-28"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status" example:"present"`
}

// AttendanceStats holds the aggregate counts derived from a record set.
// Percentage counts late arrivals toward the favorable rate alongside
// present ones; a late student is not an absent one.
type AttendanceStats struct {
	Present    int     `json:"present" example:"8"`
	Absent     int     `json:"absent" example:"1"`
	Late       int     `json:"late" example:"1"`
	Percentage float64 `json:"percentage" example:"90.0"`
}
