package dto

import (
	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/services"
)

// MarkAttendanceRequest represents a single attendance mark for a student
// in a course on a calendar day.
type MarkAttendanceRequest struct {
	StudentID int64                   `json:"studentId" binding:"required" example:"4"`
	Date      string                  `json:"date" binding:"required,attdate" example:"2026-08-28"`
	Status    models.AttendanceStatus `json:"status" binding:"required,attstatus" example:"present"`
}

// RosterEntryResponse represents one enrolled student on a roster day,
// with the record for that day when one exists.
type RosterEntryResponse struct {
	Student UserResponse             `json:"student"`
	Record  *models.AttendanceRecord `json:"record,omitempty"`
}

// RosterResponse represents a course roster for a single day
type RosterResponse struct {
	CourseID int64                 `json:"courseId" example:"101"`
	Date     string                `json:"date" example:"2026-08-28"`
	Entries  []RosterEntryResponse `json:"entries"`
}

// AttendanceListResponse represents a student's dated history, newest first
type AttendanceListResponse struct {
	Records []models.AttendanceRecord `json:"records"`
	Total   int                       `json:"total" example:"42"`
}

// AttendanceSummaryResponse represents derived statistics, overall and
// broken down per course.
type AttendanceSummaryResponse struct {
	Overall models.AttendanceStats  `json:"overall"`
	Courses []services.CourseReport `json:"courses"`
}
