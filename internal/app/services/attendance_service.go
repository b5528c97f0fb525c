package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
	"github.com/attendly/attendly/internal/pkg/apperrors"
)

// ComputeStats derives aggregate counts from a record set. The percentage
// counts present and late records as favorable, rounded half-up to one
// decimal; an empty set yields all zeroes. The input is never mutated.
func ComputeStats(records []models.AttendanceRecord) models.AttendanceStats {
	var stats models.AttendanceStats
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			stats.Present++
		case models.StatusAbsent:
			stats.Absent++
		case models.StatusLate:
			stats.Late++
		}
	}

	total := len(records)
	if total > 0 {
		stats.Percentage = round1(float64(stats.Present+stats.Late) / float64(total) * 100)
	}
	return stats
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MarkAttendance upserts one status for the (student, course, date) triple.
// An existing record keeps its id and has its status replaced; otherwise a
// new record is appended with id = max existing id + 1. The input collection
// is never mutated and the result never holds two records for one triple.
func MarkAttendance(records []models.AttendanceRecord, studentID, courseID int64, date string, status models.AttendanceStatus) ([]models.AttendanceRecord, error) {
	if !status.Valid() {
		return records, apperrors.NewValidationError(fmt.Sprintf("unknown attendance status %q", status))
	}
	if date == "" {
		return records, apperrors.NewValidationError("date is required")
	}

	next := make([]models.AttendanceRecord, len(records))
	copy(next, records)

	for i, r := range next {
		if r.StudentID == studentID && r.CourseID == courseID && r.Date == date {
			next[i].Status = status
			return next, nil
		}
	}

	var maxID int64
	for _, r := range next {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	next = append(next, models.AttendanceRecord{
		ID:        maxID + 1,
		CourseID:  courseID,
		StudentID: studentID,
		Date:      date,
		Status:    status,
	})
	return next, nil
}

// AttendanceService defines attendance marking and retrieval operations
type AttendanceService interface {
	Mark(teacherID, courseID, studentID int64, date string, status models.AttendanceStatus) (models.AttendanceRecord, error)
	StudentRecords(studentID, courseID int64) []models.AttendanceRecord
	StudentStats(studentID int64) models.AttendanceStats
	CourseStats(studentID, courseID int64) models.AttendanceStats
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	store *store.Store
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(st *store.Store) AttendanceService {
	return &attendanceServiceImpl{store: st}
}

// Mark records or replaces one student's status for a course on a date.
// The acting teacher must own the course and the student must be enrolled.
func (s *attendanceServiceImpl) Mark(teacherID, courseID, studentID int64, date string, status models.AttendanceStatus) (models.AttendanceRecord, error) {
	course, err := s.store.CourseByID(courseID)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	if course.TeacherID != teacherID {
		return models.AttendanceRecord{}, apperrors.ErrPermissionDenied
	}

	enrolled := false
	for _, e := range s.store.Enrollments() {
		if e.CourseID == courseID && e.StudentID == studentID {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return models.AttendanceRecord{}, apperrors.NewValidationError("student is not enrolled in this course")
	}

	var marked models.AttendanceRecord
	err = s.store.UpdateAttendance(func(records []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
		next, err := MarkAttendance(records, studentID, courseID, date, status)
		if err != nil {
			return nil, err
		}
		for _, r := range next {
			if r.StudentID == studentID && r.CourseID == courseID && r.Date == date {
				marked = r
				break
			}
		}
		return next, nil
	})
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	return marked, nil
}

// StudentRecords returns a student's records, newest date first. A zero
// courseID returns records across all courses.
func (s *attendanceServiceImpl) StudentRecords(studentID, courseID int64) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range s.store.Attendance() {
		if r.StudentID != studentID {
			continue
		}
		if courseID != 0 && r.CourseID != courseID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// StudentStats aggregates a student's records across all courses.
func (s *attendanceServiceImpl) StudentStats(studentID int64) models.AttendanceStats {
	return ComputeStats(s.StudentRecords(studentID, 0))
}

// CourseStats aggregates a student's records within one course.
func (s *attendanceServiceImpl) CourseStats(studentID, courseID int64) models.AttendanceStats {
	return ComputeStats(s.StudentRecords(studentID, courseID))
}
