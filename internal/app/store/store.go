package store

import (
	"strings"
	"sync"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/pkg/apperrors"
)

// Snapshot is a read-only copy of the four entity collections.
type Snapshot struct {
	Users       []models.User
	Courses     []models.Course
	Enrollments []models.CourseEnrollment
	Attendance  []models.AttendanceRecord
}

// Store owns the authoritative entity collections for one server session.
// Readers get copied slices; mutations are applied through Update* callbacks
// under the write lock, which serializes concurrent marking requests
// (last writer wins, no true conflict detection).
//
// Courses and enrollments are reference data: seeded once, never mutated.
type Store struct {
	mu          sync.RWMutex
	users       []models.User
	courses     []models.Course
	enrollments []models.CourseEnrollment
	attendance  []models.AttendanceRecord
}

// New creates a store primed with the given snapshot.
func New(data Snapshot) *Store {
	return &Store{
		users:       copyUsers(data.Users),
		courses:     copyCourses(data.Courses),
		enrollments: copyEnrollments(data.Enrollments),
		attendance:  copyAttendance(data.Attendance),
	}
}

// Snapshot returns a copy of all four collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Users:       copyUsers(s.users),
		Courses:     copyCourses(s.courses),
		Enrollments: copyEnrollments(s.enrollments),
		Attendance:  copyAttendance(s.attendance),
	}
}

// Users returns a copy of the user collection.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.users)
}

// Courses returns a copy of the course collection.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCourses(s.courses)
}

// Enrollments returns a copy of the enrollment collection.
func (s *Store) Enrollments() []models.CourseEnrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyEnrollments(s.enrollments)
}

// Attendance returns a copy of the attendance record collection.
func (s *Store) Attendance() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAttendance(s.attendance)
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// UserByEmail returns the user whose email matches, case-insensitively.
func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// CourseByID returns the course with the given id.
func (s *Store) CourseByID(id int64) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, apperrors.ErrCourseNotFound
}

// UpdateUsers hands a copy of the user collection to apply and swaps in the
// collection apply returns. The write lock is held across the call, so
// concurrent mutations are applied one at a time.
func (s *Store) UpdateUsers(apply func(users []models.User) ([]models.User, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := apply(copyUsers(s.users))
	if err != nil {
		return err
	}
	s.users = next
	return nil
}

// UpdateAttendance hands a copy of the attendance collection to apply and
// swaps in the collection apply returns.
func (s *Store) UpdateAttendance(apply func(records []models.AttendanceRecord) ([]models.AttendanceRecord, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := apply(copyAttendance(s.attendance))
	if err != nil {
		return err
	}
	s.attendance = next
	return nil
}

func copyUsers(in []models.User) []models.User {
	out := make([]models.User, len(in))
	copy(out, in)
	return out
}

func copyCourses(in []models.Course) []models.Course {
	out := make([]models.Course, len(in))
	copy(out, in)
	return out
}

func copyEnrollments(in []models.CourseEnrollment) []models.CourseEnrollment {
	out := make([]models.CourseEnrollment, len(in))
	copy(out, in)
	return out
}

func copyAttendance(in []models.AttendanceRecord) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, len(in))
	copy(out, in)
	return out
}
