package services

import (
	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
	"github.com/attendly/attendly/internal/pkg/apperrors"
)

// Projection is the read-only subset of the entity collections visible to
// one role/identity pair.
type Projection struct {
	Users    []models.User             `json:"users,omitempty"`
	Courses  []models.Course           `json:"courses"`
	Students []models.User             `json:"students"`
	Records  []models.AttendanceRecord `json:"records"`
}

func emptyProjection() Projection {
	return Projection{
		Courses:  []models.Course{},
		Students: []models.User{},
		Records:  []models.AttendanceRecord{},
	}
}

// ScopeFor computes the entity subset a role/identity pair may see. It is a
// total function over Role: pending (and any unknown role) resolves to an
// empty projection, and an identity missing from the user collection yields
// ErrUserNotFound together with an empty projection so callers can render a
// degraded view instead of crashing.
func ScopeFor(snap store.Snapshot, role models.Role, identity int64) (Projection, error) {
	switch role {
	case models.RoleAdmin:
		p := emptyProjection()
		if _, err := findUser(snap.Users, identity); err != nil {
			return p, err
		}
		p.Users = snap.Users
		p.Courses = snap.Courses
		return p, nil

	case models.RoleTeacher:
		p := emptyProjection()
		if _, err := findUser(snap.Users, identity); err != nil {
			return p, err
		}
		owned := map[int64]bool{}
		for _, c := range snap.Courses {
			if c.TeacherID == identity {
				p.Courses = append(p.Courses, c)
				owned[c.ID] = true
			}
		}
		seen := map[int64]bool{}
		for _, e := range snap.Enrollments {
			if owned[e.CourseID] && !seen[e.StudentID] {
				if u, err := findUser(snap.Users, e.StudentID); err == nil {
					p.Students = append(p.Students, u)
					seen[e.StudentID] = true
				}
			}
		}
		for _, r := range snap.Attendance {
			if owned[r.CourseID] {
				p.Records = append(p.Records, r)
			}
		}
		return p, nil

	case models.RoleStudent:
		p := emptyProjection()
		if _, err := findUser(snap.Users, identity); err != nil {
			return p, err
		}
		enrolled := map[int64]bool{}
		for _, e := range snap.Enrollments {
			if e.StudentID == identity {
				enrolled[e.CourseID] = true
			}
		}
		for _, c := range snap.Courses {
			if enrolled[c.ID] {
				p.Courses = append(p.Courses, c)
			}
		}
		for _, r := range snap.Attendance {
			if r.StudentID == identity {
				p.Records = append(p.Records, r)
			}
		}
		return p, nil

	default:
		// Pending accounts have no data scope; the caller presents the
		// awaiting-approval state instead of a dashboard.
		return emptyProjection(), nil
	}
}

// CourseRoster returns the students enrolled in one course, in user order.
func CourseRoster(snap store.Snapshot, courseID int64) []models.User {
	var students []models.User
	for _, e := range snap.Enrollments {
		if e.CourseID != courseID {
			continue
		}
		if u, err := findUser(snap.Users, e.StudentID); err == nil {
			students = append(students, u)
		}
	}
	return students
}

func findUser(users []models.User, id int64) (models.User, error) {
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// ScopeService defines role-scoped read operations over the session store
type ScopeService interface {
	For(role models.Role, identity int64) (Projection, error)
	TeacherCourses(teacherID int64) ([]models.Course, error)
	Roster(teacherID, courseID int64, date string) ([]RosterEntry, error)
}

// RosterEntry pairs an enrolled student with their mark for one date, if any.
type RosterEntry struct {
	Student models.User              `json:"student"`
	Record  *models.AttendanceRecord `json:"record,omitempty"`
}

// scopeServiceImpl implements the ScopeService interface
type scopeServiceImpl struct {
	store *store.Store
}

// NewScopeService creates a new scope service instance
func NewScopeService(st *store.Store) ScopeService {
	return &scopeServiceImpl{store: st}
}

// For resolves the visible projection for a role/identity pair.
func (s *scopeServiceImpl) For(role models.Role, identity int64) (Projection, error) {
	return ScopeFor(s.store.Snapshot(), role, identity)
}

// TeacherCourses returns the courses taught by the given teacher.
func (s *scopeServiceImpl) TeacherCourses(teacherID int64) ([]models.Course, error) {
	if _, err := s.store.UserByID(teacherID); err != nil {
		return nil, err
	}
	courses := []models.Course{}
	for _, c := range s.store.Courses() {
		if c.TeacherID == teacherID {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

// Roster returns the enrolled students of one of the teacher's courses
// together with their marks for the given date.
func (s *scopeServiceImpl) Roster(teacherID, courseID int64, date string) ([]RosterEntry, error) {
	course, err := s.store.CourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if course.TeacherID != teacherID {
		return nil, apperrors.ErrPermissionDenied
	}

	snap := s.store.Snapshot()
	entries := []RosterEntry{}
	for _, student := range CourseRoster(snap, courseID) {
		entry := RosterEntry{Student: student}
		for _, r := range snap.Attendance {
			if r.StudentID == student.ID && r.CourseID == courseID && r.Date == date {
				record := r
				entry.Record = &record
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
