package services

import (
	"sort"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
)

// CourseReport is one course with the acting student's derived statistics
// and dated history, newest first.
type CourseReport struct {
	Course  models.Course             `json:"course"`
	Stats   models.AttendanceStats    `json:"stats"`
	Records []models.AttendanceRecord `json:"records"`
}

// Dashboard is the role-shaped payload behind the dashboard endpoint.
// Exactly one of the role sections is populated.
type Dashboard struct {
	Role    models.Role       `json:"role"`
	Admin   *AdminDashboard   `json:"admin,omitempty"`
	Teacher *TeacherDashboard `json:"teacher,omitempty"`
	Student *StudentDashboard `json:"student,omitempty"`
	Pending bool              `json:"pending,omitempty"`
}

// AdminDashboard carries the headline counts and the managed user list.
type AdminDashboard struct {
	Summary UserSummary   `json:"summary"`
	Users   []models.User `json:"users"`
}

// TeacherDashboard carries the teacher's own course list.
type TeacherDashboard struct {
	Courses []models.Course `json:"courses"`
}

// StudentDashboard carries overall stats plus a per-course breakdown.
type StudentDashboard struct {
	Overall models.AttendanceStats `json:"overall"`
	Courses []CourseReport         `json:"courses"`
}

// DashboardService assembles the per-role dashboard payloads
type DashboardService interface {
	For(role models.Role, identity int64) (Dashboard, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardServiceImpl{store: st}
}

// For builds the dashboard for a role/identity pair. The role switch is
// total: pending and unknown roles get the awaiting-approval state.
func (s *dashboardServiceImpl) For(role models.Role, identity int64) (Dashboard, error) {
	snap := s.store.Snapshot()
	scope, err := ScopeFor(snap, role, identity)
	if err != nil {
		return Dashboard{}, err
	}

	dash := Dashboard{Role: role}
	switch role {
	case models.RoleAdmin:
		summary := UserSummary{TotalCourses: len(snap.Courses)}
		for _, u := range scope.Users {
			summary.TotalUsers++
			switch u.Role {
			case models.RoleTeacher:
				summary.Teachers++
			case models.RoleStudent:
				summary.Students++
			}
		}
		dash.Admin = &AdminDashboard{Summary: summary, Users: scope.Users}

	case models.RoleTeacher:
		dash.Teacher = &TeacherDashboard{Courses: scope.Courses}

	case models.RoleStudent:
		student := &StudentDashboard{
			Overall: ComputeStats(scope.Records),
			Courses: []CourseReport{},
		}
		for _, course := range scope.Courses {
			var records []models.AttendanceRecord
			for _, r := range scope.Records {
				if r.CourseID == course.ID {
					records = append(records, r)
				}
			}
			sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })
			student.Courses = append(student.Courses, CourseReport{
				Course:  course,
				Stats:   ComputeStats(records),
				Records: records,
			})
		}
		dash.Student = student

	default:
		dash.Pending = true
	}
	return dash, nil
}
