package seed

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
)

// Options controls mock attendance generation. The generator is explicitly
// seeded so a fixed (Seed, Today) pair reproduces the exact same dataset.
type Options struct {
	Seed  int64
	Today time.Time
	Days  int
}

// DefaultUsers returns the seeded user accounts.
func DefaultUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "Dr. Evelyn Reed", Email: "e.reed@university.edu", Role: models.RoleAdmin},
		{ID: 2, Name: "Prof. Alan Grant", Email: "a.grant@university.edu", Role: models.RoleTeacher},
		{ID: 3, Name: "John Hammond", Email: "j.hammond@university.edu", Role: models.RoleStudent},
		{ID: 4, Name: "Ellie Sattler", Email: "e.sattler@university.edu", Role: models.RoleStudent},
		{ID: 5, Name: "Ian Malcolm", Email: "i.malcolm@university.edu", Role: models.RoleStudent},
		{ID: 6, Name: "Robert Muldoon", Email: "r.muldoon@university.edu", Role: models.RolePending},
		{ID: 7, Name: "Prof. Sarah Harding", Email: "s.harding@university.edu", Role: models.RoleTeacher},
		{ID: 8, Name: "Lex Murphy", Email: "l.murphy@university.edu", Role: models.RoleStudent},
		{ID: 9, Name: "Tim Murphy", Email: "t.murphy@university.edu", Role: models.RoleStudent},
	}
}

// DefaultCourses returns the seeded course catalog.
func DefaultCourses() []models.Course {
	return []models.Course{
		{ID: 101, Name: "Introduction to Paleontology", Department: "Biology", TeacherID: 2},
		{ID: 102, Name: "Chaos Theory and Ecosystems", Department: "Mathematics", TeacherID: 7},
		{ID: 103, Name: "Advanced Genetics", Department: "Biology", TeacherID: 2},
	}
}

// DefaultEnrollments returns the seeded student-course memberships.
func DefaultEnrollments() []models.CourseEnrollment {
	return []models.CourseEnrollment{
		{ID: 1, CourseID: 101, StudentID: 3},
		{ID: 2, CourseID: 101, StudentID: 4},
		{ID: 3, CourseID: 101, StudentID: 5},
		{ID: 4, CourseID: 102, StudentID: 5},
		{ID: 5, CourseID: 102, StudentID: 8},
		{ID: 6, CourseID: 102, StudentID: 9},
		{ID: 7, CourseID: 103, StudentID: 3},
		{ID: 8, CourseID: 103, StudentID: 4},
	}
}

// GenerateAttendance produces per-enrollment attendance history for the
// configured number of days, ending at Today. The status split follows the
// observed classroom mix: mostly present, some absent, a few late.
func GenerateAttendance(enrollments []models.CourseEnrollment, opts Options) []models.AttendanceRecord {
	if opts.Days <= 0 {
		opts.Days = 10
	}
	if opts.Today.IsZero() {
		opts.Today = time.Now()
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	records := make([]models.AttendanceRecord, 0, len(enrollments)*opts.Days)
	var recordID int64 = 1
	for _, enrollment := range enrollments {
		for i := 0; i < opts.Days; i++ {
			date := opts.Today.AddDate(0, 0, -i).Format(models.DateLayout)

			var status models.AttendanceStatus
			switch roll := rng.Float64(); {
			case roll < 0.8:
				status = models.StatusPresent
			case roll < 0.95:
				status = models.StatusAbsent
			default:
				status = models.StatusLate
			}

			records = append(records, models.AttendanceRecord{
				ID:        recordID,
				CourseID:  enrollment.CourseID,
				StudentID: enrollment.StudentID,
				Date:      date,
				Status:    status,
			})
			recordID++
		}
	}
	return records
}

// Dataset assembles the full mock snapshot used to prime the session store.
func Dataset(opts Options) store.Snapshot {
	enrollments := DefaultEnrollments()
	return store.Snapshot{
		Users:       DefaultUsers(),
		Courses:     DefaultCourses(),
		Enrollments: enrollments,
		Attendance:  GenerateAttendance(enrollments, opts),
	}
}

// CreateDefaultData primes a fresh store with the mock dataset and logs a
// short summary, mirroring what operators see at startup.
func CreateDefaultData(opts Options, lgr zerolog.Logger) *store.Store {
	data := Dataset(opts)
	lgr.Info().
		Int("users", len(data.Users)).
		Int("courses", len(data.Courses)).
		Int("enrollments", len(data.Enrollments)).
		Int("attendanceRecords", len(data.Attendance)).
		Msg("Seeded in-memory dataset")
	return store.New(data)
}
