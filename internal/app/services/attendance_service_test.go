package services

import (
	"errors"
	"testing"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
	"github.com/attendly/attendly/internal/pkg/apperrors"
)

func record(id, courseID, studentID int64, date string, status models.AttendanceStatus) models.AttendanceRecord {
	return models.AttendanceRecord{ID: id, CourseID: courseID, StudentID: studentID, Date: date, Status: status}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name    string
		records []models.AttendanceRecord
		want    models.AttendanceStats
	}{
		{
			name: "empty set yields zeroes",
			want: models.AttendanceStats{},
		},
		{
			name: "late counts as favorable",
			records: []models.AttendanceRecord{
				record(1, 101, 3, "2026-08-01", models.StatusPresent),
				record(2, 101, 3, "2026-08-02", models.StatusPresent),
				record(3, 101, 3, "2026-08-03", models.StatusPresent),
				record(4, 101, 3, "2026-08-04", models.StatusLate),
				record(5, 101, 3, "2026-08-05", models.StatusAbsent),
			},
			want: models.AttendanceStats{Present: 3, Absent: 1, Late: 1, Percentage: 80.0},
		},
		{
			name: "all absent",
			records: []models.AttendanceRecord{
				record(1, 101, 3, "2026-08-01", models.StatusAbsent),
				record(2, 101, 3, "2026-08-02", models.StatusAbsent),
			},
			want: models.AttendanceStats{Absent: 2, Percentage: 0},
		},
		{
			name: "rounds half up to one decimal",
			records: []models.AttendanceRecord{
				record(1, 101, 3, "2026-08-01", models.StatusPresent),
				record(2, 101, 3, "2026-08-02", models.StatusPresent),
				record(3, 101, 3, "2026-08-03", models.StatusAbsent),
			},
			want: models.AttendanceStats{Present: 2, Absent: 1, Percentage: 66.7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStats(tt.records); got != tt.want {
				t.Errorf("ComputeStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeStatsDoesNotMutateInput(t *testing.T) {
	records := []models.AttendanceRecord{
		record(1, 101, 3, "2026-08-01", models.StatusPresent),
	}
	before := records[0]
	ComputeStats(records)
	if records[0] != before {
		t.Errorf("input mutated: %+v", records[0])
	}
}

func TestMarkAttendance(t *testing.T) {
	base := []models.AttendanceRecord{
		record(1, 101, 3, "2026-08-01", models.StatusPresent),
		record(2, 101, 4, "2026-08-01", models.StatusAbsent),
		record(6, 102, 5, "2026-08-01", models.StatusLate),
	}

	t.Run("replaces existing triple in place", func(t *testing.T) {
		next, err := MarkAttendance(base, 4, 101, "2026-08-01", models.StatusPresent)
		if err != nil {
			t.Fatalf("MarkAttendance() error = %v", err)
		}
		if len(next) != len(base) {
			t.Fatalf("len = %d, want %d", len(next), len(base))
		}
		if next[1].ID != 2 || next[1].Status != models.StatusPresent {
			t.Errorf("record = %+v, want id 2 with status present", next[1])
		}
		// original untouched
		if base[1].Status != models.StatusAbsent {
			t.Errorf("input mutated: %+v", base[1])
		}
	})

	t.Run("appends new record with max id plus one", func(t *testing.T) {
		next, err := MarkAttendance(base, 5, 101, "2026-08-02", models.StatusLate)
		if err != nil {
			t.Fatalf("MarkAttendance() error = %v", err)
		}
		if len(next) != len(base)+1 {
			t.Fatalf("len = %d, want %d", len(next), len(base)+1)
		}
		got := next[len(next)-1]
		if got.ID != 7 {
			t.Errorf("new id = %d, want 7", got.ID)
		}
	})

	t.Run("never yields two records for one triple", func(t *testing.T) {
		next, err := MarkAttendance(base, 3, 101, "2026-08-01", models.StatusLate)
		if err != nil {
			t.Fatalf("MarkAttendance() error = %v", err)
		}
		count := 0
		for _, r := range next {
			if r.StudentID == 3 && r.CourseID == 101 && r.Date == "2026-08-01" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("duplicate records for triple: %d", count)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		next, err := MarkAttendance(base, 3, 101, "2026-08-01", "excused")
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
		if len(next) != len(base) {
			t.Errorf("collection changed on validation failure")
		}
	})

	t.Run("rejects empty date", func(t *testing.T) {
		if _, err := MarkAttendance(base, 3, 101, "", models.StatusPresent); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})
}

func testStore() *store.Store {
	return store.New(store.Snapshot{
		Users: []models.User{
			{ID: 1, Name: "Admin", Email: "admin@u.edu", Role: models.RoleAdmin},
			{ID: 2, Name: "Teacher", Email: "teacher@u.edu", Role: models.RoleTeacher},
			{ID: 3, Name: "Student A", Email: "a@u.edu", Role: models.RoleStudent},
			{ID: 4, Name: "Student B", Email: "b@u.edu", Role: models.RoleStudent},
			{ID: 7, Name: "Other Teacher", Email: "other@u.edu", Role: models.RoleTeacher},
		},
		Courses: []models.Course{
			{ID: 101, Name: "Intro", Department: "Biology", TeacherID: 2},
			{ID: 102, Name: "Chaos", Department: "Mathematics", TeacherID: 7},
		},
		Enrollments: []models.CourseEnrollment{
			{ID: 1, CourseID: 101, StudentID: 3},
			{ID: 2, CourseID: 101, StudentID: 4},
			{ID: 3, CourseID: 102, StudentID: 3},
		},
		Attendance: []models.AttendanceRecord{
			record(1, 101, 3, "2026-08-01", models.StatusPresent),
			record(2, 101, 3, "2026-08-02", models.StatusAbsent),
			record(3, 101, 4, "2026-08-01", models.StatusLate),
			record(4, 102, 3, "2026-08-01", models.StatusPresent),
		},
	})
}

func TestAttendanceServiceMark(t *testing.T) {
	svc := NewAttendanceService(testStore())

	t.Run("rejects course not owned by teacher", func(t *testing.T) {
		if _, err := svc.Mark(7, 101, 3, "2026-08-03", models.StatusPresent); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("rejects unknown course", func(t *testing.T) {
		if _, err := svc.Mark(2, 999, 3, "2026-08-03", models.StatusPresent); !errors.Is(err, apperrors.ErrCourseNotFound) {
			t.Errorf("error = %v, want ErrCourseNotFound", err)
		}
	})

	t.Run("rejects unenrolled student", func(t *testing.T) {
		if _, err := svc.Mark(2, 101, 99, "2026-08-03", models.StatusPresent); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("records a new mark", func(t *testing.T) {
		marked, err := svc.Mark(2, 101, 3, "2026-08-03", models.StatusLate)
		if err != nil {
			t.Fatalf("Mark() error = %v", err)
		}
		if marked.ID != 5 || marked.Status != models.StatusLate {
			t.Errorf("marked = %+v, want id 5 status late", marked)
		}
	})

	t.Run("marking twice is idempotent on count", func(t *testing.T) {
		st := testStore()
		svc := NewAttendanceService(st)
		if _, err := svc.Mark(2, 101, 3, "2026-08-05", models.StatusPresent); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Mark(2, 101, 3, "2026-08-05", models.StatusAbsent); err != nil {
			t.Fatal(err)
		}
		count := 0
		for _, r := range st.Attendance() {
			if r.StudentID == 3 && r.CourseID == 101 && r.Date == "2026-08-05" {
				count++
				if r.Status != models.StatusAbsent {
					t.Errorf("status = %s, want absent", r.Status)
				}
			}
		}
		if count != 1 {
			t.Errorf("records for triple = %d, want 1", count)
		}
	})
}

func TestStudentRecordsOrderAndFilter(t *testing.T) {
	svc := NewAttendanceService(testStore())

	records := svc.StudentRecords(3, 0)
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Date < records[i].Date {
			t.Errorf("records not in newest-first order: %s before %s", records[i-1].Date, records[i].Date)
		}
	}

	scoped := svc.StudentRecords(3, 102)
	if len(scoped) != 1 || scoped[0].CourseID != 102 {
		t.Errorf("scoped = %+v, want single course 102 record", scoped)
	}
}

func TestStudentStats(t *testing.T) {
	svc := NewAttendanceService(testStore())

	// Student 3 has present, absent, present across both courses.
	got := svc.StudentStats(3)
	want := models.AttendanceStats{Present: 2, Absent: 1, Percentage: 66.7}
	if got != want {
		t.Errorf("StudentStats() = %+v, want %+v", got, want)
	}
}
