package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/pkg/apperrors"
)

func seedSnapshot() Snapshot {
	return Snapshot{
		Users: []models.User{
			{ID: 1, Name: "Admin", Email: "Admin@U.edu", Role: models.RoleAdmin},
			{ID: 2, Name: "Teacher", Email: "teacher@u.edu", Role: models.RoleTeacher},
		},
		Courses: []models.Course{
			{ID: 101, Name: "Intro", Department: "Biology", TeacherID: 2},
		},
		Enrollments: []models.CourseEnrollment{
			{ID: 1, CourseID: 101, StudentID: 3},
		},
		Attendance: []models.AttendanceRecord{
			{ID: 1, CourseID: 101, StudentID: 3, Date: "2026-08-01", Status: models.StatusPresent},
		},
	}
}

func TestReadsReturnCopies(t *testing.T) {
	st := New(seedSnapshot())

	users := st.Users()
	users[0].Name = "Mutated"

	if st.Users()[0].Name != "Admin" {
		t.Error("mutation through read copy leaked into the store")
	}

	snap := st.Snapshot()
	snap.Courses[0].Name = "Mutated"
	if st.Courses()[0].Name != "Intro" {
		t.Error("mutation through snapshot leaked into the store")
	}
}

func TestUserByEmailIsCaseInsensitive(t *testing.T) {
	st := New(seedSnapshot())

	tests := []struct {
		name    string
		email   string
		wantID  int64
		wantErr error
	}{
		{name: "exact case", email: "Admin@U.edu", wantID: 1},
		{name: "lower case", email: "admin@u.edu", wantID: 1},
		{name: "upper case", email: "TEACHER@U.EDU", wantID: 2},
		{name: "unknown", email: "nobody@u.edu", wantErr: apperrors.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := st.UserByEmail(tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && u.ID != tt.wantID {
				t.Errorf("id = %d, want %d", u.ID, tt.wantID)
			}
		})
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	st := New(seedSnapshot())
	boom := errors.New("boom")

	err := st.UpdateUsers(func(users []models.User) ([]models.User, error) {
		users[0].Name = "Mutated"
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if st.Users()[0].Name != "Admin" {
		t.Error("failed update changed the store")
	}
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	st := New(seedSnapshot())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = st.UpdateAttendance(func(records []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
				var maxID int64
				for _, r := range records {
					if r.ID > maxID {
						maxID = r.ID
					}
				}
				return append(records, models.AttendanceRecord{
					ID:        maxID + 1,
					CourseID:  101,
					StudentID: int64(n + 10),
					Date:      "2026-08-02",
					Status:    models.StatusPresent,
				}), nil
			})
		}(i)
	}
	wg.Wait()

	records := st.Attendance()
	if len(records) != 51 {
		t.Fatalf("len = %d, want 51", len(records))
	}
	seen := map[int64]bool{}
	for _, r := range records {
		if seen[r.ID] {
			t.Fatalf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
}
