package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/attendly/attendly/internal/app/models"
)

func TestUsersCSV(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Alice Johnson", Email: "alice@u.edu", Role: models.RoleAdmin},
		{ID: 2, Name: "Doe, Jane", Email: "jane@u.edu", Role: models.RoleStudent},
		{ID: 3, Name: `Robert "Bob" Smith`, Email: "bob@u.edu", Role: models.RoleTeacher},
	}

	got := UsersCSV(users)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if lines[0] != "id,name,email,role" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `1,"Alice Johnson","alice@u.edu",admin` {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[3] != `3,"Robert ""Bob"" Smith","bob@u.edu",teacher` {
		t.Errorf("row 3 = %q", lines[3])
	}
}

func TestUsersCSVRoundTrip(t *testing.T) {
	users := []models.User{
		{ID: 2, Name: "Doe, Jane", Email: "jane@u.edu", Role: models.RoleStudent},
		{ID: 3, Name: `Robert "Bob" Smith`, Email: "bob@u.edu", Role: models.RoleTeacher},
	}

	rows, err := csv.NewReader(strings.NewReader(UsersCSV(users))).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1][1] != "Doe, Jane" {
		t.Errorf("name = %q, want embedded comma preserved", rows[1][1])
	}
	if rows[2][1] != `Robert "Bob" Smith` {
		t.Errorf("name = %q, want embedded quotes preserved", rows[2][1])
	}
}

func TestUsersCSVEmptyCollection(t *testing.T) {
	if got := UsersCSV(nil); got != "id,name,email,role\n" {
		t.Errorf("UsersCSV(nil) = %q", got)
	}
}
