package export

import (
	"strconv"
	"strings"

	"github.com/attendly/attendly/internal/app/models"
)

// UserCSVHeader is the fixed column order of the user export.
var UserCSVHeader = []string{"id", "name", "email", "role"}

// UsersCSV renders the user collection as a comma-separated document with
// one header row. Name and email are always double-quoted so embedded
// commas survive a round trip; embedded quotes are doubled per RFC 4180.
func UsersCSV(users []models.User) string {
	var b strings.Builder
	b.WriteString(strings.Join(UserCSVHeader, ","))
	b.WriteByte('\n')

	for _, u := range users {
		b.WriteString(strconv.FormatInt(u.ID, 10))
		b.WriteByte(',')
		b.WriteString(quote(u.Name))
		b.WriteByte(',')
		b.WriteString(quote(u.Email))
		b.WriteByte(',')
		b.WriteString(string(u.Role))
		b.WriteByte('\n')
	}
	return b.String()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
