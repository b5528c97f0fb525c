package helpers

import (
	"fmt"
	"strings"
)

// AvatarColor derives a stable HSL background color from a display name.
// The hash is computed in 32-bit arithmetic so the same name always maps to
// the same hue regardless of platform.
func AvatarColor(name string) string {
	if len(name) == 0 {
		return "hsl(0, 0%, 80%)"
	}
	var hash int32
	for _, r := range name {
		hash = int32(r) + ((hash << 5) - hash)
	}
	h := hash % 360
	return fmt.Sprintf("hsl(%d, 50%%, 60%%)", h)
}

// AvatarInitials returns the uppercased initials of the first two words of
// a display name.
func AvatarInitials(name string) string {
	var initials strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		initials.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return initials.String()
}
