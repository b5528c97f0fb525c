package helpers

import (
	"regexp"
	"testing"
)

func TestAvatarColor(t *testing.T) {
	pattern := regexp.MustCompile(`^hsl\(-?\d+, 50%, 60%\)$`)

	tests := []string{"Alice Johnson", "Prof. Alan Grant", "李华"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			got := AvatarColor(name)
			if !pattern.MatchString(got) {
				t.Errorf("AvatarColor(%q) = %q, want hsl(h, 50%%, 60%%)", name, got)
			}
			if again := AvatarColor(name); again != got {
				t.Errorf("not stable: %q then %q", got, again)
			}
		})
	}

	if got := AvatarColor(""); got != "hsl(0, 0%, 80%)" {
		t.Errorf("AvatarColor(\"\") = %q", got)
	}
}

func TestAvatarInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Alice Johnson", want: "AJ"},
		{name: "single word", in: "Plato", want: "P"},
		{name: "three words keeps first two", in: "Prof. Alan Grant", want: "PA"},
		{name: "lowercase input", in: "jane doe", want: "JD"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvatarInitials(tt.in); got != tt.want {
				t.Errorf("AvatarInitials(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
