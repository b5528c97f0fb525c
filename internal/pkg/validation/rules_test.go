package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsCalendarDate(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"2026-08-28", true},
		{"1999-01-01", true},
		{"2026-8-28", false},
		{"28-08-2026", false},
		{"2026/08/28", false},
		{"", false},
		{"2026-08-28T00:00:00Z", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsCalendarDate(tt.value); got != tt.want {
				t.Errorf("IsCalendarDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRegisteredValidators(t *testing.T) {
	v := validator.New()
	if err := Register(v); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	type payload struct {
		Date   string `validate:"attdate"`
		Role   string `validate:"attrole"`
		Status string `validate:"attstatus"`
	}

	tests := []struct {
		name    string
		in      payload
		wantErr bool
	}{
		{name: "all valid", in: payload{Date: "2026-08-28", Role: "teacher", Status: "late"}},
		{name: "bad date", in: payload{Date: "today", Role: "teacher", Status: "late"}, wantErr: true},
		{name: "bad role", in: payload{Date: "2026-08-28", Role: "janitor", Status: "late"}, wantErr: true},
		{name: "bad status", in: payload{Date: "2026-08-28", Role: "teacher", Status: "excused"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
