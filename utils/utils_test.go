package utils

import (
	"strings"
	"testing"
)

func TestGenerateOrderNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := GenerateOrderNumber()
		if !strings.HasPrefix(n, "SHF-") {
			t.Fatalf("expected SHF- prefix, got %s", n)
		}
		if seen[n] {
			t.Fatalf("duplicate order number generated: %s", n)
		}
		seen[n] = true
	}
}

func TestParseAppointmentTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		wantErr bool
	}{
		{"valid", "2026-09-15", "10:30", false},
		{"valid with spaces", " 2026-09-15 ", " 10:30 ", false},
		{"empty date", "", "10:30", true},
		{"empty time", "2026-09-15", "", true},
		{"bad date layout", "15-09-2026", "10:30", true},
		{"bad time layout", "2026-09-15", "10.30", true},
		{"12 hour clock", "2026-09-15", "10:30 AM", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			when, err := ParseAppointmentTime(tt.date, tt.time)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected parse error, got %v", when)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := when.Format(AppointmentTimeLayout); got != "2026-09-15 10:30" {
				t.Errorf("expected 2026-09-15 10:30, got %s", got)
			}
		})
	}
}
