package timeslot

import "testing"

func TestValidHour(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"07:00", true},
		{"19:00", true},
		{"12:00", true},
		{"06:00", false},
		{"20:00", false},
		{"09:30", false},
		{"9:00", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidHour(tt.label); got != tt.want {
			t.Errorf("ValidHour(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-08-29", true},
		{"2026-02-29", false},
		{"2026-13-01", false},
		{"29-08-2026", false},
		{"2026-8-29", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "09:00", "11:00", "09:00", "11:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"partial front", "09:00", "11:00", "10:00", "12:00", true},
		{"partial back", "10:00", "12:00", "09:00", "11:00", true},
		{"back to back after", "09:00", "10:00", "10:00", "11:00", false},
		{"back to back before", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "07:00", "08:00", "15:00", "17:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps(%q, %q, %q, %q) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}
