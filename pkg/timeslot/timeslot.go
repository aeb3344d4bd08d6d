// Package timeslot owns the reservable hour grid and the interval rules
// built on it. Slots are zero-padded "HH:00" labels, so lexicographic
// comparison is chronological comparison; if the grid ever moves to
// arbitrary minute-level times this package must switch to a real time
// type instead of string ordering.
package timeslot

import "time"

// DateLayout is the calendar date form used across the service.
// Like the slot labels, it compares lexicographically.
const DateLayout = "2006-01-02"

// Hours is the reservable grid, first to last bookable boundary.
var Hours = []string{
	"07:00", "08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

// ValidHour reports whether label is one of the grid boundaries.
func ValidHour(label string) bool {
	for _, h := range Hours {
		if h == label {
			return true
		}
	}
	return false
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current calendar date from the ambient clock.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back slots do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
