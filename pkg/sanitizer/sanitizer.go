// Package sanitizer normalizes free-text request fields before validation.
// All functions are idempotent and never return errors; invalid input
// degrades to the empty string.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims leading/trailing whitespace and collapses inner
// whitespace runs to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeName prepares a requester name for storage and display.
func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeObservation prepares the optional free-text note.
func NormalizeObservation(observation string) string {
	return TrimAndNormalize(observation)
}
