package domain

import (
	"strings"
	"time"
)

// NormalizeHumanName trims leading/trailing whitespace and collapses internal whitespace runs.
// It is used for crew member and aircraft type names arriving from the feeds.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank reports whether an optional text field is unset or whitespace-only.
func IsBlank(p *string) bool {
	return p == nil || strings.TrimSpace(*p) == ""
}

// DateOnly truncates t to midnight UTC of its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// enumKey upper-cases s and joins its words with underscores.
func enumKey(s string) string {
	return strings.ToUpper(strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "_"))
}
