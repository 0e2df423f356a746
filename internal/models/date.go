package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical storage and input format for due dates
const DateLayout = "2006-01-02"

// DateOf strips the clock from t, returning midnight UTC of t's calendar day
// in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsBefore reports whether calendar day a is strictly earlier than calendar day b
func IsBefore(a, b time.Time) bool {
	return DateOf(a).Before(DateOf(b))
}
