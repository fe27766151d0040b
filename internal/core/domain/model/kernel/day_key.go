package kernel

import (
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

const (
	dayKeyLayout = "2006-01-02"

	// DayKeyPlaceholder is displayed for empty or malformed day keys.
	DayKeyPlaceholder = "—"
)

// DayKey identifies a local calendar day as "YYYY-MM-DD".
// The zero value means "no day" and is used for an unset day filter.
type DayKey string

// DayKeyOf returns the day key of the local calendar date of t.
// Two instants one minute apart around local midnight get different keys.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Local().Format(dayKeyLayout))
}

// ParseDayKey validates s as a "YYYY-MM-DD" calendar date.
func ParseDayKey(s string) (DayKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("dayKey")
	}
	if _, err := time.ParseInLocation(dayKeyLayout, s, time.Local); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("dayKey", err)
	}
	return DayKey(s), nil
}

// String returns the key text.
func (k DayKey) String() string {
	return string(k)
}

// IsZero reports whether the key is empty.
func (k DayKey) IsZero() bool {
	return strings.TrimSpace(string(k)) == ""
}

// Display renders the key as "DD/MM/YYYY". Keys without three non-empty
// dash separated parts render as DayKeyPlaceholder.
func (k DayKey) Display() string {
	parts := strings.Split(string(k), "-")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return DayKeyPlaceholder
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
