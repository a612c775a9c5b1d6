package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire form for calendar dates ("2025-11-26").
const DateLayout = "2006-01-02"

// DisplayDateLayout is the form shown in tables and exports ("26-11-2025").
const DisplayDateLayout = "02-01-2006"

// Date wraps time.Time so we can control JSON un/marshaling and force
// day-granularity comparison. Every record date in the CRM is a calendar
// date; time-of-day is never meaningful.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year/month/day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses the "YYYY-MM-DD" wire form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("models.ParseDate: cannot parse %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time exposes the underlying midnight-UTC instant.
func (d Date) Time() time.Time { return d.t }

// Before compares at day resolution.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After compares at day resolution.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal compares at day resolution.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date { return DateOf(d.t.AddDate(0, 0, n)) }

// Weekday returns the English weekday label ("Monday").
func (d Date) Weekday() string { return d.t.Weekday().String() }

// String renders the wire form.
func (d Date) String() string { return d.t.Format(DateLayout) }

// Display renders the DD-MM-YYYY form used by tables and spreadsheets.
func (d Date) Display() string { return d.t.Format(DisplayDateLayout) }

// MarshalJSON emits "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(DateLayout))
}

// UnmarshalJSON accepts "YYYY-MM-DD" and, for tolerance with data written by
// older builds, full RFC3339 timestamps (truncated to their date).
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("models.Date: expected string, got %s", string(b))
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = DateOf(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("models.Date: cannot parse %q", s)
	}
	*d = DateOf(t)
	return nil
}

// MaxDate returns the later of two dates.
func MaxDate(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}
