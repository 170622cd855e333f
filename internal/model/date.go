package model

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the wire format for calendar dates (no time component)
const DateFormat = "2006-01-02"

// Date is a calendar date that serializes as an ISO-8601 date string
// (YYYY-MM-DD), used for fields like a player's date of birth where the
// time of day is meaningless.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string into a Date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// MarshalJSON encodes the date as "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String returns the date in wire format
func (d Date) String() string {
	return d.Format(DateFormat)
}
