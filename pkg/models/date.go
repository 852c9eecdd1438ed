package models

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day (no time-of-day component). It is the join key
// across all plan rows and serializes as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// WeekdayMon returns the weekday with Monday as 0 and Sunday as 6,
// matching the season rule convention.
func (d Date) WeekdayMon() int {
	return (int(d.Weekday()) + 6) % 7
}

// BeforeDate reports whether d falls on an earlier day than other.
func (d Date) BeforeDate(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
