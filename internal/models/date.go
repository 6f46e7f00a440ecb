package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of a calendar date
const DateLayout = "2006-01-02"

// CalendarDate is a date without a time of day. Postgres date columns come
// back from PostgREST as "2006-01-02"; timestamps in RFC 3339 are also
// accepted and truncated to their UTC day.
type CalendarDate struct {
	t time.Time
}

// NewCalendarDate truncates t to its UTC calendar day
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.UTC().Date()
	return CalendarDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseCalendarDate parses either a plain date or an RFC 3339 timestamp
func ParseCalendarDate(s string) (CalendarDate, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return CalendarDate{t: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return NewCalendarDate(t), nil
}

// UnmarshalJSON implements custom JSON unmarshaling for CalendarDate.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = CalendarDate{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements custom JSON marshaling for CalendarDate.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// String formats the date as YYYY-MM-DD
func (d CalendarDate) String() string {
	return d.t.Format(DateLayout)
}

// Time returns the underlying midnight UTC timestamp
func (d CalendarDate) Time() time.Time {
	return d.t
}

// IsZero reports whether the date is unset
func (d CalendarDate) IsZero() bool {
	return d.t.IsZero()
}
