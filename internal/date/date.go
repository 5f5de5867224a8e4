// Package date provides a Date type that reads and prints as dd/mm/yyyy.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	// Layout is the canonical output layout (dd/mm/yyyy).
	Layout = "02/01/2006"

	// parseLayout also accepts single-digit days and months.
	parseLayout = "2/1/2006"
)

// Max is the sentinel used for tasks without a due date; it sorts after every real date.
var Max = New(9999, time.December, 31)

// Date represents a calendar date without time or timezone.
type Date struct {
	time.Time
}

// New creates a Date from year, month, day.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns today's date.
func Today() Date {
	now := time.Now()
	return New(now.Year(), now.Month(), now.Day())
}

// Parse parses a day/month/year string into a Date. Day and month may have one
// or two digits; the year must have four. Out-of-range days are rejected.
func Parse(s string) (Date, error) {
	t, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected dd/mm/yyyy", s)
	}
	return Date{t}, nil
}

// String returns the date as dd/mm/yyyy.
func (d Date) String() string {
	return d.Format(Layout)
}

// IsMax reports whether d is the no-date sentinel.
func (d Date) IsMax() bool {
	return d.Equal(Max.Time)
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
