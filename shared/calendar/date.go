package calendar

import (
	"bytes"
	"encoding/json"
	"hotelmanager/shared/constant"
	"strings"
	"time"
)

var parseLayouts = []string{
	constant.DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// Date is a calendar day with no time of day. The zero value is an invalid date:
// it never matches a bounded date filter and sorts after every valid date.
type Date struct {
	day   time.Time
	valid bool
}

// NewDate builds a valid Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), valid: true}
}

// FromTime returns the civil day t falls on in its own location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}

	return NewDate(t.Year(), t.Month(), t.Day())
}

// Parse never fails; input it cannot read yields an invalid Date.
func Parse(value string) Date {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day())
		}
	}

	return Date{}
}

func (d Date) Valid() bool {
	return d.valid
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.day
}

func (d Date) AddDays(n int) Date {
	if !d.valid {
		return d
	}

	return Date{day: d.day.AddDate(0, 0, n), valid: true}
}

func (d Date) Weekday() time.Weekday {
	return d.day.Weekday()
}

// Compare orders valid dates chronologically and places invalid dates last.
func (d Date) Compare(other Date) int {
	switch {
	case !d.valid && !other.valid:
		return 0
	case !d.valid:
		return 1
	case !other.valid:
		return -1
	}

	return d.day.Compare(other.day)
}

func (d Date) Before(other Date) bool {
	return d.valid && other.valid && d.day.Before(other.day)
}

func (d Date) After(other Date) bool {
	return d.valid && other.valid && d.day.After(other.day)
}

func (d Date) Equal(other Date) bool {
	return d.valid == other.valid && d.day.Equal(other.day)
}

// DaysUntil returns the number of nights from d to other, rounded up.
func (d Date) DaysUntil(other Date) int {
	hours := other.day.Sub(d.day).Hours()
	days := int(hours / constant.HoursPerDay)

	if float64(days*constant.HoursPerDay) < hours {
		days++
	}

	return days
}

func (d Date) String() string {
	if !d.valid {
		return ""
	}

	return d.day.Format(constant.DateFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", RFC3339 strings and [year, month, day] arrays.
// Anything else decodes to an invalid Date without an error.
func (d *Date) UnmarshalJSON(data []byte) error {
	*d = Date{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		var parts []int
		if err := json.Unmarshal(data, &parts); err == nil && len(parts) >= 3 {
			t := time.Date(parts[0], time.Month(parts[1]), parts[2], 0, 0, 0, 0, time.UTC)
			if t.Year() == parts[0] && int(t.Month()) == parts[1] && t.Day() == parts[2] {
				*d = FromTime(t)
			}
		}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	*d = Parse(raw)

	return nil
}
