package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the five-day academic week (Sunday through
// Thursday). Friday and Saturday have no value.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
)

// Weekdays lists the academic week in order, Sunday first.
var Weekdays = [5]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday}

var weekdayNames = [5]string{"Sun", "Mon", "Tue", "Wed", "Thu"}

// String returns the three-letter English abbreviation ("Sun" .. "Thu").
func (d Weekday) String() string {
	if d < Sunday || d > Thursday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether d is one of the five academic weekdays.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Thursday
}

// MarshalJSON encodes the weekday as its three-letter abbreviation.
func (d Weekday) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return []byte(`null`), nil
	}
	return []byte(`"` + weekdayNames[d] + `"`), nil
}

// ParseDate parses a literal DD/MM/YYYY (or DD-MM-YYYY) date and maps
// its calendar weekday onto the academic week. The second return value
// is false when the date is malformed or falls on Friday or Saturday.
func ParseDate(s string) (Weekday, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "/")
	t, err := time.Parse("2/1/2006", s)
	if err != nil {
		return 0, false
	}
	switch t.Weekday() {
	case time.Sunday:
		return Sunday, true
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	}
	return 0, false
}
