package schedule

import "fmt"

// Minutes is a time of day expressed as minutes since midnight,
// in the range [0, 1440).
type Minutes int

// Clock builds a Minutes value from an hour and minute pair.
func Clock(h, m int) Minutes {
	return Minutes(h*60 + m)
}

// Hour returns the hour component (0-23).
func (m Minutes) Hour() int { return int(m) / 60 }

// Minute returns the minute component (0-59).
func (m Minutes) Minute() int { return int(m) % 60 }

// String formats the value as zero-padded "HH:MM".
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// MarshalJSON encodes the value as an "HH:MM" string, matching the wire
// format consumed by the schedule front end.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// Interval is a half-open time range [Start, End) within one day.
type Interval struct {
	Start Minutes
	End   Minutes
}

// Overlaps reports whether the two half-open intervals share any time.
// Intervals that only touch at an endpoint do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && iv.End > o.Start
}

// MarshalJSON encodes the interval as a two-element ["HH:MM","HH:MM"]
// array.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return []byte(`["` + iv.Start.String() + `","` + iv.End.String() + `"]`), nil
}
