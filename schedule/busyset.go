package schedule

import (
	"bytes"
	"encoding/json"
)

// BusySet holds busy intervals keyed by academic weekday. It is a
// fixed five-entry container: every weekday is always present, possibly
// with an empty interval list. Intervals are stored in insertion order;
// consumers that need them sorted sort their own copy.
type BusySet struct {
	days [5][]Interval
}

// NewBusySet returns an empty busy set covering all five weekdays.
func NewBusySet() *BusySet {
	return &BusySet{}
}

// Add appends an interval to the given weekday. Intervals resolving to
// no academic weekday are dropped.
func (b *BusySet) Add(d Weekday, iv Interval) {
	if !d.Valid() {
		return
	}
	b.days[d] = append(b.days[d], iv)
}

// On returns the intervals recorded for the given weekday, in insertion
// order. The returned slice is shared; callers must not mutate it.
func (b *BusySet) On(d Weekday) []Interval {
	if !d.Valid() {
		return nil
	}
	return b.days[d]
}

// Len returns the total number of recorded intervals across all days.
func (b *BusySet) Len() int {
	n := 0
	for _, ivs := range b.days {
		n += len(ivs)
	}
	return n
}

// MarshalJSON encodes the set as an object with one key per weekday,
// each holding a list of ["HH:MM","HH:MM"] pairs. Empty days are
// included so the payload shape is stable.
func (b *BusySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + d.String() + `":`)
		ivs := b.days[d]
		if ivs == nil {
			ivs = []Interval{}
		}
		enc, err := json.Marshal(ivs)
		if err != nil {
			return nil, err
		}
		buf.Write(enc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
