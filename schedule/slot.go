package schedule

// Slot is one normalized time/day/date slot recovered from a document
// cell. A slot is only emitted when it has at least one weekday or a
// literal date; Start may equal End when only a single time token was
// recoverable (a degenerate duration kept for diagnostics).
type Slot struct {
	Start Minutes
	End   Minutes

	// Days the slot applies to, in Sunday-first order. May be empty
	// when Date is set.
	Days []Weekday

	// Date is a literal DD/MM/YYYY date string, or empty.
	Date string
}

// Interval returns the slot's time range.
func (s Slot) Interval() (Minutes, Minutes) { return s.Start, s.End }

// Weekdays returns the weekdays the slot applies to.
func (s Slot) Weekdays() []Weekday { return s.Days }

// Degenerate reports whether the slot has no usable duration.
func (s Slot) Degenerate() bool { return s.Start == s.End }
