// Package freetime merges busy intervals per weekday and reports the
// gaps left inside a fixed working window.
package freetime

import (
	"sort"

	"github.com/adawood/tawafur/schedule"
)

// Record is any interval-bearing schedule record: parsed slots, exam
// entries, and busy intervals all qualify.
type Record interface {
	Interval() (start, end schedule.Minutes)
	Weekdays() []schedule.Weekday
}

// Calculator computes free gaps inside a working window.
type Calculator struct {
	// WindowStart and WindowEnd bound the working day; gaps are only
	// reported inside [WindowStart, WindowEnd).
	WindowStart schedule.Minutes
	WindowEnd   schedule.Minutes

	// MinGap discards gaps shorter than this many minutes.
	MinGap schedule.Minutes
}

// New returns a calculator over the standard 08:00-16:00 university
// day with a 15-minute minimum gap.
func New() *Calculator {
	return &Calculator{
		WindowStart: schedule.Clock(8, 0),
		WindowEnd:   schedule.Clock(16, 0),
		MinGap:      15,
	}
}

// Gaps returns, per weekday, the free ranges formatted as
// "HH:MM - HH:MM". A weekday with no recorded intervals is absent
// from the result entirely; absence, not an empty list, signals "no
// data". Days appear in Sunday-first map insertion order.
func (c *Calculator) Gaps(records []Record) map[schedule.Weekday][]string {
	byDay := make(map[schedule.Weekday][]schedule.Interval)
	for _, r := range records {
		start, end := r.Interval()
		for _, day := range r.Weekdays() {
			if day.Valid() {
				byDay[day] = append(byDay[day], schedule.Interval{Start: start, End: end})
			}
		}
	}

	out := make(map[schedule.Weekday][]string)
	for _, day := range schedule.Weekdays {
		intervals, ok := byDay[day]
		if !ok {
			continue
		}
		if gaps := c.dayGaps(intervals); len(gaps) > 0 {
			out[day] = gaps
		}
	}
	return out
}

// dayGaps merges one day's intervals and sweeps the working window.
func (c *Calculator) dayGaps(intervals []schedule.Interval) []string {
	merged := Merge(intervals)

	var gaps []string
	cursor := c.WindowStart
	emit := func(from, to schedule.Minutes) {
		if to-from >= c.MinGap {
			gaps = append(gaps, from.String()+" - "+to.String())
		}
	}
	for _, iv := range merged {
		if iv.Start > cursor {
			emit(cursor, iv.Start)
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if cursor < c.WindowEnd {
		emit(cursor, c.WindowEnd)
	}
	return gaps
}

// Merge sorts intervals by start and coalesces overlapping ones: a
// next interval starting before the current one ends extends it. The
// input slice is not modified.
func Merge(intervals []schedule.Interval) []schedule.Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]schedule.Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []schedule.Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start < last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
