// Package match computes, for each exam entry, the set of doctors with
// no busy interval overlapping the exam.
//
// Matching runs after extraction has finished: doctor records are
// read-only here, and each entry's computation is independent of every
// other, so entries can be matched in parallel with no locking. The
// output list always preserves the original entry order.
package match

import (
	"sync"

	"github.com/adawood/tawafur/schedule"
)

// UnknownDaySentinel is the single availability value stored on an
// entry whose weekday could not be resolved. No doctor comparison is
// performed for such entries.
const UnknownDaySentinel = "Unknown Date/Day"

// Matcher resolves exam weekdays and computes doctor availability.
type Matcher struct {
	// Workers is the number of goroutines matching entries; values
	// below 2 mean sequential matching.
	Workers int
}

// New returns a sequential matcher. Set Workers to parallelize.
func New() *Matcher {
	return &Matcher{}
}

// Match resolves each entry's weekday and fills its AvailableDoctors
// list, mutating the entries in place and returning the same slice in
// its original order.
func (m *Matcher) Match(entries []*schedule.ExamEntry, roster *schedule.Roster) []*schedule.ExamEntry {
	doctors := roster.Doctors()

	if m.Workers < 2 || len(entries) < 2 {
		for _, e := range entries {
			matchEntry(e, doctors)
		}
		return entries
	}

	workers := m.Workers
	if workers > len(entries) {
		workers = len(entries)
	}
	next := make(chan *schedule.ExamEntry)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for e := range next {
				matchEntry(e, doctors)
			}
		}()
	}
	for _, e := range entries {
		next <- e
	}
	close(next)
	wg.Wait()
	return entries
}

// matchEntry computes one entry's availability. Each entry is touched
// by exactly one goroutine, and doctor busy sets are only read, so no
// synchronization is needed.
func matchEntry(e *schedule.ExamEntry, doctors []*schedule.Doctor) {
	resolveDay(e)
	if e.Day == nil {
		e.AvailableDoctors = []string{UnknownDaySentinel}
		return
	}

	exam := schedule.Interval{Start: e.Start, End: e.End}
	available := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if isFree(d, *e.Day, exam) {
			available = append(available, d.Name)
		}
	}
	e.AvailableDoctors = available
}

// resolveDay fills Day from the entry's literal date when unset.
// Dates falling on Friday or Saturday leave Day nil. Resolution is
// idempotent: an already-resolved entry is left untouched.
func resolveDay(e *schedule.ExamEntry) {
	if e.Day != nil || e.Date == "" {
		return
	}
	if day, ok := schedule.ParseDate(e.Date); ok {
		e.Day = &day
	}
}

// isFree reports whether the doctor has no busy interval overlapping
// exam on the given day. The half-open overlap test means intervals
// that only touch at an endpoint do not conflict. The first overlap
// found short-circuits the scan.
func isFree(d *schedule.Doctor, day schedule.Weekday, exam schedule.Interval) bool {
	for _, busy := range d.Busy.On(day) {
		if exam.Overlaps(busy) {
			return false
		}
	}
	return true
}
