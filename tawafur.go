// Package tawafur extracts schedule data from bidirectional
// Arabic/English tabular documents and computes doctor availability
// for exam invigilation.
//
// Basic usage:
//
//	roster, err := tawafur.New().ParseRoster(rosterDoc)
//	if err != nil {
//	    // handle error
//	}
//	entries, err := tawafur.New().ParseExams(examDoc)
//	if err != nil {
//	    // handle error
//	}
//	matched := tawafur.New().Workers(4).Match(entries, roster)
//
// Documents are consumed through the docsource interfaces; the
// docsource/docx and docsource/htmltable packages provide Word and
// HTML readers, and any PDF extractor yielding page text and cell
// grids can satisfy docsource.PageSource directly.
package tawafur

import (
	"github.com/adawood/tawafur/docsource"
	"github.com/adawood/tawafur/exams"
	"github.com/adawood/tawafur/freetime"
	"github.com/adawood/tawafur/match"
	"github.com/adawood/tawafur/roster"
	"github.com/adawood/tawafur/schedule"
)

// Analyzer runs the extraction, matching, and free-time pipeline.
// Each configuration method returns a new Analyzer, so a configured
// value is safe to share and reuse across goroutines.
type Analyzer struct {
	options Options
}

// New returns an Analyzer with default options.
func New() *Analyzer {
	return &Analyzer{options: defaultOptions()}
}

// clone returns a copy so configuration methods never mutate their
// receiver.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{options: a.options}
}

// Workers sets the matcher's parallelism. Values below 2 select
// sequential matching.
func (a *Analyzer) Workers(n int) *Analyzer {
	na := a.clone()
	na.options.workers = n
	return na
}

// Window sets the free-time working window.
func (a *Analyzer) Window(start, end schedule.Minutes) *Analyzer {
	na := a.clone()
	na.options.windowStart = start
	na.options.windowEnd = end
	return na
}

// MinGap sets the shortest free-time gap worth reporting.
func (a *Analyzer) MinGap(m schedule.Minutes) *Analyzer {
	na := a.clone()
	na.options.minGap = m
	return na
}

// ParseRoster extracts doctor busy schedules from the roster document.
// Only a document-open failure is an error; page- and row-level
// problems degrade to skipped content.
func (a *Analyzer) ParseRoster(src docsource.PageSource) (*schedule.Roster, error) {
	return roster.New().ExtractFrom(src)
}

// ParseExams extracts exam entries from the exam document, with
// weekdays unresolved and availability unset.
func (a *Analyzer) ParseExams(src docsource.TableSource) ([]*schedule.ExamEntry, error) {
	return exams.New().ExtractFrom(src)
}

// Match resolves each exam's weekday and fills its available-doctor
// list, preserving entry order.
func (a *Analyzer) Match(entries []*schedule.ExamEntry, r *schedule.Roster) []*schedule.ExamEntry {
	m := match.New()
	m.Workers = a.options.workers
	return m.Match(entries, r)
}

// FreeTime merges the records' busy intervals per weekday and returns
// the formatted gaps inside the configured working window.
func (a *Analyzer) FreeTime(records []freetime.Record) map[schedule.Weekday][]string {
	c := freetime.New()
	c.WindowStart = a.options.windowStart
	c.WindowEnd = a.options.windowEnd
	c.MinGap = a.options.minGap
	return c.Gaps(records)
}

// ParseRoster extracts doctor schedules with default options.
func ParseRoster(src docsource.PageSource) (*schedule.Roster, error) {
	return New().ParseRoster(src)
}

// ParseExams extracts exam entries with default options.
func ParseExams(src docsource.TableSource) ([]*schedule.ExamEntry, error) {
	return New().ParseExams(src)
}

// Match matches entries against a roster with default options.
func Match(entries []*schedule.ExamEntry, r *schedule.Roster) []*schedule.ExamEntry {
	return New().Match(entries, r)
}

// FreeTime computes free gaps with default options.
func FreeTime(records []freetime.Record) map[schedule.Weekday][]string {
	return New().FreeTime(records)
}
