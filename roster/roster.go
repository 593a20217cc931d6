// Package roster extracts doctor busy schedules from the master roster
// document.
//
// Each page of the roster carries one lecturer's header lines followed
// by a weekly schedule table. The extractor recovers the lecturer name
// from the page text (matching the lecturer marker in both storage
// directions), then accumulates per-weekday busy intervals from the
// table. Pages without a locatable header row, and rows with
// structural problems, are skipped; extraction always produces a
// roster, possibly empty.
package roster

import (
	"regexp"
	"strings"

	"github.com/adawood/tawafur/bidi"
	"github.com/adawood/tawafur/docsource"
	"github.com/adawood/tawafur/schedule"
	"github.com/adawood/tawafur/tables"
	"github.com/adawood/tawafur/timeslot"
)

// UnknownDoctor is the record name used when a page yields no
// recognizable lecturer name.
const UnknownDoctor = "Unknown Doctor"

// lecturerMarker is the Arabic keyword ("the lecturer") that labels
// the name line on each roster page.
const lecturerMarker = "المحاضر"

// nameRe captures the text between the lecturer marker and the next
// delimiter: a colon, the rank keyword (الرتبة), the workload keyword
// (عبء), or end of line.
var nameRe = regexp.MustCompile(`المحاضر\s*[:\-]?\s*(.*?)\s*(?::|الرتبة|عبء|$)`)

// Extractor builds doctor records from roster pages.
type Extractor struct {
	locator *tables.Locator
}

// New returns an extractor with the default header keywords, which
// include the presentation-form variants produced by direction-mangled
// extraction.
func New() *Extractor {
	return &Extractor{
		locator: tables.NewLocator(
			tables.KeywordGroup{
				Field:    tables.FieldTime,
				Keywords: []string{"الوقت", "الزمن", "ﺖﻗﻮﻟﺍ", "ﻦﻣﺰﻟﺍ"},
			},
			tables.KeywordGroup{
				Field:    tables.FieldDays,
				Keywords: []string{"الأيام", "اليوم", "ﻡﺎﻳﻷﺍ", "ﻡﺎﻳﻻﺍ", "ﻡﻮﻴﻟﺍ"},
			},
		),
	}
}

// Extract walks the roster pages and returns the doctors found, in
// first-appearance order. A name recurring on a later page extends the
// existing record rather than overwriting it.
func (e *Extractor) Extract(pages []docsource.Page) *schedule.Roster {
	roster := schedule.NewRoster()
	for _, page := range pages {
		e.extractPage(page, roster)
	}
	return roster
}

// ExtractFrom reads pages from src and extracts them. Only a source
// failure is an error; page-level problems degrade to skipped content.
func (e *Extractor) ExtractFrom(src docsource.PageSource) (*schedule.Roster, error) {
	pages, err := src.Pages()
	if err != nil {
		return schedule.NewRoster(), err
	}
	return e.Extract(pages), nil
}

func (e *Extractor) extractPage(page docsource.Page, roster *schedule.Roster) {
	text := page.Text()
	if strings.TrimSpace(text) == "" {
		return
	}
	name := lecturerName(text)
	doctor := roster.Get(name)

	grid := page.Table()
	if grid == nil {
		return
	}
	header, ok := e.locator.Locate(grid, func(cols map[tables.Field]int) bool {
		_, hasTime := cols[tables.FieldTime]
		return hasTime
	})
	if !ok {
		return
	}

	for _, row := range grid[header.Row+1:] {
		timeCell, ok := header.Cell(row, tables.FieldTime)
		if !ok || timeCell == "" {
			continue
		}
		dayCell, _ := header.Cell(row, tables.FieldDays)

		for _, slot := range timeslot.Parse(timeCell, dayCell, timeslot.Roster) {
			for _, day := range slot.Days {
				doctor.Busy.Add(day, schedule.Interval{Start: slot.Start, End: slot.End})
			}
		}
	}
}

// lecturerName scans the page's lines for the lecturer marker and
// returns the sanitized name, or UnknownDoctor when no line matches.
// Each line is NFKC-normalized and tatweel-stripped, then tested in
// both storage directions; scanning stops at the first hit.
func lecturerName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		form, ok := bidi.Match(line, func(s string) bool {
			return strings.Contains(s, lecturerMarker)
		})
		if !ok {
			continue
		}
		m := nameRe.FindStringSubmatch(form)
		if m == nil {
			continue
		}
		if name := bidi.SanitizeName(m[1]); name != "" {
			return name
		}
		return UnknownDoctor
	}
	return UnknownDoctor
}
