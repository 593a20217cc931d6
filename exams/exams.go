// Package exams extracts exam entries from the exam schedule
// document's tables.
//
// Tables without a locatable header row are skipped entirely; within a
// located table, blank rows, rows with an unusable time cell, and rows
// with structural problems are skipped individually while extraction
// continues.
package exams

import (
	"unicode/utf8"

	"github.com/adawood/tawafur/docsource"
	"github.com/adawood/tawafur/schedule"
	"github.com/adawood/tawafur/tables"
	"github.com/adawood/tawafur/timeslot"
)

// UnknownCourse is the course name used when the table carries no
// course-name column.
const UnknownCourse = "Unknown Course"

// minTimeCellRunes guards against stray whitespace cells being
// mistaken for real entries: any time cell shorter than this is
// skipped.
const minTimeCellRunes = 3

// Extractor builds exam entries from exam document tables.
type Extractor struct {
	locator *tables.Locator
}

// New returns an extractor with the default Arabic header keywords.
func New() *Extractor {
	return &Extractor{
		locator: tables.NewLocator(
			tables.KeywordGroup{
				Field:    tables.FieldCourseName,
				Keywords: []string{"اسم المقرر", "المادة", "المساق"},
			},
			tables.KeywordGroup{
				Field:    tables.FieldCourseCode,
				Keywords: []string{"رمز المقرر", "رقم المادة"},
			},
			tables.KeywordGroup{
				Field:    tables.FieldTime,
				Keywords: []string{"الوقت", "الزمن", "ساعة الامتحان"},
			},
			tables.KeywordGroup{
				Field:    tables.FieldRoom,
				Keywords: []string{"القاعة", "المكان", "القاعة/ المختبر"},
			},
			tables.KeywordGroup{
				Field:    tables.FieldDays,
				Keywords: []string{"الأيام", "اليوم", "موعد الامتحان"},
			},
			tables.KeywordGroup{
				Field:    tables.FieldSection,
				Keywords: []string{"الشعبة", "رقم الشعبة"},
			},
		),
	}
}

// Extract walks the document's tables and returns the exam entries in
// document order. Day resolution and availability are left to the
// matcher: Day is nil for date-only rows and AvailableDoctors is
// unset.
func (e *Extractor) Extract(grids [][][]string) []*schedule.ExamEntry {
	var entries []*schedule.ExamEntry
	for _, grid := range grids {
		entries = append(entries, e.extractTable(grid)...)
	}
	return entries
}

// ExtractFrom reads tables from src and extracts them. Only a source
// failure is an error; table- and row-level problems degrade to
// skipped content.
func (e *Extractor) ExtractFrom(src docsource.TableSource) ([]*schedule.ExamEntry, error) {
	grids, err := src.Tables()
	if err != nil {
		return nil, err
	}
	return e.Extract(grids), nil
}

func (e *Extractor) extractTable(grid [][]string) []*schedule.ExamEntry {
	header, ok := e.locator.Locate(grid, func(cols map[tables.Field]int) bool {
		if _, hasTime := cols[tables.FieldTime]; !hasTime {
			return false
		}
		_, hasCourse := cols[tables.FieldCourseName]
		_, hasDays := cols[tables.FieldDays]
		return hasCourse || hasDays
	})
	if !ok {
		return nil
	}

	var entries []*schedule.ExamEntry
	for _, row := range grid[header.Row+1:] {
		if docsource.BlankRow(row) {
			continue
		}
		timeCell, ok := header.Cell(row, tables.FieldTime)
		if !ok || utf8.RuneCountInString(timeCell) < minTimeCellRunes {
			continue
		}

		// The unknown-course fallback applies only when the table has
		// no course column at all; an empty cell in a present column
		// stays empty.
		course := UnknownCourse
		if _, ok := header.Column(tables.FieldCourseName); ok {
			course, _ = header.Cell(row, tables.FieldCourseName)
		}
		dayCell, _ := header.Cell(row, tables.FieldDays)
		room, _ := header.Cell(row, tables.FieldRoom)
		section, _ := header.Cell(row, tables.FieldSection)

		for _, slot := range timeslot.Parse(timeCell, dayCell, timeslot.Exam) {
			entries = append(entries, &schedule.ExamEntry{
				CourseName: course,
				RawTime:    timeCell,
				Start:      slot.Start,
				End:        slot.End,
				Date:       slot.Date,
				Room:       room,
				Section:    section,
			})
		}
	}
	return entries
}
