package tables

import "strings"

// Field identifies a recognized header column, e.g. "time" or "days".
type Field string

// Well-known fields used by the roster and exam extractors.
const (
	FieldCourseName Field = "course_name"
	FieldCourseCode Field = "course_code"
	FieldTime       Field = "time"
	FieldRoom       Field = "room"
	FieldDays       Field = "days"
	FieldSection    Field = "section"
)

// KeywordGroup binds a field to the literal substrings that mark its
// header cell. Group order matters: within one cell, the first group
// with a matching keyword wins.
type KeywordGroup struct {
	Field    Field
	Keywords []string
}

// Header is a located header row: its row index and the column index
// of each recognized field.
type Header struct {
	Row     int
	Columns map[Field]int
}

// Column returns the column index for field and whether it was found.
func (h *Header) Column(f Field) (int, bool) {
	idx, ok := h.Columns[f]
	return idx, ok
}

// Cell returns the trimmed cell text for field in the given row, or
// ("", false) when the field is absent or the row is too short. A
// missing cell is a structural condition the caller handles per row.
func (h *Header) Cell(row []string, f Field) (string, bool) {
	idx, ok := h.Columns[f]
	if !ok || idx < 0 || idx >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[idx]), true
}

// Locator finds header rows in cell grids. It is a pure function of
// its inputs and carries no state between calls.
type Locator struct {
	Groups []KeywordGroup
}

// NewLocator builds a locator over the given keyword groups.
func NewLocator(groups ...KeywordGroup) *Locator {
	return &Locator{Groups: groups}
}

// Locate scans rows top to bottom and returns the first row whose
// matched-field set satisfies required, together with the field-to-
// column map built from that row. It returns (nil, false) when no row
// qualifies; callers skip the table entirely in that case.
func (l *Locator) Locate(rows [][]string, required func(map[Field]int) bool) (*Header, bool) {
	for i, row := range rows {
		cols := l.matchRow(row)
		if len(cols) == 0 {
			continue
		}
		if required(cols) {
			return &Header{Row: i, Columns: cols}, true
		}
	}
	return nil, false
}

// matchRow records, for each cell, the first field with a keyword
// occurring in the cell text. A later cell matching an already-seen
// field moves that field's column, mirroring how repeated header
// fragments resolve in merged-cell tables.
func (l *Locator) matchRow(row []string) map[Field]int {
	cols := make(map[Field]int)
	for colIdx, cell := range row {
		for _, g := range l.Groups {
			if containsAny(cell, g.Keywords) {
				cols[g.Field] = colIdx
				break
			}
		}
	}
	return cols
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
