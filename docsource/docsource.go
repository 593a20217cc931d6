// Package docsource defines the boundary between the schedule
// extractors and the document-access layer.
//
// The extractors never touch file formats directly: a roster document
// is consumed as a sequence of [Page] values exposing plain text and a
// cell grid, and an exam document as a sequence of cell grids. Any
// reader that can produce those shapes can feed the pipeline; the
// docx, htmltable, and ocr subpackages provide the in-tree
// implementations.
package docsource

import "strings"

// Page is one roster document page: its extractable plain text and its
// extractable table, if any. Table returns nil when the page carries
// no table.
type Page interface {
	Text() string
	Table() [][]string
}

// PageSource yields the pages of a roster document.
type PageSource interface {
	Pages() ([]Page, error)
}

// TableSource yields the tables of an exam document as cell grids.
type TableSource interface {
	Tables() ([][][]string, error)
}

// TextPage is a plain Page backed by in-memory values. It is the shape
// OCR output and tests use.
type TextPage struct {
	PageText string
	Grid     [][]string
}

func (p TextPage) Text() string      { return p.PageText }
func (p TextPage) Table() [][]string { return p.Grid }

// CleanGrid trims every cell and pads short rows so all rows share the
// width of the longest. Nil rows become empty rows.
func CleanGrid(grid [][]string) [][]string {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, len(grid))
	for i, row := range grid {
		cleaned := make([]string, width)
		for j := range cleaned {
			if j < len(row) {
				cleaned[j] = strings.TrimSpace(row[j])
			}
		}
		out[i] = cleaned
	}
	return out
}

// BlankRow reports whether every cell in the row is empty after
// trimming.
func BlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
