// Package docx reads Word (Office Open XML) documents into the plain
// text and cell grids the schedule extractors consume.
//
// Only the document body is read: paragraphs and tables, in body
// order. Styles, numbering, headers, and embedded media are ignored.
// Merged cells are flattened the way the schedule parsers expect:
// a horizontally merged cell repeats its text across every grid column
// it spans, and a vertically merged cell repeats the text of the cell
// that started the merge.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/adawood/tawafur/docsource"
)

// Document is an opened Word document. It implements both
// docsource.PageSource and docsource.TableSource.
type Document struct {
	blocks []block
}

// block is one body-order element: either a paragraph's text or a
// table grid.
type block struct {
	text  string
	grid  [][]string
	table bool
}

// Open reads the Word file at path.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()
	return fromZip(&zr.Reader)
}

// OpenReader reads a Word document from an in-memory or seekable
// source.
func OpenReader(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	return fromZip(zr)
}

func fromZip(zr *zip.Reader) (*Document, error) {
	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("not a Word document: missing word/document.xml")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("opening document.xml: %w", err)
	}
	defer rc.Close()

	body, err := parseBody(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing document.xml: %w", err)
	}

	doc := &Document{}
	for _, item := range body {
		switch v := item.(type) {
		case paragraphXML:
			doc.blocks = append(doc.blocks, block{text: v.text()})
		case tableXML:
			doc.blocks = append(doc.blocks, block{grid: v.grid(), table: true})
		}
	}
	return doc, nil
}

// Tables returns every table in the document as a trimmed cell grid,
// in body order.
func (d *Document) Tables() ([][][]string, error) {
	var out [][][]string
	for _, b := range d.blocks {
		if b.table {
			out = append(out, docsource.CleanGrid(b.grid))
		}
	}
	return out, nil
}

// Pages splits the document into pseudo-pages, one per table: each
// page's text is the paragraph run preceding the table, and its table
// is the table itself. Word documents carry no real page boundaries,
// but roster documents repeat a header-paragraphs-then-table layout
// per lecturer, which this recovers. Trailing paragraphs after the
// last table form a final text-only page.
func (d *Document) Pages() ([]docsource.Page, error) {
	var pages []docsource.Page
	var buf []string
	for _, b := range d.blocks {
		if !b.table {
			if strings.TrimSpace(b.text) != "" {
				buf = append(buf, b.text)
			}
			continue
		}
		pages = append(pages, docsource.TextPage{
			PageText: strings.Join(buf, "\n"),
			Grid:     docsource.CleanGrid(b.grid),
		})
		buf = nil
	}
	if len(buf) > 0 {
		pages = append(pages, docsource.TextPage{PageText: strings.Join(buf, "\n")})
	}
	return pages, nil
}

// Text returns the document's paragraph text, one paragraph per line,
// tables excluded.
func (d *Document) Text() string {
	var lines []string
	for _, b := range d.blocks {
		if !b.table {
			lines = append(lines, b.text)
		}
	}
	return strings.Join(lines, "\n")
}
