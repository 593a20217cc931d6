package docx

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// parseBody decodes word/document.xml and returns the body's
// paragraphs and tables in document order. Interleaving order matters
// for pseudo-page splitting, so the body is walked token by token
// instead of unmarshalled into positional slices.
func parseBody(r io.Reader) ([]any, error) {
	dec := xml.NewDecoder(r)
	var items []any
	inBody := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "body":
				inBody = true
			case inBody && t.Name.Local == "p":
				var p paragraphXML
				if err := dec.DecodeElement(&p, &t); err != nil {
					return nil, err
				}
				items = append(items, p)
			case inBody && t.Name.Local == "tbl":
				var tbl tableXML
				if err := dec.DecodeElement(&tbl, &t); err != nil {
					return nil, err
				}
				items = append(items, tbl)
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				inBody = false
			}
		}
	}
	return items, nil
}

type paragraphXML struct {
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Texts []textXML `xml:"t"`
}

type textXML struct {
	Value string `xml:",chardata"`
}

// text concatenates the paragraph's run text.
func (p paragraphXML) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Texts {
			b.WriteString(t.Value)
		}
	}
	return b.String()
}

type tableXML struct {
	Rows []rowXML `xml:"tr"`
}

type rowXML struct {
	Cells []cellXML `xml:"tc"`
}

type cellXML struct {
	Props      cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

type cellPropsXML struct {
	GridSpan valAttrXML `xml:"gridSpan"`
	VMerge   *vMergeXML `xml:"vMerge"`
}

type valAttrXML struct {
	Val string `xml:"val,attr"`
}

type vMergeXML struct {
	Val string `xml:"val,attr"`
}

// text joins the cell's paragraphs with newlines; multi-line cells
// carry one sub-entry per line.
func (c cellXML) text() string {
	var parts []string
	for _, p := range c.Paragraphs {
		parts = append(parts, p.text())
	}
	return strings.Join(parts, "\n")
}

func (c cellXML) span() int {
	if n, err := strconv.Atoi(c.Props.GridSpan.Val); err == nil && n > 1 {
		return n
	}
	return 1
}

// continuesMerge reports whether the cell continues a vertical merge
// (a vMerge element with no val, or val="continue").
func (c cellXML) continuesMerge() bool {
	if c.Props.VMerge == nil {
		return false
	}
	return c.Props.VMerge.Val == "" || c.Props.VMerge.Val == "continue"
}

// grid flattens the table into a rectangular cell grid. Horizontally
// merged cells repeat their text across each spanned column; vertical
// merge continuations repeat the text of the column's merge start.
func (t tableXML) grid() [][]string {
	grid := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		var cells []string
		for _, c := range row.Cells {
			text := c.text()
			if c.continuesMerge() {
				col := len(cells)
				if prev := len(grid) - 1; prev >= 0 && col < len(grid[prev]) {
					text = grid[prev][col]
				}
			}
			for i := 0; i < c.span(); i++ {
				cells = append(cells, text)
			}
		}
		grid = append(grid, cells)
	}
	return grid
}
