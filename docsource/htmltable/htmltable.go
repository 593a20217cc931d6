// Package htmltable reads the tables of an HTML document into cell
// grids. Exam offices often circulate the exam timetable as an HTML
// export, and those files feed the exam extractor through this
// package.
package htmltable

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/adawood/tawafur/docsource"
)

// Document is a parsed HTML document. It implements
// docsource.TableSource.
type Document struct {
	root *html.Node
}

// Open parses the HTML file at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return OpenReader(f)
}

// OpenReader parses an HTML document from r.
func OpenReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{root: root}, nil
}

// Tables returns every <table> in the document as a trimmed cell grid,
// in document order. Nested tables are returned separately after their
// enclosing table.
func (d *Document) Tables() ([][][]string, error) {
	var grids [][][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			grids = append(grids, docsource.CleanGrid(tableGrid(n)))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return grids, nil
}

// tableGrid flattens one <table> into rows of cell text. Cells with a
// colspan repeat their text across each spanned column, matching how
// merged Word cells are flattened.
func tableGrid(table *html.Node) [][]string {
	var grid [][]string
	var rows func(n *html.Node)
	rows = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				rows(c)
			case "tr":
				grid = append(grid, rowCells(c))
			case "table":
				// Nested table: handled by the outer walk.
			}
		}
	}
	rows(table)
	return grid
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		text := nodeText(c)
		span := 1
		for _, a := range c.Attr {
			if a.Key == "colspan" {
				if n, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil && n > 1 {
					span = n
				}
			}
		}
		for i := 0; i < span; i++ {
			cells = append(cells, text)
		}
	}
	return cells
}

// nodeText collects the node's text content. Line-breaking elements
// become newlines so multi-line cells keep their sub-entry structure.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && (n.Data == "br" || n.Data == "p" || n.Data == "div"):
			if b.Len() > 0 {
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
