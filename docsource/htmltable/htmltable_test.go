package htmltable

import (
	"reflect"
	"strings"
	"testing"
)

func parse(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := OpenReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestTablesBasic(t *testing.T) {
	doc := parse(t, `<html><body>
		<h1>جدول الامتحانات</h1>
		<table>
			<tr><th> اسم المقرر </th><th>الوقت</th></tr>
			<tr><td>تحليل عددي</td><td>1:00-2:30</td></tr>
		</table>
	</body></html>`)

	tables, err := doc.Tables()
	if err != nil {
		t.Fatal(err)
	}
	want := [][][]string{{
		{"اسم المقرر", "الوقت"},
		{"تحليل عددي", "1:00-2:30"},
	}}
	if !reflect.DeepEqual(tables, want) {
		t.Errorf("Expected %v, got %v", want, tables)
	}
}

func TestTablesSections(t *testing.T) {
	doc := parse(t, `<table>
		<thead><tr><th>a</th></tr></thead>
		<tbody><tr><td>b</td></tr></tbody>
		<tfoot><tr><td>c</td></tr></tfoot>
	</table>`)

	tables, _ := doc.Tables()
	want := [][]string{{"a"}, {"b"}, {"c"}}
	if !reflect.DeepEqual(tables[0], want) {
		t.Errorf("Expected %v, got %v", want, tables[0])
	}
}

func TestTablesColspan(t *testing.T) {
	doc := parse(t, `<table><tr><td colspan="2">x</td><td>y</td></tr></table>`)

	tables, _ := doc.Tables()
	want := []string{"x", "x", "y"}
	if !reflect.DeepEqual(tables[0][0], want) {
		t.Errorf("Expected %v, got %v", want, tables[0][0])
	}
}

func TestTablesLineBreaksBecomeNewlines(t *testing.T) {
	doc := parse(t, `<table><tr><td>1:00-2:30<br>3:00-4:30</td></tr></table>`)

	tables, _ := doc.Tables()
	if got := tables[0][0][0]; got != "1:00-2:30\n3:00-4:30" {
		t.Errorf("Expected br to split sub-entries, got %q", got)
	}
}

func TestTablesMultiple(t *testing.T) {
	doc := parse(t, `<table><tr><td>one</td></tr></table>
		<p>فاصل</p>
		<table><tr><td>two</td></tr></table>`)

	tables, _ := doc.Tables()
	if len(tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tables))
	}
	if tables[0][0][0] != "one" || tables[1][0][0] != "two" {
		t.Errorf("Tables out of order: %v", tables)
	}
}

func TestTablesNone(t *testing.T) {
	doc := parse(t, `<p>لا جداول هنا</p>`)
	tables, _ := doc.Tables()
	if len(tables) != 0 {
		t.Errorf("Expected no tables, got %v", tables)
	}
}

func TestTablesRaggedRowsPadded(t *testing.T) {
	doc := parse(t, `<table>
		<tr><td>a</td><td>b</td><td>c</td></tr>
		<tr><td>d</td></tr>
	</table>`)

	tables, _ := doc.Tables()
	want := [][]string{
		{"a", "b", "c"},
		{"d", "", ""},
	}
	if !reflect.DeepEqual(tables[0], want) {
		t.Errorf("Expected padded grid, got %v", tables[0])
	}
}
