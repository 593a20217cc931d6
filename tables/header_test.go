package tables

import "testing"

func testLocator() *Locator {
	return NewLocator(
		KeywordGroup{Field: FieldCourseName, Keywords: []string{"اسم المقرر", "المادة"}},
		KeywordGroup{Field: FieldTime, Keywords: []string{"الوقت", "الزمن"}},
		KeywordGroup{Field: FieldDays, Keywords: []string{"الأيام", "اليوم"}},
	)
}

func requireTime(cols map[Field]int) bool {
	_, ok := cols[FieldTime]
	return ok
}

func TestLocateFindsHeaderRow(t *testing.T) {
	grid := [][]string{
		{"جدول الامتحانات النهائية", "", ""},
		{"", "", ""},
		{"اسم المقرر", "الوقت", "الأيام"},
		{"تحليل عددي", "13:00-14:30", "ح"},
	}
	h, ok := testLocator().Locate(grid, requireTime)
	if !ok {
		t.Fatal("Expected header to be found")
	}
	if h.Row != 2 {
		t.Errorf("Expected header row 2, got %d", h.Row)
	}
	tests := []struct {
		field Field
		col   int
	}{
		{FieldCourseName, 0},
		{FieldTime, 1},
		{FieldDays, 2},
	}
	for _, tt := range tests {
		col, ok := h.Column(tt.field)
		if !ok || col != tt.col {
			t.Errorf("Column(%q) = (%d, %v), want (%d, true)", tt.field, col, ok, tt.col)
		}
	}
}

func TestLocateKeywordIsSubstringMatch(t *testing.T) {
	grid := [][]string{{"وقت / الزمن المقرر", "اليوم الدراسي"}}
	h, ok := testLocator().Locate(grid, requireTime)
	if !ok {
		t.Fatal("Expected substring keyword match to locate header")
	}
	if col, _ := h.Column(FieldDays); col != 1 {
		t.Errorf("Expected days column 1, got %d", col)
	}
}

func TestLocateNotFound(t *testing.T) {
	grid := [][]string{
		{"some", "unrelated", "table"},
		{"1", "2", "3"},
	}
	if _, ok := testLocator().Locate(grid, requireTime); ok {
		t.Error("Expected no header in unrelated table")
	}
}

func TestLocatePredicateRejectsPartialRows(t *testing.T) {
	// A row matching only "days" must not satisfy a predicate that
	// requires the time column.
	grid := [][]string{
		{"الأيام", "ملاحظات"},
		{"الوقت", "الأيام"},
	}
	h, ok := testLocator().Locate(grid, requireTime)
	if !ok {
		t.Fatal("Expected second row to qualify")
	}
	if h.Row != 1 {
		t.Errorf("Expected header row 1, got %d", h.Row)
	}
}

func TestLocateFirstGroupWinsPerCell(t *testing.T) {
	// A cell containing keywords of two groups is claimed by the
	// first group in declaration order.
	l := NewLocator(
		KeywordGroup{Field: FieldTime, Keywords: []string{"الوقت"}},
		KeywordGroup{Field: FieldDays, Keywords: []string{"الوقت واليوم"}},
	)
	grid := [][]string{{"الوقت واليوم"}}
	h, ok := l.Locate(grid, requireTime)
	if !ok {
		t.Fatal("Expected header to be found")
	}
	if _, hasDays := h.Column(FieldDays); hasDays {
		t.Error("Expected the first matching group to claim the cell")
	}
}

func TestHeaderCell(t *testing.T) {
	h := &Header{Row: 0, Columns: map[Field]int{FieldTime: 1, FieldRoom: 5}}
	row := []string{"course", "  13:00-14:30 ", "x"}

	if got, ok := h.Cell(row, FieldTime); !ok || got != "13:00-14:30" {
		t.Errorf("Cell(time) = (%q, %v), want trimmed value", got, ok)
	}
	// Column beyond the row's length is a structural miss, not a panic.
	if _, ok := h.Cell(row, FieldRoom); ok {
		t.Error("Expected short row to report a missing cell")
	}
	if _, ok := h.Cell(row, FieldSection); ok {
		t.Error("Expected unknown field to report a missing cell")
	}
}
