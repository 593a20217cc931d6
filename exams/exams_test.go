package exams

import (
	"testing"

	"github.com/adawood/tawafur/schedule"
)

func examGrid() [][]string {
	return [][]string{
		{"جدول الامتحانات النهائية للفصل الأول", "", "", "", ""},
		{"اسم المقرر", "الوقت", "موعد الامتحان", "القاعة", "الشعبة"},
		{"تحليل عددي", "1:00-2:30", "15/01/2024", "A101", "1"},
		{"", "", "", "", ""},
		{"قواعد بيانات", "3:00-4:30", "16/01/2024", "B205", "2"},
		{"مساق ناقص", "x", "", "", ""},
	}
}

func TestExtractEntries(t *testing.T) {
	entries := New().Extract([][][]string{examGrid()})
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.CourseName != "تحليل عددي" {
		t.Errorf("Expected course name carried through, got %q", first.CourseName)
	}
	if first.RawTime != "1:00-2:30" {
		t.Errorf("Expected raw time retained, got %q", first.RawTime)
	}
	if first.Start != schedule.Clock(13, 0) || first.End != schedule.Clock(14, 30) {
		t.Errorf("Expected 12-hour exam times shifted to PM, got %v-%v", first.Start, first.End)
	}
	if first.Date != "15/01/2024" {
		t.Errorf("Expected date from the days column, got %q", first.Date)
	}
	if first.Day != nil {
		t.Errorf("Expected day unresolved at extraction, got %v", *first.Day)
	}
	if first.Room != "A101" || first.Section != "1" {
		t.Errorf("Expected room/section carried through, got %q/%q", first.Room, first.Section)
	}
	if first.AvailableDoctors != nil {
		t.Errorf("Expected availability unset at extraction")
	}
}

func TestExtractSkipsBlankAndShortTimeRows(t *testing.T) {
	entries := New().Extract([][][]string{examGrid()})
	for _, e := range entries {
		if e.CourseName == "مساق ناقص" {
			t.Error("Expected row with a sub-3-character time cell to be skipped")
		}
	}
}

func TestExtractSkipsTableWithoutHeader(t *testing.T) {
	grid := [][]string{
		{"ملاحظات عامة"},
		{"نص حر لا علاقة له"},
	}
	if entries := New().Extract([][][]string{grid}); len(entries) != 0 {
		t.Errorf("Expected no entries without a header, got %d", len(entries))
	}
}

func TestExtractHeaderNeedsTimePlusCourseOrDays(t *testing.T) {
	// A header row with time alone does not qualify.
	grid := [][]string{
		{"الوقت", "ملاحظات"},
		{"1:00-2:30", "x"},
	}
	if entries := New().Extract([][][]string{grid}); len(entries) != 0 {
		t.Errorf("Expected time-only header to be rejected, got %d entries", len(entries))
	}
}

func TestExtractMultiSlotCell(t *testing.T) {
	grid := [][]string{
		{"اسم المقرر", "الوقت", "موعد الامتحان"},
		{"فيزياء عامة", "1:00-2:30\n3:00-4:30", "15/01/2024"},
	}
	entries := New().Extract([][][]string{grid})
	if len(entries) != 2 {
		t.Fatalf("Expected one entry per sub-line, got %d", len(entries))
	}
	if entries[0].CourseName != entries[1].CourseName {
		t.Errorf("Expected both entries to share the course name")
	}
	if entries[1].Start != schedule.Clock(15, 0) {
		t.Errorf("Expected second slot at 15:00, got %v", entries[1].Start)
	}
}

func TestExtractMissingCourseColumn(t *testing.T) {
	grid := [][]string{
		{"الوقت", "الأيام"},
		{"1:00-2:30", "ح"},
	}
	entries := New().Extract([][][]string{grid})
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].CourseName != UnknownCourse {
		t.Errorf("Expected %q, got %q", UnknownCourse, entries[0].CourseName)
	}
}

func TestExtractEmptyCourseCellStaysEmpty(t *testing.T) {
	grid := [][]string{
		{"اسم المقرر", "الوقت", "موعد الامتحان"},
		{"", "1:00-2:30", "15/01/2024"},
	}
	entries := New().Extract([][][]string{grid})
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	// The unknown-course fallback is reserved for tables with no
	// course column; a blank cell in a present column is kept as-is.
	if entries[0].CourseName != "" {
		t.Errorf("Expected empty course name, got %q", entries[0].CourseName)
	}
}

func TestExtractShortRowSkipped(t *testing.T) {
	grid := [][]string{
		{"اسم المقرر", "الوقت", "موعد الامتحان"},
		{"مساق"},
		{"قواعد بيانات", "3:00-4:30", "16/01/2024"},
	}
	entries := New().Extract([][][]string{grid})
	if len(entries) != 1 {
		t.Fatalf("Expected only the complete row, got %d entries", len(entries))
	}
}
