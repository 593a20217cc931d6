package timeslot

import (
	"testing"

	"github.com/adawood/tawafur/bidi"
	"github.com/adawood/tawafur/schedule"
)

func TestParseExamPMInference(t *testing.T) {
	slots := Parse("1:00-2:30", "ح", Exam)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if slots[0].Start != 780 {
		t.Errorf("Expected exam-context 1:00 to parse as 13:00 (780), got %d", int(slots[0].Start))
	}
	if slots[0].End != 870 {
		t.Errorf("Expected exam-context 2:30 to parse as 14:30 (870), got %d", int(slots[0].End))
	}
}

func TestParseRosterKeeps24Hour(t *testing.T) {
	slots := Parse("1:00-2:30", "ح", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if slots[0].Start != 60 {
		t.Errorf("Expected roster-context 1:00 to stay 01:00 (60), got %d", int(slots[0].Start))
	}
}

func TestParseReversedRangeOrder(t *testing.T) {
	// Direction-mangled cells present the range end-first; numeric
	// ordering must recover the true start and end.
	slots := Parse("14:30-13:00 ث", "", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if slots[0].Start != schedule.Clock(13, 0) || slots[0].End != schedule.Clock(14, 30) {
		t.Errorf("Expected 13:00-14:30, got %v-%v", slots[0].Start, slots[0].End)
	}
}

func TestParseSeparatorNormalization(t *testing.T) {
	for _, raw := range []string{"13:00_14:30 ث", "13:00–14:30 ث"} {
		slots := Parse(raw, "", Roster)
		if len(slots) != 1 {
			t.Fatalf("Parse(%q): expected 1 slot, got %d", raw, len(slots))
		}
	}
}

func TestParseMultiLineCell(t *testing.T) {
	raw := "13:00-14:30\n15:00-16:00"
	slots := Parse(raw, "15/01/2024", Exam)
	if len(slots) != 2 {
		t.Fatalf("Expected 2 slots from multi-line cell, got %d", len(slots))
	}
	if slots[0].Date != "15/01/2024" || slots[1].Date != "15/01/2024" {
		t.Errorf("Expected fallback date on both slots, got %q / %q", slots[0].Date, slots[1].Date)
	}
}

func TestParseSingleTokenDegenerate(t *testing.T) {
	slots := Parse("13:00 ح", "", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 degenerate slot, got %d", len(slots))
	}
	if !slots[0].Degenerate() {
		t.Errorf("Expected start == end, got %v-%v", slots[0].Start, slots[0].End)
	}
}

func TestParseNoTimeTokens(t *testing.T) {
	if slots := Parse("الأحد فقط", "", Roster); len(slots) != 0 {
		t.Errorf("Expected no slots without time tokens, got %d", len(slots))
	}
}

func TestParseNoDayNoDate(t *testing.T) {
	if slots := Parse("13:00-14:30", "", Exam); len(slots) != 0 {
		t.Errorf("Expected no slots without days or date, got %d", len(slots))
	}
}

func TestParseDateOnlySlot(t *testing.T) {
	slots := Parse("13:00-14:30 15/01/2024", "", Exam)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 date-only slot, got %d", len(slots))
	}
	if slots[0].Date != "15/01/2024" {
		t.Errorf("Expected date captured, got %q", slots[0].Date)
	}
	if len(slots[0].Days) != 0 {
		t.Errorf("Expected no days, got %v", slots[0].Days)
	}
}

func TestParseArabicDayLetters(t *testing.T) {
	tests := []struct {
		raw  string
		want []schedule.Weekday
	}{
		{"13:00-14:30 ح", []schedule.Weekday{schedule.Sunday}},
		{"13:00-14:30 ن", []schedule.Weekday{schedule.Monday}},
		{"13:00-14:30 ث", []schedule.Weekday{schedule.Tuesday}},
		{"13:00-14:30 ر", []schedule.Weekday{schedule.Wednesday}},
		{"13:00-14:30 خ", []schedule.Weekday{schedule.Thursday}},
	}
	for _, tt := range tests {
		slots := Parse(tt.raw, "", Roster)
		if len(slots) != 1 {
			t.Fatalf("Parse(%q): expected 1 slot, got %d", tt.raw, len(slots))
		}
		assertDays(t, tt.raw, slots[0].Days, tt.want)
	}
}

func TestParseHyphenJoinedReversedDayCodes(t *testing.T) {
	// "ر-ن" is a reversed day range fused into one token: Wed and Mon.
	slots := Parse("13:00-14:30 ر-ن", "", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	assertDays(t, "ر-ن", slots[0].Days, []schedule.Weekday{schedule.Monday, schedule.Wednesday})
}

func TestParseFullArabicDayNames(t *testing.T) {
	tests := []struct {
		token string
		want  schedule.Weekday
	}{
		{"الأحد", schedule.Sunday},
		{"الاثنين", schedule.Monday},
		{"الثلاثاء", schedule.Tuesday},
		{"الأربعاء", schedule.Wednesday},
		{"الخميس", schedule.Thursday},
	}
	for _, tt := range tests {
		slots := Parse("13:00-14:30 "+tt.token, "", Roster)
		if len(slots) != 1 {
			t.Fatalf("Parse with %q: expected 1 slot, got %d", tt.token, len(slots))
		}
		if !hasDay(slots[0].Days, tt.want) {
			t.Errorf("Parse with %q: expected %v in %v", tt.token, tt.want, slots[0].Days)
		}
	}
}

func TestParseReversedDayName(t *testing.T) {
	slots := Parse("13:00-14:30 "+bidi.Reverse("الخميس"), "", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if !hasDay(slots[0].Days, schedule.Thursday) {
		t.Errorf("Expected reversed day name to resolve to Thu, got %v", slots[0].Days)
	}
}

func TestParseDayFallbackColumn(t *testing.T) {
	slots := Parse("13:00-14:30", "ث , خ", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	assertDays(t, "fallback", slots[0].Days, []schedule.Weekday{schedule.Tuesday, schedule.Thursday})
}

func TestParseParenthesizedReversedEntry(t *testing.T) {
	// The roster's characteristic mangled form: parenthesized,
	// comma-separated, range reversed, day letter isolated.
	slots := Parse("( وجاهي , ث ,14:30-13:00 )", "", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if slots[0].Start != schedule.Clock(13, 0) || slots[0].End != schedule.Clock(14, 30) {
		t.Errorf("Expected 13:00-14:30, got %v-%v", slots[0].Start, slots[0].End)
	}
	if !hasDay(slots[0].Days, schedule.Tuesday) {
		t.Errorf("Expected Tuesday, got %v", slots[0].Days)
	}
}

func TestParseEnglishFallbackOnlyWithoutArabicOrDate(t *testing.T) {
	slots := Parse("13:00-14:30 Mon", "", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	assertDays(t, "english", slots[0].Days, []schedule.Weekday{schedule.Monday})

	// With a date present, English names are not consulted.
	slots = Parse("13:00-14:30 15/01/2024 Monday", "", Exam)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if len(slots[0].Days) != 0 {
		t.Errorf("Expected date to suppress English fallback, got %v", slots[0].Days)
	}
}

func TestParseDeduplicatesDays(t *testing.T) {
	slots := Parse("13:00-14:30 ث ث الثلاثاء", "", Roster)
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if len(slots[0].Days) != 1 {
		t.Errorf("Expected a deduplicated day set, got %v", slots[0].Days)
	}
}

func assertDays(t *testing.T, label string, got, want []schedule.Weekday) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: expected days %v, got %v", label, want, got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: expected days %v, got %v", label, want, got)
			return
		}
	}
}

func hasDay(days []schedule.Weekday, d schedule.Weekday) bool {
	for _, got := range days {
		if got == d {
			return true
		}
	}
	return false
}
