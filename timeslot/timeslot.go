package timeslot

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adawood/tawafur/bidi"
	"github.com/adawood/tawafur/schedule"
)

// Context selects the clock convention of the document being parsed.
type Context int

const (
	// Roster is the doctor-schedule context: times are already
	// 24-hour and are used as-is.
	Roster Context = iota

	// Exam is the exam-sheet context: times are 12-hour with no
	// AM/PM marker, and any hour in [1,6] is reinterpreted as PM.
	// This is a fixed domain assumption, not detected per cell; a
	// genuine morning exam in that hour range would be mis-shifted.
	Exam
)

var (
	timeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	dateRe = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{4}`)
)

// arabicDays maps each academic weekday to its single-letter code and
// the full-name spellings seen in source documents.
var arabicDays = [5]struct {
	day    schedule.Weekday
	letter string
	names  []string
}{
	{schedule.Sunday, "ح", []string{"الأحد"}},
	{schedule.Monday, "ن", []string{"الاثنين", "الأثنين"}},
	{schedule.Tuesday, "ث", []string{"الثلاثاء"}},
	{schedule.Wednesday, "ر", []string{"الأربعاء", "الاربعاء"}},
	{schedule.Thursday, "خ", []string{"الخميس"}},
}

// englishDays maps each weekday to its English spellings, matched
// case-insensitively as a last-resort fallback.
var englishDays = [5]struct {
	day   schedule.Weekday
	names []string
}{
	{schedule.Sunday, []string{"sun", "sunday", "sun."}},
	{schedule.Monday, []string{"mon", "monday", "mon."}},
	{schedule.Tuesday, []string{"tue", "tuesday", "tue."}},
	{schedule.Wednesday, []string{"wed", "wednesday", "wed."}},
	{schedule.Thursday, []string{"thu", "thursday", "thu."}},
}

// Parse extracts zero or more schedule slots from a raw cell string.
// Cells may hold several newline-separated sub-entries; each line is
// parsed independently. dayFallback is appended to every line before
// parsing so a separate day column can supply the weekday. Lines that
// yield no time tokens, or neither a weekday nor a date, produce no
// slot.
func Parse(raw, dayFallback string, ctx Context) []schedule.Slot {
	var slots []schedule.Slot
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if slot, ok := parseLine(line, dayFallback, ctx); ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

func parseLine(line, dayFallback string, ctx Context) (schedule.Slot, bool) {
	working := line
	if dayFallback != "" {
		working += " " + dayFallback
	}
	working = strings.ReplaceAll(working, "_", "-")
	working = strings.ReplaceAll(working, "–", "-")

	times := extractTimes(working, ctx)
	if len(times) == 0 {
		return schedule.Slot{}, false
	}

	slot := schedule.Slot{Start: times[0], End: times[len(times)-1]}
	slot.Date = dateRe.FindString(working)
	slot.Days = extractDays(working, slot.Date != "")

	if len(slot.Days) == 0 && slot.Date == "" {
		return schedule.Slot{}, false
	}
	return slot, true
}

// extractTimes pulls every H:MM / HH:MM token in order of appearance,
// applies the exam-context PM shift, and returns the values sorted
// ascending. Appearance order is not assumed to be start-then-end:
// direction-mangled ranges read backwards, so the numeric minimum is
// the start and the maximum the end. A single token yields a
// degenerate one-element result.
func extractTimes(s string, ctx Context) []schedule.Minutes {
	matches := timeRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	times := make([]schedule.Minutes, 0, len(matches))
	for _, m := range matches {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if ctx == Exam && h >= 1 && h <= 6 {
			h += 12
		}
		times = append(times, schedule.Clock(h, min))
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	if len(times) == 1 {
		return times
	}
	return []schedule.Minutes{times[0], times[len(times)-1]}
}

// extractDays recovers the weekday set from the working buffer.
// Parentheses and commas are stripped, and each whitespace token is
// NFKC-normalized and tested forward and reversed against the Arabic
// single-letter codes and full day names. Tokens holding an internal
// hyphen are additionally split and each fragment re-tested, which
// covers concatenated reversed day ranges such as "ر-ن". English day
// names are consulted only when nothing else matched and no literal
// date was present.
func extractDays(working string, hasDate bool) []schedule.Weekday {
	var found [5]bool

	clean := strings.NewReplacer("(", " ", ")", " ", ",", " ").Replace(working)
	for _, token := range strings.Fields(clean) {
		matchArabicDays(token, &found)
		if strings.Contains(token, "-") {
			for _, frag := range strings.Split(token, "-") {
				matchArabicDays(frag, &found)
			}
		}
	}

	days := collectDays(found)
	if len(days) > 0 || hasDate {
		return days
	}

	lower := strings.ToLower(working)
	for _, e := range englishDays {
		for _, name := range e.names {
			if strings.Contains(lower, name) {
				found[e.day] = true
				break
			}
		}
	}
	return collectDays(found)
}

// matchArabicDays tests one token, normalized and in both directions,
// against the Arabic day letters and names.
func matchArabicDays(token string, found *[5]bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	n := bidi.Normalize(token)
	for _, form := range [2]string{n, bidi.Reverse(n)} {
		for _, d := range arabicDays {
			if strings.Contains(form, d.letter) || containsAnyOf(form, d.names) {
				found[d.day] = true
			}
		}
	}
}

func containsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// collectDays turns the membership array into a Sunday-first slice.
func collectDays(found [5]bool) []schedule.Weekday {
	var days []schedule.Weekday
	for _, d := range schedule.Weekdays {
		if found[d] {
			days = append(days, d)
		}
	}
	return days
}
