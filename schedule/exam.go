package schedule

// ExamEntry is one scheduled exam sitting recovered from the exam
// document. Day is nil for date-only rows until the matcher resolves
// the date; AvailableDoctors is populated by the matcher.
type ExamEntry struct {
	CourseName string `json:"course_name"`

	// RawTime is the original time cell text, retained for diagnostics.
	RawTime string `json:"raw_time"`

	Start Minutes `json:"start"`
	End   Minutes `json:"end"`

	// Date is a literal DD/MM/YYYY string, or empty.
	Date string `json:"date"`

	// Day is the resolved academic weekday, nil while unresolved.
	Day *Weekday `json:"day_of_week"`

	Room    string `json:"room"`
	Section string `json:"section"`

	// AvailableDoctors lists, in roster order, the doctors with no
	// busy interval overlapping this exam. It holds a single sentinel
	// value when the exam's weekday could not be resolved.
	AvailableDoctors []string `json:"available_doctors"`
}

// Interval returns the exam's time range.
func (e *ExamEntry) Interval() (Minutes, Minutes) { return e.Start, e.End }

// Weekdays returns the exam's resolved weekday as a one-element slice,
// or nil while unresolved.
func (e *ExamEntry) Weekdays() []Weekday {
	if e.Day == nil {
		return nil
	}
	return []Weekday{*e.Day}
}
