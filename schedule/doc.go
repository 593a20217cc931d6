// Package schedule defines the data model shared by the extraction,
// matching, and free-time components: clock minutes, the five-day
// academic week, parsed time slots, per-weekday busy sets, doctor
// records, and exam entries.
//
// All times are minutes since midnight. The academic week runs Sunday
// through Thursday; Friday and Saturday are not representable, and any
// datum that resolves to them is treated as having no applicable day.
package schedule
