// Package timeslot parses raw schedule cell text into normalized
// time/day/date slots.
//
// The source cells come from bidirectional, mixed-script documents
// whose extraction order is uncontrolled: time ranges may read
// end-to-start, weekday tokens may be mirrored or stored in Arabic
// presentation forms, and 12-hour exam times carry no AM/PM marker.
// The parser is therefore deliberately order-insensitive and
// redundant: time tokens are ordered numerically rather than
// positionally, and every day token is matched both forward and
// reversed, as single letters and as full words.
package timeslot
