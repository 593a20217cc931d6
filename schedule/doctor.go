package schedule

import (
	"bytes"
	"encoding/json"
)

// Doctor is one lecturer's record: the sanitized display name and the
// busy intervals collected from their roster pages. Identity is the
// name string; a name that recurs across pages extends the same record.
type Doctor struct {
	Name string   `json:"-"`
	Busy *BusySet `json:"busy_slots"`
}

// NewDoctor returns a doctor with an empty busy set.
func NewDoctor(name string) *Doctor {
	return &Doctor{Name: name, Busy: NewBusySet()}
}

// Roster is an ordered collection of doctor records keyed by sanitized
// name. Iteration order is record creation order, which the matcher
// relies on for its stable availability lists.
type Roster struct {
	byName map[string]*Doctor
	order  []string
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{byName: make(map[string]*Doctor)}
}

// Get returns the record for name, creating an empty one on first use.
// Recurring names reuse and extend the existing record.
func (r *Roster) Get(name string) *Doctor {
	if d, ok := r.byName[name]; ok {
		return d
	}
	d := NewDoctor(name)
	r.byName[name] = d
	r.order = append(r.order, name)
	return d
}

// Lookup returns the record for name without creating one.
func (r *Roster) Lookup(name string) (*Doctor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Doctors returns all records in creation order.
func (r *Roster) Doctors() []*Doctor {
	out := make([]*Doctor, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}

// Len returns the number of records.
func (r *Roster) Len() int { return len(r.order) }

// MarshalJSON encodes the roster as a name-keyed object in creation
// order.
func (r *Roster) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.byName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
