package record

import (
	"sort"
	"strings"
)

// Record is an ordered mapping from field names to values. Field order is
// insertion order; setting an existing field keeps its position.
//
// A nil *Record behaves like an empty, read-only record.
type Record struct {
	keys   []string
	fields map[string]Value
}

// New creates an empty record.
func New() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Make creates a record from alternating field names and values, e.g.
//
//     rec := record.Make("id", 1, "parentId", 0, "text", "Cat")
//
// Values are converted with ValueOf. Make panics on malformed arguments and
// is meant for literals in code and tests.
func Make(kv ...interface{}) *Record {
	assertThat(len(kv)%2 == 0, "Make needs an even number of arguments, have %d", len(kv))
	rec := New()
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		assertThat(ok, "field name at position %d is not a string: %v", i, kv[i])
		rec.Set(name, MustValue(kv[i+1]))
	}
	return rec
}

// FromMap creates a record from a map. As maps are unordered, the reserved
// fields come first, followed by all other fields in lexical order.
func FromMap(m map[string]interface{}) (*Record, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := reservedRank(keys[i]), reservedRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	rec := New()
	for _, k := range keys {
		v, err := ValueOf(m[k])
		if err != nil {
			return nil, err
		}
		rec.Set(k, v)
	}
	return rec, nil
}

func reservedRank(name string) int {
	switch name {
	case IDField:
		return 0
	case ParentIDField:
		return 1
	}
	return 2
}

// Len returns the number of fields.
func (rec *Record) Len() int {
	if rec == nil {
		return 0
	}
	return len(rec.keys)
}

// Keys returns the field names in order.
func (rec *Record) Keys() []string {
	if rec == nil {
		return nil
	}
	keys := make([]string, len(rec.keys))
	copy(keys, rec.keys)
	return keys
}

// Get returns the value of a field and whether the field is present.
func (rec *Record) Get(name string) (Value, bool) {
	if rec == nil {
		return Null(), false
	}
	v, ok := rec.fields[name]
	return v, ok
}

// Has is true if the record carries a field with the given name.
func (rec *Record) Has(name string) bool {
	_, ok := rec.Get(name)
	return ok
}

// Set sets a field. New fields are appended at the end.
func (rec *Record) Set(name string, v Value) *Record {
	assertThat(rec != nil, "cannot set field %q on nil record", name)
	if rec.fields == nil {
		rec.fields = make(map[string]Value)
	}
	if _, ok := rec.fields[name]; !ok {
		rec.keys = append(rec.keys, name)
	}
	rec.fields[name] = v
	return rec
}

// Delete removes a field, if present.
func (rec *Record) Delete(name string) {
	if rec == nil {
		return
	}
	if _, ok := rec.fields[name]; !ok {
		return
	}
	delete(rec.fields, name)
	for i, k := range rec.keys {
		if k == name {
			rec.keys = append(rec.keys[:i], rec.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a copy of rec. A nil record clones to an empty one.
func (rec *Record) Clone() *Record {
	c := New()
	if rec == nil {
		return c
	}
	c.keys = make([]string, len(rec.keys))
	copy(c.keys, rec.keys)
	for k, v := range rec.fields {
		c.fields[k] = v
	}
	return c
}

// Equal is true if both records have the same set of fields with equal
// values. Field order is not significant.
func (rec *Record) Equal(other *Record) bool {
	if rec.Len() != other.Len() {
		return false
	}
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		w, ok := other.Get(k)
		if !ok || v.Kind() != w.Kind() || !v.Equal(w) {
			return false
		}
	}
	return true
}

// ToMap returns the record as a map of plain Go values.
func (rec *Record) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, rec.Len())
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		m[k] = v.Interface()
	}
	return m
}

// ID returns the identity field, or null.
func (rec *Record) ID() Value {
	v, _ := rec.Get(IDField)
	return v
}

func (rec *Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range rec.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		v, _ := rec.Get(k)
		b.WriteString(k)
		b.WriteByte(':')
		if v.Kind() == StringKind {
			b.WriteByte('"')
			b.WriteString(v.String())
			b.WriteByte('"')
		} else {
			b.WriteString(v.String())
		}
	}
	b.WriteByte('}')
	return b.String()
}

// --- Stores ----------------------------------------------------------------

// SortByID sorts records by their identity field, using the total order
// of CompareIDs. Records without an identity sort first. The sort is stable.
func SortByID(store []*Record) {
	sort.SliceStable(store, func(i, j int) bool {
		return CompareIDs(store[i].ID(), store[j].ID()) < 0
	})
}

// Remap returns a copy of store in which the values of idField and
// parentField have been copied to the reserved fields "id" and "parentId".
// Records lacking one of the fields keep their reserved field, if any.
// The input records are not modified.
func Remap(store []*Record, idField, parentField string) []*Record {
	remapped := make([]*Record, 0, len(store))
	for _, rec := range store {
		c := rec.Clone()
		if idField != IDField {
			if v, ok := rec.Get(idField); ok {
				c.Set(IDField, v)
			}
		}
		if parentField != ParentIDField {
			if v, ok := rec.Get(parentField); ok {
				c.Set(ParentIDField, v)
			}
		}
		remapped = append(remapped, c)
	}
	tracer().Debugf("remapped %d records, id=%q parentId=%q", len(remapped), idField, parentField)
	return remapped
}
