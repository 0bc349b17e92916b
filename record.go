package cellgrid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// IdentityKey is the reserved field holding a row's canonical identity.
// Row stores inject it; it is never displayed as a column.
const IdentityKey = "_rowid"

// ErrInvalidJSON is returned by ParseRecordsJSON for malformed input.
var ErrInvalidJSON = errors.New("invalid JSON")

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value any
}

// F is shorthand for Field{Name: name, Value: value}.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// Record is one input row: an ordered set of named values.
// Key order is the order fields were first added.
type Record struct {
	keys   []string
	values map[string]any
}

// RecordOf builds a Record from fields. A repeated name keeps its first
// position and its last value.
func RecordOf(fields ...Field) Record {
	r := Record{
		keys:   make([]string, 0, len(fields)),
		values: make(map[string]any, len(fields)),
	}
	for _, f := range fields {
		if _, ok := r.values[f.Name]; !ok {
			r.keys = append(r.keys, f.Name)
		}
		r.values[f.Name] = f.Value
	}
	return r
}

// RecordFromMap builds a Record from a map. Names listed in order come
// first; the remaining keys follow in sorted order.
func RecordFromMap(m map[string]any, order ...string) Record {
	fields := make([]Field, 0, len(m))
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if v, ok := m[name]; ok && !seen[name] {
			fields = append(fields, F(name, v))
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(m))
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		fields = append(fields, F(k, m[k]))
	}
	return RecordOf(fields...)
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Keys returns the field names in order. The slice is a copy.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.keys) }

// ID returns the row identity stored under IdentityKey, or "".
func (r Record) ID() string {
	if v, ok := r.values[IdentityKey]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

// With returns a copy of r with name set to value. The receiver is not modified.
func (r Record) With(name string, value any) Record {
	out := Record{
		keys:   make([]string, len(r.keys), len(r.keys)+1),
		values: make(map[string]any, len(r.values)+1),
	}
	copy(out.keys, r.keys)
	for k, v := range r.values {
		out.values[k] = v
	}
	if _, ok := out.values[name]; !ok {
		out.keys = append(out.keys, name)
	}
	out.values[name] = value
	return out
}

// Map returns the record's values as a plain map.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// DiscoverKeys returns the displayable field names of the first row.
// Later rows never add columns.
func DiscoverKeys(rows []Record) []string {
	if len(rows) == 0 {
		return nil
	}
	keys := make([]string, 0, rows[0].Len())
	for _, k := range rows[0].keys {
		if k == IdentityKey {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// ParseRecordsJSON decodes a JSON array of objects into Records,
// keeping each object's key order.
func ParseRecordsJSON(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse records: %w", ErrInvalidJSON)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("parse records: expected array, got %s", doc.Type)
	}

	var (
		rows []Record
		err  error
	)
	idx := 0
	doc.ForEach(func(_, elem gjson.Result) bool {
		if !elem.IsObject() {
			err = fmt.Errorf("parse records: element %d is %s, expected object", idx, elem.Type)
			return false
		}
		var fields []Field
		elem.ForEach(func(key, value gjson.Result) bool {
			fields = append(fields, F(key.String(), value.Value()))
			return true
		})
		rows = append(rows, RecordOf(fields...))
		idx++
		return true
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
