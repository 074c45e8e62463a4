package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NA is the placeholder stored when a probe cannot supply a value.
const NA = "N/A"

// Value is one node of collected data: a scalar (number, string, bool,
// or the NA sentinel), an insertion-ordered Mapping, or a List.
type Value any

// Field is a single key/value pair inside a Mapping.
type Field struct {
	Key   string
	Value Value
}

// Mapping is an insertion-ordered string-keyed map. Iteration order is
// display order and JSON order. Keys are unique.
type Mapping []Field

// List is an ordered sequence of values.
type List []Value

// Snapshot is the top-level mapping of category name to category data,
// collected once per run and treated as immutable afterwards.
type Snapshot = Mapping

// Set appends a key or replaces the value of an existing key in place,
// preserving the key's original position.
func (m *Mapping) Set(key string, value Value) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m Mapping) Get(key string) (Value, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, f := range m {
		keys[i] = f.Key
	}
	return keys
}

// Lookup walks nested Mappings along path. A missing segment or a
// non-mapping intermediate value is reported via ok=false, never an error.
func (m Mapping) Lookup(path ...string) (Value, bool) {
	var current Value = m
	for _, seg := range path {
		inner, isMapping := current.(Mapping)
		if !isMapping {
			return nil, false
		}
		next, found := inner.Get(seg)
		if !found {
			return nil, false
		}
		current = next
	}
	return current, true
}

// MarshalJSON emits the mapping as a JSON object with keys in insertion
// order. json.MarshalIndent re-indents the result, so exports keep both
// ordering and the required two-space indentation.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String flattens the mapping to "key: value" pairs joined by ", ".
// This is the textual form used when a nested structure ends up in a
// leaf display position.
func (m Mapping) String() string {
	parts := make([]string, len(m))
	for i, f := range m {
		parts[i] = fmt.Sprintf("%s: %v", f.Key, f.Value)
	}
	return strings.Join(parts, ", ")
}

// String joins the elements' textual forms with ", ".
func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

// Plain converts the mapping into ordinary maps and slices for encoders
// that cannot drive the ordered representation (CBOR export).
func (m Mapping) Plain() map[string]any {
	out := make(map[string]any, len(m))
	for _, f := range m {
		out[f.Key] = plainValue(f.Value)
	}
	return out
}

func plainValue(v Value) any {
	switch val := v.(type) {
	case Mapping:
		return val.Plain()
	case List:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = plainValue(item)
		}
		return items
	default:
		return val
	}
}

// ErrorSnapshot is the degraded single-entry shape used when collection
// fails catastrophically. Downstream stages must tolerate it.
func ErrorSnapshot(message string) Snapshot {
	return Snapshot{{Key: "error", Value: message}}
}
