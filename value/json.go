package value

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the object as a JSON object in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the map as an array of [key, value] pairs, since its
// keys need not be strings.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	pairs := make([][2]any, 0, m.Len())
	for k, v := range m.All() {
		pairs = append(pairs, [2]any{k, v})
	}
	return json.Marshal(pairs)
}

// MarshalJSON encodes the set as an array of its members.
func (s *Set) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.Values())
}

// MarshalJSON encodes undefined as null.
func (UndefinedType) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalText encodes a symbol as its description.
func (s Symbol) MarshalText() ([]byte, error) { return []byte(s.desc), nil }
