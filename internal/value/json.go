package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
)

// JSONTimeLayout is the encoding of date-time values: UTC with milliseconds,
// the form JavaScript's Date.prototype.toJSON produces.
const JSONTimeLayout = "2006-01-02T15:04:05.000Z"

// MarshalJSON encodes v keeping mapping keys in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, v, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a single JSON document into v, keeping object key
// order. Numbers decode to float64.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseJSON decodes a single JSON document.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSON(dec)
	if err != nil {
		return Value{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("failed to parse JSON: unexpected data after top-level value")
	}
	return v, nil
}

// MustParseJSON is ParseJSON for literals known to be valid.
func MustParseJSON(data string) Value {
	v, err := ParseJSON([]byte(data))
	if err != nil {
		panic(err)
	}
	return v
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return NullVal(), nil
	case bool:
		return BoolVal(t), nil
	case string:
		return StringVal(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return NumberVal(n), nil
	case json.Delim:
		switch t {
		case '[':
			items := make([]Value, 0)
			for dec.More() {
				item, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: Sequence, list: &list{items: items}}, nil
		case '{':
			out := MappingVal()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				item, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				out.Set(key, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return out, nil
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// Canonical returns the serialized form used for structural equality: JSON
// with mapping keys sorted.
func Canonical(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, v, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Equal reports whether a and b have the same canonical form. Trees that
// cannot be serialized are never equal.
func Equal(a, b Value) bool {
	ca, err := Canonical(a)
	if err != nil {
		return false
	}
	cb, err := Canonical(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ca, cb)
}

func encodeJSON(buf *bytes.Buffer, v Value, sorted bool) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.b))
	case Number:
		buf.WriteString(FormatNumber(v.n))
	case String:
		writeJSONString(buf, v.s)
	case Time:
		writeJSONString(buf, v.t.UTC().Format(JSONTimeLayout))
	case Sequence:
		buf.WriteByte('[')
		for i, item := range v.list.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, item, sorted); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Mapping:
		keys := v.obj.keys
		if sorted {
			keys = v.Keys()
			sort.Strings(keys)
		}
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := encodeJSON(buf, v.obj.fields[k], sorted); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return &UnsupportedTypeError{TypeName: v.kind.String()}
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1) // trailing newline
}

// FormatNumber renders n the way JavaScript's Number#toString does for the
// common cases: integers without a fraction, exponent form beyond 1e21 or
// below 1e-6, and null for non-finite numbers as JSON requires.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return "null"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(n, 'e', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
