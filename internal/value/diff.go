package value

import (
	"fmt"
	"strconv"
)

// Difference describes the first field found to differ between two mappings.
//
// For a nested mapping the difference is reported one level at a time: Nested
// holds the difference found inside Field and Value is unset. For every other
// field Value holds the whole current value at Field, and Absent is true when
// the current mapping had no such key.
type Difference struct {
	Field  string
	Value  Value
	Nested *Difference
	Absent bool
}

// ToValue renders d as {"field": ..., "value": ...}, recursing into Nested.
// The value entry is omitted when the current side was absent.
func (d *Difference) ToValue() Value {
	out := MappingVal(Entry{Key: "field", Value: StringVal(d.Field)})
	switch {
	case d.Nested != nil:
		out.Set("value", d.Nested.ToValue())
	case !d.Absent:
		out.Set("value", d.Value)
	}
	return out
}

// Path returns the field names from the outermost difference to the
// innermost one.
func (d *Difference) Path() []string {
	var path []string
	for cur := d; cur != nil; cur = cur.Nested {
		path = append(path, cur.Field)
	}
	return path
}

func (d *Difference) MarshalJSON() ([]byte, error) {
	return d.ToValue().MarshalJSON()
}

// Diff compares prev and current and returns the first difference, or nil
// when there is none. Only keys of prev are visited, in prev's order, so keys
// that exist only in current never count as a difference.
//
//   - Sequences are compared element by element up to prev's length using
//     canonical equality; a mismatch reports the whole current sequence.
//   - Date-time values are compared by canonical form.
//   - Nested mappings are compared recursively; a mismatch reports the nested
//     Difference instead of a raw value.
//   - Everything else is compared by strict equality.
//
// Both arguments must be mappings.
func Diff(prev, current Value) (*Difference, error) {
	if prev.kind != Mapping {
		return nil, fmt.Errorf("%w: prev must be a mapping, got %s", ErrInvalidArgument, prev.kind)
	}
	if current.kind != Mapping {
		return nil, fmt.Errorf("%w: current must be a mapping, got %s", ErrInvalidArgument, current.kind)
	}
	return findDifference(prev, current), nil
}

func findDifference(prev, current Value) *Difference {
	for _, key := range prev.obj.keys {
		p := prev.obj.fields[key]
		c, found := current.Lookup(key)

		if found && p.isObject() && c.isObject() {
			switch p.kind {
			case Sequence:
				for i, item := range p.list.items {
					other, ok := c.Lookup(strconv.Itoa(i))
					if !ok || !Equal(item, other) {
						return &Difference{Field: key, Value: c}
					}
				}
			case Time:
				if !Equal(p, c) {
					return &Difference{Field: key, Value: c}
				}
			default:
				if d := findDifference(p, c); d != nil {
					return &Difference{Field: key, Nested: d}
				}
			}
			continue
		}

		if !found {
			return &Difference{Field: key, Absent: true}
		}
		if !strictEqual(p, c) {
			return &Difference{Field: key, Value: c}
		}
	}
	return nil
}

// strictEqual compares primitives by value and containers by identity.
func strictEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case Number:
		return a.n == b.n
	case String:
		return a.s == b.s
	case Time:
		return a.t.Equal(b.t)
	case Sequence:
		return a.list == b.list
	case Mapping:
		return a.obj == b.obj
	}
	return false
}
