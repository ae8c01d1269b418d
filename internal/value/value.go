// Package value implements the nested value model shared by the copy, diff and
// grouping helpers: a tagged tree of primitives, ordered sequences and ordered
// string-keyed mappings.
//
// Containers are reference types. Copying a Value struct copies the reference,
// not the contents, so two Values may share a sequence or mapping exactly the
// way two variables may share an array or object in a dynamic language. Use
// Copy to obtain an independent tree.
package value

import (
	"strconv"
	"time"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	// Invalid is the zero Kind. It never appears in a well-formed tree.
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Time
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Time:
		return "time"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "invalid"
	}
}

// Value is a nested value. The zero Value has Kind Invalid.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	t    time.Time
	list *list
	obj  *object
}

type list struct {
	items []Value
}

// object keeps keys in insertion order next to the lookup table.
type object struct {
	keys   []string
	fields map[string]Value
}

// Entry is a key/value pair used to build mappings.
type Entry struct {
	Key   string
	Value Value
}

func NullVal() Value { return Value{kind: Null} }
func BoolVal(b bool) Value { return Value{kind: Bool, b: b} }
func NumberVal(n float64) Value { return Value{kind: Number, n: n} }
func StringVal(s string) Value { return Value{kind: String, s: s} }
func TimeVal(t time.Time) Value { return Value{kind: Time, t: t} }

// SequenceVal builds a sequence holding items in order.
func SequenceVal(items ...Value) Value {
	l := &list{items: make([]Value, len(items))}
	copy(l.items, items)
	return Value{kind: Sequence, list: l}
}

// MappingVal builds a mapping from entries in order. A repeated key keeps the
// position of its first occurrence and the value of its last.
func MappingVal(entries ...Entry) Value {
	v := Value{kind: Mapping, obj: &object{keys: make([]string, 0, len(entries)), fields: make(map[string]Value, len(entries))}}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == Null }

// IsContainer reports whether v is a sequence or a mapping.
func (v Value) IsContainer() bool { return v.kind == Sequence || v.kind == Mapping }

func (v Value) AsBool() bool { return v.b }
func (v Value) AsNumber() float64 { return v.n }
func (v Value) AsString() string { return v.s }
func (v Value) AsTime() time.Time { return v.t }

// Len returns the number of elements of a sequence or entries of a mapping,
// and 0 for anything else.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.list.items)
	case Mapping:
		return len(v.obj.keys)
	}
	return 0
}

// Index returns the i-th element of a sequence.
func (v Value) Index(i int) Value {
	return v.list.items[i]
}

// Items returns the elements of a sequence. The returned slice is fresh; the
// elements still share their own containers with v.
func (v Value) Items() []Value {
	if v.kind != Sequence {
		return nil
	}
	out := make([]Value, len(v.list.items))
	copy(out, v.list.items)
	return out
}

// Append adds elements to the end of a sequence in place.
func (v Value) Append(items ...Value) {
	if v.kind != Sequence {
		return
	}
	v.list.items = append(v.list.items, items...)
}

// Keys returns the keys of a mapping in insertion order.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}
	out := make([]string, len(v.obj.keys))
	copy(out, v.obj.keys)
	return out
}

// Get returns the value stored under key in a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}
	val, ok := v.obj.fields[key]
	return val, ok
}

// Set stores val under key in place. An existing key keeps its position.
func (v Value) Set(key string, val Value) {
	if v.kind != Mapping {
		return
	}
	if _, exists := v.obj.fields[key]; !exists {
		v.obj.keys = append(v.obj.keys, key)
	}
	v.obj.fields[key] = val
}

// Lookup reads a member of a container by key. Mappings are indexed by key,
// sequences by the canonical decimal form of the element index. Any other
// kind has no members.
func (v Value) Lookup(key string) (Value, bool) {
	switch v.kind {
	case Mapping:
		return v.Get(key)
	case Sequence:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(v.list.items) || strconv.Itoa(i) != key {
			return Value{}, false
		}
		return v.list.items[i], true
	}
	return Value{}, false
}

// String returns the JSON encoding of v, or a placeholder for invalid trees.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(data)
}

// isObject reports whether v behaves as an object reference when compared:
// containers and date-time values.
func (v Value) isObject() bool {
	return v.kind == Sequence || v.kind == Mapping || v.kind == Time
}
