package value

// Copy returns a deep copy of v that shares no sequence or mapping with it.
// Primitives, including date-time values, are immutable and returned as-is.
// A tree containing an Invalid value fails with an UnsupportedTypeError and
// yields no partial result.
func Copy(v Value) (Value, error) {
	switch v.kind {
	case Null, Bool, Number, String, Time:
		return v, nil
	case Sequence:
		items := make([]Value, len(v.list.items))
		for i, item := range v.list.items {
			c, err := Copy(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = c
		}
		return Value{kind: Sequence, list: &list{items: items}}, nil
	case Mapping:
		obj := &object{
			keys:   make([]string, len(v.obj.keys)),
			fields: make(map[string]Value, len(v.obj.keys)),
		}
		copy(obj.keys, v.obj.keys)
		for _, k := range v.obj.keys {
			c, err := Copy(v.obj.fields[k])
			if err != nil {
				return Value{}, err
			}
			obj.fields[k] = c
		}
		return Value{kind: Mapping, obj: obj}, nil
	}
	return Value{}, &UnsupportedTypeError{TypeName: v.kind.String()}
}

// MustCopy is Copy for trees built from constructors, which are always valid.
func MustCopy(v Value) Value {
	c, err := Copy(v)
	if err != nil {
		panic(err)
	}
	return c
}

// CopyNative deep copies plain Go data. Slices and arrays come back as []any
// and string-keyed maps as map[string]any; primitives come back equal to the
// input. Functions, channels, structs and other kinds outside the nested
// value model fail with an UnsupportedTypeError naming the Go type.
func CopyNative(v any) (any, error) {
	val, err := FromNative(v)
	if err != nil {
		return nil, err
	}
	c, err := Copy(val)
	if err != nil {
		return nil, err
	}
	return c.Native(), nil
}
