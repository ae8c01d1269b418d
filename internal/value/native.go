package value

import (
	"encoding/json"
	"reflect"
	"sort"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// FromNative converts Go data into a Value. Supported inputs are nil, booleans,
// every integer and float kind, strings, json.Number, time.Time, Value, and any
// slice, array or string-keyed map of those. Native maps have no order, so
// their keys are sorted. Anything else fails with an UnsupportedTypeError.
func FromNative(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return NullVal(), nil
	case Value:
		return val, nil
	case time.Time:
		return TimeVal(val), nil
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return Value{}, err
		}
		return NumberVal(n), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (Value, error) {
	if rv.Type() == timeType {
		return TimeVal(rv.Interface().(time.Time)), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return BoolVal(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberVal(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberVal(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return NumberVal(rv.Float()), nil
	case reflect.String:
		return StringVal(rv.String()), nil
	case reflect.Interface:
		if rv.IsNil() {
			return NullVal(), nil
		}
		return FromNative(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return NullVal(), nil
		}
		return sequenceFromReflect(rv)
	case reflect.Array:
		return sequenceFromReflect(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return NullVal(), nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		out := MappingVal()
		for _, k := range keys {
			item, err := FromNative(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return Value{}, err
			}
			out.Set(k, item)
		}
		return out, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return NullVal(), nil
		}
	}
	return Value{}, &UnsupportedTypeError{TypeName: rv.Type().String()}
}

func sequenceFromReflect(rv reflect.Value) (Value, error) {
	items := make([]Value, rv.Len())
	for i := range items {
		item, err := FromNative(rv.Index(i).Interface())
		if err != nil {
			return Value{}, err
		}
		items[i] = item
	}
	return Value{kind: Sequence, list: &list{items: items}}, nil
}

// Native converts v back into plain Go data: nil, bool, float64, string,
// time.Time, []any and map[string]any. Invalid values become nil.
func (v Value) Native() any {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.n
	case String:
		return v.s
	case Time:
		return v.t
	case Sequence:
		out := make([]any, len(v.list.items))
		for i, item := range v.list.items {
			out[i] = item.Native()
		}
		return out
	case Mapping:
		out := make(map[string]any, len(v.obj.keys))
		for _, k := range v.obj.keys {
			out[k] = v.obj.fields[k].Native()
		}
		return out
	}
	return nil
}
