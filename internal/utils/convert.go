package utils

import (
	"fmt"
	"math"

	"github.com/ms-henglu/valkit/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// ToCtyValue converts a nested value into its cty form. Sequences become
// tuples and mappings objects, so heterogeneous members are kept. Date-time
// values are rendered as their JSON string and non-finite numbers as null.
func ToCtyValue(v value.Value) cty.Value {
	switch v.Kind() {
	case value.Bool:
		return cty.BoolVal(v.AsBool())
	case value.Number:
		n := v.AsNumber()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return cty.NullVal(cty.DynamicPseudoType)
		}
		if n == float64(int64(n)) {
			return cty.NumberIntVal(int64(n))
		}
		return cty.NumberFloatVal(n)
	case value.String:
		return cty.StringVal(v.AsString())
	case value.Time:
		return cty.StringVal(v.AsTime().UTC().Format(value.JSONTimeLayout))
	case value.Sequence:
		if v.Len() == 0 {
			return cty.ListValEmpty(cty.DynamicPseudoType)
		}
		var vals []cty.Value
		for _, item := range v.Items() {
			vals = append(vals, ToCtyValue(item))
		}
		return cty.TupleVal(vals)
	case value.Mapping:
		if v.Len() == 0 {
			return cty.MapValEmpty(cty.DynamicPseudoType)
		}
		vals := make(map[string]cty.Value)
		for _, k := range v.Keys() {
			item, _ := v.Get(k)
			vals[k] = ToCtyValue(item)
		}
		return cty.ObjectVal(vals)
	default:
		return cty.NullVal(cty.DynamicPseudoType)
	}
}

// FromCtyValue converts a cty value into a nested value. Lists, sets and
// tuples become sequences; maps and objects become mappings with their keys
// in lexical order. Unknown values and capsule types are rejected.
func FromCtyValue(v cty.Value) (value.Value, error) {
	if !v.IsKnown() {
		return value.Value{}, fmt.Errorf("%w: value is not known", value.ErrInvalidArgument)
	}
	if v.IsNull() {
		return value.NullVal(), nil
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return value.BoolVal(v.True()), nil
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return value.NumberVal(f), nil
	case ty == cty.String:
		return value.StringVal(v.AsString()), nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		items := make([]value.Value, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			item, err := FromCtyValue(ev)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.SequenceVal(items...), nil
	case ty.IsMapType() || ty.IsObjectType():
		out := value.MappingVal()
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			item, err := FromCtyValue(ev)
			if err != nil {
				return value.Value{}, err
			}
			out.Set(k.AsString(), item)
		}
		return out, nil
	}
	return value.Value{}, &value.UnsupportedTypeError{TypeName: ty.FriendlyName()}
}
