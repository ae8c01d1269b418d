package options

import (
	"math"
	"strings"

	"github.com/ms-henglu/valkit/internal/value"
)

// countrySearchFields are matched by FilterPhoneCountry.
var countrySearchFields = []string{"name", "countryCode"}

// FilterPhoneCountry keeps the countries whose name or country code contains
// search, ignoring case. Fields are stringified before matching, so a missing
// field reads as "undefined" and a null one as "null".
func FilterPhoneCountry(countries []value.Value, search string) []value.Value {
	needle := strings.ToLower(search)

	out := make([]value.Value, 0)
	for _, country := range countries {
		for _, field := range countrySearchFields {
			v, _ := country.Lookup(field)
			if strings.Contains(strings.ToLower(stringify(v)), needle) {
				out = append(out, country)
				break
			}
		}
	}
	return out
}

// stringify mirrors String(x) of a dynamic language for the value kinds.
func stringify(v value.Value) string {
	switch v.Kind() {
	case value.Invalid:
		return "undefined"
	case value.Null:
		return "null"
	case value.String:
		return v.AsString()
	case value.Number:
		n := v.AsNumber()
		switch {
		case math.IsNaN(n):
			return "NaN"
		case math.IsInf(n, 1):
			return "Infinity"
		case math.IsInf(n, -1):
			return "-Infinity"
		}
		return value.FormatNumber(n)
	case value.Bool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case value.Time:
		return v.AsTime().UTC().Format(value.JSONTimeLayout)
	case value.Sequence:
		parts := make([]string, 0, v.Len())
		for _, item := range v.Items() {
			if item.IsNull() {
				parts = append(parts, "")
				continue
			}
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ",")
	}
	return "[object Object]"
}
