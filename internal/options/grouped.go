// Package options builds and filters the option lists shown by select inputs.
package options

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ms-henglu/valkit/internal/value"
)

// HeaderField is the key carrying a group label, both on header records and
// (reset to null) on member records.
const HeaderField = "header"

type keyedRecord struct {
	key    float64
	record value.Value
}

// BuildGroupedList sorts records by the numeric groupKeyField, splits them into
// runs with the same key and precedes every run with a header record
// {"header": label}, where label is the first non-null labelField of the run.
// Runs without any label get no header. Member records are emitted as deep
// copies with their header field set to null; the input is not modified.
//
// Every record must be a mapping whose group key converts to a number.
func BuildGroupedList(records []value.Value, groupKeyField, labelField string) ([]value.Value, error) {
	keyed := make([]keyedRecord, len(records))
	for i, record := range records {
		if record.Kind() != value.Mapping {
			return nil, fmt.Errorf("%w: record %d is a %s, not a mapping", value.ErrInvalidArgument, i, record.Kind())
		}
		raw, _ := record.Get(groupKeyField)
		key, ok := toNumber(raw)
		if !ok {
			return nil, fmt.Errorf("%w: record %d has non-numeric %q: %s", value.ErrInvalidArgument, i, groupKeyField, describe(raw))
		}
		keyed[i] = keyedRecord{key: key, record: record}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key < keyed[j].key
	})

	out := make([]value.Value, 0, len(records))
	for start := 0; start < len(keyed); {
		end := start + 1
		for end < len(keyed) && keyed[end].key == keyed[start].key {
			end++
		}
		group := keyed[start:end]

		for _, member := range group {
			if label, ok := member.record.Get(labelField); ok && !label.IsNull() {
				header, err := value.Copy(label)
				if err != nil {
					return nil, err
				}
				out = append(out, value.MappingVal(value.Entry{Key: HeaderField, Value: header}))
				break
			}
		}

		for _, member := range group {
			c, err := value.Copy(member.record)
			if err != nil {
				return nil, err
			}
			c.Set(HeaderField, value.NullVal())
			out = append(out, c)
		}

		start = end
	}

	return out, nil
}

// toNumber converts v the way a numeric comparison would coerce it. Missing
// values, containers and non-numeric strings have no numeric form.
func toNumber(v value.Value) (float64, bool) {
	switch v.Kind() {
	case value.Number:
		n := v.AsNumber()
		return n, !math.IsNaN(n)
	case value.Bool:
		if v.AsBool() {
			return 1, true
		}
		return 0, true
	case value.Null:
		return 0, true
	case value.Time:
		return float64(v.AsTime().UnixMilli()), true
	case value.String:
		s := strings.TrimSpace(v.AsString())
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func describe(v value.Value) string {
	if v.Kind() == value.Invalid {
		return "missing"
	}
	return v.String()
}
