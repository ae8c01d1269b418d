package value

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_KeepsKeyOrder(t *testing.T) {
	doc := `{"b":1,"a":[true,null,"x",1.5],"c":{"z":{},"y":[]}}`
	v, err := ParseJSON([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, v.Keys())
	assert.Equal(t, doc, v.String())
}

func TestParseJSON_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	v := MustParseJSON(`{"a":1,"b":2,"a":3}`)
	assert.Equal(t, `{"a":3,"b":2}`, v.String())
}

func TestParseJSON_Errors(t *testing.T) {
	for _, doc := range []string{``, `{"a":`, `[1,2`, `{} {}`, `nope`} {
		_, err := ParseJSON([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestValue_UnmarshalJSONInsideStruct(t *testing.T) {
	var payload struct {
		Records Value `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"records":[{"id":1}]}`), &payload))
	assert.Equal(t, Sequence, payload.Records.Kind())
	assert.Equal(t, `[{"id":1}]`, payload.Records.String())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 2, expected: "2"},
		{input: -3, expected: "-3"},
		{input: 1.5, expected: "1.5"},
		{input: math.Copysign(0, -1), expected: "0"},
		{input: 1e21, expected: "1e+21"},
		{input: 123456789, expected: "123456789"},
		{input: math.NaN(), expected: "null"},
		{input: math.Inf(1), expected: "null"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.input))
	}
}

func TestMarshalJSON_Time(t *testing.T) {
	at := time.Date(2023, 10, 5, 16, 48, 0, 0, time.FixedZone("CEST", 2*3600))
	v := MappingVal(Entry{Key: "at", Value: TimeVal(at)})
	assert.Equal(t, `{"at":"2023-10-05T14:48:00.000Z"}`, v.String())
}

func TestMarshalJSON_NoHTMLEscaping(t *testing.T) {
	assert.Equal(t, `"<a&b>"`, StringVal("<a&b>").String())
}

func TestCanonical_SortsKeys(t *testing.T) {
	a := MustParseJSON(`{"b":1,"a":{"d":1,"c":2}}`)
	b := MustParseJSON(`{"a":{"c":2,"d":1},"b":1}`)

	ca, err := Canonical(a)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"c":2,"d":1},"b":1}`, string(ca))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, MustParseJSON(`{"b":1}`)))
}

func TestEqual_InvalidNeverEqual(t *testing.T) {
	assert.False(t, Equal(Value{}, Value{}))
}
