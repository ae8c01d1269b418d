package hcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ms-henglu/valkit/internal/value"
)

func TestDecode(t *testing.T) {
	testcases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "attributes keep source order",
			input: `
zeta  = 1
alpha = "two"
mid   = true
`,
			expected: `{"zeta":1,"alpha":"two","mid":true}`,
		},
		{
			name: "nested literals",
			input: `
records = [
  { id = 2, name = "B" },
  { id = 1, name = null },
]
`,
			expected: `{"records":[{"id":2,"name":"B"},{"id":1,"name":null}]}`,
		},
		{
			name:     "empty document",
			input:    ``,
			expected: `{}`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.input), "test.hcl")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	testcases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "syntax error", input: `a = `, message: "failed to parse"},
		{name: "block", input: "resource \"x\" {\n}\n", message: "blocks are not supported"},
		{name: "variable reference", input: `a = var.b`, message: "failed to evaluate a"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.input), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestEncode(t *testing.T) {
	v := value.MustParseJSON(`{"name":"branch","id":3,"tags":["a","b"],"meta":{"z":1,"a":null}}`)

	got, err := Encode(v)
	require.NoError(t, err)

	expected := `name = "branch"
id   = 3
tags = ["a", "b"]
meta = {
  a = null
  z = 1
}
`
	assert.Equal(t, expected, string(got))
}

func TestEncode_RoundTrip(t *testing.T) {
	v := value.MustParseJSON(`{"b":[1,2.5,"x"],"a":{"k":true}}`)
	data, err := Encode(v)
	require.NoError(t, err)

	got, err := Decode(data, "roundtrip.hcl")
	require.NoError(t, err)
	assert.True(t, value.Equal(v, got), "round trip mismatch: got %s, want %s", got, v)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(value.SequenceVal())
	assert.ErrorIs(t, err, value.ErrInvalidArgument)

	_, err = Encode(value.MustParseJSON(`{"not valid":1}`))
	assert.ErrorIs(t, err, value.ErrInvalidArgument)
}
