package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPhoneCountry(t *testing.T) {
	countries := parseRecords(t, `[
		{"name":"Turkey","countryCode":"TR","dialCode":"+90"},
		{"name":"Germany","countryCode":"DE","dialCode":"+49"},
		{"name":"Trinidad and Tobago","countryCode":"TT"},
		{"name":"Nowhere"},
		{"name":null,"countryCode":"NL"}
	]`)

	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{name: "matches name ignoring case", search: "GERM", expected: []string{"Germany"}},
		{name: "matches country code", search: "tt", expected: []string{"Trinidad and Tobago"}},
		{name: "matches both fields", search: "tr", expected: []string{"Turkey", "Trinidad and Tobago"}},
		{name: "empty search keeps everything", search: "", expected: []string{"Turkey", "Germany", "Trinidad and Tobago", "Nowhere", "null"}},
		{name: "missing field reads as undefined", search: "undefined", expected: []string{"Nowhere"}},
		{name: "null field reads as null", search: "nul", expected: []string{"null"}},
		{name: "no match", search: "zz", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPhoneCountry(countries, tt.search)
			names := make([]string, 0, len(got))
			for _, c := range got {
				n, _ := c.Get("name")
				names = append(names, stringify(n))
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
