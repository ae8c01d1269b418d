package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Hello, World! This is an Example!", expected: "hello-world-this-is-an-example"},
		{input: "  Çalışma Şartları  ", expected: "calsma-sartlar"},
		{input: "Ünïversité", expected: "universit-"},
		{input: "a/b_c:d;e", expected: "a-b-c-d-e"},
		{input: "multiple   spaces -- and hyphens", expected: "multiple-spaces-and-hyphens"},
		{input: "", expected: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slug(tt.input), tt.input)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "hello", expected: "Hello"},
		{input: "hELLO", expected: "HELLO"},
		{input: "ölçü", expected: "Ölçü"},
		{input: "", expected: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Capitalize(tt.input))
	}
}

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   string
		ok   bool
	}{
		{name: "watch", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", id: "dQw4w9WgXcQ", ok: true},
		{name: "watch with extra params", url: "https://youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=10", id: "dQw4w9WgXcQ", ok: true},
		{name: "short link", url: "https://youtu.be/dQw4w9WgXcQ", id: "dQw4w9WgXcQ", ok: true},
		{name: "embed", url: "//www.youtube.com/embed/dQw4w9WgXcQ", id: "dQw4w9WgXcQ", ok: true},
		{name: "v path", url: "youtube.com/v/dQw4w9WgXcQ", id: "dQw4w9WgXcQ", ok: true},
		{name: "too short", url: "https://youtu.be/abc", ok: false},
		{name: "other host", url: "https://vimeo.com/123456789", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := YouTubeID(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}
