// Package text provides small string helpers for URLs and labels.
package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// slugReplacer transliterates accented letters and turns separators into
// hyphens. Position i of the source set maps to position i of the target set.
var slugReplacer = newSlugReplacer(
	"ãàáäâẽèéëêìíïîõòóöôùúüûñçşğ·/_,:;",
	"aaaaaee-eeiiiioooo-uuuuncsg------",
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

var youtubeID = regexp.MustCompile(`^(?:(?:https?:)?//)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

func newSlugReplacer(from, to string) *strings.Replacer {
	src := []rune(from)
	dst := []rune(to)
	pairs := make([]string, 0, 2*len(src))
	for i, r := range src {
		pairs = append(pairs, string(r), string(dst[i]))
	}
	return strings.NewReplacer(pairs...)
}

// Slug turns s into a URL-friendly slug:
//
//	Slug("Hello, World! This is an Example!") // "hello-world-this-is-an-example"
//
// Leading and trailing hyphens produced by separators are kept.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugReplacer.Replace(s)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return hyphenRuns.ReplaceAllString(s, "-")
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// YouTubeID extracts the 11 character video ID from a YouTube watch, embed or
// short link.
func YouTubeID(url string) (string, bool) {
	m := youtubeID.FindStringSubmatch(url)
	if len(m) < 2 || len(m[1]) != 11 {
		return "", false
	}
	return m[1], true
}
