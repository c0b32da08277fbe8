package common

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripHTML removes all tags from s and unescapes entities.
// <br> tags are dropped, API descriptions already carry a newline next to them.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Truncate shortens s to at most n code points, ending it with an ellipsis if it was cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}

	r := []rune(s)
	return strings.TrimSpace(string(r[:n-1])) + "…"
}

// Or returns the first non-empty string.
func Or(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
