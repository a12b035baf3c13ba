// Package htmlsanitize cleans text that originates outside this process
// (backend error messages, user input echoed in alerts) before display.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText strips all markup from s and trims surrounding whitespace.
// Entities are decoded again because html/template escapes on render.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
