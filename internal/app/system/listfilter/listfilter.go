// Package listfilter implements the list search boxes: a linear,
// case-insensitive substring scan over a few display fields per record.
package listfilter

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold maps a string to its case-folded form. cases.Caser is not safe for
// concurrent use, so each call builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Match reports whether any field contains query, ignoring case.
// A blank query matches everything.
func Match(query string, fields ...string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	fq := fold(q)
	for _, f := range fields {
		if f != "" && strings.Contains(fold(f), fq) {
			return true
		}
	}
	return false
}

// Filter returns the items for which Match(query, fields(item)...) holds,
// preserving order. The input slice is not modified.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(query, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}
