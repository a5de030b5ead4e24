package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

var searchFolder = cases.Fold()

// NormalizeSearchText prepares a free-text search term for case-insensitive
// substring matching: trims whitespace and applies Unicode case folding so
// matches behave the same for non-ASCII titles.
func NormalizeSearchText(s string) string {
	return searchFolder.String(strings.TrimSpace(s))
}
