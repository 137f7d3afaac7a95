package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	percentSignRegex    = regexp.MustCompile(`%`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// normalizeText prepares free text for substring/regex matching: lowercase,
// strip percent signs, collapse whitespace runs, trim ends. Pure and
// idempotent: normalizeText(normalizeText(x)) == normalizeText(x).
func normalizeText(s string) string {
	result := strings.ToLower(s)
	result = percentSignRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// splitFragments splits a normalized ingredient text into its comma/semicolon
// delimited fragments. Only the fragment count matters (density-based rules),
// not semantic parsing, so empty fragments are dropped.
func splitFragments(normalized string) []string {
	parts := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ',' || r == ';'
	})

	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			fragments = append(fragments, trimmed)
		}
	}
	return fragments
}
