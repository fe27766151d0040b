package order

import (
	"strings"
	"unicode"
)

// NormalizeCode keeps only the ASCII digits of raw.
func NormalizeCode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCode reports whether digits has one of the lengths used by the
// supported platforms (3, 4 or 6).
func IsValidCode(digits string) bool {
	switch len(digits) {
	case 3, 4, 6:
		return true
	default:
		return false
	}
}

// ParseCodes extracts the valid order codes from pasted text.
//
// The text is split on runs of whitespace and commas, each token is reduced
// to its digits, and tokens that end up empty or with an invalid length are
// dropped. Duplicates are removed keeping the first occurrence, so the result
// follows the order in which codes were pasted.
func ParseCodes(text string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, digits := range digitTokens(text) {
		if !IsValidCode(digits) {
			continue
		}
		if _, ok := seen[digits]; ok {
			continue
		}
		seen[digits] = struct{}{}
		out = append(out, digits)
	}

	return out
}

// InvalidCodes returns the digit tokens of text whose length is not valid,
// in input order and without deduplication. Tokens with no digits at all are
// not reported.
func InvalidCodes(text string) []string {
	out := make([]string, 0)
	for _, digits := range digitTokens(text) {
		if !IsValidCode(digits) {
			out = append(out, digits)
		}
	}
	return out
}

// digitTokens splits text on whitespace and commas and returns the non-empty
// digit-only form of every token.
func digitTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if digits := NormalizeCode(field); digits != "" {
			tokens = append(tokens, digits)
		}
	}
	return tokens
}
