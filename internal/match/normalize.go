package match

import (
	"strings"
	"unicode"
)

// NormalizeFrame folds a frame name for fuzzy matching: lower case with
// separators (_, -, ., spaces) removed, so "Base_Link" and "baselink" compare
// equal.
func NormalizeFrame(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Sanitize turns s into a string made only of word characters by replacing
// every other rune with an underscore and trimming underscores at both
// ends. Returns "" if nothing usable remains.
func Sanitize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isWord(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return strings.Trim(b.String(), "_")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
}

// isWord mirrors the \w class: ASCII letters, digits and underscore.
func isWord(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}
