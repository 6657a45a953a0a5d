package utils

import (
	"strings"
	"unicode"
)

const emptySlug = "item"

// Slugify lower-cases s, replaces every run of non-alphanumeric characters
// with a single hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	if b.Len() == 0 {
		return emptySlug
	}
	return b.String()
}

// WithSuffix appends a short random suffix to slug.
func WithSuffix(slug string, n int) string {
	return slug + "-" + RandStringRunes(n)
}
