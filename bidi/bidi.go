// Package bidi handles direction-ambiguous text extracted from
// bidirectional documents.
//
// Upstream extraction of right-to-left scripts is unreliable: Arabic
// text may arrive in visual order (fully reversed), in logical order,
// or encoded as presentation-form codepoints. This package treats those
// artifacts purely as string-matching noise: it normalizes a string to
// canonical codepoints and then matches against both the string and its
// full character reversal, so callers recover the same content no
// matter which form the document produced.
package bidi

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tatweel is the Arabic elongation character, stripped before any
// keyword matching.
const Tatweel = 'ـ'

// Normalize applies Unicode NFKC compatibility normalization (folding
// Arabic presentation forms to canonical letters), strips tatweel, and
// trims surrounding whitespace.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		if r == Tatweel {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Match normalizes s and applies test to it and to its full reversal,
// reporting whether either form matches. The matched form is returned
// so callers can continue working with it.
func Match(s string, test func(string) bool) (string, bool) {
	n := Normalize(s)
	if test(n) {
		return n, true
	}
	if rev := Reverse(n); test(rev) {
		return rev, true
	}
	return n, false
}

// Contains reports whether sub occurs in s or in its reversal, after
// normalizing s.
func Contains(s, sub string) bool {
	_, ok := Match(s, func(form string) bool {
		return strings.Contains(form, sub)
	})
	return ok
}

// IsArabic reports whether r falls in an Arabic Unicode block:
// Arabic (U+0600-U+06FF), Arabic Supplement (U+0750-U+077F), Arabic
// Extended-A (U+08A0-U+08FF), or the presentation forms
// (U+FB50-U+FDFF, U+FE70-U+FEFF).
func IsArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// HasArabic reports whether s contains any Arabic-block rune.
func HasArabic(s string) bool {
	for _, r := range s {
		if IsArabic(r) {
			return true
		}
	}
	return false
}

// SanitizeName strips every rune that is not an ASCII word character,
// whitespace, or in the core Arabic block (U+0600-U+06FF). It is used
// to turn free-text lecturer names into stable identity strings.
func SanitizeName(s string) string {
	keep := func(r rune) bool {
		switch {
		case r >= '0' && r <= '9':
			return true
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
			return true
		case unicode.IsSpace(r):
			return true
		case r >= 0x0600 && r <= 0x06FF:
			return true
		}
		return false
	}
	var b strings.Builder
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
