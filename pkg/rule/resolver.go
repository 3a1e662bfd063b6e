package rule

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// chainingPrefixes start a new rule on a fluent chain, e.g. IsString or HasSize.
// Detection is a literal, case-sensitive prefix test in this order.
var chainingPrefixes = []string{"is", "allowed", "has", "matches"}

// Resolve turns a call name into the bare method name (chaining prefix removed)
// and the canonical rule identifier.
func Resolve(call string) (method, identifier string) {
	method = StripPrefix(call)
	return method, Snake(method)
}

// StripPrefix detects the first matching chaining prefix, trims every leading
// rune that belongs to the prefix's letter set and lowercases the rune that
// follows. There is no word-boundary check, so "hashed" becomes "ed" and
// "isset" becomes "et".
func StripPrefix(name string) string {
	for _, prefix := range chainingPrefixes {
		if strings.HasPrefix(name, prefix) {
			return lowerFirst(strings.TrimLeft(name, prefix))
		}
	}
	return name
}

// Snake converts a call-style name into a snake_case rule identifier.
// Names made only of lowercase ASCII letters are returned unchanged.
func Snake(name string) string {
	if isLowerASCII(name) {
		return name
	}

	// Capitalize the first letter of every word and drop the whitespace.
	runes := make([]rune, 0, len(name))
	upper := true
	for _, r := range name {
		if unicode.IsSpace(r) {
			upper = true
			continue
		}
		if upper && 'a' <= r && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		runes = append(runes, r)
	}

	var b strings.Builder
	b.Grow(len(runes) * 2)
	for i, r := range runes {
		if i > 0 && 'A' <= r && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func isLowerASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
