// Package htmlsanitize cleans the free-text annotations users attach to
// sessions before they are stored and echoed back to other viewers.
package htmlsanitize

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrTooLong   = errors.New("link is too long")
	ErrBadScheme = errors.New("link must be an http or https URL")
	ErrMarkup    = errors.New("link must not contain angle brackets")
)

// strict removes every tag and attribute.
var strict = bluemonday.StrictPolicy()

// maxPasses bounds how many layers of entity encoding Text peels off.
const maxPasses = 5

// Text strips all markup from s and trims it. Entities the policy
// produces are decoded again so stored text matches what was typed. Decoding
// can expose markup that was hidden behind entities, so sanitizing repeats
// until the text stops changing.
func Text(s string) string {
	for i := 0; i < maxPasses && s != ""; i++ {
		next := html.UnescapeString(strict.Sanitize(s))
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(s)
}

// SessionLink cleans a meeting link. The result is empty (clearing the
// link) or at most maxLen characters. A value that starts with a URL scheme
// must use http or https; anything else is kept as plain text.
func SessionLink(raw string, maxLen int) (string, error) {
	s := Text(raw)
	if s == "" {
		return "", nil
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", ErrTooLong
	}
	if strings.ContainsAny(s, "<>") {
		return "", ErrMarkup
	}
	if sc, ok := scheme(s); ok && sc != "http" && sc != "https" {
		return "", ErrBadScheme
	}
	return s, nil
}

// scheme returns the lower-cased URL scheme s starts with, if any.
func scheme(s string) (string, bool) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", false
	}
	for j, c := range s[:i] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return "", false
		}
	}
	return strings.ToLower(s[:i]), true
}
