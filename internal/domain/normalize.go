package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var reEmail = regexp.MustCompile(`.+@.+\..+`)

// DigitsOnly strips every non-digit character ("123.456.789-00" -> "12345678900").
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidEmail is a loose shape check for the interaction layer. The manager
// does not call it.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return reEmail.MatchString(s)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// ParseDate accepts ISO dates, RFC 3339 timestamps and dd/mm/yyyy.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
