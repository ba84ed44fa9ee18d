package sow

import (
	"regexp"
	"strings"
)

var trailingSpace = regexp.MustCompile(`[ \t]+\n`)

// Normalize converts line breaks to LF, strips trailing spaces and tabs
// before every line break and trims the whole string.
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = trailingSpace.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// NormalizePtr is Normalize for optional values. nil normalizes to "".
func NormalizePtr(s *string) string {
	if s == nil {
		return ""
	}
	return Normalize(*s)
}
