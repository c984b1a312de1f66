package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var clockPrefixRe = regexp.MustCompile(`^\d{1,2}:\d{2}(?:\s+|$)`)

// Capitalize upper-cases the first letter and lower-cases the rest.
// A leading "H:MM " or "HH:MM " prefix is kept verbatim and the rule is
// applied to what follows it.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	if loc := clockPrefixRe.FindStringIndex(s); loc != nil {
		return s[:loc[1]] + capitalizeFirst(s[loc[1]:])
	}
	return capitalizeFirst(s)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(r)) + lower[size:]
}
