package api

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	minNameRunes   = 2
	minPhoneDigits = 10
	maxMessageRune = 500
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

func trim(value string) string {
	return strings.TrimSpace(value)
}

func normalizeEmail(value string) string {
	return lower.String(trim(value))
}

func normalizeCode(value string) string {
	return upper.String(trim(value))
}

func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

// plausibleEmail mirrors the lenient browser-side check: an @ and a dot.
func plausibleEmail(value string) bool {
	return strings.Contains(value, "@") && strings.Contains(value, ".") && !strings.ContainsFunc(value, unicode.IsSpace)
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit]))
}
