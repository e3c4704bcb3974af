// Package validate holds the field rules shared by the API services and the
// CLI client, so both sides reject bad input the same way. The server side
// stays authoritative; the client only uses these for faster feedback.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	PasswordMinLen = 6
	TitleMaxLen    = 100
	DescMaxLen     = 500
	NameMaxLen     = 64
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return emailRe.MatchString(strings.ToLower(s))
}

func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

func Password(s string) bool {
	return len(s) >= PasswordMinLen
}

// Title trims s and checks the 1-100 char window. Caps count characters,
// not bytes, so multibyte text gets the full window. The trimmed value is
// returned so callers persist the same string they validated.
func Title(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > TitleMaxLen {
		return t, false
	}
	return t, true
}

func Description(s string) (string, bool) {
	t := strings.TrimSpace(s)
	return t, utf8.RuneCountInString(t) <= DescMaxLen
}
