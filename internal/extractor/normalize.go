package extractor

import (
	"strings"
	"unicode/utf8"
)

const (
	MinInputLength = 2
	MaxInputLength = 500
)

// Normalize collapses whitespace runs to one space, trims the ends and checks
// the character bounds.
func Normalize(text string) (string, error) {
	s := strings.Join(strings.Fields(text), " ")

	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return "", ErrEmptyInput
	case n < MinInputLength:
		return s, ErrInputTooShort
	case n > MaxInputLength:
		return s, &InputTooLongError{Count: n}
	}
	return s, nil
}
