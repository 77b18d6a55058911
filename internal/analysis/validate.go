package analysis

import (
	"strings"
	"unicode"

	"github.com/aretw0/polish/pkg/domain"
)

// Normalize strips all whitespace from raw and validates that every remaining
// character belongs to the expression alphabet: operands (letters and digits),
// the five operators, and parentheses.
//
// It returns domain.ErrEmptyExpression if nothing remains after stripping, or
// a domain.InvalidCharacterError naming the first offending character. On
// success the returned string is the normalized expression all later stages
// operate on; reported positions index into it.
func Normalize(raw string) (string, error) {
	expr := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if expr == "" {
		return "", domain.ErrEmptyExpression
	}

	for i := 0; i < len(expr); i++ {
		if domain.Classify(expr[i]) == domain.TokenInvalid {
			return "", &domain.InvalidCharacterError{Char: expr[i], Position: i}
		}
	}
	return expr, nil
}
