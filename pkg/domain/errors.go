package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for failure modes that carry no parameters.
var (
	// ErrEmptyExpression is returned when no input remains after trimming whitespace.
	ErrEmptyExpression = errors.New("expression is empty")

	// ErrUnmatchedOpeningParen is returned when an opening parenthesis is never closed.
	ErrUnmatchedOpeningParen = errors.New("missing closing parenthesis")

	// ErrUnbalancedExpression is returned when a conversion or tree build does
	// not collapse to exactly one result.
	ErrUnbalancedExpression = errors.New("operands and operators are unbalanced")

	// ErrUnknownNotation is returned when an expression's notation cannot be
	// classified. Detection is total, so this only surfaces if an Analysis is
	// constructed with a notation outside the taxonomy.
	ErrUnknownNotation = errors.New("could not determine expression notation")

	// ErrAnalysisNotFound is returned when an analysis ID cannot be found in a store.
	ErrAnalysisNotFound = errors.New("analysis not found")
)

// InvalidCharacterError reports a character outside the accepted alphabet.
type InvalidCharacterError struct {
	Char     byte
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("unrecognized character %q at position %d", e.Char, e.Position)
}

// EmptyParenthesesError reports an empty "()" pair.
type EmptyParenthesesError struct {
	Position int
}

func (e *EmptyParenthesesError) Error() string {
	return fmt.Sprintf("empty parentheses at position %d", e.Position)
}

// MissingOperatorBeforeParenError reports an operand directly followed by '('.
type MissingOperatorBeforeParenError struct {
	Position int
}

func (e *MissingOperatorBeforeParenError) Error() string {
	return fmt.Sprintf("missing operator before parenthesis at position %d", e.Position)
}

// DanglingOperatorError reports an operator directly followed by ')'.
type DanglingOperatorError struct {
	Operator byte
	Position int
}

func (e *DanglingOperatorError) Error() string {
	return fmt.Sprintf("missing operand after operator %q at position %d", e.Operator, e.Position)
}

// UnmatchedClosingParenError reports a ')' with no matching '('.
type UnmatchedClosingParenError struct {
	Position int
}

func (e *UnmatchedClosingParenError) Error() string {
	return fmt.Sprintf("missing opening parenthesis at position %d", e.Position)
}

// MissingOperandError reports two adjacent operators with no operand between them.
type MissingOperandError struct {
	Prev byte
	Char byte
}

func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("missing operand between %q and %q", e.Prev, e.Char)
}

// MissingOperatorError reports two adjacent operands with no operator between them.
type MissingOperatorError struct {
	Prev     byte
	Char     byte
	Position int
}

func (e *MissingOperatorError) Error() string {
	return fmt.Sprintf("missing operator between %q and %q at position %d", e.Prev, e.Char, e.Position)
}

// InsufficientOperandsError reports an operator that found fewer than two
// operands during prefix reduction or tree building. Position is -1 when the
// failure site has no position (tree building from an already-reduced
// sequence).
type InsufficientOperandsError struct {
	Operator byte
	Position int
}

func (e *InsufficientOperandsError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("not enough operands for operator %q", e.Operator)
	}
	return fmt.Sprintf("not enough operands for operator %q at position %d", e.Operator, e.Position)
}
