package domain

// TokenKind classifies a single expression character.
//
// Classification is deliberately explicit and ASCII-only so the accepted
// alphabet is auditable and independent of locale-sensitive library behavior.
type TokenKind int

const (
	// TokenInvalid marks a character outside the accepted alphabet.
	TokenInvalid TokenKind = iota
	// TokenOperand is a letter or digit leaf value.
	TokenOperand
	// TokenOperator is one of + - * / ^.
	TokenOperator
	// TokenLeftParen is '('.
	TokenLeftParen
	// TokenRightParen is ')'.
	TokenRightParen
)

// Classify returns the token kind of a single character.
func Classify(c byte) TokenKind {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return TokenOperand
	case IsOperator(c):
		return TokenOperator
	case c == '(':
		return TokenLeftParen
	case c == ')':
		return TokenRightParen
	default:
		return TokenInvalid
	}
}

// IsOperand reports whether c is a letter or digit.
func IsOperand(c byte) bool {
	return Classify(c) == TokenOperand
}

// IsOperator reports whether c is one of the five supported operators.
func IsOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// Precedence returns the binding strength of an operator.
// Higher binds tighter. Non-operators return -1.
//
// All operators are treated as left-associative by the converter, including
// '^'. That matches the historical behavior this engine preserves, not the
// mathematical convention.
func Precedence(c byte) int {
	switch c {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	}
	return -1
}
