package analysis

import (
	"strings"

	"github.com/aretw0/polish/pkg/domain"
)

// InfixToPostfix converts an infix expression to postfix using the
// shunting-yard algorithm, with malformed-input detection inlined into the
// scan. Operators pop while the stack top has precedence >= the incoming
// operator, so every operator, including '^', behaves left-associatively.
//
// A '-' directly following another operator is allowed through without a
// MissingOperandError. This does not give '-' unary semantics: the converter
// still emits it as a binary operator, and an input like "a+-b" fails later
// in tree building when the second operand is missing. The allowance exists
// to preserve the engine's historical validation behavior.
func InfixToPostfix(infix string) (string, error) {
	var out strings.Builder
	var ops stack[byte]

	for i := 0; i < len(infix); i++ {
		c := infix[i]

		// Structural checks that need one character of lookahead or lookbehind.
		if c == '(' && i < len(infix)-1 && infix[i+1] == ')' {
			return "", &domain.EmptyParenthesesError{Position: i}
		}
		if domain.IsOperator(c) && i < len(infix)-1 && infix[i+1] == ')' {
			return "", &domain.DanglingOperatorError{Operator: c, Position: i}
		}
		if c == '(' && i > 0 && domain.IsOperand(infix[i-1]) {
			return "", &domain.MissingOperatorBeforeParenError{Position: i}
		}

		switch {
		case domain.IsOperand(c):
			if i > 0 && domain.IsOperand(infix[i-1]) {
				return "", &domain.MissingOperatorError{Prev: infix[i-1], Char: c, Position: i}
			}
			out.WriteByte(c)

		case c == '(':
			ops.push(c)

		case c == ')':
			for !ops.empty() && ops.peek() != '(' {
				out.WriteByte(ops.pop())
			}
			if ops.empty() {
				return "", &domain.UnmatchedClosingParenError{Position: i}
			}
			ops.pop() // discard the matched '('

		case domain.IsOperator(c):
			if i > 0 && domain.IsOperator(infix[i-1]) && c != '-' {
				return "", &domain.MissingOperandError{Prev: infix[i-1], Char: c}
			}
			for !ops.empty() && ops.peek() != '(' && domain.Precedence(c) <= domain.Precedence(ops.peek()) {
				out.WriteByte(ops.pop())
			}
			ops.push(c)
		}
	}

	for !ops.empty() {
		if ops.peek() == '(' {
			return "", domain.ErrUnmatchedOpeningParen
		}
		out.WriteByte(ops.pop())
	}
	return out.String(), nil
}
