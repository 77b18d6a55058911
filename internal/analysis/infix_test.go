package analysis_test

import (
	"errors"
	"testing"

	"github.com/aretw0/polish/internal/analysis"
	"github.com/aretw0/polish/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfixToPostfix(t *testing.T) {
	cases := []struct {
		infix string
		want  string
	}{
		{"a+b", "ab+"},
		{"a+b*c", "abc*+"},
		{"(a+b)*c", "ab+c*"},
		{"a*(b+c)", "abc+*"},
		{"a+b-c", "ab+c-"},
		{"a/b/c", "ab/c/"},
		{"((a+b))", "ab+"},
		{"(a+b)*(c-d)", "ab+cd-*"},
		{"a+b*c^d", "abcd^*+"},
		// '^' pops at equal precedence, so it associates left.
		{"a^b^c", "ab^c^"},
		{"x", "x"},
		{"(x)", "x"},
	}

	for _, tc := range cases {
		got, err := analysis.InfixToPostfix(tc.infix)
		require.NoError(t, err, "infix %q", tc.infix)
		assert.Equal(t, tc.want, got, "infix %q", tc.infix)
	}
}

func TestInfixToPostfix_EmptyParentheses(t *testing.T) {
	_, err := analysis.InfixToPostfix("a()")

	var parseErr *domain.EmptyParenthesesError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 1, parseErr.Position)
}

func TestInfixToPostfix_MissingOperator(t *testing.T) {
	_, err := analysis.InfixToPostfix("ab")

	var parseErr *domain.MissingOperatorError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, byte('a'), parseErr.Prev)
	assert.Equal(t, byte('b'), parseErr.Char)
	assert.Equal(t, 1, parseErr.Position)
}

func TestInfixToPostfix_MissingOperatorBeforeParen(t *testing.T) {
	_, err := analysis.InfixToPostfix("a(b+c)")

	var parseErr *domain.MissingOperatorBeforeParenError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 1, parseErr.Position)
}

func TestInfixToPostfix_DanglingOperator(t *testing.T) {
	_, err := analysis.InfixToPostfix("(a+)")

	var parseErr *domain.DanglingOperatorError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, byte('+'), parseErr.Operator)
	assert.Equal(t, 2, parseErr.Position)
}

func TestInfixToPostfix_UnmatchedClosingParen(t *testing.T) {
	_, err := analysis.InfixToPostfix("a+b)")

	var parseErr *domain.UnmatchedClosingParenError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Position)
}

func TestInfixToPostfix_UnmatchedOpeningParen(t *testing.T) {
	_, err := analysis.InfixToPostfix("(a+b")
	assert.ErrorIs(t, err, domain.ErrUnmatchedOpeningParen)
}

func TestInfixToPostfix_MissingOperand(t *testing.T) {
	_, err := analysis.InfixToPostfix("a+*b")

	var parseErr *domain.MissingOperandError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, byte('+'), parseErr.Prev)
	assert.Equal(t, byte('*'), parseErr.Char)
}

// A '-' directly after another operator is allowed through conversion. The
// converter still treats it as binary, so the imbalance only surfaces later
// during tree building.
func TestInfixToPostfix_MinusAfterOperatorAllowed(t *testing.T) {
	got, err := analysis.InfixToPostfix("a+-b")
	require.NoError(t, err)
	assert.Equal(t, "a+b-", got)
}

func TestInfixToPostfix_OperatorAfterParenAllowed(t *testing.T) {
	// '(' is not an operator, so an operator right after it passes the
	// adjacent-operator check. The shortfall surfaces in tree building.
	got, err := analysis.InfixToPostfix("(-a)")
	require.NoError(t, err)
	assert.Equal(t, "a-", got)
}
