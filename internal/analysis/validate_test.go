package analysis_test

import (
	"errors"
	"testing"

	"github.com/aretw0/polish/internal/analysis"
	"github.com/aretw0/polish/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StripsWhitespace(t *testing.T) {
	expr, err := analysis.Normalize(" a + b\t* c \n")
	require.NoError(t, err)
	assert.Equal(t, "a+b*c", expr)
}

func TestNormalize_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := analysis.Normalize(raw)
		assert.ErrorIs(t, err, domain.ErrEmptyExpression, "input %q", raw)
	}
}

func TestNormalize_InvalidCharacter(t *testing.T) {
	_, err := analysis.Normalize("a+b=c")

	var invErr *domain.InvalidCharacterError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, byte('='), invErr.Char)
	assert.Equal(t, 3, invErr.Position)
}

func TestNormalize_PositionAfterStripping(t *testing.T) {
	// Positions index the normalized string, not the raw input.
	_, err := analysis.Normalize("  a ? b")

	var invErr *domain.InvalidCharacterError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, byte('?'), invErr.Char)
	assert.Equal(t, 1, invErr.Position)
}
