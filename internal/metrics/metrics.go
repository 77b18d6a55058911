// Package metrics defines the Prometheus instrumentation for the service adapters.
package metrics

import (
	"errors"

	"github.com/aretw0/polish/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters exposed by the serve mode.
type Metrics struct {
	Analyses *prometheus.CounterVec
	Failures *prometheus.CounterVec
}

// New creates the metric set and registers it with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "polish_analyses_total",
				Help: "Total number of successful analyses by detected notation",
			},
			[]string{"notation"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "polish_analysis_failures_total",
				Help: "Total number of failed analyses by failure reason",
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(m.Analyses, m.Failures)
	return m
}

// FailureReason maps an analysis error to a stable label value.
func FailureReason(err error) string {
	var (
		invalidChar  *domain.InvalidCharacterError
		emptyParens  *domain.EmptyParenthesesError
		missingOpBP  *domain.MissingOperatorBeforeParenError
		dangling     *domain.DanglingOperatorError
		unmatchedRP  *domain.UnmatchedClosingParenError
		missingOpnd  *domain.MissingOperandError
		missingOp    *domain.MissingOperatorError
		insufficient *domain.InsufficientOperandsError
	)

	switch {
	case errors.Is(err, domain.ErrEmptyExpression):
		return "empty_expression"
	case errors.As(err, &invalidChar):
		return "invalid_character"
	case errors.As(err, &emptyParens):
		return "empty_parentheses"
	case errors.As(err, &missingOpBP):
		return "missing_operator_before_paren"
	case errors.As(err, &dangling):
		return "dangling_operator"
	case errors.As(err, &unmatchedRP):
		return "unmatched_closing_paren"
	case errors.Is(err, domain.ErrUnmatchedOpeningParen):
		return "unmatched_opening_paren"
	case errors.As(err, &missingOpnd):
		return "missing_operand"
	case errors.As(err, &missingOp):
		return "missing_operator"
	case errors.As(err, &insufficient):
		return "insufficient_operands"
	case errors.Is(err, domain.ErrUnbalancedExpression):
		return "unbalanced_expression"
	case errors.Is(err, domain.ErrUnknownNotation):
		return "unknown_notation"
	default:
		return "internal"
	}
}
