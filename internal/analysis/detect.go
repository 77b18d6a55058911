package analysis

import "github.com/aretw0/polish/pkg/domain"

// Detect classifies a validated, non-empty expression by inspecting only its
// first and last characters:
//
//   - last is an operator and first is not: postfix
//   - first is an operator and last is not: prefix
//   - anything else: infix
//
// The heuristic never looks inside the expression and never fails. Degenerate
// inputs such as a single operand classify as infix.
func Detect(expr string) domain.Notation {
	first := expr[0]
	last := expr[len(expr)-1]

	switch {
	case domain.IsOperator(last) && !domain.IsOperator(first):
		return domain.NotationPostfix
	case domain.IsOperator(first) && !domain.IsOperator(last):
		return domain.NotationPrefix
	default:
		return domain.NotationInfix
	}
}
