package analysis

import "github.com/aretw0/polish/pkg/domain"

// PrefixToPostfix converts a prefix expression to postfix by scanning right
// to left and reducing on an operand stack. Operands push themselves; an
// operator pops two entries and pushes first+second+operator. Characters that
// are neither operands nor operators are skipped.
//
// Fails with an InsufficientOperandsError if an operator finds fewer than two
// stack entries, or ErrUnbalancedExpression if the scan does not collapse to
// exactly one entry.
func PrefixToPostfix(prefix string) (string, error) {
	var operands stack[string]

	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		switch {
		case domain.IsOperand(c):
			operands.push(string(c))
		case domain.IsOperator(c):
			if operands.len() < 2 {
				return "", &domain.InsufficientOperandsError{Operator: c, Position: i}
			}
			first := operands.pop()
			second := operands.pop()
			operands.push(first + second + string(c))
		}
	}

	if operands.len() != 1 {
		return "", domain.ErrUnbalancedExpression
	}
	return operands.pop(), nil
}
