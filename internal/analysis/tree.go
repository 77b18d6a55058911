package analysis

import "github.com/aretw0/polish/pkg/domain"

// BuildTree constructs a binary expression tree from a postfix sequence.
// Operands push leaf nodes; an operator pops its right child first, then its
// left, and pushes the combined node. Characters that are neither operands
// nor operators are skipped.
//
// The resulting tree is well-formed by construction: every internal node
// holds an operator and has both children, every leaf holds an operand.
func BuildTree(postfix string) (*domain.Node, error) {
	var nodes stack[*domain.Node]

	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch {
		case domain.IsOperand(c):
			nodes.push(domain.NewLeaf(string(c)))
		case domain.IsOperator(c):
			if nodes.len() < 2 {
				return nil, &domain.InsufficientOperandsError{Operator: c, Position: -1}
			}
			n := &domain.Node{Value: string(c)}
			n.Right = nodes.pop()
			n.Left = nodes.pop()
			nodes.push(n)
		}
	}

	if nodes.len() != 1 {
		return nil, domain.ErrUnbalancedExpression
	}
	return nodes.pop(), nil
}
