package domain

import "strings"

// Node is a binary expression tree node. An internal node holds an operator
// and always has both children; a leaf holds an operand and has none. Each
// node exclusively owns its subtrees.
type Node struct {
	Value string `json:"value"`
	Left  *Node  `json:"left,omitempty"`
	Right *Node  `json:"right,omitempty"`
}

// NewLeaf returns an operand node with no children.
func NewLeaf(value string) *Node {
	return &Node{Value: value}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// PreOrder renders the subtree as prefix notation: value, left, right.
// A nil node contributes the empty string.
func (n *Node) PreOrder() string {
	if n == nil {
		return ""
	}
	return n.Value + n.Left.PreOrder() + n.Right.PreOrder()
}

// PostOrder renders the subtree as postfix notation: left, right, value.
func (n *Node) PostOrder() string {
	if n == nil {
		return ""
	}
	return n.Left.PostOrder() + n.Right.PostOrder() + n.Value
}

// InOrder renders the subtree as fully parenthesized infix notation.
//
// Every internal (operator) node is wrapped in parentheses, so the output is
// canonical rather than minimal: it preserves the tree's structure exactly
// but may carry parentheses the original input omitted.
func (n *Node) InOrder() string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	wrap := len(n.Value) > 0 && IsOperator(n.Value[0]) && !n.IsLeaf()
	if wrap {
		sb.WriteByte('(')
	}
	sb.WriteString(n.Left.InOrder())
	sb.WriteString(n.Value)
	sb.WriteString(n.Right.InOrder())
	if wrap {
		sb.WriteByte(')')
	}
	return sb.String()
}

// Render returns the subtree in the requested notation.
func (n *Node) Render(notation Notation) string {
	switch notation {
	case NotationPrefix:
		return n.PreOrder()
	case NotationPostfix:
		return n.PostOrder()
	default:
		return n.InOrder()
	}
}
