// Package graph exports an expression tree as a Mermaid diagram.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/polish/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (graph TD) from an expression
// tree. It applies semantic styling:
// - Operator (internal node): [Rectangle]
// - Operand (leaf): ((Circle))
// Left and right edges are labeled so the operand order stays readable.
func GenerateMermaid(root *domain.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if root == nil {
		return sb.String()
	}

	counter := 0
	writeNode(&sb, root, &counter)

	sb.WriteString("\n    classDef operand fill:#e1f5fe,stroke:#01579b,color:#000;\n")
	return sb.String()
}

// writeNode emits the node declaration and its child edges, returning the
// node's assigned Mermaid ID. IDs are positional (n0, n1, ...) because node
// labels repeat freely within one expression.
func writeNode(sb *strings.Builder, node *domain.Node, counter *int) string {
	id := fmt.Sprintf("n%d", *counter)
	*counter++

	// Node shape based on role
	opener, closer := "[", "]"
	if node.IsLeaf() {
		opener, closer = "((", "))"
	}
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escapeMermaidLabel(node.Value), closer))
	if node.IsLeaf() {
		sb.WriteString(fmt.Sprintf("    class %s operand;\n", id))
	}

	if node.Left != nil {
		leftID := writeNode(sb, node.Left, counter)
		sb.WriteString(fmt.Sprintf("    %s -- L --> %s\n", id, leftID))
	}
	if node.Right != nil {
		rightID := writeNode(sb, node.Right, counter)
		sb.WriteString(fmt.Sprintf("    %s -- R --> %s\n", id, rightID))
	}
	return id
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
