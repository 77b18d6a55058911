// Package treeview renders a binary expression tree as an ASCII diagram.
package treeview

import (
	"strings"

	"github.com/aretw0/polish/pkg/domain"
)

// Render draws the tree sideways with box-drawing branches, right subtree
// above the node and left subtree below:
//
//	│   ┌── c
//	└── *
//	    │   ┌── b
//	    └── +
//	        └── a
//
// A nil tree renders as the empty string.
func Render(root *domain.Node) string {
	var sb strings.Builder
	write(&sb, root, "", true)
	return sb.String()
}

func write(sb *strings.Builder, node *domain.Node, prefix string, isTail bool) {
	if node == nil {
		return
	}

	if node.Right != nil {
		childPrefix := prefix + "    "
		if isTail {
			childPrefix = prefix + "│   "
		}
		write(sb, node.Right, childPrefix, false)
	}

	branch := "┌── "
	if isTail {
		branch = "└── "
	}
	sb.WriteString(prefix)
	sb.WriteString(branch)
	sb.WriteString(node.Value)
	sb.WriteString("\n")

	if node.Left != nil {
		childPrefix := prefix + "│   "
		if isTail {
			childPrefix = prefix + "    "
		}
		write(sb, node.Left, childPrefix, true)
	}
}
