package domain_test

import (
	"testing"

	"github.com/aretw0/polish/pkg/domain"
	"github.com/stretchr/testify/assert"
)

// tree for "ab+c*": (a+b)*c
func sampleTree() *domain.Node {
	return &domain.Node{
		Value: "*",
		Left: &domain.Node{
			Value: "+",
			Left:  domain.NewLeaf("a"),
			Right: domain.NewLeaf("b"),
		},
		Right: domain.NewLeaf("c"),
	}
}

func TestTraversals(t *testing.T) {
	root := sampleTree()

	assert.Equal(t, "*+abc", root.PreOrder())
	assert.Equal(t, "ab+c*", root.PostOrder())
	assert.Equal(t, "((a+b)*c)", root.InOrder())
}

func TestTraversals_NilNode(t *testing.T) {
	var n *domain.Node

	assert.Equal(t, "", n.PreOrder())
	assert.Equal(t, "", n.PostOrder())
	assert.Equal(t, "", n.InOrder())
}

func TestInOrder_LeafNotParenthesized(t *testing.T) {
	leaf := domain.NewLeaf("x")
	assert.Equal(t, "x", leaf.InOrder())
	assert.True(t, leaf.IsLeaf())
}

func TestRender(t *testing.T) {
	root := sampleTree()

	assert.Equal(t, root.PreOrder(), root.Render(domain.NotationPrefix))
	assert.Equal(t, root.PostOrder(), root.Render(domain.NotationPostfix))
	assert.Equal(t, root.InOrder(), root.Render(domain.NotationInfix))
}
