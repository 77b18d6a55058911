package domain

import (
	"fmt"
	"hash/fnv"
)

// Analysis is the complete result of analyzing one expression.
//
// Expression holds the normalized (whitespace-free) input. The three rendered
// notations are derived from Root by the tree traversals; they are captured
// here so adapters can serialize a result without walking the tree again.
type Analysis struct {
	Expression string   `json:"expression"`
	Notation   Notation `json:"notation"`
	Postfix    string   `json:"postfix"`
	Prefix     string   `json:"prefix"`
	Infix      string   `json:"infix"`
	Root       *Node    `json:"tree,omitempty"`
}

// ID derives a stable short identifier from the normalized expression, so
// re-analyzing the same input addresses the same history entry.
func (a *Analysis) ID() string {
	h := fnv.New64a()
	h.Write([]byte(a.Expression))
	return fmt.Sprintf("%016x", h.Sum64())
}
