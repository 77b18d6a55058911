// Package tests provides reusable contract suites for port implementations.
package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/polish/pkg/domain"
	"github.com/aretw0/polish/pkg/ports"
)

// RunAnalysisStoreContract verifies that an adapter complies with
// ports.AnalysisStore. Adapter test packages call it with a ready store.
func RunAnalysisStoreContract(t *testing.T, store ports.AnalysisStore) {
	t.Helper()
	ctx := context.Background()

	sample := &domain.Analysis{
		Expression: "a+b*c",
		Notation:   domain.NotationInfix,
		Postfix:    "abc*+",
		Prefix:     "+a*bc",
		Infix:      "(a+(b*c))",
		Root: &domain.Node{
			Value: "+",
			Left:  domain.NewLeaf("a"),
			Right: &domain.Node{
				Value: "*",
				Left:  domain.NewLeaf("b"),
				Right: domain.NewLeaf("c"),
			},
		},
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.Save(ctx, "expr-1", sample); err != nil {
			t.Fatalf("unexpected error saving analysis: %v", err)
		}

		got, err := store.Load(ctx, "expr-1")
		if err != nil {
			t.Fatalf("unexpected error loading analysis: %v", err)
		}
		if got.Expression != sample.Expression {
			t.Errorf("expression mismatch. got %q, want %q", got.Expression, sample.Expression)
		}
		if got.Notation != sample.Notation {
			t.Errorf("notation mismatch. got %q, want %q", got.Notation, sample.Notation)
		}
		if got.Postfix != sample.Postfix {
			t.Errorf("postfix mismatch. got %q, want %q", got.Postfix, sample.Postfix)
		}
		if got.Root == nil || got.Root.Value != "+" {
			t.Errorf("tree root not preserved: %+v", got.Root)
		}
	})

	t.Run("LoadIsolation", func(t *testing.T) {
		got, err := store.Load(ctx, "expr-1")
		if err != nil {
			t.Fatalf("unexpected error loading analysis: %v", err)
		}

		// Mutating the loaded copy must not affect the stored value.
		got.Postfix = "mutated"
		again, err := store.Load(ctx, "expr-1")
		if err != nil {
			t.Fatalf("unexpected error reloading analysis: %v", err)
		}
		if again.Postfix != sample.Postfix {
			t.Errorf("store leaked a mutable reference. got %q, want %q", again.Postfix, sample.Postfix)
		}
	})

	t.Run("LoadNotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "no-such-id")
		if !errors.Is(err, domain.ErrAnalysisNotFound) {
			t.Errorf("expected ErrAnalysisNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Save(ctx, "expr-2", sample); err != nil {
			t.Fatalf("unexpected error saving analysis: %v", err)
		}
		if err := store.Delete(ctx, "expr-2"); err != nil {
			t.Fatalf("unexpected error deleting analysis: %v", err)
		}
		_, err := store.Load(ctx, "expr-2")
		if !errors.Is(err, domain.ErrAnalysisNotFound) {
			t.Errorf("expected ErrAnalysisNotFound after delete, got %v", err)
		}
	})
}
