package ports

import (
	"context"

	"github.com/aretw0/polish/pkg/domain"
)

// AnalysisStore defines the interface for persisting analysis results.
// The engine and the HTTP adapter use it to keep a history of recent analyses
// so a result can be fetched again by ID without re-running the engine.
type AnalysisStore interface {
	// Save persists the analysis under the given ID.
	Save(ctx context.Context, id string, res *domain.Analysis) error

	// Load retrieves the analysis for a given ID.
	// Returns domain.ErrAnalysisNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.Analysis, error)

	// Delete removes the analysis for a given ID.
	Delete(ctx context.Context, id string) error
}
