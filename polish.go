package polish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/polish/internal/analysis"
	"github.com/aretw0/polish/internal/logging"
	"github.com/aretw0/polish/pkg/domain"
	"github.com/aretw0/polish/pkg/ports"
)

// Version is the current release of the Polish engine.
const Version = "0.3.0"

// Engine is the high-level entry point for the Polish library. It orchestrates
// the analysis pipeline: validation, notation detection, conversion to
// canonical postfix, and tree construction.
//
// An Engine holds no per-call state, so a single instance is safe for
// concurrent use across independent expressions.
type Engine struct {
	logger *slog.Logger
	store  ports.AnalysisStore
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore attaches an analysis history store. Every successful analysis is
// saved under its derived ID. History writes are best-effort: a storage
// failure is logged and never fails the analysis itself.
func WithStore(store ports.AnalysisStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze runs the full pipeline on a raw expression: strip whitespace and
// validate the alphabet, detect the notation from the endpoints, convert to
// postfix, and build the expression tree. The returned Analysis carries the
// detected notation, the tree root, and all three rendered notations.
//
// Any failure aborts the whole analysis; no partial result is returned.
// Unexpected panics from the pipeline are recovered here, logged, and
// reported as a generic error so internal state never leaks to callers.
func (e *Engine) Analyze(raw string) (result *domain.Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("analysis panicked", "panic", r)
			result = nil
			err = fmt.Errorf("unexpected error while analyzing expression")
		}
	}()

	expr, err := analysis.Normalize(raw)
	if err != nil {
		return nil, err
	}

	notation := analysis.Detect(expr)

	postfix, err := toPostfix(expr, notation)
	if err != nil {
		e.logger.Debug("conversion failed", "notation", notation, "err", err)
		return nil, err
	}

	root, err := analysis.BuildTree(postfix)
	if err != nil {
		e.logger.Debug("tree build failed", "err", err)
		return nil, err
	}

	res := &domain.Analysis{
		Expression: expr,
		Notation:   notation,
		Postfix:    root.PostOrder(),
		Prefix:     root.PreOrder(),
		Infix:      root.InOrder(),
		Root:       root,
	}

	if e.store != nil {
		if saveErr := e.store.Save(context.Background(), res.ID(), res); saveErr != nil {
			e.logger.Warn("failed to save analysis history", "id", res.ID(), "err", saveErr)
		}
	}

	return res, nil
}

// toPostfix converts a validated expression to postfix according to its
// detected notation. Postfix input passes through unchanged.
func toPostfix(expr string, notation domain.Notation) (string, error) {
	if !notation.Valid() {
		return "", domain.ErrUnknownNotation
	}
	switch notation {
	case domain.NotationPostfix:
		return expr, nil
	case domain.NotationPrefix:
		return analysis.PrefixToPostfix(expr)
	default:
		return analysis.InfixToPostfix(expr)
	}
}
