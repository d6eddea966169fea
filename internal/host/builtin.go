package host

import (
	"context"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/detectors/cellbounds"
	"tactlint/internal/warning"
)

// cellBoundsDetector adapts cellbounds.Run to the Detector interface.
type cellBoundsDetector struct{}

func (cellBoundsDetector) Name() string { return "CellBounds" }

func (cellBoundsDetector) Run(ctx context.Context, store *ast.Store, c *cfg.CFG, adapter ast.LanguageAdapter) ([]warning.Warning, error) {
	return cellbounds.Run(ctx, store, c, adapter)
}

// builtinDetectors is every detector the core ships, in registration order.
// A future detector is added here; the host never needs to change to pick
// it up.
func builtinDetectors() []Detector {
	return []Detector{
		cellBoundsDetector{},
	}
}
