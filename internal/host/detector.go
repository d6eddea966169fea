// Package host implements detector discovery and scheduling (spec §4.I,
// component I): it runs every enabled detector over every CFG in a
// compilation unit, fans independent detector/CFG pairs out concurrently,
// and aggregates the result into one deduped, severity-sorted warning list.
package host

import (
	"context"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/warning"
)

// Detector is anything the host can schedule: one CFG-scoped analysis pass.
// Name is the detector's human-facing identifier (e.g. "CellBounds"); the
// host derives its config-facing id from it (see idOf in host.go).
type Detector interface {
	Name() string
	Run(ctx context.Context, store *ast.Store, c *cfg.CFG, adapter ast.LanguageAdapter) ([]warning.Warning, error)
}
