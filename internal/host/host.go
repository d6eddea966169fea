package host

import (
	"context"
	"sync"

	"github.com/iancoleman/strcase"
	"golang.org/x/sync/errgroup"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/config"
	"tactlint/internal/warning"
)

// Host owns the registered detectors and the configuration gating which of
// them run (spec §4.I).
type Host struct {
	Config    config.Config
	Adapter   ast.LanguageAdapter
	detectors []Detector
}

// New returns a Host with every built-in detector registered.
func New(cfg config.Config, adapter ast.LanguageAdapter) *Host {
	return &Host{Config: cfg, Adapter: adapter, detectors: builtinDetectors()}
}

// idOf derives a detector's config-facing identifier from its display name,
// e.g. "CellBounds" -> "cell-bounds", so config.Config.DetectorsEnabled can
// list detectors without the host hand-maintaining a second name table.
func idOf(d Detector) string {
	return strcase.ToKebab(d.Name())
}

// Run executes every enabled detector against every CFG in unit (skipping
// standard-library CFGs unless Config.IncludeStdlib is set), fanning
// independent detector/CFG pairs out concurrently, and returns the combined
// warnings deduped and sorted by descending severity (spec §4.I step 3-4).
// ctx cancellation propagates to every in-flight detector; Run returns the
// first error any detector reports, but still returns whatever warnings had
// already been produced by that point rather than discarding them (spec §5,
// §7: "partial warnings already produced for earlier units are still
// reported").
func (h *Host) Run(ctx context.Context, store *ast.Store, unit *cfg.CompilationUnit) ([]warning.Warning, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var collected []warning.Warning

	for _, c := range unit.AllCFGs() {
		c := c
		if !h.Config.IncludeStdlib && c.Origin == ast.OriginStdlib {
			continue
		}
		for _, d := range h.detectors {
			d := d
			if !h.Config.DetectorEnabled(idOf(d)) {
				continue
			}
			g.Go(func() error {
				found, err := d.Run(ctx, store, c, h.Adapter)
				mu.Lock()
				collected = append(collected, found...)
				mu.Unlock()
				return err
			})
		}
	}

	err := g.Wait()

	deduped := warning.Dedup(collected)
	warning.SortBySeverityDescending(deduped)
	return deduped, err
}
