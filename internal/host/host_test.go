package host_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/cfgbuilder"
	"tactlint/internal/config"
	"tactlint/internal/host"
)

func buildRefOverflowUnit(t *testing.T) (*ast.Store, *cfg.CompilationUnit) {
	t.Helper()
	ids := ast.NewIDAllocator()

	var chainExpr ast.Expr = &ast.StaticCallExpr{Name: "beginCell"}
	for i := 0; i < 5; i++ {
		chainExpr = &ast.MethodCallExpr{Receiver: chainExpr, Method: "storeRef", Args: []ast.Expr{&ast.IdentExpr{Name: "r"}}}
	}
	letStmt := &ast.LetStmt{Name: "b", Expr: chainExpr}
	letStmt.Meta.NodeID = ids.Next()
	retStmt := &ast.ReturnStmt{}
	retStmt.Meta.NodeID = ids.Next()

	fn := &ast.Function{Name: "pack", Body: []ast.Stmt{letStmt, retStmt}}

	store := ast.NewStore()
	store.Register(fn)

	unit := cfg.NewCompilationUnit("Wallet")
	builder := cfgbuilder.New(cfg.NewIDAllocator(), unit)
	id := builder.PreregisterFunction(fn)
	builder.BuildFunction(id, fn)

	return store, unit
}

func TestHostRunCollectsCellBoundsWarnings(t *testing.T) {
	store, unit := buildRefOverflowUnit(t)
	h := host.New(config.Default(), ast.NewBuiltinAdapter())

	warnings, err := h.Run(context.Background(), store, unit)
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Equal(t, "Too many references stored in cell", warnings[0].Title)
}

func TestHostRunRespectsDetectorAllowlist(t *testing.T) {
	store, unit := buildRefOverflowUnit(t)
	conf := config.Config{DetectorsEnabled: []string{"unbounded-loop"}}
	h := host.New(conf, ast.NewBuiltinAdapter())

	warnings, err := h.Run(context.Background(), store, unit)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestHostRunPropagatesCancellation(t *testing.T) {
	store, unit := buildRefOverflowUnit(t)
	h := host.New(config.Default(), ast.NewBuiltinAdapter())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Run(ctx, store, unit)
	assert.ErrorIs(t, err, context.Canceled)
}
