package cfgbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/cfgbuilder"
)

func TestLinearBodyIsOneBlockPerStatement(t *testing.T) {
	unit := cfg.NewCompilationUnit("Wallet")
	b := cfgbuilder.New(cfg.NewIDAllocator(), unit)

	fn := &ast.Function{
		Name: "init",
		Body: []ast.Stmt{
			&ast.LetStmt{Name: "x", Expr: &ast.NumberLitExpr{Value: "0"}},
			&ast.ExpressionStmt{Expr: &ast.IdentExpr{Name: "x"}},
			&ast.ReturnStmt{},
		},
	}

	id := b.PreregisterFunction(fn)
	c := b.BuildFunction(id, fn)

	require.Len(t, c.Blocks(), 3)
	require.Len(t, c.Edges(), 2)
	entry, ok := c.Entry()
	require.True(t, ok)
	assert.Equal(t, cfg.Regular, entry.Kind)
	exits := c.Exits()
	require.Len(t, exits, 1)
	assert.Equal(t, cfg.Return, exits[0].Kind)
	assert.NoError(t, c.Validate())
}

func TestIfElseBranchesBothRejoin(t *testing.T) {
	unit := cfg.NewCompilationUnit("Wallet")
	b := cfgbuilder.New(cfg.NewIDAllocator(), unit)

	fn := &ast.Function{
		Name: "guard",
		Body: []ast.Stmt{
			&ast.ConditionStmt{
				Cond: &ast.BoolLitExpr{Value: true},
				Then: []ast.Stmt{&ast.LetStmt{Name: "a", Expr: &ast.NumberLitExpr{Value: "1"}}},
				Else: []ast.Stmt{&ast.LetStmt{Name: "b", Expr: &ast.NumberLitExpr{Value: "2"}}},
			},
			&ast.ReturnStmt{},
		},
	}

	id := b.PreregisterFunction(fn)
	c := b.BuildFunction(id, fn)

	// cond, then-let, else-let, return = 4 blocks.
	require.Len(t, c.Blocks(), 4)
	// cond->then, cond->else, then->return, else->return = 4 edges.
	require.Len(t, c.Edges(), 4)
	assert.NoError(t, c.Validate())
}

func TestIfWithoutElseFallsThroughCondition(t *testing.T) {
	unit := cfg.NewCompilationUnit("Wallet")
	b := cfgbuilder.New(cfg.NewIDAllocator(), unit)

	fn := &ast.Function{
		Name: "guard",
		Body: []ast.Stmt{
			&ast.ConditionStmt{
				Cond: &ast.BoolLitExpr{Value: true},
				Then: []ast.Stmt{&ast.LetStmt{Name: "a", Expr: &ast.NumberLitExpr{Value: "1"}}},
			},
			&ast.ReturnStmt{},
		},
	}

	id := b.PreregisterFunction(fn)
	c := b.BuildFunction(id, fn)

	require.Len(t, c.Blocks(), 3)
	// cond->then, then->return, cond->return = 3 edges.
	require.Len(t, c.Edges(), 3)
	assert.NoError(t, c.Validate())
}

func TestWhileLoopHasBackEdgeAndExplicitExit(t *testing.T) {
	unit := cfg.NewCompilationUnit("Wallet")
	b := cfgbuilder.New(cfg.NewIDAllocator(), unit)

	fn := &ast.Function{
		Name: "loop",
		Body: []ast.Stmt{
			&ast.WhileStmt{
				Cond: &ast.BoolLitExpr{Value: true},
				Body: []ast.Stmt{&ast.LetStmt{Name: "a", Expr: &ast.NumberLitExpr{Value: "1"}}},
			},
			&ast.ReturnStmt{},
		},
	}

	id := b.PreregisterFunction(fn)
	c := b.BuildFunction(id, fn)

	require.Len(t, c.Blocks(), 3) // header, body, return
	header, ok := c.Entry()
	require.True(t, ok)

	succ := c.Successors(header.ID)
	require.Len(t, succ, 2) // body entry + exit to return
	assert.NoError(t, c.Validate())
}

func TestFreeFunctionCallResolvesToCalleeCFGID(t *testing.T) {
	unit := cfg.NewCompilationUnit("Wallet")
	b := cfgbuilder.New(cfg.NewIDAllocator(), unit)

	helper := &ast.Function{Name: "helper", Body: nil}
	caller := &ast.Function{
		Name: "caller",
		Body: []ast.Stmt{
			&ast.ExpressionStmt{Expr: &ast.StaticCallExpr{Name: "helper"}},
		},
	}

	helperID := b.PreregisterFunction(helper)
	callerID := b.PreregisterFunction(caller)
	b.BuildFunction(helperID, helper)
	c := b.BuildFunction(callerID, caller)

	entry, ok := c.Entry()
	require.True(t, ok)
	assert.Equal(t, cfg.Call, entry.Kind)
	_, has := entry.Callees[helperID]
	assert.True(t, has, "expected call block to record helper's CFGID as a callee")
}

func TestUnresolvedCallNeverRaisesAndStaysRegular(t *testing.T) {
	unit := cfg.NewCompilationUnit("Wallet")
	b := cfgbuilder.New(cfg.NewIDAllocator(), unit)

	fn := &ast.Function{
		Name: "caller",
		Body: []ast.Stmt{
			&ast.ExpressionStmt{Expr: &ast.StaticCallExpr{Name: "doesNotExist"}},
		},
	}
	id := b.PreregisterFunction(fn)
	c := b.BuildFunction(id, fn)

	entry, ok := c.Entry()
	require.True(t, ok)
	assert.Equal(t, cfg.Regular, entry.Kind)
	assert.Empty(t, entry.Callees)
}
