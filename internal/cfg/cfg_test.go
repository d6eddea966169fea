package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
)

func TestAddBlockAndEdgeMaintainsIndexes(t *testing.T) {
	ids := cfg.NewIDAllocator()
	c := cfg.NewCFG("transfer", cfg.KindMethod, ast.OriginUser, ast.Span{})

	b0 := c.AddBlock(ids.NextBlock(), 1, cfg.Regular, ast.Span{})
	b1 := c.AddBlock(ids.NextBlock(), 2, cfg.Return, ast.Span{})
	e0 := c.AddEdge(ids.NextEdge(), b0.ID, b1.ID)

	assert.Equal(t, []cfg.EdgeID{e0.ID}, b0.DstEdges)
	assert.Equal(t, []cfg.EdgeID{e0.ID}, b1.SrcEdges)
	assert.NoError(t, c.Validate())
}

func TestEntryIsFirstBlockAndExitsAreReturnBlocks(t *testing.T) {
	ids := cfg.NewIDAllocator()
	c := cfg.NewCFG("f", cfg.KindFunction, ast.OriginUser, ast.Span{})

	first := c.AddBlock(ids.NextBlock(), 1, cfg.Regular, ast.Span{})
	ret := c.AddBlock(ids.NextBlock(), 2, cfg.Return, ast.Span{})
	c.AddEdge(ids.NextEdge(), first.ID, ret.ID)

	entry, ok := c.Entry()
	require.True(t, ok)
	assert.Equal(t, first.ID, entry.ID)

	exits := c.Exits()
	require.Len(t, exits, 1)
	assert.Equal(t, ret.ID, exits[0].ID)
}

func TestSuccessorsFollowsOutgoingEdgesOnly(t *testing.T) {
	ids := cfg.NewIDAllocator()
	c := cfg.NewCFG("f", cfg.KindFunction, ast.OriginUser, ast.Span{})

	a := c.AddBlock(ids.NextBlock(), 1, cfg.Regular, ast.Span{})
	b := c.AddBlock(ids.NextBlock(), 2, cfg.Regular, ast.Span{})
	c.AddBlock(ids.NextBlock(), 3, cfg.Return, ast.Span{})
	c.AddEdge(ids.NextEdge(), a.ID, b.ID)

	succ := c.Successors(a.ID)
	require.Len(t, succ, 1)
	assert.Equal(t, b.ID, succ[0].ID)
	assert.Empty(t, c.Successors(b.ID))
}

func TestValidateAcceptsBlockWithNoEdges(t *testing.T) {
	ids := cfg.NewIDAllocator()
	c := cfg.NewCFG("f", cfg.KindFunction, ast.OriginUser, ast.Span{})
	c.AddBlock(ids.NextBlock(), 1, cfg.Regular, ast.Span{})

	assert.NoError(t, c.Validate())
}

func TestContractAndCompilationUnitResolveCallTargets(t *testing.T) {
	ids := cfg.NewIDAllocator()
	unit := cfg.NewCompilationUnit("Wallet")

	fnID := ids.NextCFG()
	unit.RegisterFunctionName("helper", fnID)
	unit.Functions[fnID] = cfg.NewCFG("helper", cfg.KindFunction, ast.OriginUser, ast.Span{})

	contractID := ids.NextContract()
	methodID := ids.NextCFG()
	contract := cfg.NewContract(contractID, "Wallet")
	contract.Methods[methodID] = cfg.NewCFG("transfer", cfg.KindMethod, ast.OriginUser, ast.Span{})
	unit.Contracts[contractID] = contract
	unit.RegisterMethodName("Wallet", "transfer", contractID, methodID)

	resolvedFn, ok := unit.ResolveFunction("helper")
	require.True(t, ok)
	assert.Equal(t, fnID, resolvedFn)

	resolvedMethod, ok := unit.ResolveMethod("Wallet", "transfer")
	require.True(t, ok)
	assert.Equal(t, methodID, resolvedMethod)

	_, ok = unit.ResolveFunction("missing")
	assert.False(t, ok)

	got, ok := unit.CFGByID(methodID)
	require.True(t, ok)
	assert.Equal(t, "transfer", got.Name)
}
