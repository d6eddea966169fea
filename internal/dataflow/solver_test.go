package dataflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/dataflow"
	"tactlint/internal/interval"
)

// straightLineCFG builds entry -> mid -> exit, a minimal acyclic shape.
func straightLineCFG(t *testing.T) *cfg.CFG {
	t.Helper()
	ids := cfg.NewIDAllocator()
	c := cfg.NewCFG("straight", cfg.KindFunction, ast.OriginUser, ast.Span{})
	entry := c.AddBlock(ids.NextBlock(), 1, cfg.Regular, ast.Span{})
	mid := c.AddBlock(ids.NextBlock(), 2, cfg.Regular, ast.Span{})
	exit := c.AddBlock(ids.NextBlock(), 3, cfg.Return, ast.Span{})
	c.AddEdge(ids.NextEdge(), entry.ID, mid.ID)
	c.AddEdge(ids.NextEdge(), mid.ID, exit.ID)
	return c
}

func TestForwardJoinSolverPropagatesConstantInterval(t *testing.T) {
	c := straightLineCFG(t)

	solver := &dataflow.Solver[interval.Interval]{
		Direction: dataflow.Forward,
		Combiner:  dataflow.JoinCombiner[interval.Interval]{L: interval.JoinSemiLattice{}},
		Transfer: func(in interval.Interval, block *cfg.BasicBlock) interval.Interval {
			if block.Stmt == 1 {
				return interval.FromInt64(7)
			}
			return in
		},
	}

	results, err := solver.Solve(context.Background(), c)
	require.NoError(t, err)

	entry, _ := c.Entry()
	exits := c.Exits()
	require.Len(t, exits, 1)

	assert.True(t, results[entry.ID].Eq(interval.FromInt64(7)))
	assert.True(t, results[exits[0].ID].Eq(interval.FromInt64(7)))
}

func TestWideningSolverTerminatesOnUnstableLoop(t *testing.T) {
	ids := cfg.NewIDAllocator()
	c := cfg.NewCFG("loop", cfg.KindFunction, ast.OriginUser, ast.Span{})
	header := c.AddBlock(ids.NextBlock(), 1, cfg.Regular, ast.Span{})
	body := c.AddBlock(ids.NextBlock(), 2, cfg.Regular, ast.Span{})
	c.AddEdge(ids.NextEdge(), header.ID, body.ID)
	c.AddEdge(ids.NextEdge(), body.ID, header.ID)

	pass := 0
	solver := &dataflow.Solver[interval.Interval]{
		Direction: dataflow.Forward,
		Combiner:  dataflow.JoinCombiner[interval.Interval]{L: interval.JoinSemiLattice{}},
		Transfer: func(in interval.Interval, block *cfg.BasicBlock) interval.Interval {
			if block.ID == body.ID {
				// a strictly growing upper bound every pass: would never
				// stabilize without widening.
				pass++
				return interval.Join(in, interval.FromInt64(int64(pass)))
			}
			return in
		},
		Widen: interval.Widen,
	}

	done := make(chan struct{})
	var results dataflow.Results[interval.Interval]
	var err error
	go func() {
		results, err = solver.Solve(context.Background(), c)
		close(done)
	}()
	<-done

	require.NoError(t, err)
	assert.True(t, results[header.ID].High.IsPosInf() || results[body.ID].High.IsPosInf(),
		"widening should have pushed an unstable bound to +inf")
}

func TestCooperativeCancellationAbortsSolve(t *testing.T) {
	c := straightLineCFG(t)
	solver := &dataflow.Solver[interval.Interval]{
		Direction: dataflow.Forward,
		Combiner:  dataflow.JoinCombiner[interval.Interval]{L: interval.JoinSemiLattice{}},
		Transfer: func(in interval.Interval, block *cfg.BasicBlock) interval.Interval {
			return in
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, c)
	assert.ErrorIs(t, err, context.Canceled)
}
