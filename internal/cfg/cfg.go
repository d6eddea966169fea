// Package cfg holds the per-function intermediate representation (spec
// §3.4-3.5, component C): basic blocks, edges, and their composition into
// CFGs, Contracts, and CompilationUnits. Adjacency bookkeeping is backed by
// github.com/katalvlaran/lvlath/core.Graph, which already gives a
// cycle-safe, id-indexed directed multigraph; CFG wraps it with the typed,
// position-indexed API the spec requires instead of re-deriving adjacency
// by hand.
package cfg

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath/core"

	"tactlint/internal/ast"
)

// Kind distinguishes the three things a CFG may represent (spec §3.4).
type Kind int

const (
	KindFunction Kind = iota
	KindMethod
	KindReceive
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindReceive:
		return "receive"
	default:
		return "unknown"
	}
}

func vid(id BlockID) string { return strconv.FormatUint(uint64(id), 10) }

// CFG represents one function, method, or receive handler (spec §3.4). Its
// blocks and edges are owned by value in ordered slices; blockPos/edgePos
// are secondary indexes from id to slice position for O(1) lookup, and g
// mirrors the same topology in a lvlath core.Graph for adjacency and degree
// queries.
type CFG struct {
	Name   string
	Kind   Kind
	Origin ast.Origin
	Source ast.Span

	blocks []*BasicBlock
	edges  []*Edge

	blockPos map[BlockID]int
	edgePos  map[EdgeID]int

	g *core.Graph
}

// NewCFG returns an empty CFG ready to receive blocks and edges.
func NewCFG(name string, kind Kind, origin ast.Origin, src ast.Span) *CFG {
	return &CFG{
		Name:     name,
		Kind:     kind,
		Origin:   origin,
		Source:   src,
		blockPos: make(map[BlockID]int),
		edgePos:  make(map[EdgeID]int),
		g:        core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops()),
	}
}

// AddBlock appends a new block in construction order and returns it. The
// first block ever added is the CFG's logical entry (spec §3.4).
func (c *CFG) AddBlock(id BlockID, stmt ast.NodeID, kind BlockKind, src ast.Span) *BasicBlock {
	b := &BasicBlock{ID: id, Stmt: stmt, Kind: kind, Source: src}
	c.blockPos[id] = len(c.blocks)
	c.blocks = append(c.blocks, b)
	if err := c.g.AddVertex(vid(id)); err != nil {
		panic(fmt.Sprintf("cfg: add vertex %d: %v", id, err))
	}
	return b
}

// AddEdge records a (src, dst) edge and keeps both endpoint blocks' SrcEdges
// and DstEdges in sync (spec §3.4 invariant: "dstEdges/srcEdges sets
// reference edges whose src/dst is that block"). Panics if either endpoint
// is not a block of this CFG — an internal-exception condition per spec §7,
// since it can only follow from a builder bug, never from user input.
func (c *CFG) AddEdge(id EdgeID, src, dst BlockID) *Edge {
	srcBlock, ok := c.Block(src)
	if !ok {
		panic(fmt.Sprintf("cfg: edge %d references unknown src block %d", id, src))
	}
	dstBlock, ok := c.Block(dst)
	if !ok {
		panic(fmt.Sprintf("cfg: edge %d references unknown dst block %d", id, dst))
	}
	e := &Edge{ID: id, Src: src, Dst: dst}
	c.edgePos[id] = len(c.edges)
	c.edges = append(c.edges, e)
	srcBlock.DstEdges = append(srcBlock.DstEdges, id)
	dstBlock.SrcEdges = append(dstBlock.SrcEdges, id)
	if _, err := c.g.AddEdge(vid(src), vid(dst), 0); err != nil {
		panic(fmt.Sprintf("cfg: add edge %d (%d->%d): %v", id, src, dst, err))
	}
	return e
}

// Block looks up a block by id in O(1).
func (c *CFG) Block(id BlockID) (*BasicBlock, bool) {
	pos, ok := c.blockPos[id]
	if !ok {
		return nil, false
	}
	return c.blocks[pos], true
}

// EdgeByID looks up an edge by id in O(1).
func (c *CFG) EdgeByID(id EdgeID) (*Edge, bool) {
	pos, ok := c.edgePos[id]
	if !ok {
		return nil, false
	}
	return c.edges[pos], true
}

// Blocks returns the blocks in construction order. The returned slice is a
// read-only view; callers must not mutate it.
func (c *CFG) Blocks() []*BasicBlock { return c.blocks }

// Edges returns the edges in construction order.
func (c *CFG) Edges() []*Edge { return c.edges }

// Entry returns the logical entry block: the first block in construction
// order (spec §3.4). Ok is false for an empty CFG.
func (c *CFG) Entry() (*BasicBlock, bool) {
	if len(c.blocks) == 0 {
		return nil, false
	}
	return c.blocks[0], true
}

// Exits returns every block whose kind is Return (spec §3.4: "any block
// with kind Return is an exit").
func (c *CFG) Exits() []*BasicBlock {
	var out []*BasicBlock
	for _, b := range c.blocks {
		if b.IsExit() {
			out = append(out, b)
		}
	}
	return out
}

// Successors returns the blocks reachable by one outgoing edge from id, in
// ascending block-id order, delegating adjacency to the backing graph.
func (c *CFG) Successors(id BlockID) []*BasicBlock {
	ids, err := c.g.NeighborIDs(vid(id))
	if err != nil {
		return nil
	}
	out := make([]*BasicBlock, 0, len(ids))
	for _, s := range ids {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			continue
		}
		if b, ok := c.Block(BlockID(n)); ok {
			out = append(out, b)
		}
	}
	return out
}

// Predecessors returns the blocks with an outgoing edge into id, derived
// from id's recorded SrcEdges (spec §3.4: "b.srcEdges = {e | e.dst = b.id}").
func (c *CFG) Predecessors(id BlockID) []*BasicBlock {
	b, ok := c.Block(id)
	if !ok {
		return nil
	}
	out := make([]*BasicBlock, 0, len(b.SrcEdges))
	for _, eid := range b.SrcEdges {
		e, ok := c.EdgeByID(eid)
		if !ok {
			continue
		}
		if p, ok := c.Block(e.Src); ok {
			out = append(out, p)
		}
	}
	return out
}

// Degree reports in/out edge counts for a block, delegating to the backing
// graph; useful for well-formedness assertions and detector heuristics.
func (c *CFG) Degree(id BlockID) (in, out int, err error) {
	inD, outD, _, err := c.g.Degree(vid(id))
	return inD, outD, err
}

// Validate checks the CFG well-formedness invariants from spec §8: every
// edge's endpoints are blocks of this CFG, and every block's srcEdges/
// dstEdges agree with the edge list. It returns the first violation found,
// or nil.
func (c *CFG) Validate() error {
	for _, e := range c.edges {
		if _, ok := c.Block(e.Src); !ok {
			return fmt.Errorf("cfg %q: edge %d has unknown src block %d", c.Name, e.ID, e.Src)
		}
		if _, ok := c.Block(e.Dst); !ok {
			return fmt.Errorf("cfg %q: edge %d has unknown dst block %d", c.Name, e.ID, e.Dst)
		}
	}
	for _, b := range c.blocks {
		for _, eid := range b.DstEdges {
			e, ok := c.EdgeByID(eid)
			if !ok || e.Src != b.ID {
				return fmt.Errorf("cfg %q: block %d dstEdges references inconsistent edge %d", c.Name, b.ID, eid)
			}
		}
		for _, eid := range b.SrcEdges {
			e, ok := c.EdgeByID(eid)
			if !ok || e.Dst != b.ID {
				return fmt.Errorf("cfg %q: block %d srcEdges references inconsistent edge %d", c.Name, b.ID, eid)
			}
		}
	}
	return nil
}
