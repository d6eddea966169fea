package cfg

import "tactlint/internal/ast"

// BlockID identifies a basic block, unique across its compilation unit
// (spec §3.4). IDs are allocated monotonically by an IDAllocator.
type BlockID uint32

// EdgeID identifies an edge, unique across its compilation unit.
type EdgeID uint32

// BlockKind classifies a basic block by the statement it holds (spec §3.4,
// §4.D): Regular carries no control-flow-relevant call; Call references
// CFG ids this block's statement may invoke; Return is an exit block.
type BlockKind int

const (
	Regular BlockKind = iota
	Call
	Return
)

func (k BlockKind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Call:
		return "call"
	case Return:
		return "return"
	default:
		return "unknown"
	}
}

// BasicBlock holds a single statement id and its kind, plus the ids of the
// edges entering and leaving it (spec §3.4). Blocks never own other blocks
// directly — everything is referenced by id through the owning CFG, the
// arena-style layout the Design Notes call for to keep a cyclic graph out
// of Go's ownership model.
type BasicBlock struct {
	ID       BlockID
	Stmt     ast.NodeID
	Kind     BlockKind
	Callees  map[CFGID]struct{} // only meaningful when Kind == Call
	SrcEdges []EdgeID           // edges whose dst is this block
	DstEdges []EdgeID           // edges whose src is this block
	Source   ast.Span
}

// AddCallee records a resolved call target. Unresolved calls (dynamic or
// external) are simply never added (spec §4.D: "never raise").
func (b *BasicBlock) AddCallee(id CFGID) {
	if b.Callees == nil {
		b.Callees = make(map[CFGID]struct{})
	}
	b.Callees[id] = struct{}{}
}

// IsExit reports whether this block is a CFG exit (spec §3.4: "any block
// with kind Return is an exit").
func (b *BasicBlock) IsExit() bool {
	return b.Kind == Return
}

// Edge is the tuple (src, dst) of block ids with its own unique id (spec
// §3.4).
type Edge struct {
	ID  EdgeID
	Src BlockID
	Dst BlockID
}
