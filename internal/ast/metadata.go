package ast

// NodeID uniquely identifies an AST node for the lifetime of a Store. Ids are
// dense and monotonically allocated by an IDAllocator (see store.go); the
// source-language parser is responsible for minting them before the core
// ever sees the tree.
type NodeID uint32

// Metadata carries the bookkeeping every node needs to survive into the AST
// store: its own id, its source range, and the raw text the parser saw there
// (useful when a detector wants to quote the offending snippet in a
// warning's Suggestion).
type Metadata struct {
	NodeID     NodeID
	Source     Span
	SourceText string
}
