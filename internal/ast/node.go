package ast

// NodeType tags the concrete kind of an AST node, mirroring the teacher's
// NodeType enum (internal/ast/types.go) but scoped to the expression and
// statement kinds spec §6 requires the core to consume.
type NodeType int

const (
	BAD_NODE NodeType = iota

	// Expressions
	IDENT_EXPR
	NUMBER_LIT_EXPR
	BOOL_LIT_EXPR
	STRING_LIT_EXPR
	NULL_LIT_EXPR
	BINARY_EXPR
	UNARY_EXPR
	FIELD_ACCESS_EXPR
	METHOD_CALL_EXPR
	STATIC_CALL_EXPR
	STRUCT_INSTANCE_EXPR
	CONDITIONAL_EXPR
	INIT_OF_EXPR

	// Statements
	LET_STMT
	ASSIGN_STMT
	AUGMENTED_ASSIGN_STMT
	RETURN_STMT
	EXPRESSION_STMT
	CONDITION_STMT
	WHILE_STMT
	UNTIL_STMT
	REPEAT_STMT
	FOREACH_STMT
	TRY_STMT
	TRY_CATCH_STMT

	// Program entries
	FUNCTION_ENTRY
	METHOD_ENTRY
	RECEIVE_ENTRY
	CONTRACT_ENTRY
	TRAIT_ENTRY
	CONSTANT_ENTRY
	STRUCT_ENTRY
	MESSAGE_ENTRY
	PRIMITIVE_ENTRY
	NATIVE_ENTRY
)

// Node is implemented by every AST node the core consumes: expressions,
// statements, and top-level program entries alike.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	NodeID() NodeID
}

// base is embedded by every concrete node to supply the Metadata-backed
// parts of the Node interface, the same embedding style the teacher uses
// for Pos/EndPos/metadata fields (internal/ast/node.go, internal/ast/contract.go).
type base struct {
	Meta Metadata
}

func (b *base) NodePos() Position    { return b.Meta.Source.Start }
func (b *base) NodeEndPos() Position { return b.Meta.Source.End }
func (b *base) NodeID() NodeID       { return b.Meta.NodeID }
