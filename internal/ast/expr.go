package ast

// Expr is any expression node. Expression kinds are exactly the set spec §6
// lists as consumed by the core: identifier, number literal, boolean,
// string, null, binary op, unary op, field access, method call, static
// call, struct instance, conditional, init-of.
type Expr interface {
	Node
	exprNode()
}

// IdentExpr references a local variable, parameter, or constant by name.
type IdentExpr struct {
	base
	Name string
}

func (*IdentExpr) NodeType() NodeType { return IDENT_EXPR }
func (*IdentExpr) exprNode()          {}

// NumberLitExpr is an integer literal. Value is kept as a decimal string so
// arbitrarily large literals (e.g. storeCoins constants near 2^1020) survive
// without precision loss before the numeric domain parses them.
type NumberLitExpr struct {
	base
	Value string
}

func (*NumberLitExpr) NodeType() NodeType { return NUMBER_LIT_EXPR }
func (*NumberLitExpr) exprNode()          {}

// BoolLitExpr is a `true`/`false` literal.
type BoolLitExpr struct {
	base
	Value bool
}

func (*BoolLitExpr) NodeType() NodeType { return BOOL_LIT_EXPR }
func (*BoolLitExpr) exprNode()          {}

// StringLitExpr is a string literal.
type StringLitExpr struct {
	base
	Value string
}

func (*StringLitExpr) NodeType() NodeType { return STRING_LIT_EXPR }
func (*StringLitExpr) exprNode()          {}

// NullLitExpr is the `null` literal.
type NullLitExpr struct {
	base
}

func (*NullLitExpr) NodeType() NodeType { return NULL_LIT_EXPR }
func (*NullLitExpr) exprNode()          {}

// BinaryExpr is a binary operator application, e.g. `a + b`.
type BinaryExpr struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryExpr) NodeType() NodeType { return BINARY_EXPR }
func (*BinaryExpr) exprNode()          {}

// UnaryExpr is a unary operator application, e.g. `!a` or `-a`.
type UnaryExpr struct {
	base
	Op      string
	Operand Expr
}

func (*UnaryExpr) NodeType() NodeType { return UNARY_EXPR }
func (*UnaryExpr) exprNode()          {}

// FieldAccessExpr is `target.field`.
type FieldAccessExpr struct {
	base
	Target Expr
	Field  string
}

func (*FieldAccessExpr) NodeType() NodeType { return FIELD_ACCESS_EXPR }
func (*FieldAccessExpr) exprNode()          {}

// MethodCallExpr is `receiver.method(args...)`. Receiver may itself be a
// MethodCallExpr, forming the method-call chains the cell-bounds detector
// (spec §4.H) walks left-to-right.
type MethodCallExpr struct {
	base
	Receiver Expr
	Method   string
	Args     []Expr
}

func (*MethodCallExpr) NodeType() NodeType { return METHOD_CALL_EXPR }
func (*MethodCallExpr) exprNode()          {}

// StaticCallExpr is a free-function call `name(args...)`, or a namespaced
// call `Module::name(args...)` when Namespace is non-empty.
type StaticCallExpr struct {
	base
	Namespace string
	Name      string
	Args      []Expr
}

func (*StaticCallExpr) NodeType() NodeType { return STATIC_CALL_EXPR }
func (*StaticCallExpr) exprNode()          {}

// StructFieldInit is one `field: value` entry of a StructInstanceExpr.
type StructFieldInit struct {
	Field string
	Value Expr
}

// StructInstanceExpr constructs a struct or message literal, e.g.
// `TransferMsg { to: addr, amount: 10 }`.
type StructInstanceExpr struct {
	base
	TypeName string
	Fields   []StructFieldInit
}

func (*StructInstanceExpr) NodeType() NodeType { return STRUCT_INSTANCE_EXPR }
func (*StructInstanceExpr) exprNode()          {}

// ConditionalExpr is a ternary `cond ? then : else`.
type ConditionalExpr struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

func (*ConditionalExpr) NodeType() NodeType { return CONDITIONAL_EXPR }
func (*ConditionalExpr) exprNode()          {}

// InitOfExpr is a contract-init reference `initOf Contract(args...)`, used
// by deployment-style expressions; it never participates in cell-bounds
// chains but is part of the external expression surface the core must be
// able to walk without raising (spec §6).
type InitOfExpr struct {
	base
	ContractName string
	Args         []Expr
}

func (*InitOfExpr) NodeType() NodeType { return INIT_OF_EXPR }
func (*InitOfExpr) exprNode()          {}
