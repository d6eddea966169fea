package ast

// Origin distinguishes standard-library program entries from user code, the
// split the AST store (spec §3.3) must expose via filtered iterators.
type Origin int

const (
	OriginUser Origin = iota
	OriginStdlib
)

// Param is one function, method, or native-declaration parameter.
type Param struct {
	Name string
	Type string
}

// StructField is one field of a Struct or Message declaration.
type StructField struct {
	Name string
	Type string
}

// Entry is any top-level program entry the AST store indexes: functions,
// contracts, traits, constants, structs, messages, primitives, and native
// declarations (spec §3.3).
type Entry interface {
	Node
	entryNode()
	EntryName() string
	EntryOrigin() Origin
}

// Function is a free function or, when Receiver is non-empty, a contract
// method; when IsReceive is true it is a message-receiver entry point
// (`receive` kind in the CFG, spec §3.4).
type Function struct {
	base
	Name       string
	Receiver   string // contract name this is a method of; empty for free functions
	IsReceive  bool
	ReceiveMsg string // message type name this receiver handles, when IsReceive
	Params     []Param
	ReturnType string
	Body       []Stmt
	Origin     Origin
}

func (*Function) NodeType() NodeType {
	return FUNCTION_ENTRY
}
func (f *Function) EntryName() string   { return f.Name }
func (f *Function) EntryOrigin() Origin { return f.Origin }
func (*Function) entryNode()            {}

// Kind reports whether this entry builds into a `function`, `method`, or
// `receive` CFG per spec §3.4.
func (f *Function) Kind() string {
	switch {
	case f.IsReceive:
		return "receive"
	case f.Receiver != "":
		return "method"
	default:
		return "function"
	}
}

// Contract groups a name with its methods and receivers.
type Contract struct {
	base
	Name    string
	Methods []*Function
	Origin  Origin
}

func (*Contract) NodeType() NodeType    { return CONTRACT_ENTRY }
func (c *Contract) EntryName() string   { return c.Name }
func (c *Contract) EntryOrigin() Origin { return c.Origin }
func (*Contract) entryNode()            {}

// Trait groups a name with the method signatures it requires (bodies may be
// absent for abstract methods).
type Trait struct {
	base
	Name    string
	Methods []*Function
	Origin  Origin
}

func (*Trait) NodeType() NodeType    { return TRAIT_ENTRY }
func (t *Trait) EntryName() string   { return t.Name }
func (t *Trait) EntryOrigin() Origin { return t.Origin }
func (*Trait) entryNode()            {}

// Constant is a compile-time named constant.
type Constant struct {
	base
	Name   string
	Type   string
	Value  Expr
	Origin Origin
}

func (*Constant) NodeType() NodeType    { return CONSTANT_ENTRY }
func (c *Constant) EntryName() string   { return c.Name }
func (c *Constant) EntryOrigin() Origin { return c.Origin }
func (*Constant) entryNode()            {}

// StructDecl declares a struct type.
type StructDecl struct {
	base
	Name   string
	Fields []StructField
	Origin Origin
}

func (*StructDecl) NodeType() NodeType    { return STRUCT_ENTRY }
func (s *StructDecl) EntryName() string   { return s.Name }
func (s *StructDecl) EntryOrigin() Origin { return s.Origin }
func (*StructDecl) entryNode()            {}

// MessageDecl declares a message type (a struct shape used as a contract
// receiver's incoming payload).
type MessageDecl struct {
	base
	Name   string
	Fields []StructField
	Origin Origin
}

func (*MessageDecl) NodeType() NodeType    { return MESSAGE_ENTRY }
func (m *MessageDecl) EntryName() string   { return m.Name }
func (m *MessageDecl) EntryOrigin() Origin { return m.Origin }
func (*MessageDecl) entryNode()            {}

// Primitive declares an opaque primitive type known to the language (e.g.
// Builder, Cell, Slice, Address) with no further structure visible to the
// core.
type Primitive struct {
	base
	Name   string
	Origin Origin
}

func (*Primitive) NodeType() NodeType    { return PRIMITIVE_ENTRY }
func (p *Primitive) EntryName() string   { return p.Name }
func (p *Primitive) EntryOrigin() Origin { return p.Origin }
func (*Primitive) entryNode()            {}

// NativeDecl declares a native (intrinsic) function with no body; call
// resolution treats these as opaque, non-resolvable callees (spec §4.D).
type NativeDecl struct {
	base
	Name       string
	Params     []Param
	ReturnType string
	Origin     Origin
}

func (*NativeDecl) NodeType() NodeType    { return NATIVE_ENTRY }
func (n *NativeDecl) EntryName() string   { return n.Name }
func (n *NativeDecl) EntryOrigin() Origin { return n.Origin }
func (*NativeDecl) entryNode()            {}
