package ast

import "strconv"

// LanguageAdapter is the external collaborator spec §6 requires: the
// source-language parser/type-checker tells the core which calls are
// standard-library calls and, where statically derivable, how many bits a
// store/load call moves. The core never guesses this itself — out of scope
// per spec §1 — it only consumes the adapter's answers.
type LanguageAdapter interface {
	// IsStdlibCall reports whether expr (appearing under the given call
	// name) resolves to a standard-library function or method.
	IsStdlibCall(name string, expr Expr) bool

	// ConstantStoreSize returns the bit width written by a store* call when
	// statically derivable from a literal size argument, and false
	// otherwise.
	ConstantStoreSize(call *MethodCallExpr) (bits int, ok bool)

	// ConstantLoadSize returns the bit width read by a load* call when
	// statically derivable, and false otherwise.
	ConstantLoadSize(call *MethodCallExpr) (bits int, ok bool)
}

// BuiltinAdapter is a LanguageAdapter grounded on the well-known TON/Tact
// builder and slice intrinsics: storeInt/storeUint/loadInt/loadUint take
// their bit width as a trailing literal integer argument, while
// storeBool/loadBool (1 bit) and storeAddress/loadAddress (267 bits) have
// fixed widths; it recognizes "is stdlib" by a fixed set of plain,
// unqualified method and function names. It is meant for tests and the demo CLI; a real deployment supplies
// its own adapter backed by the language's type checker.
type BuiltinAdapter struct {
	// StdlibNames is the set of fully-qualified names (as passed to
	// IsStdlibCall) recognized as standard-library calls.
	StdlibNames map[string]bool
}

// NewBuiltinAdapter returns a BuiltinAdapter seeded with the cell/builder/
// slice primitives spec §4.H names directly: beginCell, emptyCell,
// emptySlice, endCell, asCell, asSlice, beginParse, toCell, toSlice,
// fromCell, fromSlice, plus the store*/load* family.
func NewBuiltinAdapter() *BuiltinAdapter {
	names := []string{
		"beginCell", "emptyCell", "emptySlice",
		"endCell", "asCell", "asSlice", "beginParse",
		"toCell", "toSlice", "fromCell", "fromSlice",
		"storeRef", "storeMaybeRef", "loadRef",
		"storeInt", "storeUint", "storeBool", "storeCoins", "storeAddress",
		"loadInt", "loadUint", "loadBool", "loadCoins", "loadAddress",
		"storeBuilder", "storeSlice",
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return &BuiltinAdapter{StdlibNames: set}
}

func (b *BuiltinAdapter) IsStdlibCall(name string, _ Expr) bool {
	return b.StdlibNames[name]
}

func (b *BuiltinAdapter) ConstantStoreSize(call *MethodCallExpr) (int, bool) {
	switch call.Method {
	case "storeBool":
		return 1, true
	case "storeAddress":
		return 267, true
	case "storeInt", "storeUint":
		return literalSizeArg(call.Args)
	default:
		return 0, false
	}
}

func (b *BuiltinAdapter) ConstantLoadSize(call *MethodCallExpr) (int, bool) {
	switch call.Method {
	case "loadBool":
		return 1, true
	case "loadAddress":
		return 267, true
	case "loadInt", "loadUint":
		return literalSizeArg(call.Args)
	default:
		return 0, false
	}
}

// literalSizeArg reads the last argument of a call as a literal integer bit
// width, the shape `storeInt(value, bits)` / `loadInt(bits)` share.
func literalSizeArg(args []Expr) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	lit, ok := args[len(args)-1].(*NumberLitExpr)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
