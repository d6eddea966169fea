package cellbounds

import (
	"math/big"

	"tactlint/internal/ast"
	"tactlint/internal/interval"
)

// transitionKind reports the kind a variable moves to after calling method
// on a variable of the given kind, if that call is one of the recognized
// cell/builder/slice/struct conversions (spec §4.H: "kind-transition
// table"). ok is false for any other method, including storage mutators
// that do not change kind.
func transitionKind(method string, kind Kind) (Kind, bool) {
	switch {
	case kind == Builder && (method == "endCell" || method == "asCell"):
		return Cell, true
	case kind == Cell && (method == "asSlice" || method == "beginParse"):
		return Slice, true
	case kind == StructMessage && method == "toCell":
		return Cell, true
	case kind == StructMessage && method == "toSlice":
		return Slice, true
	case kind == Cell && method == "fromCell":
		return StructMessage, true
	case kind == Slice && method == "fromSlice":
		return StructMessage, true
	default:
		return kind, false
	}
}

// computeDelta returns the storage change one call in a chain contributes,
// given the variable's kind before the call and the state it is evaluated
// against (so storeBuilder/storeSlice can look up a tracked argument's own
// totals). ok is false when the call is not a recognized storage mutator,
// in which case the caller leaves storage unchanged (spec §4.H: storage
// delta table).
func computeDelta(call *ast.MethodCallExpr, kind Kind, state *State, adapter ast.LanguageAdapter) (VariableStorage, bool) {
	delta := zeroVariableStorage()
	switch call.Method {
	case "storeRef":
		if kind != Builder {
			return delta, false
		}
		delta.RefsNum.Stored = interval.FromInt64(1)
		return delta, true

	case "storeMaybeRef":
		if kind != Builder {
			return delta, false
		}
		delta.RefsNum.Stored = interval.Range(0, 1)
		return delta, true

	case "loadRef":
		if kind != Slice {
			return delta, false
		}
		delta.RefsNum.Loaded = interval.FromInt64(1)
		return delta, true

	case "storeCoins":
		if kind != Builder {
			return delta, false
		}
		delta.DataSize.Stored = coinsBitWidth(call)
		return delta, true

	case "storeBuilder", "storeSlice":
		if kind != Builder {
			return delta, false
		}
		if len(call.Args) == 0 {
			return delta, false
		}
		arg, ok := call.Args[0].(*ast.IdentExpr)
		if !ok {
			delta.RefsNum = undecidableStorageValue()
			delta.DataSize = undecidableStorageValue()
			return delta, true
		}
		argVar, ok := state.Vars[arg.Name]
		if !ok {
			delta.RefsNum = undecidableStorageValue()
			delta.DataSize = undecidableStorageValue()
			return delta, true
		}
		delta.RefsNum.Stored = argVar.Storage.RefsNum.Stored
		delta.DataSize.Stored = argVar.Storage.DataSize.Stored
		return delta, true

	case "storeAddress", "storeInt", "storeUint", "storeBool",
		"loadAddress", "loadInt", "loadUint", "loadBool":
		return storeOrLoadSize(call, kind, adapter)

	default:
		return delta, false
	}
}

// storeOrLoadSize dispatches a constant-width store*/load* call to the
// adapter, returning the storage delta on the correct axis (Stored for
// store calls on a Builder, Loaded for load calls on a Slice).
func storeOrLoadSize(call *ast.MethodCallExpr, kind Kind, adapter ast.LanguageAdapter) (VariableStorage, bool) {
	delta := zeroVariableStorage()
	isStore := len(call.Method) >= 5 && call.Method[:5] == "store"
	if isStore {
		if kind != Builder {
			return delta, false
		}
		bits, ok := adapter.ConstantStoreSize(call)
		if !ok {
			delta.DataSize = undecidableStorageValue()
			return delta, true
		}
		delta.DataSize.Stored = interval.FromInt64(int64(bits))
		return delta, true
	}
	if kind != Slice {
		return delta, false
	}
	bits, ok := adapter.ConstantLoadSize(call)
	if !ok {
		delta.DataSize = undecidableStorageValue()
		return delta, true
	}
	delta.DataSize.Loaded = interval.FromInt64(int64(bits))
	return delta, true
}

// coinsBitWidth implements the VarUInteger16 encoding storeCoins uses: a
// 4-bit length prefix followed by that many bytes, the smallest number of
// bytes that holds the value (spec §4.H: "storeCoins(v) constant ... custom
// log2-bit-width rule"). When the argument is not a literal, the width is
// undecidable.
func coinsBitWidth(call *ast.MethodCallExpr) StorageValue {
	if len(call.Args) == 0 {
		return undecidableStorageValue()
	}
	lit, ok := call.Args[0].(*ast.NumberLitExpr)
	if !ok {
		return undecidableStorageValue()
	}
	v, ok := new(big.Int).SetString(lit.Value, 10)
	if !ok {
		return undecidableStorageValue()
	}
	bitLen := v.BitLen()
	if bitLen == 0 {
		return StorageValue{Stored: interval.FromInt64(4), Loaded: interval.FromInt64(0)}
	}
	bytes := (bitLen + 7) / 8
	bits := int64(bytes*8 + 4)
	return StorageValue{Stored: interval.FromInt64(bits), Loaded: interval.FromInt64(0)}
}
