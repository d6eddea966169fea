package cellbounds

import "tactlint/internal/ast"

// chainCall is one link of a method-call chain, kept in left-to-right
// (outermost-receiver-first) order by extractChain.
type chainCall struct {
	call *ast.MethodCallExpr
}

// extractChain descends through e's Receiver links, collecting every
// MethodCallExpr along the way, and returns the root expression sitting
// underneath the chain (an identifier, a beginCell()-style static call, or a
// struct literal) together with the calls in left-to-right application
// order (spec §4.H: "method-call-chain extraction").
func extractChain(e ast.Expr) (root ast.Expr, calls []chainCall) {
	var reversed []chainCall
	cur := e
	for {
		call, ok := cur.(*ast.MethodCallExpr)
		if !ok {
			break
		}
		reversed = append(reversed, chainCall{call: call})
		cur = call.Receiver
	}
	calls = make([]chainCall, len(reversed))
	for i, c := range reversed {
		calls[len(reversed)-1-i] = c
	}
	return cur, calls
}

// retrieveVariable classifies the expression sitting under a method-call
// chain (spec §4.H: "receiver classification"): an already-tracked
// identifier aliases its existing storage, beginCell/emptyCell/emptySlice
// start a fresh zero-storage Builder/Cell/Slice, a struct literal starts a
// StructMessage with undecidable data size, and anything else yields no
// variable.
func retrieveVariable(root ast.Expr, state *State) (Variable, bool) {
	switch n := root.(type) {
	case *ast.IdentExpr:
		if v, ok := state.Vars[n.Name]; ok {
			return v, true
		}
		return Variable{}, false
	case *ast.StaticCallExpr:
		if n.Namespace != "" {
			return Variable{}, false
		}
		switch n.Name {
		case "beginCell":
			return Variable{Kind: Builder, Storage: zeroVariableStorage()}, true
		case "emptyCell":
			return Variable{Kind: Cell, Storage: zeroVariableStorage()}, true
		case "emptySlice":
			return Variable{Kind: Slice, Storage: zeroVariableStorage()}, true
		default:
			return Variable{}, false
		}
	case *ast.StructInstanceExpr:
		storage := zeroVariableStorage()
		storage.DataSize = undecidableStorageValue()
		return Variable{Kind: StructMessage, Storage: storage}, true
	default:
		return Variable{}, false
	}
}
