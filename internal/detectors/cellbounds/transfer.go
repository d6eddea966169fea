package cellbounds

import (
	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/lattice"
)

// analyzeCalls walks a method-call chain left-to-right, accumulating a
// storage delta per segment and spawning an intermediate Variable every
// time the chain's kind transitions (spec §4.H: "kind-transition-triggered
// intermediate variable spawning"). The returned final variable carries
// whatever storage accumulated after the last transition; intermediates
// holds one entry per completed segment before the final one.
func analyzeCalls(calls []chainCall, variable Variable, state *State, adapter ast.LanguageAdapter) (final Variable, intermediates []Variable) {
	current := variable
	accumulated := zeroVariableStorage()

	for _, c := range calls {
		if newKind, transitioned := transitionKind(c.call.Method, current.Kind); transitioned {
			segment := Variable{
				Kind:    current.Kind,
				Storage: addVariableStorage(current.Storage, accumulated),
			}
			intermediates = append(intermediates, segment)
			current = Variable{Kind: newKind, Storage: segment.Storage}
			accumulated = zeroVariableStorage()
			continue
		}
		if delta, ok := computeDelta(c.call, current.Kind, state, adapter); ok {
			accumulated = addVariableStorage(accumulated, delta)
		}
	}

	final = Variable{Kind: current.Kind, Storage: addVariableStorage(current.Storage, accumulated)}
	return final, intermediates
}

// Transfer is the per-statement transfer function driving the forward
// dataflow solve (spec §4.H, §4.F). It is grounded on the teacher's
// flow-insensitive-to-flow-sensitive transfer style
// (internal/dataflow/solver.go's TransferFunc contract): it clones the
// incoming state, mutates the clone according to the statement the block
// carries, and returns it.
func Transfer(store *ast.Store, adapter ast.LanguageAdapter) func(in State, block *cfg.BasicBlock) State {
	return func(in State, block *cfg.BasicBlock) State {
		out := in.Clone()
		out.Intermediates = nil

		stmt, ok := store.GetStmt(block.Stmt)
		if !ok {
			return out
		}

		switch s := stmt.(type) {
		case *ast.LetStmt:
			applyChainBinding(&out, s.Name, s.Expr, adapter)
		case *ast.AssignStmt:
			if ident, ok := s.Target.(*ast.IdentExpr); ok {
				if _, tracked := out.Vars[ident.Name]; tracked {
					applyChainBinding(&out, ident.Name, s.Value, adapter)
					return out
				}
			}
			scanOrphans(&out, s.Value, adapter)
		case *ast.AugmentedAssignStmt:
			scanOrphans(&out, s.Value, adapter)
		case *ast.ReturnStmt:
			scanOrphans(&out, s.Value, adapter)
		case *ast.ExpressionStmt:
			scanOrphans(&out, s.Expr, adapter)
		case *ast.ConditionStmt:
			scanOrphans(&out, s.Cond, adapter)
		case *ast.WhileStmt:
			scanOrphans(&out, s.Cond, adapter)
		case *ast.UntilStmt:
			scanOrphans(&out, s.Cond, adapter)
		case *ast.RepeatStmt:
			scanOrphans(&out, s.Count, adapter)
		case *ast.ForeachStmt:
			scanOrphans(&out, s.Collect, adapter)
		case *ast.TryStmt, *ast.TryCatchStmt:
			// Structural; the recursive cfgbuilder already spreads Body/Catch
			// across their own blocks, so there is no direct expression here.
		}
		return out
	}
}

// applyChainBinding extracts and analyzes the method-call chain carried by
// expr, binding the resulting final variable under name and recording any
// spawned intermediates.
func applyChainBinding(state *State, name string, expr ast.Expr, adapter ast.LanguageAdapter) {
	root, calls := extractChain(expr)
	if len(calls) == 0 {
		if v, ok := retrieveVariable(root, state); ok {
			state.Vars[name] = Variable{Name: name, Kind: v.Kind, Storage: v.Storage}
		}
		return
	}
	variable, ok := retrieveVariable(root, state)
	if !ok {
		scanArgsOnly(state, calls, adapter)
		return
	}
	final, intermediates := analyzeCalls(calls, variable, state, adapter)
	final.Name = name
	state.Vars[name] = final
	state.Intermediates = append(state.Intermediates, intermediates...)
}

// scanOrphans runs analyzeCalls over every independent method-call chain
// found in expr that is not itself the binding target of a let/assign
// (spec §4.H: "run analyzeCalls over its subexpressions in search of
// orphan chains"). A per-statement processed set (lattice.Set, spec §4.B)
// skips chains nested inside a longer chain already consumed from its
// outer call.
func scanOrphans(state *State, expr ast.Expr, adapter ast.LanguageAdapter) {
	if expr == nil {
		return
	}
	processed := lattice.NewSet[ast.NodeID]()
	scanOrphansRec(state, expr, adapter, processed)
}

func scanOrphansRec(state *State, expr ast.Expr, adapter ast.LanguageAdapter, processed lattice.Set[ast.NodeID]) {
	if expr == nil {
		return
	}
	if call, ok := expr.(*ast.MethodCallExpr); ok {
		if !processed.Has(call.NodeID()) {
			root, calls := extractChain(call)
			markChainProcessed(calls, processed)
			if variable, ok := retrieveVariable(root, state); ok {
				final, intermediates := analyzeCalls(calls, variable, state, adapter)
				state.Intermediates = append(state.Intermediates, intermediates...)
				state.Intermediates = append(state.Intermediates, final)
			}
			for _, c := range calls {
				for _, a := range c.call.Args {
					scanOrphansRec(state, a, adapter, processed)
				}
			}
			scanOrphansRec(state, root, adapter, processed)
			return
		}
	}
	WalkExpr(expr, func(sub ast.Expr) {
		if sub == expr {
			return
		}
		if call, ok := sub.(*ast.MethodCallExpr); ok && !processed.Has(call.NodeID()) {
			scanOrphansRec(state, call, adapter, processed)
		}
	})
}

func markChainProcessed(calls []chainCall, processed lattice.Set[ast.NodeID]) {
	for _, c := range calls {
		processed[c.call.NodeID()] = struct{}{}
	}
}

// scanArgsOnly handles a chain whose root did not resolve to a tracked or
// freshly-started variable: the chain itself carries no storage, but its
// arguments may still contain independent orphan chains.
func scanArgsOnly(state *State, calls []chainCall, adapter ast.LanguageAdapter) {
	for _, c := range calls {
		for _, a := range c.call.Args {
			scanOrphans(state, a, adapter)
		}
	}
}
