package cfgbuilder

import (
	"tactlint/internal/ast"
	"tactlint/internal/cfg"
)

// classify computes a block's kind from the statement it will hold (spec
// §4.D): return -> Return; any statement whose expression resolves at
// least one callee -> Call{callees}; otherwise Regular.
func classify(s ast.Stmt, unit *cfg.CompilationUnit) (cfg.BlockKind, map[cfg.CFGID]struct{}) {
	if _, ok := s.(*ast.ReturnStmt); ok {
		if callees := collectCallees(stmtExpr(s), unit); len(callees) > 0 {
			return cfg.Return, callees
		}
		return cfg.Return, nil
	}
	callees := collectCallees(stmtExpr(s), unit)
	if len(callees) > 0 {
		return cfg.Call, callees
	}
	return cfg.Regular, nil
}

// headerClassify computes the kind for a header block synthesized for a
// compound statement (if/while/until/repeat/foreach), from its condition
// (or count / collection) expression.
func headerClassify(cond ast.Expr, unit *cfg.CompilationUnit) (cfg.BlockKind, map[cfg.CFGID]struct{}) {
	if callees := collectCallees(cond, unit); len(callees) > 0 {
		return cfg.Call, callees
	}
	return cfg.Regular, nil
}

// collectCallees walks e collecting resolvable call targets: free-function
// calls resolved through the unit's function-name map, and method calls
// whose receiver is a bare identifier resolved through the unit's
// method-name map (spec §4.D). Unresolved names — dynamic dispatch,
// external/unknown receivers, namespaced calls into stdlib modules — are
// simply omitted, never an error.
func collectCallees(e ast.Expr, unit *cfg.CompilationUnit) map[cfg.CFGID]struct{} {
	if e == nil || unit == nil {
		return nil
	}
	var out map[cfg.CFGID]struct{}
	add := func(id cfg.CFGID) {
		if out == nil {
			out = make(map[cfg.CFGID]struct{})
		}
		out[id] = struct{}{}
	}
	walkExpr(e, func(sub ast.Expr) {
		switch n := sub.(type) {
		case *ast.StaticCallExpr:
			if n.Namespace == "" {
				if id, ok := unit.ResolveFunction(n.Name); ok {
					add(id)
				}
			}
		case *ast.MethodCallExpr:
			if recv, ok := n.Receiver.(*ast.IdentExpr); ok {
				if id, ok := unit.ResolveMethod(recv.Name, n.Method); ok {
					add(id)
				}
			}
		}
	})
	return out
}
