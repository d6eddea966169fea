package cellbounds

import "tactlint/internal/ast"

// WalkExpr visits e and every sub-expression reachable from it, calling
// visit on each, the same shape as cfgbuilder's expression walker
// (internal/cfgbuilder/walk.go) generalized for orphan-chain scanning: it
// never raises on an unrecognized concrete Expr type, treating it as a
// leaf.
func WalkExpr(e ast.Expr, visit func(ast.Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *ast.BinaryExpr:
		WalkExpr(n.Left, visit)
		WalkExpr(n.Right, visit)
	case *ast.UnaryExpr:
		WalkExpr(n.Operand, visit)
	case *ast.FieldAccessExpr:
		WalkExpr(n.Target, visit)
	case *ast.MethodCallExpr:
		WalkExpr(n.Receiver, visit)
		for _, a := range n.Args {
			WalkExpr(a, visit)
		}
	case *ast.StaticCallExpr:
		for _, a := range n.Args {
			WalkExpr(a, visit)
		}
	case *ast.StructInstanceExpr:
		for _, f := range n.Fields {
			WalkExpr(f.Value, visit)
		}
	case *ast.ConditionalExpr:
		WalkExpr(n.Cond, visit)
		WalkExpr(n.Then, visit)
		WalkExpr(n.Else, visit)
	case *ast.InitOfExpr:
		for _, a := range n.Args {
			WalkExpr(a, visit)
		}
	}
}
