package cfgbuilder

import "tactlint/internal/ast"

// walkExpr visits e and every sub-expression reachable from it, calling
// visit on each. It never raises: an unrecognized concrete Expr type is
// simply a leaf (spec §4.D: call resolution "never raise").
func walkExpr(e ast.Expr, visit func(ast.Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *ast.BinaryExpr:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)
	case *ast.UnaryExpr:
		walkExpr(n.Operand, visit)
	case *ast.FieldAccessExpr:
		walkExpr(n.Target, visit)
	case *ast.MethodCallExpr:
		walkExpr(n.Receiver, visit)
		for _, a := range n.Args {
			walkExpr(a, visit)
		}
	case *ast.StaticCallExpr:
		for _, a := range n.Args {
			walkExpr(a, visit)
		}
	case *ast.StructInstanceExpr:
		for _, f := range n.Fields {
			walkExpr(f.Value, visit)
		}
	case *ast.ConditionalExpr:
		walkExpr(n.Cond, visit)
		walkExpr(n.Then, visit)
		walkExpr(n.Else, visit)
	case *ast.InitOfExpr:
		for _, a := range n.Args {
			walkExpr(a, visit)
		}
	}
}

// stmtExpr returns the expression a linear statement carries, for block-kind
// classification; nil for statements with no expression of their own
// (compound statements are handled structurally, not via this helper).
func stmtExpr(s ast.Stmt) ast.Expr {
	switch n := s.(type) {
	case *ast.LetStmt:
		return n.Expr
	case *ast.AssignStmt:
		return n.Value
	case *ast.AugmentedAssignStmt:
		return n.Value
	case *ast.ReturnStmt:
		return n.Value
	case *ast.ExpressionStmt:
		return n.Expr
	default:
		return nil
	}
}
