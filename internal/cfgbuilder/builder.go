// Package cfgbuilder turns AST function, method, and receive bodies into
// CFGs (spec §4.D, component D): one basic block per statement, edges
// encoding fall-through and control flow.
package cfgbuilder

import (
	"tactlint/internal/ast"
	"tactlint/internal/cfg"
)

// Builder holds the shared id allocator and compilation unit (for callee
// resolution) used across every CFG it builds. A single Builder is meant to
// construct every CFG of one compilation unit, so call edges can target
// forward-declared callees (spec §4.D: "Preregister a CFG id for every
// function/method/receive").
type Builder struct {
	ids  *cfg.IDAllocator
	unit *cfg.CompilationUnit
}

// New returns a Builder sharing ids and unit with every CFG it builds.
func New(ids *cfg.IDAllocator, unit *cfg.CompilationUnit) *Builder {
	return &Builder{ids: ids, unit: unit}
}

// PreregisterFunction allocates a CFGID for the free function fn and binds
// its name in the compilation unit before any body is built, so forward
// calls to fn from sibling functions/methods resolve.
func (b *Builder) PreregisterFunction(fn *ast.Function) cfg.CFGID {
	id := b.ids.NextCFG()
	b.unit.RegisterFunctionName(fn.Name, id)
	return id
}

// PreregisterMethod does the same for a contract method: contractID
// identifies the owning contract and contractName its Name.
func (b *Builder) PreregisterMethod(contractName string, contractID cfg.ContractID, fn *ast.Function) cfg.CFGID {
	id := b.ids.NextCFG()
	b.unit.RegisterMethodName(contractName, fn.Name, contractID, id)
	return id
}

// BuildFunction builds the CFG for a free function whose CFGID was already
// reserved by PreregisterFunction.
func (b *Builder) BuildFunction(id cfg.CFGID, fn *ast.Function) *cfg.CFG {
	c := cfg.NewCFG(fn.Name, cfg.KindFunction, fn.Origin, fn.Meta.Source)
	b.build(c, fn.Body)
	b.unit.Functions[id] = c
	return c
}

// BuildMethod builds the CFG for a contract/trait method and files it under
// the given contract.
func (b *Builder) BuildMethod(contractID cfg.ContractID, contract *cfg.Contract, id cfg.CFGID, fn *ast.Function) *cfg.CFG {
	kind := cfg.KindMethod
	if fn.IsReceive {
		kind = cfg.KindReceive
	}
	c := cfg.NewCFG(fn.Name, kind, fn.Origin, fn.Meta.Source)
	b.build(c, fn.Body)
	contract.Methods[id] = c
	return c
}

// build populates c from body, starting with no predecessor (the first
// block, if any, becomes c's logical entry).
func (b *Builder) build(c *cfg.CFG, body []ast.Stmt) {
	b.buildRegion(c, body, nil)
}

// buildRegion translates one statement list into blocks and edges,
// connecting every block created from parents' open tails. It returns the
// new open tails: the blocks whose fall-through successor is still
// undetermined (empty when the region unconditionally returns).
func (b *Builder) buildRegion(c *cfg.CFG, stmts []ast.Stmt, parents []cfg.BlockID) []cfg.BlockID {
	tails := parents
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.ConditionStmt:
			condID := b.ids.NextBlock()
			kind, callees := headerClassify(n.Cond, b.unit)
			cond := c.AddBlock(condID, n.NodeID(), kind, span(n))
			cond.Callees = callees
			b.connect(c, tails, condID)

			thenTails := b.buildRegion(c, n.Then, []cfg.BlockID{condID})
			var elseTails []cfg.BlockID
			if n.Else != nil {
				elseTails = b.buildRegion(c, n.Else, []cfg.BlockID{condID})
			} else {
				elseTails = []cfg.BlockID{condID}
			}
			tails = append(append([]cfg.BlockID{}, thenTails...), elseTails...)

		case *ast.WhileStmt:
			tails = b.buildLoop(c, n, n.Cond, n.Body, tails)
		case *ast.UntilStmt:
			tails = b.buildLoop(c, n, n.Cond, n.Body, tails)
		case *ast.RepeatStmt:
			tails = b.buildLoop(c, n, n.Count, n.Body, tails)
		case *ast.ForeachStmt:
			tails = b.buildLoop(c, n, n.Collect, n.Body, tails)

		case *ast.TryStmt:
			tryID := b.ids.NextBlock()
			c.AddBlock(tryID, n.NodeID(), cfg.Regular, span(n))
			b.connect(c, tails, tryID)
			tails = b.buildRegion(c, n.Body, []cfg.BlockID{tryID})

		case *ast.TryCatchStmt:
			tryID := b.ids.NextBlock()
			c.AddBlock(tryID, n.NodeID(), cfg.Regular, span(n))
			b.connect(c, tails, tryID)
			bodyTails := b.buildRegion(c, n.Body, []cfg.BlockID{tryID})
			catchTails := b.buildRegion(c, n.Catch, []cfg.BlockID{tryID})
			tails = append(append([]cfg.BlockID{}, bodyTails...), catchTails...)

		default:
			// Linear statement: let, assign, augmented_assign, expression, return.
			id := b.ids.NextBlock()
			kind, callees := classify(s, b.unit)
			blk := c.AddBlock(id, s.NodeID(), kind, span(s))
			blk.Callees = callees
			b.connect(c, tails, id)
			if kind == cfg.Return {
				tails = nil
			} else {
				tails = []cfg.BlockID{id}
			}
		}
	}
	return tails
}

// buildLoop builds the shared shape of while/until/repeat/foreach: a header
// block for the condition/count/collection expression, the body as a
// nested region parented by the header, an explicit back-edge from every
// open body tail to the header, and an explicit exit: the header itself
// remains an open tail for the syntactic next statement (spec §4.D: "Do not
// auto-link the header to the next statement as if it were fall-through;
// the exit edge is created explicitly").
func (b *Builder) buildLoop(c *cfg.CFG, stmt ast.Stmt, headerExpr ast.Expr, body []ast.Stmt, parents []cfg.BlockID) []cfg.BlockID {
	headerID := b.ids.NextBlock()
	kind, callees := headerClassify(headerExpr, b.unit)
	header := c.AddBlock(headerID, stmt.NodeID(), kind, span(stmt))
	header.Callees = callees
	b.connect(c, parents, headerID)

	bodyTails := b.buildRegion(c, body, []cfg.BlockID{headerID})
	for _, t := range bodyTails {
		c.AddEdge(b.ids.NextEdge(), t, headerID)
	}
	return []cfg.BlockID{headerID}
}

// connect adds a fall-through/control edge from every tail to dst. An empty
// tails slice (dead or entry region) connects nothing.
func (b *Builder) connect(c *cfg.CFG, tails []cfg.BlockID, dst cfg.BlockID) {
	for _, t := range tails {
		c.AddEdge(b.ids.NextEdge(), t, dst)
	}
}

func span(n ast.Node) ast.Span {
	return ast.Span{Start: n.NodePos(), End: n.NodeEndPos()}
}
