// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/cfgbuilder"
	"tactlint/internal/config"
	"tactlint/internal/host"
	"tactlint/internal/warning"
)

// fixtureCall is one method call link in a fixtureExpr's chain.
type fixtureCall struct {
	Method string   `yaml:"method"`
	Args   []string `yaml:"args"`
}

// fixtureExpr describes a method-call chain: a root, always read as a
// zero-argument free-function call such as beginCell, followed by zero or
// more chained calls.
type fixtureExpr struct {
	Root  string        `yaml:"root"`
	Calls []fixtureCall `yaml:"calls"`
}

// fixtureStmt is one statement of a fixture function body. Exactly one of
// Let/Return is set, matching the statement kinds the demo fixture schema
// supports.
type fixtureStmt struct {
	Let    string      `yaml:"let"`
	Expr   fixtureExpr `yaml:"expr"`
	Return bool        `yaml:"return"`
}

// fixtureFunction is a YAML-encoded stand-in for a parsed function, since
// the core never parses source itself (spec §1): it consumes whatever a
// language adapter hands it. This is that hand-off, shaped for a demo CLI
// rather than a real compiler front end.
type fixtureFunction struct {
	Contract string        `yaml:"contract"`
	Function string        `yaml:"function"`
	Body     []fixtureStmt `yaml:"body"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tactlint-cli <fixture.yaml>")
		os.Exit(1)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	var fx fixtureFunction
	if err := yaml.Unmarshal(data, &fx); err != nil {
		color.Red("failed to parse fixture: %s", err)
		os.Exit(1)
	}

	store, unit, err := buildUnit(fx)
	if err != nil {
		color.Red("failed to build compilation unit: %s", err)
		os.Exit(1)
	}

	h := host.New(config.Default(), ast.NewBuiltinAdapter())
	warnings, err := h.Run(context.Background(), store, unit)
	if err != nil {
		color.Red("analysis failed: %s", err)
		os.Exit(1)
	}

	if len(warnings) == 0 {
		color.Green("✅ no issues found in %s", path)
		return
	}

	for _, w := range warnings {
		printWarning(w)
	}
	color.Red("❌ %d issue(s) found in %s", len(warnings), path)
	os.Exit(1)
}

func printWarning(w warning.Warning) {
	sev := color.New(severityColor(w.Severity), color.Bold).SprintFunc()
	fmt.Printf("%s %s [%s]\n", sev(w.Severity.String()), w.Title, w.Category)
	if w.Extra != "" {
		fmt.Printf("  %s\n", w.Extra)
	}
	if w.Suggestion != "" {
		fmt.Printf("  help: %s\n", w.Suggestion)
	}
}

func severityColor(s warning.Severity) color.Attribute {
	switch s {
	case warning.Critical, warning.High:
		return color.FgRed
	case warning.Medium:
		return color.FgYellow
	default:
		return color.FgCyan
	}
}

// buildUnit turns a parsed fixture into an ast.Store plus the CFG it
// compiles down to, the same two artifacts a real language adapter would
// hand the core after parsing and type-checking (spec §3.3, §4.D).
func buildUnit(fx fixtureFunction) (*ast.Store, *cfg.CompilationUnit, error) {
	ids := ast.NewIDAllocator()

	body := make([]ast.Stmt, 0, len(fx.Body))
	for _, s := range fx.Body {
		stmt, err := buildStmt(s, ids)
		if err != nil {
			return nil, nil, err
		}
		body = append(body, stmt)
	}

	fn := &ast.Function{Name: fx.Function, Body: body}

	store := ast.NewStore()
	store.Register(fn)
	store.Freeze()

	name := fx.Contract
	if name == "" {
		name = "fixture"
	}
	unit := cfg.NewCompilationUnit(name)
	builder := cfgbuilder.New(cfg.NewIDAllocator(), unit)
	id := builder.PreregisterFunction(fn)
	builder.BuildFunction(id, fn)

	return store, unit, nil
}

func buildStmt(s fixtureStmt, ids *ast.IDAllocator) (ast.Stmt, error) {
	if s.Return {
		ret := &ast.ReturnStmt{}
		ret.Meta.NodeID = ids.Next()
		return ret, nil
	}
	if s.Let == "" {
		return nil, fmt.Errorf("fixture statement must set either \"let\" or \"return\"")
	}
	expr, err := buildExpr(s.Expr)
	if err != nil {
		return nil, err
	}
	let := &ast.LetStmt{Name: s.Let, Expr: expr}
	let.Meta.NodeID = ids.Next()
	return let, nil
}

// buildExpr turns a fixtureExpr into the MethodCallExpr chain the
// cell-bounds detector walks: root, then each call wrapping the previous
// expression as its receiver.
func buildExpr(fx fixtureExpr) (ast.Expr, error) {
	if fx.Root == "" {
		return nil, fmt.Errorf("fixture expr must set \"root\"")
	}
	var e ast.Expr = &ast.StaticCallExpr{Name: fx.Root}
	for _, c := range fx.Calls {
		args := make([]ast.Expr, 0, len(c.Args))
		for _, a := range c.Args {
			args = append(args, buildArg(a))
		}
		e = &ast.MethodCallExpr{Receiver: e, Method: c.Method, Args: args}
	}
	return e, nil
}

// buildArg treats a decimal argument as a numeric literal and anything else
// as an identifier reference.
func buildArg(a string) ast.Expr {
	if _, err := strconv.ParseInt(a, 10, 64); err == nil {
		return &ast.NumberLitExpr{Value: a}
	}
	return &ast.IdentExpr{Name: a}
}
