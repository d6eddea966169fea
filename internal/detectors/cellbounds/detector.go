package cellbounds

import (
	"context"
	"fmt"

	"tactlint/internal/ast"
	"tactlint/internal/cfg"
	"tactlint/internal/dataflow"
	"tactlint/internal/num"
	"tactlint/internal/warning"
)

// ID is this detector's identifier, as matched against
// config.Config.DetectorsEnabled.
const ID = "cell-bounds"

// TON-style VM limits a cell's storage can never exceed (spec §4.H).
const (
	maxRefs = 4
	maxBits = 1023
)

// Run solves the cell-bounds dataflow analysis over one CFG and reports
// every point at which a cell's reference count or bit size could
// statically be shown to exceed the VM's limits, or to go negative (spec
// §4.H).
func Run(ctx context.Context, store *ast.Store, c *cfg.CFG, adapter ast.LanguageAdapter) ([]warning.Warning, error) {
	solver := dataflow.Solver[State]{
		Direction: dataflow.Forward,
		Combiner:  dataflow.JoinCombiner[State]{L: JoinLattice{}},
		Transfer:  Transfer(store, adapter),
		Widen:     widenState(),
	}

	results, err := solver.Solve(ctx, c)

	var warnings []warning.Warning
	for _, block := range c.Blocks() {
		state, ok := results[block.ID]
		if !ok {
			continue
		}
		loc := block.Source
		for _, v := range allVariables(state) {
			warnings = append(warnings, checkVariable(v, loc)...)
		}
	}
	warnings = warning.Dedup(warnings)

	if err != nil {
		return warnings, fmt.Errorf("cellbounds: solving %s: %w", c.Name, err)
	}
	return warnings, nil
}

// allVariables returns every tracked and intermediate variable in state,
// the full set of storage summaries worth checking against the VM limits.
func allVariables(state State) []Variable {
	out := make([]Variable, 0, len(state.Vars)+len(state.Intermediates))
	for _, v := range state.Vars {
		out = append(out, v)
	}
	out = append(out, state.Intermediates...)
	return out
}

func checkVariable(v Variable, loc ast.Span) []warning.Warning {
	var out []warning.Warning

	if w, ok := checkRefsUnderflow(v, loc); ok {
		out = append(out, w)
	}
	if w, ok := checkRefsOverflow(v, loc); ok {
		out = append(out, w)
	}
	if w, ok := checkBitsUnderflow(v, loc); ok {
		out = append(out, w)
	}
	if w, ok := checkBitsOverflow(v, loc); ok {
		out = append(out, w)
	}
	return out
}

// checkRefsUnderflow fires when even the largest possible net reference
// count is already negative (spec §4.H: "(refsNum.stored - refsNum.loaded)
// .high < 0"), i.e. the underflow is certain on every path, not merely
// possible.
func checkRefsUnderflow(v Variable, loc ast.Span) (warning.Warning, bool) {
	if v.Storage.RefsNum.Undecidable {
		return warning.Warning{}, false
	}
	net := v.Storage.RefsNum.Stored.Minus(v.Storage.RefsNum.Loaded)
	if net.High.Sign() >= 0 {
		return warning.Warning{}, false
	}
	return warning.New("Reference count might go below 0", warning.Critical, warning.CategoryCorrectness, loc).
		WithExtra(fmt.Sprintf("variable %q: net stored refs never exceeds %s", v.Name, net.High.String())), true
}

// checkRefsOverflow fires when even the smallest possible stored reference
// count already exceeds the limit (spec §4.H: "refsNum.stored.low > 4").
func checkRefsOverflow(v Variable, loc ast.Span) (warning.Warning, bool) {
	if v.Storage.RefsNum.Undecidable {
		return warning.Warning{}, false
	}
	if v.Storage.RefsNum.Stored.Low.Cmp(num.FromInt64(maxRefs)) <= 0 {
		return warning.Warning{}, false
	}
	return warning.New("Too many references stored in cell", warning.Critical, warning.CategoryCorrectness, loc).
		WithExtra(fmt.Sprintf("variable %q: stored refs are always at least %s, limit is %d", v.Name, v.Storage.RefsNum.Stored.Low.String(), maxRefs)), true
}

// checkBitsUnderflow mirrors checkRefsUnderflow for the data-size axis.
func checkBitsUnderflow(v Variable, loc ast.Span) (warning.Warning, bool) {
	if v.Storage.DataSize.Undecidable {
		return warning.Warning{}, false
	}
	net := v.Storage.DataSize.Stored.Minus(v.Storage.DataSize.Loaded)
	if net.High.Sign() >= 0 {
		return warning.Warning{}, false
	}
	return warning.New("Data size might go below 0", warning.Critical, warning.CategoryCorrectness, loc).
		WithExtra(fmt.Sprintf("variable %q: net stored bits never exceeds %s", v.Name, net.High.String())), true
}

// checkBitsOverflow mirrors checkRefsOverflow for the data-size axis (spec
// §4.H: "dataSize.stored.low > 1023").
func checkBitsOverflow(v Variable, loc ast.Span) (warning.Warning, bool) {
	if v.Storage.DataSize.Undecidable {
		return warning.Warning{}, false
	}
	if v.Storage.DataSize.Stored.Low.Cmp(num.FromInt64(maxBits)) <= 0 {
		return warning.Warning{}, false
	}
	return warning.New("Data size exceeds cell capacity", warning.Critical, warning.CategoryCorrectness, loc).
		WithExtra(fmt.Sprintf("variable %q: stored bits are always at least %s, limit is %d", v.Name, v.Storage.DataSize.Stored.Low.String(), maxBits)), true
}
