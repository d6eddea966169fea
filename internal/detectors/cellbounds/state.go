// Package cellbounds implements the cell-bounds detector (spec §4.H,
// component H): the framework's representative detector, tracking
// Builder/Cell/Slice/StructMessage storage through method-call chains and
// warning when a cell's reference count or bit size could exceed the
// TON-style VM's limits.
package cellbounds

import (
	"tactlint/internal/interval"
	"tactlint/internal/lattice"
)

// Kind is one of the four tracked variable kinds (spec §4.H); structs and
// messages share the StructMessage kind.
type Kind int

const (
	Builder Kind = iota
	Cell
	Slice
	StructMessage
)

func (k Kind) String() string {
	switch k {
	case Builder:
		return "Builder"
	case Cell:
		return "Cell"
	case Slice:
		return "Slice"
	case StructMessage:
		return "StructMessage"
	default:
		return "unknown"
	}
}

// StorageValue tracks one axis (references or data bits) of a variable's
// storage: whether it is statically decidable, and the interval bounds on
// what has been stored and loaded (spec §4.H).
type StorageValue struct {
	Undecidable bool
	Stored      interval.Interval
	Loaded      interval.Interval
}

func zeroStorageValue() StorageValue {
	return StorageValue{Stored: interval.FromInt64(0), Loaded: interval.FromInt64(0)}
}

func undecidableStorageValue() StorageValue {
	return StorageValue{Undecidable: true, Stored: interval.FULL(), Loaded: interval.FULL()}
}

// addStorageValue combines two storage deltas along one axis, summing
// stored/loaded bounds and propagating undecidability.
func addStorageValue(a, b StorageValue) StorageValue {
	if a.Undecidable || b.Undecidable {
		return StorageValue{Undecidable: true, Stored: interval.FULL(), Loaded: interval.FULL()}
	}
	return StorageValue{
		Stored: a.Stored.Plus(b.Stored),
		Loaded: a.Loaded.Plus(b.Loaded),
	}
}

func joinStorageValue(a, b StorageValue) StorageValue {
	return StorageValue{
		Undecidable: a.Undecidable || b.Undecidable,
		Stored:      interval.Join(a.Stored, b.Stored),
		Loaded:      interval.Join(a.Loaded, b.Loaded),
	}
}

func leqStorageValue(a, b StorageValue) bool {
	if a.Undecidable && !b.Undecidable {
		return false
	}
	return a.Stored.Leq(b.Stored) && a.Loaded.Leq(b.Loaded)
}

// VariableStorage is the per-variable storage summary (spec §4.H): refs and
// data bits tracked independently, since a cell's 4-ref and 1023-bit limits
// are separate VM constraints.
type VariableStorage struct {
	RefsNum  StorageValue
	DataSize StorageValue
}

func zeroVariableStorage() VariableStorage {
	return VariableStorage{RefsNum: zeroStorageValue(), DataSize: zeroStorageValue()}
}

func addVariableStorage(a, b VariableStorage) VariableStorage {
	return VariableStorage{
		RefsNum:  addStorageValue(a.RefsNum, b.RefsNum),
		DataSize: addStorageValue(a.DataSize, b.DataSize),
	}
}

func joinVariableStorage(a, b VariableStorage) VariableStorage {
	return VariableStorage{
		RefsNum:  joinStorageValue(a.RefsNum, b.RefsNum),
		DataSize: joinStorageValue(a.DataSize, b.DataSize),
	}
}

func leqVariableStorage(a, b VariableStorage) bool {
	return leqStorageValue(a.RefsNum, b.RefsNum) && leqStorageValue(a.DataSize, b.DataSize)
}

// Variable is one tracked local: its kind and accumulated storage.
type Variable struct {
	Name    string
	Kind    Kind
	Storage VariableStorage
}

// State is the per-program-point abstract state (spec §4.H): tracked
// variables keyed by name, plus the statement-local intermediate
// temporaries produced by method-call-chain analysis. Vars is a
// lattice.Map (spec §4.B: "the per-key abstract-state container the
// cell-bounds detector uses to track local variables"); Join merges it by
// key-union via lattice.JoinMaps — joining storage when a name appears on
// both sides — and concatenates Intermediates; Leq delegates to
// lattice.LeqMaps for key-and-value subset.
type State struct {
	Vars          lattice.Map[string, Variable]
	Intermediates []Variable
}

// Bottom returns the neutral element for Join: no tracked variables, no
// intermediates.
func Bottom() State {
	return State{Vars: lattice.Map[string, Variable]{}}
}

// Clone deep-copies vars so the transfer function can mutate its own copy
// without aliasing the solver's retained previous state (spec §4.F:
// "a deep-owning state"). Variable holds no reference-typed fields that
// outlive a single assignment, so the per-value clone is the identity.
func (s State) Clone() State {
	return State{
		Vars:          s.Vars.Clone(func(v Variable) Variable { return v }),
		Intermediates: append([]Variable{}, s.Intermediates...),
	}
}

func joinVariable(a, b Variable) Variable {
	return Variable{Name: a.Name, Kind: a.Kind, Storage: joinVariableStorage(a.Storage, b.Storage)}
}

func leqVariable(a, b Variable) bool {
	return leqVariableStorage(a.Storage, b.Storage)
}

// Join implements the join-semilattice combination (spec §4.H).
func Join(a, b State) State {
	return State{
		Vars:          lattice.JoinMaps(a.Vars, b.Vars, joinVariable),
		Intermediates: append(append([]Variable{}, a.Intermediates...), b.Intermediates...),
	}
}

// Leq implements the join-semilattice order: every variable of a must be
// present in b with a storage that is <= b's (spec §4.H: "leq uses
// key-and-value subset").
func Leq(a, b State) bool {
	return lattice.LeqMaps(a.Vars, b.Vars, leqVariable)
}

// JoinLattice adapts State's Join/Leq/Bottom into lattice.JoinSemilattice
// so it can drive internal/dataflow's worklist solver.
type JoinLattice struct{}

func (JoinLattice) Bottom() State         { return Bottom() }
func (JoinLattice) Leq(a, b State) bool   { return Leq(a, b) }
func (JoinLattice) Join(a, b State) State { return Join(a, b) }

// widenState returns a State-level widening operator backed by
// interval.WideningThreshold (spec §4.A: "per-variable widening threshold,
// default 3 applications"), one tracker per storage axis so a loop that
// keeps growing a variable's refs or bits on every iteration still
// stabilizes within a bounded number of rounds instead of refining forever.
func widenState() func(old, next State) State {
	refsStored := interval.NewWideningThreshold[string](0)
	refsLoaded := interval.NewWideningThreshold[string](0)
	bitsStored := interval.NewWideningThreshold[string](0)
	bitsLoaded := interval.NewWideningThreshold[string](0)

	return func(old, next State) State {
		out := next.Clone()
		for name, nv := range next.Vars {
			ov, ok := old.Vars[name]
			if !ok {
				continue
			}
			widened := nv
			widened.Storage.RefsNum.Stored = refsStored.Apply(name, ov.Storage.RefsNum.Stored, nv.Storage.RefsNum.Stored)
			widened.Storage.RefsNum.Loaded = refsLoaded.Apply(name, ov.Storage.RefsNum.Loaded, nv.Storage.RefsNum.Loaded)
			widened.Storage.DataSize.Stored = bitsStored.Apply(name, ov.Storage.DataSize.Stored, nv.Storage.DataSize.Stored)
			widened.Storage.DataSize.Loaded = bitsLoaded.Apply(name, ov.Storage.DataSize.Loaded, nv.Storage.DataSize.Loaded)
			out.Vars[name] = widened
		}
		return out
	}
}
