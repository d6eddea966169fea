package dataflow

import "tactlint/internal/lattice"

// Combiner lets the solver fold predecessor/successor states without
// caring whether the underlying lattice is a join- or a meet-semilattice
// (spec §4.E: "parameterized... by the lattice kind"); JoinCombiner and
// MeetCombiner adapt internal/lattice's two capability interfaces to it.
type Combiner[T any] interface {
	Leq(a, b T) bool
	Neutral() T       // bottom for a join analysis, top for a meet analysis
	Combine(a, b T) T // join or meet
}

// JoinCombiner adapts a lattice.JoinSemilattice into a Combiner whose
// Neutral is Bottom and whose Combine is Join.
type JoinCombiner[T any] struct{ L lattice.JoinSemilattice[T] }

func (c JoinCombiner[T]) Leq(a, b T) bool  { return c.L.Leq(a, b) }
func (c JoinCombiner[T]) Neutral() T       { return c.L.Bottom() }
func (c JoinCombiner[T]) Combine(a, b T) T { return c.L.Join(a, b) }

// MeetCombiner adapts a lattice.MeetSemilattice into a Combiner whose
// Neutral is Top and whose Combine is Meet.
type MeetCombiner[T any] struct{ L lattice.MeetSemilattice[T] }

func (c MeetCombiner[T]) Leq(a, b T) bool  { return c.L.Leq(a, b) }
func (c MeetCombiner[T]) Neutral() T       { return c.L.Top() }
func (c MeetCombiner[T]) Combine(a, b T) T { return c.L.Meet(a, b) }
