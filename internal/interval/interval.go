// Package interval implements the closed-interval abstract domain over
// internal/num's extended integers (spec §3.2, component A), plus the
// IntervalJoinSemiLattice (spec §4.A) used by dataflow detectors that track
// numeric ranges.
package interval

import "tactlint/internal/num"

// Interval is a closed range [Low, High] over extended integers.
type Interval struct {
	Low  num.Num
	High num.Num
}

// FULL is the unconstrained interval [-∞, +∞], the join-semilattice top.
func FULL() Interval {
	return Interval{Low: num.MInf(), High: num.PInf()}
}

// EMPTY is the empty interval, represented as [+∞, −∞] (Low > High), the
// join-semilattice bottom. It absorbs joins as a neutral element and is
// ≤ every interval (spec §3.2).
func EMPTY() Interval {
	return Interval{Low: num.PInf(), High: num.MInf()}
}

// Point returns the single-value interval [n, n].
func Point(n num.Num) Interval {
	return Interval{Low: n, High: n}
}

// FromInt64 returns the single-value interval [n, n].
func FromInt64(n int64) Interval {
	return Point(num.FromInt64(n))
}

// Range returns the interval [lo, hi].
func Range(lo, hi int64) Interval {
	return Interval{Low: num.FromInt64(lo), High: num.FromInt64(hi)}
}

// IsEmpty reports whether i has no members (Low > High).
func (i Interval) IsEmpty() bool {
	return i.Low.Cmp(i.High) > 0
}

// ContainsZero reports whether i spans zero, used by division to decide
// whether to fall back to FULL (spec §3.2).
func (i Interval) ContainsZero() bool {
	if i.IsEmpty() {
		return false
	}
	zero := num.FromInt64(0)
	return i.Low.Leq(zero) && zero.Leq(i.High)
}

// Leq is the join-semilattice order: i <= j iff i is empty, or j's bounds
// contain i's bounds (i.Low >= j.Low and i.High <= j.High).
func (i Interval) Leq(j Interval) bool {
	if i.IsEmpty() {
		return true
	}
	if j.IsEmpty() {
		return false
	}
	return j.Low.Leq(i.Low) && i.High.Leq(j.High)
}

// Eq reports structural equality of bounds (treating all empty
// representations as equal).
func (i Interval) Eq(j Interval) bool {
	if i.IsEmpty() && j.IsEmpty() {
		return true
	}
	return i.Low.Eq(j.Low) && i.High.Eq(j.High)
}

// Join computes the least upper bound: componentwise min of lows, max of
// highs, with EMPTY as the neutral element (spec §3.2, §4.A).
func Join(i, j Interval) Interval {
	if i.IsEmpty() {
		return j
	}
	if j.IsEmpty() {
		return i
	}
	return Interval{Low: num.Min(i.Low, j.Low), High: num.Max(i.High, j.High)}
}

// Plus computes i + j by taking min/max over the four corner sums — for
// addition the extremes are always achieved at (Low,Low) and (High,High),
// so this also satisfies the interval law x.Plus(y).Low = x.Low + y.Low
// and .High = x.High + y.High (spec §8).
func (i Interval) Plus(j Interval) Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return EMPTY()
	}
	return Interval{Low: i.Low.Add(j.Low), High: i.High.Add(j.High)}
}

// Inv returns -i (negation), swapping and negating the bounds.
func (i Interval) Inv() Interval {
	if i.IsEmpty() {
		return EMPTY()
	}
	return Interval{Low: i.High.Neg(), High: i.Low.Neg()}
}

// Minus computes i - j as i.Plus(j.Inv()) (spec §8 round-trip law).
func (i Interval) Minus(j Interval) Interval {
	return i.Plus(j.Inv())
}

// Times computes i * j by evaluating all four corner products and taking
// componentwise min/max (spec §3.2).
func (i Interval) Times(j Interval) Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return EMPTY()
	}
	corners := [4]num.Num{
		i.Low.Mul(j.Low),
		i.Low.Mul(j.High),
		i.High.Mul(j.Low),
		i.High.Mul(j.High),
	}
	return boundOf(corners[:])
}

// Div computes i / j. Division by an interval containing zero yields FULL
// (spec §3.2, §8); otherwise it evaluates the four corner quotients and
// takes componentwise min/max.
func (i Interval) Div(j Interval) Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return EMPTY()
	}
	if j.ContainsZero() {
		return FULL()
	}
	corners := [4]num.Num{
		i.Low.Div(j.Low),
		i.Low.Div(j.High),
		i.High.Div(j.Low),
		i.High.Div(j.High),
	}
	return boundOf(corners[:])
}

func boundOf(vals []num.Num) Interval {
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = num.Min(lo, v)
		hi = num.Max(hi, v)
	}
	return Interval{Low: lo, High: hi}
}

// Widen applies one step of the widening operator ∇ (spec §4.A): if the
// lower bound decreased relative to old, it drops to −∞; if the upper bound
// increased, it rises to +∞; stable coordinates are preserved. The
// per-variable application-count threshold that forces FULL after repeated
// widenings is a policy of the caller (Design Notes: "Widening threshold is
// a policy of the detector, not of the solver"), implemented by
// WideningThreshold in this package (lattice.go).
func Widen(old, next Interval) Interval {
	if old.IsEmpty() {
		return next
	}
	if next.IsEmpty() {
		return old
	}
	lo := old.Low
	if next.Low.Lt(old.Low) {
		lo = num.MInf()
	}
	hi := old.High
	if next.High.Cmp(old.High) > 0 {
		hi = num.PInf()
	}
	return Interval{Low: lo, High: hi}
}

// String renders the interval for diagnostics, e.g. "[0, 1023]".
func (i Interval) String() string {
	if i.IsEmpty() {
		return "[]"
	}
	return "[" + i.Low.String() + ", " + i.High.String() + "]"
}
