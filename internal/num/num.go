// Package num implements the extended-integer numeric domain (spec §3.1,
// component A): arbitrary-precision integers carrying ±∞, with total
// ordering and comparison and arithmetic that propagates infinities by the
// usual conventions. It is the foundation the interval domain
// (internal/interval) and the cell-bounds detector build on.
package num

import (
	"math/big"
)

// Kind tags which case of Num a value holds.
type Kind int

const (
	KindInt Kind = iota
	KindPosInf
	KindNegInf
)

// Num is a tagged extended integer: a finite arbitrary-precision integer,
// or one of the two infinities. Grounded on the teacher's use of math/big
// for full-range literal parsing (internal/semantic/analyzer.go); re-cast
// here as a total ordered domain rather than a literal-validation helper.
type Num struct {
	kind Kind
	val  *big.Int // non-nil iff kind == KindInt
}

// PInf is the positive-infinity value.
func PInf() Num { return Num{kind: KindPosInf} }

// MInf is the negative-infinity value.
func MInf() Num { return Num{kind: KindNegInf} }

// Int wraps a finite *big.Int as a Num. n is not retained; Int copies it.
func Int(n *big.Int) Num {
	return Num{kind: KindInt, val: new(big.Int).Set(n)}
}

// FromInt64 wraps a finite int64 as a Num.
func FromInt64(n int64) Num {
	return Num{kind: KindInt, val: big.NewInt(n)}
}

// IsFinite reports whether n is a finite integer (not an infinity).
func (n Num) IsFinite() bool { return n.kind == KindInt }

// IsPosInf reports whether n is +∞.
func (n Num) IsPosInf() bool { return n.kind == KindPosInf }

// IsNegInf reports whether n is −∞.
func (n Num) IsNegInf() bool { return n.kind == KindNegInf }

// Int64 returns the finite value as an int64. Only meaningful when
// IsFinite() is true; callers must check first.
func (n Num) Int64() int64 {
	return n.val.Int64()
}

// BigInt returns the finite value's *big.Int, or nil if n is infinite.
// The returned pointer must not be mutated by the caller.
func (n Num) BigInt() *big.Int {
	if n.kind != KindInt {
		return nil
	}
	return n.val
}

// Cmp gives a total order with MInf < IntNum < PInf (spec §3.1 invariant).
// Returns -1, 0, or 1.
func (n Num) Cmp(o Num) int {
	if n.kind == o.kind {
		if n.kind == KindInt {
			return n.val.Cmp(o.val)
		}
		return 0 // both same infinity
	}
	// Different kinds: order by rank MInf < Int < PInf.
	nr, or := rank(n.kind), rank(o.kind)
	switch {
	case nr < or:
		return -1
	case nr > or:
		return 1
	default:
		return 0
	}
}

func rank(k Kind) int {
	switch k {
	case KindNegInf:
		return 0
	case KindInt:
		return 1
	default:
		return 2
	}
}

// Lt reports n < o.
func (n Num) Lt(o Num) bool { return n.Cmp(o) < 0 }

// Leq reports n <= o.
func (n Num) Leq(o Num) bool { return n.Cmp(o) <= 0 }

// Eq reports n == o.
func (n Num) Eq(o Num) bool { return n.Cmp(o) == 0 }

// Min returns the lesser of n and o.
func Min(n, o Num) Num {
	if n.Leq(o) {
		return n
	}
	return o
}

// Max returns the greater of n and o.
func Max(n, o Num) Num {
	if n.Cmp(o) >= 0 {
		return n
	}
	return o
}

// Neg returns -n, with -(+∞) = −∞ and -(−∞) = +∞.
func (n Num) Neg() Num {
	switch n.kind {
	case KindPosInf:
		return MInf()
	case KindNegInf:
		return PInf()
	default:
		return Int(new(big.Int).Neg(n.val))
	}
}

// Sign returns -1, 0, or 1; infinities have sign -1/+1 respectively.
func (n Num) Sign() int {
	switch n.kind {
	case KindPosInf:
		return 1
	case KindNegInf:
		return -1
	default:
		return n.val.Sign()
	}
}

// Add returns n + o. Propagates infinities; +∞ + (−∞) is not
// representable at this layer and is left to the interval layer to
// over-approximate (spec §4.A) — here it returns +∞ for determinism since
// callers always consult the interval operations, never this method
// directly, when an indeterminate form is possible.
func (n Num) Add(o Num) Num {
	if n.kind == KindInt && o.kind == KindInt {
		return Int(new(big.Int).Add(n.val, o.val))
	}
	if n.IsPosInf() || o.IsPosInf() {
		if n.IsNegInf() || o.IsNegInf() {
			return PInf() // ∞ - ∞ over-approximated conservatively
		}
		return PInf()
	}
	return MInf()
}

// Sub returns n - o.
func (n Num) Sub(o Num) Num { return n.Add(o.Neg()) }

// Mul returns n * o, with 0·∞ defined as 0 (spec §3.1) and ordinary sign
// rules for infinite operands otherwise.
func (n Num) Mul(o Num) Num {
	if n.kind == KindInt && o.kind == KindInt {
		return Int(new(big.Int).Mul(n.val, o.val))
	}
	if (n.kind == KindInt && n.val.Sign() == 0) || (o.kind == KindInt && o.val.Sign() == 0) {
		return FromInt64(0)
	}
	if n.Sign()*o.Sign() < 0 {
		return MInf()
	}
	return PInf()
}

// Div returns n / o for a non-zero divisor o. Finite/finite division
// truncates toward zero, matching Go's integer division, since Num is an
// integer domain and this is abstract corner arithmetic rather than exact
// rational computation. Callers (internal/interval) never call Div with a
// zero divisor — division by an interval containing zero is handled by
// returning FULL before any corner is computed (spec §3.2).
func (n Num) Div(o Num) Num {
	if o.kind == KindInt && o.val.Sign() == 0 {
		// Guard defensively; the interval layer must never reach this.
		if n.Sign() >= 0 {
			return PInf()
		}
		return MInf()
	}
	if n.kind == KindInt && o.kind == KindInt {
		return Int(new(big.Int).Quo(n.val, o.val))
	}
	if o.kind != KindInt {
		// finite or infinite numerator over an infinite denominator
		if n.kind != KindInt {
			return PInf() // ∞/∞, over-approximated
		}
		return FromInt64(0)
	}
	// infinite numerator over a finite, non-zero denominator
	if o.Sign() < 0 {
		return n.Neg()
	}
	return n
}

// String renders the value for diagnostics.
func (n Num) String() string {
	switch n.kind {
	case KindPosInf:
		return "+inf"
	case KindNegInf:
		return "-inf"
	default:
		return n.val.String()
	}
}
