package interval

import (
	"testing"

	"tactlint/internal/num"
)

func TestJoinNeutralElement(t *testing.T) {
	r := Range(1, 5)
	if !Join(r, EMPTY()).Eq(r) {
		t.Fatalf("EMPTY should be a join neutral element")
	}
	if !Join(EMPTY(), r).Eq(r) {
		t.Fatalf("EMPTY should be a join neutral element (other side)")
	}
}

func TestJoinIdempotentCommutativeAssociative(t *testing.T) {
	a, b, c := Range(1, 5), Range(-2, 3), Range(10, 20)
	if !Join(a, a).Eq(a) {
		t.Fatalf("join not idempotent")
	}
	if !Join(a, b).Eq(Join(b, a)) {
		t.Fatalf("join not commutative")
	}
	if !Join(Join(a, b), c).Eq(Join(a, Join(b, c))) {
		t.Fatalf("join not associative")
	}
}

func TestPlusLaw(t *testing.T) {
	x, y := Range(1, 5), Range(10, 20)
	sum := x.Plus(y)
	if !sum.Low.Eq(x.Low.Add(y.Low)) || !sum.High.Eq(x.High.Add(y.High)) {
		t.Fatalf("x.Plus(y) did not satisfy the corner law: %v", sum)
	}
}

func TestMinusViaInv(t *testing.T) {
	x, y := Range(1, 5), Range(10, 20)
	if !x.Plus(y.Inv()).Eq(x.Minus(y)) {
		t.Fatalf("x.Plus(y.Inv()) != x.Minus(y)")
	}
}

func TestDivByZeroContainingIntervalIsFull(t *testing.T) {
	x := Range(1, 5)
	y := Range(-1, 1)
	if !x.Div(y).Eq(FULL()) {
		t.Fatalf("expected division by a zero-containing interval to yield FULL")
	}
}

func TestDivExact(t *testing.T) {
	x := Range(10, 20)
	y := Range(2, 2)
	got := x.Div(y)
	want := Range(5, 10)
	if !got.Eq(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWideningUnstableBoundsGoToInfinity(t *testing.T) {
	old := Range(0, 3)
	next := Range(0, 10) // upper bound increased
	w := Widen(old, next)
	if !w.Low.Eq(num.FromInt64(0)) {
		t.Fatalf("stable lower bound should be preserved, got %v", w.Low)
	}
	if !w.High.IsPosInf() {
		t.Fatalf("increased upper bound should widen to +inf, got %v", w.High)
	}
}

func TestLeqReflexive(t *testing.T) {
	r := Range(1, 5)
	if !r.Leq(r) {
		t.Fatalf("Leq should be reflexive")
	}
}
