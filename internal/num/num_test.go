package num

import "testing"

func TestTotalOrder(t *testing.T) {
	if !MInf().Lt(FromInt64(0)) {
		t.Fatalf("expected -inf < 0")
	}
	if !FromInt64(0).Lt(PInf()) {
		t.Fatalf("expected 0 < +inf")
	}
	if !MInf().Lt(PInf()) {
		t.Fatalf("expected -inf < +inf")
	}
	if !FromInt64(5).Eq(FromInt64(5)) {
		t.Fatalf("expected 5 == 5")
	}
}

func TestAddPropagatesInfinity(t *testing.T) {
	if !PInf().Add(FromInt64(5)).IsPosInf() {
		t.Fatalf("expected +inf + 5 = +inf")
	}
	if !MInf().Add(FromInt64(-5)).IsNegInf() {
		t.Fatalf("expected -inf - 5 = -inf")
	}
	got := FromInt64(3).Add(FromInt64(4))
	if !got.IsFinite() || got.Int64() != 7 {
		t.Fatalf("expected 3+4=7, got %v", got)
	}
}

func TestMulZeroTimesInfinityIsZero(t *testing.T) {
	got := FromInt64(0).Mul(PInf())
	if !got.IsFinite() || got.Int64() != 0 {
		t.Fatalf("expected 0 * +inf = 0, got %v", got)
	}
	got2 := MInf().Mul(FromInt64(0))
	if !got2.IsFinite() || got2.Int64() != 0 {
		t.Fatalf("expected -inf * 0 = 0, got %v", got2)
	}
}

func TestMulSignConventions(t *testing.T) {
	if !FromInt64(-2).Mul(PInf()).IsNegInf() {
		t.Fatalf("expected -2 * +inf = -inf")
	}
	if !FromInt64(-2).Mul(MInf()).IsPosInf() {
		t.Fatalf("expected -2 * -inf = +inf")
	}
}

func TestMinMax(t *testing.T) {
	if !Min(FromInt64(3), FromInt64(7)).Eq(FromInt64(3)) {
		t.Fatalf("expected min(3,7)=3")
	}
	if !Max(FromInt64(3), PInf()).IsPosInf() {
		t.Fatalf("expected max(3,+inf)=+inf")
	}
}
