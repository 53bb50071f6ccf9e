package fixed

import "testing"

func TestRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 3.5, -3.5, 0.015625} {
		got := FromFloat64(f).ToFloat64()
		if diff := got - f; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("FromFloat64(%v).ToFloat64() = %v", f, got)
		}
	}
}

func TestMul(t *testing.T) {
	a := FromFloat64(2.5)
	b := FromFloat64(4)
	got := a.Mul(b).ToFloat64()
	if got != 10 {
		t.Errorf("2.5 * 4 = %v, want 10", got)
	}
}

func TestFloorCeil(t *testing.T) {
	f := FromFloat64(3.25)
	if f.Floor().ToIntFloor() != 3 {
		t.Errorf("Floor(3.25) = %v, want 3", f.Floor().ToIntFloor())
	}
	if f.Ceil().ToIntFloor() != 4 {
		t.Errorf("Ceil(3.25) = %v, want 4", f.Ceil().ToIntFloor())
	}
	whole := FromInt(5)
	if whole.Ceil() != whole {
		t.Errorf("Ceil(5) = %v, want 5 (already whole)", whole.Ceil().ToFloat64())
	}
}

func TestFrac(t *testing.T) {
	f := FromFloat64(3.25)
	got := f.Frac().ToFloat64()
	if diff := got - 0.25; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("Frac(3.25) = %v, want 0.25", got)
	}
}

func TestAvg(t *testing.T) {
	a := FromInt(2)
	b := FromInt(8)
	if a.Avg(b) != FromInt(5) {
		t.Errorf("Avg(2,8) = %v, want 5", a.Avg(b).ToFloat64())
	}
}
