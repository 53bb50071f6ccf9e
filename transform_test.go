package footile

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestIdentityApply(t *testing.T) {
	p := Pt2(3, 4)
	got := Identity().Apply(p)
	if got != p {
		t.Errorf("Identity().Apply(%v) = %v, want %v", p, got, p)
	}
}

func TestTranslateApply(t *testing.T) {
	got := Translate(10, -5).Apply(Pt2(1, 2))
	want := Pt2(11, -3)
	if got != want {
		t.Errorf("Translate(10,-5).Apply(1,2) = %v, want %v", got, want)
	}
}

func TestScaleApply(t *testing.T) {
	got := Scale(2, 3).Apply(Pt2(4, 5))
	want := Pt2(8, 15)
	if got != want {
		t.Errorf("Scale(2,3).Apply(4,5) = %v, want %v", got, want)
	}
}

func TestRotateApply90(t *testing.T) {
	got := Rotate(math.Pi / 2).Apply(Pt2(1, 0))
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("Rotate(pi/2).Apply(1,0) = %v, want ~(0,1)", got)
	}
}

func TestSkewXApply(t *testing.T) {
	got := SkewX(math.Pi / 4).Apply(Pt2(0, 1))
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("SkewX(pi/4).Apply(0,1) = %v, want ~(1,1)", got)
	}
}

func TestSkewYApply(t *testing.T) {
	got := SkewY(math.Pi / 4).Apply(Pt2(1, 0))
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("SkewY(pi/4).Apply(1,0) = %v, want ~(1,1)", got)
	}
}

func TestComposeAppliesRightFirst(t *testing.T) {
	// Compose applies `other` first, then the receiver: translate-then-scale
	// must differ from scale-then-translate for a non-origin point.
	p := Pt2(1, 1)
	scaleThenTranslate := Translate(10, 0).Compose(Scale(2, 2))
	translateThenScale := Scale(2, 2).Compose(Translate(10, 0))

	got1 := scaleThenTranslate.Apply(p)
	want1 := Pt2(12, 2) // scale first -> (2,2), then translate -> (12,2)
	if got1 != want1 {
		t.Errorf("Translate.Compose(Scale).Apply(1,1) = %v, want %v", got1, want1)
	}

	got2 := translateThenScale.Apply(p)
	want2 := Pt2(22, 2) // translate first -> (11,1), then scale -> (22,2)
	if got2 != want2 {
		t.Errorf("Scale.Compose(Translate).Apply(1,1) = %v, want %v", got2, want2)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tr := Rotate(0.7).Compose(Scale(2, 3)).Compose(Translate(5, -2))
	inv := tr.Invert()
	p := Pt2(3, 4)
	got := inv.Apply(tr.Apply(p))
	if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
		t.Errorf("Invert round trip: got %v, want %v", got, p)
	}
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	degenerate := Scale(0, 0)
	if got := degenerate.Invert(); got != Identity() {
		t.Errorf("Invert() of a singular transform = %v, want Identity()", got)
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1,0).IsIdentity() = true, want false")
	}
}

func TestAff3RoundTrip(t *testing.T) {
	tr := Rotate(0.4).Compose(Translate(3, -1))
	got := FromAff3(tr.ToAff3())
	if got != tr {
		t.Errorf("FromAff3(ToAff3(tr)) = %v, want %v", got, tr)
	}
}

func TestToAff3MatchesApply(t *testing.T) {
	tr := Scale(2, 3).Compose(Translate(1, 1))
	var aff f64.Aff3 = tr.ToAff3()
	p := Pt2(5, 7)
	want := tr.Apply(p)
	got := Pt2(aff[0]*p.X+aff[1]*p.Y+aff[2], aff[3]*p.X+aff[4]*p.Y+aff[5])
	if got != want {
		t.Errorf("Aff3 application = %v, want %v", got, want)
	}
}
