package flatten

import "testing"

func TestFlattenLinesPassThrough(t *testing.T) {
	ops := []Op{
		Move{Point: Pt{0, 0}},
		Line{Point: Pt{10, 0}},
		Close{},
	}
	out := Flatten(ops, DefaultTolerance)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	if _, ok := out[1].(Line); !ok {
		t.Errorf("out[1] = %T, want Line", out[1])
	}
}

func TestFlattenStraightQuadCollapsesToOneLine(t *testing.T) {
	// A quad whose control point lies on the chord is already flat.
	ops := []Op{
		Move{Point: Pt{0, 0}},
		Quad{Control: Pt{5, 0}, Point: Pt{10, 0}},
	}
	out := Flatten(ops, DefaultTolerance)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 (Move + one Line)", len(out))
	}
	line, ok := out[1].(Line)
	if !ok {
		t.Fatalf("out[1] = %T, want Line", out[1])
	}
	if line.Point != (Pt{10, 0}) {
		t.Errorf("endpoint = %v, want (10,0)", line.Point)
	}
}

func TestFlattenCurvedQuadProducesMultipleLines(t *testing.T) {
	ops := []Op{
		Move{Point: Pt{0, 0}},
		Quad{Control: Pt{50, 100}, Point: Pt{100, 0}},
	}
	out := Flatten(ops, 0.5)
	if len(out) < 3 {
		t.Fatalf("len(out) = %d, want at least 3 segments for a sharply curved quad", len(out))
	}
	last := out[len(out)-1].(Line)
	if last.Point != (Pt{100, 0}) {
		t.Errorf("final point = %v, want (100,0)", last.Point)
	}
}

func TestFlattenCubicReachesEndpoint(t *testing.T) {
	ops := []Op{
		Move{Point: Pt{0, 0}},
		Cubic{Control1: Pt{0, 50}, Control2: Pt{100, 50}, Point: Pt{100, 0}},
	}
	out := Flatten(ops, 0.25)
	last := out[len(out)-1].(Line)
	if last.Point != (Pt{100, 0}) {
		t.Errorf("final point = %v, want (100,0)", last.Point)
	}
	for _, op := range out[1:] {
		if _, ok := op.(Line); !ok {
			t.Errorf("expected only Line ops after flattening, got %T", op)
		}
	}
}

func TestFlattenTighterToleranceProducesMoreSegments(t *testing.T) {
	ops := []Op{
		Move{Point: Pt{0, 0}},
		Quad{Control: Pt{50, 100}, Point: Pt{100, 0}},
	}
	coarse := Flatten(ops, 5.0)
	fine := Flatten(ops, 0.05)
	if len(fine) <= len(coarse) {
		t.Errorf("tighter tolerance produced %d segments, coarse produced %d; want fine > coarse", len(fine), len(coarse))
	}
}

func TestFlattenRecursionDepthBounded(t *testing.T) {
	// A degenerate quad with a control point far off axis at a tolerance
	// of zero would recurse forever without a depth cap.
	ops := []Op{
		Move{Point: Pt{0, 0}},
		Quad{Control: Pt{1e6, 1e6}, Point: Pt{1, 0}},
	}
	out := Flatten(ops, 0)
	if len(out) == 0 {
		t.Fatal("Flatten returned no output; recursion cap should still terminate and emit a chord")
	}
}
