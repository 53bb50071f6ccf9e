package footile

import "testing"

func TestPathEmpty(t *testing.T) {
	p := NewPathBuilder().Build()
	if !p.Empty() {
		t.Error("new path should be empty")
	}
	p2 := NewPathBuilder().Move(0, 0).Build()
	if p2.Empty() {
		t.Error("path with one op should not be empty")
	}
}

func TestPathOpsRestartable(t *testing.T) {
	p := NewPathBuilder().Move(1, 1).Line(2, 2).Close().Build()
	first := p.Ops()
	second := p.Ops()
	if len(first) != len(second) {
		t.Fatalf("Ops() returned different lengths on repeat calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Ops()[%d] differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestPathOpsOrder(t *testing.T) {
	p := NewPathBuilder().
		Move(0, 0).
		Line(1, 0).
		Quad(2, 1, 3, 0).
		Cubic(4, 1, 5, -1, 6, 0).
		PenWidth(2).
		Close().
		Build()

	ops := p.Ops()
	if len(ops) != 6 {
		t.Fatalf("len(ops) = %d, want 6", len(ops))
	}
	if _, ok := ops[0].(Move); !ok {
		t.Errorf("ops[0] = %T, want Move", ops[0])
	}
	if _, ok := ops[1].(Line); !ok {
		t.Errorf("ops[1] = %T, want Line", ops[1])
	}
	if _, ok := ops[2].(Quad); !ok {
		t.Errorf("ops[2] = %T, want Quad", ops[2])
	}
	if _, ok := ops[3].(Cubic); !ok {
		t.Errorf("ops[3] = %T, want Cubic", ops[3])
	}
	if _, ok := ops[4].(PenWidth); !ok {
		t.Errorf("ops[4] = %T, want PenWidth", ops[4])
	}
	if _, ok := ops[5].(Close); !ok {
		t.Errorf("ops[5] = %T, want Close", ops[5])
	}
}
