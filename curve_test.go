package paint

import "testing"

func TestQuadBezEval(t *testing.T) {
	seg := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))

	if seg.Eval(0) != Pt(0, 0) {
		t.Errorf("Eval(0) = %+v, want start", seg.Eval(0))
	}
	if seg.Eval(1) != Pt(10, 0) {
		t.Errorf("Eval(1) = %+v, want end", seg.Eval(1))
	}
	// Apex of the symmetric parabola.
	mid := seg.Eval(0.5)
	if !approxEq(mid.X, 5, 1e-9) || !approxEq(mid.Y, 5, 1e-9) {
		t.Errorf("Eval(0.5) = %+v, want (5, 5)", mid)
	}
}

func TestQuadBezTangent(t *testing.T) {
	seg := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))

	// The symmetric curve is horizontal at its apex.
	if a := seg.Tangent(0.5).Angle(); !approxEq(a, 0, 1e-9) {
		t.Errorf("apex tangent angle = %v, want 0", a)
	}
	// At the start the tangent points toward the control point.
	if a := seg.Tangent(0).Angle(); !approxEq(a, Pt(5, 10).Angle(), 1e-9) {
		t.Errorf("start tangent angle = %v, want %v", a, Pt(5, 10).Angle())
	}
}

func TestQuadBezChordLength(t *testing.T) {
	// Degenerate straight segment: polygon length equals the chord.
	straight := NewQuadBez(Pt(0, 0), Pt(5, 0), Pt(10, 0))
	if got := straight.ChordLength(); !approxEq(got, 10, 1e-9) {
		t.Errorf("ChordLength = %v, want 10", got)
	}
	// Bent segment: the control polygon is longer than the chord.
	bent := NewQuadBez(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	if got := bent.ChordLength(); got <= 10 {
		t.Errorf("ChordLength = %v, want > 10", got)
	}
}
