package paint

import "testing"

func TestPointVectorOps(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %+v, want (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %+v, want (2, 6)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v, want (6, 8)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointNormalize(t *testing.T) {
	n := Pt(3, 4).Normalize()
	if !approxEq(n.Length(), 1, 1e-12) {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if Pt(0, 0).Normalize() != Pt(0, 0) {
		t.Error("normalizing the zero vector must return zero")
	}
}

func TestPointLerpMidpoint(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 20)

	if got := a.Lerp(b, 0.25); got != Pt(2.5, 5) {
		t.Errorf("Lerp(0.25) = %+v, want (2.5, 5)", got)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints do not match inputs")
	}
	if got := a.Midpoint(b); got != Pt(5, 10) {
		t.Errorf("Midpoint = %+v, want (5, 10)", got)
	}
}

func TestPointAngle(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"east", Pt(1, 0), 0},
		{"south", Pt(0, 1), 90},
		{"west", Pt(-1, 0), 180},
		{"north", Pt(0, -1), 270},
		{"diagonal", Pt(1, 1), 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Angle(); !approxEq(got, tt.want, 1e-9) {
				t.Errorf("Angle(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, 2), Pt(4, 8))
	if r.Min != Pt(4, 2) || r.Max != Pt(10, 8) {
		t.Errorf("NewRect did not normalize: %+v", r)
	}
	if r.Width() != 6 || r.Height() != 6 {
		t.Errorf("size = %vx%v, want 6x6", r.Width(), r.Height())
	}

	u := r.Union(NewRect(Pt(0, 0), Pt(5, 5)))
	if u.Min != Pt(0, 0) || u.Max != Pt(10, 8) {
		t.Errorf("Union = %+v", u)
	}

	e := r.Expand(2)
	if e.Min != Pt(2, 0) || e.Max != Pt(12, 10) {
		t.Errorf("Expand = %+v", e)
	}

	if !r.Contains(Pt(5, 5)) || r.Contains(Pt(11, 5)) {
		t.Error("Contains misclassified a point")
	}
}
