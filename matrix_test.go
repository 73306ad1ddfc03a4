package paint

import (
	"math"
	"testing"
)

func matricesEq(a, b Matrix, tol float64) bool {
	return approxEq(a.A, b.A, tol) && approxEq(a.B, b.B, tol) && approxEq(a.C, b.C, tol) &&
		approxEq(a.D, b.D, tol) && approxEq(a.E, b.E, tol) && approxEq(a.F, b.F, tol)
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Point{X: 3, Y: 4}, Point{X: 3, Y: 4}},
		{"translation", Translation(10, -5), Point{X: 1, Y: 1}, Point{X: 11, Y: -4}},
		{"scaling", Scaling(2, 3), Point{X: 1, Y: 1}, Point{X: 2, Y: 3}},
		{"quarter turn", Rotation(math.Pi / 2), Point{X: 1, Y: 0}, Point{X: 0, Y: 1}},
		{"half turn", Rotation(math.Pi), Point{X: 1, Y: 0}, Point{X: -1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !approxEq(got.X, tt.want.X, 1e-9) || !approxEq(got.Y, tt.want.Y, 1e-9) {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then scale: the scale applies in the translated frame.
	m := Translation(10, 0).Multiply(Scaling(2, 2))
	got := m.TransformPoint(Point{X: 1, Y: 1})
	want := Point{X: 12, Y: 2}
	if !approxEq(got.X, want.X, 1e-9) || !approxEq(got.Y, want.Y, 1e-9) {
		t.Errorf("composed transform = %+v, want %+v", got, want)
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translation(100, 100).Multiply(Scaling(2, 2))
	got := m.TransformVector(Point{X: 1, Y: 0})
	if !approxEq(got.X, 2, 1e-9) || !approxEq(got.Y, 0, 1e-9) {
		t.Errorf("TransformVector = %+v, want (2, 0)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translation", Translation(7, -3)},
		{"scaling", Scaling(2, 0.5)},
		{"rotation", Rotation(1.1)},
		{"composite", Translation(5, 5).Multiply(Rotation(0.7)).Multiply(Scaling(3, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !matricesEq(tt.m.Multiply(tt.m.Invert()), Identity(), 1e-9) {
				t.Errorf("m * m^-1 != identity for %+v", tt.m)
			}
		})
	}

	t.Run("singular falls back to identity", func(t *testing.T) {
		if !Scaling(0, 0).Invert().IsIdentity() {
			t.Error("inverting a singular matrix must return identity")
		}
	})
}

func TestMatrixScaleMagnitude(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform scale", Scaling(3, 3), 3},
		{"non-uniform takes max", Scaling(2, 5), 5},
		{"rotation preserves length", Rotation(0.9), 1},
		{"degenerate reads 1", Scaling(0, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ScaleMagnitude(); !approxEq(got, tt.want, 1e-9) {
				t.Errorf("ScaleMagnitude = %v, want %v", got, tt.want)
			}
		})
	}
}
