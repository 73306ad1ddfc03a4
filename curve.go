package paint

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
// The Bezier smoother builds its stroke path out of these, one segment
// per raw touch sample once its window is full.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Tangent returns the (unnormalized) derivative of the curve at
// parameter t. The smoother converts it to a stamp rotation angle.
func (q QuadBez) Tangent(t float64) Point {
	mt := 1.0 - t
	// B'(t) = 2(1-t)(P1-P0) + 2t(P2-P1)
	return Point{
		X: 2*mt*(q.P1.X-q.P0.X) + 2*t*(q.P2.X-q.P1.X),
		Y: 2*mt*(q.P1.Y-q.P0.Y) + 2*t*(q.P2.Y-q.P1.Y),
	}
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns the ending point of the curve.
func (q QuadBez) End() Point {
	return q.P2
}

// ChordLength returns the length of the control polygon, an upper bound
// on the arc length used to pick a flattening step count.
func (q QuadBez) ChordLength() float64 {
	return q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
}
