package paint

import "math"

// TouchSample is one raw touch event as delivered by the external
// gesture dispatcher: absolute position, normalized pressure, and the
// deltas from the previous raw sample. Samples are immutable once
// created.
type TouchSample struct {
	X, Y     float64
	Pressure float64 // [0, 1]; clamped by the pressure remap
	DX, DY   float64
}

// Pos returns the sample position as a Point.
func (s TouchSample) Pos() Point {
	return Point{X: s.X, Y: s.Y}
}

// DrawPointFunc receives each smoothed point as it is emitted.
// angleDeg is the stamp rotation derived from the path tangent (always
// 0 for the linear smoother), remaining counts down over the points
// emitted for one raw sample (the last point of a batch gets 1), and
// last marks the final point of the stroke.
type DrawPointFunc func(x, y, angleDeg float64, remaining int, last bool)

// Smoother resamples a stream of raw touch samples into evenly spaced
// points along a continuous path, at intervals of the brush's
// SpacedWidth. Implementations emit zero or more points per call
// through their DrawPointFunc.
//
// A smoother carries per-stroke state: its arc-length accumulator
// persists across calls within one stroke and resets only in
// SetLastPoint.
type Smoother interface {
	// SetFirstPoint starts a stroke at the given sample.
	SetFirstPoint(s TouchSample, b *Brush)
	// AddPoints extends the stroke with the next raw sample, emitting
	// any points whose arc-length positions are now covered.
	AddPoints(s TouchSample, b *Brush)
	// SetLastPoint ends the stroke, draining the remaining path and
	// resetting all per-stroke state.
	SetLastPoint(s TouchSample, b *Brush)
}

// smoothedPoint is a pending emission, buffered so a batch can be
// counted before it is delivered.
type smoothedPoint struct {
	x, y  float64
	angle float64
}

// -------------------------------------------------------------------
// LineSmoother
// -------------------------------------------------------------------

// LineSmoother resamples the raw polyline without smoothing: it
// measures the growing path length and emits a point every SpacedWidth
// along it. Direction angles are always 0; straight segments carry no
// useful tangent for stamp rotation.
type LineSmoother struct {
	onDraw DrawPointFunc

	last       Point
	haveLast   bool
	total      float64 // path length so far
	consumed   float64 // arc length already emitted
	emittedAny bool
	pending    []smoothedPoint
}

// NewLineSmoother creates a linear smoother delivering points to onDraw.
func NewLineSmoother(onDraw DrawPointFunc) *LineSmoother {
	return &LineSmoother{onDraw: onDraw}
}

// SetFirstPoint implements Smoother.
func (s *LineSmoother) SetFirstPoint(sample TouchSample, b *Brush) {
	s.reset()
	s.last = sample.Pos()
	s.haveLast = true
}

// AddPoints implements Smoother.
func (s *LineSmoother) AddPoints(sample TouchSample, b *Brush) {
	if !s.haveLast {
		s.SetFirstPoint(sample, b)
		return
	}
	s.extend(sample.Pos(), b, false)
}

// SetLastPoint implements Smoother. If the stroke never produced a
// point (a tap, or a remainder shorter than the spacing), a single
// final point is forced at the last raw coordinate.
func (s *LineSmoother) SetLastPoint(sample TouchSample, b *Brush) {
	end := sample.Pos()
	if s.haveLast {
		s.extend(end, b, true)
	}
	if !s.emittedAny {
		s.onDraw(end.X, end.Y, 0, 1, true)
	}
	s.reset()
}

// extend appends one segment to the path and emits every point whose
// arc-length position the path now covers.
func (s *LineSmoother) extend(p Point, b *Brush, last bool) {
	w := b.SpacedWidth()
	if w <= 0 {
		return
	}

	from := s.last
	segLen := from.Distance(p)
	segStart := s.total
	s.total += segLen
	s.last = p

	s.pending = s.pending[:0]
	for s.total-s.consumed >= w && segLen > 0 {
		s.consumed += w
		t := (s.consumed - segStart) / segLen
		pos := from.Lerp(p, t)
		s.pending = append(s.pending, smoothedPoint{x: pos.X, y: pos.Y})
	}
	s.deliver(last)
}

// deliver flushes the pending batch with countdown remaining values.
func (s *LineSmoother) deliver(last bool) {
	n := len(s.pending)
	for i, pt := range s.pending {
		s.onDraw(pt.x, pt.y, pt.angle, n-i, last && i == n-1)
	}
	if n > 0 {
		s.emittedAny = true
	}
}

func (s *LineSmoother) reset() {
	s.haveLast = false
	s.total = 0
	s.consumed = 0
	s.emittedAny = false
	s.pending = s.pending[:0]
}

// -------------------------------------------------------------------
// BezierSmoother
// -------------------------------------------------------------------

// BezierSmoother smooths the raw samples with the midpoint-quadratic
// construction: from the third sample onward, each new sample closes a
// quadratic Bezier segment running between the midpoints of successive
// raw-point pairs, with the shared raw point as control point. The
// brush's Smoothness blends each new raw point toward the previous one
// before the segment is built, flattening sharp corners.
//
// Points are emitted every SpacedWidth of arc length along the growing
// curve; when the brush has AutoRotate set, each point carries the
// direction angle of the path tangent, normalized to [0, 360).
type BezierSmoother struct {
	onDraw DrawPointFunc

	prev2, prev1 Point
	count        int     // raw samples accepted
	sinceLast    float64 // arc length since the last emitted point
	pending      []smoothedPoint
}

// NewBezierSmoother creates a Bezier smoother delivering points to
// onDraw.
func NewBezierSmoother(onDraw DrawPointFunc) *BezierSmoother {
	return &BezierSmoother{onDraw: onDraw}
}

// SetFirstPoint implements Smoother.
func (s *BezierSmoother) SetFirstPoint(sample TouchSample, b *Brush) {
	s.reset()
	s.prev2 = sample.Pos()
	s.count = 1
}

// AddPoints implements Smoother. Nothing is emitted until the third raw
// sample completes the first segment.
func (s *BezierSmoother) AddPoints(sample TouchSample, b *Brush) {
	p := sample.Pos()
	switch s.count {
	case 0:
		s.prev2 = p
		s.count = 1
	case 1:
		s.prev1 = p
		s.count = 2
	default:
		cur := p.Lerp(s.prev1, clamp01(b.Smoothness))
		seg := NewQuadBez(s.prev2.Midpoint(s.prev1), s.prev1, s.prev1.Midpoint(cur))
		s.emitAlong(seg, b, false)
		s.prev2, s.prev1 = s.prev1, cur
		s.count++
	}
}

// SetLastPoint implements Smoother. The path is closed with a final
// segment ending at the actual release coordinate. A degenerate stroke
// (fewer than three raw samples) or an empty final drain forces a
// single point at the last raw coordinate with angle 0.
func (s *BezierSmoother) SetLastPoint(sample TouchSample, b *Brush) {
	p := sample.Pos()
	emittedAtEnd := false
	if s.count >= 2 {
		seg := NewQuadBez(s.prev2.Midpoint(s.prev1), s.prev1, p)
		emittedAtEnd = s.emitAlong(seg, b, true)
	}
	if !emittedAtEnd {
		s.onDraw(p.X, p.Y, 0, 1, true)
	}
	s.reset()
}

// emitAlong walks one quadratic segment, emitting a point every
// SpacedWidth of arc length. The segment is flattened adaptively based
// on its control-polygon length; the arc accumulator carries across
// segments so spacing stays even over the whole stroke. Reports
// whether anything was emitted.
func (s *BezierSmoother) emitAlong(seg QuadBez, b *Brush, last bool) bool {
	w := b.SpacedWidth()
	if w <= 0 {
		return false
	}

	steps := int(math.Ceil(seg.ChordLength()))
	if steps < 8 {
		steps = 8
	} else if steps > 512 {
		steps = 512
	}

	s.pending = s.pending[:0]
	prev := seg.Eval(0)
	acc := s.sinceLast
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cur := seg.Eval(t)
		d := prev.Distance(cur)
		for d > 0 && acc+d >= w {
			need := w - acc
			f := need / d
			pos := prev.Lerp(cur, f)

			var angle float64
			if b.AutoRotate {
				tt := (float64(i-1) + f) / float64(steps)
				angle = seg.Tangent(tt).Angle()
			}
			s.pending = append(s.pending, smoothedPoint{x: pos.X, y: pos.Y, angle: angle})

			prev = pos
			d -= need
			acc = 0
		}
		acc += d
		prev = cur
	}
	s.sinceLast = acc

	n := len(s.pending)
	for i, pt := range s.pending {
		s.onDraw(pt.x, pt.y, pt.angle, n-i, last && i == n-1)
	}
	return n > 0
}

func (s *BezierSmoother) reset() {
	s.count = 0
	s.sinceLast = 0
	s.pending = s.pending[:0]
}
