package paint

import "math"

// Pattern produces a color for every point in the local coordinate
// space of a fill operation. Solid fills and the soft-edge stamp
// gradient both implement it.
type Pattern interface {
	// ColorAt returns the color at the given point.
	ColorAt(x, y float64) RGBA
}

// SolidPattern is a single-color pattern.
type SolidPattern struct {
	Color RGBA
}

// NewSolidPattern creates a solid color pattern.
func NewSolidPattern(color RGBA) *SolidPattern {
	return &SolidPattern{Color: color}
}

// ColorAt implements Pattern.
func (p *SolidPattern) ColorAt(x, y float64) RGBA {
	return p.Color
}

// RadialGradient is a center-focused radial color ramp. The procedural
// circle stamp uses it for its soft edge: solid color out to the inner
// radius, fading to transparent at the outer radius.
type RadialGradient struct {
	Center      Point
	StartRadius float64
	EndRadius   float64
	Inner       RGBA
	Outer       RGBA
}

// NewRadialGradient creates a radial gradient around (cx, cy).
// The color transitions from inner at startRadius to outer at endRadius.
func NewRadialGradient(cx, cy, startRadius, endRadius float64, inner, outer RGBA) *RadialGradient {
	return &RadialGradient{
		Center:      Point{X: cx, Y: cy},
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Inner:       inner,
		Outer:       outer,
	}
}

// ColorAt implements Pattern.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	span := g.EndRadius - g.StartRadius
	if span <= 0 {
		return g.Inner
	}
	dx := x - g.Center.X
	dy := y - g.Center.Y
	t := (math.Sqrt(dx*dx+dy*dy) - g.StartRadius) / span
	if t <= 0 {
		return g.Inner
	}
	if t >= 1 {
		return g.Outer
	}
	return g.Inner.Lerp(g.Outer, t)
}

// softEdgeGradient builds the stamp gradient for a procedural circle of
// the given radius: solid color for (1-softness) of the radius, fading
// to transparent at the edge. Returns nil for degenerate radii so the
// caller can skip the draw instead of constructing a broken shader.
func softEdgeGradient(radius, softness float64, color RGBA) *RadialGradient {
	if radius <= 0 {
		return nil
	}
	softness = clamp01(softness)
	return NewRadialGradient(0, 0, radius*(1-softness), radius, color, color.WithAlpha(0))
}
