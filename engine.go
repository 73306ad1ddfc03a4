package paint

import (
	"math"
	"math/rand/v2"
)

// sizeVarianceSpeedScale converts the smoothed stroke speed into the
// per-move displacement of the size-variance holder.
const sizeVarianceSpeedScale = 0.1

// opacityVelocitySmoothing is the fixed low-pass factor for the
// opacity-variance speed tracker. Size variance has a configurable
// sensitivity on the brush; opacity reacts through its own speed
// multiplier instead, so its tracker smoothing is constant.
const opacityVelocitySmoothing = 0.5

// Engine is the stateful per-stroke controller of the brush pipeline.
// For every smoothed point it evolves the hidden stroke state (pressure
// tracking, speed-reactive variance, taper progress, hue oscillation)
// and issues a single stamp draw with a fully resolved transform and
// composite state.
//
// Engine state is stroke-scoped: OnMoveBegin initializes it from the
// brush, OnMove advances the speed-reactive holders, Draw is called
// once per emitted point, and OnMoveEnded finalizes the stroke.
// Strokes must not interleave on one Engine instance.
type Engine struct {
	stamper Stamper
	eraser  bool
	blend   BlendMode

	// Pressure-to-size and pressure-to-opacity factors. current* is the
	// value computed from the newest raw sample; last* trails it,
	// advanced fractionally per Draw so a pressure change spreads
	// smoothly over all stamps of one raw move event.
	currentSizePressure    float64
	lastSizePressure       float64
	currentOpacityPressure float64
	lastOpacityPressure    float64

	// Speed-reactive size variance: the holder chases stroke speed in
	// OnMove, the target eases toward the holder per Draw. The target
	// is what scaling actually uses. Easing deliberately does not clamp
	// at the holder, so it can oscillate slightly around it depending
	// on how many Draw calls one OnMove produces.
	sizeVarianceHolder     float64
	targetSizeVariance     float64
	sizeVarianceEasingStep float64
	sizeVelocity           float64

	// Speed-reactive opacity variance, same two-layer structure, in
	// alpha units [0, 255].
	opacityVarianceHolder     float64
	targetOpacityVariance     float64
	opacityVarianceEasingStep float64
	opacityVelocity           float64

	// Start-taper progress, monotonically approaching 1.
	taperSizeHolder float64

	// Oscillating hue offset in degrees and its direction flag.
	hueDegreeHolder float64
	hueFlip         bool

	// Spacing captured at stroke start and restored at stroke end, so
	// mid-stroke overrides (e.g. preview rendering) are contained.
	currentSpacing float64
}

// NewEngine creates a drawing engine rendering through the given
// stamper.
func NewEngine(stamper Stamper) *Engine {
	return &Engine{
		stamper:            stamper,
		sizeVarianceHolder: 1,
		targetSizeVariance: 1,
		taperSizeHolder:    1,
	}
}

// SetStamper replaces the stamp renderer. Only call between strokes.
func (e *Engine) SetStamper(s Stamper) {
	e.stamper = s
}

// SetEraser toggles eraser mode: while set, stamps composite with
// destination-out regardless of the brush blend mode.
func (e *Engine) SetEraser(on bool) {
	e.eraser = on
}

// Eraser reports whether eraser mode is active.
func (e *Engine) Eraser() bool {
	return e.eraser
}

// mapPressure linearly remaps a pressure in [0, 1] into [min, max].
// Out-of-range pressures are clamped; this path has no error channel.
func mapPressure(p, min, max float64) float64 {
	return min + (max-min)*clamp01(p)
}

// pressureFactor computes the eased pressure factor used while the
// stroke moves: insensitive brushes and full pressure read as exactly
// 1, otherwise the remapped pressure blends with the previous factor.
func pressureFactor(sensitive bool, pressure, min, max, sensitivity, last float64) float64 {
	if !sensitive || pressure == 1.0 {
		return 1.0
	}
	return mapPressure(pressure, min, max)*sensitivity + last*(1-sensitivity)
}

// OnMoveBegin initializes all per-stroke state from the brush and the
// first touch sample.
func (e *Engine) OnMoveBegin(s TouchSample, b *Brush) {
	e.taperSizeHolder = b.StartTaperSize

	e.sizeVarianceHolder = b.SizeVariance
	e.targetSizeVariance = b.SizeVariance
	e.sizeVarianceEasingStep = b.SizeVarianceEasing * b.Spacing
	e.sizeVelocity = 0

	base := math.Abs(b.OpacityVariance * 255)
	e.opacityVarianceHolder = base
	e.targetOpacityVariance = base
	e.opacityVarianceEasingStep = b.OpacityVarianceEasing / b.Spacing
	e.opacityVelocity = 0

	if b.SizePressureSensitive {
		v := mapPressure(s.Pressure, b.MinPressureSize, b.MaxPressureSize)
		e.currentSizePressure = v
		e.lastSizePressure = v
	} else {
		e.currentSizePressure = 1
		e.lastSizePressure = 1
	}
	if b.OpacityPressureSensitive {
		v := mapPressure(s.Pressure, b.MinPressureOpacity, b.MaxPressureOpacity)
		e.currentOpacityPressure = v
		e.lastOpacityPressure = v
	} else {
		e.currentOpacityPressure = 1
		e.lastOpacityPressure = 1
	}

	e.currentSpacing = b.Spacing

	e.hueDegreeHolder = 0
	e.hueFlip = false

	e.blend = b.BlendMode
	if e.eraser {
		e.blend = BlendDstOut
	}
}

// OnMove advances the speed-reactive holders from the delta between
// consecutive raw samples. It does not draw.
func (e *Engine) OnMove(s TouchSample, b *Brush) {
	rawDelta := math.Hypot(s.DX, s.DY)

	if b.SizeVariance != 1.0 {
		smoothed := b.SizeVarianceSensitivity*rawDelta + (1-b.SizeVarianceSensitivity)*e.sizeVelocity
		speed := math.Abs(smoothed - e.sizeVelocity)
		e.sizeVelocity = smoothed

		// Speed pushes the holder from the configured variance toward
		// the neutral 1.0.
		delta := speed * sizeVarianceSpeedScale
		if b.SizeVariance > 1 {
			e.sizeVarianceHolder = clampf(b.SizeVariance-delta, 1, b.SizeVariance)
		} else {
			e.sizeVarianceHolder = clampf(b.SizeVariance+delta, b.SizeVariance, 1)
		}
		e.sizeVarianceEasingStep = b.SizeVarianceEasing * b.Spacing
	}

	if b.OpacityVariance != 0 {
		smoothed := opacityVelocitySmoothing*rawDelta + (1-opacityVelocitySmoothing)*e.opacityVelocity
		speed := math.Abs(smoothed - e.opacityVelocity)
		e.opacityVelocity = smoothed

		base := math.Abs(b.OpacityVariance * 255)
		step := speed * b.OpacityVarianceSpeed
		if b.OpacityVariance > 0 {
			e.opacityVarianceHolder = clampf(base+step, base, 255)
		} else {
			e.opacityVarianceHolder = clampf(base-step, 0, base)
		}
		e.opacityVarianceEasingStep = b.OpacityVarianceEasing / b.Spacing
	}

	e.currentSizePressure = pressureFactor(b.SizePressureSensitive, s.Pressure,
		b.MinPressureSize, b.MaxPressureSize, b.SizePressureSensitivity, e.lastSizePressure)
	e.currentOpacityPressure = pressureFactor(b.OpacityPressureSensitive, s.Pressure,
		b.MinPressureOpacity, b.MaxPressureOpacity, b.OpacityPressureSensitivity, e.lastOpacityPressure)
}

// Draw resolves the transform and composite state for one smoothed
// point and renders a single stamp. remaining is the number of points
// still to be drawn for the current raw sample, including this one; it
// spreads pressure changes evenly across the batch.
func (e *Engine) Draw(x, y, directionAngle float64, c Canvas, b *Brush, remaining int) {
	if remaining < 1 {
		remaining = 1
	}

	c.Save()
	c.SetBlendMode(e.blend)

	// Placement, with optional random scatter around the path point.
	tx, ty := x, y
	if b.Scatter > 0 {
		r := b.Size * b.Scatter
		tx += randRange(-r, r)
		ty += randRange(-r, r)
	}
	c.Translate(tx, ty)

	// Orientation. Skip the rotate call entirely when the resolved
	// angle is zero; identity transforms are wasted work per stamp.
	rot := b.Angle + directionAngle
	if b.AngleJitter > 0 {
		rot += rand.Float64() * 360 * b.AngleJitter
	}
	rot = math.Mod(rot, 360)
	if rot < 0 {
		rot += 360
	}
	if rot != 0 {
		c.Rotate(rot * math.Pi / 180)
	}

	// Advance the start taper toward 1.
	taperActive := b.StartTaperSpeed > 0 && b.StartTaperSize != 1
	if taperActive && e.taperSizeHolder != 1 {
		if e.taperSizeHolder < 1 {
			e.taperSizeHolder = math.Min(1, e.taperSizeHolder+b.StartTaperSpeed)
		} else {
			e.taperSizeHolder = math.Max(1, e.taperSizeHolder-b.StartTaperSpeed)
		}
	}

	// Second easing layer: the applied variance chases the holder one
	// step per stamp. No overshoot clamp; see the holder field docs.
	if e.targetSizeVariance < e.sizeVarianceHolder {
		e.targetSizeVariance += e.sizeVarianceEasingStep
	} else if e.targetSizeVariance > e.sizeVarianceHolder {
		e.targetSizeVariance -= e.sizeVarianceEasingStep
	}

	finalTaper := 1.0
	if taperActive {
		finalTaper = e.taperSizeHolder
	}
	varianceActive := b.SizeVariance != 1
	finalVariance := 1.0
	if varianceActive {
		finalVariance = e.targetSizeVariance
	}

	// Spread the pressure change across the batch.
	if b.SizePressureSensitive {
		e.lastSizePressure += (e.currentSizePressure - e.lastSizePressure) / float64(remaining)
	}
	if b.OpacityPressureSensitive {
		e.lastOpacityPressure += (e.currentOpacityPressure - e.lastOpacityPressure) / float64(remaining)
	}

	// Scale, in priority order. Squish flattens the local X axis only.
	switch {
	case b.SizeJitter > 0 || b.Squish != 1:
		s := (1 + rand.Float64()*b.SizeJitter) * finalTaper * finalVariance * e.lastSizePressure
		c.Scale(s*b.Squish, s)
	case b.SizePressureSensitive:
		c.Scale(e.lastSizePressure, e.lastSizePressure)
	case taperActive:
		c.Scale(finalTaper*finalVariance, finalTaper*finalVariance)
	case varianceActive:
		c.Scale(finalVariance, finalVariance)
	}

	// Hue effects. Jitter is one-shot per stamp; hue flow walks the
	// offset back and forth between 0 and HueDistance.
	base := b.Color
	drawColor := base
	switch {
	case b.HueJitter > 0:
		drawColor = base.RotateHue(rand.Float64() * b.HueJitter)
	case b.HueFlow > 0 && b.HueDistance > 0:
		step := 1 / b.HueFlow
		if !e.hueFlip {
			e.hueDegreeHolder += step
			if e.hueDegreeHolder >= b.HueDistance {
				e.hueDegreeHolder = b.HueDistance
				e.hueFlip = true
			}
		} else {
			e.hueDegreeHolder -= step
			if e.hueDegreeHolder <= 0 {
				e.hueDegreeHolder = 0
				e.hueFlip = false
			}
		}
		drawColor = base.RotateHue(e.hueDegreeHolder)
	}

	// Opacity variance easing, same structure as size.
	if e.targetOpacityVariance < e.opacityVarianceHolder {
		e.targetOpacityVariance += e.opacityVarianceEasingStep
	} else if e.targetOpacityVariance > e.opacityVarianceHolder {
		e.targetOpacityVariance -= e.opacityVarianceEasingStep
	}

	// Final alpha, in priority order.
	var alpha float64
	switch {
	case b.OpacityPressureSensitive:
		alpha = b.Opacity * 255 * e.lastOpacityPressure
	case b.OpacityVariance != 0:
		alpha = e.targetOpacityVariance
	case b.OpacityJitter > 0:
		alpha = rand.Float64() * 255 * b.OpacityJitter
	case b.AlphaBlend:
		alpha = 255
	default:
		alpha = b.Opacity * 255
	}

	// The hue-shifted color is transient: it applies to this stamp only
	// and the brush reads back its base color immediately after.
	b.Color = drawColor
	e.stamper.Draw(c, b, uint8(clamp255(alpha)))
	b.Color = base

	c.Restore()
}

// OnMoveEnded finalizes the stroke: pressure snaps to the release
// value with no easing, the hue oscillation and velocity trackers
// reset, and the brush's spacing is restored to its value at stroke
// start.
func (e *Engine) OnMoveEnded(s TouchSample, b *Brush) {
	if b.SizePressureSensitive {
		v := mapPressure(s.Pressure, b.MinPressureSize, b.MaxPressureSize)
		e.currentSizePressure = v
		e.lastSizePressure = v
	} else {
		e.currentSizePressure = 1
		e.lastSizePressure = 1
	}
	if b.OpacityPressureSensitive {
		v := mapPressure(s.Pressure, b.MinPressureOpacity, b.MaxPressureOpacity)
		e.currentOpacityPressure = v
		e.lastOpacityPressure = v
	} else {
		e.currentOpacityPressure = 1
		e.lastOpacityPressure = 1
	}

	e.sizeVelocity = 0
	e.opacityVelocity = 0
	e.hueDegreeHolder = 0
	e.hueFlip = false

	b.Spacing = e.currentSpacing
}

// randRange returns a uniform random value in [lo, hi).
func randRange(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

// clampf restricts v to [lo, hi].
func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
