package paint

import (
	"errors"
	"fmt"
	"image"
)

// Validation errors returned by Brush.Validate. The draw path itself has
// no error channel; misconfiguration is rejected before a stroke starts.
var (
	// ErrBrushSize indicates a non-positive brush size.
	ErrBrushSize = errors.New("paint: brush size must be > 0")

	// ErrBrushSpacing indicates a non-positive stamp spacing. Spacing
	// divides the arc-length resampler, so zero would stall emission.
	ErrBrushSpacing = errors.New("paint: brush spacing must be > 0")
)

// StampKind selects how a brush mark is rendered.
type StampKind int

const (
	// StampProcedural draws a filled circle or rectangle with an
	// optional soft gradient edge.
	StampProcedural StampKind = iota

	// StampBitmap draws a single pre-scaled bitmap, tinted by the brush
	// color.
	StampBitmap

	// StampSprite draws one of a set of bitmaps, chosen per stamp
	// either at random or round-robin.
	StampSprite
)

// StampShape selects the procedural stamp geometry.
type StampShape int

const (
	// ShapeCircle is a filled circle with a soft-edge radial gradient.
	ShapeCircle StampShape = iota
	// ShapeRect is a filled square.
	ShapeRect
)

// SpriteMode selects how a sprite-set stamp picks the next image.
type SpriteMode int

const (
	// SpriteRandom picks a uniformly random image per stamp.
	SpriteRandom SpriteMode = iota
	// SpriteSequential cycles through the images round-robin.
	SpriteSequential
)

// Stamp describes the imagery of a brush as a tagged variant: exactly
// one of the procedural, bitmap, or sprite fields is meaningful,
// selected by Kind.
type Stamp struct {
	Kind StampKind

	// Procedural variant.
	Shape    StampShape
	Softness float64 // fraction of the radius that fades to transparent

	// Bitmap variant.
	Image image.Image

	// Sprite variant.
	Images []image.Image
	Mode   SpriteMode
}

// Brush holds all per-brush configuration. It is a mutable value object
// owned by the calling tool; the engine and smoother only read it, with
// two sanctioned exceptions: the engine's transient per-stamp color
// swap during hue effects, and its save/restore of Spacing across a
// stroke.
//
// Fields may be changed freely between strokes. Mid-stroke mutation of
// Spacing and Size is permitted but is not retroactive for
// already-emitted points.
type Brush struct {
	// Identity and style.
	Stamp     Stamp
	BlendMode BlendMode

	// Geometry. Spacing is the distance between consecutive stamps as a
	// fraction of Size.
	Size    float64
	Spacing float64

	// Angle is the base stamp rotation in degrees. When AutoRotate is
	// set the smoother's path tangent is added on top of it.
	Angle      float64
	AutoRotate bool

	// Squish flattens the stamp along its local X axis; 1 means no
	// flattening.
	Squish float64

	// Color and opacity.
	Color   RGBA
	Opacity float64

	// Pressure response for size.
	SizePressureSensitive   bool
	SizePressureSensitivity float64
	MinPressureSize         float64
	MaxPressureSize         float64

	// Pressure response for opacity.
	OpacityPressureSensitive   bool
	OpacityPressureSensitivity float64
	MinPressureOpacity         float64
	MaxPressureOpacity         float64

	// One-shot per-stamp randomized effects. Size, opacity and angle
	// jitters are fractions in [0, 1]; hue jitter is in degrees.
	SizeJitter    float64
	OpacityJitter float64
	AngleJitter   float64
	HueJitter     float64

	// Scatter offsets each stamp by a random distance up to
	// Size*Scatter in both axes.
	Scatter float64

	// Speed-reactive size modulation. SizeVariance is multiplicative
	// with baseline 1. The continuous state lives in the Engine, not
	// here.
	SizeVariance            float64
	SizeVarianceSensitivity float64
	SizeVarianceEasing      float64

	// Speed-reactive opacity modulation. OpacityVariance is additive
	// with baseline 0 and may be negative.
	OpacityVariance       float64
	OpacityVarianceSpeed  float64
	OpacityVarianceEasing float64

	// Hue flow oscillates the hue back and forth over the stroke:
	// HueFlow is the rate (steps of 1/HueFlow degrees per stamp),
	// HueDistance the maximum offset in degrees.
	HueFlow     float64
	HueDistance float64

	// Start taper: the first stamps are scaled by StartTaperSize,
	// stepping toward 1 by StartTaperSpeed per stamp.
	StartTaperSize  float64
	StartTaperSpeed float64

	// AlphaBlend forces stamps fully opaque, letting the blend mode
	// alone control coverage.
	AlphaBlend bool

	// Smoothness is consumed by the Bezier smoother, not the engine:
	// it blends each new raw sample toward the previous one, flattening
	// sharp corners.
	Smoothness float64
}

// NewBrush returns a brush with neutral defaults: a small round
// procedural stamp with no pressure response and no stochastic effects.
func NewBrush() *Brush {
	return &Brush{
		Stamp:              Stamp{Kind: StampProcedural, Shape: ShapeCircle, Softness: 0.25},
		BlendMode:          BlendNormal,
		Size:               24,
		Spacing:            0.1,
		Squish:             1,
		Color:              Black,
		Opacity:            1,
		MinPressureSize:    0.3,
		MaxPressureSize:    1,
		MinPressureOpacity: 0.3,
		MaxPressureOpacity: 1,
		SizeVariance:       1,
		StartTaperSize:     1,
	}
}

// Validate checks the constructor-time contracts: Size and Spacing must
// be positive. All other parameters are clamped or guarded inside the
// draw path and cannot fail.
func (b *Brush) Validate() error {
	if b.Size <= 0 {
		return fmt.Errorf("%w (got %v)", ErrBrushSize, b.Size)
	}
	if b.Spacing <= 0 {
		return fmt.Errorf("%w (got %v)", ErrBrushSpacing, b.Spacing)
	}
	return nil
}

// SpacedWidth returns the arc-length distance between consecutive
// stamps. It is derived on every read so mid-stroke changes to Size or
// Spacing take effect for points not yet emitted.
func (b *Brush) SpacedWidth() float64 {
	return b.Size * b.Spacing
}
