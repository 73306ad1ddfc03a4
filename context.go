package paint

import (
	"image"
	"math"
)

// Context is the software Canvas implementation. It maintains a pixmap,
// a transform stack, a rectangular clip, and the active blend mode, and
// rasterizes fills and image draws on the CPU with anti-aliased edges.
//
// Context is not safe for concurrent use; like the rest of the pipeline
// it is owned by a single gesture at a time.
type Context struct {
	pixmap *Pixmap
	matrix Matrix
	blend  BlendMode
	clip   image.Rectangle

	stack []contextState
}

// contextState is one Save/Restore frame.
type contextState struct {
	matrix Matrix
	clip   image.Rectangle
}

// Ensure Context satisfies the pipeline's drawing contract.
var _ Surface = (*Context)(nil)

// NewContext creates a software canvas with the given dimensions.
// Optional ContextOption arguments customize the target:
//
//	// Fresh transparent surface
//	dc := paint.NewContext(800, 600)
//
//	// Paint onto an existing pixmap (e.g. a layer of the editor)
//	dc := paint.NewContext(800, 600, paint.WithPixmap(layer))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	return &Context{
		pixmap: pixmap,
		matrix: Identity(),
		blend:  BlendNormal,
		clip:   image.Rect(0, 0, pixmap.Width(), pixmap.Height()),
		stack:  make([]contextState, 0, 8),
	}
}

// Width returns the width of the target surface in pixels.
func (c *Context) Width() int {
	return c.pixmap.Width()
}

// Height returns the height of the target surface in pixels.
func (c *Context) Height() int {
	return c.pixmap.Height()
}

// Pixmap returns the target surface.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Save implements Canvas.
func (c *Context) Save() {
	c.stack = append(c.stack, contextState{matrix: c.matrix, clip: c.clip})
}

// Restore implements Canvas. Restoring with an empty stack is a no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = top.matrix
	c.clip = top.clip
}

// Translate implements Canvas.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translation(x, y))
}

// Rotate implements Canvas.
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotation(angle))
}

// Scale implements Canvas.
func (c *Context) Scale(sx, sy float64) {
	c.matrix = c.matrix.Multiply(Scaling(sx, sy))
}

// SetBlendMode implements Canvas.
func (c *Context) SetBlendMode(mode BlendMode) {
	c.blend = mode
}

// BlendModeNow returns the active blend mode.
func (c *Context) BlendModeNow() BlendMode {
	return c.blend
}

// ClipRect implements Canvas. The local-space rectangle is transformed
// to device space and its axis-aligned bounds intersected with the
// current clip.
func (c *Context) ClipRect(x, y, w, h float64) {
	c.clip = c.clip.Intersect(c.deviceBounds(x, y, x+w, y+h))
}

// FillCircle implements Canvas.
func (c *Context) FillCircle(cx, cy, r float64, pat Pattern, alpha uint8) {
	if r <= 0 || pat == nil || alpha == 0 {
		return
	}
	bounds := c.deviceBounds(cx-r, cy-r, cx+r, cy+r).Intersect(c.clip)
	if bounds.Empty() {
		return
	}

	inv := c.matrix.Invert()
	// One device pixel measured in local units, for the AA ramp.
	aa := 1.0 / c.matrix.ScaleMagnitude()
	opacity := float64(alpha) / 255

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			local := inv.TransformPoint(Point{X: float64(px) + 0.5, Y: float64(py) + 0.5})
			d := math.Hypot(local.X-cx, local.Y-cy)
			coverage := clamp01((r-d)/aa + 0.5)
			if coverage <= 0 {
				continue
			}
			col := pat.ColorAt(local.X, local.Y)
			col.A *= coverage * opacity
			c.pixmap.BlendPixel(px, py, col, c.blend)
		}
	}
}

// FillRect implements Canvas.
func (c *Context) FillRect(x, y, w, h float64, pat Pattern, alpha uint8) {
	if w <= 0 || h <= 0 || pat == nil || alpha == 0 {
		return
	}
	bounds := c.deviceBounds(x, y, x+w, y+h).Intersect(c.clip)
	if bounds.Empty() {
		return
	}

	inv := c.matrix.Invert()
	aa := 1.0 / c.matrix.ScaleMagnitude()
	opacity := float64(alpha) / 255

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			local := inv.TransformPoint(Point{X: float64(px) + 0.5, Y: float64(py) + 0.5})
			cov := rectCoverage(local.X-x, w, aa) * rectCoverage(local.Y-y, h, aa)
			if cov <= 0 {
				continue
			}
			col := pat.ColorAt(local.X, local.Y)
			col.A *= cov * opacity
			c.pixmap.BlendPixel(px, py, col, c.blend)
		}
	}
}

// DrawPixmap implements Canvas. The image is sampled bilinearly through
// the inverse transform; pixels outside the image read as transparent,
// which anti-aliases the edges for free.
func (c *Context) DrawPixmap(img *Pixmap, x, y float64, tint RGBA, alpha uint8) {
	if img == nil || alpha == 0 {
		return
	}
	w := float64(img.Width())
	h := float64(img.Height())
	if w <= 0 || h <= 0 {
		return
	}
	bounds := c.deviceBounds(x, y, x+w, y+h).Intersect(c.clip)
	if bounds.Empty() {
		return
	}

	inv := c.matrix.Invert()
	opacity := float64(alpha) / 255

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			local := inv.TransformPoint(Point{X: float64(px) + 0.5, Y: float64(py) + 0.5})
			col := img.Sample(local.X-x, local.Y-y).Modulate(tint)
			if col.A <= 0 {
				continue
			}
			col.A *= opacity
			c.pixmap.BlendPixel(px, py, col, c.blend)
		}
	}
}

// deviceBounds returns the pixel bounding box of a local-space
// rectangle under the current transform, padded by one pixel for the
// anti-aliasing ramp.
func (c *Context) deviceBounds(x0, y0, x1, y1 float64) image.Rectangle {
	corners := [4]Point{
		c.matrix.TransformPoint(Point{X: x0, Y: y0}),
		c.matrix.TransformPoint(Point{X: x1, Y: y0}),
		c.matrix.TransformPoint(Point{X: x0, Y: y1}),
		c.matrix.TransformPoint(Point{X: x1, Y: y1}),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, p := range corners[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX))-1,
		int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1,
		int(math.Ceil(maxY))+1,
	)
}

// rectCoverage computes the AA coverage of a coordinate within [0, extent]
// with a ramp of width aa on both edges.
func rectCoverage(v, extent, aa float64) float64 {
	return clamp01(v/aa+0.5) * clamp01((extent-v)/aa+0.5)
}
