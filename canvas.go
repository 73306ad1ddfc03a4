package paint

// Canvas is the abstract 2D raster surface the brush pipeline draws
// against. It mirrors the platform canvas contract of mobile 2D APIs:
// a transform stack, filled-shape and image drawing, a blend mode, and
// rectangular clipping. Implementations only ever write pixels; the
// pipeline never reads them back.
//
// Context is the in-package software implementation. Platform backends
// (GPU surfaces, recording canvases) can satisfy the same interface.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()
	// Restore pops the state saved by the matching Save call.
	Restore()

	// Translate moves the origin of the coordinate system.
	Translate(x, y float64)
	// Rotate rotates the coordinate system by angle radians.
	Rotate(angle float64)
	// Scale scales the coordinate system. Non-uniform scales are
	// allowed.
	Scale(sx, sy float64)

	// SetBlendMode selects how subsequent draws composite onto the
	// surface. It is not part of the Save/Restore state.
	SetBlendMode(mode BlendMode)

	// FillCircle fills a circle of radius r centered at (cx, cy) in
	// local coordinates with the pattern, modulated by alpha.
	FillCircle(cx, cy, r float64, pat Pattern, alpha uint8)
	// FillRect fills an axis-aligned local-space rectangle with the
	// pattern, modulated by alpha.
	FillRect(x, y, w, h float64, pat Pattern, alpha uint8)
	// DrawPixmap draws img with its top-left corner at (x, y) in local
	// coordinates, tinted channel-wise by tint and modulated by alpha.
	DrawPixmap(img *Pixmap, x, y float64, tint RGBA, alpha uint8)

	// ClipRect intersects the clip with a local-space rectangle.
	ClipRect(x, y, w, h float64)
}

// Surface is the target a painting tool renders into, pairing a Canvas
// with the pixel dimensions the external layer container needs for
// dirty-region accounting.
type Surface interface {
	Canvas
	Width() int
	Height() int
}
