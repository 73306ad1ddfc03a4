package paint

import "github.com/google/uuid"

// This file declares the contracts of the external collaborators the
// brush pipeline plugs into. The view/gesture plumbing, the layer and
// history containers, and the geometry tools (crop, lasso, transform
// handles) live outside this package; the pipeline only depends on
// these interfaces.

// GestureSource delivers the touch lifecycle of one gesture to a
// painting tool. Implementations sit in the platform view layer.
type GestureSource interface {
	// SetHandler installs the receiver of the begin/move/end calls.
	SetHandler(h GestureHandler)
}

// GestureHandler consumes one gesture. StrokeTool satisfies it modulo
// Begin's error return; adapters decide how a rejected brush
// configuration surfaces to the user.
type GestureHandler interface {
	Begin(s TouchSample) error
	Move(s TouchSample)
	End(s TouchSample)
}

// Layer is one raster layer of the external layered-canvas container.
// The pipeline paints into a layer's surface; ordering, visibility and
// inter-layer compositing are the container's business.
type Layer interface {
	Surface() Surface
	Opacity() float64
	Visible() bool
}

// History is the undo container boundary. The stroke tool reports
// completed strokes through StrokeRecorder; History additionally lets
// tools revert them.
type History interface {
	StrokeRecorder
	Undo() (uuid.UUID, bool)
	Redo() (uuid.UUID, bool)
}

// SelectionMask answers whether a surface point is paintable under the
// active selection (lasso, pen, or flood-fill based). A nil mask means
// everything is paintable; the pipeline itself never constructs masks.
type SelectionMask interface {
	Contains(x, y float64) bool
	Bounds() Rect
}
