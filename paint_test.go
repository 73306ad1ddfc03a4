package paint

// Shared test fixtures: a recording canvas that captures the resolved
// transform and composite state of every stamp instead of rasterizing
// it, so engine behavior can be asserted exactly.

// stampCall is one recorded stamp: the accumulated transform at the
// time of the draw call plus the composite parameters.
type stampCall struct {
	tx, ty   float64
	rotate   float64 // radians
	scaleX   float64
	scaleY   float64
	alpha    uint8
	color    RGBA
	blend    BlendMode
	shape    string
	radius   float64
	imgW     int
	imgH     int
}

// recordingCanvas implements Canvas, recording draw calls.
type recordingCanvas struct {
	calls []stampCall
	cur   stampCall
	stack []stampCall
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{cur: stampCall{scaleX: 1, scaleY: 1}}
}

func (c *recordingCanvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *recordingCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *recordingCanvas) Translate(x, y float64) {
	c.cur.tx += x
	c.cur.ty += y
}

func (c *recordingCanvas) Rotate(angle float64) {
	c.cur.rotate += angle
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.cur.scaleX *= sx
	c.cur.scaleY *= sy
}

func (c *recordingCanvas) SetBlendMode(mode BlendMode) {
	c.cur.blend = mode
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, pat Pattern, alpha uint8) {
	call := c.cur
	call.shape = "circle"
	call.radius = r
	call.alpha = alpha
	if pat != nil {
		call.color = pat.ColorAt(cx, cy)
	}
	c.calls = append(c.calls, call)
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, pat Pattern, alpha uint8) {
	call := c.cur
	call.shape = "rect"
	call.alpha = alpha
	if pat != nil {
		call.color = pat.ColorAt(x+w/2, y+h/2)
	}
	c.calls = append(c.calls, call)
}

func (c *recordingCanvas) DrawPixmap(img *Pixmap, x, y float64, tint RGBA, alpha uint8) {
	call := c.cur
	call.shape = "image"
	call.alpha = alpha
	call.color = tint
	if img != nil {
		call.imgW = img.Width()
		call.imgH = img.Height()
	}
	c.calls = append(c.calls, call)
}

func (c *recordingCanvas) ClipRect(x, y, w, h float64) {}

// approxEq reports whether two floats are within tol of each other.
func approxEq(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
