package paint

import "github.com/google/uuid"

// StrokeRecorder is the boundary to the external undo-history
// container: it is told when a gesture completes, which stroke it was,
// and which region of the surface it touched.
type StrokeRecorder interface {
	StrokeCompleted(id uuid.UUID, dirty Rect)
}

// SmootherKind selects the resampling strategy of a stroke tool.
type SmootherKind int

const (
	// SmootherBezier resamples along midpoint quadratics (smoothed).
	SmootherBezier SmootherKind = iota
	// SmootherLine resamples along the raw polyline (no smoothing).
	SmootherLine
)

// StrokeTool wires the touch lifecycle to the smoother and the engine.
// It is the external-facing glue of the pipeline: the gesture
// dispatcher calls Begin, Move and End with raw samples, and the tool
// drives Smoother emission into Engine draws against its canvas.
//
// One tool instance serves one gesture at a time. Multi-finger drawing
// requires one tool (with its own brush and engine) per finger.
type StrokeTool struct {
	brush    *Brush
	canvas   Canvas
	engine   *Engine
	smoother Smoother
	recorder StrokeRecorder

	id     uuid.UUID
	dirty  Rect
	marked bool
	active bool
}

// NewStrokeTool creates a stroke tool painting onto canvas with the
// given brush. The stamp renderer is derived from the brush's stamp
// configuration and the Bezier smoother is used; see SetSmoother and
// Engine.SetStamper for overrides.
func NewStrokeTool(brush *Brush, canvas Canvas) *StrokeTool {
	t := &StrokeTool{
		brush:  brush,
		canvas: canvas,
		engine: NewEngine(NewStamper(brush.Stamp)),
	}
	t.SetSmoother(SmootherBezier)
	return t
}

// Engine returns the tool's drawing engine, e.g. to toggle eraser mode.
func (t *StrokeTool) Engine() *Engine {
	return t.engine
}

// Brush returns the tool's brush.
func (t *StrokeTool) Brush() *Brush {
	return t.brush
}

// SetRecorder sets the undo-history boundary. A nil recorder is valid
// and disables completion reporting.
func (t *StrokeTool) SetRecorder(r StrokeRecorder) {
	t.recorder = r
}

// SetSmoother selects the resampling strategy. Only call between
// strokes.
func (t *StrokeTool) SetSmoother(kind SmootherKind) {
	if kind == SmootherLine {
		t.smoother = NewLineSmoother(t.onDrawPoint)
	} else {
		t.smoother = NewBezierSmoother(t.onDrawPoint)
	}
}

// Begin starts a stroke. It validates the brush configuration, which is
// the only failure point of the pipeline; once Begin succeeds, Move and
// End cannot fail.
func (t *StrokeTool) Begin(s TouchSample) error {
	if err := t.brush.Validate(); err != nil {
		return err
	}
	t.id = uuid.New()
	t.dirty = Rect{}
	t.marked = false
	t.active = true

	Logger().Debug("stroke begin", "id", t.id, "pressure", s.Pressure)

	t.engine.OnMoveBegin(s, t.brush)
	t.smoother.SetFirstPoint(s, t.brush)
	return nil
}

// Move extends the active stroke with the next raw sample. Calls
// before Begin are ignored.
func (t *StrokeTool) Move(s TouchSample) {
	if !t.active {
		return
	}
	t.engine.OnMove(s, t.brush)
	t.smoother.AddPoints(s, t.brush)
}

// End finishes the stroke: the smoother drains its remaining path, the
// engine finalizes its state, and the completed stroke is reported to
// the recorder with the dirty region it touched.
func (t *StrokeTool) End(s TouchSample) {
	if !t.active {
		return
	}
	t.smoother.SetLastPoint(s, t.brush)
	t.engine.OnMoveEnded(s, t.brush)
	t.active = false

	Logger().Debug("stroke end", "id", t.id)

	if t.recorder != nil && t.marked {
		t.recorder.StrokeCompleted(t.id, t.dirty.Expand(t.brush.Size))
	}
}

// Cancel discards the active stroke without draining the smoother.
// The engine still restores the brush state it captured at Begin.
func (t *StrokeTool) Cancel(s TouchSample) {
	if !t.active {
		return
	}
	t.engine.OnMoveEnded(s, t.brush)
	t.active = false
}

// onDrawPoint receives each smoothed point and forwards it to the
// engine, tracking the dirty bounds of the stroke on the way.
func (t *StrokeTool) onDrawPoint(x, y, angle float64, remaining int, last bool) {
	p := Point{X: x, Y: y}
	if !t.marked {
		t.dirty = Rect{Min: p, Max: p}
		t.marked = true
	} else {
		t.dirty = t.dirty.Union(Rect{Min: p, Max: p})
	}
	t.engine.Draw(x, y, angle, t.canvas, t.brush, remaining)
}
