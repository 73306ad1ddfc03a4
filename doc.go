// Package paint implements the brush stroke pipeline of a mobile
// image-editing component library: layered painting primitives built
// around three cooperating parts.
//
//   - A line smoother that converts discrete, noisy touch samples into a
//     stream of evenly spaced points along a continuous curve
//     (LineSmoother, BezierSmoother).
//   - A drawing engine that, for every emitted point, resolves the stamp
//     transform and composite state (pressure, taper, speed-reactive
//     variance, hue flow, jitter, scatter) from the stroke history
//     (Engine).
//   - Stamp renderers that paint one mark onto the target surface under a
//     blend mode (ProceduralStamp, BitmapStamp, SpriteStamp).
//
// The pipeline is wired together by StrokeTool, which maps the touch
// lifecycle (begin, move, end) onto the smoother and the engine:
//
//	brush := paint.NewBrush()
//	brush.Size = 40
//	brush.Color = paint.Red
//
//	dc := paint.NewContext(512, 512)
//	tool := paint.NewStrokeTool(brush, dc)
//
//	tool.Begin(paint.TouchSample{X: 10, Y: 10, Pressure: 1})
//	tool.Move(paint.TouchSample{X: 60, Y: 40, Pressure: 1, DX: 50, DY: 30})
//	tool.End(paint.TouchSample{X: 90, Y: 90, Pressure: 1, DX: 30, DY: 50})
//
// The whole pipeline is single-threaded and call-stack driven: one
// gesture fully owns its Brush, Engine and Smoother until it ends. For
// multi-finger drawing create one tool per finger.
//
// By default paint produces no log output. Call SetLogger to enable
// structured logging of cache rebuilds and stroke lifecycle events.
package paint
