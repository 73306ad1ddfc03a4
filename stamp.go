package paint

import (
	"image"
	"math"
	"math/rand/v2"

	xdraw "golang.org/x/image/draw"
)

// Stamper paints one resolved brush mark onto the canvas. The engine
// has already translated, rotated and scaled the canvas so the stamp is
// drawn centered at the local origin; the renderer only supplies the
// shape and the final alpha.
//
// All implementations no-op safely when their source imagery is absent.
type Stamper interface {
	Draw(c Canvas, b *Brush, alpha uint8)
}

// NewStamper creates the renderer matching the stamp configuration.
func NewStamper(s Stamp) Stamper {
	switch s.Kind {
	case StampBitmap:
		if s.Image == nil {
			Logger().Warn("bitmap stamp has no image, strokes will not draw")
		}
		return NewBitmapStamp(s.Image)
	case StampSprite:
		if len(s.Images) == 0 {
			Logger().Warn("sprite stamp has no images, strokes will not draw")
		}
		return NewSpriteStamp(s.Images, s.Mode)
	default:
		return NewProceduralStamp(s.Shape, s.Softness)
	}
}

// ProceduralStamp renders a filled circle or rectangle. The circle
// variant uses a radial gradient fading to transparent over the outer
// softness fraction of the radius; the gradient is rebuilt only when
// size, color or softness change.
type ProceduralStamp struct {
	shape    StampShape
	softness float64

	gradient  *RadialGradient
	solid     *SolidPattern
	lastSize  float64
	lastColor RGBA
}

// NewProceduralStamp creates a procedural stamp renderer.
// Softness is the fraction of the radius that fades to transparent and
// is clamped to [0, 1].
func NewProceduralStamp(shape StampShape, softness float64) *ProceduralStamp {
	return &ProceduralStamp{
		shape:    shape,
		softness: clamp01(softness),
		solid:    NewSolidPattern(Black),
	}
}

// Draw implements Stamper.
func (p *ProceduralStamp) Draw(c Canvas, b *Brush, alpha uint8) {
	r := b.Size / 2
	if r <= 0 {
		return
	}

	if p.shape == ShapeRect {
		p.solid.Color = b.Color
		c.FillRect(-r, -r, b.Size, b.Size, p.solid, alpha)
		return
	}

	if p.gradient == nil || p.lastSize != b.Size || p.lastColor != b.Color {
		p.gradient = softEdgeGradient(r, p.softness, b.Color)
		p.lastSize = b.Size
		p.lastColor = b.Color
		Logger().Debug("procedural stamp gradient rebuilt", "size", b.Size)
	}
	if p.gradient == nil {
		return
	}
	c.FillCircle(0, 0, r, p.gradient, alpha)
}

// BitmapStamp renders a bitmap mark. It keeps one cached copy of the
// source pre-scaled to the brush size, regenerated only when the size
// changes, and draws it centered at the origin tinted channel-wise by
// the brush color.
type BitmapStamp struct {
	src      image.Image
	cached   *Pixmap
	lastSize float64
}

// NewBitmapStamp creates a bitmap stamp renderer. A nil source is
// allowed; the renderer then skips every draw.
func NewBitmapStamp(src image.Image) *BitmapStamp {
	return &BitmapStamp{src: src}
}

// InvalidateScaledCache drops the pre-scaled copy so the next draw
// rebuilds it. Draw detects size changes on its own; this exists for
// callers that replace the source image's content in place.
func (s *BitmapStamp) InvalidateScaledCache() {
	s.cached = nil
}

// Draw implements Stamper.
func (s *BitmapStamp) Draw(c Canvas, b *Brush, alpha uint8) {
	if s.src == nil {
		return
	}
	if s.cached == nil || s.lastSize != b.Size {
		s.cached = scaleToSize(s.src, b.Size)
		s.lastSize = b.Size
		Logger().Debug("bitmap stamp cache rebuilt", "size", b.Size)
	}
	if s.cached == nil {
		return
	}
	drawCentered(c, s.cached, b.Color, alpha)
}

// SpriteStamp renders one of a set of bitmap marks, chosen per stamp
// either uniformly at random or round-robin. It keeps a pre-scaled copy
// of every source, all invalidated together when the brush size
// changes.
type SpriteStamp struct {
	srcs     []image.Image
	cached   []*Pixmap
	lastSize float64
	mode     SpriteMode
	counter  int
}

// NewSpriteStamp creates a sprite-set stamp renderer. An empty source
// set is allowed; the renderer then skips every draw.
func NewSpriteStamp(srcs []image.Image, mode SpriteMode) *SpriteStamp {
	return &SpriteStamp{srcs: srcs, mode: mode}
}

// SetMode switches the selection mode and resets the round-robin
// counter.
func (s *SpriteStamp) SetMode(mode SpriteMode) {
	s.mode = mode
	s.counter = 0
}

// InvalidateScaledCache drops every pre-scaled copy so the next draw
// rebuilds them.
func (s *SpriteStamp) InvalidateScaledCache() {
	s.cached = nil
}

// Draw implements Stamper.
func (s *SpriteStamp) Draw(c Canvas, b *Brush, alpha uint8) {
	if len(s.srcs) == 0 {
		return
	}
	if s.cached == nil || s.lastSize != b.Size {
		s.cached = make([]*Pixmap, len(s.srcs))
		s.lastSize = b.Size
		Logger().Debug("sprite stamp caches invalidated", "size", b.Size, "count", len(s.srcs))
	}

	var i int
	if s.mode == SpriteRandom {
		i = rand.IntN(len(s.srcs))
	} else {
		i = s.counter % len(s.srcs)
		s.counter++
	}

	if s.cached[i] == nil {
		if s.srcs[i] == nil {
			return
		}
		s.cached[i] = scaleToSize(s.srcs[i], b.Size)
	}
	drawCentered(c, s.cached[i], b.Color, alpha)
}

// drawCentered draws a pixmap centered on the local origin.
func drawCentered(c Canvas, pm *Pixmap, tint RGBA, alpha uint8) {
	if pm == nil {
		return
	}
	c.DrawPixmap(pm, -float64(pm.Width())/2, -float64(pm.Height())/2, tint.WithAlpha(1), alpha)
}

// scaleToSize rescales src so its larger dimension equals size,
// preserving aspect ratio, using the x/image bilinear scaler.
// Returns nil for degenerate inputs.
func scaleToSize(src image.Image, size float64) *Pixmap {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw <= 0 || sh <= 0 || size <= 0 {
		return nil
	}
	scale := size / float64(max(sw, sh))
	w := max(1, int(math.Round(float64(sw)*scale)))
	h := max(1, int(math.Round(float64(sh)*scale)))

	dst := NewPixmap(w, h)
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}
