package paint

// BlendMode defines how source pixels are combined with destination
// pixels when a stamp is composited onto the target surface.
//
// The set covers what the brush pipeline needs: standard alpha
// compositing, the two separable modes painting tools commonly expose,
// and destination-out for the eraser.
type BlendMode int

const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal BlendMode = iota

	// BlendMultiply multiplies source and destination colors.
	// Result is always darker or equal. Formula: dst * src
	BlendMultiply

	// BlendScreen performs inverse multiply for lighter results.
	// Formula: 1 - (1-dst) * (1-src)
	BlendScreen

	// BlendDstOut removes destination coverage where the source is
	// opaque (Porter-Duff destination-out). The eraser draws with this
	// mode.
	BlendDstOut
)

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendDstOut:
		return "DstOut"
	default:
		return "Unknown"
	}
}

// blendPixel composites src over dst under the given mode. Both colors
// are straight (non-premultiplied); the compositing math runs on
// premultiplied values per the W3C compositing model:
//
//	co = (1 - αs)·cd + (1 - αd)·cs + αs·αd·B(Cs, Cd)
func blendPixel(dst, src RGBA, mode BlendMode) RGBA {
	switch mode {
	case BlendDstOut:
		return RGBA{
			R: dst.R,
			G: dst.G,
			B: dst.B,
			A: dst.A * (1 - src.A),
		}
	case BlendNormal:
		return sourceOver(dst, src)
	case BlendMultiply:
		return separable(dst, src, func(s, d float64) float64 { return s * d })
	case BlendScreen:
		return separable(dst, src, func(s, d float64) float64 { return s + d - s*d })
	default:
		return sourceOver(dst, src)
	}
}

// sourceOver is the standard Porter-Duff over operator.
func sourceOver(dst, src RGBA) RGBA {
	sa := src.A
	if sa <= 0 {
		return dst
	}
	inv := 1 - sa
	outA := sa + dst.A*inv
	if outA <= 0 {
		return Transparent
	}
	return RGBA{
		R: (src.R*sa + dst.R*dst.A*inv) / outA,
		G: (src.G*sa + dst.G*dst.A*inv) / outA,
		B: (src.B*sa + dst.B*dst.A*inv) / outA,
		A: outA,
	}
}

// separable applies a per-channel blend function B and composites the
// result. The blended color replaces the source only where the
// destination has coverage.
func separable(dst, src RGBA, blend func(s, d float64) float64) RGBA {
	if src.A <= 0 {
		return dst
	}
	mixed := RGBA{
		R: (1-dst.A)*src.R + dst.A*blend(src.R, dst.R),
		G: (1-dst.A)*src.G + dst.A*blend(src.G, dst.G),
		B: (1-dst.A)*src.B + dst.A*blend(src.B, dst.B),
		A: src.A,
	}
	return sourceOver(dst, mixed)
}
