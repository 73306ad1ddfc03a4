package paint

import "testing"

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendNormal, "Normal"},
		{BlendMultiply, "Multiply"},
		{BlendScreen, "Screen"},
		{BlendDstOut, "DstOut"},
		{BlendMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestBlendPixel(t *testing.T) {
	colorsEq := func(a, b RGBA) bool {
		return approxEq(a.R, b.R, 1e-9) && approxEq(a.G, b.G, 1e-9) &&
			approxEq(a.B, b.B, 1e-9) && approxEq(a.A, b.A, 1e-9)
	}

	tests := []struct {
		name string
		dst  RGBA
		src  RGBA
		mode BlendMode
		want RGBA
	}{
		{
			name: "normal opaque src replaces dst",
			dst:  Red,
			src:  Blue,
			mode: BlendNormal,
			want: Blue,
		},
		{
			name: "normal half alpha mixes",
			dst:  White,
			src:  Black.WithAlpha(0.5),
			mode: BlendNormal,
			want: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
		},
		{
			name: "normal transparent src keeps dst",
			dst:  Green,
			src:  Transparent,
			mode: BlendNormal,
			want: Green,
		},
		{
			name: "normal onto transparent keeps src color",
			dst:  Transparent,
			src:  Red.WithAlpha(0.5),
			mode: BlendNormal,
			want: Red.WithAlpha(0.5),
		},
		{
			name: "multiply darkens",
			dst:  RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
			src:  RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
			mode: BlendMultiply,
			want: RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1},
		},
		{
			name: "multiply by white is neutral",
			dst:  RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1},
			src:  White,
			mode: BlendMultiply,
			want: RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1},
		},
		{
			name: "multiply over empty dst acts like normal",
			dst:  Transparent,
			src:  RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
			mode: BlendMultiply,
			want: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
		},
		{
			name: "screen lightens",
			dst:  RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
			src:  RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1},
			mode: BlendScreen,
			want: RGBA{R: 0.75, G: 0.75, B: 0.75, A: 1},
		},
		{
			name: "screen by black is neutral",
			dst:  RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1},
			src:  Black,
			mode: BlendScreen,
			want: RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1},
		},
		{
			name: "dstout full erases",
			dst:  Red,
			src:  White,
			mode: BlendDstOut,
			want: Red.WithAlpha(0),
		},
		{
			name: "dstout half halves coverage",
			dst:  Red,
			src:  White.WithAlpha(0.5),
			mode: BlendDstOut,
			want: Red.WithAlpha(0.5),
		},
		{
			name: "dstout ignores src color",
			dst:  Green.WithAlpha(0.8),
			src:  Blue.WithAlpha(0.25),
			mode: BlendDstOut,
			want: Green.WithAlpha(0.6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blendPixel(tt.dst, tt.src, tt.mode)
			if !colorsEq(got, tt.want) {
				t.Errorf("blendPixel(%+v, %+v, %v) = %+v, want %+v",
					tt.dst, tt.src, tt.mode, got, tt.want)
			}
		})
	}
}
