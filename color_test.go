package paint

import (
	"image/color"
	"testing"
)

func TestARGB(t *testing.T) {
	c := ARGB(255, 255, 0, 0)
	if c != Red {
		t.Errorf("ARGB(255, 255, 0, 0) = %+v, want Red", c)
	}
	if got := ARGB(0, 255, 255, 255).A; got != 0 {
		t.Errorf("alpha = %v, want 0", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#F00", Red},
		{"short rgba", "00F8", RGBA{B: 1, A: 136.0 / 255}},
		{"long rgb", "#00FF00", Green},
		{"long rgba", "0000FF80", RGBA{B: 1, A: 128.0 / 255}},
		{"no hash", "FF0000", Red},
		{"malformed falls back to black", "#12345", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !approxEq(got.R, tt.want.R, 1e-9) || !approxEq(got.G, tt.want.G, 1e-9) ||
				!approxEq(got.B, tt.want.B, 1e-9) || !approxEq(got.A, tt.want.A, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGBA
	}{
		{"opaque red", color.NRGBA{R: 255, A: 255}, Red},
		{"fully transparent", color.NRGBA{}, Transparent},
		{"half alpha keeps straight channels", color.NRGBA{R: 255, A: 128}, RGBA{R: 1, A: 128.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.in)
			if !approxEq(got.R, tt.want.R, 0.01) || !approxEq(got.A, tt.want.A, 0.01) {
				t.Errorf("FromColor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRotateHue(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		deg  float64
		want RGBA
	}{
		{"zero is identity", Red, 0, Red},
		{"red to green", Red, 120, Green},
		{"red to blue", Red, 240, Blue},
		{"full turn", Red, 360, Red},
		{"negative wraps", Red, -120, Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.RotateHue(tt.deg)
			if !approxEq(got.R, tt.want.R, 1e-6) || !approxEq(got.G, tt.want.G, 1e-6) ||
				!approxEq(got.B, tt.want.B, 1e-6) {
				t.Errorf("RotateHue(%v) = %+v, want %+v", tt.deg, got, tt.want)
			}
		})
	}

	t.Run("alpha preserved", func(t *testing.T) {
		got := Red.WithAlpha(0.3).RotateHue(90)
		if got.A != 0.3 {
			t.Errorf("alpha = %v, want 0.3", got.A)
		}
	})

	t.Run("gray is hue-stable", func(t *testing.T) {
		gray := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
		got := gray.RotateHue(73)
		if !approxEq(got.R, 0.5, 1e-6) || !approxEq(got.G, 0.5, 1e-6) || !approxEq(got.B, 0.5, 1e-6) {
			t.Errorf("rotated gray = %+v, want unchanged", got)
		}
	})
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if got != want {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
	if Black.Lerp(White, 0) != Black || Black.Lerp(White, 1) != White {
		t.Error("Lerp endpoints do not match inputs")
	}
}

func TestModulate(t *testing.T) {
	c := RGBA{R: 0.8, G: 0.4, B: 0.2, A: 1}
	got := c.Modulate(RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.5})
	want := RGBA{R: 0.4, G: 0.2, B: 0.1, A: 0.5}
	if !approxEq(got.R, want.R, 1e-9) || !approxEq(got.G, want.G, 1e-9) ||
		!approxEq(got.B, want.B, 1e-9) || !approxEq(got.A, want.A, 1e-9) {
		t.Errorf("Modulate = %+v, want %+v", got, want)
	}

	if c.Modulate(White) != c {
		t.Error("modulating by white must be neutral")
	}
}
