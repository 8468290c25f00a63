package widget

import "image/color"

// Darken scales the color toward black by factor (0 = unchanged, 1 = black).
// Alpha is preserved.
func Darken(c color.RGBA, factor float64) color.RGBA {
	factor = clamp01(factor)
	return color.RGBA{
		R: uint8(float64(c.R) * (1 - factor)),
		G: uint8(float64(c.G) * (1 - factor)),
		B: uint8(float64(c.B) * (1 - factor)),
		A: c.A,
	}
}

// Brighten scales the color toward white by factor. Alpha is preserved.
func Brighten(c color.RGBA, factor float64) color.RGBA {
	factor = clamp01(factor)
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// Saturate pushes the color channels away from the gray axis by factor,
// approximating an HSL saturation boost without changing hue or alpha.
func Saturate(c color.RGBA, factor float64) color.RGBA {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	maxc := max3(r, g, b)
	minc := min3(r, g, b)
	l := (maxc + minc) / 2
	d := maxc - minc
	var s float64
	if d != 0 {
		denom := 1 - abs(2*l-1)
		if denom != 0 {
			s = d / denom
		}
	}
	s = clamp01(s + factor)
	return color.RGBA{
		R: channel(l + (r-l)*(1+s)),
		G: channel(l + (g-l)*(1+s)),
		B: channel(l + (b-l)*(1+s)),
		A: c.A,
	}
}

func channel(v float64) uint8 { return uint8(clamp01(v) * 255) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
