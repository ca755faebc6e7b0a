package colorspace

import "math"

// HSL is the classic hue/saturation/lightness bi-cone over gamma-encoded sRGB. Hue is in turns.
type HSL struct {
	H float32
	S float32
	L float32
}

var (
	HSLWhite = HSL{H: 0, S: 0, L: 1}
	HSLBlack = HSL{H: 0, S: 0, L: 0}
)

func (c HSL) Triple() Triple { return Triple{c.H, c.S, c.L} }

func (c HSL) SRGB() SRGB {
	if c.S == 0 {
		return SRGB{R: c.L, G: c.L, B: c.L}
	}

	h, s, l := float64(c.H), float64(c.S), float64(c.L)

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return SRGB{
		R: float32(hueToChannel(p, q, h+1.0/3)),
		G: float32(hueToChannel(p, q, h)),
		B: float32(hueToChannel(p, q, h-1.0/3)),
	}
}

func (c HSL) RGB() RGB     { return c.SRGB().RGB() }
func (c HSL) Oklab() Oklab { return c.SRGB().Oklab() }
func (c HSL) Oklch() Oklch { return c.SRGB().Oklch() }
func (c HSL) Okhsl() Okhsl { return c.SRGB().Okhsl() }
func (c HSL) Okhsv() Okhsv { return c.SRGB().Okhsv() }
func (c HSL) HSL() HSL     { return c }
func (c HSL) HSV() HSV     { return c.SRGB().HSV() }
func (c HSL) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c HSL) Lab() Lab     { return c.SRGB().Lab() }

func (c HSL) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (HSL) from(c Color) HSL { return c.HSL() }

func (HSL) fromTriple(t Triple) HSL { return HSL{H: t[0], S: t[1], L: t[2]} }

// hueToChannel evaluates one channel of the HSL bi-cone at hue t (turns, any range).
func hueToChannel(p, q, t float64) float64 {
	t -= math.Floor(t)
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HSV is the hue/saturation/value hexcone over gamma-encoded sRGB. Hue is in turns.
type HSV struct {
	H float32
	S float32
	V float32
}

var (
	HSVWhite = HSV{H: 0, S: 0, V: 1}
	HSVBlack = HSV{H: 0, S: 0, V: 0}
)

func (c HSV) Triple() Triple { return Triple{c.H, c.S, c.V} }

func (c HSV) SRGB() SRGB {
	h, s, v := float64(c.H), float64(c.S), float64(c.V)

	i := math.Floor(h * 6)
	f := h*6 - i
	p := float32(v * (1 - s))
	q := float32(v * (1 - f*s))
	t := float32(v * (1 - (1-f)*s))

	switch sector(i) {
	case 0:
		return SRGB{R: c.V, G: t, B: p}
	case 1:
		return SRGB{R: q, G: c.V, B: p}
	case 2:
		return SRGB{R: p, G: c.V, B: t}
	case 3:
		return SRGB{R: p, G: q, B: c.V}
	case 4:
		return SRGB{R: t, G: p, B: c.V}
	default:
		return SRGB{R: c.V, G: p, B: q}
	}
}

func (c HSV) RGB() RGB     { return c.SRGB().RGB() }
func (c HSV) Oklab() Oklab { return c.SRGB().Oklab() }
func (c HSV) Oklch() Oklch { return c.SRGB().Oklch() }
func (c HSV) Okhsl() Okhsl { return c.SRGB().Okhsl() }
func (c HSV) Okhsv() Okhsv { return c.SRGB().Okhsv() }
func (c HSV) HSL() HSL     { return c.SRGB().HSL() }
func (c HSV) HSV() HSV     { return c }
func (c HSV) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c HSV) Lab() Lab     { return c.SRGB().Lab() }

func (c HSV) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (HSV) from(c Color) HSV { return c.HSV() }

func (HSV) fromTriple(t Triple) HSV { return HSV{H: t[0], S: t[1], V: t[2]} }

// sector maps floor(6h) to one of the six hexcone faces, 0..5, for any hue including negative ones.
func sector(i float64) int {
	m := math.Mod(i, 6)
	if m < 0 {
		m += 6
	}
	return int(m)
}
