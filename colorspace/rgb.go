package colorspace

import "github.com/lucasb-eyer/go-colorful"

// RGB is a colour in linear-light sRGB primaries. It is the main hub of the conversion graph.
type RGB struct {
	R float32
	G float32
	B float32
}

var (
	RGBWhite = RGB{R: 1, G: 1, B: 1}
	RGBBlack = RGB{R: 0, G: 0, B: 0}
)

func (c RGB) Triple() Triple { return Triple{c.R, c.G, c.B} }

// SRGB applies the sRGB transfer curve.
func (c RGB) SRGB() SRGB {
	return SRGB{
		R: fromLinear(c.R),
		G: fromLinear(c.G),
		B: fromLinear(c.B),
	}
}

func (c RGB) RGB() RGB { return c }

func (c RGB) Oklab() Oklab {
	return FromTriple[Oklab](narrow(oklabFromLinear(widen(c.Triple()))))
}

func (c RGB) Oklch() Oklch { return c.Oklab().Oklch() }

func (c RGB) Okhsl() Okhsl {
	t := okhslFromLinear(widen(c.Triple()))
	return Okhsl{H: wrapHue(t[0]), S: float32(t[1]), L: float32(t[2])}
}

func (c RGB) Okhsv() Okhsv {
	t := okhsvFromLinear(widen(c.Triple()))
	return Okhsv{H: wrapHue(t[0]), S: float32(t[1]), V: float32(t[2])}
}

func (c RGB) HSL() HSL { return c.SRGB().HSL() }
func (c RGB) HSV() HSV { return c.SRGB().HSV() }

func (c RGB) XYZ() XYZ {
	x, y, z := colorful.LinearRgbToXyz(float64(c.R), float64(c.G), float64(c.B))
	return XYZ{X: float32(x), Y: float32(y), Z: float32(z)}
}

func (c RGB) Lab() Lab { return c.XYZ().Lab() }

func (c RGB) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (RGB) from(c Color) RGB { return c.RGB() }

func (RGB) fromTriple(t Triple) RGB { return RGB{R: t[0], G: t[1], B: t[2]} }
