package colorspace

import "math"

// SRGB is a gamma-encoded sRGB colour. Channels are nominally in [0,1].
type SRGB struct {
	R float32
	G float32
	B float32
}

var (
	SRGBWhite  = SRGB{R: 1, G: 1, B: 1}
	SRGBBlack  = SRGB{R: 0, G: 0, B: 0}
	SRGBRed    = SRGB{R: 1, G: 0, B: 0}
	SRGBYellow = SRGB{R: 1, G: 1, B: 0}
	SRGBGreen  = SRGB{R: 0, G: 1, B: 0}
	SRGBAqua   = SRGB{R: 0, G: 1, B: 1}
	SRGBBlue   = SRGB{R: 0, G: 0, B: 1}
	SRGBPurple = SRGB{R: 1, G: 0, B: 1}
)

func (c SRGB) Triple() Triple { return Triple{c.R, c.G, c.B} }

func (c SRGB) SRGB() SRGB { return c }

// RGB decodes the sRGB transfer curve.
func (c SRGB) RGB() RGB {
	return RGB{
		R: toLinear(c.R),
		G: toLinear(c.G),
		B: toLinear(c.B),
	}
}

func (c SRGB) Oklab() Oklab { return c.RGB().Oklab() }
func (c SRGB) Oklch() Oklch { return c.RGB().Oklch() }
func (c SRGB) Okhsl() Okhsl { return c.RGB().Okhsl() }
func (c SRGB) Okhsv() Okhsv { return c.RGB().Okhsv() }
func (c SRGB) XYZ() XYZ     { return c.RGB().XYZ() }
func (c SRGB) Lab() Lab     { return c.RGB().Lab() }

func (c SRGB) HSL() HSL {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	hi, lo := max(r, g, b), min(r, g, b)

	l := (hi + lo) / 2
	d := hi - lo
	if achromatic(hi, lo) {
		return HSL{L: float32(l)}
	}

	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	return HSL{
		H: hexHue(r, g, b, hi, d),
		S: float32(s),
		L: float32(l),
	}
}

func (c SRGB) HSV() HSV {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	hi, lo := max(r, g, b), min(r, g, b)

	if achromatic(hi, lo) {
		return HSV{V: c.maxChannel()}
	}

	d := hi - lo
	return HSV{
		H: hexHue(r, g, b, hi, d),
		S: float32(d / hi),
		V: c.maxChannel(),
	}
}

func (c SRGB) RGBA() (r, g, b, a uint32) {
	return quantize(c.R), quantize(c.G), quantize(c.B), 0xffff
}

func (SRGB) from(c Color) SRGB { return c.SRGB() }

func (SRGB) fromTriple(t Triple) SRGB { return SRGB{R: t[0], G: t[1], B: t[2]} }

func (c SRGB) maxChannel() float32 {
	return max(c.R, c.G, c.B)
}

// achromaticSpread is the channel spread, relative to the larger of 1 and the channel magnitude, below which a colour is grey.
// It sits a few float32 ulps above 1, so white and black that picked up rounding noise on the way through XYZ or Oklab stay
// achromatic instead of dividing noise by noise.
const achromaticSpread = 1e-6

func achromatic(hi, lo float64) bool {
	return hi-lo <= achromaticSpread*max(1, math.Abs(hi), math.Abs(lo))
}

// hexHue is the hue of the RGB hexcone in turns; hi is the largest channel and d the spread between largest and smallest.
func hexHue(r, g, b, hi, d float64) float32 {
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return wrapHue(h / 6)
}

func toLinear(x float32) float32 {
	v := float64(x)
	if v >= 0.04045 {
		return float32(math.Pow((v+0.055)/1.055, 2.4))
	} else {
		return float32(v / 12.92)
	}
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float32) float32 {
	v := float64(x)
	if v >= 0.0031308 {
		return float32(math.Pow(v, pow)*1.055 - 0.055)
	} else {
		return float32(v * 12.92)
	}
}
