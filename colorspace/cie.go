package colorspace

import "github.com/lucasb-eyer/go-colorful"

// XYZ is a CIE 1931 XYZ colour under D65, scaled so that sRGB white has Y = 1.
type XYZ struct {
	X float32
	Y float32
	Z float32
}

var (
	XYZWhite = XYZ{X: 0.95045593, Y: 1, Z: 1.0890578}
	XYZBlack = XYZ{X: 0, Y: 0, Z: 0}
)

func (c XYZ) Triple() Triple { return Triple{c.X, c.Y, c.Z} }

func (c XYZ) SRGB() SRGB { return c.RGB().SRGB() }

func (c XYZ) RGB() RGB {
	r, g, b := colorful.XyzToLinearRgb(float64(c.X), float64(c.Y), float64(c.Z))
	return RGB{R: float32(r), G: float32(g), B: float32(b)}
}

func (c XYZ) Oklab() Oklab { return c.RGB().Oklab() }
func (c XYZ) Oklch() Oklch { return c.RGB().Oklch() }
func (c XYZ) Okhsl() Okhsl { return c.RGB().Okhsl() }
func (c XYZ) Okhsv() Okhsv { return c.RGB().Okhsv() }
func (c XYZ) HSL() HSL     { return c.SRGB().HSL() }
func (c XYZ) HSV() HSV     { return c.SRGB().HSV() }
func (c XYZ) XYZ() XYZ     { return c }

// Lab is relative to the white of the sRGB matrix, so XYZWhite maps to L=1, a=b=0.
func (c XYZ) Lab() Lab {
	l, a, b := colorful.XyzToLabWhiteRef(float64(c.X), float64(c.Y), float64(c.Z), whiteRef())
	return Lab{L: float32(l), A: float32(a), B: float32(b)}
}

func (c XYZ) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (XYZ) from(c Color) XYZ { return c.XYZ() }

func (XYZ) fromTriple(t Triple) XYZ { return XYZ{X: t[0], Y: t[1], Z: t[2]} }

// whiteRef is the XYZ of linear RGB (1,1,1), computed with the same matrix as RGB.XYZ so white lands exactly on a=b=0.
func whiteRef() [3]float64 {
	x, y, z := colorful.LinearRgbToXyz(1, 1, 1)
	return [3]float64{x, y, z}
}

// Lab is CIE L*a*b* with L in [0,1] (go-colorful's scaling) relative to the sRGB white point.
type Lab struct {
	L float32
	A float32
	B float32
}

var (
	LabWhite = Lab{L: 1, A: 0, B: 0}
	LabBlack = Lab{L: 0, A: 0, B: 0}
)

func (c Lab) Triple() Triple { return Triple{c.L, c.A, c.B} }

func (c Lab) SRGB() SRGB   { return c.XYZ().SRGB() }
func (c Lab) RGB() RGB     { return c.XYZ().RGB() }
func (c Lab) Oklab() Oklab { return c.XYZ().Oklab() }
func (c Lab) Oklch() Oklch { return c.XYZ().Oklch() }
func (c Lab) Okhsl() Okhsl { return c.XYZ().Okhsl() }
func (c Lab) Okhsv() Okhsv { return c.XYZ().Okhsv() }
func (c Lab) HSL() HSL     { return c.XYZ().HSL() }
func (c Lab) HSV() HSV     { return c.XYZ().HSV() }

func (c Lab) XYZ() XYZ {
	x, y, z := colorful.LabToXyzWhiteRef(float64(c.L), float64(c.A), float64(c.B), whiteRef())
	return XYZ{X: float32(x), Y: float32(y), Z: float32(z)}
}

func (c Lab) Lab() Lab { return c }

func (c Lab) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (Lab) from(c Color) Lab { return c.Lab() }

func (Lab) fromTriple(t Triple) Lab { return Lab{L: t[0], A: t[1], B: t[2]} }
