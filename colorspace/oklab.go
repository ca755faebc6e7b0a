package colorspace

import (
	"math"

	"github.com/amitmaish/tinycolor/okcolor"
)

// Oklab is a colour in the Oklab perceptual space: L is lightness, A is green/red, B is blue/yellow.
type Oklab struct {
	L float32
	A float32
	B float32
}

var (
	OklabWhite = Oklab{L: 1, A: 0, B: 0}
	OklabBlack = Oklab{L: 0, A: 0, B: 0}
)

func (c Oklab) Triple() Triple { return Triple{c.L, c.A, c.B} }

func (c Oklab) SRGB() SRGB { return c.RGB().SRGB() }

func (c Oklab) RGB() RGB {
	return FromTriple[RGB](narrow(linearFromOklab(widen(c.Triple()))))
}

func (c Oklab) Oklab() Oklab { return c }

// Oklch is the polar form. A chroma below okcolor.AchromaticChroma is reported with hue 0.
func (c Oklab) Oklch() Oklch {
	lch := okcolor.Lab{L: float64(c.L), A: float64(c.A), B: float64(c.B)}.LCh()
	return Oklch{
		L: c.L,
		C: float32(lch.C),
		H: wrapHue(lch.H / (2 * math.Pi)),
	}
}

func (c Oklab) Okhsl() Okhsl { return c.RGB().Okhsl() }
func (c Oklab) Okhsv() Okhsv { return c.RGB().Okhsv() }
func (c Oklab) HSL() HSL     { return c.SRGB().HSL() }
func (c Oklab) HSV() HSV     { return c.SRGB().HSV() }
func (c Oklab) XYZ() XYZ     { return c.RGB().XYZ() }
func (c Oklab) Lab() Lab     { return c.RGB().Lab() }

func (c Oklab) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (Oklab) from(c Color) Oklab { return c.Oklab() }

func (Oklab) fromTriple(t Triple) Oklab { return Oklab{L: t[0], A: t[1], B: t[2]} }

// Oklch is Oklab in polar coordinates: lightness, chroma and hue in turns.
type Oklch struct {
	L float32
	C float32
	H float32
}

var (
	OklchWhite = Oklch{L: 1, C: 0, H: 0}
	OklchBlack = Oklch{L: 0, C: 0, H: 0}
)

func (c Oklch) Triple() Triple { return Triple{c.L, c.C, c.H} }

func (c Oklch) SRGB() SRGB { return c.Oklab().SRGB() }
func (c Oklch) RGB() RGB   { return c.Oklab().RGB() }

func (c Oklch) Oklab() Oklab {
	lab := okcolor.LCh{L: float64(c.L), C: float64(c.C), H: 2 * math.Pi * float64(c.H)}.Lab()
	return Oklab{L: c.L, A: float32(lab.A), B: float32(lab.B)}
}

func (c Oklch) Oklch() Oklch { return c }
func (c Oklch) Okhsl() Okhsl { return c.RGB().Okhsl() }
func (c Oklch) Okhsv() Okhsv { return c.RGB().Okhsv() }
func (c Oklch) HSL() HSL     { return c.SRGB().HSL() }
func (c Oklch) HSV() HSV     { return c.SRGB().HSV() }
func (c Oklch) XYZ() XYZ     { return c.RGB().XYZ() }
func (c Oklch) Lab() Lab     { return c.RGB().Lab() }

func (c Oklch) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (Oklch) from(c Color) Oklch { return c.Oklch() }

func (Oklch) fromTriple(t Triple) Oklch { return Oklch{L: t[0], C: t[1], H: t[2]} }
