package colorspace

// Okhsl is the Okhsl space: hue in turns, saturation and lightness in [0,1] for colours inside the sRGB gamut.
type Okhsl struct {
	H float32
	S float32
	L float32
}

var (
	OkhslWhite = Okhsl{H: 0, S: 0, L: 1}
	OkhslBlack = Okhsl{H: 0, S: 0, L: 0}
)

func (c Okhsl) Triple() Triple { return Triple{c.H, c.S, c.L} }

func (c Okhsl) SRGB() SRGB { return c.RGB().SRGB() }

func (c Okhsl) RGB() RGB {
	return FromTriple[RGB](narrow(linearFromOkhsl(widen(c.Triple()))))
}

func (c Okhsl) Oklab() Oklab { return c.RGB().Oklab() }
func (c Okhsl) Oklch() Oklch { return c.RGB().Oklch() }
func (c Okhsl) Okhsl() Okhsl { return c }
func (c Okhsl) Okhsv() Okhsv { return c.RGB().Okhsv() }
func (c Okhsl) HSL() HSL     { return c.SRGB().HSL() }
func (c Okhsl) HSV() HSV     { return c.SRGB().HSV() }
func (c Okhsl) XYZ() XYZ     { return c.RGB().XYZ() }
func (c Okhsl) Lab() Lab     { return c.RGB().Lab() }

func (c Okhsl) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (Okhsl) from(c Color) Okhsl { return c.Okhsl() }

func (Okhsl) fromTriple(t Triple) Okhsl { return Okhsl{H: t[0], S: t[1], L: t[2]} }

// Okhsv is the Okhsv space: hue in turns, saturation and value in [0,1] for colours inside the sRGB gamut.
type Okhsv struct {
	H float32
	S float32
	V float32
}

var (
	OkhsvWhite = Okhsv{H: 0, S: 0, V: 1}
	OkhsvBlack = Okhsv{H: 0, S: 0, V: 0}
)

func (c Okhsv) Triple() Triple { return Triple{c.H, c.S, c.V} }

func (c Okhsv) SRGB() SRGB { return c.RGB().SRGB() }

func (c Okhsv) RGB() RGB {
	return FromTriple[RGB](narrow(linearFromOkhsv(widen(c.Triple()))))
}

func (c Okhsv) Oklab() Oklab { return c.RGB().Oklab() }
func (c Okhsv) Oklch() Oklch { return c.RGB().Oklch() }
func (c Okhsv) Okhsl() Okhsl { return c.RGB().Okhsl() }
func (c Okhsv) Okhsv() Okhsv { return c }
func (c Okhsv) HSL() HSL     { return c.SRGB().HSL() }
func (c Okhsv) HSV() HSV     { return c.SRGB().HSV() }
func (c Okhsv) XYZ() XYZ     { return c.RGB().XYZ() }
func (c Okhsv) Lab() Lab     { return c.RGB().Lab() }

func (c Okhsv) RGBA() (r, g, b, a uint32) { return c.SRGB().RGBA() }

func (Okhsv) from(c Color) Okhsv { return c.Okhsv() }

func (Okhsv) fromTriple(t Triple) Okhsv { return Okhsv{H: t[0], S: t[1], V: t[2]} }
