package okcolor

import "math"

// LinearRGB is a colour in linear-light sRGB primaries. Channels are not clamped.
type LinearRGB struct {
	R float64
	G float64
	B float64
}

func (c LinearRGB) Lab() Lab {
	l := math.Cbrt(0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B)
	m := math.Cbrt(0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B)
	s := math.Cbrt(0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

func (c LinearRGB) HSL() HSL {
	return c.Lab().HSL()
}

func (c LinearRGB) HSV() HSV {
	return c.Lab().HSV()
}

func (c LinearRGB) max() float64 {
	return max(c.R, c.G, c.B)
}
