package colorspace

import "github.com/amitmaish/tinycolor/okcolor"

// The Oklab family is computed by okcolor. These pairs are the only place the core touches it: linear RGB triples go in,
// perceptual triples come out, and the reverse. okcolor is assumed never to fail for finite input.

func oklabFromLinear(t [3]float64) [3]float64 {
	lc := okcolor.LinearRGB{R: t[0], G: t[1], B: t[2]}.Lab()
	return [3]float64{lc.L, lc.A, lc.B}
}

func linearFromOklab(t [3]float64) [3]float64 {
	return unpackLinear(okcolor.Lab{L: t[0], A: t[1], B: t[2]}.LinearRGB())
}

func okhslFromLinear(t [3]float64) [3]float64 {
	c := okcolor.LinearRGB{R: t[0], G: t[1], B: t[2]}.HSL()
	return [3]float64{c.H, c.S, c.L}
}

func linearFromOkhsl(t [3]float64) [3]float64 {
	return unpackLinear(okcolor.HSL{H: t[0], S: t[1], L: t[2]}.LinearRGB())
}

func okhsvFromLinear(t [3]float64) [3]float64 {
	c := okcolor.LinearRGB{R: t[0], G: t[1], B: t[2]}.HSV()
	return [3]float64{c.H, c.S, c.V}
}

func linearFromOkhsv(t [3]float64) [3]float64 {
	return unpackLinear(okcolor.HSV{H: t[0], S: t[1], V: t[2]}.LinearRGB())
}

func unpackLinear(c okcolor.LinearRGB) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}
