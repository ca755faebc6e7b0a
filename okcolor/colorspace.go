// based on:
// https://bottosson.github.io/posts/oklab/
// https://bottosson.github.io/posts/colorwrong/#what-can-we-do%3F

package okcolor

import "math"

// AchromaticChroma is the chroma below which a colour is treated as grey:
// its hue is reported as 0 instead of the angle of rounding noise.
const AchromaticChroma = 1e-7

type Lab struct {
	L float64 // perceived lightness
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

func (lc Lab) LinearRGB() LinearRGB {
	var l, m, s float64
	l = lc.L + 0.3963377774*lc.A + 0.2158037573*lc.B
	l = l * l * l
	m = lc.L - 0.1055613458*lc.A - 0.0638541728*lc.B
	m = m * m * m
	s = lc.L - 0.0894841775*lc.A - 1.2914855480*lc.B
	s = s * s * s

	return LinearRGB{
		R: +4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

func (lc Lab) chroma() float64 {
	return math.Sqrt((lc.A * lc.A) + (lc.B * lc.B))
}

func (lc Lab) LCh() LCh {
	c := lc.chroma()
	if c < AchromaticChroma {
		return LCh{L: lc.L, C: c}
	}
	return LCh{
		L: lc.L,
		C: c,
		H: math.Atan2(lc.B, lc.A),
	}
}

type LCh struct {
	L float64 // perceived lightness
	C float64 // chroma
	H float64 // hue, radians
}

func (lc LCh) LinearRGB() LinearRGB {
	return lc.Lab().LinearRGB()
}

func (lc LCh) Lab() Lab {
	return Lab{
		L: lc.L,
		A: lc.C * math.Cos(lc.H),
		B: lc.C * math.Sin(lc.H),
	}
}
