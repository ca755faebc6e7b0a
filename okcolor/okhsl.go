// based on:
// https://bottosson.github.io/posts/colorpicker/

package okcolor

import "math"

// HSL is a colour in the Okhsl space. H is a fraction of a full turn, S and L are in [0,1] for colours inside the sRGB gamut.
type HSL struct {
	H float64
	S float64
	L float64
}

// HSV is a colour in the Okhsv space. Channels follow the same conventions as HSL.
type HSV struct {
	H float64
	S float64
	V float64
}

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

// toe maps Oklab lightness to a lightness estimate closer to CIE L*.
func toe(x float64) float64 {
	return 0.5 * (toeK3*x - toeK1 + math.Sqrt((toeK3*x-toeK1)*(toeK3*x-toeK1)+4*toeK2*toeK3*x))
}

func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// hueTurn returns the hue of the normalized direction (a, b) as a fraction of a turn in [0,1].
func hueTurn(a, b float64) float64 {
	return 0.5 + 0.5*math.Atan2(-b, -a)/math.Pi
}

// stMid returns a smooth approximation of the gamut triangle slopes, used for the mid saturation point.
// a and b must be normalized so a^2 + b^2 == 1
func stMid(a, b float64) (float64, float64) {
	s := 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t := 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))

	return s, t
}

// chromas returns the chroma at saturation 0 (c0), 0.8 (cMid) and 1 (cMax) for lightness L along hue (a, b).
func chromas(L, a, b float64) (c0, cMid, cMax float64) {
	cc := findCusp(a, b)

	cMax = findGamutIntersection(a, b, L, 1, L, cc)
	sMax, tMax := cc.st()

	// scale factor to compensate for the curved part of the gamut shape
	k := cMax / min(L*sMax, (1-L)*tMax)

	sMid, tMid := stMid(a, b)

	// a smooth approximation of the location of the cusp
	ca := L * sMid
	cb := (1 - L) * tMid
	cMid = 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	// for c0 the shape is independent of hue, so ST are constant
	ca = L * 0.4
	cb = (1 - L) * 0.8
	c0 = math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return c0, cMid, cMax
}

const (
	midSat    = 0.8
	midSatInv = 1.25
)

// nearWhite is how close to L=1 a colour may come before its Okhsl saturation is pinned to 0. The gamut narrows to a point
// at white, so chroma left over from float32 rounding would otherwise read as an arbitrary saturation.
const nearWhite = 1e-6

func (lc Lab) HSL() HSL {
	c := lc.chroma()
	l := toe(lc.L)
	if c < AchromaticChroma || lc.L <= 0 || lc.L >= 1-nearWhite {
		return HSL{L: l}
	}

	a_ := lc.A / c
	b_ := lc.B / c

	c0, cMid, cMax := chromas(lc.L, a_, b_)

	var s float64
	if c < cMid {
		k1 := midSat * c0
		k2 := 1 - k1/cMid

		t := c / (k1 + k2*c)
		s = t * midSat
	} else {
		k0 := cMid
		k1 := (1 - midSat) * cMid * cMid * midSatInv * midSatInv / c0
		k2 := 1 - k1/(cMax-cMid)

		t := (c - k0) / (k1 + k2*(c-k0))
		s = midSat + (1-midSat)*t
	}

	return HSL{
		H: hueTurn(a_, b_),
		S: s,
		L: l,
	}
}

func (c HSL) Lab() Lab {
	switch c.L {
	case 1:
		return Lab{L: 1}
	case 0:
		return Lab{}
	}

	L := toeInv(c.L)
	if c.S == 0 {
		return Lab{L: L}
	}

	a_ := math.Cos(2 * math.Pi * c.H)
	b_ := math.Sin(2 * math.Pi * c.H)

	c0, cMid, cMax := chromas(L, a_, b_)

	var C float64
	if c.S < midSat {
		t := midSatInv * c.S

		k1 := midSat * c0
		k2 := 1 - k1/cMid

		C = t * k1 / (1 - k2*t)
	} else {
		t := (c.S - midSat) / (1 - midSat)

		k0 := cMid
		k1 := (1 - midSat) * cMid * cMid * midSatInv * midSatInv / c0
		k2 := 1 - k1/(cMax-cMid)

		C = k0 + t*k1/(1-k2*t)
	}

	return Lab{
		L: L,
		A: C * a_,
		B: C * b_,
	}
}

func (c HSL) LinearRGB() LinearRGB {
	return c.Lab().LinearRGB()
}

const s0 = 0.5

func (lc Lab) HSV() HSV {
	c := lc.chroma()
	if c < AchromaticChroma || lc.L <= 0 {
		return HSV{V: toe(lc.L)}
	}

	a_ := lc.A / c
	b_ := lc.B / c

	sMax, tMax := findCusp(a_, b_).st()
	k := 1 - s0/sMax

	// first we find L_v, C_v, L_vt and C_vt
	t := tMax / (c + lc.L*tMax)
	lV := t * lc.L
	cV := t * c

	lVt := toeInv(lV)
	cVt := cV * lVt / lV

	// we can then use these to invert the step that compensates for the toe and the curved top part of the triangle
	scaleL := vScale(lVt, a_*cVt, b_*cVt)

	L := lc.L / scaleL
	C := c / scaleL

	C = C * toe(L) / L
	L = toe(L)

	// we can now compute v and s
	return HSV{
		H: hueTurn(a_, b_),
		S: (s0 + tMax) * cV / ((tMax * s0) + tMax*k*cV),
		V: L / lV,
	}
}

func (c HSV) Lab() Lab {
	if c.V == 0 {
		return Lab{}
	}

	a_ := math.Cos(2 * math.Pi * c.H)
	b_ := math.Sin(2 * math.Pi * c.H)

	sMax, tMax := findCusp(a_, b_).st()
	k := 1 - s0/sMax

	// first we compute L and V as if the gamut is a perfect triangle
	lV := 1 - c.S*s0/(s0+tMax-tMax*k*c.S)
	cV := c.S * tMax * s0 / (s0 + tMax - tMax*k*c.S)

	L := c.V * lV
	C := c.V * cV

	// then we compensate for both toe and the curved top part of the triangle
	lVt := toeInv(lV)
	cVt := cV * lVt / lV

	lNew := toeInv(L)
	C = C * lNew / L
	L = lNew

	scaleL := vScale(lVt, a_*cVt, b_*cVt)

	return Lab{
		L: L * scaleL,
		A: C * a_ * scaleL,
		B: C * b_ * scaleL,
	}
}

func (c HSV) LinearRGB() LinearRGB {
	return c.Lab().LinearRGB()
}

// vScale is the factor that stretches the top of the Okhsv triangle onto the curved sRGB gamut boundary.
func vScale(L, a, b float64) float64 {
	rgb := Lab{L: L, A: a, B: b}.LinearRGB()
	return math.Cbrt(1 / max(rgb.max(), 0))
}
