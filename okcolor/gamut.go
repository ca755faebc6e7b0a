// based on:
// https://bottosson.github.io/posts/gamutclipping/

package okcolor

import "math"

// cusp is the point of maximum chroma of the sRGB gamut triangle for one hue.
type cusp struct {
	L float64
	C float64
}

// st returns the slopes of the gamut triangle edges: S = C/L below the cusp and T = C/(1-L) above it.
func (c cusp) st() (float64, float64) {
	return c.C / c.L, c.C / (1 - c.L)
}

// findGamutIntersection finds intersection of the line defined by
// L = L0 * (1 - t) + t * L1
// C = t * C1
// a and b must be normalized so a^2 + b^2 == 1
func findGamutIntersection(a, b, L1, C1, L0 float64, cc cusp) float64 {
	// find the intersection for upper and lower half separately
	var t float64
	if ((L1-L0)*cc.C - (cc.L-L0)*C1) <= 0 { // lower half

		t = cc.C * L0 / (C1*cc.L + cc.C*(L0-L1))
	} else { // upper half
		// first intersect with triangle
		t = cc.C * (L0 - 1) / (C1*(cc.L-1) + cc.C*(L0-L1))

		// then one step Halley's method
		dL := L1 - L0
		dC := C1

		kL := +0.3963377774*a + 0.2158037573*b
		kM := -0.1055613458*a - 0.0638541728*b
		kS := -0.0894841775*a - 1.2914855480*b

		lDt := dL + dC*kL
		mDt := dL + dC*kM
		sDt := dL + dC*kS

		// if higher accuracy is required, 2 or 3 iterations of the following block can be used
		L := L0*(1-t) + t*L1
		C := t * C1

		l_ := L + C*kL
		l := l_ * l_ * l_
		ldt := 3 * lDt * l_ * l_
		ldt2 := 6 * lDt * lDt * l_

		m_ := L + C*kM
		m := m_ * m_ * m_
		mdt := 3 * mDt * m_ * m_
		mdt2 := 6 * mDt * mDt * m_

		s_ := L + C*kS
		s := s_ * s_ * s_
		sdt := 3 * sDt * s_ * s_
		sdt2 := 6 * sDt * sDt * s_

		r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s - 1
		r1 := 4.0767416621*ldt - 3.3077115913*mdt + 0.2309699292*sdt
		r2 := 4.0767416621*ldt2 - 3.3077115913*mdt2 + 0.2309699292*sdt2

		uR := r1 / (r1*r1 - 0.5*r*r2)
		tR := math.MaxFloat64
		if uR >= 0 {
			tR = -r * uR
		}

		g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s - 1
		g1 := -1.2684380046*ldt + 2.6097574011*mdt - 0.3413193965*sdt
		g2 := -1.2684380046*ldt2 + 2.6097574011*mdt2 - 0.3413193965*sdt2

		uG := g1 / (g1*g1 - 0.5*g*g2)
		tG := math.MaxFloat64
		if uG >= 0 {
			tG = -g * uG
		}

		b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s - 1
		b1 := -0.0041960863*ldt - 0.7034186147*mdt + 1.7076147010*sdt
		b2 := -0.0041960863*ldt2 - 0.7034186147*mdt2 + 1.7076147010*sdt2

		uB := b1 / (b1*b1 - 0.5*b*b2)
		tB := math.MaxFloat64
		if uB >= 0 {
			tB = -b * uB
		}

		t += min(tR, tG, tB)
		// end
	}

	return t
}

// findCusp finds lCusp and cCusp for a given hue
// a and b must be normalized so a^2 + b^2 == 1
func findCusp(a, b float64) cusp {
	// first, find the maximum saturation (saturation S = C/L)
	sCusp := computeMaxSaturation(a, b)

	// convert to linear sRGB to find the first point where at least one of r,g or b >= 1:
	rgbAtMax := Lab{
		L: 1,
		A: sCusp * a,
		B: sCusp * b,
	}.LinearRGB()
	lCusp := math.Cbrt(1 / rgbAtMax.max())

	return cusp{L: lCusp, C: lCusp * sCusp}
}

// saturationBranch holds the polynomial fit and the linear RGB row for the channel that leaves the gamut first.
type saturationBranch struct {
	k0, k1, k2, k3, k4 float64
	wl, wm, ws         float64
}

var (
	redBranch = saturationBranch{
		k0: +1.19086277, k1: +1.76576728, k2: +0.59662641, k3: +0.75515197, k4: +0.56771245,
		wl: +4.0767416621, wm: -3.3077115913, ws: +0.2309699292,
	}
	greenBranch = saturationBranch{
		k0: +0.73956515, k1: -0.45954404, k2: +0.08285427, k3: +0.12541070, k4: +0.14503204,
		wl: -1.2684380046, wm: +2.6097574011, ws: -0.3413193965,
	}
	blueBranch = saturationBranch{
		k0: +1.35733652, k1: -0.00915799, k2: -1.15130210, k3: -0.50559606, k4: +0.00692167,
		wl: -0.0041960863, wm: -0.7034186147, ws: +1.7076147010,
	}
)

const (
	saturationSteps    = 3
	saturationResidual = 1e-6
)

// computeMaxSaturation finds the maximum saturation possible for a given hue that fits in sRGB
// Saturation here is defined as S = C/L
// a and b must be normalized so a^2 + b^2 == 1
//
// Every channel equals 1 at S = 0, so the gamut edge is the smallest positive root over the three channels. Solving all three
// keeps hues on a branch boundary stable: a hue rounded to float32 may fall on the other side of the fit's selection line.
func computeMaxSaturation(a, b float64) float64 {
	best := math.Inf(1)
	for _, br := range []saturationBranch{redBranch, greenBranch, blueBranch} {
		sat, f := br.solve(a, b)
		if sat > 0 && math.Abs(f) <= saturationResidual && sat < best {
			best = sat
		}
	}
	if !math.IsInf(best, 1) {
		return best
	}

	sat, _ := selectBranch(a, b).solve(a, b)
	return sat
}

// selectBranch picks the channel that goes below zero first, using the fit's separating lines.
func selectBranch(a, b float64) saturationBranch {
	switch {
	case (-1.88170328*a - 0.80936493*b) > 1:
		return redBranch
	case (1.81444104*a - 1.19445276*b) > 1:
		return greenBranch
	}
	return blueBranch
}

// solve approximates the root of the branch channel with the polynomial and refines it with Halley's method. It returns the
// saturation and the channel value there.
func (br saturationBranch) solve(a, b float64) (float64, float64) {
	sat := br.k0 + br.k1*a + br.k2*b + br.k3*a*a + br.k4*a*b

	kL := +0.3963377774*a + 0.2158037573*b
	kM := -0.1055613458*a - 0.0638541728*b
	kS := -0.0894841775*a - 1.2914855480*b

	for range saturationSteps {
		l_ := 1 + sat*kL
		m_ := 1 + sat*kM
		s_ := 1 + sat*kS

		l := l_ * l_ * l_
		m := m_ * m_ * m_
		s := s_ * s_ * s_

		lDS := 3 * kL * l_ * l_
		mDS := 3 * kM * m_ * m_
		sDS := 3 * kS * s_ * s_

		lDS2 := 6 * kL * kL * l_
		mDS2 := 6 * kM * kM * m_
		sDS2 := 6 * kS * kS * s_

		f := br.wl*l + br.wm*m + br.ws*s
		f1 := br.wl*lDS + br.wm*mDS + br.ws*sDS
		f2 := br.wl*lDS2 + br.wm*mDS2 + br.ws*sDS2

		sat = sat - f*f1/(f1*f1-0.5*f*f2)
	}

	return sat, br.channel(a, b, sat)
}

// channel is the branch's linear RGB channel at L = 1 and chroma sat along (a, b).
func (br saturationBranch) channel(a, b, sat float64) float64 {
	l_ := 1 + sat*(+0.3963377774*a+0.2158037573*b)
	m_ := 1 + sat*(-0.1055613458*a-0.0638541728*b)
	s_ := 1 + sat*(-0.0894841775*a-1.2914855480*b)
	return br.wl*l_*l_*l_ + br.wm*m_*m_*m_ + br.ws*s_*s_*s_
}
