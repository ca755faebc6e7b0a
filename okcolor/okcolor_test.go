package okcolor

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func linearNear(a, b LinearRGB, eps float64) bool {
	return near(a.R, b.R, eps) && near(a.G, b.G, eps) && near(a.B, b.B, eps)
}

var samples = []struct {
	name string
	c    LinearRGB
}{
	{"red", LinearRGB{1, 0, 0}},
	{"green", LinearRGB{0, 1, 0}},
	{"blue", LinearRGB{0, 0, 1}},
	{"orange", LinearRGB{0.8, 0.2, 0.05}},
	{"teal", LinearRGB{0.05, 0.45, 0.4}},
	{"violet", LinearRGB{0.3, 0.1, 0.7}},
	{"pale yellow", LinearRGB{0.9, 0.85, 0.3}},
	{"dark brown", LinearRGB{0.06, 0.03, 0.01}},
}

func TestLabReference(t *testing.T) {
	tests := []struct {
		name string
		in   LinearRGB
		want Lab
	}{
		{"white", LinearRGB{1, 1, 1}, Lab{L: 1}},
		{"black", LinearRGB{}, Lab{}},
		{"red", LinearRGB{1, 0, 0}, Lab{L: 0.627955, A: 0.224863, B: 0.125846}},
		{"green", LinearRGB{0, 1, 0}, Lab{L: 0.866440, A: -0.233888, B: 0.179498}},
		{"blue", LinearRGB{0, 0, 1}, Lab{L: 0.452014, A: -0.032457, B: -0.311528}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Lab()
			if !near(got.L, tt.want.L, 1e-5) || !near(got.A, tt.want.A, 1e-5) || !near(got.B, tt.want.B, 1e-5) {
				t.Errorf("%+v.Lab() = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, tt := range samples {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Lab().LinearRGB()
			if !linearNear(got, tt.c, 1e-6) {
				t.Errorf("round trip = %+v, want %+v", got, tt.c)
			}
		})
	}
}

func TestLChRoundTrip(t *testing.T) {
	for _, tt := range samples {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Lab().LCh().LinearRGB()
			if !linearNear(got, tt.c, 1e-6) {
				t.Errorf("round trip = %+v, want %+v", got, tt.c)
			}
		})
	}
}

func TestLChAchromatic(t *testing.T) {
	lch := LinearRGB{0.5, 0.5, 0.5}.Lab().LCh()
	if lch.H != 0 {
		t.Errorf("grey hue = %v, want 0", lch.H)
	}
	if lch.C > AchromaticChroma {
		t.Errorf("grey chroma = %v, want < %v", lch.C, AchromaticChroma)
	}
}

func TestToeInverse(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		if got := toeInv(toe(x)); !near(got, x, 1e-12) {
			t.Errorf("toeInv(toe(%v)) = %v", x, got)
		}
	}

	if got := toe(1); !near(got, 1, 1e-12) {
		t.Errorf("toe(1) = %v, want 1", got)
	}
	if got := toeInv(0.8); !near(got, 0.8281325, 1e-6) {
		t.Errorf("toeInv(0.8) = %v, want 0.8281325", got)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, tt := range samples {
		t.Run(tt.name, func(t *testing.T) {
			hsl := tt.c.HSL()
			if hsl.H < 0 || hsl.H > 1 {
				t.Errorf("hue %v outside [0,1]", hsl.H)
			}
			if hsl.S < 0 || hsl.S > 1+1e-3 {
				t.Errorf("saturation %v outside [0,1]", hsl.S)
			}
			got := hsl.LinearRGB()
			if !linearNear(got, tt.c, 1e-5) {
				t.Errorf("round trip via %+v = %+v, want %+v", hsl, got, tt.c)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, tt := range samples {
		t.Run(tt.name, func(t *testing.T) {
			hsv := tt.c.HSV()
			got := hsv.LinearRGB()
			if !linearNear(got, tt.c, 1e-5) {
				t.Errorf("round trip via %+v = %+v, want %+v", hsv, got, tt.c)
			}
		})
	}
}

func TestHSLEndpoints(t *testing.T) {
	tests := []struct {
		name string
		in   LinearRGB
		want HSL
	}{
		{"white", LinearRGB{1, 1, 1}, HSL{L: 1}},
		{"black", LinearRGB{}, HSL{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.HSL()
			if got.H != 0 || got.S != 0 || !near(got.L, tt.want.L, 1e-7) {
				t.Errorf("%+v.HSL() = %+v, want %+v", tt.in, got, tt.want)
			}
			if back := got.LinearRGB(); !linearNear(back, tt.in, 1e-7) {
				t.Errorf("inverse = %+v, want %+v", back, tt.in)
			}
		})
	}

	// Rounding noise just below white carries no saturation.
	if got := (Lab{L: 1 - 1e-7, A: 2e-7, B: -1e-7}).HSL(); got.S != 0 || got.H != 0 {
		t.Errorf("near-white HSL = %+v, want zero saturation", got)
	}

	if got := (HSL{H: 0.3, S: 0.7, L: 1}).Lab(); got != (Lab{L: 1}) {
		t.Errorf("L=1 should be white, got %+v", got)
	}
	if got := (HSL{H: 0.3, S: 0.7, L: 0}).Lab(); got != (Lab{}) {
		t.Errorf("L=0 should be black, got %+v", got)
	}
}

func TestHSLKnownValue(t *testing.T) {
	got := HSL{H: 0, S: 0.8, L: 0.8}.Lab()
	if !near(got.L, 0.8281325, 1e-6) {
		t.Errorf("L = %v, want 0.8281325", got.L)
	}
	if !near(got.B, 0, 1e-12) {
		t.Errorf("B = %v, want 0", got.B)
	}
	if !near(got.A, 0.091876104, 1e-3) {
		t.Errorf("A = %v, want 0.091876104", got.A)
	}
}

func TestHSVEndpoints(t *testing.T) {
	if got := (LinearRGB{1, 1, 1}).HSV(); got.H != 0 || got.S != 0 || !near(got.V, 1, 1e-7) {
		t.Errorf("white HSV = %+v", got)
	}
	if got := (LinearRGB{}).HSV(); got != (HSV{}) {
		t.Errorf("black HSV = %+v", got)
	}
	if got := (HSV{H: 0.5, S: 1, V: 0}).Lab(); got != (Lab{}) {
		t.Errorf("V=0 should be black, got %+v", got)
	}
}

func TestCuspInsideGamut(t *testing.T) {
	for i := 0; i < 36; i++ {
		h := 2 * math.Pi * float64(i) / 36
		cc := findCusp(math.Cos(h), math.Sin(h))
		if cc.L <= 0 || cc.L >= 1 || cc.C <= 0 {
			t.Fatalf("hue %d: implausible cusp %+v", i, cc)
		}

		rgb := Lab{L: cc.L, A: cc.C * math.Cos(h), B: cc.C * math.Sin(h)}.LinearRGB()
		if m := rgb.max(); !near(m, 1, 1e-3) {
			t.Errorf("hue %d: cusp max channel = %v, want 1", i, m)
		}
	}
}

func TestMaxSaturationOnGamutEdge(t *testing.T) {
	for i := 0; i < 360; i++ {
		h := 2 * math.Pi * float64(i) / 360
		a, b := math.Cos(h), math.Sin(h)

		sat := computeMaxSaturation(a, b)
		rgb := Lab{L: 1, A: sat * a, B: sat * b}.LinearRGB()
		if lo := min(rgb.R, rgb.G, rgb.B); !near(lo, 0, 1e-6) {
			t.Errorf("hue %d: smallest channel at max saturation = %v, want 0", i, lo)
		}
	}
}

func TestMaxSaturationAtBranchBoundary(t *testing.T) {
	// Pure blue lies on the line separating the green and blue polynomial fits.
	lab := LinearRGB{0, 0, 1}.Lab()
	c := lab.chroma()
	h := math.Atan2(lab.B/c, lab.A/c)
	want := computeMaxSaturation(lab.A/c, lab.B/c)

	for _, d := range []float64{-1e-6, -1e-7, 1e-7, 1e-6} {
		if got := computeMaxSaturation(math.Cos(h+d), math.Sin(h+d)); !near(got, want, 1e-3) {
			t.Errorf("hue offset %g: max saturation = %v, want %v", d, got, want)
		}
	}

	hsl := lab.HSL()
	hsl.H = float64(float32(hsl.H))
	if got := hsl.LinearRGB(); !linearNear(got, LinearRGB{0, 0, 1}, 1e-4) {
		t.Errorf("Okhsl blue with float32 hue = %+v", got)
	}

	hsv := lab.HSV()
	hsv.H = float64(float32(hsv.H))
	if got := hsv.LinearRGB(); !linearNear(got, LinearRGB{0, 0, 1}, 1e-4) {
		t.Errorf("Okhsv blue with float32 hue = %+v", got)
	}
}
