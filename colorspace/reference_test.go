package colorspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTransferCurve(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{in: 0, want: 0},
		{in: 1, want: 1},
		{in: 0.5, want: 0.21404114},
		{in: 0.04, want: 0.04 / 12.92},
		{in: -0.5, want: -0.5 / 12.92},
	}

	for _, tt := range tests {
		got := SRGB{R: tt.in, G: tt.in, B: tt.in}.RGB()
		want := RGB{R: tt.want, G: tt.want, B: tt.want}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("SRGB(%v).RGB() (-want +got):\n%s", tt.in, diff)
		}
		if diff := cmp.Diff(SRGB{R: tt.in, G: tt.in, B: tt.in}, got.SRGB(), approx); diff != "" {
			t.Errorf("RGB(%v).SRGB() (-want +got):\n%s", tt.want, diff)
		}
	}
}

func TestCylindricalReference(t *testing.T) {
	tests := []struct {
		name string
		in   SRGB
		hsl  HSL
		hsv  HSV
	}{
		{name: "red", in: SRGBRed, hsl: HSL{H: 0, S: 1, L: 0.5}, hsv: HSV{H: 0, S: 1, V: 1}},
		{name: "yellow", in: SRGBYellow, hsl: HSL{H: 1.0 / 6, S: 1, L: 0.5}, hsv: HSV{H: 1.0 / 6, S: 1, V: 1}},
		{name: "green", in: SRGBGreen, hsl: HSL{H: 1.0 / 3, S: 1, L: 0.5}, hsv: HSV{H: 1.0 / 3, S: 1, V: 1}},
		{name: "aqua", in: SRGBAqua, hsl: HSL{H: 0.5, S: 1, L: 0.5}, hsv: HSV{H: 0.5, S: 1, V: 1}},
		{name: "blue", in: SRGBBlue, hsl: HSL{H: 2.0 / 3, S: 1, L: 0.5}, hsv: HSV{H: 2.0 / 3, S: 1, V: 1}},
		{name: "purple", in: SRGBPurple, hsl: HSL{H: 5.0 / 6, S: 1, L: 0.5}, hsv: HSV{H: 5.0 / 6, S: 1, V: 1}},
		{name: "grey", in: SRGB{R: 0.5, G: 0.5, B: 0.5}, hsl: HSL{H: 0, S: 0, L: 0.5}, hsv: HSV{H: 0, S: 0, V: 0.5}},
		{name: "dark orange", in: SRGB{R: 0.5, G: 0.25, B: 0}, hsl: HSL{H: 1.0 / 12, S: 1, L: 0.25}, hsv: HSV{H: 1.0 / 12, S: 1, V: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.hsl, tt.in.HSL(), approx); diff != "" {
				t.Errorf("HSL (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.hsv, tt.in.HSV(), approx); diff != "" {
				t.Errorf("HSV (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.in, tt.hsl.SRGB(), approx); diff != "" {
				t.Errorf("HSL.SRGB (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.in, tt.hsv.SRGB(), approx); diff != "" {
				t.Errorf("HSV.SRGB (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOklabReference(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-4)

	tests := []struct {
		name string
		in   SRGB
		want Oklab
	}{
		{name: "white", in: SRGBWhite, want: OklabWhite},
		{name: "black", in: SRGBBlack, want: OklabBlack},
		{name: "red", in: SRGBRed, want: Oklab{L: 0.627955, A: 0.224863, B: 0.125846}},
		{name: "green", in: SRGBGreen, want: Oklab{L: 0.866440, A: -0.233888, B: 0.179498}},
		{name: "blue", in: SRGBBlue, want: Oklab{L: 0.452014, A: -0.032457, B: -0.311528}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.in.Oklab(), opt); diff != "" {
				t.Errorf("Oklab (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.in, tt.want.SRGB(), opt); diff != "" {
				t.Errorf("Oklab.SRGB (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOklchHue(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-4)

	// Negative b puts the hue in the lower half of the circle; it must come back as a positive turn.
	got := Oklab{L: 0.5, A: 0, B: -0.1}.Oklch()
	if diff := cmp.Diff(Oklch{L: 0.5, C: 0.1, H: 0.75}, got, opt); diff != "" {
		t.Errorf("Oklch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Oklab{L: 0.5, A: 0, B: -0.1}, got.Oklab(), opt); diff != "" {
		t.Errorf("Oklch.Oklab (-want +got):\n%s", diff)
	}

	if got := (Oklab{L: 0.5}).Oklch(); got != (Oklch{L: 0.5}) {
		t.Errorf("achromatic Oklch = %v, want hue 0", got)
	}
}

func TestOkhslReference(t *testing.T) {
	hsl := SRGBRed.Okhsl()
	if diff := cmp.Diff(float32(0.0812), hsl.H, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("red hue (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(float32(0.568081), hsl.L, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("red lightness (-want +got):\n%s", diff)
	}
	if hsl.S < 0.99 {
		t.Errorf("red saturation = %v, want ~1", hsl.S)
	}

	hsv := SRGBRed.Okhsv()
	if diff := cmp.Diff(hsl.H, hsv.H, approx); diff != "" {
		t.Errorf("Okhsv and Okhsl hue differ (-want +got):\n%s", diff)
	}
	if hsv.S < 0.99 || hsv.V < 0.99 {
		t.Errorf("red Okhsv = %v, want s and v ~1", hsv)
	}

	grey := SRGB{R: 0.5, G: 0.5, B: 0.5}
	if got := grey.Okhsl(); got.S > 1e-5 {
		t.Errorf("grey Okhsl saturation = %v", got.S)
	}
	if got := grey.Okhsv(); got.S > 1e-5 {
		t.Errorf("grey Okhsv saturation = %v", got.S)
	}
}

func TestCIEReference(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 2e-3)

	if diff := cmp.Diff(XYZ{X: 0.4124, Y: 0.2126, Z: 0.0193}, SRGBRed.XYZ(), opt); diff != "" {
		t.Errorf("red XYZ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Lab{L: 0.5324, A: 0.8009, B: 0.6720}, SRGBRed.Lab(), opt); diff != "" {
		t.Errorf("red Lab (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(XYZWhite, SRGBWhite.XYZ(), approx); diff != "" {
		t.Errorf("white XYZ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(LabWhite, XYZWhite.Lab(), approx); diff != "" {
		t.Errorf("white Lab (-want +got):\n%s", diff)
	}
}

func TestPrimariesRoundTrip(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-4)

	// Pure blue sits on the boundary between two gamut faces in Okhsl and Okhsv.
	if diff := cmp.Diff(RGB{B: 1}, SRGBBlue.Okhsl().RGB(), opt); diff != "" {
		t.Errorf("blue through Okhsl (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RGB{B: 1}, SRGBBlue.Okhsv().RGB(), opt); diff != "" {
		t.Errorf("blue through Okhsv (-want +got):\n%s", diff)
	}

	steps := []float32{0, 0.25, 0.5, 0.75, 1}
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			for _, r := range steps {
				for _, g := range steps {
					for _, b := range steps {
						in := SRGB{R: r, G: g, B: b}
						if diff := cmp.Diff(in, k.Convert(in).SRGB(), opt); diff != "" {
							t.Errorf("%v round trip (-want +got):\n%s", in, diff)
						}
					}
				}
			}
		})
	}
}

func TestWhiteStaysAchromatic(t *testing.T) {
	tests := []struct {
		name string
		in   Color
	}{
		{name: "xyz white", in: XYZWhite},
		{name: "lab white", in: LabWhite},
		{name: "oklab white", in: OklabWhite},
		{name: "near white", in: SRGB{R: 1, G: 1 - 1e-7, B: 1}},
		{name: "lab black", in: LabBlack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.HSL(); got.S != 0 || got.H != 0 {
				t.Errorf("HSL() = %v, want zero hue and saturation", got)
			}
			if got := tt.in.HSV(); got.S != 0 || got.H != 0 {
				t.Errorf("HSV() = %v, want zero hue and saturation", got)
			}
		})
	}

	if got := (SRGB{R: 1, G: 0.999, B: 1}).HSL(); got.S == 0 {
		t.Errorf("pale colour lost its saturation: %v", got)
	}
}
