// Package colorspace stores colours as three float32 channels in one of several colour spaces and converts between them.
//
// Every space type implements Color. A Color can be converted into any other space with the method named after the target
// (c.Okhsl(), c.RGB(), ...) or, in generic code, with Convert:
//
//	func anyColorAsRGB[T colorspace.Color](c T) colorspace.RGB {
//		return colorspace.Convert[colorspace.RGB](c)
//	}
//
// Conversions without a direct formula compose through hub spaces: linear RGB for most pairs, sRGB for HSL and HSV, Oklab for
// Oklch and XYZ for CIE Lab. Hue channels are fractions of a full turn. Hues produced by a conversion lie in [0,1), while
// hues set by the caller are kept as given. No channel is ever clamped, except by RGBA which quantises for image/color.
//
// All values are plain comparable structs and all functions are pure, so colours may be shared between goroutines freely.
package colorspace

import (
	"image/color"
	"math"
)

// Triple is the untagged form of a colour. Its channel order is the field order of the space it came from.
type Triple [3]float32

// Color is implemented by every colour-space type in this package.
type Color interface {
	color.Color

	Triple() Triple

	SRGB() SRGB
	RGB() RGB
	Oklab() Oklab
	Oklch() Oklch
	Okhsl() Okhsl
	Okhsv() Okhsv
	HSL() HSL
	HSV() HSV
	XYZ() XYZ
	Lab() Lab
}

// Space is satisfied by the concrete colour-space types. It is only usable as a type constraint.
type Space[T any] interface {
	Color
	comparable

	from(Color) T
	fromTriple(Triple) T
}

// Convert returns c in space T. It calls the same method as c.T() would, so the result is identical to the direct conversion.
func Convert[T Space[T]](c Color) T {
	var zero T
	return zero.from(c)
}

// FromTriple builds a T with its channels taken from t in order.
func FromTriple[T Space[T]](t Triple) T {
	var zero T
	return zero.fromTriple(t)
}

// FromColor converts any image/color value into T. Values from this package convert without quantisation; other colours are
// read through their 16-bit RGBA as sRGB, with alpha divided out.
func FromColor[T Space[T]](c color.Color) T {
	if cc, ok := c.(Color); ok {
		return Convert[T](cc)
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return Convert[T](SRGBBlack)
	}

	return Convert[T](SRGB{
		R: float32(float64(r) / float64(a)),
		G: float32(float64(g) / float64(a)),
		B: float32(float64(b) / float64(a)),
	})
}

// Model returns a color.Model that converts into T.
func Model[T Space[T]]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return FromColor[T](c)
	})
}

func widen(t Triple) [3]float64 {
	return [3]float64{float64(t[0]), float64(t[1]), float64(t[2])}
}

func narrow(t [3]float64) Triple {
	return Triple{float32(t[0]), float32(t[1]), float32(t[2])}
}

// wrapHue reduces a hue in turns to [0,1). The check after narrowing catches values just below 1 that round up to 1 in float32.
func wrapHue(h float64) float32 {
	h -= math.Floor(h)
	f := float32(h)
	if f >= 1 {
		return 0
	}
	return f
}

// quantize maps a [0,1] channel to 16 bits, clamping anything outside.
func quantize(x float32) uint32 {
	switch {
	case x <= 0 || math.IsNaN(float64(x)):
		return 0
	case x >= 1:
		return 0xffff
	}
	return uint32(float64(x)*0xffff + 0.5)
}
