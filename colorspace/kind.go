package colorspace

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownSpace is returned by ParseKind for names that do not match any space.
var ErrUnknownSpace = errors.New("unknown color space")

// Kind names a colour space at run time, for callers that only learn the target space from configuration.
type Kind uint8

const (
	KindSRGB Kind = iota
	KindRGB
	KindOklab
	KindOklch
	KindOkhsl
	KindOkhsv
	KindHSL
	KindHSV
	KindXYZ
	KindLab
)

// Kinds lists every supported space in declaration order.
func Kinds() []Kind {
	return []Kind{KindSRGB, KindRGB, KindOklab, KindOklch, KindOkhsl, KindOkhsv, KindHSL, KindHSV, KindXYZ, KindLab}
}

func (k Kind) String() string {
	switch k {
	case KindSRGB:
		return "srgb"
	case KindRGB:
		return "rgb"
	case KindOklab:
		return "oklab"
	case KindOklch:
		return "oklch"
	case KindOkhsl:
		return "okhsl"
	case KindOkhsv:
		return "okhsv"
	case KindHSL:
		return "hsl"
	case KindHSV:
		return "hsv"
	case KindXYZ:
		return "xyz"
	case KindLab:
		return "lab"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind matches name case-insensitively against Kind.String.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k <= KindLab
}

// FromTriple builds a colour of space k from t. It returns nil for an invalid kind.
func (k Kind) FromTriple(t Triple) Color {
	switch k {
	case KindSRGB:
		return FromTriple[SRGB](t)
	case KindRGB:
		return FromTriple[RGB](t)
	case KindOklab:
		return FromTriple[Oklab](t)
	case KindOklch:
		return FromTriple[Oklch](t)
	case KindOkhsl:
		return FromTriple[Okhsl](t)
	case KindOkhsv:
		return FromTriple[Okhsv](t)
	case KindHSL:
		return FromTriple[HSL](t)
	case KindHSV:
		return FromTriple[HSV](t)
	case KindXYZ:
		return FromTriple[XYZ](t)
	case KindLab:
		return FromTriple[Lab](t)
	}
	return nil
}

// Convert returns c in space k, with the same result as Convert[T] for the matching T. It returns nil for an invalid kind.
func (k Kind) Convert(c Color) Color {
	switch k {
	case KindSRGB:
		return c.SRGB()
	case KindRGB:
		return c.RGB()
	case KindOklab:
		return c.Oklab()
	case KindOklch:
		return c.Oklch()
	case KindOkhsl:
		return c.Okhsl()
	case KindOkhsv:
		return c.Okhsv()
	case KindHSL:
		return c.HSL()
	case KindHSV:
		return c.HSV()
	case KindXYZ:
		return c.XYZ()
	case KindLab:
		return c.Lab()
	}
	return nil
}

// FromColor is the run-time form of FromColor[T]. It returns nil for an invalid kind.
func (k Kind) FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return k.Convert(cc)
	}
	return k.Convert(FromColor[SRGB](c))
}

// KindOf reports the space of c. The second result is false for Color implementations from outside this package.
func KindOf(c Color) (Kind, bool) {
	switch c.(type) {
	case SRGB:
		return KindSRGB, true
	case RGB:
		return KindRGB, true
	case Oklab:
		return KindOklab, true
	case Oklch:
		return KindOklch, true
	case Okhsl:
		return KindOkhsl, true
	case Okhsv:
		return KindOkhsv, true
	case HSL:
		return KindHSL, true
	case HSV:
		return KindHSV, true
	case XYZ:
		return KindXYZ, true
	case Lab:
		return KindLab, true
	}
	return 0, false
}

// White returns the named white constant of space k, or nil for an invalid kind.
func (k Kind) White() Color {
	switch k {
	case KindSRGB:
		return SRGBWhite
	case KindRGB:
		return RGBWhite
	case KindOklab:
		return OklabWhite
	case KindOklch:
		return OklchWhite
	case KindOkhsl:
		return OkhslWhite
	case KindOkhsv:
		return OkhsvWhite
	case KindHSL:
		return HSLWhite
	case KindHSV:
		return HSVWhite
	case KindXYZ:
		return XYZWhite
	case KindLab:
		return LabWhite
	}
	return nil
}

// Black returns the named black constant of space k, or nil for an invalid kind.
func (k Kind) Black() Color {
	switch k {
	case KindSRGB:
		return SRGBBlack
	case KindRGB:
		return RGBBlack
	case KindOklab:
		return OklabBlack
	case KindOklch:
		return OklchBlack
	case KindOkhsl:
		return OkhslBlack
	case KindOkhsv:
		return OkhsvBlack
	case KindHSL:
		return HSLBlack
	case KindHSV:
		return HSVBlack
	case KindXYZ:
		return XYZBlack
	case KindLab:
		return LabBlack
	}
	return nil
}

// Hue returns the index of the hue channel in the triple of space k, or -1 when k has no hue channel.
func (k Kind) Hue() int {
	switch k {
	case KindOkhsl, KindOkhsv, KindHSL, KindHSV:
		return 0
	case KindOklch:
		return 2
	}
	return -1
}
