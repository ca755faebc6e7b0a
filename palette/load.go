package palette

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/amitmaish/tinycolor/colorspace"

	"golang.org/x/image/colornames"
)

// ErrEmptyPalette is returned by Load when a file holds no colours.
var ErrEmptyPalette = errors.New("palette has no colors")

// Builtins lists the palette names Load resolves without touching the filesystem.
func Builtins() []string {
	return []string{"bw", "gray16", "primaries", "css"}
}

// Load returns the built-in palette called name, or reads name as a RIFF PAL file and joins all of its palettes.
func Load(name string) (color.Palette, error) {
	switch name {
	case "bw":
		return color.Palette{color.Black, color.White}, nil
	case "gray16":
		pal := make(color.Palette, 16)
		for i := range pal {
			pal[i] = color.Gray{Y: uint8(i * 0x11)}
		}
		return pal, nil
	case "primaries":
		return color.Palette{
			colorspace.SRGBBlack,
			colorspace.SRGBRed,
			colorspace.SRGBYellow,
			colorspace.SRGBGreen,
			colorspace.SRGBAqua,
			colorspace.SRGBBlue,
			colorspace.SRGBPurple,
			colorspace.SRGBWhite,
		}, nil
	case "css":
		pal := make(color.Palette, len(colornames.Names))
		for i, n := range colornames.Names {
			pal[i] = colornames.Map[n]
		}
		return pal, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not read palette %q: %w", name, err)
	}

	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("could not load palette %q: %w", name, ErrEmptyPalette)
	}

	return res, nil
}
