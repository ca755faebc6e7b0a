package main

import (
	"fmt"
	"image/color"
	"io"

	"github.com/amitmaish/tinycolor/colorspace"
	"github.com/amitmaish/tinycolor/palette"
	"github.com/amitmaish/tinycolor/parallel"

	"github.com/alecthomas/kong"
)

type paletteCmd struct {
	Space   string    `help:"Color space to list and match entries in (${spaces})" enum:"${spaces}" default:"oklab"`
	Nearest []float32 `help:"Also report the entry closest to this sRGB color, comma separated"`
	Name    string    `arg:"" help:"Palette name (bw, gray16, primaries, css) or PAL file in RIFF format"`

	space colorspace.Kind
	pal   color.Palette
}

func (c *paletteCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.space, err = colorspace.ParseKind(c.Space); err != nil {
		return fmt.Errorf("invalid color space: %w", err)
	}

	if len(c.Nearest) != 0 && len(c.Nearest) != 3 {
		return fmt.Errorf("expected 3 channels to match, got %d", len(c.Nearest))
	}

	if c.pal, err = palette.Load(c.Name); err != nil {
		return err
	}

	return nil
}

func (c *paletteCmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc, out io.Writer) error {
	pal := palette.New(c.pal, c.space, worker, wait)

	for i, col := range pal.Colors {
		if err := printColor(out, fmt.Sprintf("%d\t", i), col); err != nil {
			return err
		}
	}

	if len(c.Nearest) == 0 {
		return nil
	}

	want := colorspace.FromTriple[colorspace.SRGB](colorspace.Triple(c.Nearest))
	i := pal.Index(want)
	return printColor(out, fmt.Sprintf("nearest %d\t", i), pal.Colors[i])
}
