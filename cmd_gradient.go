package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amitmaish/tinycolor/colorspace"
	"github.com/amitmaish/tinycolor/palette"

	"github.com/alecthomas/kong"
)

type gradientCmd struct {
	In    string    `help:"Color space of --start and --end (${spaces})" enum:"${spaces}" default:"srgb"`
	Space string    `help:"Color space to interpolate in (${spaces})" enum:"${spaces}" default:"oklab"`
	Steps int       `help:"Number of colors, including both ends" default:"8"`
	Start []float32 `help:"Channels of the first color, comma separated" required:""`
	End   []float32 `help:"Channels of the last color, comma separated" required:""`
	Out   string    `help:"Also write the gradient to this RIFF PAL file" type:"path"`

	in, space colorspace.Kind
}

func (c *gradientCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.in, err = colorspace.ParseKind(c.In); err != nil {
		return fmt.Errorf("invalid input space: %w", err)
	}
	if c.space, err = colorspace.ParseKind(c.Space); err != nil {
		return fmt.Errorf("invalid interpolation space: %w", err)
	}

	switch {
	case c.Steps < 2:
		return fmt.Errorf("invalid number of steps: %d", c.Steps)
	case len(c.Start) != 3:
		return fmt.Errorf("expected 3 start channels, got %d", len(c.Start))
	case len(c.End) != 3:
		return fmt.Errorf("expected 3 end channels, got %d", len(c.End))
	}

	return nil
}

func (c *gradientCmd) Run(out io.Writer) error {
	start := c.in.FromTriple(colorspace.Triple(c.Start))
	end := c.in.FromTriple(colorspace.Triple(c.End))

	steps := palette.Gradient(start, end, c.space, c.Steps)
	for _, step := range steps {
		if err := printColor(out, "", step.SRGB()); err != nil {
			return err
		}
	}

	if c.Out == "" {
		return nil
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.Out, err)
	}

	pal := &palette.Palette{Kind: c.space, Colors: steps}
	if _, err := pal.WriteRIFF(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write palette file %q: %w", c.Out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close palette file %q: %w", c.Out, err)
	}

	slog.Info("saved gradient", "file", c.Out, "colors", len(steps), "space", c.space)
	return nil
}
