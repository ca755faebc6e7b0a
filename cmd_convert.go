package main

import (
	"fmt"
	"io"

	"github.com/amitmaish/tinycolor/colorspace"

	"github.com/alecthomas/kong"
)

type convertCmd struct {
	From     string    `help:"Color space of the input channels (${spaces})" enum:"${spaces}" default:"srgb"`
	To       string    `help:"Color space to convert into (${spaces})" enum:"${spaces}" default:"oklab"`
	Channels []float32 `arg:"" help:"The three channels of the input color, in the order of the source space"`

	from, to colorspace.Kind
}

func (c *convertCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.from, err = colorspace.ParseKind(c.From); err != nil {
		return fmt.Errorf("invalid source space: %w", err)
	}
	if c.to, err = colorspace.ParseKind(c.To); err != nil {
		return fmt.Errorf("invalid destination space: %w", err)
	}

	if len(c.Channels) != 3 {
		return fmt.Errorf("expected 3 channels, got %d", len(c.Channels))
	}

	return nil
}

func (c *convertCmd) Run(out io.Writer) error {
	src := c.from.FromTriple(colorspace.Triple(c.Channels))
	return printColor(out, "", c.to.Convert(src))
}
