package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amitmaish/tinycolor/colorspace"
	"github.com/amitmaish/tinycolor/parallel"

	"github.com/alecthomas/kong"
)

type cli struct {
	Workers int `help:"Worker goroutines for palette conversion, 0 for one per CPU" default:"0"`

	Convert  convertCmd  `cmd:"" help:"Convert one color between color spaces"`
	Gradient gradientCmd `cmd:"" help:"Interpolate between two colors in a chosen color space"`
	Palette  paletteCmd  `cmd:"" help:"List a palette converted into a color space"`
}

func spaceNames() string {
	kinds := colorspace.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

func newParser(c *cli, out io.Writer) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("tinycolor"),
		kong.Description("Convert colors between sRGB, linear RGB, Oklab, Oklch, Okhsl, Okhsv, HSL, HSV, XYZ and CIE Lab."),
		kong.UsageOnError(),
		kong.Vars{"spaces": spaceNames()},
		kong.BindTo(out, (*io.Writer)(nil)),
	)
}

func main() {
	var c cli
	parser, err := newParser(&c, os.Stdout)
	if err != nil {
		slog.Error("could not build command line parser", "error", err)
		os.Exit(2)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	pool := parallel.Start(c.Workers)
	err = kctx.Run(pool.Do, pool.Wait)
	pool.Cancel()

	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
