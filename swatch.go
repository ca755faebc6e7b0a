package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amitmaish/tinycolor/colorspace"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var swatchStyle = lipgloss.NewStyle().Width(6)

// swatch renders c as a block of background colour. Out-of-gamut colours are clamped by RGBA.
func swatch(c colorspace.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	hex := fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
	return swatchStyle.Background(lipgloss.Color(hex)).Render("") + " " + hex
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatTriple(t colorspace.Triple) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = strconv.FormatFloat(float64(v), 'g', 6, 32)
	}
	return strings.Join(parts, " ")
}

// printColor writes the space name and channels of c, followed by a swatch when out is a terminal.
func printColor(out io.Writer, prefix string, c colorspace.Color) error {
	k, _ := colorspace.KindOf(c)
	line := fmt.Sprintf("%s%s\t%s", prefix, k, formatTriple(c.Triple()))
	if isTerminal(out) {
		line += "\t" + swatch(c)
	}

	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}
