package palette

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/amitmaish/tinycolor/colorspace"
	"github.com/amitmaish/tinycolor/parallel"
)

// Palette is a color.Palette expressed in a single colour space. Nearest-colour matching happens in that space, so the same
// source palette matches differently in RGB and in Oklab.
type Palette struct {
	Kind   colorspace.Kind
	Colors []colorspace.Color
}

var _ color.Model = &Palette{}

// New converts every entry of pal into space k, which must be valid. Conversions are handed to worker and collected with
// wait, so a pool from parallel.Start spreads them over its goroutines.
func New(pal color.Palette, k colorspace.Kind, worker parallel.WorkerFunc, wait parallel.WaitFunc) *Palette {
	return &Palette{
		Kind:   k,
		Colors: parallel.Map(pal, k.FromColor, worker, wait),
	}
}

// Convert returns the palette entry closest to c, or nil for an empty palette.
func (p *Palette) Convert(c color.Color) color.Color {
	if len(p.Colors) == 0 {
		return nil
	}
	return p.Colors[p.Index(c)]
}

// Index returns the index of the entry closest to c by squared Euclidean distance between triples. Hue channels are measured
// around the circle. Ties go to the lowest index.
func (p *Palette) Index(c color.Color) int {
	want := p.Kind.FromColor(c).Triple()
	hue := p.Kind.Hue()

	ret, bestSum := 0, math.MaxFloat64
	for i, v := range p.Colors {
		have := v.Triple()

		var sum float64
		for ch := range have {
			d := math.Abs(float64(want[ch]) - float64(have[ch]))
			if ch == hue {
				d = math.Mod(d, 1)
				d = min(d, 1-d)
			}
			sum += d * d
		}

		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

// Palette returns the entries as a color.Palette. Entries keep their space; image/color sees them through RGBA.
func (p *Palette) Palette() color.Palette {
	res := make(color.Palette, len(p.Colors))
	for i, c := range p.Colors {
		res[i] = c
	}
	return res
}

// Triples returns the raw channels of every entry.
func (p *Palette) Triples() []colorspace.Triple {
	res := make([]colorspace.Triple, len(p.Colors))
	for i, c := range p.Colors {
		res[i] = c.Triple()
	}
	return res
}

// WriteRIFF saves the palette as a single-chunk RIFF PAL file.
func (p *Palette) WriteRIFF(w io.Writer) (int64, error) {
	if n, err := WriteTo(w, []color.Palette{p.Palette()}); err != nil {
		return n, fmt.Errorf("could not save palette: %w", err)
	} else {
		return n, nil
	}
}
