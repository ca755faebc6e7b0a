package palette

import (
	"math"

	"github.com/amitmaish/tinycolor/colorspace"
)

// Gradient returns steps colours evenly spaced from start to end, interpolated channel by channel in space k. Hue channels
// take the shorter way around the circle. A single step yields start alone. Fewer steps or an invalid k yield nil.
func Gradient(start, end colorspace.Color, k colorspace.Kind, steps int) []colorspace.Color {
	if steps < 1 || !k.Valid() {
		return nil
	}

	a, b := k.Convert(start).Triple(), k.Convert(end).Triple()
	if h := k.Hue(); h >= 0 {
		d := float64(b[h]) - float64(a[h])
		d -= math.Round(d)
		b[h] = float32(float64(a[h]) + d)
	}

	res := make([]colorspace.Color, steps)
	for i := range res {
		var t float64
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}

		var mix colorspace.Triple
		for ch := range mix {
			mix[ch] = float32(float64(a[ch]) + (float64(b[ch])-float64(a[ch]))*t)
		}
		res[i] = k.FromTriple(mix)
	}

	return res
}
