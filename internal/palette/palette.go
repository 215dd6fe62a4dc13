// Package palette builds discrete color ramps for decoration.
package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type stop struct {
	at  float64
	hex string
}

// viridis control points, sampled along [0,1].
var viridis = []stop{
	{0, "#440154"},
	{0.13, "#472c7a"},
	{0.25, "#3b518b"},
	{0.38, "#2c718e"},
	{0.5, "#21908d"},
	{0.63, "#27ad81"},
	{0.75, "#5cc863"},
	{0.88, "#aadc32"},
	{1, "#fde725"},
}

// Palette is an ordered list of opaque colors.
type Palette []color.RGBA

// Viridis returns n evenly spaced shades of the viridis colormap.
func Viridis(n int) (Palette, error) {
	return build(viridis, n)
}

func build(stops []stop, n int) (Palette, error) {
	if n < 2 {
		return nil, fmt.Errorf("palette needs at least 2 shades, got %d", n)
	}
	keys := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s.hex)
		if err != nil {
			return nil, fmt.Errorf("bad palette stop %q: %w", s.hex, err)
		}
		keys[i] = c
	}

	out := make(Palette, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		k := 1
		for k < len(stops)-1 && stops[k].at < t {
			k++
		}
		lo, hi := stops[k-1], stops[k]
		local := (t - lo.at) / (hi.at - lo.at)
		c := keys[k-1].BlendRgb(keys[k], local).Clamped()
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out, nil
}

// At maps t in [0,1] to the nearest shade. Values outside are clamped.
func (p Palette) At(t float64) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 255}
	}
	if t <= 0 {
		return p[0]
	}
	if t >= 1 {
		return p[len(p)-1]
	}
	return p[int(t*float64(len(p)-1)+0.5)]
}

// Hex renders every shade as #rrggbb.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		cf, _ := colorful.MakeColor(c)
		out[i] = cf.Hex()
	}
	return out
}

// ParseHex parses a #rrggbb string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
