// Package layout packs particles onto concentric rings and samples the source
// image under each one for its radius and color.
package layout

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-rings/internal/asset"
	"github.com/iburimskiy/particle-rings/internal/config"
	"github.com/iburimskiy/particle-rings/internal/mathx"
)

var (
	ErrNoImage    = errors.New("layout: source image is not decoded")
	ErrRingCount  = errors.New("layout: ring count must be at least 1")
	ErrCanvasSize = errors.New("layout: canvas size must be positive")
)

// Color is an opaque RGB triple sampled from the image.
type Color struct {
	R, G, B uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Seed is the creation data for one particle.
type Seed struct {
	Pos    r2.Vec
	Radius float64
	Color  Color
	Ring   int
	Slot   int
}

// Ring describes one packed ring. DotRadius is the decaying decorative radius
// in effect while the ring was packed.
type Ring struct {
	Index     int     `yaml:"index"`
	Radius    float64 `yaml:"radius"`
	DotRadius float64 `yaml:"dot_radius"`
	Count     int     `yaml:"count"`
}

// Layout is the output of Generate. Seeds are ring-major, then by angle.
type Layout struct {
	Width  float64
	Height float64
	Seeds  []Seed
	Rings  []Ring
}

// FitCount is the number of dots of fitRadius, spaced by gap, that fit on a
// circle of the given circumference.
func FitCount(circumference, fitRadius, gap float64) int {
	return int(math.Floor(circumference / (fitRadius*2 + gap)))
}

// Generate packs cfg.Rings rings around the canvas center. Ring 0 holds a
// single particle; every later ring holds as many as fit at the initial dot
// radius. Ring radius grows by 2*DotRadius + RingGap per ring.
func Generate(img *asset.Image, width, height float64, cfg config.Layout) (*Layout, error) {
	if img == nil || len(img.Pix) < img.Width*img.Height*4 || img.Width <= 0 || img.Height <= 0 {
		return nil, ErrNoImage
	}
	if cfg.Rings < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrRingCount, cfg.Rings)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w, got %.0fx%.0f", ErrCanvasSize, width, height)
	}

	l := &Layout{
		Width:  width,
		Height: height,
		Rings:  make([]Ring, 0, cfg.Rings),
	}
	center := r2.Vec{X: width * 0.5, Y: height * 0.5}

	fitRadius := cfg.DotRadius
	dotRadius := cfg.DotRadius
	cirRadius := cfg.StartRadius

	for i := 0; i < cfg.Rings; i++ {
		numFit := 1
		if i > 0 {
			numFit = FitCount(2*math.Pi*cirRadius, fitRadius, cfg.DotGap)
		}
		l.Rings = append(l.Rings, Ring{Index: i, Radius: cirRadius, DotRadius: dotRadius, Count: numFit})

		if numFit > 0 {
			slice := 2 * math.Pi / float64(numFit)
			for j := 0; j < numFit; j++ {
				theta := slice * float64(j)
				pos := r2.Add(center, r2.Vec{
					X: math.Cos(theta) * cirRadius,
					Y: math.Sin(theta) * cirRadius,
				})
				l.Seeds = append(l.Seeds, l.seed(img, pos, i, j, cfg))
			}
		}

		cirRadius += fitRadius*2 + cfg.RingGap
		dotRadius = (1 - mathx.EaseOutQuad(float64(i)/float64(cfg.Rings))) * fitRadius
	}
	return l, nil
}

func (l *Layout) seed(img *asset.Image, pos r2.Vec, ring, slot int, cfg config.Layout) Seed {
	ix := int(math.Floor(pos.X / l.Width * float64(img.Width)))
	iy := int(math.Floor(pos.Y / l.Height * float64(img.Height)))
	r, g, b := img.RGB(ix, iy)

	return Seed{
		Pos:    pos,
		Radius: mathx.MapRange(float64(r), 0, 255, cfg.MinRadius, cfg.MaxRadius),
		Color:  Color{R: r, G: g, B: b},
		Ring:   ring,
		Slot:   slot,
	}
}

// Count is the total number of particles.
func (l *Layout) Count() int { return len(l.Seeds) }
