package layout

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-rings/internal/asset"
	"github.com/iburimskiy/particle-rings/internal/config"
)

func uniformImage(t *testing.T, w, h int, c color.NRGBA) *asset.Image {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetNRGBA(x, y, c)
		}
	}
	img, err := asset.FromImage(src)
	require.NoError(t, err)
	return img
}

func defaultLayout() config.Layout {
	return config.Default().Layout
}

// TestEndToEndUniformGray covers the reference scenario: 1080x1080 canvas,
// 30 rings, a flat mid-gray picture.
func TestEndToEndUniformGray(t *testing.T) {
	img := uniformImage(t, 64, 64, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	l, err := Generate(img, 1080, 1080, defaultLayout())
	require.NoError(t, err)

	want := 1
	r := 0.1
	for i := 1; i < 30; i++ {
		r += 2*11 + 1
		want += int(math.Floor(2 * math.Pi * r / (2*11 + 1)))
	}
	require.Equal(t, want, l.Count())
	require.Len(t, l.Rings, 30)

	first := l.Seeds[0]
	for _, s := range l.Seeds {
		require.Equal(t, first.Radius, s.Radius)
		require.Equal(t, Color{R: 128, G: 128, B: 128}, s.Color)
	}
	require.InDelta(t, 1+128.0/255*11, first.Radius, 1e-9)
}

func TestRingCounts(t *testing.T) {
	img := uniformImage(t, 8, 8, color.NRGBA{R: 10, A: 255})
	cfg := defaultLayout()
	l, err := Generate(img, 1080, 1080, cfg)
	require.NoError(t, err)

	require.Equal(t, 1, l.Rings[0].Count)
	total := 0
	for i, ring := range l.Rings {
		require.Equal(t, i, ring.Index)
		if i > 0 {
			circumference := 2 * math.Pi * ring.Radius
			require.Equal(t, FitCount(circumference, cfg.DotRadius, cfg.DotGap), ring.Count, "ring %d", i)
			require.InDelta(t, l.Rings[i-1].Radius+2*cfg.DotRadius+cfg.RingGap, ring.Radius, 1e-9)
		}
		total += ring.Count
	}
	require.Equal(t, total, l.Count())
	require.Equal(t, 6, l.Rings[1].Count)
}

func TestSeedsLieOnRings(t *testing.T) {
	img := uniformImage(t, 4, 4, color.NRGBA{R: 200, A: 255})
	l, err := Generate(img, 600, 400, defaultLayout())
	require.NoError(t, err)

	center := r2.Vec{X: 300, Y: 200}
	prevRing, prevSlot := 0, -1
	for _, s := range l.Seeds {
		ring := l.Rings[s.Ring]
		require.InDelta(t, ring.Radius, r2.Norm(r2.Sub(s.Pos, center)), 1e-6)

		// Ring-major, then angular order.
		if s.Ring == prevRing {
			require.Equal(t, prevSlot+1, s.Slot)
		} else {
			require.Equal(t, prevRing+1, s.Ring)
			require.Equal(t, 0, s.Slot)
		}
		prevRing, prevSlot = s.Ring, s.Slot
	}
}

func TestDotRadiusDecays(t *testing.T) {
	img := uniformImage(t, 2, 2, color.NRGBA{A: 255})
	l, err := Generate(img, 1080, 1080, defaultLayout())
	require.NoError(t, err)

	require.Equal(t, 11.0, l.Rings[0].DotRadius)
	require.Equal(t, 11.0, l.Rings[1].DotRadius)
	require.InDelta(t, (1-(1-math.Pow(1-1.0/30, 2)))*11, l.Rings[2].DotRadius, 1e-9)
	for i := 2; i < len(l.Rings); i++ {
		require.Less(t, l.Rings[i].DotRadius, l.Rings[i-1].DotRadius)
		require.Greater(t, l.Rings[i].DotRadius, 0.0)
	}
}

func TestRadiusFollowsRedChannel(t *testing.T) {
	cfg := defaultLayout()
	cfg.Rings = 1

	prev := 0.0
	for red := 0; red <= 255; red += 15 {
		img := uniformImage(t, 3, 3, color.NRGBA{R: uint8(red), G: 7, B: 9, A: 255})
		l, err := Generate(img, 100, 100, cfg)
		require.NoError(t, err)
		require.Equal(t, 1, l.Count())

		radius := l.Seeds[0].Radius
		require.GreaterOrEqual(t, radius, prev)
		require.GreaterOrEqual(t, radius, 1.0)
		require.LessOrEqual(t, radius, 12.0)
		prev = radius
	}
	require.Equal(t, 12.0, prev)
}

func TestCenterSamplesImageCenter(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 40, B: 50, A: 255})
	img, err := asset.FromImage(src)
	require.NoError(t, err)

	cfg := defaultLayout()
	cfg.Rings = 1
	l, err := Generate(img, 100, 100, cfg)
	require.NoError(t, err)

	s := l.Seeds[0]
	require.Equal(t, Color{R: 255, G: 40, B: 50}, s.Color)
	require.Equal(t, "rgb(255, 40, 50)", s.Color.String())
	require.Equal(t, 12.0, s.Radius)
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = Color{R: 255, G: 0, B: 128}
	r, g, b, a := c.RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0), g)
	require.Equal(t, uint32(0x8080), b)
	require.Equal(t, uint32(0xffff), a)
}

func TestGenerateErrors(t *testing.T) {
	img := uniformImage(t, 2, 2, color.NRGBA{A: 255})

	_, err := Generate(nil, 100, 100, defaultLayout())
	require.ErrorIs(t, err, ErrNoImage)

	_, err = Generate(&asset.Image{Width: 4, Height: 4}, 100, 100, defaultLayout())
	require.ErrorIs(t, err, ErrNoImage)

	cfg := defaultLayout()
	cfg.Rings = 0
	_, err = Generate(img, 100, 100, cfg)
	require.ErrorIs(t, err, ErrRingCount)

	_, err = Generate(img, 0, 100, defaultLayout())
	require.ErrorIs(t, err, ErrCanvasSize)
}

func TestFitCount(t *testing.T) {
	tests := []struct {
		name string
		circ float64
		fit  float64
		gap  float64
		want int
	}{
		{"first ring", 2 * math.Pi * 23.1, 11, 1, 6},
		{"too small", 10, 11, 1, 0},
		{"exact", 46, 11, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FitCount(tt.circ, tt.fit, tt.gap))
		})
	}
}
