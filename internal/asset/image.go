// Package asset decodes the source image into the pixel buffer the layout
// samples from.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Error reports an image that could not be read or decoded. It is fatal to
// startup.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "asset: " + e.Err.Error()
	}
	return fmt.Sprintf("asset %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var ErrEmptyImage = errors.New("image has no pixels")

// Image is a decoded picture as a row-major, 4 bytes per pixel, non-premultiplied
// R,G,B,A buffer.
type Image struct {
	Width  int
	Height int
	Pix    []byte

	nrgba *image.NRGBA
}

// FromImage copies any image.Image into an Image anchored at the origin.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &Error{Err: ErrEmptyImage}
	}
	dst, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) || dst.Stride != 4*b.Dx() {
		dst = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	}
	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    dst.Pix,
		nrgba:  dst,
	}, nil
}

// Decode reads any registered format (PNG, JPEG, GIF, BMP, WebP).
func Decode(r io.Reader) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, &Error{Err: err}
	}
	img, err := FromImage(src)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("format", format).Int("width", img.Width).Int("height", img.Height).Msg("image decoded")
	return img, nil
}

// Load decodes the image file at path.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		var ae *Error
		if errors.As(err, &ae) {
			ae.Path = path
		}
		return nil, err
	}
	return img, nil
}

// RGB returns the color channels of the pixel at (x, y). Coordinates outside
// the image are clamped to the nearest edge.
func (m *Image) RGB(x, y int) (r, g, b uint8) {
	x = clampInt(x, 0, m.Width-1)
	y = clampInt(y, 0, m.Height-1)
	idx := (y*m.Width + x) * 4
	return m.Pix[idx], m.Pix[idx+1], m.Pix[idx+2]
}

// Image exposes the buffer as an image.Image for drawing.
func (m *Image) Image() image.Image {
	if m.nrgba == nil {
		m.nrgba = &image.NRGBA{Pix: m.Pix, Stride: 4 * m.Width, Rect: image.Rect(0, 0, m.Width, m.Height)}
	}
	return m.nrgba
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
