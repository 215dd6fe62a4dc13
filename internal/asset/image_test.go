package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	img, err := Decode(bytes.NewReader(encodePNG(t, src)))
	require.NoError(t, err)
	require.Equal(t, 3, img.Width)
	require.Equal(t, 2, img.Height)
	require.Len(t, img.Pix, 3*2*4)

	idx := (1*3 + 2) * 4
	require.Equal(t, []byte{200, 100, 50, 255}, img.Pix[idx:idx+4])
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not an image"))
	require.Error(t, err)

	var ae *Error
	require.True(t, errors.As(err, &ae))
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.png")
	_, err := Load(path)

	var ae *Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, path, ae.Path)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadCorruptFileKeepsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644))

	_, err := Load(path)
	var ae *Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, path, ae.Path)
	require.Contains(t, err.Error(), path)
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.Set(10, 10, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	img, err := FromImage(src)
	require.NoError(t, err)
	require.Equal(t, 4, img.Width)
	require.Equal(t, 2, img.Height)

	r, g, b := img.RGB(0, 0)
	require.Equal(t, [3]uint8{9, 8, 7}, [3]uint8{r, g, b})
	require.Equal(t, image.Rect(0, 0, 4, 2), img.Image().Bounds())
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	require.ErrorIs(t, err, ErrEmptyImage)
}

func TestRGBClampsToEdge(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 2, A: 255})
	img, err := FromImage(src)
	require.NoError(t, err)

	r, _, _ := img.RGB(-5, -5)
	require.Equal(t, uint8(1), r)
	r, _, _ = img.RGB(50, 50)
	require.Equal(t, uint8(2), r)
}
