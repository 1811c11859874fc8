package surface_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/baseimg/surface"
)

// gradient returns an opaque image where the pixel (x, y) is {10x, 10y, 100}.
func gradient(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * x), G: uint8(10 * y), B: 100, A: 255})
		}
	}
	return m
}

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, encodePNG(t, img), 0o644))
	return p
}

func wrap(t *testing.T, img image.Image, opts ...surface.Option) *surface.Image {
	t.Helper()
	i, err := surface.NewFromImage(img, opts...)
	require.NoError(t, err)
	return i
}

func pixel(t *testing.T, i *surface.Image, x, y int) color.NRGBA {
	t.Helper()
	c, err := i.PixelAt(x, y)
	require.NoError(t, err)
	return c
}

// countingResizer records how often smooth scaling was requested.
type countingResizer struct{ calls int }

func (r *countingResizer) Name() string { return `counting` }

func (r *countingResizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	r.calls++
	return imaging.Resize(img, size.X, size.Y, imaging.NearestNeighbor), nil
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
