package resize_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/resize"
	"github.com/srlehn/baseimg/surface"
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func TestResizers(t *testing.T) {
	c := color.NRGBA{R: 200, G: 40, B: 90, A: 255}
	src := uniform(16, 12, c)
	for _, name := range resize.Names() {
		if name == `caire` {
			// seam carving needs larger content to be meaningful
			continue
		}
		t.Run(name, func(t *testing.T) {
			r, err := resize.ByName(name)
			require.NoError(t, err)
			assert.NotEmpty(t, r.Name())
			for _, size := range []image.Point{{32, 24}, {8, 6}} {
				m, err := r.Resize(src, size)
				require.NoError(t, err)
				require.NotNil(t, m)
				assert.Equal(t, image.Rectangle{Max: size}, m.Bounds())
				got := m.NRGBAAt(size.X/2, size.Y/2)
				assert.InDelta(t, int(c.R), int(got.R), 2)
				assert.InDelta(t, int(c.G), int(got.G), 2)
				assert.InDelta(t, int(c.B), int(got.B), 2)
				assert.InDelta(t, 255, int(got.A), 2)
			}
		})
	}
}

func TestResizeSurface(t *testing.T) {
	img, err := surface.NewFromImage(uniform(10, 10, color.NRGBA{G: 255, A: 255}))
	require.NoError(t, err)
	r, err := resize.ByName(`default`)
	require.NoError(t, err)
	m, err := r.Resize(img, image.Pt(20, 5))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 5), m.Bounds())
	assert.Equal(t, 10, img.Width(), `source must be left untouched`)
}

func TestByName(t *testing.T) {
	r, err := resize.ByName(` GIFT `)
	require.NoError(t, err)
	assert.Equal(t, `gift`, r.Name())

	_, err = resize.ByName(`lanczos9`)
	require.Error(t, err)
	assert.ErrorIs(t, err, consts.ErrUnknownResizer)
}

func TestNames(t *testing.T) {
	names := resize.Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, `default`)
	assert.Contains(t, names, `xdraw`)
}
