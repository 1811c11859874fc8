package surface_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/surface"
)

func TestCrop(t *testing.T) {
	img := wrap(t, gradient(5, 4))
	require.NoError(t, img.Crop(1, 2, 3, 2))
	assert.Equal(t, image.Pt(3, 2), img.Size())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 100, A: 255}, pixel(t, img, 0, 0))
	assert.Equal(t, color.NRGBA{R: 30, G: 30, B: 100, A: 255}, pixel(t, img, 2, 1))
}

func TestCropInvalid(t *testing.T) {
	tests := map[string][4]int{
		`negative_x`:   {-1, 0, 1, 1},
		`x_too_large`:  {5, 0, 1, 1},
		`negative_y`:   {0, -1, 1, 1},
		`y_too_large`:  {0, 4, 1, 1},
		`zero_width`:   {0, 0, 0, 1},
		`zero_height`:  {0, 0, 1, 0},
		`wide`:         {0, 0, 6, 1},
		`tall`:         {0, 0, 1, 5},
		`exceeds_w`:    {3, 0, 3, 1},
		`exceeds_h`:    {0, 3, 1, 2},
	}
	for name, a := range tests {
		t.Run(name, func(t *testing.T) {
			img := wrap(t, gradient(5, 4))
			err := img.Crop(a[0], a[1], a[2], a[3])
			require.Error(t, err)
			assert.True(t, errors.Is(err, consts.ErrInvalidArgument))
			assert.Equal(t, image.Pt(5, 4), img.Size())
		})
	}
}

func TestCropRect(t *testing.T) {
	img := wrap(t, gradient(5, 4))
	require.NoError(t, img.CropRect(image.Rect(4, 3, 2, 1)))
	assert.Equal(t, image.Pt(2, 2), img.Size())
	assert.Equal(t, color.NRGBA{R: 20, G: 10, B: 100, A: 255}, pixel(t, img, 0, 0))

	err := img.CropRect(image.Rect(1, 1, 3, 3))
	assert.True(t, errors.Is(err, consts.ErrOutOfBounds))
}

func TestFlip(t *testing.T) {
	src := gradient(3, 2)

	img := wrap(t, src)
	require.NoError(t, img.Flip(true, false))
	assert.Equal(t, image.Pt(3, 2), img.Size())
	assert.Equal(t, src.NRGBAAt(2, 0), pixel(t, img, 0, 0))

	img = wrap(t, src)
	require.NoError(t, img.Flip(false, true))
	assert.Equal(t, src.NRGBAAt(0, 1), pixel(t, img, 0, 0))

	img = wrap(t, src)
	require.NoError(t, img.Flip(true, true))
	assert.Equal(t, src.NRGBAAt(2, 1), pixel(t, img, 0, 0))

	err := img.Flip(false, false)
	assert.True(t, errors.Is(err, consts.ErrInvalidArgument))
}

func TestScale(t *testing.T) {
	img := wrap(t, gradient(3, 2))
	require.NoError(t, img.Scale(2, 1.5, false))
	assert.Equal(t, image.Pt(6, 3), img.Size())

	require.NoError(t, img.Scale(0.5, 1, false))
	assert.Equal(t, image.Pt(3, 3), img.Size())

	for _, f := range [][2]float64{{0, 1}, {1, -2}, {-1, -1}} {
		err := img.Scale(f[0], f[1], false)
		assert.True(t, errors.Is(err, consts.ErrInvalidArgument), f)
	}
	assert.Equal(t, image.Pt(3, 3), img.Size())
}

func TestScaleIdentity(t *testing.T) {
	rsz := &countingResizer{}
	img := wrap(t, gradient(3, 2), surface.SetResizer(rsz))
	s := img.Surface()
	require.NoError(t, img.Scale(1, 1, true))
	assert.Same(t, s, img.Surface())
	assert.Zero(t, rsz.calls)
}

func TestScaleSmooth(t *testing.T) {
	rsz := &countingResizer{}
	img := wrap(t, gradient(4, 4), surface.SetResizer(rsz))
	require.NoError(t, img.Scale(2, 2, true))
	assert.Equal(t, 1, rsz.calls)
	assert.Equal(t, image.Pt(8, 8), img.Size())

	require.NoError(t, img.Scale(0.5, 0.5, false))
	assert.Equal(t, 1, rsz.calls)

	// less than 24 bits per pixel never use the smooth scaler
	gray := wrap(t, image.NewGray(image.Rect(0, 0, 4, 4)), surface.SetResizer(rsz))
	require.NoError(t, gray.Scale(2, 2, true))
	assert.Equal(t, 1, rsz.calls)
	assert.Equal(t, image.Pt(8, 8), gray.Size())
}

func TestResize(t *testing.T) {
	rsz := &countingResizer{}
	img := wrap(t, gradient(3, 3), surface.SetResizer(rsz))
	require.NoError(t, img.Resize(7, 5, true))
	assert.Equal(t, image.Pt(7, 5), img.Size())
	assert.Equal(t, 1, rsz.calls)

	require.NoError(t, img.Resize(7, 5, true))
	assert.Equal(t, 1, rsz.calls)

	for _, s := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		err := img.Resize(s[0], s[1], false)
		assert.True(t, errors.Is(err, consts.ErrInvalidArgument), s)
	}
}

func TestScale2x(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	plain := wrap(t, uniform(2, 3, red))
	require.NoError(t, plain.Scale2x())
	assert.True(t, plain.Equals(wrap(t, uniform(4, 6, red))))

	// a diagonal step gets smoothed:
	// R B      R R B B      R R B B
	// B B  ->  R ? B B  ->  R B B B
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 0, blue)
	src.SetNRGBA(0, 1, blue)
	src.SetNRGBA(1, 1, blue)
	img := wrap(t, src)
	require.NoError(t, img.Scale2x())
	require.Equal(t, image.Pt(4, 4), img.Size())
	assert.Equal(t, red, pixel(t, img, 0, 0))
	assert.Equal(t, blue, pixel(t, img, 1, 1))
	assert.Equal(t, blue, pixel(t, img, 2, 0))
	assert.Equal(t, blue, pixel(t, img, 3, 3))
}

func TestRotate(t *testing.T) {
	src := gradient(3, 2)

	img := wrap(t, src)
	require.NoError(t, img.Rotate(90))
	require.Equal(t, image.Pt(2, 3), img.Size())
	// counterclockwise: the top right corner becomes the top left one
	assert.Equal(t, src.NRGBAAt(2, 0), pixel(t, img, 0, 0))
	assert.Equal(t, src.NRGBAAt(0, 1), pixel(t, img, 1, 2))

	img = wrap(t, src)
	require.NoError(t, img.Rotate(-90))
	require.Equal(t, image.Pt(2, 3), img.Size())
	assert.Equal(t, src.NRGBAAt(0, 1), pixel(t, img, 0, 0))

	img = wrap(t, src)
	require.NoError(t, img.Rotate(180))
	assert.Equal(t, src.NRGBAAt(2, 1), pixel(t, img, 0, 0))

	// padded with transparent pixels
	img = wrap(t, uniform(10, 10, color.NRGBA{G: 255, A: 255}))
	require.NoError(t, img.Rotate(45))
	assert.Greater(t, img.Width(), 10)
	assert.Greater(t, img.Height(), 10)
	assert.Equal(t, uint8(0), pixel(t, img, 0, 0).A)
	assert.Equal(t, uint8(255), pixel(t, img, img.Width()/2, img.Height()/2).A)
}
