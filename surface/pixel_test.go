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

func TestPixelAt(t *testing.T) {
	img := wrap(t, gradient(3, 3))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 100, A: 255}, pixel(t, img, 1, 2))
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := img.PixelAt(p.X, p.Y)
		assert.True(t, errors.Is(err, consts.ErrOutOfBounds), p)
	}
}

func TestSetAt(t *testing.T) {
	img := wrap(t, gradient(3, 3))
	require.NoError(t, img.SetAt(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4}))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, pixel(t, img, 1, 1))

	require.NoError(t, img.SetAtString(0, 0, `#ff8000`))
	assert.Equal(t, color.NRGBA{R: 255, G: 128, A: 255}, pixel(t, img, 0, 0))
	require.NoError(t, img.SetAtString(2, 2, `white`))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, pixel(t, img, 2, 2))

	assert.True(t, errors.Is(img.SetAt(3, 0, color.Black), consts.ErrOutOfBounds))
	assert.True(t, errors.Is(img.SetAtString(0, 0, `no-colour`), consts.ErrInvalidArgument))
	assert.Error(t, img.SetAt(0, 0, nil))
}

func TestApplyImageFunction(t *testing.T) {
	img := wrap(t, gradient(2, 2))
	var calls int
	require.NoError(t, img.ApplyImageFunction(func(r, g, b, a int) (int, int, int, int) {
		calls++
		return r + 300, g - 300, b + 5, a
	}))
	assert.Equal(t, 4, calls)
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 105, A: 255}, pixel(t, img, 1, 1))

	assert.Error(t, img.ApplyImageFunction(nil))
}

func TestApplyImageFunctionExact(t *testing.T) {
	img := wrap(t, gradient(4, 4))
	ref := img.Copy()
	require.NoError(t, img.ApplyImageFunction(func(r, g, b, a int) (int, int, int, int) { return r, g, b, a }))
	assert.True(t, img.Equals(ref))
}

func TestToBW(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 31, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	img := wrap(t, src)
	require.NoError(t, img.ToBW())
	assert.Equal(t, color.NRGBA{R: 20, G: 20, B: 20, A: 255}, pixel(t, img, 0, 0))
	assert.Equal(t, color.NRGBA{R: 85, G: 85, B: 85, A: 128}, pixel(t, img, 1, 0))
}

func TestPickChannels(t *testing.T) {
	c := color.NRGBA{R: 11, G: 22, B: 33, A: 200}
	tests := []struct {
		channels string
		want     color.NRGBA
	}{
		{`r`, color.NRGBA{R: 11, A: 200}},
		{`g`, color.NRGBA{G: 22, A: 200}},
		{`rb`, color.NRGBA{R: 11, B: 33, A: 200}},
		{`r,g,b`, c},
	}
	for _, tt := range tests {
		t.Run(tt.channels, func(t *testing.T) {
			chs, err := surface.ParseChannels(tt.channels)
			require.NoError(t, err)
			img := wrap(t, uniform(2, 2, c))
			require.NoError(t, img.PickChannels(chs...))
			assert.Equal(t, tt.want, pixel(t, img, 1, 1))
		})
	}

	img := wrap(t, uniform(1, 1, c))
	assert.True(t, errors.Is(img.PickChannels(), consts.ErrInvalidArgument))
	assert.True(t, errors.Is(img.PickChannels('r', 'g', 'b', 'r'), consts.ErrInvalidArgument))
	assert.True(t, errors.Is(img.PickChannels('a'), consts.ErrInvalidArgument))
	assert.Equal(t, c, pixel(t, img, 0, 0))

	_, err := surface.ParseChannels(`rgx`)
	assert.True(t, errors.Is(err, consts.ErrInvalidArgument))
}

func TestEquals(t *testing.T) {
	a := wrap(t, gradient(3, 3))
	b := wrap(t, gradient(3, 3))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(wrap(t, gradient(3, 2))))
	require.NoError(t, b.SetAt(2, 2, color.Black))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

func TestParseColor(t *testing.T) {
	tests := map[string]color.NRGBA{
		`#000`:      {A: 255},
		`#ff0000`:   {R: 255, A: 255},
		`#00FF0080`: {G: 255, A: 128},
		`0x0000ff`:  {B: 255, A: 255},
		`Red`:       {R: 255, A: 255},
		`transparent`: {},
	}
	for in, want := range tests {
		c, err := surface.ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c, in)
	}
	for _, in := range []string{``, `#12`, `#gggggg`, `blurple`} {
		_, err := surface.ParseColor(in)
		assert.Error(t, err, in)
	}
}
