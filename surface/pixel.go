package surface

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/gift"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/util"
)

// ColorFunc maps the non-premultiplied 8 bit channels of a pixel to new values.
// Results are clamped to [0, 255].
type ColorFunc func(r, g, b, a int) (int, int, int, int)

// Channel is a colour channel name: 'r', 'g' or 'b'.
type Channel byte

const (
	ChannelRed   Channel = 'r'
	ChannelGreen Channel = 'g'
	ChannelBlue  Channel = 'b'
)

// ParseChannels reads channel names like "rg" or "b".
func ParseChannels(s string) ([]Channel, error) {
	var chs []Channel
	for _, c := range strings.ToLower(strings.TrimSpace(s)) {
		switch ch := Channel(c); ch {
		case ChannelRed, ChannelGreen, ChannelBlue:
			chs = append(chs, ch)
		case ',', ' ':
		default:
			return nil, errors.Newf(consts.ErrInvalidArgument, `unknown colour channel %q`, c)
		}
	}
	return chs, nil
}

// PixelAt returns the colour at (x, y).
func (i *Image) PixelAt(x, y int) (color.NRGBA, error) {
	if i == nil {
		return color.NRGBA{}, errors.NilReceiver()
	}
	if !image.Pt(x, y).In(i.surf.Rect) {
		return color.NRGBA{}, errors.Newf(consts.ErrOutOfBounds, `pixel (%d, %d) outside of %v`, x, y, i.surf.Rect)
	}
	return i.surf.NRGBAAt(x, y), nil
}

// SetAt sets the colour of the pixel at (x, y).
func (i *Image) SetAt(x, y int, c color.Color) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if c == nil {
		return errors.NilParam()
	}
	if !image.Pt(x, y).In(i.surf.Rect) {
		return errors.Newf(consts.ErrOutOfBounds, `pixel (%d, %d) outside of %v`, x, y, i.surf.Rect)
	}
	i.surf.Set(x, y, c)
	i.lastTransform = transformCache{}
	return nil
}

// SetAtString is SetAt with a colour parsed by ParseColor.
func (i *Image) SetAtString(x, y int, colorStr string) error {
	c, err := ParseColor(colorStr)
	if err != nil {
		return err
	}
	return i.SetAt(x, y, c)
}

// ApplyImageFunction replaces every pixel with the output of fn.
func (i *Image) ApplyImageFunction(fn ColorFunc) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if fn == nil {
		return errors.NilParam()
	}
	if i.surf.Rect.Empty() {
		return nil
	}
	g := gift.New(gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		ri, gi, bi, ai := fn(unitToByte(r0), unitToByte(g0), unitToByte(b0), unitToByte(a0))
		return byteToUnit(ri), byteToUnit(gi), byteToUnit(bi), byteToUnit(ai)
	}))
	// fn may keep state
	g.SetParallelization(false)
	dst := image.NewNRGBA(g.Bounds(i.surf.Rect))
	g.Draw(dst, i.surf)
	i.setSurface(dst)
	return nil
}

func unitToByte(v float32) int { return int(v*255 + 0.5) }

func byteToUnit(v int) float32 { return float32(util.Clamp(v, 0, 255)) / 255 }

// ToBW converts the image to black and white using the channel average.
func (i *Image) ToBW() error {
	return i.ApplyImageFunction(func(r, g, b, a int) (int, int, int, int) {
		c := (r + g + b) / 3
		return c, c, c, a
	})
}

// PickChannels keeps the listed colour channels (1 to 3 of 'r', 'g', 'b')
// and zeroes the others. Alpha is kept.
func (i *Image) PickChannels(channels ...Channel) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if len(channels) < 1 || len(channels) > 3 {
		return errors.Newf(consts.ErrInvalidArgument, `between 1 and 3 channels required, got %d`, len(channels))
	}
	var keepR, keepG, keepB bool
	for _, ch := range channels {
		switch ch {
		case ChannelRed:
			keepR = true
		case ChannelGreen:
			keepG = true
		case ChannelBlue:
			keepB = true
		default:
			return errors.Newf(consts.ErrInvalidArgument, `unknown colour channel %q`, rune(ch))
		}
	}
	return i.ApplyImageFunction(func(r, g, b, a int) (int, int, int, int) {
		if !keepR {
			r = 0
		}
		if !keepG {
			g = 0
		}
		if !keepB {
			b = 0
		}
		return r, g, b, a
	})
}

// Equals reports whether both surfaces have the same size and pixels.
func (i *Image) Equals(other *Image) bool {
	if i == nil || other == nil {
		return i == other
	}
	a, b := i.surf, other.surf
	if a.Rect.Size() != b.Rect.Size() {
		return false
	}
	rowLen := 4 * a.Rect.Dx()
	for y := 0; y < a.Rect.Dy(); y++ {
		oa, ob := a.PixOffset(a.Rect.Min.X, a.Rect.Min.Y+y), b.PixOffset(b.Rect.Min.X, b.Rect.Min.Y+y)
		if !bytes.Equal(a.Pix[oa:oa+rowLen], b.Pix[ob:ob+rowLen]) {
			return false
		}
	}
	return true
}
