package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
)

// Crop keeps the w×h rectangle at (x, y).
func (i *Image) Crop(x, y, w, h int) error {
	if i == nil {
		return errors.NilReceiver()
	}
	W, H := i.Width(), i.Height()
	switch {
	case x < 0 || x >= W:
		return errors.Newf(consts.ErrInvalidArgument, `x position must be between 0 and the image width: %d`, x)
	case y < 0 || y >= H:
		return errors.Newf(consts.ErrInvalidArgument, `y position must be between 0 and the image height: %d`, y)
	case w <= 0 || w > W:
		return errors.Newf(consts.ErrInvalidArgument, `width must be greater than zero and less than the image width: %d`, w)
	case h <= 0 || h > H:
		return errors.Newf(consts.ErrInvalidArgument, `height must be greater than zero and less than the image height: %d`, h)
	case x+w > W:
		return errors.Newf(consts.ErrInvalidArgument, `crop box cannot exceed image width`)
	case y+h > H:
		return errors.Newf(consts.ErrInvalidArgument, `crop box cannot exceed image height`)
	}
	return i.CropRect(image.Rect(x, y, x+w, y+h))
}

// CropRect keeps the part of the surface inside r.
func (i *Image) CropRect(r image.Rectangle) error {
	if i == nil {
		return errors.NilReceiver()
	}
	r = r.Canon()
	if r.Empty() || !r.In(i.surf.Rect) {
		return errors.Newf(consts.ErrOutOfBounds, `crop rectangle %v outside of surface %v`, r, i.surf.Rect)
	}
	i.setSurface(imaging.Crop(i.surf, r))
	return nil
}

// Flip mirrors the image horizontally (x) and/or vertically (y).
// The dimensions do not change.
func (i *Image) Flip(x, y bool) error {
	if i == nil {
		return errors.NilReceiver()
	}
	switch {
	case x && y:
		i.setSurface(imaging.Rotate180(i.surf))
	case x:
		i.setSurface(imaging.FlipH(i.surf))
	case y:
		i.setSurface(imaging.FlipV(i.surf))
	default:
		return errors.Newf(consts.ErrInvalidArgument, `at least one axis should be flipped`)
	}
	return nil
}

// Scale multiplies width and height by the factors fx and fy.
// Smooth scaling is only used for sources with at least 24 bits per pixel.
func (i *Image) Scale(fx, fy float64, smooth bool) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if !validFactor(fx) || !validFactor(fy) {
		return errors.Newf(consts.ErrInvalidArgument, `width and height must be greater than zero: %v, %v`, fx, fy)
	}
	if fx == 1 && fy == 1 {
		return nil
	}
	size := image.Pt(int(float64(i.Width())*fx), int(float64(i.Height())*fy))
	return i.scaleTo(size, smooth && i.depth >= 24)
}

// Resize sets the image size to w×h pixels.
func (i *Image) Resize(w, h int, smooth bool) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if w <= 0 || h <= 0 {
		return errors.Newf(consts.ErrInvalidArgument, `width and height must be greater than zero: %d, %d`, w, h)
	}
	if w == i.Width() && h == i.Height() {
		return nil
	}
	return i.scaleTo(image.Pt(w, h), smooth && i.depth >= 24)
}

// Scale2x doubles the image size with the AdvanceMAME Scale2X algorithm,
// a "jaggy-less" scale for pixel art. On photographic and antialiased
// images it looks like an unfiltered scale.
func (i *Image) Scale2x() error {
	if i == nil {
		return errors.NilReceiver()
	}
	if i.surf.Rect.Empty() {
		return nil
	}
	i.setSurface(scale2x(i.surf))
	return nil
}

// Rotate rotates the image counterclockwise by angle degrees without
// filtering. Negative angles rotate clockwise. Unless the angle is a multiple
// of 90 the image grows to hold the rotated content, the padding is transparent.
func (i *Image) Rotate(angle float64) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return errors.Newf(consts.ErrInvalidArgument, `invalid rotation angle: %v`, angle)
	}
	g := gift.New(gift.Rotate(float32(angle), color.Transparent, gift.NearestNeighborInterpolation))
	dst := image.NewNRGBA(g.Bounds(i.surf.Rect))
	g.Draw(dst, i.surf)
	i.setSurface(NRGBA(dst))
	return nil
}

func (i *Image) scaleTo(size image.Point, smooth bool) error {
	m, err := i.scaled(size, smooth)
	if err != nil {
		return err
	}
	i.setSurface(m)
	return nil
}

// scaled returns the surface scaled to size without touching i.
func (i *Image) scaled(size image.Point, smooth bool) (*image.NRGBA, error) {
	size = image.Pt(max(size.X, 0), max(size.Y, 0))
	if size.X == 0 || size.Y == 0 || i.surf.Rect.Empty() {
		return image.NewNRGBA(image.Rectangle{Max: size}), nil
	}
	if !smooth {
		return imaging.Resize(i.surf, size.X, size.Y, imaging.NearestNeighbor), nil
	}
	rsz := i.smoothResizer()
	var m *image.NRGBA
	err := logx.TimeIt(func() error {
		var err error
		m, err = rsz.Resize(i.surf, size)
		return err
	}, `smooth scale`, i, `resizer`, rsz.Name(), `size`, size)
	if err != nil {
		return nil, errors.New(err)
	}
	if m == nil {
		return nil, errors.Newf(consts.ErrNilImage, `resizer %s returned no image`, rsz.Name())
	}
	m = NRGBA(m)
	if m.Rect.Size() != size {
		// some resizers round the target size
		return imaging.Resize(m, size.X, size.Y, imaging.NearestNeighbor), nil
	}
	return m, nil
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
