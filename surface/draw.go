package surface

import (
	"image"
	"image/draw"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
	"github.com/srlehn/baseimg/internal/util"
)

// Draw draws the image onto dst according to the drawing mode.
//
// area defaults to the bounds of dst. Each blit is anchored at the drawing
// offset plus pos. ModeFill scales the image to the size of area. The other
// modes use area as the clip rectangle within the image, like a blit with
// a source area does.
func (i *Image) Draw(dst draw.Image, area *image.Rectangle, pos image.Point) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if dst == nil {
		return errors.NilParam()
	}
	var a image.Rectangle
	if area == nil {
		a = dst.Bounds()
	} else {
		a = *area
	}
	origin := i.drawingOffset.Add(pos)
	logx.Debug(`draw image`, i, `mode`, i.drawingMode.String(), `area`, a, `origin`, origin)

	w, h := i.Width(), i.Height()
	switch i.drawingMode {
	case ModeFill:
		m, err := i.fillSurface(a.Size())
		if err != nil {
			return err
		}
		blit(dst, m, origin, nil)
	case ModeRepeatX:
		if w == 0 {
			return errors.Newf(consts.ErrEmptySurface, `cannot tile image of width 0`)
		}
		times := util.CeilDiv(a.Dx(), w)
		if times <= 0 {
			return errors.Newf(consts.ErrInvalidArgument, `invalid size, width must be greater than zero`)
		}
		for x := 0; x < times; x++ {
			blit(dst, i.surf, origin.Add(image.Pt(x*w, 0)), &a)
		}
	case ModeRepeatY:
		if h == 0 {
			return errors.Newf(consts.ErrEmptySurface, `cannot tile image of height 0`)
		}
		times := util.CeilDiv(a.Dy(), h)
		if times <= 0 {
			return errors.Newf(consts.ErrInvalidArgument, `invalid size, height must be greater than zero`)
		}
		for y := 0; y < times; y++ {
			blit(dst, i.surf, origin.Add(image.Pt(0, y*h)), &a)
		}
	case ModeRepeatXY:
		if w == 0 || h == 0 {
			return errors.Newf(consts.ErrEmptySurface, `cannot tile image of size %v`, i.Size())
		}
		timesX, timesY := util.CeilDiv(a.Dx(), w), util.CeilDiv(a.Dy(), h)
		if timesX <= 0 || timesY <= 0 {
			return errors.Newf(consts.ErrInvalidArgument, `invalid size, width and height must be greater than zero`)
		}
		for x := 0; x < timesX; x++ {
			for y := 0; y < timesY; y++ {
				blit(dst, i.surf, origin.Add(image.Pt(x*w, y*h)), &a)
			}
		}
	case ModeCenter:
		at := origin.Add(image.Pt((a.Dx()-w)/2, (a.Dy()-h)/2))
		blit(dst, i.surf, at, &a)
	case ModeSimple:
		blit(dst, i.surf, origin, &a)
	default:
		return errors.Newf(consts.ErrInvalidMode, `%d`, int(i.drawingMode))
	}
	return nil
}

// fillSurface returns the surface scaled to size, reusing the last result
// if the size did not change.
func (i *Image) fillSurface(size image.Point) (*image.NRGBA, error) {
	if c := i.lastTransform; c.img != nil && c.size == size {
		return c.img, nil
	}
	m, err := i.scaled(size, i.SmoothScaling && i.depth > 8)
	if err != nil {
		return nil, err
	}
	i.lastTransform = transformCache{size: size, img: m}
	return m, nil
}

// blit composites src over dst with the top left corner at at.
// clip restricts the drawn part of src; negative clip origins shift
// the destination instead.
func blit(dst draw.Image, src *image.NRGBA, at image.Point, clip *image.Rectangle) {
	sr := src.Rect
	if clip != nil {
		c := *clip
		if c.Min.X < 0 {
			at.X -= c.Min.X
			c.Min.X = 0
		}
		if c.Min.Y < 0 {
			at.Y -= c.Min.Y
			c.Min.Y = 0
		}
		sr = c.Intersect(sr)
	}
	if sr.Empty() {
		return
	}
	r := image.Rectangle{Min: at, Max: at.Add(sr.Size())}
	draw.Draw(dst, r, src, sr.Min, draw.Over)
}
