package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/surface"
)

// Resizer uses "github.com/bamiaux/rez".
// Input and output share the pixel type, only NRGBA, RGBA, YCbCr and Gray
// sources are accepted.
type Resizer struct{}

var _ surface.Resizer = (*Resizer)(nil)

func (r Resizer) Name() string { return `rez` }

func (r Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	rect := image.Rectangle{Max: size}
	var dst image.Image
	switch m := img.(type) {
	case *surface.Image:
		return r.Resize(surface.NRGBA(m), size)
	case *image.NRGBA:
		dst = image.NewNRGBA(rect)
	case *image.RGBA:
		dst = image.NewRGBA(rect)
	case *image.Gray:
		dst = image.NewGray(rect)
	case *image.YCbCr:
		dst = image.NewYCbCr(rect, m.SubsampleRatio)
	default:
		return nil, errors.Newf(consts.ErrUnsupportedFormat, `rez cannot resize %T`, img)
	}
	if err := rez.Convert(dst, img, rez.NewBilinearFilter()); err != nil {
		return nil, errors.New(err)
	}
	return surface.NRGBA(dst), nil
}
