package surface

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resizer scales an image to exactly size.
// Implementations live in the resize/ packages.
type Resizer interface {
	Name() string
	Resize(img image.Image, size image.Point) (*image.NRGBA, error)
}

// NRGBA returns img as an NRGBA image with origin (0, 0), copying only if needed.
func NRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	if m, ok := img.(*Image); ok {
		return m.surf
	}
	return cloneNRGBA(img)
}

// fallbackResizer is used when no Resizer was set.
type fallbackResizer struct{}

func (fallbackResizer) Name() string { return `xdraw-approx-bilinear` }

func (fallbackResizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func (i *Image) smoothResizer() Resizer {
	if i.resizer != nil {
		return i.resizer
	}
	return fallbackResizer{}
}

// Resizer returns the resizer used for smooth scaling.
func (i *Image) Resizer() Resizer { return i.smoothResizer() }
