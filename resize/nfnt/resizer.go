package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/baseimg/surface"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ surface.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `nfnt` }

func (r *Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	m := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	return surface.NRGBA(m), nil
}
