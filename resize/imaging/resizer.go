package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/baseimg/surface"
)

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct {
	// Filter defaults to imaging.Lanczos
	Filter *imaging.ResampleFilter
}

var _ surface.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `imaging` }

func (r *Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	filter := imaging.Lanczos
	if r.Filter != nil {
		filter = *r.Filter
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}
