package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/baseimg/surface"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	// Resampling defaults to gift.LanczosResampling
	Resampling gift.Resampling
}

var _ surface.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `gift` }

func (r *Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	resampling := r.Resampling
	if resampling == nil {
		resampling = gift.LanczosResampling
	}
	m := image.NewNRGBA(image.Rectangle{Max: size})
	gift.New(gift.Resize(size.X, size.Y, resampling)).Draw(m, img)
	return m, nil
}
