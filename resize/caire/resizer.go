// Seam Carving for Content-Aware Image Resizing
package caire

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/esimov/caire"

	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/surface"
)

// Resizer changes the aspect ratio by removing or inserting low energy seams
// instead of stretching the image.
type Resizer struct {
	BlurRadius     int
	SobelThreshold int
}

var _ surface.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `caire` }

func (r *Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	p := &caire.Processor{
		BlurRadius:     1,
		SobelThreshold: 4,
		NewWidth:       size.X,
		NewHeight:      size.Y,
	}
	if r.BlurRadius > 0 {
		p.BlurRadius = r.BlurRadius
	}
	if r.SobelThreshold > 0 {
		p.SobelThreshold = r.SobelThreshold
	}
	// the processor modifies its input
	m, err := p.Resize(imaging.Clone(img))
	if err != nil {
		return nil, errors.New(err)
	}
	return surface.NRGBA(m), nil
}
