package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/baseimg/surface"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ surface.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `bild` }

func (r *Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	// bild returns premultiplied RGBA
	return surface.NRGBA(transform.Resize(img, size.X, size.Y, transform.Lanczos)), nil
}
