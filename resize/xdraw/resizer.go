// Package xdraw provides resizers using golang.org/x/image/draw.
// ApproxBiLinear is recommended for balanced speed/quality scaling.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/baseimg/surface"
)

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	name   string
	scaler draw.Scaler
}

var _ surface.Resizer = (*resizer)(nil)

// ApproxBiLinear creates a resizer with ApproxBiLinear scaling (balanced speed/quality).
func ApproxBiLinear() surface.Resizer {
	return &resizer{name: `xdraw`, scaler: draw.ApproxBiLinear}
}

// BiLinear creates a resizer with BiLinear scaling (higher quality, slower).
func BiLinear() surface.Resizer {
	return &resizer{name: `xdraw-bilinear`, scaler: draw.BiLinear}
}

// CatmullRom creates a resizer with CatmullRom scaling (highest quality, slowest).
func CatmullRom() surface.Resizer {
	return &resizer{name: `xdraw-catmullrom`, scaler: draw.CatmullRom}
}

func (r *resizer) Name() string { return r.name }

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
