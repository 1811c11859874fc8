// Package rdefault provides the resizer used unless another one is configured.
package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/baseimg/resize/rez"
	"github.com/srlehn/baseimg/resize/xdraw"
	"github.com/srlehn/baseimg/surface"
)

type Resizer struct{}

var _ surface.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `default` }

func (r *Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	if runtime.GOARCH != `amd64` {
		return xdraw.ApproxBiLinear().Resize(img, size)
	}
	if s, ok := img.(*surface.Image); ok {
		img = surface.NRGBA(s)
	}
	switch img.(type) {
	case *image.YCbCr, *image.RGBA, *image.NRGBA, *image.Gray:
		// use SIMD assembly if possible
		imgRet, err := rez.Resizer{}.Resize(img, size)
		if err == nil {
			return imgRet, nil
		}
	}
	return xdraw.ApproxBiLinear().Resize(img, size)
}
