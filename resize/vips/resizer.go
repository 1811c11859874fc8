//go:build vips

// Package vips resizes with libvips through cgo.
// Build with the "vips" tag, libvips must be installed.
package vips

import (
	"bytes"
	"image"
	"image/png"

	"gopkg.in/h2non/bimg.v1"

	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/surface"
)

// Resizer uses "gopkg.in/h2non/bimg.v1"
type Resizer struct{}

var _ surface.Resizer = (*Resizer)(nil)

func (r *Resizer) Name() string { return `vips` }

// Resize round-trips through png since libvips works on encoded buffers.
func (r *Resizer) Resize(img image.Image, size image.Point) (*image.NRGBA, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, surface.NRGBA(img)); err != nil {
		return nil, errors.New(err)
	}
	out, err := bimg.NewImage(buf.Bytes()).Process(bimg.Options{
		Width:        size.X,
		Height:       size.Y,
		Force:        true,
		Type:         bimg.PNG,
		Interpolator: bimg.Bicubic,
	})
	if err != nil {
		return nil, errors.New(err)
	}
	m, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, errors.New(err)
	}
	return surface.NRGBA(m), nil
}
