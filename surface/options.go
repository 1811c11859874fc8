package surface

import (
	"image"
	"log/slog"

	"github.com/srlehn/baseimg/internal/errors"
)

type Option interface {
	ApplyOption(i *Image) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Image) error

func (o OptFunc) ApplyOption(i *Image) error { return o(i) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(i *Image) error { return i.SetOptions([]Option(o)...) }

func (i *Image) SetOptions(opts ...Option) error {
	if i == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(i); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetDrawingMode(m Mode) Option {
	return OptFunc(func(i *Image) error { return i.SetDrawingMode(m) })
}
func SetDrawingOffset(offset image.Point) Option {
	return OptFunc(func(i *Image) error { i.SetDrawingOffset(offset); return nil })
}

// SetResizer sets the scaler used for smooth scaling.
func SetResizer(rsz Resizer) Option {
	return OptFunc(func(i *Image) error { i.resizer = rsz; return nil })
}
func SetSmoothScaling(smooth bool) Option {
	return OptFunc(func(i *Image) error { i.SmoothScaling = smooth; return nil })
}
func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(i *Image) error { i.logger = logger; return nil })
}

// NoLoad validates the source and keeps its metadata but skips decoding.
// The surface stays empty until SetSurface is called.
func NoLoad() Option {
	return OptFunc(func(i *Image) error { i.noLoad = true; return nil })
}
