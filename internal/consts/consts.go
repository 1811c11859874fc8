package consts

import (
	"errors"
)

var (
	ErrNilImage          = errors.New(`nil image`)
	ErrInvalidArgument   = errors.New(`invalid argument`)
	ErrInvalidMode       = errors.New(`unknown image drawing mode`)
	ErrOutOfBounds       = errors.New(`position out of bounds`)
	ErrUnsupportedFormat = errors.New(`unsupported image format`)
	ErrFileNotFound      = errors.New(`image file does not exist`)
	ErrEmptySurface      = errors.New(`empty surface`)
	ErrUnknownResizer    = errors.New(`unknown resizer`)
)

const (
	// pseudo extensions for images not loaded from a file path
	ExtensionBase64 = `base64`
	ExtensionBytes  = `bytes`
)
