package surface

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
)

// Image holds a surface loaded from a file, an encoded byte stream or an
// in-memory image, transforms it and draws it onto other surfaces.
//
// An Image is not safe for concurrent use.
type Image struct {
	path       string // file path or base64 source
	fileName   string // base name without extension, file sources only
	extension  string
	fromBase64 bool
	noLoad     bool

	drawingMode   Mode
	drawingOffset image.Point

	surf     *image.NRGBA
	original *image.NRGBA
	depth    int // bits per pixel of the decoded source

	lastTransform transformCache

	// SmoothScaling selects the smooth resizer for ModeFill drawing.
	SmoothScaling bool

	resizer Resizer
	logger  *slog.Logger
}

// transformCache holds the last surface scaled for ModeFill.
type transformCache struct {
	size image.Point
	img  *image.NRGBA
}

var (
	_ image.Image         = (*Image)(nil)
	_ logx.LoggerProvider = (*Image)(nil)
)

func newImage() *Image {
	return &Image{
		drawingMode:   ModeFill,
		surf:          emptySurface(),
		original:      emptySurface(),
		depth:         32,
		SmoothScaling: true,
	}
}

func emptySurface() *image.NRGBA { return image.NewNRGBA(image.Rectangle{}) }

// Copy returns an independent copy. The checkpoint of the copy is its
// current surface, not the checkpoint of i.
func (i *Image) Copy() *Image {
	if i == nil {
		return nil
	}
	c := &Image{
		path:          i.path,
		fileName:      i.fileName,
		extension:     i.extension,
		fromBase64:    i.fromBase64,
		noLoad:        i.noLoad,
		drawingMode:   i.drawingMode,
		drawingOffset: i.drawingOffset,
		surf:          cloneNRGBA(i.surf),
		original:      cloneNRGBA(i.surf),
		depth:         i.depth,
		SmoothScaling: i.SmoothScaling,
		resizer:       i.resizer,
		logger:        i.logger,
	}
	return c
}

// Path returns the file path, the base64 source or an empty string
// for images read from a reader.
func (i *Image) Path() string { return i.path }

// FileName returns the file name without directory and extension.
func (i *Image) FileName() string { return i.fileName }

// Extension returns the lower-cased file extension including the dot,
// or a pseudo extension for images not loaded from a path.
func (i *Image) Extension() string { return i.extension }

func (i *Image) DrawingMode() Mode { return i.drawingMode }

func (i *Image) SetDrawingMode(m Mode) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if !m.Valid() {
		return errors.Newf(consts.ErrInvalidMode, `%d`, int(m))
	}
	i.drawingMode = m
	return nil
}

func (i *Image) DrawingOffset() image.Point { return i.drawingOffset }

func (i *Image) SetDrawingOffset(offset image.Point) {
	if i == nil {
		return
	}
	i.drawingOffset = offset
}

func (i *Image) Width() int  { return i.surf.Rect.Dx() }
func (i *Image) Height() int { return i.surf.Rect.Dy() }

// Size returns the surface size as (width, height).
func (i *Image) Size() image.Point { return i.surf.Rect.Size() }

// Rect returns the surface rectangle, its origin is always (0, 0).
func (i *Image) Rect() image.Rectangle { return i.surf.Rect }

// BitSize returns the bits per pixel of the format the image was decoded from.
func (i *Image) BitSize() int { return i.depth }

// Surface returns the current surface. Changes to it are visible to i
// until the next transformation replaces the surface.
func (i *Image) Surface() draw.Image { return i.surf }

// SetSurface replaces the current surface with a copy of img.
func (i *Image) SetSurface(img image.Image) error {
	if i == nil {
		return errors.NilReceiver()
	}
	if img == nil {
		return errors.NilParam()
	}
	i.depth = bitDepth(img)
	i.setSurface(cloneNRGBA(img))
	return nil
}

// Logger implements logx.LoggerProvider.
func (i *Image) Logger() *slog.Logger {
	if i == nil {
		return nil
	}
	return i.logger
}

func (i *Image) ColorModel() color.Model { return color.NRGBAModel }

func (i *Image) Bounds() image.Rectangle {
	if i == nil || i.surf == nil {
		return image.Rectangle{}
	}
	return i.surf.Rect
}

func (i *Image) At(x, y int) color.Color {
	if i == nil || i.surf == nil {
		return color.NRGBA{}
	}
	return i.surf.NRGBAAt(x, y)
}

// setSurface replaces the current surface and drops the fill cache.
func (i *Image) setSurface(m *image.NRGBA) {
	if m == nil {
		m = emptySurface()
	}
	i.surf = m
	i.lastTransform = transformCache{}
}

// Restore resets the surface to the last checkpoint.
func (i *Image) Restore() {
	if i == nil {
		return
	}
	i.setSurface(cloneNRGBA(i.original))
}

// Checkpoint makes the current surface the one Restore returns to.
func (i *Image) Checkpoint() {
	if i == nil {
		return
	}
	i.original = cloneNRGBA(i.surf)
}
