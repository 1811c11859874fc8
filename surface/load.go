package surface

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	_ "github.com/spakin/netpbm" // pbm, pgm, ppm
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
)

var validExtensions = []string{
	`.bmp`, `.gif`, `.jpeg`, `.jpg`, `.pbm`, `.pgm`, `.png`, `.ppm`, `.tif`, `.tiff`, `.webp`,
}

// ValidExtensions lists the file extensions accepted by New and NewFromFS.
func ValidExtensions() []string { return slices.Clone(validExtensions) }

func IsValidExtension(ext string) bool {
	return slices.Contains(validExtensions, strings.ToLower(ext))
}

func errInvalidExtension(ext string) error {
	return errors.Newf(consts.ErrUnsupportedFormat, `file extension %q not valid, please use: %s`,
		ext, strings.Join(validExtensions, `,`))
}

// New loads the image file at path.
func New(path string, opts ...Option) (*Image, error) {
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return nil, errors.Newf(consts.ErrFileNotFound,
			`file %s does not exist or could not be found, please check if the path of the image is valid`, path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !IsValidExtension(ext) {
		return nil, errInvalidExtension(ext)
	}
	i := newImage()
	i.path = path
	i.fileName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	i.extension = ext
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.noLoad {
		return i, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err)
	}
	defer f.Close()
	if err := i.load(f); err != nil {
		return nil, err
	}
	return i, nil
}

// NewFromFS loads the image file name from fsys, e.g. an embed.FS.
func NewFromFS(fsys fs.FS, name string, opts ...Option) (*Image, error) {
	if fsys == nil {
		return nil, errors.NilParam()
	}
	stat, err := fs.Stat(fsys, name)
	if err != nil || !stat.Mode().IsRegular() {
		return nil, errors.Newf(consts.ErrFileNotFound, `file %s does not exist in file system`, name)
	}
	ext := strings.ToLower(path.Ext(name))
	if !IsValidExtension(ext) {
		return nil, errInvalidExtension(ext)
	}
	i := newImage()
	i.path = name
	i.fileName = strings.TrimSuffix(path.Base(name), path.Ext(name))
	i.extension = ext
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.noLoad {
		return i, nil
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.New(err)
	}
	defer f.Close()
	if err := i.load(f); err != nil {
		return nil, err
	}
	return i, nil
}

// NewFromBase64 loads an image from base64 encoded data. A data URI header
// ("data:image/png;base64,") is removed.
func NewFromBase64(data string, opts ...Option) (*Image, error) {
	i := newImage()
	i.path = data
	i.extension = consts.ExtensionBase64
	i.fromBase64 = true
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	b, err := decodeBase64(data)
	if err != nil {
		return nil, err
	}
	if i.noLoad {
		return i, nil
	}
	if err := i.load(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return i, nil
}

// NewFromReader decodes an image from r.
func NewFromReader(r io.Reader, opts ...Option) (*Image, error) {
	if r == nil {
		return nil, errors.NilParam()
	}
	i := newImage()
	i.extension = consts.ExtensionBytes
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.noLoad {
		return i, nil
	}
	if err := i.load(r); err != nil {
		return nil, err
	}
	return i, nil
}

// NewFromBytes decodes an encoded image, for use with "embed" etc.
func NewFromBytes(b []byte, opts ...Option) (*Image, error) {
	return NewFromReader(bytes.NewReader(b), opts...)
}

// NewFromImage wraps a copy of an in-memory image.
func NewFromImage(img image.Image, opts ...Option) (*Image, error) {
	if img == nil {
		return nil, errors.Newf(consts.ErrNilImage, `cannot wrap image`)
	}
	i := newImage()
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.depth = bitDepth(img)
	i.surf = cloneNRGBA(img)
	i.original = cloneNRGBA(img)
	return i, nil
}

func (i *Image) load(r io.Reader) error {
	img, format, err := image.Decode(r)
	if err != nil {
		return errors.Newf(consts.ErrUnsupportedFormat, `cannot decode image %q: %v`, i.source(), err)
	}
	i.depth = bitDepth(img)
	i.surf = cloneNRGBA(img)
	i.original = cloneNRGBA(img)
	i.lastTransform = transformCache{}
	logx.Debug(`image loaded`, i, `source`, i.source(), `format`, format, `size`, i.Size(), `bits`, i.depth)
	return nil
}

func (i *Image) source() string {
	switch {
	case i.fromBase64:
		return consts.ExtensionBase64
	case len(i.path) > 0:
		return i.path
	default:
		return consts.ExtensionBytes
	}
}

func decodeBase64(data string) ([]byte, error) {
	if strings.Contains(data, `base64,`) {
		// remove data URI header
		if idx := strings.IndexByte(data, ','); idx >= 0 {
			data = data[idx+1:]
		}
	}
	data = strings.TrimSpace(data)
	b, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		b, err = base64.RawStdEncoding.DecodeString(data)
	}
	if err != nil {
		return nil, errors.Newf(consts.ErrInvalidArgument, `invalid base64 image data: %v`, err)
	}
	return b, nil
}

// bitDepth maps the decoded colour model to bits per pixel.
func bitDepth(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Paletted, *image.Alpha:
		return 8
	case *image.Gray16, *image.Alpha16:
		return 16
	case *image.YCbCr:
		return 24
	case *image.CMYK:
		return 32
	case *Image:
		return m.depth
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 24
		}
	}
	return 32
}

// cloneNRGBA copies img into a new NRGBA surface with origin (0, 0).
func cloneNRGBA(img image.Image) *image.NRGBA {
	if img == nil {
		return emptySurface()
	}
	if r := img.Bounds(); r.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, max(r.Dx(), 0), max(r.Dy(), 0)))
	}
	return imaging.Clone(img)
}
