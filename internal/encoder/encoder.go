// Package encoder writes images in the format named by a file extension.
package encoder

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
)

// JPEGQuality is used for jpeg output.
var JPEGQuality = 90

// Format returns the normalized format name for a file extension or a whole file name.
func Format(fileExt string) string {
	if strings.Contains(fileExt, `.`) {
		fileExt = filepath.Ext(fileExt)
	}
	f := strings.ToLower(strings.TrimPrefix(fileExt, `.`))
	switch f {
	case `jpg`:
		return `jpeg`
	case `tif`:
		return `tiff`
	}
	return f
}

// Formats lists the writable formats.
func Formats() []string { return []string{`bmp`, `gif`, `jpeg`, `png`, `tiff`} }

func Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.NilParam()
	}
	fmtStr := Format(fileExt)
	if len(fmtStr) == 0 {
		return errors.Newf(consts.ErrUnsupportedFormat, `no file format specified`)
	}
	var err error
	switch fmtStr {
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		err = gif.Encode(w, img, nil)
	case `png`:
		err = png.Encode(w, img)
	case `tiff`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case `jpeg`:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	default:
		return errors.Newf(consts.ErrUnsupportedFormat, `cannot write %q`, fmtStr)
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}
