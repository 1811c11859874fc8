package surface

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/encoder"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
)

// Encode writes the current surface in the format named by fileExt
// (bmp, gif, jpeg, png or tiff). A whole file name is accepted.
func (i *Image) Encode(w io.Writer, fileExt string) error {
	if i == nil {
		return errors.NilReceiver()
	}
	return encoder.Encode(w, i.surf, fileExt)
}

// Save writes the current surface to a file, the format follows the extension.
func (i *Image) Save(path string) (err error) {
	if i == nil {
		return errors.NilReceiver()
	}
	ext := filepath.Ext(path)
	if !slices.Contains(encoder.Formats(), encoder.Format(ext)) {
		return errors.Newf(consts.ErrUnsupportedFormat, `cannot write %q files`, ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = errors.New(errClose)
		}
	}()
	if err := i.Encode(f, ext); err != nil {
		return err
	}
	logx.Debug(`image saved`, i, `path`, path, `size`, i.Size())
	return nil
}
