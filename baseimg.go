// Package baseimg loads images into drawable surfaces with the default
// configuration. See package surface for the operations on them.
package baseimg

import (
	"embed"
	"io/fs"
	"path"
	"sort"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/resize/rdefault"
	"github.com/srlehn/baseimg/surface"
)

var (
	// chosen defaults
	resizer surface.Resizer = &rdefault.Resizer{}
)

var (
	DefaultOptions = surface.Options{
		surface.SetResizer(resizer),
		surface.SetSmoothScaling(true),
		surface.SetDrawingMode(surface.ModeFill),
	}
)

//go:embed resources/images/*.png
var examples embed.FS

const examplesDir = `resources/images`

// bundled example images
const (
	ExampleCarbonFiber = examplesDir + `/carbon_fiber.png`
	ExampleGrayLines   = examplesDir + `/gray_lines.png`
	ExampleLogo        = examplesDir + `/logo.png`
	ExampleMetal       = examplesDir + `/metal.png`
	ExampleWallpaper   = examplesDir + `/wallpaper.png`
)

// Examples lists the bundled example images.
func Examples() []string {
	entries, err := examples.ReadDir(examplesDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, path.Join(examplesDir, e.Name()))
	}
	sort.Strings(names)
	return names
}

// LoadExample loads one of the bundled example images.
// The name may be given with or without the directory.
func LoadExample(name string, opts ...surface.Option) (*surface.Image, error) {
	if path.Dir(name) == `.` {
		name = path.Join(examplesDir, name)
	}
	if _, err := fs.Stat(examples, name); err != nil {
		return nil, errors.Newf(consts.ErrFileNotFound, `no example image %q`, name)
	}
	return surface.NewFromFS(examples, name, withDefaults(opts)...)
}

// Load ...
func Load(imgFile string, opts ...surface.Option) (*surface.Image, error) {
	return surface.New(imgFile, withDefaults(opts)...)
}

// LoadBytes - for use with "embed", etc.
func LoadBytes(imgBytes []byte, opts ...surface.Option) (*surface.Image, error) {
	return surface.NewFromBytes(imgBytes, withDefaults(opts)...)
}

// LoadBase64 accepts plain base64 or a data URI.
func LoadBase64(data string, opts ...surface.Option) (*surface.Image, error) {
	return surface.NewFromBase64(data, withDefaults(opts)...)
}

// options passed by the caller are applied after the defaults
func withDefaults(opts []surface.Option) []surface.Option {
	return append([]surface.Option{DefaultOptions}, opts...)
}
