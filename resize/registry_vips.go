//go:build vips

package resize

import (
	"github.com/srlehn/baseimg/resize/vips"
	"github.com/srlehn/baseimg/surface"
)

func init() {
	resizers[`vips`] = func() surface.Resizer { return &vips.Resizer{} }
}
