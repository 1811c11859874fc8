package surface

import (
	"image"
)

// scale2x doubles src with the AdvanceMAME Scale2X rules. Pixels outside
// src repeat the nearest edge pixel.
func scale2x(src *image.NRGBA) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, 2*w, 2*h))
	px := func(x, y int) []uint8 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		o := src.PixOffset(x, y)
		return src.Pix[o : o+4 : o+4]
	}
	set := func(x, y int, c []uint8) {
		o := dst.PixOffset(x, y)
		copy(dst.Pix[o:o+4], c)
	}
	eq := func(a, b []uint8) bool {
		return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			//   B
			// D E F
			//   H
			b, d, e, f, hh := px(x, y-1), px(x-1, y), px(x, y), px(x+1, y), px(x, y+1)
			e0, e1, e2, e3 := e, e, e, e
			if !eq(b, hh) && !eq(d, f) {
				if eq(d, b) {
					e0 = d
				}
				if eq(b, f) {
					e1 = f
				}
				if eq(d, hh) {
					e2 = d
				}
				if eq(hh, f) {
					e3 = f
				}
			}
			set(2*x, 2*y, e0)
			set(2*x+1, 2*y, e1)
			set(2*x, 2*y+1, e2)
			set(2*x+1, 2*y+1, e3)
		}
	}
	return dst
}
