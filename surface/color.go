package surface

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
)

// ParseColor reads "#rgb", "#rrggbb", "#rrggbbaa", "0xrrggbb" or an SVG colour name.
func ParseColor(s string) (color.NRGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(str, `0x`) {
		str = `#` + str[2:]
	}
	if !strings.HasPrefix(str, `#`) {
		if str == `transparent` {
			return color.NRGBA{}, nil
		}
		c, ok := colornames.Map[str]
		if !ok {
			return color.NRGBA{}, errors.Newf(consts.ErrInvalidArgument, `unknown colour %q`, s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	alpha := uint8(0xff)
	if len(str) == 9 {
		a, err := strconv.ParseUint(str[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Newf(consts.ErrInvalidArgument, `invalid alpha in colour %q`, s)
		}
		alpha = uint8(a)
		str = str[:7]
	}
	c, err := colorful.Hex(str)
	if err != nil {
		return color.NRGBA{}, errors.Newf(consts.ErrInvalidArgument, `invalid colour %q: %v`, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
