package surface

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
)

// Mode is the policy used by Image.Draw to place the image on a destination.
type Mode int

const (
	ModeCenter   Mode = 100
	ModeFill     Mode = 101
	ModeRepeatX  Mode = 102
	ModeRepeatXY Mode = 103
	ModeRepeatY  Mode = 104
	ModeSimple   Mode = 105 // just draw the image without any effect
)

var modeNames = map[Mode]string{
	ModeCenter:   `center`,
	ModeFill:     `fill`,
	ModeRepeatX:  `repeat_x`,
	ModeRepeatXY: `repeat_xy`,
	ModeRepeatY:  `repeat_y`,
	ModeSimple:   `simple`,
}

// Modes returns all drawing modes in ascending order.
func Modes() []Mode {
	return []Mode{ModeCenter, ModeFill, ModeRepeatX, ModeRepeatXY, ModeRepeatY, ModeSimple}
}

func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return `mode(` + strconv.Itoa(int(m)) + `)`
}

// ParseMode accepts mode names in any case style ("RepeatXY", "repeat-xy",
// "REPEAT_XY") or the numeric mode value.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if m := Mode(n); m.Valid() {
			return m, nil
		}
		return 0, errors.Newf(consts.ErrInvalidMode, `%d`, n)
	}
	name := strcase.ToSnake(s)
	for m, mName := range modeNames {
		if mName == name {
			return m, nil
		}
	}
	return 0, errors.Newf(consts.ErrInvalidMode, `%q`, s)
}
