package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/surface"
)

func TestParseMode(t *testing.T) {
	tests := map[string]surface.Mode{
		`fill`:      surface.ModeFill,
		`Center`:    surface.ModeCenter,
		`repeat_x`:  surface.ModeRepeatX,
		`RepeatXY`:  surface.ModeRepeatXY,
		`repeat-y`:  surface.ModeRepeatY,
		`REPEAT_XY`: surface.ModeRepeatXY,
		` simple `:  surface.ModeSimple,
		`102`:       surface.ModeRepeatX,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			m, err := surface.ParseMode(in)
			require.NoError(t, err)
			assert.Equal(t, want, m)
		})
	}
}

func TestParseModeInvalid(t *testing.T) {
	for _, in := range []string{``, `stretch`, `99`, `106`} {
		_, err := surface.ParseMode(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, consts.ErrInvalidMode), in)
	}
}

func TestModeString(t *testing.T) {
	for _, m := range surface.Modes() {
		assert.True(t, m.Valid())
		back, err := surface.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
	assert.Equal(t, `mode(7)`, surface.Mode(7).String())
	assert.Len(t, surface.Modes(), 6)
}
