package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/baseimg/internal/util"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, util.Clamp(-3, 0, 255))
	assert.Equal(t, 255, util.Clamp(300, 0, 255))
	assert.Equal(t, 17, util.Clamp(17, 0, 255))
	assert.Equal(t, 0.5, util.Clamp(0.5, 0.0, 1.0))
}

func TestCeilDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{10, 5, 2},
		{11, 5, 3},
		{1, 5, 1},
		{0, 5, 0},
		{-4, 5, 0},
		{-11, 5, -2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, util.CeilDiv(tc.a, tc.b), `%d/%d`, tc.a, tc.b)
	}
}
