package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/baseimg"
	"github.com/srlehn/baseimg/surface"
)

func uniformImage(t *testing.T, c color.NRGBA) *surface.Image {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	img, err := surface.NewFromImage(m, surface.SetSmoothScaling(false))
	require.NoError(t, err)
	return img
}

func TestBuildSheet(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}
	imgs := []*surface.Image{uniformImage(t, red), uniformImage(t, blue), uniformImage(t, green)}
	sheet, err := buildSheet(imgs, sheetConfig{
		tile:       16,
		columns:    2,
		background: color.White,
	})
	require.NoError(t, err)
	// two columns, two rows, gaps around every tile
	assert.Equal(t, image.Rect(0, 0, 38, 38), sheet.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, sheet.RGBAAt(sheetGap, sheetGap))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, sheet.RGBAAt(20+sheetGap, 15+sheetGap))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, sheet.RGBAAt(sheetGap, 20+sheetGap))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, sheet.RGBAAt(30, 30), `empty cell`)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, sheet.RGBAAt(0, 0), `gap`)
}

func TestBuildSheetLabels(t *testing.T) {
	logo, err := baseimg.LoadExample(baseimg.ExampleLogo)
	require.NoError(t, err)
	sheet, err := buildSheet([]*surface.Image{logo}, sheetConfig{
		tile:       32,
		columns:    4,
		background: color.White,
		foreground: color.Black,
		fontSize:   10,
		labels:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 32+2*sheetGap, sheet.Bounds().Dx())
	assert.Greater(t, sheet.Bounds().Dy(), 32+2*sheetGap)
}

func TestBuildSheetErrors(t *testing.T) {
	_, err := buildSheet(nil, sheetConfig{tile: 8, columns: 1})
	assert.Error(t, err)
	_, err = buildSheet([]*surface.Image{uniformImage(t, color.NRGBA{A: 255})}, sheetConfig{tile: 0, columns: 1})
	assert.Error(t, err)
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{`b.png`, `a.JPG`, `notes.txt`, filepath.Join(`sub`, `c.gif`)} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	single := filepath.Join(dir, `notes.txt`)
	paths, err := expandInputs([]string{single, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		single,
		filepath.Join(dir, `a.JPG`),
		filepath.Join(dir, `b.png`),
		filepath.Join(dir, `sub`, `c.gif`),
	}, paths)

	_, err = expandInputs([]string{filepath.Join(dir, `missing`)})
	assert.Error(t, err)
}
