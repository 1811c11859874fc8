package main

import (
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/srlehn/baseimg"
	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
	"github.com/srlehn/baseimg/internal/util"
	"github.com/srlehn/baseimg/surface"
)

func init() {
	rootCmd.AddCommand(sheetCmd)
	fl := sheetCmd.Flags()
	fl.IntVar(&sheetFlags.tile, `tile`, 128, `tile side length in pixels`)
	fl.IntVar(&sheetFlags.columns, `columns`, 4, `tiles per row`)
	fl.StringVar(&sheetFlags.mode, `mode`, surface.ModeFill.String(), `drawing mode of the tiles`)
	fl.StringVar(&sheetFlags.background, `background`, `white`, `sheet colour`)
	fl.StringVar(&sheetFlags.foreground, `foreground`, `black`, `label colour`)
	fl.Float64Var(&sheetFlags.fontSize, `font-size`, 12, `label font size in points`)
	fl.BoolVar(&sheetFlags.labels, `labels`, true, `print the file names below the tiles`)
	fl.BoolVar(&sheetFlags.examples, `examples`, false, `include the bundled example images`)
}

var sheetCmd = &cobra.Command{
	Use:   `sheet <out> [image|dir]...`,
	Short: `draw images side by side into a contact sheet`,
	Long: `Draw images side by side into a contact sheet.

Directories are searched recursively for files with a supported extension.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(sheetFunc(args))
	},
}

var sheetFlags struct {
	tile       int
	columns    int
	mode       string
	background string
	foreground string
	fontSize   float64
	labels     bool
	examples   bool
}

type sheetConfig struct {
	tile       int
	columns    int
	background color.Color
	foreground color.Color
	fontSize   float64
	labels     bool
}

// space between the tiles and around the sheet
const sheetGap = 2

func sheetFunc(args []string) func(*slog.Logger) error {
	return func(logger *slog.Logger) error {
		fl := sheetFlags
		mode, err := surface.ParseMode(fl.mode)
		if err != nil {
			return err
		}
		cfg := sheetConfig{
			tile:     fl.tile,
			columns:  fl.columns,
			fontSize: fl.fontSize,
			labels:   fl.labels,
		}
		if cfg.background, err = surface.ParseColor(fl.background); err != nil {
			return err
		}
		if cfg.foreground, err = surface.ParseColor(fl.foreground); err != nil {
			return err
		}
		paths, err := expandInputs(args[1:])
		if err != nil {
			return err
		}
		opts := []surface.Option{surface.SetLogger(logger), surface.SetDrawingMode(mode)}
		var imgs []*surface.Image
		if fl.examples {
			for _, name := range baseimg.Examples() {
				img, err := baseimg.LoadExample(name, opts...)
				if err != nil {
					return err
				}
				imgs = append(imgs, img)
			}
		}
		for _, p := range paths {
			img, err := load(p, logger, opts...)
			if err != nil {
				// skip files that cannot be decoded
				logx.Warn(`skipping image`, logx.Prov(logger), `path`, p, `error`, err)
				continue
			}
			imgs = append(imgs, img)
		}
		sheet, err := buildSheet(imgs, cfg)
		if err != nil {
			return err
		}
		out, err := surface.NewFromImage(sheet, surface.SetLogger(logger))
		if err != nil {
			return err
		}
		return out.Save(args[0])
	}
}

// expandInputs replaces directories with the supported image files below them.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, errors.New(err)
		}
		if !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}
		var found []string
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && surface.IsValidExtension(strings.ToLower(filepath.Ext(p))) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.New(err)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

func buildSheet(imgs []*surface.Image, cfg sheetConfig) (*image.RGBA, error) {
	if len(imgs) == 0 {
		return nil, errors.Newf(consts.ErrInvalidArgument, `no images for the sheet`)
	}
	if cfg.tile <= 0 || cfg.columns <= 0 {
		return nil, errors.Newf(consts.ErrInvalidArgument, `tile size %d and columns %d must be positive`, cfg.tile, cfg.columns)
	}
	columns := min(cfg.columns, len(imgs))
	rows := util.CeilDiv(len(imgs), columns)

	var (
		labelHeight int
		goFontFace  font.Face
	)
	if cfg.labels {
		goFont, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, errors.New(err)
		}
		goFontFace = truetype.NewFace(goFont, &truetype.Options{Size: cfg.fontSize})
		defer goFontFace.Close()
		labelHeight = int(math.Ceil(float64(goFontFace.Metrics().Height)/64)) + 2*sheetGap
	}
	cellW, cellH := cfg.tile, cfg.tile+labelHeight

	rgba := image.NewRGBA(image.Rect(0, 0, columns*(cellW+sheetGap)+sheetGap, rows*(cellH+sheetGap)+sheetGap))
	dc := gg.NewContextForRGBA(rgba)
	dc.SetColor(cfg.background)
	dc.Clear()
	if cfg.labels {
		dc.SetFontFace(goFontFace)
	}
	for n, img := range imgs {
		if img == nil {
			return nil, errors.NilParam()
		}
		tile := image.NewNRGBA(image.Rect(0, 0, cfg.tile, cfg.tile))
		if err := img.Draw(tile, nil, image.Point{}); err != nil {
			return nil, err
		}
		x := sheetGap + (n%columns)*(cellW+sheetGap)
		y := sheetGap + (n/columns)*(cellH+sheetGap)
		dc.DrawImage(tile, x, y)
		if !cfg.labels {
			continue
		}
		dc.SetColor(cfg.foreground)
		label := fitLabel(dc, sheetLabel(img), float64(cellW))
		dc.DrawStringAnchored(label, float64(x)+float64(cellW)/2, float64(y+cfg.tile)+float64(labelHeight)/2, 0.5, 0.5)
	}
	return rgba, nil
}

func sheetLabel(img *surface.Image) string {
	if len(img.FileName()) == 0 {
		return img.Extension()
	}
	return img.FileName() + img.Extension()
}

// fitLabel shortens s with an ellipsis until it is at most width wide.
func fitLabel(dc *gg.Context, s string, width float64) string {
	if w, _ := dc.MeasureString(s); w <= width {
		return s
	}
	const abbrChar = '…'
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		label := string(append(r, abbrChar))
		if w, _ := dc.MeasureString(label); w <= width {
			return label
		}
	}
	return ``
}
