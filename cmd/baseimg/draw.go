package main

import (
	"image"
	"log/slog"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"github.com/srlehn/baseimg/surface"
)

func init() {
	rootCmd.AddCommand(drawCmd)
	fl := drawCmd.Flags()
	fl.StringVar(&drawFlags.canvas, `canvas`, `640x480`, `canvas size <w>x<h>`)
	fl.StringVar(&drawFlags.mode, `mode`, surface.ModeFill.String(), `drawing mode (see "modes")`)
	fl.StringVar(&drawFlags.offset, `offset`, ``, `drawing offset x,y`)
	fl.StringVar(&drawFlags.pos, `pos`, ``, `position x,y`)
	fl.StringVar(&drawFlags.area, `area`, ``, `area x,y,w,h, defaults to the canvas`)
	fl.StringVar(&drawFlags.background, `background`, `transparent`, `canvas colour`)
	fl.StringVar(&drawFlags.outline, `outline`, ``, `stroke the area with this colour`)
}

var drawCmd = &cobra.Command{
	Use:   `draw <in> <out>`,
	Short: `draw an image onto a canvas`,
	Long: `Draw an image onto a canvas and save the canvas.

In fill mode the image is scaled to the area. In the other modes the area
also clips the drawn part of the image.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(drawFunc(args))
	},
}

var drawFlags struct {
	canvas     string
	mode       string
	offset     string
	pos        string
	area       string
	background string
	outline    string
}

type drawConfig struct {
	canvas     image.Point
	mode       surface.Mode
	offset     image.Point
	pos        image.Point
	area       *image.Rectangle
	background string
	outline    string
}

func parseDrawFlags() (*drawConfig, error) {
	fl := drawFlags
	var (
		cfg = &drawConfig{background: fl.background, outline: fl.outline}
		err error
	)
	if cfg.canvas, err = parseSize(fl.canvas); err != nil {
		return nil, err
	}
	if cfg.mode, err = surface.ParseMode(fl.mode); err != nil {
		return nil, err
	}
	if len(fl.offset) > 0 {
		if cfg.offset, err = parsePoint(fl.offset); err != nil {
			return nil, err
		}
	}
	if len(fl.pos) > 0 {
		if cfg.pos, err = parsePoint(fl.pos); err != nil {
			return nil, err
		}
	}
	if len(fl.area) > 0 {
		area, err := parseRect(fl.area)
		if err != nil {
			return nil, err
		}
		cfg.area = &area
	}
	return cfg, nil
}

func drawFunc(args []string) func(*slog.Logger) error {
	return func(logger *slog.Logger) error {
		cfg, err := parseDrawFlags()
		if err != nil {
			return err
		}
		img, err := load(args[0], logger,
			surface.SetDrawingMode(cfg.mode),
			surface.SetDrawingOffset(cfg.offset))
		if err != nil {
			return err
		}
		canvas, err := drawOnCanvas(img, cfg)
		if err != nil {
			return err
		}
		out, err := surface.NewFromImage(canvas, surface.SetLogger(logger))
		if err != nil {
			return err
		}
		return out.Save(args[1])
	}
}

func drawOnCanvas(img *surface.Image, cfg *drawConfig) (*image.RGBA, error) {
	bg, err := surface.ParseColor(cfg.background)
	if err != nil {
		return nil, err
	}
	rgba := image.NewRGBA(image.Rectangle{Max: cfg.canvas})
	dc := gg.NewContextForRGBA(rgba)
	dc.SetColor(bg)
	dc.Clear()
	if err := img.Draw(rgba, cfg.area, cfg.pos); err != nil {
		return nil, err
	}
	if len(cfg.outline) > 0 {
		c, err := surface.ParseColor(cfg.outline)
		if err != nil {
			return nil, err
		}
		area := rgba.Bounds()
		if cfg.area != nil {
			area = *cfg.area
		}
		dc.SetColor(c)
		dc.SetLineWidth(1)
		dc.DrawRectangle(float64(area.Min.X)+0.5, float64(area.Min.Y)+0.5, float64(area.Dx()-1), float64(area.Dy()-1))
		dc.Stroke()
	}
	return rgba, nil
}
