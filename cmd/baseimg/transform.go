package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/resize"
	"github.com/srlehn/baseimg/surface"
)

func init() {
	rootCmd.AddCommand(transformCmd)
	fl := transformCmd.Flags()
	fl.StringVar(&transformFlags.crop, `crop`, ``, `crop to x,y,w,h`)
	fl.StringVar(&transformFlags.scale, `scale`, ``, `scale by factor f or fx,fy`)
	fl.StringVar(&transformFlags.resize, `resize`, ``, `resize to <w>x<h> pixels`)
	fl.Float64Var(&transformFlags.rotate, `rotate`, 0, `rotate counter-clockwise by degrees`)
	fl.StringVar(&transformFlags.flip, `flip`, ``, `flip along x, y or xy`)
	fl.BoolVar(&transformFlags.bw, `bw`, false, `convert to black and white`)
	fl.StringVar(&transformFlags.channels, `channels`, ``, `keep only the listed channels, e.g. rg`)
	fl.BoolVar(&transformFlags.scale2x, `scale2x`, false, `double the size with Scale2X`)
	fl.BoolVar(&transformFlags.smooth, `smooth`, true, `smooth scaling`)
	fl.StringVar(&transformFlags.resizer, `resizer`, ``, `smooth scaling backend (see "resizers")`)
	fl.StringVar(&transformFlags.job, `job`, ``, `TOML file with operations applied after the flag operations`)
}

var transformCmd = &cobra.Command{
	Use:   `transform <in> <out>`,
	Short: `transform an image and save the result`,
	Long: `Transform an image and save the result.

Operations given by flags run in the order crop, scale, resize, rotate, flip,
bw, channels, scale2x. Operations from a job file follow in file order.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(transformFunc(cmd, args))
	},
}

var transformFlags struct {
	crop     string
	scale    string
	resize   string
	rotate   float64
	flip     string
	bw       bool
	channels string
	scale2x  bool
	smooth   bool
	resizer  string
	job      string
}

func transformFunc(cmd *cobra.Command, args []string) func(*slog.Logger) error {
	return func(logger *slog.Logger) error {
		ops, err := flagOps(cmd)
		if err != nil {
			return err
		}
		resizerName := transformFlags.resizer
		if len(transformFlags.job) > 0 {
			j, jobOps, err := readJob(transformFlags.job)
			if err != nil {
				return err
			}
			if len(resizerName) == 0 {
				resizerName = j.Resizer
			}
			ops = append(ops, jobOps...)
		}
		if len(ops) == 0 {
			return errors.Newf(consts.ErrInvalidArgument, `no operations given`)
		}
		var opts []surface.Option
		if len(resizerName) > 0 {
			rsz, err := resize.ByName(resizerName)
			if err != nil {
				return err
			}
			opts = append(opts, surface.SetResizer(rsz))
		}
		img, err := load(args[0], logger, opts...)
		if err != nil {
			return err
		}
		for _, op := range ops {
			if err := op.apply(img, logger); err != nil {
				return err
			}
		}
		return img.Save(args[1])
	}
}

// flagOps collects the operations set on the command line in their fixed order.
func flagOps(cmd *cobra.Command) ([]opSpec, error) {
	fl := transformFlags
	smooth := fl.smooth
	var ops []opSpec
	if len(fl.crop) > 0 {
		r, err := parseRect(fl.crop)
		if err != nil {
			return nil, err
		}
		ops = append(ops, opSpec{Op: `crop`, X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()})
	}
	if len(fl.scale) > 0 {
		fx, fy, err := parseFactors(fl.scale)
		if err != nil {
			return nil, err
		}
		ops = append(ops, opSpec{Op: `scale`, FX: fx, FY: fy, Smooth: &smooth})
	}
	if len(fl.resize) > 0 {
		size, err := parseSize(fl.resize)
		if err != nil {
			return nil, err
		}
		ops = append(ops, opSpec{Op: `resize`, W: size.X, H: size.Y, Smooth: &smooth})
	}
	if cmd.Flags().Changed(`rotate`) {
		ops = append(ops, opSpec{Op: `rotate`, Angle: fl.rotate})
	}
	if len(fl.flip) > 0 {
		ops = append(ops, opSpec{Op: `flip`, Axis: fl.flip})
	}
	if fl.bw {
		ops = append(ops, opSpec{Op: `bw`})
	}
	if len(fl.channels) > 0 {
		ops = append(ops, opSpec{Op: `channels`, Channels: fl.channels})
	}
	if fl.scale2x {
		ops = append(ops, opSpec{Op: `scale2x`})
	}
	return ops, nil
}
