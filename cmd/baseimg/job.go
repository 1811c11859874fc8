package main

import (
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/surface"
)

// job is a list of operations read from a TOML file, e.g.:
//
//	resizer = "gift"
//	smooth = true
//
//	[[ops]]
//	op = "crop"
//	x = 4
//	y = 4
//	w = 32
//	h = 32
//
//	[[ops]]
//	op = "rotate"
//	angle = 90
type job struct {
	Resizer string                   `toml:"resizer"`
	Smooth  *bool                    `toml:"smooth"`
	Ops     []map[string]interface{} `toml:"ops"`
}

// opSpec is a single operation, the fields used depend on Op.
type opSpec struct {
	Op       string  `mapstructure:"op"`
	X        int     `mapstructure:"x"`
	Y        int     `mapstructure:"y"`
	W        int     `mapstructure:"w"`
	H        int     `mapstructure:"h"`
	FX       float64 `mapstructure:"fx"`
	FY       float64 `mapstructure:"fy"`
	Angle    float64 `mapstructure:"angle"`
	Axis     string  `mapstructure:"axis"`
	Channels string  `mapstructure:"channels"`
	Smooth   *bool   `mapstructure:"smooth"`
}

func readJob(path string) (*job, []opSpec, error) {
	var j job
	md, err := toml.DecodeFile(path, &j)
	if err != nil {
		return nil, nil, errors.New(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, nil, errors.Newf(consts.ErrInvalidArgument, `job %s: unknown keys %v`, path, undecoded)
	}
	ops := make([]opSpec, 0, len(j.Ops))
	for n, raw := range j.Ops {
		var op opSpec
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			Result:           &op,
		})
		if err != nil {
			return nil, nil, errors.New(err)
		}
		if err := dec.Decode(raw); err != nil {
			return nil, nil, errors.Newf(consts.ErrInvalidArgument, `job %s: op %d: %v`, path, n+1, err)
		}
		if op.Smooth == nil {
			op.Smooth = j.Smooth
		}
		ops = append(ops, op)
	}
	return &j, ops, nil
}

func (o opSpec) smooth() bool { return o.Smooth == nil || *o.Smooth }

func (o opSpec) apply(img *surface.Image, logger *slog.Logger) error {
	if img == nil {
		return errors.NilParam()
	}
	if logger != nil {
		logger.Debug(`applying operation`, `op`, o.Op)
	}
	switch strings.ToLower(o.Op) {
	case `crop`:
		return img.Crop(o.X, o.Y, o.W, o.H)
	case `scale`:
		fy := o.FY
		if fy == 0 {
			fy = o.FX
		}
		return img.Scale(o.FX, fy, o.smooth())
	case `resize`:
		return img.Resize(o.W, o.H, o.smooth())
	case `rotate`:
		return img.Rotate(o.Angle)
	case `flip`:
		x, y, err := parseFlip(o.Axis)
		if err != nil {
			return err
		}
		return img.Flip(x, y)
	case `bw`:
		return img.ToBW()
	case `channels`:
		channels, err := surface.ParseChannels(o.Channels)
		if err != nil {
			return err
		}
		return img.PickChannels(channels...)
	case `scale2x`:
		return img.Scale2x()
	case `checkpoint`:
		img.Checkpoint()
		return nil
	case `restore`:
		img.Restore()
		return nil
	default:
		return errors.Newf(consts.ErrInvalidArgument, `unknown operation %q`, o.Op)
	}
}
