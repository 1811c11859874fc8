package main

import (
	"image"
	"strconv"
	"strings"

	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/errors"
)

// parseInts splits s at sep and parses exactly n integers.
func parseInts(s, sep string, n int) ([]int, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, errors.Newf(consts.ErrInvalidArgument, `%q: expected %d values separated by %q`, s, n, sep)
	}
	ret := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Newf(consts.ErrInvalidArgument, `%q: %v`, s, err)
		}
		ret[i] = v
	}
	return ret, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (image.Point, error) {
	v, err := parseInts(s, `,`, 2)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(v[0], v[1]), nil
}

// parseSize parses "<w>x<h>".
func parseSize(s string) (image.Point, error) {
	v, err := parseInts(strings.ToLower(s), `x`, 2)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(v[0], v[1]), nil
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (image.Rectangle, error) {
	v, err := parseInts(s, `,`, 4)
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

// parseFactors parses "f" or "fx,fy".
func parseFactors(s string) (fx, fy float64, _ error) {
	parts := strings.Split(s, `,`)
	if len(parts) > 2 {
		return 0, 0, errors.Newf(consts.ErrInvalidArgument, `%q: expected 1 or 2 scale factors`, s)
	}
	fs := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, errors.Newf(consts.ErrInvalidArgument, `%q: %v`, s, err)
		}
		fs[i] = f
	}
	if len(fs) == 1 {
		return fs[0], fs[0], nil
	}
	return fs[0], fs[1], nil
}

// parseFlip parses the axes "x", "y" or "xy".
func parseFlip(s string) (x, y bool, _ error) {
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'x':
			x = true
		case 'y':
			y = true
		default:
			return false, false, errors.Newf(consts.ErrInvalidArgument, `flip axis %q`, s)
		}
	}
	if !x && !y {
		return false, false, errors.Newf(consts.ErrInvalidArgument, `flip axis %q`, s)
	}
	return x, y, nil
}
