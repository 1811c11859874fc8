package util

import (
	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CeilDiv returns ceil(a/b) for b > 0.
func CeilDiv[T constraints.Integer](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a > 0) == (b > 0)) {
		q++
	}
	return q
}
