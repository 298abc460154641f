package profile

import (
	"errors"
	"fmt"
)

// Errors returned by profile primitives.
var (
	ErrEmptyProfile = errors.New("profile: empty profile")
	ErrNegativePad  = errors.New("profile: pad width must be >= 0")
)

// MirrorExtend returns p extended by left and right samples of whole-sample
// mirror reflection: the virtual sample at index -1 is p[0], at -2 is p[1],
// and symmetrically past the right edge. Pads wider than len(p) continue the
// period-2·len(p) reflection, so the extension stays continuous in value at
// every boundary.
//
// For left == right == len(p) the result is exactly
// reverse(p) ++ p ++ reverse(p).
func MirrorExtend(p []float64, left, right int) ([]float64, error) {
	n := len(p)
	if n == 0 {
		return nil, ErrEmptyProfile
	}
	if left < 0 || right < 0 {
		return nil, ErrNegativePad
	}

	out := make([]float64, left+n+right)
	for i := range out {
		out[i] = p[reflectIndex(i-left, n)]
	}
	return out, nil
}

// reflectIndex maps a virtual index (possibly negative or >= n) onto [0, n)
// via whole-sample symmetry with period 2n.
func reflectIndex(j, n int) int {
	period := 2 * n
	m := j % period
	if m < 0 {
		m += period
	}
	if m < n {
		return m
	}
	return period - 1 - m
}

// Crop returns a copy of p[offset : offset+n].
func Crop(p []float64, offset, n int) ([]float64, error) {
	if offset < 0 || n < 0 || offset+n > len(p) {
		return nil, fmt.Errorf("profile: crop [%d, %d) out of range for length %d", offset, offset+n, len(p))
	}

	out := make([]float64, n)
	copy(out, p[offset:offset+n])
	return out, nil
}

// Mean returns the arithmetic mean of p, or 0 for an empty profile.
func Mean(p []float64) float64 {
	if len(p) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range p {
		sum += v
	}
	return sum / float64(len(p))
}
