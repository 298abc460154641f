package waviness

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-surf/profile"
)

// DefaultCutoffWavelength is the 0.8 mm standard cutoff in µm, the common
// choice for profiles with Ra between 0.1 and 2.0 µm.
const DefaultCutoffWavelength = 800.0

// Errors returned by the extractor.
var (
	ErrEmptyProfile     = errors.New("waviness: empty profile")
	ErrSampleDistance   = errors.New("waviness: sample distance must be > 0")
	ErrCutoffWavelength = errors.New("waviness: cutoff wavelength must be > 0")
)

// Filter extracts waviness profiles at a fixed sample distance, reusing the
// FFT plan and scratch buffers across calls. The plan is rebuilt whenever the
// input length changes.
//
// A Filter is not safe for concurrent use; for parallel extraction create one
// Filter per goroutine. The package-level [Extract] is a convenience wrapper
// for one-shot use.
type Filter struct {
	sampleDistance   float64
	cutoffWavelength float64

	plan     *algofft.Plan[complex128]
	timeBuf  []complex128
	specBuf  []complex128
	scratch  []complex128
	planSize int
}

// Option configures a Filter.
type Option func(*Filter)

// WithCutoffWavelength sets the cutoff wavelength λc in µm. Non-positive
// values are ignored and the default of 800 µm is kept.
func WithCutoffWavelength(um float64) Option {
	return func(f *Filter) {
		if um > 0 {
			f.cutoffWavelength = um
		}
	}
}

// New creates a Filter for profiles sampled every sampleDistance µm.
func New(sampleDistance float64, opts ...Option) (*Filter, error) {
	if sampleDistance <= 0 {
		return nil, ErrSampleDistance
	}

	f := &Filter{
		sampleDistance:   sampleDistance,
		cutoffWavelength: DefaultCutoffWavelength,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f, nil
}

// SampleDistance returns the configured sample spacing in µm.
func (f *Filter) SampleDistance() float64 { return f.sampleDistance }

// CutoffWavelength returns the configured cutoff wavelength λc in µm.
func (f *Filter) CutoffWavelength() float64 { return f.cutoffWavelength }

// Extract returns the waviness component of p as a new slice of the same
// length. The input is never modified.
//
// The profile is mirror-extended to the next power of two at or above 3x its
// length, so both pads are at least one profile length wide and the FFT's
// wrap-around seam stays away from the cropped region. The cutoff wavelength
// maps to bin k = floor(M*d/λc) of the M-point spectrum; bins k+1 .. M-k-1
// are zeroed and the central segment of the real inverse transform is
// returned.
func (f *Filter) Extract(p []float64) ([]float64, error) {
	n := len(p)
	if n == 0 {
		return nil, ErrEmptyProfile
	}

	m := nextPowerOf2(3 * n)
	left := (m - n) / 2

	if err := f.ensurePlan(m); err != nil {
		return nil, err
	}

	padded, err := profile.MirrorExtend(p, left, m-n-left)
	if err != nil {
		return nil, err
	}

	for i, v := range padded {
		f.timeBuf[i] = complex(v, 0)
	}

	if err := f.plan.Forward(f.specBuf, f.timeBuf); err != nil {
		return nil, fmt.Errorf("waviness: forward transform: %w", err)
	}

	k := cutoffIndex(m, f.sampleDistance, f.cutoffWavelength)
	for i := k + 1; i < m-k; i++ {
		f.specBuf[i] = 0
	}

	if err := f.plan.Inverse(f.scratch, f.specBuf); err != nil {
		return nil, fmt.Errorf("waviness: inverse transform: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(f.scratch[left+i])
	}
	return out, nil
}

// Extract is the one-shot form: it validates all three arguments and returns
// the waviness component of profile, a new slice of identical length.
func Extract(p []float64, sampleDistance, cutoffWavelength float64) ([]float64, error) {
	if cutoffWavelength <= 0 {
		return nil, ErrCutoffWavelength
	}

	f, err := New(sampleDistance, WithCutoffWavelength(cutoffWavelength))
	if err != nil {
		return nil, err
	}
	return f.Extract(p)
}

// CutoffIndex reports the retained bin count k for a profile of length n at
// the filter's configured spacing and cutoff. Exposed for diagnostics: k == 0
// means only DC survives, k == M/2 means the filter passes everything.
func (f *Filter) CutoffIndex(n int) (k, fftSize int) {
	m := nextPowerOf2(3 * n)
	return cutoffIndex(m, f.sampleDistance, f.cutoffWavelength), m
}

// cutoffIndex maps the physical cutoff wavelength onto a spectrum bin. The
// padded signal spans m*d µm, so bin 1 corresponds to one cycle across that
// extent and wavelength λc lands on bin m*d/λc. Clamped to [0, m/2].
func cutoffIndex(m int, sampleDistance, cutoffWavelength float64) int {
	k := int(float64(m) * sampleDistance / cutoffWavelength)
	if k < 0 {
		k = 0
	}
	if k > m/2 {
		k = m / 2
	}
	return k
}

func (f *Filter) ensurePlan(size int) error {
	if f.plan != nil && f.planSize == size {
		return nil
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return fmt.Errorf("waviness: failed to create FFT plan for size %d: %w", size, err)
	}

	f.plan = plan
	f.planSize = size
	f.timeBuf = make([]complex128, size)
	f.specBuf = make([]complex128, size)
	f.scratch = make([]complex128, size)
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
