package synth

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic profiles from a shared sample spacing.
type Generator struct {
	sampleDistance float64
	seed           int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// New creates a generator for profiles sampled every sampleDistance µm.
func New(sampleDistance float64, opts ...Option) (*Generator, error) {
	if sampleDistance <= 0 {
		return nil, fmt.Errorf("synth: sample distance must be > 0: %f", sampleDistance)
	}

	g := &Generator{sampleDistance: sampleDistance, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// SampleDistance returns the generator's sample spacing in µm.
func (g *Generator) SampleDistance() float64 { return g.sampleDistance }

// Sinusoid generates amplitude*sin(2*pi*x/wavelength) sampled at
// x = i*sampleDistance.
func (g *Generator) Sinusoid(wavelengthUm, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("synth: sinusoid samples must be > 0: %d", samples)
	}
	if wavelengthUm <= 0 {
		return nil, fmt.Errorf("synth: sinusoid wavelength must be > 0: %f", wavelengthUm)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * g.sampleDistance / wavelengthUm
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Noise generates seeded white noise in [-amplitude, amplitude].
func (g *Generator) Noise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("synth: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("synth: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Step generates a profile that is 0 before sample index at and height from
// there on.
func (g *Generator) Step(height float64, at, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("synth: step samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	for i := at; i < samples; i++ {
		if i >= 0 {
			out[i] = height
		}
	}
	return out, nil
}

// Add sums profiles elementwise into a new slice. All inputs must share the
// same length.
func Add(profiles ...[]float64) ([]float64, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("synth: add requires at least one profile")
	}

	n := len(profiles[0])
	for i, p := range profiles {
		if len(p) != n {
			return nil, fmt.Errorf("synth: add length mismatch at input %d: %d != %d", i, len(p), n)
		}
	}

	out := make([]float64, n)
	for _, p := range profiles {
		for i, v := range p {
			out[i] += v
		}
	}
	return out, nil
}
