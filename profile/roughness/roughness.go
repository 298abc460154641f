package roughness

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-surf/profile/waviness"
)

// Extract returns the roughness component of p: the profile minus its
// waviness component at the given cutoff. Validation and errors are those of
// [waviness.Extract].
func Extract(p []float64, sampleDistance, cutoffWavelength float64) ([]float64, error) {
	_, r, err := Split(p, sampleDistance, cutoffWavelength)
	return r, err
}

// Split separates p into its waviness and roughness components with a single
// transform pass. The returned slices are freshly allocated and satisfy
// w[i] + r[i] == p[i] for every sample.
func Split(p []float64, sampleDistance, cutoffWavelength float64) (w, r []float64, err error) {
	w, err = waviness.Extract(p, sampleDistance, cutoffWavelength)
	if err != nil {
		return nil, nil, err
	}

	// r = p - w via block ops: r = (-1)*w, then r += p.
	r = make([]float64, len(p))
	vecmath.ScaleBlock(r, w, -1)
	vecmath.AddBlockInPlace(r, p)
	return w, r, nil
}
