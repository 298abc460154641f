package amplitude

import "math"

// Standard cutoff wavelengths in µm from the ISO 4288 selection table. The
// choice of cutoff is the caller's; this package only names the standard
// values (selection from measured roughness is out of scope).
const (
	Cutoff80   = 80.0   // 0.08 mm
	Cutoff250  = 250.0  // 0.25 mm, Ra 0.02..0.1 µm
	Cutoff800  = 800.0  // 0.8 mm, Ra 0.1..2.0 µm
	Cutoff2500 = 2500.0 // 2.5 mm, Ra 2.0..10.0 µm
	Cutoff8000 = 8000.0 // 8.0 mm, Ra 10.0..80.0 µm
)

// Params holds amplitude parameters of a profile, all heights in the
// profile's own units and relative to the mean line.
type Params struct {
	N    int
	Mean float64 // mean line height
	Ra   float64 // arithmetic mean deviation
	Rq   float64 // root mean square deviation
	Rp   float64 // maximum peak height
	Rv   float64 // maximum valley depth (positive)
	Rz   float64 // maximum height, Rp + Rv
	Rt   float64 // total height of profile, max - min
	Rsk  float64 // skewness
	Rku  float64 // kurtosis (not excess)
}

// Calculate computes all amplitude parameters. Moments use Welford's online
// algorithm for numerical stability; Ra needs the mean line first and is
// accumulated in a second pass.
func Calculate(profile []float64) Params {
	n := len(profile)
	if n == 0 {
		return Params{}
	}

	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	maxVal := profile[0]
	minVal := profile[0]

	for i, x := range profile {
		count := float64(i + 1)
		delta := x - mean
		deltaN := delta / count
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(count*count-3*count+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(count-2) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if x > maxVal {
			maxVal = x
		}
		if x < minVal {
			minVal = x
		}
	}

	sumAbs := 0.0
	for _, x := range profile {
		sumAbs += math.Abs(x - mean)
	}

	variance := m2 / float64(n)
	rq := math.Sqrt(variance)

	p := Params{
		N:    n,
		Mean: mean,
		Ra:   sumAbs / float64(n),
		Rq:   rq,
		Rp:   maxVal - mean,
		Rv:   mean - minVal,
		Rz:   maxVal - minVal,
		Rt:   maxVal - minVal,
	}

	if variance > 0 {
		p.Rsk = m3 / (float64(n) * variance * rq)
		p.Rku = m4 / (float64(n) * variance * variance)
	}

	return p
}
