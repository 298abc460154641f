package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Uses SIMD-optimized implementations where available. Scratch buffers are
// pooled internally, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// Uses SIMD-optimized implementations where available. Scratch buffers are
// pooled internally, so in steady state this allocates only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// BandEnergy sums |X[k]|^2 over bins lo..hi inclusive plus the mirrored
// negative-frequency bins M-hi..M-lo, counting shared bins (DC, Nyquist)
// once. Bounds must satisfy 0 <= lo <= hi <= len(bins)/2.
func BandEnergy(bins []complex128, lo, hi int) (float64, error) {
	m := len(bins)
	if m == 0 {
		return 0, fmt.Errorf("spectrum: band energy requires non-empty bins")
	}
	if lo < 0 || hi < lo || hi > m/2 {
		return 0, fmt.Errorf("spectrum: band [%d, %d] out of range for %d bins", lo, hi, m)
	}

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += binPower(bins[i])

		mirror := m - i
		if mirror > hi && mirror < m {
			sum += binPower(bins[mirror])
		}
	}
	return sum, nil
}

func binPower(c complex128) float64 {
	re := real(c)
	im := imag(c)
	return re*re + im*im
}
