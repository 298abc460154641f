// Package spectrum provides helpers over complex spectrum bins produced by
// the profile filters' FFT backend. It intentionally does not implement the
// FFT itself; bins follow the standard layout (index 0 = DC, ascending
// positive frequency up to Nyquist, then mirrored negative frequency).
//
// BandEnergy sums both the positive-frequency band and its mirrored
// negative-frequency counterpart, which is the quantity a real-valued profile
// splits symmetrically across the two.
package spectrum
