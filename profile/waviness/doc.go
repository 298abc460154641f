// Package waviness extracts the waviness (W-profile) component of a 1D
// surface-height profile.
//
// The extractor mirror-pads the profile, maps the physical cutoff wavelength
// onto a discrete frequency bin, zeroes every bin above it, and inverse
// transforms back, cropping the result to the original extent. The cutoff is
// a brick-wall mask, not the Gaussian weighting function ISO 16610-21
// specifies for phase-correct profile filters; this is a deliberate
// simplification and a known limitation, not a defect. Use it where a sharp
// spectral split is acceptable and standards compliance is not required.
//
// Degenerate cutoffs saturate silently: a cutoff wavelength larger than the
// padded physical extent maps to bin 0 and leaves only the DC component
// (output near the profile mean), while a cutoff at or below twice the sample
// distance maps past Nyquist and passes the profile through unchanged.
package waviness
