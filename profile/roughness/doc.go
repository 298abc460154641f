// Package roughness extracts the roughness (R-profile) component of a 1D
// surface-height profile, the high-pass complement of the waviness component
// produced by profile/waviness. The two components sum to the input profile
// exactly, so the roughness profile inherits the waviness filter's brick-wall
// cutoff characteristic and its degenerate-cutoff saturation.
package roughness
