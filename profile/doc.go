// Package profile provides shared primitives for 1D surface-height profiles.
//
// A profile is an ordered []float64 of height samples at uniformly spaced
// positions. The package covers boundary extension and cropping used by the
// transform-based filters in profile/waviness and profile/roughness; it does
// not implement any transform itself.
package profile
