// Package synth generates deterministic synthetic surface profiles for tests,
// examples, and benchmarks. Components are specified by physical wavelength
// in µm rather than frequency, matching the conventions of the profile
// filters.
package synth
