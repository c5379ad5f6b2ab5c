// Package sequence describes the pulse-sequence data the simulation pass
// consumes: one Repetition per RF pulse, each carrying the pulse itself
// (flip angle, phase, per-coil shim weights), per-event gradient moments and
// durations, the ADC usage mask and the ADC phase.
//
// The package also provides the trajectory integrator: the prefix sum that
// turns a repetition's gradient moments and event durations into the
// cumulative (kx, ky, kz, τ) trajectory, relative to the repetition start.
// A state's absolute position is its carried k–τ plus this trajectory.
//
// Gradient moments may be stored in normalized units (cycles per
// field-of-view); Sequence.NormalizedGrads records that, and the caller
// passes the matching per-axis scale into Trajectory.
package sequence
