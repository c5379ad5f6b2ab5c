// Package cvec provides the small set of elementwise complex-vector kernels
// the simulation pass needs: allocation helpers, deep copy and real-factor
// scaling over per-voxel data.
//
// All kernels are plain loops over []complex128 / []float64 — dense,
// allocation-free where a destination is supplied, and deterministic.
// Length agreement between arguments is the caller's contract; mismatches
// panic (programmer error, not a runtime condition).
package cvec
