// Package pdgsim executes precomputed phase-distribution graphs (PDGs) to
// compute the complex-valued MRI signal of a pulse sequence acting on a
// digital phantom.
//
// 🚀 What is pdgsim?
//
//	An extended-phase-graph style simulator core: a pre-pass (external to
//	this module) discovers which magnetization states of a sequence matter;
//	pdgsim is the main pass that evaluates them exactly:
//	  • RF pulse splitting into longitudinal and transverse pathways
//	  • relaxation (T1, T2, T2′), diffusion and motion-induced phase
//	  • k-space/time trajectory tracking per state
//	  • projection through coil sensitivities into a measured signal
//
// ✨ Why pdgsim?
//
//   - Deterministic – a strictly sequential repetition loop, reproducible output
//   - Pure Go – no cgo, no hidden deps
//   - Faithful – numerically delicate orderings preserved, not approximated
//   - Memory-bounded – ancestor magnetization released as soon as consumed
//
// Everything is organized under five subpackages:
//
//	cvec/     — elementwise complex vector kernels
//	pdg/      — the phase-distribution graph data model
//	sequence/ — pulse, timing and gradient data + trajectory integration
//	phantom/  — per-voxel tissue and scanner data, motion models
//	simulate/ — the main pass: state evolution, signal projection
//
// Quick sketch:
//
//	res, err := simulate.Execute(graph, seq, data, nil)
//	if err != nil { ... }
//	// res.Signal: (total ADC samples) x (coils), repetition-major
//
// See simulate/example_test.go for a complete single-pulse walkthrough.
//
//	go get github.com/phasorlab/pdgsim
package pdgsim
