// Package simulate is the main pass of the phase-distribution-graph
// simulator: it evaluates a precomputed PDG against a pulse sequence and a
// phantom and produces the measured complex signal.
//
// Per repetition the pass
//
//  1. derives the six RF mixing coefficients from the pulse and the
//     combined transmit field,
//  2. integrates the repetition's k–τ trajectory,
//  3. recomputes every retained state's magnetization from its ancestors,
//     pruning states below the latent-signal threshold,
//  4. samples transverse states at ADC events — T2 and T2′ decay,
//     off-resonance, spatial-encoding and motion phase, intra-voxel
//     dephasing and diffusion attenuation — and projects them through the
//     coil sensitivities,
//  5. carries every surviving state to the repetition end (relaxation,
//     diffusion, final motion phase) for the next repetition.
//
// The repetition loop is strictly sequential (each repetition's states
// reference the previous repetition only); voxel and coil loops are the
// data-parallel surface. The computation is deterministic: identical inputs
// produce identical output, bit for bit.
//
// Usage:
//
//	opts := simulate.DefaultOptions()
//	res, err := simulate.Execute(graph, seq, data, &opts)
//	if err != nil {
//	  // fatal configuration error: malformed graph or inconsistent data
//	}
//	// res.Signal: (total ADC samples) x (coils), repetition-major
//
// Every arithmetic quantity (k–τ, decay factors, phases) is recomputed each
// pass from the sequence and tissue inputs by plain arithmetic; pre-pass
// estimates are never read back. Keeping the pipeline a composition of pure
// functions is what lets a differentiation layer be applied on top without
// restructuring.
package simulate
