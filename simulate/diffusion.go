package simulate

import "math"

// diffusionScale converts the diffusion coefficient unit (1e-3 mm²/s) into
// m²/s inside the attenuation exponent.
const diffusionScale = 1e-9

// diffusionFactors integrates the b-value along one state's trajectory and
// returns the per-event, per-voxel attenuation factors.
//
// kt is the state's k–τ at the repetition start, traj the repetition's
// relative trajectory and dt the event durations; the absolute k-position
// during event e runs linearly from k1 (event start) to k2 (event end). The
// b increment of the event is the exact integral of |k(t)|² over that ramp,
//
//	b = (1/3)·(2π)²·Δt·(k1² + k1·k2 + k2²)  summed over spatial axes,
//
// with the (2π)² cycles→radians conversion applied inside this expression.
// Moving that factor elsewhere changes results by several percent through
// floating-point cancellation; the placement is a correctness requirement.
// Attenuation is multiplicative across events, hence the cumulative sum.
func diffusionFactors(kt [4]float64, traj [][4]float64, dt []float64, D []float64) [][]float64 {
	const twoPiSq = 4 * math.Pi * math.Pi

	factors := make([][]float64, len(traj))
	cumB := 0.0
	k1 := [3]float64{kt[0], kt[1], kt[2]}
	for e := range traj {
		k2 := [3]float64{kt[0] + traj[e][0], kt[1] + traj[e][1], kt[2] + traj[e][2]}
		sum := 0.0
		for i := 0; i < 3; i++ {
			sum += k1[i]*k1[i] + k1[i]*k2[i] + k2[i]*k2[i]
		}
		cumB += 1.0 / 3.0 * twoPiSq * dt[e] * sum
		k1 = k2

		row := make([]float64, len(D))
		for v := range D {
			row[v] = math.Exp(-diffusionScale * D[v] * cumB)
		}
		factors[e] = row
	}
	return factors
}

// longitudinalDiffusion is the stored-coherence variant: a longitudinal
// state does not move through k-space during the repetition, so the
// attenuation uses its constant k-magnitude over the full duration.
func longitudinalDiffusion(kt [4]float64, totalTime float64, D float64) float64 {
	kSq := kt[0]*kt[0] + kt[1]*kt[1] + kt[2]*kt[2]
	return math.Exp(-diffusionScale * D * totalTime * kSq)
}
