package simulate

import (
	"math"
	"math/cmplx"
)

// sqrt2 undoes the 1/√2 RF-split convention when transverse magnetization is
// measured.
const sqrt2 = 1.41421356237

// projectState samples one transverse-plus state at the repetition's
// ADC-active events and accumulates its per-coil contribution into the
// repetition signal.
//
// Per ADC event the voxel magnetization is multiplied by
//
//   - T2 decay over the repetition-relative elapsed time,
//   - T2′ dephasing over the absolute |τ| (pathways can run τ backwards),
//   - a complex rotation exp(2πi·(τ·B0 + k·position + motion phase)),
//   - the voxel-shape dephasing factor at the current k-vector,
//   - the diffusion attenuation accumulated up to the event,
//   - the √2 normalization,
//
// and contracted over voxels against the |PD|-weighted coil sensitivities.
// The grouping of the phase terms before the 2π multiplication matters
// numerically and must not be rearranged.
//
// When record is true the sampled magnetization (ADC-phase rotation and |PD|
// applied) is returned for diagnostics; otherwise the result is nil.
func (rc *repContext) projectState(mag []complex128, distTraj [][4]float64,
	diff [][]float64, sensW [][]complex128, adcPhase []float64, record bool) StateMag {

	data := rc.data
	var rec StateMag
	if record {
		rec = make(StateMag, len(rc.adcEvents))
	}

	for ai, e := range rc.adcEvents {
		tauRel := rc.traj[e][3]
		tauAbs := distTraj[e][3]
		k := [3]float64{distTraj[e][0], distTraj[e][1], distTraj[e][2]}

		dephasing := 1.0
		if data.Dephasing != nil {
			dephasing = data.Dephasing(k, data.Nyquist)
		}

		var recRow []complex128
		if record {
			recRow = make([]complex128, len(mag))
			rec[ai] = recRow
		}
		var adcRot complex128
		if record {
			adcRot = cmplx.Exp(complex(0, adcPhase[e]))
		}

		for v := range mag {
			t2 := math.Exp(-tauRel / math.Abs(data.T2[v]))
			t2dash := math.Exp(-math.Abs(tauAbs) / math.Abs(data.T2Dash[v]))

			phase := tauAbs * data.B0[v]
			phase += k[0]*data.VoxelPos[v][0] + k[1]*data.VoxelPos[v][1] + k[2]*data.VoxelPos[v][2]
			if rc.motion != nil {
				phase += rc.motion[e][v]
			}
			rot := cmplx.Exp(complex(0, 2*math.Pi*phase))

			val := complex(sqrt2, 0) * mag[v] * rot *
				complex(t2*t2dash*diff[e][v]*dephasing, 0)

			if record {
				recRow[v] = adcRot * val * complex(math.Abs(data.PD[v]), 0)
			}
			for c := range sensW {
				rc.repSig[ai][c] += val * sensW[c][v]
			}
		}
	}
	return rec
}
