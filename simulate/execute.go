package simulate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/phasorlab/pdgsim/cvec"
	"github.com/phasorlab/pdgsim/pdg"
	"github.com/phasorlab/pdgsim/phantom"
	"github.com/phasorlab/pdgsim/sequence"
)

// Execute runs the main pass: it evaluates the phase-distribution graph g
// against seq and data and returns the measured signal.
//
// The graph must have been built for exactly this sequence: repetition i+1
// of the graph holds the states created by pulse i. Configuration problems
// (malformed graph, inconsistent phantom data, shim/channel mismatch, wrong
// initial-magnetization length) abort with a descriptive error; pruned or
// below-threshold states are expected and skipped silently.
//
// opts == nil uses DefaultOptions. The repetition loop is strictly
// sequential; within a repetition every state is processed independently.
func Execute(g *pdg.Graph, seq *sequence.Sequence, data *phantom.Data, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if g.Repetitions() != len(seq.Reps)+1 {
		return nil, fmt.Errorf("%w: graph holds %d, sequence %d",
			ErrGraphSequence, g.Repetitions(), len(seq.Reps))
	}
	voxels := data.VoxelCount()
	if o.InitialMag != nil && len(o.InitialMag) != voxels {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInitialMag, len(o.InitialMag), voxels)
	}

	positions := data.PositionsFunc()

	gradScale := [3]float64{1, 1, 1}
	if seq.NormalizedGrads {
		gradScale = [3]float64{1 / data.Size[0], 1 / data.Size[1], 1 / data.Size[2]}
	}

	// Proton density is baked into the receive sensitivities once.
	pdAbs := make([]float64, voxels)
	for v := range pdAbs {
		pdAbs[v] = math.Abs(data.PD[v])
	}
	sensW := make([][]complex128, data.Coils())
	for c := range sensW {
		sensW[c] = make([]complex128, voxels)
		cvec.MulReal(sensW[c], data.CoilSens[c], pdAbs)
	}

	g.Seed(voxels, o.InitialMag)

	res := &Result{}
	if o.RecordADCMag {
		res.ADCMag = make([][]StateMag, len(seq.Reps))
	}

	t0 := 0.0
	for i := range seq.Reps {
		rep := &seq.Reps[i]
		if o.Progress {
			fmt.Printf("\rcalculating repetition %d / %d", i+1, len(seq.Reps))
		}

		coeffs, err := pulseCoeffs(&rep.Pulse, data.B1, voxels)
		if err != nil {
			return nil, err
		}

		traj, totalTime := sequence.Trajectory(rep, gradScale)
		motion := motionPhases(positions, data.VoxelPos, rep, gradScale, traj, t0)
		t0 += totalTime

		rc := newRepContext(data, coeffs, traj, rep.EventTimes, totalTime,
			motion, rep.ADCEvents(), data.Coils())

		for _, n := range g.Reps[i+1] {
			ok, err := rc.evolveState(g, n, o.MinLatentSignal)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			distTraj := rc.absTrajectory(n)
			diff := diffusionFactors(n.KTau, traj, rep.EventTimes, data.D)

			if n.Kind == pdg.TransversePlus && n.EmittedSignal >= o.MinEmittedSignal &&
				len(rc.adcEvents) > 0 {
				rec := rc.projectState(n.Mag, distTraj, diff, sensW, rep.ADCPhase, o.RecordADCMag)
				if o.RecordADCMag {
					res.ADCMag[i] = append(res.ADCMag[i], rec)
				}
			}

			rc.carryOver(n, distTraj, diff)
		}

		// Receiver phase rotation, then append this repetition's block.
		for ai, e := range rc.adcEvents {
			rot := cmplx.Exp(complex(0, rep.ADCPhase[e]))
			for c := range rc.repSig[ai] {
				rc.repSig[ai][c] *= rot
			}
			res.Signal = append(res.Signal, rc.repSig[ai])
		}

		if o.ClearStateMag {
			g.ReleaseRep(i)
		}
	}

	if o.Progress {
		fmt.Println(" - done")
	}
	return res, nil
}
