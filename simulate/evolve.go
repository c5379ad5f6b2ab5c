package simulate

import (
	"math"
	"math/cmplx"

	"github.com/phasorlab/pdgsim/cvec"
	"github.com/phasorlab/pdgsim/pdg"
	"github.com/phasorlab/pdgsim/phantom"
)

// repContext bundles the quantities shared by every state of one repetition:
// the pulse coefficients, the relative trajectory, relaxation factors and
// the motion-phase table. States are processed independently against it.
type repContext struct {
	data *phantom.Data

	coeffs    *rfCoeffs
	traj      [][4]float64 // relative k–τ per event
	dt        []float64
	totalTime float64

	r1, r2 []float64 // per-voxel relaxation factors over the repetition

	motion [][]float64 // per-event per-voxel phase (cycles); nil when static

	adcEvents []int
	repSig    [][]complex128 // (ADC events) x (coils) accumulator
}

// newRepContext precomputes the shared per-repetition quantities.
func newRepContext(data *phantom.Data, coeffs *rfCoeffs, traj [][4]float64, dt []float64,
	totalTime float64, motion [][]float64, adcEvents []int, coils int) *repContext {

	rc := &repContext{
		data:      data,
		coeffs:    coeffs,
		traj:      traj,
		dt:        dt,
		totalTime: totalTime,
		motion:    motion,
		adcEvents: adcEvents,
		r1:        make([]float64, data.VoxelCount()),
		r2:        make([]float64, data.VoxelCount()),
	}
	for v := range rc.r1 {
		rc.r1[v] = math.Exp(-totalTime / math.Abs(data.T1[v]))
		rc.r2[v] = math.Exp(-totalTime / math.Abs(data.T2[v]))
	}
	if len(adcEvents) > 0 {
		rc.repSig = make([][]complex128, len(adcEvents))
		for i := range rc.repSig {
			rc.repSig[i] = make([]complex128, coils)
		}
	}
	return rc
}

// evolveState recomputes a node's magnetization and k–τ from its ancestors.
//
// Ancestors whose magnetization was pruned or released are filtered out.
// A non-equilibrium node below the latent threshold, or left without any
// simulated ancestor, is skipped entirely (returns false): it stays without
// magnetization and silently drops out of further propagation. The
// equilibrium state is always simulated — with no surviving ancestors its
// magnetization starts at zero and regrows through T1 recovery.
//
// All surviving ancestors of a non-equilibrium node agree on the pre-pulse
// k-state by construction, so only the first one is consulted for k–τ:
// reversing transitions negate it, everything else copies it, and the
// equilibrium state resets to zero.
func (rc *repContext) evolveState(g *pdg.Graph, n *pdg.Node, minLatent float64) (bool, error) {
	live := n.Ancestors[:0:0]
	for _, a := range n.Ancestors {
		if p := g.Node(a.Parent); p != nil && p.Simulated() {
			live = append(live, a)
		}
	}

	if n.Kind != pdg.Equilibrium {
		if n.LatentSignal < minLatent || len(live) == 0 {
			return false, nil
		}
	}

	mag := cvec.Zeros(rc.data.VoxelCount())
	for _, a := range live {
		if err := rc.coeffs.accumulate(mag, a.Label, g.Node(a.Parent).Mag); err != nil {
			return false, err
		}
	}
	n.Mag = mag

	switch {
	case n.Kind == pdg.Equilibrium:
		n.KTau = [4]float64{}
	case live[0].Label.Conjugating():
		kt := g.Node(live[0].Parent).KTau
		n.KTau = [4]float64{-kt[0], -kt[1], -kt[2], -kt[3]}
	default:
		n.KTau = g.Node(live[0].Parent).KTau
	}
	return true, nil
}

// absTrajectory returns the node's absolute per-event k–τ trajectory,
// state.KTau + relative trajectory.
func (rc *repContext) absTrajectory(n *pdg.Node) [][4]float64 {
	abs := make([][4]float64, len(rc.traj))
	for e := range rc.traj {
		abs[e] = [4]float64{
			n.KTau[0] + rc.traj[e][0],
			n.KTau[1] + rc.traj[e][1],
			n.KTau[2] + rc.traj[e][2],
			n.KTau[3] + rc.traj[e][3],
		}
	}
	return abs
}

// carryOver advances a state's magnetization and k–τ to the repetition end,
// preparing it for consumption in the next repetition.
//
// Transverse states decay by T2 and the diffusion accumulated over the whole
// repetition, pick up the final motion phase, and advance their k–τ to the
// end-of-repetition trajectory value. Longitudinal states decay by T1 and a
// diffusion term at their constant k-magnitude. The equilibrium state
// additionally regrows by 1−r1 toward full magnetization.
func (rc *repContext) carryOver(n *pdg.Node, distTraj [][4]float64, diff [][]float64) {
	last := len(rc.traj) - 1
	transverse := n.Kind == pdg.TransversePlus || n.Kind == pdg.TransverseMinus

	if transverse && last >= 0 {
		for v := range n.Mag {
			n.Mag[v] *= complex(rc.r2[v]*diff[last][v], 0)
		}
		if rc.motion != nil {
			for v := range n.Mag {
				n.Mag[v] *= cmplx.Exp(complex(0, 2*math.Pi*rc.motion[last][v]))
			}
		}
		n.KTau = distTraj[last]
		return
	}
	if !transverse {
		for v := range n.Mag {
			n.Mag[v] *= complex(rc.r1[v]*longitudinalDiffusion(n.KTau, rc.totalTime, rc.data.D[v]), 0)
		}
		if n.Kind == pdg.Equilibrium {
			for v := range n.Mag {
				n.Mag[v] += complex(1-rc.r1[v], 0)
			}
		}
	}
	// A repetition without events leaves transverse states untouched
	// (zero duration, zero displacement).
}
