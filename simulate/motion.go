package simulate

import (
	"github.com/phasorlab/pdgsim/phantom"
	"github.com/phasorlab/pdgsim/sequence"
)

// motionPhases computes the extra phase (in cycles) every voxel carries from
// moving through the gradients of one repetition: the displacement relative
// to the reference position, evaluated at each event's midpoint, dotted with
// that event's (scaled) gradient moment, prefix-summed across events.
//
// Returns nil for a static phantom (positions == nil): the caller treats a
// nil table as exactly zero phase everywhere, with no per-event allocation.
// t0 is the absolute start time of the repetition.
func motionPhases(
	positions phantom.VoxelMotionFunc,
	refPos [][3]float64,
	rep *sequence.Repetition,
	gradScale [3]float64,
	traj [][4]float64,
	t0 float64,
) [][]float64 {
	if positions == nil {
		return nil
	}

	phases := make([][]float64, len(traj))
	acc := make([]float64, len(refPos))
	start := t0
	for e := range traj {
		end := t0 + traj[e][3]
		pos := positions((start + end) / 2)
		start = end

		gx := rep.GradMoments[e][0] * gradScale[0]
		gy := rep.GradMoments[e][1] * gradScale[1]
		gz := rep.GradMoments[e][2] * gradScale[2]

		row := make([]float64, len(refPos))
		for v := range refPos {
			dx := pos[v][0] - refPos[v][0]
			dy := pos[v][1] - refPos[v][1]
			dz := pos[v][2] - refPos[v][2]
			acc[v] += dx*gx + dy*gy + dz*gz
			row[v] = acc[v]
		}
		phases[e] = row
	}
	return phases
}
