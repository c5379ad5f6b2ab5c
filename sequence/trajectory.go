package sequence

// Trajectory integrates a repetition's events into the cumulative
// (kx, ky, kz, τ) trajectory, relative to the repetition start, and returns
// the total repetition duration.
//
// gradScale is the per-axis factor applied to every gradient moment before
// summation: 1/FOV for normalized sequences, 1 otherwise. The trajectory has
// one row per event; row e is the k–τ state at the *end* of event e. Pure
// function of the repetition's timing and gradient data.
func Trajectory(r *Repetition, gradScale [3]float64) (traj [][4]float64, totalTime float64) {
	traj = make([][4]float64, r.Events())
	var acc [4]float64
	for e := range traj {
		acc[0] += r.GradMoments[e][0] * gradScale[0]
		acc[1] += r.GradMoments[e][1] * gradScale[1]
		acc[2] += r.GradMoments[e][2] * gradScale[2]
		acc[3] += r.EventTimes[e]
		traj[e] = acc
	}
	return traj, acc[3]
}
