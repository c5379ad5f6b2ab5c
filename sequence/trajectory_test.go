package sequence_test

import (
	"testing"

	"github.com/phasorlab/pdgsim/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrajectoryPrefixSum verifies the cumulative k–τ integration against a
// hand-computed three-event repetition.
func TestTrajectoryPrefixSum(t *testing.T) {
	rep := &sequence.Repetition{
		GradMoments: [][3]float64{{1, 0, 0}, {2, 1, 0}, {-3, 0, 4}},
		EventTimes:  []float64{0.1, 0.2, 0.3},
		ADCUsage:    []bool{false, true, true},
		ADCPhase:    []float64{0, 0, 0},
	}
	require.NoError(t, rep.Validate())

	traj, total := sequence.Trajectory(rep, [3]float64{1, 1, 1})
	require.Len(t, traj, 3)
	assert.InDelta(t, 0.6, total, 1e-12, "total duration is the sum of event times")

	assert.Equal(t, [4]float64{1, 0, 0, 0.1}, traj[0])
	assert.InDelta(t, 3, traj[1][0], 1e-12)
	assert.InDelta(t, 1, traj[1][1], 1e-12)
	assert.InDelta(t, 0.3, traj[1][3], 1e-12)
	assert.InDelta(t, 0, traj[2][0], 1e-12, "moments cancel along x")
	assert.InDelta(t, 4, traj[2][2], 1e-12)
	assert.InDelta(t, 0.6, traj[2][3], 1e-12)
}

// TestTrajectoryGradScale verifies normalized-moment scaling per axis.
func TestTrajectoryGradScale(t *testing.T) {
	rep := &sequence.Repetition{
		GradMoments: [][3]float64{{2, 4, 8}},
		EventTimes:  []float64{1},
		ADCUsage:    []bool{false},
		ADCPhase:    []float64{0},
	}

	traj, _ := sequence.Trajectory(rep, [3]float64{0.5, 0.25, 0.125})
	assert.Equal(t, [4]float64{1, 1, 1, 1}, traj[0], "each axis uses its own scale")
}

// TestTrajectoryEmptyRepetition returns an empty trajectory with zero
// duration.
func TestTrajectoryEmptyRepetition(t *testing.T) {
	rep := &sequence.Repetition{}
	traj, total := sequence.Trajectory(rep, [3]float64{1, 1, 1})
	assert.Empty(t, traj)
	assert.Zero(t, total)
}

// TestRepetitionADCHelpers covers the ADC mask accessors.
func TestRepetitionADCHelpers(t *testing.T) {
	rep := &sequence.Repetition{
		GradMoments: make([][3]float64, 4),
		EventTimes:  []float64{1, 1, 1, 1},
		ADCUsage:    []bool{false, true, false, true},
		ADCPhase:    []float64{0, 0, 0, 0},
	}
	assert.Equal(t, 4, rep.Events())
	assert.Equal(t, 2, rep.ADCCount())
	assert.Equal(t, []int{1, 3}, rep.ADCEvents())
}

// TestValidateEventMismatch rejects inconsistent per-event slices as a fatal
// configuration error.
func TestValidateEventMismatch(t *testing.T) {
	rep := sequence.Repetition{
		GradMoments: make([][3]float64, 2),
		EventTimes:  []float64{1, 1, 1},
		ADCUsage:    []bool{false, false, false},
		ADCPhase:    []float64{0, 0, 0},
	}
	assert.ErrorIs(t, rep.Validate(), sequence.ErrEventMismatch)

	seq := sequence.Sequence{Reps: []sequence.Repetition{rep}}
	assert.ErrorIs(t, seq.Validate(), sequence.ErrEventMismatch, "sequence validation reports the repetition")
}
