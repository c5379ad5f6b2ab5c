package phantom_test

import (
	"math"
	"testing"

	"github.com/phasorlab/pdgsim/phantom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformData builds a consistent n-voxel phantom for validation tests.
func uniformData(n int) *phantom.Data {
	d := &phantom.Data{
		T1:       make([]float64, n),
		T2:       make([]float64, n),
		T2Dash:   make([]float64, n),
		D:        make([]float64, n),
		B0:       make([]float64, n),
		PD:       make([]float64, n),
		VoxelPos: make([][3]float64, n),
		Size:     [3]float64{0.2, 0.2, 0.2},
		CoilSens: [][]complex128{make([]complex128, n)},
	}
	for i := 0; i < n; i++ {
		d.T1[i], d.T2[i], d.T2Dash[i] = 1, 0.1, 0.05
		d.PD[i] = 1
		d.CoilSens[0][i] = 1
	}
	return d
}

// TestValidateAcceptsConsistentData is the positive path.
func TestValidateAcceptsConsistentData(t *testing.T) {
	assert.NoError(t, uniformData(4).Validate())
}

// TestValidateVoxelMismatch rejects per-voxel slices of differing length.
func TestValidateVoxelMismatch(t *testing.T) {
	d := uniformData(4)
	d.T2 = d.T2[:3]
	assert.ErrorIs(t, d.Validate(), phantom.ErrVoxelMismatch)

	d = uniformData(4)
	d.VoxelPos = d.VoxelPos[:2]
	assert.ErrorIs(t, d.Validate(), phantom.ErrVoxelMismatch)
}

// TestValidateChannelMismatch rejects coil/transmit rows of the wrong length.
func TestValidateChannelMismatch(t *testing.T) {
	d := uniformData(4)
	d.CoilSens = append(d.CoilSens, make([]complex128, 3))
	assert.ErrorIs(t, d.Validate(), phantom.ErrChannelMismatch)

	d = uniformData(4)
	d.B1 = [][]complex128{make([]complex128, 5)}
	assert.ErrorIs(t, d.Validate(), phantom.ErrChannelMismatch)
}

// TestRigidMotionIdentity verifies that identity rotation and zero offset
// reproduce the static positions exactly.
func TestRigidMotionIdentity(t *testing.T) {
	pos := [][3]float64{{1, 2, 3}, {-1, 0, 0.5}}
	identity := func(_ float64) ([3][3]float64, [3]float64) {
		return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{}
	}

	moved := phantom.RigidMotion(pos, identity)(0.7)
	assert.Equal(t, pos, moved)
}

// TestRigidMotionRotationAndOffset checks a 90° z-rotation plus offset.
func TestRigidMotionRotationAndOffset(t *testing.T) {
	pos := [][3]float64{{1, 0, 0}}
	f := func(_ float64) ([3][3]float64, [3]float64) {
		// 90° about z: x → y.
		return [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, [3]float64{0, 0, 2}
	}

	moved := phantom.RigidMotion(pos, f)(0)
	require.Len(t, moved, 1)
	assert.InDelta(t, 0, moved[0][0], 1e-12)
	assert.InDelta(t, 1, moved[0][1], 1e-12)
	assert.InDelta(t, 2, moved[0][2], 1e-12)
}

// TestPositionsFuncResolution checks the motion-model resolution order.
func TestPositionsFuncResolution(t *testing.T) {
	d := uniformData(1)
	assert.Nil(t, d.PositionsFunc(), "static phantom has no positions function")

	d.Motion = func(_ float64) ([3][3]float64, [3]float64) {
		return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{1, 0, 0}
	}
	require.NotNil(t, d.PositionsFunc())
	assert.InDelta(t, 1, d.PositionsFunc()(0)[0][0], 1e-12, "rigid adapter applies")

	d.VoxelMotion = func(_ float64) [][3]float64 { return [][3]float64{{9, 9, 9}} }
	assert.Equal(t, 9.0, d.PositionsFunc()(0)[0][0], "explicit voxel motion wins")
}

// TestDephasingFuncs covers the reference dephasing models.
func TestDephasingFuncs(t *testing.T) {
	ny := [3]float64{10, 10, 10}

	assert.Equal(t, 1.0, phantom.NoDephasing([3]float64{5, 5, 5}, ny))
	assert.Equal(t, 1.0, phantom.SincDephasing([3]float64{}, ny), "k=0 has no dephasing")

	// First zero on one axis at k = 2·Nyquist.
	assert.InDelta(t, 0, phantom.SincDephasing([3]float64{20, 0, 0}, ny), 1e-12)

	// Monotone drop inside the first lobe.
	a := phantom.SincDephasing([3]float64{5, 0, 0}, ny)
	b := phantom.SincDephasing([3]float64{10, 0, 0}, ny)
	assert.Greater(t, a, b)
	assert.Greater(t, b, 0.0)
	assert.False(t, math.IsNaN(a))
}
