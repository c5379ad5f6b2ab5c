package phantom

import (
	"errors"
	"fmt"
)

var (
	// ErrVoxelMismatch indicates per-voxel slices of differing lengths.
	ErrVoxelMismatch = errors.New("phantom: per-voxel data must agree in length")
	// ErrChannelMismatch indicates a coil or transmit map whose rows do not
	// match the voxel count.
	ErrChannelMismatch = errors.New("phantom: channel map row length must equal the voxel count")
)

// DephasingFunc models intra-voxel signal loss from finite voxel extent: it
// maps the current k-vector and the per-axis Nyquist parameter to a scalar
// attenuation in [0, 1], applied uniformly across voxels.
type DephasingFunc func(k [3]float64, nyquist [3]float64) float64

// MotionFunc is a rigid motion model: at time t it yields a rotation matrix
// and an offset applied to every static voxel position.
type MotionFunc func(t float64) (rot [3][3]float64, offset [3]float64)

// VoxelMotionFunc maps a time value to the position of every voxel.
type VoxelMotionFunc func(t float64) [][3]float64

// Data bundles the phantom and scanner properties of one simulation.
//
// All per-voxel slices are indexed identically. CoilSens and B1 are
// channel-major: CoilSens[c][v] is receive channel c at voxel v, B1[c][v]
// the transmit field of channel c. An empty B1 means a uniform unit
// transmit field.
type Data struct {
	T1     []float64 // longitudinal relaxation time, s
	T2     []float64 // transverse relaxation time, s
	T2Dash []float64 // reversible dephasing time T2', s
	D      []float64 // apparent diffusion coefficient, 1e-3 mm²/s
	B0     []float64 // off-resonance, Hz
	PD     []float64 // proton density

	VoxelPos [][3]float64 // voxel center positions, m
	Size     [3]float64   // field-of-view, m
	Nyquist  [3]float64   // voxel-shape Nyquist parameter, cycles/m

	CoilSens [][]complex128 // receive sensitivity, channel-major
	B1       [][]complex128 // transmit field, channel-major

	Dephasing DephasingFunc

	// Motion models, both optional. VoxelMotion wins when both are set;
	// RigidMotion(VoxelPos, Motion) is used otherwise. With neither, the
	// phantom is static and motion phase is exactly zero.
	VoxelMotion VoxelMotionFunc
	Motion      MotionFunc
}

// VoxelCount returns the number of voxels.
func (d *Data) VoxelCount() int { return len(d.PD) }

// Coils returns the number of receive channels.
func (d *Data) Coils() int { return len(d.CoilSens) }

// Validate checks that every per-voxel slice and every channel map matches
// the voxel count. Inconsistent data is a fatal configuration error.
func (d *Data) Validate() error {
	n := d.VoxelCount()
	for name, s := range map[string][]float64{
		"T1": d.T1, "T2": d.T2, "T2Dash": d.T2Dash,
		"D": d.D, "B0": d.B0,
	} {
		if len(s) != n {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrVoxelMismatch, name, len(s), n)
		}
	}
	if len(d.VoxelPos) != n {
		return fmt.Errorf("%w: VoxelPos has %d entries, want %d", ErrVoxelMismatch, len(d.VoxelPos), n)
	}
	for c, row := range d.CoilSens {
		if len(row) != n {
			return fmt.Errorf("%w: CoilSens[%d] has %d entries, want %d", ErrChannelMismatch, c, len(row), n)
		}
	}
	for c, row := range d.B1 {
		if len(row) != n {
			return fmt.Errorf("%w: B1[%d] has %d entries, want %d", ErrChannelMismatch, c, len(row), n)
		}
	}
	return nil
}

// PositionsFunc resolves the effective motion model: the explicit per-voxel
// function if set, a rigid adapter over the static positions otherwise, or
// nil for a static phantom.
func (d *Data) PositionsFunc() VoxelMotionFunc {
	if d.VoxelMotion != nil {
		return d.VoxelMotion
	}
	if d.Motion != nil {
		return RigidMotion(d.VoxelPos, d.Motion)
	}
	return nil
}
