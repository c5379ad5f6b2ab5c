package simulate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/phasorlab/pdgsim/pdg"
	"github.com/phasorlab/pdgsim/sequence"
)

// invSqrt2 is 1/√2, the RF-split convention: an excited transverse pathway
// carries half the energy, the projector restores it with √2.
const invSqrt2 = 0.70710678118

// rfCoeffs holds the six per-voxel complex transition coefficients of one
// pulse. The effective flip angle and phase vary per voxel through the
// combined transmit field.
type rfCoeffs struct {
	zToZ []complex128 // zz: unaffected longitudinal, cos α
	pToP []complex128 // ++: unaffected transverse, cos²(α/2)
	zToP []complex128 // z+: excitation, -(i/√2)·sin α·e^{iφ}
	pToZ []complex128 // +z: storage, -conj(z+)
	mToZ []complex128 // -z: conjugate storage, -(z+)
	mToP []complex128 // -+: refocusing, (1-cos²(α/2))·e^{2iφ}
}

// combinedB1 reduces the transmit channels to one effective complex field
// per voxel. A single shim weight (or none) sums the channels; parallel
// transmit weights each channel by amplitude·exp(-i·phase) first. A weight
// count that matches neither case is a fatal configuration error, including
// multiple weights against a missing transmit map.
func combinedB1(p *sequence.Pulse, b1 [][]complex128, voxels int) ([]complex128, error) {
	if len(p.Shim) > 1 && len(p.Shim) != len(b1) {
		return nil, fmt.Errorf("%w: %d shim weights, %d transmit channels",
			ErrShimMismatch, len(p.Shim), len(b1))
	}

	combined := make([]complex128, voxels)
	if len(b1) == 0 {
		// Uniform unit transmit field.
		for v := range combined {
			combined[v] = 1
		}
		return combined, nil
	}
	if len(p.Shim) <= 1 {
		for _, row := range b1 {
			for v := range combined {
				combined[v] += row[v]
			}
		}
		return combined, nil
	}
	for c, row := range b1 {
		shim := complex(p.Shim[c].Amplitude, 0) * cmplx.Exp(complex(0, -p.Shim[c].Phase))
		for v := range combined {
			combined[v] += row[v] * shim
		}
	}
	return combined, nil
}

// pulseCoeffs derives the six transition coefficient vectors of a pulse.
func pulseCoeffs(p *sequence.Pulse, b1 [][]complex128, voxels int) (*rfCoeffs, error) {
	combined, err := combinedB1(p, b1, voxels)
	if err != nil {
		return nil, err
	}

	c := &rfCoeffs{
		zToZ: make([]complex128, voxels),
		pToP: make([]complex128, voxels),
		zToP: make([]complex128, voxels),
		pToZ: make([]complex128, voxels),
		mToZ: make([]complex128, voxels),
		mToP: make([]complex128, voxels),
	}
	for v := 0; v < voxels; v++ {
		angle := p.Angle * cmplx.Abs(combined[v])
		phase := p.Phase + cmplx.Phase(combined[v])

		cosA := math.Cos(angle)
		cosHalf := math.Cos(angle / 2)
		expPhase := cmplx.Exp(complex(0, phase))

		c.zToZ[v] = complex(cosA, 0)
		c.pToP[v] = complex(cosHalf*cosHalf, 0)
		c.zToP[v] = complex(0, -invSqrt2) * complex(math.Sin(angle), 0) * expPhase
		c.pToZ[v] = -cmplx.Conj(c.zToP[v])
		c.mToZ[v] = -c.zToP[v]
		c.mToP[v] = (1 - c.pToP[v]) * expPhase * expPhase
	}
	return c, nil
}

// accumulate adds the parent magnetization, converted through the labeled
// transition, into dst. Reversing labels read the parent as its complex
// conjugate. An unknown label is a graph-construction bug.
func (c *rfCoeffs) accumulate(dst []complex128, label pdg.Transition, parent []complex128) error {
	switch label {
	case pdg.TransZZ:
		for v := range dst {
			dst[v] += parent[v] * c.zToZ[v]
		}
	case pdg.TransPP:
		for v := range dst {
			dst[v] += parent[v] * c.pToP[v]
		}
	case pdg.TransZP:
		for v := range dst {
			dst[v] += parent[v] * c.zToP[v]
		}
	case pdg.TransPZ:
		for v := range dst {
			dst[v] += parent[v] * c.pToZ[v]
		}
	case pdg.TransMZ:
		for v := range dst {
			dst[v] += cmplx.Conj(parent[v]) * c.mToZ[v]
		}
	case pdg.TransMP:
		for v := range dst {
			dst[v] += cmplx.Conj(parent[v]) * c.mToP[v]
		}
	default:
		return fmt.Errorf("%w: %s", pdg.ErrUnknownTransition, label)
	}
	return nil
}
