package phantom

import "math"

// NoDephasing models point-like voxels: no intra-voxel signal loss at any
// k-vector.
func NoDephasing(_ [3]float64, _ [3]float64) float64 { return 1 }

// SincDephasing models box-shaped voxels: the attenuation is the product of
// normalized sincs of k relative to twice the per-axis Nyquist parameter,
// reaching the first zero where a full phase wrap fits inside one voxel.
func SincDephasing(k [3]float64, nyquist [3]float64) float64 {
	att := 1.0
	for i := 0; i < 3; i++ {
		att *= sinc(k[i] / (2 * nyquist[i]))
	}
	return att
}

// sinc is the normalized sinc function sin(πx)/(πx).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
