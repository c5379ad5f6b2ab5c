package phantom

// RigidMotion adapts a rigid rotation+offset model to a per-voxel position
// function: pos'(t) = rot(t)·pos + offset(t) for every voxel.
func RigidMotion(pos [][3]float64, f MotionFunc) VoxelMotionFunc {
	return func(t float64) [][3]float64 {
		rot, offset := f(t)
		out := make([][3]float64, len(pos))
		for v, p := range pos {
			for i := 0; i < 3; i++ {
				out[v][i] = rot[i][0]*p[0] + rot[i][1]*p[1] + rot[i][2]*p[2] + offset[i]
			}
		}
		return out
	}
}
