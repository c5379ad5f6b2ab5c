// Package phantom holds the per-voxel tissue and scanner data the simulation
// pass consumes: relaxation times, diffusion coefficient, off-resonance,
// proton density, voxel positions, coil sensitivity and transmit-field maps,
// the voxel-shape dephasing function and optional motion models.
//
// The package owns none of the physics — it is a validated data container
// plus two small adapters:
//
//   - RigidMotion turns a rigid rotation+offset function of time into a
//     per-voxel position function, and
//   - SincDephasing / NoDephasing are reference implementations of the
//     intra-voxel dephasing model.
//
// Loading, unit conversion and phantom construction live in external
// collaborators; Data is their contract with the pass.
package phantom
