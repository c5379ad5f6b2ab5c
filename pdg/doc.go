// Package pdg defines the phase-distribution graph (PDG) data model consumed
// by the main simulation pass.
//
// A PDG is a repetition-indexed DAG of magnetization states. Each node is one
// pathway the magnetization can take through a pulse sequence, classified as
// longitudinal equilibrium, longitudinal coherence, or one of the two
// transverse pathways. Edges record how an RF pulse splits a parent state's
// magnetization into its children; they always cross exactly one repetition
// boundary, which is what makes the repetition loop strictly sequential.
//
// The graph is built externally (by a pre-pass that also attaches the
// emitted/latent signal metrics used for pruning). This package owns only
// its in-memory shape plus the two fields the simulation pass mutates:
// Node.Mag and Node.KTau.
//
// Ancestors reference their parent by a (repetition, index) pair rather than
// a pointer, so releasing a node's magnetization is a local slot clear and
// never keeps voxel-sized buffers alive through back references.
//
// Typical use:
//
//	g := pdg.NewGraph(reps)
//	seed := g.AddNode(0, &pdg.Node{Kind: pdg.Equilibrium})
//	child := g.AddNode(1, &pdg.Node{
//	  Kind:      pdg.TransversePlus,
//	  Ancestors: []pdg.Ancestor{{Label: pdg.TransZP, Parent: seed}},
//	})
//	if err := g.Validate(); err != nil { ... }
package pdg
