package pdg

import (
	"fmt"

	"github.com/phasorlab/pdgsim/cvec"
)

// Graph is an ordered sequence of repetition-indexed node lists.
//
// Reps[0] holds the equilibrium seed; Reps[i] for i ≥ 1 holds the states
// reachable after the i-th pulse. The structure is read/append-only for the
// simulation pass except for the per-node Mag and KTau fields.
type Graph struct {
	Reps [][]*Node
}

// NewGraph returns a graph with reps empty repetitions.
func NewGraph(reps int) *Graph {
	return &Graph{Reps: make([][]*Node, reps)}
}

// AddNode appends n to repetition rep and returns its reference.
// Panics if rep is outside the graph (programmer error).
func (g *Graph) AddNode(rep int, n *Node) NodeRef {
	if rep < 0 || rep >= len(g.Reps) {
		panic(fmt.Sprintf("pdg: AddNode: repetition %d out of range [0, %d)", rep, len(g.Reps)))
	}
	g.Reps[rep] = append(g.Reps[rep], n)
	return NodeRef{Rep: rep, Index: len(g.Reps[rep]) - 1}
}

// Node resolves a reference, or returns nil if it is out of range.
func (g *Graph) Node(ref NodeRef) *Node {
	if ref.Rep < 0 || ref.Rep >= len(g.Reps) {
		return nil
	}
	nodes := g.Reps[ref.Rep]
	if ref.Index < 0 || ref.Index >= len(nodes) {
		return nil
	}
	return nodes[ref.Index]
}

// Repetitions returns the number of repetitions, including the seed.
func (g *Graph) Repetitions() int { return len(g.Reps) }

// Validate checks the structural invariants of the graph:
//
//  1. at least one repetition exists and repetition 0 is exactly one
//     ancestry-free equilibrium node (the seed),
//  2. every ancestor of a node in repetition i references repetition i-1,
//  3. every ancestor reference resolves to an existing node.
//
// A violation is a graph-construction bug and therefore fatal; the returned
// error wraps the matching sentinel with the offending location.
func (g *Graph) Validate() error {
	if len(g.Reps) == 0 {
		return ErrEmptyGraph
	}
	if len(g.Reps[0]) != 1 || g.Reps[0][0].Kind != Equilibrium || len(g.Reps[0][0].Ancestors) != 0 {
		return ErrNoSeed
	}
	for rep := 1; rep < len(g.Reps); rep++ {
		for idx, n := range g.Reps[rep] {
			for _, a := range n.Ancestors {
				if a.Parent.Rep != rep-1 {
					return fmt.Errorf("%w: node (%d,%d) references repetition %d",
						ErrAncestorRep, rep, idx, a.Parent.Rep)
				}
				if g.Node(a.Parent) == nil {
					return fmt.Errorf("%w: node (%d,%d) references (%d,%d)",
						ErrNodeRef, rep, idx, a.Parent.Rep, a.Parent.Index)
				}
			}
		}
	}
	return nil
}

// Seed initializes the equilibrium node of repetition 0 for a pass.
//
// With initial == nil the phantom starts fully relaxed (magnetization 1 in
// every voxel); otherwise initial is copied in as a steady-state override.
// The seed's k–τ state is always reset to zero. The graph must have been
// validated; Seed only resolves the seed slot.
func (g *Graph) Seed(voxels int, initial []complex128) {
	seed := g.Reps[0][0]
	if initial == nil {
		seed.Mag = cvec.Ones(voxels)
	} else {
		seed.Mag = cvec.Clone(initial)
	}
	seed.KTau = [4]float64{}
}

// ReleaseRep clears the magnetization of every node in repetition rep,
// bounding peak memory to the live repetitions. Structural data (ancestors,
// metrics, k–τ) is retained.
func (g *Graph) ReleaseRep(rep int) {
	if rep < 0 || rep >= len(g.Reps) {
		return
	}
	for _, n := range g.Reps[rep] {
		n.Mag = nil
	}
}
