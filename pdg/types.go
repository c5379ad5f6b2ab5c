package pdg

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGraph indicates a graph without any repetition.
	ErrEmptyGraph = errors.New("pdg: graph must contain at least one repetition")
	// ErrNoSeed indicates repetition 0 does not hold exactly one equilibrium node.
	ErrNoSeed = errors.New("pdg: repetition 0 must hold a single ancestry-free equilibrium node")
	// ErrAncestorRep indicates an ancestor that does not live one repetition back.
	ErrAncestorRep = errors.New("pdg: ancestor must belong to the immediately preceding repetition")
	// ErrNodeRef indicates a (repetition, index) reference outside the graph.
	ErrNodeRef = errors.New("pdg: node reference out of range")
	// ErrUnknownTransition indicates a transition label outside the closed set.
	ErrUnknownTransition = errors.New("pdg: unknown transition label")
)

// Kind classifies a magnetization state.
type Kind uint8

const (
	// Equilibrium is the fully-relaxed longitudinal state (z0). It regrows
	// toward full magnetization via T1 recovery and is never pruned.
	Equilibrium Kind = iota
	// Longitudinal is a stored longitudinal coherence (z).
	Longitudinal
	// TransversePlus is the measurable transverse pathway (+).
	TransversePlus
	// TransverseMinus is the conjugate transverse pathway (-).
	TransverseMinus
)

// String returns the canonical short label of the kind.
func (k Kind) String() string {
	switch k {
	case Equilibrium:
		return "z0"
	case Longitudinal:
		return "z"
	case TransversePlus:
		return "+"
	case TransverseMinus:
		return "-"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Transition labels the RF-split edge from a parent state to a child state.
// The set is closed: exactly six coefficients exist, one per label.
type Transition uint8

const (
	// TransZZ keeps longitudinal magnetization longitudinal (cos α).
	TransZZ Transition = iota
	// TransPP keeps transverse magnetization transverse (cos²(α/2)).
	TransPP
	// TransZP excites longitudinal magnetization into the + pathway.
	TransZP
	// TransPZ stores transverse magnetization longitudinally.
	TransPZ
	// TransMZ stores the conjugate pathway longitudinally. Conjugating.
	TransMZ
	// TransMP refocuses the conjugate pathway into +. Conjugating.
	TransMP
)

// transitionLabels holds the canonical wire labels, indexed by Transition.
var transitionLabels = [...]string{"zz", "++", "z+", "+z", "-z", "-+"}

// String returns the canonical two-character label of the transition.
func (t Transition) String() string {
	if int(t) < len(transitionLabels) {
		return transitionLabels[t]
	}
	return fmt.Sprintf("Transition(%d)", uint8(t))
}

// Conjugating reports whether the transition reads the parent magnetization
// as its complex conjugate and negates the parent's k–τ state.
func (t Transition) Conjugating() bool {
	return t == TransMZ || t == TransMP
}

// ParseTransition maps a canonical label ("zz", "++", "z+", "+z", "-z", "-+")
// to its Transition. Loaders should use this once at graph-construction time;
// the simulation pass itself only ever dispatches on the enum.
func ParseTransition(label string) (Transition, error) {
	for i, l := range transitionLabels {
		if l == label {
			return Transition(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransition, label)
}

// NodeRef addresses a node as a (repetition, index) pair.
type NodeRef struct {
	Rep   int
	Index int
}

// Ancestor is one incoming edge of a node: which transition coefficient
// converts the parent's magnetization into this node's contribution.
type Ancestor struct {
	Label  Transition
	Parent NodeRef
}

// Node is one magnetization state of the graph.
//
// EmittedSignal and LatentSignal are importance metrics attached by the
// discovery pre-pass; the main pass reads them for pruning thresholds and
// never recomputes them. Mag and KTau are the two fields the main pass owns:
// both are overwritten in place exactly once per repetition, and Mag may be
// set back to nil once every descendant has consumed it.
type Node struct {
	Kind Kind

	// KTau is the accumulated (kx, ky, kz, τ) at the start of the node's
	// repetition. Re-derived by arithmetic every pass; pre-pass estimates
	// are never trusted.
	KTau [4]float64

	// Mag holds one complex value per phantom voxel, or nil while the state
	// is not simulated (pruned, skipped or released).
	Mag []complex128

	EmittedSignal float64
	LatentSignal  float64

	// Ancestors all live in the immediately preceding repetition; the
	// equilibrium seed of repetition 0 has none.
	Ancestors []Ancestor
}

// Simulated reports whether the node currently carries magnetization.
func (n *Node) Simulated() bool { return n.Mag != nil }
