package simulate

import "errors"

var (
	// ErrShimMismatch indicates a pulse whose shim weight count differs from
	// the phantom's transmit channel count.
	ErrShimMismatch = errors.New("simulate: shim weight count must match transmit channel count")
	// ErrGraphSequence indicates a graph whose repetition count does not
	// exceed the sequence's by exactly one (the seed repetition).
	ErrGraphSequence = errors.New("simulate: graph must hold one repetition more than the sequence")
	// ErrInitialMag indicates an initial magnetization override of the wrong
	// length.
	ErrInitialMag = errors.New("simulate: initial magnetization length must equal the voxel count")
)

// Default thresholds; single source of truth for DefaultOptions.
const (
	// DefaultMinEmittedSignal is the minimum emitted-signal metric for a
	// transverse state to be measured.
	DefaultMinEmittedSignal = 1e-2

	// DefaultMinLatentSignal is the minimum latent-signal metric for a state
	// to be simulated at all. Should be ≤ DefaultMinEmittedSignal.
	DefaultMinLatentSignal = 1e-2
)

// Options configures the main pass.
//
// Fields:
//   - MinEmittedSignal — states below this emitted-signal metric never
//     generate measured signal.
//   - MinLatentSignal  — states below this latent-signal metric are not
//     simulated at all (silently dropped, together with descendants that
//     depend solely on them). Should be ≤ MinEmittedSignal.
//   - Progress         — print the current repetition while simulating.
//   - RecordADCMag     — also return the measured transverse magnetization
//     per repetition and contributing state (diagnostics).
//   - ClearStateMag    — release each repetition's magnetization as soon as
//     its descendants consumed it, bounding peak memory to the live
//     repetitions.
//   - InitialMag       — optional steady-state override for the equilibrium
//     seed; must hold one complex value per voxel.
type Options struct {
	MinEmittedSignal float64
	MinLatentSignal  float64
	Progress         bool
	RecordADCMag     bool
	ClearStateMag    bool
	InitialMag       []complex128
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinEmittedSignal: DefaultMinEmittedSignal,
		MinLatentSignal:  DefaultMinLatentSignal,
		ClearStateMag:    true,
	}
}

// StateMag is the recorded transverse magnetization of one contributing
// state: (ADC events) x (voxels), ADC-phase rotation and |PD| applied.
type StateMag [][]complex128

// Result bundles the outputs of Execute.
type Result struct {
	// Signal is the measured complex time series, (total ADC samples) x
	// (coils), in repetition-major, then-event order.
	Signal [][]complex128

	// ADCMag holds, per sequence repetition, the recorded magnetization of
	// every state that contributed signal there. Nil unless RecordADCMag.
	ADCMag [][]StateMag
}
