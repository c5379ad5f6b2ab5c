package sequence

import (
	"errors"
	"fmt"
)

// ErrEventMismatch indicates per-event slices of differing lengths inside a
// repetition. Inconsistent timing data is a fatal configuration error.
var ErrEventMismatch = errors.New("sequence: per-event slices must have equal length")

// ShimWeight is one transmit channel's complex weight, given as amplitude
// and phase (radians).
type ShimWeight struct {
	Amplitude float64
	Phase     float64
}

// Pulse is the RF pulse opening a repetition.
//
// A single shim entry means one effective transmit channel (the coil fields
// are summed); multiple entries mean parallel transmit, and the entry count
// must match the phantom's transmit-field channel count.
type Pulse struct {
	Angle float64 // flip angle, radians
	Phase float64 // radians
	Shim  []ShimWeight
}

// Repetition is one pulse followed by a train of gradient/timing events.
// All per-event slices run in event order and must agree in length.
type Repetition struct {
	Pulse Pulse

	// GradMoments holds the (x, y, z) gradient moment of each event, in
	// cycles/m, or cycles/FOV when the sequence is normalized.
	GradMoments [][3]float64

	// EventTimes holds each event's duration in seconds.
	EventTimes []float64

	// ADCUsage marks the events at which the signal is sampled.
	ADCUsage []bool

	// ADCPhase is the receiver phase (radians) per event; only the entries
	// of ADC-active events are ever used.
	ADCPhase []float64
}

// Events returns the number of events in the repetition.
func (r *Repetition) Events() int { return len(r.EventTimes) }

// ADCCount returns the number of ADC-active events.
func (r *Repetition) ADCCount() int {
	n := 0
	for _, on := range r.ADCUsage {
		if on {
			n++
		}
	}
	return n
}

// ADCEvents returns the indices of ADC-active events, in event order.
func (r *Repetition) ADCEvents() []int {
	idx := make([]int, 0, r.ADCCount())
	for e, on := range r.ADCUsage {
		if on {
			idx = append(idx, e)
		}
	}
	return idx
}

// Validate checks that every per-event slice agrees in length.
func (r *Repetition) Validate() error {
	n := len(r.EventTimes)
	if len(r.GradMoments) != n || len(r.ADCUsage) != n || len(r.ADCPhase) != n {
		return fmt.Errorf("%w: moments=%d times=%d adc=%d phase=%d",
			ErrEventMismatch, len(r.GradMoments), n, len(r.ADCUsage), len(r.ADCPhase))
	}
	return nil
}

// Sequence is an ordered list of repetitions.
type Sequence struct {
	Reps []Repetition

	// NormalizedGrads records that gradient moments are given in cycles per
	// field-of-view and must be scaled by 1/FOV before use.
	NormalizedGrads bool
}

// Validate checks every repetition.
func (s *Sequence) Validate() error {
	for i := range s.Reps {
		if err := s.Reps[i].Validate(); err != nil {
			return fmt.Errorf("repetition %d: %w", i, err)
		}
	}
	return nil
}
