package simulate

// Test-only bridge exposing the private per-repetition kernels to the
// external simulate_test package, without widening the production API.

type RFCoeffs = rfCoeffs

// PulseCoeffsForTest forwards to the private pulseCoeffs.
var PulseCoeffsForTest = pulseCoeffs

// CombinedB1ForTest forwards to the private combinedB1.
var CombinedB1ForTest = combinedB1

// DiffusionFactorsForTest forwards to the private diffusionFactors.
var DiffusionFactorsForTest = diffusionFactors

// LongitudinalDiffusionForTest forwards to the private longitudinalDiffusion.
var LongitudinalDiffusionForTest = longitudinalDiffusion

// MotionPhasesForTest forwards to the private motionPhases.
var MotionPhasesForTest = motionPhases

// Coefficient accessors for property tests.
func (c *rfCoeffs) ZToZ() []complex128 { return c.zToZ }
func (c *rfCoeffs) PToP() []complex128 { return c.pToP }
func (c *rfCoeffs) ZToP() []complex128 { return c.zToP }
func (c *rfCoeffs) PToZ() []complex128 { return c.pToZ }
func (c *rfCoeffs) MToZ() []complex128 { return c.mToZ }
func (c *rfCoeffs) MToP() []complex128 { return c.mToP }
