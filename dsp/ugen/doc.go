// Package ugen provides block-based unit generators: small stateful
// signal processors with named input and output ports that compute one
// block of samples per call.
//
// Every generator implements [UnitGenerator]. Inputs arrive as read-only
// slices in the order of InputNames; an input slice may be nil or shorter
// than the block, in which case the generator falls back to its declared
// default (see [DefaultInputer]). Outputs are written in place into the
// caller-owned slices in the order of OutputNames.
//
// Provided generators:
//   - Constant, RateConverter, Rounder, Sum: stateless helpers.
//   - WhiteNoise, Sine, Trigger, Clock: sources and control clocks.
//   - Selector, BreakpointEnvelope, PulseSelector: seeded value selection
//     driven by trigger inputs.
//   - AttackReleaseEnvelope: attack-release envelope with curve shaping.
//   - LowPass, ResonantLowPass: cascaded one-pole low-pass filters.
//
// Generators holding randomness own a seeded source; two generators built
// with the same seed and driven by the same inputs produce identical output.
//
// The exponential used for envelope curves and MIDI conversion is backed by
// the standard library by default. Building with the fastmath tag swaps in
// polynomial approximations from algo-approx.
package ugen
