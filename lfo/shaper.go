package lfo

import "math"

// Shaping functions map a normalized phase in [0, 1) to a raw amplitude in
// [-1, 1]. They are pure, never allocate, and never fail.

// SineValue returns sin(2π·phase).
func SineValue(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// TriangleValue ramps linearly from -1 at phase 0 to +1 at phase 0.5 and
// back down to -1 at the wrap.
func TriangleValue(phase float64) float64 {
	if phase < 0.5 {
		return 4*phase - 1
	}
	return 3 - 4*phase
}

// SawUpValue ramps linearly from -1 to +1 over one cycle, dropping back at
// the wrap.
func SawUpValue(phase float64) float64 {
	return 2*phase - 1
}

// SawDownValue ramps linearly from +1 to -1 over one cycle, jumping back at
// the wrap.
func SawDownValue(phase float64) float64 {
	return 1 - 2*phase
}

// PulseValue returns +1 while phase < dutyRatio and -1 afterwards.
//
// Duty ratios at or below 0 degrade to constant -1 and ratios at or above 1
// to constant +1; out-of-range ratios are usable, not errors.
func PulseValue(phase, dutyRatio float64) float64 {
	if phase < dutyRatio {
		return 1
	}
	return -1
}
