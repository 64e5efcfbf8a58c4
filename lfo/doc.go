// Package lfo provides a low-frequency oscillator for per-sample parameter
// modulation.
//
// The oscillator maps a sample counter to a normalized phase in [0, 1) and
// shapes that phase into one control value per call:
//
//	p = fract(freq * t + theta), t = timeIndex / sampleRate
//
// Available shapes:
//   - Sine: smooth sinusoid.
//   - Triangle: linear ramp up then down, peaking mid-cycle.
//   - SawUp: linear ramp from -1 to +1 with a drop at wrap.
//   - SawDown: linear ramp from +1 to -1 with a jump at wrap.
//   - Pulse: binary high/low with adjustable duty ratio.
//
// None of the shapes is band-limited; the discontinuous ones alias when
// driven at audio rates. The package performs no I/O and the stepping path
// never allocates and never fails, so it is safe to call from an audio
// callback as long as a single goroutine owns the oscillator.
package lfo
