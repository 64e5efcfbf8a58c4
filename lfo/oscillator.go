package lfo

import (
	"fmt"
	"math"
)

// maxSampleRate is the largest sample rate whose integer part still
// round-trips exactly through float64, which the time-index wrap relies on.
const maxSampleRate = 1 << 53

// Option configures an Oscillator at construction.
type Option func(*Oscillator)

// WithGain sets the initial gain multiplier. The nominal range is [-1, 1]
// but no range check is applied.
func WithGain(gain float64) Option {
	return func(o *Oscillator) {
		o.gain = gain
	}
}

// WithPhaseOffset sets the initial phase offset in cycles. Any value is
// accepted; the offset is wrapped into [0, 1) with the rest of the phase.
func WithPhaseOffset(theta float64) Option {
	return func(o *Oscillator) {
		o.theta = theta
	}
}

// Oscillator is a low-frequency oscillator producing one control sample per
// call.
//
// Each step evaluates the active waveform at
//
//	p = fract(freq * t + theta), t = timeIndex / sampleRate
//
// then advances the time index by one sample, wrapping it modulo the
// truncated sample rate so that phase repeats after one second of samples.
// The fractional part uses the floor convention, so p stays in [0, 1) for
// negative frequencies and offsets too.
//
// An Oscillator is owned by a single producer and is not safe for
// concurrent use without external synchronization.
type Oscillator struct {
	waveform   Waveform
	freqHz     float64
	theta      float64
	gain       float64
	timeIndex  float64
	sampleRate float64
	wrap       uint64
}

// NewOscillator creates an oscillator with the given waveform, frequency in
// Hz, and sample rate in samples per second. Gain defaults to 1 and phase
// offset to 0.
//
// The sample rate is the one validated input: the time-index wrap truncates
// it to an integer, so it must be finite and lie in [1, 2^53]. A fractional
// sample rate is accepted, but the wrap point truncates to its integer
// part, shifting the phase epoch by the fractional remainder once per
// second. Frequency, gain, phase offset, and duty ratio are never
// validated; out-of-domain values yield well-defined, possibly meaningless
// output instead of errors.
func NewOscillator(waveform Waveform, freqHz, sampleRate float64, opts ...Option) (*Oscillator, error) {
	if sampleRate < 1 || math.IsNaN(sampleRate) {
		return nil, fmt.Errorf("lfo sample rate must be >= 1: %f", sampleRate)
	}
	if sampleRate > maxSampleRate {
		return nil, fmt.Errorf("lfo sample rate must be <= 2^53: %f", sampleRate)
	}

	o := &Oscillator{
		waveform:   waveform,
		freqHz:     freqHz,
		gain:       1,
		sampleRate: sampleRate,
		wrap:       uint64(sampleRate),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o, nil
}

// SetWaveform replaces the active waveform. It takes effect on the next
// sample; the time index is untouched, so phase continues from its current
// value under the new shape.
func (o *Oscillator) SetWaveform(waveform Waveform) { o.waveform = waveform }

// SetFrequency replaces the frequency in Hz. Negative frequencies reverse
// the apparent direction of the waveform.
func (o *Oscillator) SetFrequency(freqHz float64) { o.freqHz = freqHz }

// SetPhaseOffset replaces the phase offset in cycles.
func (o *Oscillator) SetPhaseOffset(theta float64) { o.theta = theta }

// SetGain replaces the gain multiplier.
func (o *Oscillator) SetGain(gain float64) { o.gain = gain }

// Reset restarts the cycle: the time index returns to zero, so the next
// sample is taken at the bare phase offset.
func (o *Oscillator) Reset() { o.timeIndex = 0 }

// Waveform returns the active waveform.
func (o *Oscillator) Waveform() Waveform { return o.waveform }

// Frequency returns the frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freqHz }

// PhaseOffset returns the phase offset in cycles.
func (o *Oscillator) PhaseOffset() float64 { return o.theta }

// Gain returns the gain multiplier.
func (o *Oscillator) Gain() float64 { return o.gain }

// SampleRate returns the sample rate in samples per second.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// NextSample advances the oscillator by one sample tick and returns the
// bipolar control sample gain * value, in [-|gain|, |gain|].
func (o *Oscillator) NextSample() float64 {
	return o.gain * o.step()
}

// NextUnipolar advances the oscillator by one sample tick and returns
// 0.5 * gain * (value + 1), in [0, gain] for non-negative gain. Useful for
// driving parameters that must not go negative.
func (o *Oscillator) NextUnipolar() float64 {
	return 0.5 * o.gain * (o.step() + 1)
}

func (o *Oscillator) step() float64 {
	t := o.timeIndex / o.sampleRate
	p := wrapPhase(o.freqHz*t + o.theta)
	o.timeIndex = float64(uint64(o.timeIndex+1) % o.wrap)
	return o.waveform.Value(p)
}

// wrapPhase reduces x into [0, 1) using the floor convention, so the result
// is non-negative for negative arguments.
func wrapPhase(x float64) float64 {
	return x - math.Floor(x)
}
