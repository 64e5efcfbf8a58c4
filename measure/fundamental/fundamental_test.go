package fundamental

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-lfo/lfo"
)

func captureSamples(t *testing.T, w lfo.Waveform, freqHz, sampleRate float64, n int) []float64 {
	t.Helper()

	osc, err := lfo.NewOscillator(w, freqHz, sampleRate)
	if err != nil {
		t.Fatalf("NewOscillator() error = %v", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = osc.NextSample()
	}
	return out
}

func TestEstimateSineFrequency(t *testing.T) {
	const (
		sampleRate = 8192.0
		freq       = 50.0
	)
	signal := captureSamples(t, lfo.Sine(), freq, sampleRate, 8192)

	res, err := Estimate(signal, Config{SampleRate: sampleRate})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if diff := math.Abs(res.FrequencyHz - freq); diff > 0.5 {
		t.Fatalf("FrequencyHz = %g, want %g±0.5", res.FrequencyHz, freq)
	}
	if res.Level < 0.8 || res.Level > 1.2 {
		t.Fatalf("Level = %g, want ~1 for a full-scale sine", res.Level)
	}
}

func TestEstimateExactBinFrequency(t *testing.T) {
	// 32 Hz at 8192 Hz with an 8192-point FFT lands exactly on bin 32.
	const (
		sampleRate = 8192.0
		freq       = 32.0
	)
	signal := captureSamples(t, lfo.Sine(), freq, sampleRate, 8192)

	res, err := Estimate(signal, Config{SampleRate: sampleRate})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if res.Bin != 32 {
		t.Fatalf("Bin = %d, want 32", res.Bin)
	}
	if diff := math.Abs(res.FrequencyHz - freq); diff > 0.05 {
		t.Fatalf("FrequencyHz = %g, want %g±0.05", res.FrequencyHz, freq)
	}
}

func TestEstimatePulseFundamental(t *testing.T) {
	// A symmetric pulse is odd-harmonic only; the fundamental dominates.
	const (
		sampleRate = 8192.0
		freq       = 100.0
	)
	signal := captureSamples(t, lfo.Pulse(0.5), freq, sampleRate, 8192)

	res, err := Estimate(signal, Config{SampleRate: sampleRate})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if diff := math.Abs(res.FrequencyHz - freq); diff > 1 {
		t.Fatalf("FrequencyHz = %g, want %g±1", res.FrequencyHz, freq)
	}
}

func TestEstimateTriangleFundamental(t *testing.T) {
	const (
		sampleRate = 4096.0
		freq       = 64.0
	)
	signal := captureSamples(t, lfo.Triangle(), freq, sampleRate, 4096)

	res, err := Estimate(signal, Config{SampleRate: sampleRate})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if diff := math.Abs(res.FrequencyHz - freq); diff > 1 {
		t.Fatalf("FrequencyHz = %g, want %g±1", res.FrequencyHz, freq)
	}
}

func TestEstimateZeroPadsShortSignal(t *testing.T) {
	const sampleRate = 1000.0
	signal := captureSamples(t, lfo.Sine(), 50, sampleRate, 900)

	res, err := Estimate(signal, Config{SampleRate: sampleRate, FFTSize: 1024})
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if diff := math.Abs(res.FrequencyHz - 50); diff > 1 {
		t.Fatalf("FrequencyHz = %g, want 50±1", res.FrequencyHz)
	}
}

func TestEstimateValidation(t *testing.T) {
	if _, err := Estimate(nil, Config{SampleRate: 1000}); err == nil {
		t.Fatal("Estimate() expected error for empty signal")
	}
	if _, err := Estimate([]float64{1, 2, 3}, Config{SampleRate: 0}); err == nil {
		t.Fatal("Estimate() expected error for zero sample rate")
	}
	if _, err := Estimate([]float64{1, 2, 3}, Config{SampleRate: 1000, FFTSize: 100}); err == nil {
		t.Fatal("Estimate() expected error for non-power-of-two fft size")
	}
}
