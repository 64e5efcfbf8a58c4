package fundamental

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Estimate.
var (
	ErrEmptySignal       = errors.New("fundamental: signal is empty")
	ErrInvalidSampleRate = errors.New("fundamental: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("fundamental: fft size must be a power of two >= 4")
)

// Config holds estimation parameters.
type Config struct {
	SampleRate float64     // sample rate of the capture in Hz
	FFTSize    int         // analysis size; 0 selects the next power of two >= len(signal)
	WindowType window.Type // analysis window; the zero value selects Hann
}

// Result holds the estimated fundamental of a capture.
type Result struct {
	FrequencyHz float64 // interpolated peak frequency in Hz
	Level       float64 // peak amplitude, normalized so a full-scale sine reports ~1
	Bin         int     // index of the raw peak bin
}

// Estimate measures the dominant frequency of a captured signal.
//
// The capture is windowed, transformed, and scanned for the largest
// magnitude bin strictly between DC and Nyquist. A parabolic fit through
// the peak bin and its two neighbours refines the frequency to sub-bin
// accuracy:
//
//	delta = 0.5 * (m[k-1] - m[k+1]) / (m[k-1] - 2*m[k] + m[k+1])
//	f = (k + delta) * sampleRate / fftSize
//
// The window's coherent gain is compensated, so Level is comparable across
// window types.
func Estimate(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return Result{}, ErrInvalidSampleRate
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < 4 || fftSize&(fftSize-1) != 0 {
		return Result{}, ErrInvalidFFTSize
	}

	n := len(signal)
	if n > fftSize {
		n = fftSize
	}

	winType := cfg.WindowType
	if winType == 0 {
		winType = window.TypeHann
	}
	coeffs := window.Generate(winType, n)

	coherentGain := 0.0
	for _, w := range coeffs {
		coherentGain += w
	}
	if coherentGain <= 0 {
		coherentGain = float64(n)
	}

	inData := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		w := 1.0
		if len(coeffs) == n {
			w = coeffs[i]
		}
		inData[i] = complex(signal[i]*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("fundamental: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("fundamental: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	peak := 1
	for i := 2; i < bins-1; i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	delta := interpolatePeak(mags, peak)
	binHz := cfg.SampleRate / float64(fftSize)

	return Result{
		FrequencyHz: (float64(peak) + delta) * binHz,
		Level:       2 * mags[peak] / coherentGain,
		Bin:         peak,
	}, nil
}

// interpolatePeak fits a parabola through the peak bin and its neighbours
// and returns the fractional bin offset in [-0.5, 0.5].
func interpolatePeak(mags []float64, peak int) float64 {
	if peak <= 0 || peak >= len(mags)-1 {
		return 0
	}

	alpha := mags[peak-1]
	beta := mags[peak]
	gamma := mags[peak+1]

	denom := alpha - 2*beta + gamma
	if math.Abs(denom) < 1e-30 {
		return 0
	}

	delta := 0.5 * (alpha - gamma) / denom
	if delta < -0.5 {
		delta = -0.5
	}
	if delta > 0.5 {
		delta = 0.5
	}
	return delta
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
