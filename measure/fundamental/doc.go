// Package fundamental estimates the dominant frequency of a captured
// control signal.
//
// It exists to verify offline that an oscillator really runs at its
// configured rate: capture one sample per tick into a slice, then hand the
// slice to [Estimate]. The estimator windows the capture, takes a forward
// FFT, and refines the peak bin with a parabolic fit, which resolves well
// below one bin of frequency error for clean periodic inputs.
//
//	out := make([]float64, 8192)
//	for i := range out {
//	    out[i] = osc.NextSample()
//	}
//	res, err := fundamental.Estimate(out, fundamental.Config{SampleRate: 8192})
//
// The package is measurement tooling; nothing in it is suitable for a
// real-time path.
package fundamental
