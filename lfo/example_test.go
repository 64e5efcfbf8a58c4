package lfo_test

import (
	"fmt"

	"github.com/cwbudde/algo-lfo/lfo"
)

func ExampleOscillator_NextSample() {
	osc, err := lfo.NewOscillator(lfo.Pulse(0.5), 250, 1000, lfo.WithGain(0.5))
	if err != nil {
		fmt.Println("error")
		return
	}

	for i := 0; i < 4; i++ {
		fmt.Printf("%.2f\n", osc.NextSample())
	}
	// Output:
	// 0.50
	// 0.50
	// -0.50
	// -0.50
}

func ExampleOscillator_NextUnipolar() {
	osc, err := lfo.NewOscillator(lfo.SawUp(), 250, 1000)
	if err != nil {
		fmt.Println("error")
		return
	}

	for i := 0; i < 4; i++ {
		fmt.Printf("%.2f\n", osc.NextUnipolar())
	}
	// Output:
	// 0.00
	// 0.25
	// 0.50
	// 0.75
}

func ExampleWaveform_Value() {
	tri := lfo.Triangle()
	for _, p := range []float64{0, 0.25, 0.5, 0.875} {
		fmt.Printf("%.1f\n", tri.Value(p))
	}
	// Output:
	// -1.0
	// 0.0
	// 1.0
	// -0.5
}
