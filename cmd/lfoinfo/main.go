// Command lfoinfo steps LFO waveforms offline and prints signal statistics.
//
// Usage:
//
//	lfoinfo [flags] [shape-name ...]
//
// Without arguments it reports all shapes.
//
// Examples:
//
//	lfoinfo sine
//	lfoinfo -freq 5 -rate 8192 -seconds 1 pulse
//	lfoinfo -duty 0.25 -gain 0.5 pulse
//	lfoinfo -plot triangle
//	lfoinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-lfo/lfo"
	"github.com/cwbudde/algo-lfo/measure/fundamental"
)

type shapeEntry struct {
	name    string
	shape   lfo.Shape
	hasDuty bool
	defDuty float64
}

var registry = []shapeEntry{
	{"sine", lfo.ShapeSine, false, 0},
	{"triangle", lfo.ShapeTriangle, false, 0},
	{"sawup", lfo.ShapeSawUp, false, 0},
	{"sawdown", lfo.ShapeSawDown, false, 0},
	{"pulse", lfo.ShapePulse, true, 0.5},
}

func main() {
	freq := flag.Float64("freq", 10, "oscillator frequency in Hz")
	rate := flag.Float64("rate", 8192, "sample rate in samples per second")
	seconds := flag.Float64("seconds", 1, "capture duration in seconds")
	gain := flag.Float64("gain", 1, "gain multiplier")
	theta := flag.Float64("theta", 0, "phase offset in cycles")
	duty := flag.Float64("duty", math.NaN(), "duty ratio for the pulse shape")
	unipolar := flag.Bool("unipolar", false, "report the unipolar output convention instead of bipolar")
	plot := flag.Bool("plot", false, "print an ASCII oscillogram of the first cycle")
	width := flag.Int("width", 72, "oscillogram width in columns")
	height := flag.Int("height", 15, "oscillogram height in rows")
	all := flag.Bool("all", false, "report all shapes")
	list := flag.Bool("list", false, "list available shape names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lfoinfo [flags] [shape-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Steps LFO waveforms offline and prints signal statistics.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, reports all shapes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lfoinfo sine triangle\n")
		fmt.Fprintf(os.Stderr, "  lfoinfo -freq 5 -rate 8192 pulse\n")
		fmt.Fprintf(os.Stderr, "  lfoinfo -plot sawup\n")
		fmt.Fprintf(os.Stderr, "  lfoinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	waveforms := resolveWaveforms(names, *duty)
	if len(waveforms) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching shapes\n")
		os.Exit(1)
	}

	samples := int(math.Round(*rate * *seconds))
	if samples < 1 {
		fmt.Fprintf(os.Stderr, "error: capture is empty (rate %g, seconds %g)\n", *rate, *seconds)
		os.Exit(1)
	}

	if err := printReport(waveforms, *freq, *rate, *gain, *theta, *unipolar, samples); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *plot {
		for _, rw := range waveforms {
			if err := printPlot(rw, *freq, *rate, *gain, *theta, *unipolar, *width, *height); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type resolvedWaveform struct {
	label    string
	waveform lfo.Waveform
}

func resolveWaveforms(names []string, dutyFlag float64) []resolvedWaveform {
	byName := make(map[string]shapeEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []resolvedWaveform
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown shape %q (use -list to see available)\n", name)
			continue
		}

		w := lfo.Waveform{Shape: e.shape}
		label := e.name
		if e.hasDuty {
			d := e.defDuty
			if !math.IsNaN(dutyFlag) {
				d = dutyFlag
			}
			w.DutyRatio = d
			label = fmt.Sprintf("%s (duty=%.2f)", e.name, d)
		}
		result = append(result, resolvedWaveform{label, w})
	}
	return result
}

func capture(w lfo.Waveform, freq, rate, gain, theta float64, unipolar bool, samples int) ([]float64, error) {
	osc, err := lfo.NewOscillator(w, freq, rate,
		lfo.WithGain(gain),
		lfo.WithPhaseOffset(theta),
	)
	if err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		if unipolar {
			out[i] = osc.NextUnipolar()
		} else {
			out[i] = osc.NextSample()
		}
	}
	return out, nil
}

func printReport(waveforms []resolvedWaveform, freq, rate, gain, theta float64, unipolar bool, samples int) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Shape\tSamples\tMin\tMax\tMean\tRMS\tMeasured [Hz]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t-------\t---\t---\t----\t---\t-------------\n"); err != nil {
		return err
	}

	for _, rw := range waveforms {
		out, err := capture(rw.waveform, freq, rate, gain, theta, unipolar, samples)
		if err != nil {
			return err
		}

		min, max, mean, rms := stats(out)

		measured := math.NaN()
		if res, err := fundamental.Estimate(out, fundamental.Config{SampleRate: rate}); err == nil {
			measured = res.FrequencyHz
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.3f\n",
			rw.label,
			samples,
			min,
			max,
			mean,
			rms,
			measured,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printPlot(rw resolvedWaveform, freq, rate, gain, theta float64, unipolar bool, width, height int) error {
	if width < 8 {
		width = 8
	}
	if height < 3 {
		height = 3
	}
	if height%2 == 0 {
		height++
	}

	// One cycle, or one second for sub-hertz or degenerate frequencies.
	cycleSamples := int(rate)
	if f := math.Abs(freq); f >= 1 {
		if n := int(math.Round(rate / f)); n >= 2 {
			cycleSamples = n
		}
	}

	out, err := capture(rw.waveform, freq, rate, gain, theta, unipolar, cycleSamples)
	if err != nil {
		return err
	}

	lo, hi := -math.Abs(gain), math.Abs(gain)
	if unipolar {
		lo = math.Min(0, gain)
		hi = math.Max(0, gain)
	}
	if hi == lo {
		hi = lo + 1
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}
	zeroRow := height - 1 - int(math.Round(core.Clamp((0-lo)/(hi-lo), 0, 1)*float64(height-1)))
	for c := 0; c < width; c++ {
		grid[zeroRow][c] = '-'
	}

	for c := 0; c < width; c++ {
		i := c * (len(out) - 1) / maxInt(width-1, 1)
		norm := core.Clamp((out[i]-lo)/(hi-lo), 0, 1)
		r := height - 1 - int(math.Round(norm*float64(height-1)))
		grid[r][c] = '*'
	}

	fmt.Printf("\n%s %.6g Hz @ %.6g Hz [%+.4g .. %+.4g]\n", rw.label, freq, rate, lo, hi)
	for _, row := range grid {
		fmt.Println(string(row))
	}
	return nil
}

func stats(data []float64) (min, max, mean, rms float64) {
	min = math.Inf(1)
	max = math.Inf(-1)

	sum := 0.0
	sumSq := 0.0
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
		sumSq += v * v
	}

	n := float64(len(data))
	return min, max, sum / n, math.Sqrt(sumSq / n)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
