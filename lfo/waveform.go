package lfo

// Shape identifies one of the closed set of waveform shapes.
type Shape int

// Waveform shapes.
const (
	ShapeSine Shape = iota
	ShapeTriangle
	ShapeSawUp
	ShapeSawDown
	ShapePulse
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeTriangle:
		return "triangle"
	case ShapeSawUp:
		return "sawup"
	case ShapeSawDown:
		return "sawdown"
	case ShapePulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// Waveform selects a shape together with its shape parameter. Only
// ShapePulse carries a parameter: DutyRatio, the fraction of each cycle
// spent at the high (+1) level. The zero value is a sine waveform.
type Waveform struct {
	Shape     Shape
	DutyRatio float64
}

// Sine returns a sine waveform.
func Sine() Waveform { return Waveform{Shape: ShapeSine} }

// Triangle returns a triangle waveform.
func Triangle() Waveform { return Waveform{Shape: ShapeTriangle} }

// SawUp returns a rising sawtooth waveform.
func SawUp() Waveform { return Waveform{Shape: ShapeSawUp} }

// SawDown returns a falling sawtooth waveform.
func SawDown() Waveform { return Waveform{Shape: ShapeSawDown} }

// Pulse returns a pulse waveform with the given duty ratio in (0, 1).
// Ratios outside that range degrade to a constant level, see [PulseValue].
func Pulse(dutyRatio float64) Waveform {
	return Waveform{Shape: ShapePulse, DutyRatio: dutyRatio}
}

// Value maps a normalized phase in [0, 1) to an amplitude in [-1, 1] for
// this waveform.
func (w Waveform) Value(phase float64) float64 {
	switch w.Shape {
	case ShapeTriangle:
		return TriangleValue(phase)
	case ShapeSawUp:
		return SawUpValue(phase)
	case ShapeSawDown:
		return SawDownValue(phase)
	case ShapePulse:
		return PulseValue(phase, w.DutyRatio)
	default:
		return SineValue(phase)
	}
}
