package picsel

import (
	"math"
	"strconv"
)

// ControlKind selects how a Control is presented and parsed.
type ControlKind uint8

const (
	ControlInt   ControlKind = iota // integer input
	ControlFloat                    // slider
	ControlBool                     // checkbox; values are 0 and 1
)

// Control names shared by the built-in strategies and the plotter.
const (
	ControlAnimationTime = "animation time"
	ControlSeed          = "seed"
	ControlCurveOrder    = "curve iterations"
	ControlPointRadius   = "point radius"
	ControlReadColors    = "read colors"
)

// Control describes one adjustable strategy parameter without tying it to a
// particular UI. Values travel as float64; Set clamps to [Min, Max] and
// rounds for ControlInt.
type Control struct {
	Name string
	Kind ControlKind
	Min  float64
	Max  float64
	// Immediate is true when a change affects Circle right away; otherwise
	// it takes effect on the next reload.
	Immediate bool

	get func() float64
	set func(float64)
}

// Value returns the current value.
func (c Control) Value() float64 {
	return c.get()
}

// Set stores v after clamping it to the control's range.
func (c Control) Set(v float64) {
	switch c.Kind {
	case ControlInt:
		v = math.Round(v)
	case ControlBool:
		if v != 0 {
			v = 1
		}
	}
	c.set(math.Max(c.Min, math.Min(c.Max, v)))
}

// Step moves the value by delta; a ControlBool flips instead.
func (c Control) Step(delta float64) {
	if c.Kind == ControlBool {
		c.Set(1 - c.Value())
		return
	}
	c.Set(c.Value() + delta)
}

// Format renders the current value for display.
func (c Control) Format() string {
	v := c.Value()
	switch c.Kind {
	case ControlBool:
		if v != 0 {
			return "on"
		}
		return "off"
	case ControlInt:
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
}

func intControl(name string, lo, hi int, immediate bool, p *int) Control {
	return Control{
		Name: name, Kind: ControlInt, Min: float64(lo), Max: float64(hi), Immediate: immediate,
		get: func() float64 { return float64(*p) },
		set: func(v float64) { *p = int(v) },
	}
}

func floatControl(name string, lo, hi float64, immediate bool, p *float64) Control {
	return Control{
		Name: name, Kind: ControlFloat, Min: lo, Max: hi, Immediate: immediate,
		get: func() float64 { return *p },
		set: func(v float64) { *p = v },
	}
}

func boolControl(name string, immediate bool, p *bool) Control {
	return Control{
		Name: name, Kind: ControlBool, Min: 0, Max: 1, Immediate: immediate,
		get: func() float64 {
			if *p {
				return 1
			}
			return 0
		},
		set: func(v float64) { *p = v != 0 },
	}
}
