package picsel

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Animation decides which circle an item shows this frame. It is either a
// Constant holding one strategy or an Interpolation blending two. Both are
// plain values; Step returns the next state instead of mutating shared
// state.
type Animation interface {
	// Circle returns the world-space circle of item for the current state.
	Circle(item ItemRef) Circle
	// Last is the strategy the animation settles on. A new transition starts
	// from here so that retargeting mid-flight never jumps back.
	Last() Strategy
	// NeedsReplacement reports whether the animation reached its end and
	// should be swapped for Replacement.
	NeedsReplacement() bool
	// Replacement is the terminal state that follows this animation.
	Replacement() Animation

	isAnimation()
}

// Constant shows a single strategy. It never finishes.
type Constant struct {
	Strategy Strategy
}

// Circle implements Animation.
func (c Constant) Circle(item ItemRef) Circle { return c.Strategy.Circle(item) }

// Last implements Animation.
func (c Constant) Last() Strategy { return c.Strategy }

// NeedsReplacement implements Animation.
func (c Constant) NeedsReplacement() bool { return false }

// Replacement implements Animation.
func (c Constant) Replacement() Animation { return c }

func (Constant) isAnimation() {}

// Interpolation blends From into To over Duration seconds with a smoothstep
// ease. Elapsed only moves forward and never exceeds Duration.
type Interpolation struct {
	From, To Strategy
	Elapsed  float64
	Duration float64
}

// Circle implements Animation.
func (a Interpolation) Circle(item ItemRef) Circle {
	return LerpCircle(a.From.Circle(item), a.To.Circle(item), SmoothStep(a.Progress()))
}

// Progress returns Elapsed/Duration in [0,1].
func (a Interpolation) Progress() float64 {
	if a.Duration <= 0 {
		return 1
	}
	return clamp01(a.Elapsed / a.Duration)
}

// Last implements Animation.
func (a Interpolation) Last() Strategy { return a.To }

// NeedsReplacement implements Animation.
func (a Interpolation) NeedsReplacement() bool { return a.Elapsed >= a.Duration }

// Replacement implements Animation.
func (a Interpolation) Replacement() Animation { return Constant{Strategy: a.To} }

// Advance moves Elapsed forward by dt, clamped to Duration. Negative dt is
// ignored.
func (a Interpolation) Advance(dt float64) Interpolation {
	a.Elapsed = math.Min(a.Elapsed+math.Max(dt, 0), a.Duration)
	return a
}

func (Interpolation) isAnimation() {}

// StartTransition begins animating from the strategy cur settles on towards
// to. A non-positive duration switches to to immediately.
func StartTransition(cur Animation, to Strategy, duration float64) Animation {
	if duration <= 0 {
		return Constant{Strategy: to}
	}
	return Interpolation{From: cur.Last(), To: to, Duration: duration}
}

// Step advances a by dt seconds and collapses a finished interpolation to
// its terminal Constant.
func Step(a Animation, dt float64) Animation {
	switch a := a.(type) {
	case Constant:
		return a
	case Interpolation:
		next := a.Advance(dt)
		if next.NeedsReplacement() {
			return next.Replacement()
		}
		return next
	default:
		panic(fmt.Sprintf("picsel: unknown animation %T", a))
	}
}

// SmoothStep eases t with 3t²-2t³, clamped to [0,1].
func SmoothStep(t float64) float64 {
	return clamp01(3*t*t - 2*t*t*t)
}

// SmoothStepEase is SmoothStep as a gween easing function.
var SmoothStepEase ease.TweenFunc = func(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(SmoothStep(float64(t/d)))
}
