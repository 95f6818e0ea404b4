package picsel

import (
	"math"
	"time"
)

const (
	DefaultCurveOrder     = 20
	DefaultRadiusExponent = -9.0
	MinRadiusExponent     = -20.0
	MaxRadiusExponent     = -4.0
)

type hilbertItem struct {
	time  time.Time
	color Color
	dated bool
	ok    bool
}

// HilbertLayout places items along a Hilbert curve by capture time. Time is
// normalised over the whole selection, quantised onto the curve and the
// resulting grid cell is scaled into [-1,1]×[-1,1]. Items close in time land
// close on screen. Items without a capture time sit at the origin in red.
type HilbertLayout struct {
	// Order is the curve order; the grid is 2^Order cells wide.
	// Takes effect immediately.
	Order int
	// RadiusExponent sets the point radius to 2^RadiusExponent.
	// Takes effect immediately.
	RadiusExponent float64
	// SampleColors fills points with the image's center pixel instead of a
	// fixed color. Takes effect on the next reload.
	SampleColors bool

	items    map[SourceID][]hilbertItem
	colored  bool
	minTime  time.Time
	maxTime  time.Time
	anyDated bool
}

// NewHilbertLayout returns a layout with the default order and radius.
func NewHilbertLayout() *HilbertLayout {
	return &HilbertLayout{Order: DefaultCurveOrder, RadiusExponent: DefaultRadiusExponent}
}

// Name implements Strategy.
func (l *HilbertLayout) Name() string { return "Hilbert curve plot" }

// Reset implements Strategy.
func (l *HilbertLayout) Reset(sel *Selection) {
	l.items = make(map[SourceID][]hilbertItem, sel.Len())
	for _, src := range sel.Sources() {
		l.items[src.ID] = make([]hilbertItem, src.Len())
	}
	l.colored = l.SampleColors
	l.minTime, l.maxTime = time.Time{}, time.Time{}
	l.anyDated = false
}

// Process implements Strategy.
func (l *HilbertLayout) Process(src *Source, index int, s Sample) {
	it := hilbertItem{ok: true, color: ColorDarkRed}
	if t, ok := CaptureTime(s); ok {
		it.time, it.dated = t, true
		if !l.anyDated || t.Before(l.minTime) {
			l.minTime = t
		}
		if !l.anyDated || t.After(l.maxTime) {
			l.maxTime = t
		}
		l.anyDated = true
	}
	if l.colored {
		it.color = s.CenterPixel()
	}
	l.items[src.ID][index] = it
}

// Circle implements Strategy.
func (l *HilbertLayout) Circle(item ItemRef) Circle {
	its := l.items[item.Source]
	if item.Index < 0 || item.Index >= len(its) || !its[item.Index].ok {
		missingItem(l.Name(), item)
	}
	it := its[item.Index]
	radius := math.Pow(2, l.RadiusExponent)
	if !it.dated {
		return Circle{Radius: radius, Color: ColorRed}
	}

	order := l.order()
	x, y := HilbertPoint(order, l.Distance(it.time))
	side := float64(uint64(1) << uint(order))
	return Circle{
		Center: Vec2{-1 + 2*float64(x)/side, -1 + 2*float64(y)/side},
		Radius: radius,
		Color:  it.color,
	}
}

// Normalize maps t into [0,1] relative to the earliest and latest capture
// times seen since the last Reset. When every dated item shares one time the
// result is 0.
func (l *HilbertLayout) Normalize(t time.Time) float64 {
	span := l.maxTime.Sub(l.minTime)
	if span <= 0 {
		return 0
	}
	return clamp01(float64(t.Sub(l.minTime)) / float64(span))
}

// Distance quantises t onto the curve: round(Normalize(t) * (4^order - 1)),
// halves rounded to even. Distances never decrease as t increases.
func (l *HilbertLayout) Distance(t time.Time) uint64 {
	limit := HilbertMaxDistance(l.order())
	d := math.RoundToEven(l.Normalize(t) * float64(limit))
	// float64(limit) rounds up to 4^order for large orders.
	if d >= float64(limit) {
		return limit
	}
	return uint64(d)
}

// TimeRange returns the earliest and latest capture times seen since the last
// Reset. ok is false when no item was dated.
func (l *HilbertLayout) TimeRange() (lo, hi time.Time, ok bool) {
	return l.minTime, l.maxTime, l.anyDated
}

func (l *HilbertLayout) order() int {
	return max(MinCurveOrder, min(MaxCurveOrder, l.Order))
}

// Controls implements Strategy.
func (l *HilbertLayout) Controls() []Control {
	return []Control{
		intControl(ControlCurveOrder, MinCurveOrder, MaxCurveOrder, true, &l.Order),
		floatControl(ControlPointRadius, MinRadiusExponent, MaxRadiusExponent, true, &l.RadiusExponent),
		boolControl(ControlReadColors, false, &l.SampleColors),
	}
}

func (l *HilbertLayout) wantsPixels() bool { return l.SampleColors }
