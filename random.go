package picsel

import "math/rand/v2"

// DefaultPointRadius is the world-space radius used when a strategy has no
// radius control: 2^-9.
const DefaultPointRadius = 1.0 / 512

type randomPoint struct {
	pos Vec2
	ok  bool
}

// RandomLayout scatters items uniformly over [0,1]×[0,1]. The generator is
// re-seeded from Seed on every Reset, so reloading the same selection places
// every item at the same point again.
type RandomLayout struct {
	Seed uint64

	rng       *rand.Rand
	positions map[SourceID][]randomPoint
}

// NewRandomLayout creates a random layout with the given seed.
func NewRandomLayout(seed uint64) *RandomLayout {
	return &RandomLayout{Seed: seed}
}

// Name implements Strategy.
func (l *RandomLayout) Name() string { return "Random positions" }

// Reset implements Strategy.
func (l *RandomLayout) Reset(sel *Selection) {
	l.rng = rand.New(rand.NewPCG(l.Seed, l.Seed^0x9e3779b97f4a7c15))
	l.positions = make(map[SourceID][]randomPoint, sel.Len())
	for _, src := range sel.Sources() {
		l.positions[src.ID] = make([]randomPoint, src.Len())
	}
}

// Process implements Strategy.
func (l *RandomLayout) Process(src *Source, index int, _ Sample) {
	l.positions[src.ID][index] = randomPoint{
		pos: Vec2{l.rng.Float64(), l.rng.Float64()},
		ok:  true,
	}
}

// Circle implements Strategy.
func (l *RandomLayout) Circle(item ItemRef) Circle {
	pts := l.positions[item.Source]
	if item.Index < 0 || item.Index >= len(pts) || !pts[item.Index].ok {
		missingItem(l.Name(), item)
	}
	return Circle{Center: pts[item.Index].pos, Radius: DefaultPointRadius, Color: ColorRed}
}

// Controls implements Strategy. The seed applies from the next reload.
func (l *RandomLayout) Controls() []Control {
	return []Control{{
		Name: ControlSeed, Kind: ControlInt, Min: 0, Max: 1 << 31,
		get: func() float64 { return float64(l.Seed) },
		set: func(v float64) { l.Seed = uint64(v) },
	}}
}

func (l *RandomLayout) wantsPixels() bool { return false }
