package picsel

import "fmt"

// ItemRef identifies one item: the index-th entry of a source.
type ItemRef struct {
	Source SourceID
	Index  int
}

// String returns a short form for logs.
func (r ItemRef) String() string {
	return fmt.Sprintf("%s#%d", r.Source.String()[:8], r.Index)
}

// Strategy computes a circle for every item of a selection. A strategy is
// rebuilt by a reload pass: Reset, then Process for every item in source
// order and index order. Circle is only valid after the pass completes and
// only for items passed to Process since the last Reset.
//
// The set of strategies is closed: *RandomLayout and *HilbertLayout.
type Strategy interface {
	// Name is the label shown in the UI and accepted by the CLI.
	Name() string
	// Reset discards all state and prepares containers for sel's sources.
	Reset(sel *Selection)
	// Process records one item.
	Process(src *Source, index int, s Sample)
	// Circle returns the world-space circle of a processed item. Asking for
	// an item that was not processed is a programming error and panics.
	Circle(item ItemRef) Circle
	// Controls lists the adjustable parameters.
	Controls() []Control

	// wantsPixels reports whether Process reads Sample.CenterPixel with the
	// current settings. Unexported to keep the set of strategies closed.
	wantsPixels() bool
}

// NewStrategies returns the built-in strategies configured from cfg, random
// layout first.
func NewStrategies(cfg Config) []Strategy {
	r := NewRandomLayout(cfg.Random.Seed)
	h := NewHilbertLayout()
	h.Order = cfg.Hilbert.Order
	h.RadiusExponent = cfg.Hilbert.RadiusExponent
	h.SampleColors = cfg.Hilbert.SampleColors
	return []Strategy{r, h}
}

// StrategyByName returns the strategy whose Name or Key matches name.
func StrategyByName(strategies []Strategy, name string) (Strategy, bool) {
	for _, s := range strategies {
		if s.Name() == name || strategyKey(s) == name {
			return s, true
		}
	}
	return nil, false
}

// strategyKey is the short CLI name of a strategy.
func strategyKey(s Strategy) string {
	switch s.(type) {
	case *RandomLayout:
		return "random"
	case *HilbertLayout:
		return "hilbert"
	default:
		panic(fmt.Sprintf("picsel: unknown strategy %T", s))
	}
}

// missingItem panics for a Circle call on an item that was never processed.
func missingItem(strategy string, item ItemRef) {
	panic(fmt.Sprintf("picsel: %s has no data for item %s; reload required", strategy, item))
}
