package picsel

import (
	"context"

	"github.com/charmbracelet/log"
)

// Plotter owns everything the point-cloud view needs between frames: the
// strategies, the current animation, the camera and the coverage of the
// last reload. It holds no reference to the Selection; every call that needs
// one takes it as an argument, so a changed selection is only trusted after
// Reload.
type Plotter struct {
	Strategies []Strategy
	Animation  Animation
	Camera     *Camera
	Viewer     *Viewer

	// AnimationTime is the duration of new transitions in seconds.
	AnimationTime float64
	// FocusTime is the duration of camera focus moves in seconds.
	FocusTime float64
	// ShowSelection draws rings around selected items.
	ShowSelection bool

	Decoder Decoder
	Workers int

	coverage    Coverage
	initialised bool
	logger      *log.Logger
	sink        EventSink
}

// NewPlotter builds a plotter from cfg. The animation starts as a Constant
// of the first strategy.
func NewPlotter(cfg Config, viewer *Viewer, logger *log.Logger) *Plotter {
	if logger == nil {
		logger = log.Default()
	}
	strategies := NewStrategies(cfg)
	cam := NewCamera(Rect{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)})
	cam.ZoomFactor = cfg.Camera.ZoomFactor
	cam.MinScale = cfg.Camera.MinScale
	cam.MaxScale = cfg.Camera.MaxScale
	return &Plotter{
		Strategies:    strategies,
		Animation:     Constant{Strategy: strategies[0]},
		Camera:        cam,
		Viewer:        viewer,
		AnimationTime: cfg.Animation.Duration,
		FocusTime:     cfg.Camera.FocusDuration,
		ShowSelection: true,
		Decoder:       FileDecoder{},
		Workers:       cfg.Reload.Workers,
		logger:        logger,
	}
}

// SetEventSink sets the optional event consumer.
func (p *Plotter) SetEventSink(sink EventSink) {
	p.sink = sink
}

// Initialised reports whether a reload has completed.
func (p *Plotter) Initialised() bool {
	return p.initialised
}

// Coverage returns the items processed by the last reload.
func (p *Plotter) Coverage() Coverage {
	return p.coverage
}

// Reload rebuilds every strategy from sel. The first successful reload fits
// the camera to the viewport. On error the previous state is kept.
func (p *Plotter) Reload(ctx context.Context, sel *Selection) (ReloadReport, error) {
	report, err := Reload(ctx, sel, p.Strategies, p.Decoder, ReloadOptions{
		Workers: p.Workers,
		Logger:  p.logger,
	})
	if err != nil {
		return report, err
	}
	p.coverage = report.Coverage
	if !p.initialised {
		p.Camera.Fit(p.Camera.Viewport.Width, p.Camera.Viewport.Height)
		p.initialised = true
	}
	p.emit(Event{Type: EventReload, Items: report.Coverage.Count()})
	return report, nil
}

// Controls returns the plotter's animation time followed by every
// strategy's controls, in strategy order.
func (p *Plotter) Controls() []Control {
	cs := []Control{floatControl(ControlAnimationTime, 0, MaxAnimationDuration, true, &p.AnimationTime)}
	for _, s := range p.Strategies {
		cs = append(cs, s.Controls()...)
	}
	return cs
}

// Control returns the first control named name.
func (p *Plotter) Control(name string) (Control, bool) {
	for _, c := range p.Controls() {
		if c.Name == name {
			return c, true
		}
	}
	return Control{}, false
}

// Apply starts a transition from the current target strategy to s.
func (p *Plotter) Apply(s Strategy) {
	if !p.initialised {
		return
	}
	p.Animation = StartTransition(p.Animation, s, p.AnimationTime)
	p.logger.Debug("Applying layout", "strategy", s.Name(), "duration", p.AnimationTime)
	p.emit(Event{Type: EventApply, Strategy: s.Name()})
}

// Update runs one frame: camera input, double-click picking, then the
// animation and camera focus advance by in.Dt. It returns the picked item,
// if any.
func (p *Plotter) Update(sel *Selection, in FrameInput) (Hit, bool) {
	p.Camera.HandleInput(in)

	var hit Hit
	var picked bool
	if p.initialised && in.DoubleClick && !in.UICaptured {
		hit, picked = p.Pick(sel, in.Cursor)
		if picked {
			p.logger.Debug("Picked item", "item", hit.Item, "distance", hit.Distance)
			if p.Viewer != nil {
				p.Viewer.SetImage(hit.Item)
			}
			p.emit(Event{Type: EventPick, Item: hit.Item, Screen: in.Cursor})
		}
	}

	if p.initialised {
		p.Animation = Step(p.Animation, in.Dt)
	}
	p.Camera.update(float32(in.Dt))
	return hit, picked
}

// Pick hit-tests a screen point against the current frame's circles.
func (p *Plotter) Pick(sel *Selection, point Vec2) (Hit, bool) {
	if !p.initialised {
		return Hit{}, false
	}
	return HitTest(sel, p.coverage, p.Animation, p.Camera, point)
}

// FocusOn moves the camera to the current position of item.
func (p *Plotter) FocusOn(item ItemRef) {
	if !p.initialised || !p.coverage.Has(item) {
		return
	}
	p.Camera.FocusOn(p.Animation.Circle(item).Center, float32(p.FocusTime), nil)
}

// VisibleCircle is one item as it appears on screen this frame.
type VisibleCircle struct {
	Item     ItemRef
	Circle   Circle // screen space
	Selected bool
}

// EachVisible calls fn for every covered item whose screen circle, grown by
// pad pixels, intersects the viewport. Items are visited in source order and
// index order.
func (p *Plotter) EachVisible(sel *Selection, pad float64, fn func(VisibleCircle)) {
	if !p.initialised {
		return
	}
	vp := p.Camera.Viewport
	p.coverage.EachItem(sel, func(pos int, ref ItemRef) {
		c := p.Camera.CircleToScreen(p.Animation.Circle(ref))
		if !c.Bounds(pad).Intersects(vp) {
			return
		}
		fn(VisibleCircle{Item: ref, Circle: c, Selected: sel.Subset(pos).Has(ref.Index)})
	})
}

func (p *Plotter) emit(e Event) {
	if p.sink != nil {
		p.sink.EmitEvent(e)
	}
}
