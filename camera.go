package picsel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultZoomFactor is the scale change per scroll step.
	DefaultZoomFactor = 1.1
	defaultMinScale   = 1e-12
	defaultMaxScale   = 1e6
)

// focusAnim is an active focus move. The tween drives progress from 0 to 1;
// positions stay in float64 so deep zoom levels keep their precision.
type focusAnim struct {
	tween         *gween.Tween
	start, target Vec2
}

// Camera maps world space to screen space: a translation by Position and a
// uniform scale. Scale is world units per screen pixel, so a larger Scale
// shows more of the world.
//
//	screen = (world - Position) / Scale + viewport center
type Camera struct {
	// Position is the world point shown at the viewport center.
	Position Vec2
	// Scale is world units per pixel. Always within [MinScale, MaxScale].
	Scale float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect
	// ZoomFactor is the scale change per scroll step.
	ZoomFactor float64
	// MinScale and MaxScale bound Scale; MinScale must be > 0.
	MinScale, MaxScale float64

	focus *focusAnim
}

// NewCamera creates a Camera at the world origin with Scale 1.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Scale:      1,
		Viewport:   viewport,
		ZoomFactor: DefaultZoomFactor,
		MinScale:   defaultMinScale,
		MaxScale:   defaultMaxScale,
	}
}

// Center returns the screen-space center of the viewport.
func (c *Camera) Center() Vec2 {
	return c.Viewport.Center()
}

// Fit sets Scale so that the world square [-1,1]×[-1,1] spans the shorter
// side of a w×h viewport.
func (c *Camera) Fit(w, h float64) {
	if side := math.Min(w, h); side > 0 {
		c.setScale(2 / side)
	}
}

// Pan moves the camera for a pointer drag of delta screen pixels. The world
// follows the pointer, so the camera moves the opposite way.
func (c *Camera) Pan(delta Vec2) {
	c.Position = c.Position.Sub(delta.Scale(c.Scale))
}

// ZoomAt zooms by ZoomFactor^steps (positive steps zoom in) while keeping
// the world point under cursor fixed on screen.
func (c *Camera) ZoomAt(cursor Vec2, steps float64) {
	if steps == 0 {
		return
	}
	off := cursor.Sub(c.Center())
	c.Position = c.Position.Add(off.Scale(c.Scale))
	c.setScale(c.Scale / math.Pow(c.ZoomFactor, steps))
	c.Position = c.Position.Sub(off.Scale(c.Scale))
}

func (c *Camera) setScale(s float64) {
	lo := math.Max(c.MinScale, defaultMinScale)
	hi := c.MaxScale
	if hi < lo {
		hi = lo
	}
	if math.IsNaN(s) {
		s = 1
	}
	c.Scale = math.Max(lo, math.Min(hi, s))
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(c.Position).Scale(1 / c.Scale).Add(c.Center())
}

// ScreenToWorld converts a screen point to world coordinates.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return p.Sub(c.Center()).Scale(c.Scale).Add(c.Position)
}

// CircleToScreen converts a world-space circle to screen space. The radius
// scales like any distance; color is unchanged.
func (c *Camera) CircleToScreen(w Circle) Circle {
	return Circle{Center: c.WorldToScreen(w.Center), Radius: w.Radius / c.Scale, Color: w.Color}
}

// VisibleBounds returns the world-space rectangle covered by the viewport.
func (c *Camera) VisibleBounds() Rect {
	tl := c.ScreenToWorld(Vec2{c.Viewport.X, c.Viewport.Y})
	return Rect{X: tl.X, Y: tl.Y, Width: c.Viewport.Width * c.Scale, Height: c.Viewport.Height * c.Scale}
}

// FocusOn animates Position to world over duration seconds using easeFn.
// A nil easeFn uses SmoothStepEase. Pan and zoom input cancel the animation.
func (c *Camera) FocusOn(world Vec2, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = SmoothStepEase
	}
	if duration <= 0 {
		c.Position = world
		c.focus = nil
		return
	}
	c.focus = &focusAnim{
		tween:  gween.New(0, 1, duration, easeFn),
		start:  c.Position,
		target: world,
	}
}

// Focusing reports whether a FocusOn animation is in progress.
func (c *Camera) Focusing() bool {
	return c.focus != nil
}

// HandleInput applies one frame of pointer input: drag to pan, scroll to
// zoom about the cursor. Input captured by UI is ignored.
func (c *Camera) HandleInput(in FrameInput) {
	if in.UICaptured {
		return
	}
	if in.DragHeld && (in.CursorDelta != Vec2{}) {
		c.focus = nil
		c.Pan(in.CursorDelta)
	}
	if in.Scroll != 0 {
		c.focus = nil
		c.ZoomAt(in.Cursor, in.Scroll)
	}
}

// update advances the focus animation.
func (c *Camera) update(dt float32) {
	if c.focus == nil {
		return
	}
	v, done := c.focus.tween.Update(dt)
	if done {
		c.Position = c.focus.target
		c.focus = nil
		return
	}
	f := c.focus
	c.Position = f.start.Add(f.target.Sub(f.start).Scale(float64(v)))
}
