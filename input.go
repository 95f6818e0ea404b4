package picsel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// doubleClickTicks is the longest gap between two clicks of a double
	// click, in ticks at 60 TPS (~0.4s).
	doubleClickTicks = 24
	// doubleClickSlop is how far (pixels) the pointer may move between the
	// two clicks.
	doubleClickSlop = 4.0
)

// Action is a bitmask of keyboard commands triggered this frame.
type Action uint32

const (
	ActionReload       Action = 1 << iota // R: rebuild every strategy
	ActionSave                            // Ctrl+S: save the selection file
	ActionNext                            // Right: viewer to next item
	ActionPrev                            // Left: viewer to previous item
	ActionToggleSelect                    // Space: toggle the viewer item's selection
	ActionApplyFirst                      // 1: animate to the first strategy
	ActionApplySecond                     // 2: animate to the second strategy
	ActionToggleRings                     // S: show or hide selection rings
	ActionScreenshot                      // F12: save a screenshot
	ActionToggleViewer                    // V: show or hide the viewer panel
	ActionOrderUp                         // ]: one more Hilbert curve iteration
	ActionOrderDown                       // [: one fewer Hilbert curve iteration
	ActionRadiusUp                        // =: double the Hilbert point radius
	ActionRadiusDown                      // -: halve the Hilbert point radius
	ActionDurationUp                      // .: longer layout transitions
	ActionDurationDown                    // ,: shorter layout transitions
	ActionToggleColors                    // C: read point colors on the next reload
	ActionNextSeed                        // N: next random seed on the next reload
)

// controlKeys maps keys to the control they step and by how much.
var controlKeys = []struct {
	key     ebiten.Key
	action  Action
	control string
	delta   float64
}{
	{ebiten.KeyBracketRight, ActionOrderUp, ControlCurveOrder, 1},
	{ebiten.KeyBracketLeft, ActionOrderDown, ControlCurveOrder, -1},
	{ebiten.KeyEqual, ActionRadiusUp, ControlPointRadius, 1},
	{ebiten.KeyMinus, ActionRadiusDown, ControlPointRadius, -1},
	{ebiten.KeyPeriod, ActionDurationUp, ControlAnimationTime, 0.5},
	{ebiten.KeyComma, ActionDurationDown, ControlAnimationTime, -0.5},
	{ebiten.KeyC, ActionToggleColors, ControlReadColors, 0},
	{ebiten.KeyN, ActionNextSeed, ControlSeed, 1},
}

// Has reports whether every action in mask is set.
func (a Action) Has(mask Action) bool {
	return a&mask == mask
}

// FrameInput is everything one frame step reads from the outside world. It
// is a plain value so frames can be replayed in tests without a window.
type FrameInput struct {
	// Dt is the frame duration in seconds.
	Dt float64
	// Cursor is the pointer position in screen pixels.
	Cursor Vec2
	// CursorDelta is the pointer movement since the previous frame.
	CursorDelta Vec2
	// DragHeld is true while the pan button is down.
	DragHeld bool
	// Scroll is the vertical wheel movement; positive zooms in.
	Scroll float64
	// DoubleClick is true on the frame a double click completes.
	DoubleClick bool
	// UICaptured is true when the pointer is over UI that consumes it.
	UICaptured bool
	// Actions are the keyboard commands triggered this frame.
	Actions Action
}

// InputPoller reads Ebitengine's input state into FrameInput values. It
// carries the state needed to derive deltas and double clicks across
// frames.
type InputPoller struct {
	tick      int
	last      Vec2
	primed    bool
	clickTick int
	clickPos  Vec2
	clicked   bool
}

// Poll samples the current frame. Call once per Update.
func (p *InputPoller) Poll() FrameInput {
	p.tick++
	mx, my := ebiten.CursorPosition()
	cur := Vec2{float64(mx), float64(my)}
	if !p.primed {
		p.last = cur
		p.primed = true
	}
	_, wheelY := ebiten.Wheel()

	in := FrameInput{
		Dt:          1.0 / float64(ebiten.TPS()),
		Cursor:      cur,
		CursorDelta: cur.Sub(p.last),
		DragHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Scroll:      wheelY,
	}
	p.last = cur

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.DoubleClick = p.registerClick(cur)
	}
	in.Actions = readActions()
	return in
}

// registerClick records a click and reports whether it completes a double
// click.
func (p *InputPoller) registerClick(pos Vec2) bool {
	if p.clicked && p.tick-p.clickTick <= doubleClickTicks && pos.Sub(p.clickPos).Len() <= doubleClickSlop {
		p.clicked = false
		return true
	}
	p.clicked = true
	p.clickTick = p.tick
	p.clickPos = pos
	return false
}

func readActions() Action {
	var a Action
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !ctrl {
		a |= ActionReload
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if ctrl {
			a |= ActionSave
		} else {
			a |= ActionToggleRings
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		a |= ActionNext
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a |= ActionPrev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a |= ActionToggleSelect
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		a |= ActionApplyFirst
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		a |= ActionApplySecond
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a |= ActionScreenshot
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		a |= ActionToggleViewer
	}
	for _, k := range controlKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			a |= k.action
		}
	}
	return a
}
