package picsel

// syntheticInput is one injected frame. Screen coordinates are used, the
// same as real pointer input.
type syntheticInput struct {
	cursor      Vec2
	held        bool
	scroll      float64
	doubleClick bool
	actions     Action
}

// InputQueue holds injected frames. While it is non-empty, the app consumes
// one entry per frame instead of polling the real devices.
type InputQueue struct {
	events []syntheticInput
	last   Vec2
	primed bool
}

// Len returns the number of queued frames.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// InjectMove queues a pointer move to (x, y) with no button held.
func (q *InputQueue) InjectMove(x, y float64) {
	q.events = append(q.events, syntheticInput{cursor: Vec2{x, y}})
}

// InjectDoubleClick queues a hover at (x, y) followed by a completed double
// click there. Consumes two frames.
func (q *InputQueue) InjectDoubleClick(x, y float64) {
	q.InjectMove(x, y)
	q.events = append(q.events, syntheticInput{cursor: Vec2{x, y}, doubleClick: true})
}

// InjectDrag queues a full drag: a hover at (fromX, fromY), frames held
// positions interpolated linearly up to (toX, toY), and a release there.
// frames is at least 2.
func (q *InputQueue) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	from, to := Vec2{fromX, fromY}, Vec2{toX, toY}
	q.InjectMove(fromX, fromY)
	for i := range frames {
		t := float64(i) / float64(frames-1)
		q.events = append(q.events, syntheticInput{
			cursor: Vec2{lerp(from.X, to.X, t), lerp(from.Y, to.Y, t)},
			held:   true,
		})
	}
	q.InjectMove(toX, toY)
}

// InjectScroll queues a wheel movement of amount steps at (x, y).
func (q *InputQueue) InjectScroll(x, y, amount float64) {
	q.events = append(q.events, syntheticInput{cursor: Vec2{x, y}, scroll: amount})
}

// InjectActions queues a frame that triggers a, keeping the pointer where it
// was.
func (q *InputQueue) InjectActions(a Action) {
	q.events = append(q.events, syntheticInput{cursor: q.tail(), actions: a})
}

// tail returns the cursor of the last queued frame, or of the last consumed
// one.
func (q *InputQueue) tail() Vec2 {
	if n := len(q.events); n > 0 {
		return q.events[n-1].cursor
	}
	return q.last
}

// next pops one frame. ok is false when the queue is empty.
func (q *InputQueue) next(dt float64) (in FrameInput, ok bool) {
	if len(q.events) == 0 {
		return FrameInput{}, false
	}
	evt := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]

	if !q.primed {
		q.last = evt.cursor
		q.primed = true
	}
	in = FrameInput{
		Dt:          dt,
		Cursor:      evt.cursor,
		CursorDelta: evt.cursor.Sub(q.last),
		DragHeld:    evt.held,
		Scroll:      evt.scroll,
		DoubleClick: evt.doubleClick,
		Actions:     evt.actions,
	}
	q.last = evt.cursor
	return in, true
}
