package uicam

// syntheticPointerEvent represents a single injected mouse event in screen
// coordinates.
type syntheticPointerEvent struct {
	pos     Vec2
	pressed bool
	button  MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued event is consumed by one tick and replaces the real mouse for
// that tick.
func (r *Router) InjectPress(x, y float64) {
	r.InjectButton(MouseButtonLeft, x, y, true)
}

// InjectMove queues a pointer move with the left button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (r *Router) InjectMove(x, y float64) {
	r.InjectButton(MouseButtonLeft, x, y, true)
}

// InjectHover queues a pointer move with no button held.
func (r *Router) InjectHover(x, y float64) {
	r.InjectButton(MouseButtonLeft, x, y, false)
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (r *Router) InjectRelease(x, y float64) {
	r.InjectButton(MouseButtonLeft, x, y, false)
}

// InjectButton queues a mouse event for any button. pressed is the button
// state after the event; edges are derived from the previous injected state.
func (r *Router) InjectButton(b MouseButton, x, y float64, pressed bool) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{
		pos:     Vec2{x, y},
		pressed: pressed,
		button:  b,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two ticks.
func (r *Router) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and release
// at (toX, toY). Minimum frames is 2 (press + release).
func (r *Router) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// InjectText queues text for the selection. One string is forwarded per tick,
// after any real keyboard input.
func (r *Router) InjectText(text string) {
	if text == "" {
		return
	}
	r.textQueue = append(r.textQueue, text)
}

// Pending reports whether injected events are still queued.
func (r *Router) Pending() bool {
	return len(r.injectQueue) > 0 || len(r.textQueue) > 0
}

// nextInjected pops one queued pointer event and turns it into a mouse
// sample. Returns false when the queue is empty.
func (r *Router) nextInjected() (mouseSample, bool) {
	if len(r.injectQueue) == 0 {
		return mouseSample{}, false
	}
	evt := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	s := mouseSample{pos: evt.pos}
	for b := range mouseButtonCount {
		held := r.injectHeld[b]
		if b == int(evt.button) {
			s.pressed[b] = evt.pressed && !held
			s.released[b] = !evt.pressed && held
			held = evt.pressed
			r.injectHeld[b] = held
		}
		s.down[b] = held
	}
	return s, true
}
