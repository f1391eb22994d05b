package uicam

import "math"

// mouseSample is the mouse state for one frame, real or injected.
type mouseSample struct {
	pos      Vec2
	down     [mouseButtonCount]bool
	pressed  [mouseButtonCount]bool
	released [mouseButtonCount]bool
}

func (r *Router) sampleMouse() mouseSample {
	var s mouseSample
	s.pos = r.source.CursorPosition()
	for b := range mouseButtonCount {
		btn := MouseButton(b)
		s.down[b] = r.source.MouseButtonPressed(btn)
		s.pressed[b] = r.source.MouseButtonJustPressed(btn)
		s.released[b] = r.source.MouseButtonJustReleased(btn)
	}
	return s
}

// mouseEnabled reports whether the mouse pointers are processed.
func (r *Router) mouseEnabled() bool {
	return r.cfg.UseMouse || (r.cfg.UseTouch && r.cfg.EmulateTouchWithMouse)
}

// process runs one frame: mouse, touches, selection input, scroll, and the
// tooltip deadline, in that order.
func (r *Router) process(fixedTick bool) {
	if s, ok := r.nextInjected(); ok {
		r.stats.injected = true
		r.processMouse(s, fixedTick)
	} else if r.mouseEnabled() {
		r.processMouse(r.sampleMouse(), fixedTick)
	}

	if r.cfg.UseTouch {
		r.processTouches()
	}

	if r.mouseEnabled() && r.Selected() != nil &&
		(r.bindingJustPressed(r.cfg.Cancel[0]) || r.bindingJustPressed(r.cfg.Cancel[1])) {
		r.Select(nil)
	}

	if r.Selected() != nil {
		r.processText()
		r.processOthers()
	}

	if r.mouseEnabled() && r.hovered.alive() && r.cfg.ScrollAxis != "" {
		if v := r.source.Axis(r.cfg.ScrollAxis); v != 0 {
			r.currentPointerID = PointerMouseLeft
			r.eventPos = r.pointers.mouse[0].pos
			r.send(r.hovered, Event{Type: EventScroll, Scroll: v})
		}
	}

	r.updateTooltip()
}

func (r *Router) bindingJustPressed(b Binding) bool {
	return b.Kind != BindNone && r.source.BindingJustPressed(b)
}

func (r *Router) bindingJustReleased(b Binding) bool {
	return b.Kind != BindNone && r.source.BindingJustReleased(b)
}

// --- Mouse ---

// processMouse updates the three mouse pointers. Position, delta, and the
// node under the cursor are shared by all buttons.
func (r *Router) processMouse(s mouseSample, fixedTick bool) {
	left := r.pointers.mouse[0]
	if r.mouseSeen {
		left.delta = s.pos.Sub(left.pos)
	} else {
		left.delta = Vec2{}
		r.mouseSeen = true
	}
	left.pos = s.pos
	posChanged := !left.delta.IsZero()

	var anyHeld, anyReleased, stillHeld bool
	for b := range mouseButtonCount {
		if s.down[b] || s.pressed[b] {
			anyHeld = true
		}
		if s.released[b] {
			anyReleased = true
		}
		if s.down[b] && !s.released[b] {
			stillHeld = true
		}
	}

	viewMoved := false
	for _, vp := range r.viewports.list {
		if vp.takeMoved() {
			viewMoved = true
		}
	}

	refresh := posChanged || anyHeld || anyReleased || viewMoved || fixedTick ||
		r.forceRaycast || r.timeScale < 0.9 ||
		(left.current != nil && !left.current.alive())
	r.forceRaycast = false
	if refresh {
		cur := r.HitTest(s.pos)
		for _, p := range r.pointers.mouse {
			p.current = cur
		}
	}
	for _, p := range r.pointers.mouse[1:] {
		p.pos = left.pos
		p.delta = left.delta
	}

	if posChanged {
		if anyHeld {
			r.cancelTooltip()
		} else if !r.cfg.StickyTooltip || r.hovered != left.current {
			r.tooltipMoved()
		}
	}

	hitViewport := r.currentViewport
	for b, p := range r.pointers.mouse {
		r.stats.pointers++
		r.currentPointerID = p.id
		r.eventPos = p.pos
		r.currentViewport = heldViewport(p, s.pressed[b], hitViewport)
		r.processPointer(p, s.pressed[b], s.released[b])
	}
	r.currentViewport = hitViewport

	if !stillHeld && r.hovered != left.current {
		r.currentPointerID = PointerMouseLeft
		r.eventPos = left.pos
		r.cancelTooltip()
		if r.hovered != nil {
			r.highlight(r.hovered, false)
		}
		r.hovered = left.current
		if !r.hovered.alive() {
			r.hovered = nil
		}
		if r.hovered != nil {
			r.highlight(r.hovered, true)
			r.tooltip.arm(r.now, r.cfg.TooltipDelay)
		}
	}
}

// --- Touch ---

// processTouches updates every touch pointer in creation order. Touches always
// hit test, and each one highlights the node it pressed until it lifts.
func (r *Router) processTouches() {
	r.touchBuf = r.source.AppendTouches(r.touchBuf[:0])
	r.stats.touchSeen = len(r.touchBuf)
	for _, t := range r.touchBuf {
		if (t.Phase == TouchEnded || t.Phase == TouchCanceled) && !r.pointers.hasTouch(t.ID) {
			logger.Debugf("touch %d released without a press", t.ID)
		}
		r.pointers.touch(t.ID)
	}

	r.orderBuf = append(r.orderBuf[:0], r.pointers.touchOrder...)
	for _, id := range r.orderBuf {
		p := r.pointers.touch(id)
		t, ok := findTouch(r.touchBuf, id)
		if !ok {
			// The platform dropped the touch without an end phase.
			t = Touch{ID: id, Position: p.pos, Phase: TouchCanceled}
		}
		pressed := t.Phase == TouchBegan
		released := t.Phase == TouchEnded || t.Phase == TouchCanceled

		if pressed {
			p.delta = Vec2{}
		} else {
			p.delta = t.Position.Sub(p.pos)
		}
		p.pos = t.Position
		p.current = r.HitTest(p.pos)
		if !ok {
			// A vanished touch ends without a click, selection, or drop.
			p.current = nil
		}
		hitViewport := r.currentViewport

		r.stats.pointers++
		r.currentPointerID = id
		r.eventPos = p.pos
		r.currentViewport = heldViewport(p, pressed, hitViewport)
		r.processPointer(p, pressed, released)
		r.currentViewport = hitViewport

		if pressed {
			r.setTouchHighlight(p, p.pressed)
		}
		if released {
			r.setTouchHighlight(p, nil)
			r.pointers.removeTouch(id)
		}
	}
}

// heldViewport returns the viewport p's events route through this frame. A
// held pointer keeps the viewport it was pressed in.
func heldViewport(p *pointerState, pressed bool, hit *Viewport) *Viewport {
	if !pressed && p.pressed != nil {
		return p.pressedViewport
	}
	return hit
}

func findTouch(buf []Touch, id int) (Touch, bool) {
	for _, t := range buf {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

// setTouchHighlight moves the touch's highlight reference to node.
func (r *Router) setTouchHighlight(p *pointerState, node *Node) {
	if p.highlighted == node {
		return
	}
	if p.highlighted != nil {
		r.highlight(p.highlighted, false)
	}
	p.highlighted = nil
	if node.alive() {
		p.highlighted = node
		r.highlight(node, true)
	}
}

// --- Press / drag / release ---

// clickThreshold returns how far p may travel before its click is revoked.
func (r *Router) clickThreshold(p *pointerState) float64 {
	if !p.touch {
		return r.cfg.MouseClickThreshold
	}
	t := r.cfg.TouchClickThreshold
	if p.pressedViewport != nil {
		t = math.Max(t, p.pressedViewport.Rect.Height*0.1)
	}
	return t
}

// processPointer runs the press, drag, and release state machine for one
// pointer. The caller sets p.current, p.delta, and the routing fields first.
func (r *Router) processPointer(p *pointerState, pressed, released bool) {
	if pressed {
		r.cancelTooltip()
		p.pressed = p.current
		if !p.pressed.alive() {
			p.pressed = nil
		}
		p.pressedViewport = r.currentViewport
		p.totalDelta = Vec2{}
		p.click = clickAlways
		if p.isMouse() || (p.touch && r.cfg.TouchDragCancelsClick) {
			p.click = clickBasedOnDelta
		}
		if p.pressed != nil {
			r.send(p.pressed, Event{Type: EventPress, State: true})
		}
		if r.Selected() != p.pressed {
			r.Select(nil)
		}
	} else if p.pressed != nil && !p.delta.IsZero() {
		r.cancelTooltip()
		p.totalDelta = p.totalDelta.Add(p.delta)
		r.send(p.pressed, Event{Type: EventDrag, Delta: p.delta})
		if p.click == clickBasedOnDelta && p.totalDelta.Len() > r.clickThreshold(p) {
			p.click = clickNone
		}
	}

	if !released {
		return
	}
	r.cancelTooltip()
	if p.pressed != nil {
		src := p.pressed
		r.send(src, Event{Type: EventPress, State: false})
		if p.isMouse() && src == r.hovered {
			r.send(src, Event{Type: EventHover, State: true})
		}

		if src == p.current {
			r.Select(src)
			if p.click != clickNone {
				r.send(src, Event{Type: EventClick})
				if r.now-p.clickTime < r.cfg.DoubleClickWindow {
					r.send(src, Event{Type: EventDoubleClick})
				}
			}
			p.clickTime = r.now
		} else if p.current != nil {
			r.send(p.current, Event{Type: EventDrop, Source: src})
		}
	}
	p.pressed = nil
	p.pressedViewport = nil
}
