package uicam

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// clockEpoch anchors the router clock for the axis rate limiter.
var clockEpoch = time.Unix(0, 0)

// clockTime converts the tick time into a time.Time for the rate limiter.
func (r *Router) clockTime() time.Time {
	return clockEpoch.Add(time.Duration(r.now * float64(time.Second)))
}

// processText forwards typed characters, and Delete as "\b", to the
// selection.
func (r *Router) processText() {
	var text string
	if r.cfg.UseKeyboard {
		r.charBuf = r.source.AppendInputChars(r.charBuf[:0])
		text = string(r.charBuf)
		if r.source.KeyJustPressed(ebiten.KeyDelete) {
			text += "\b"
		}
	}
	if len(r.textQueue) > 0 {
		text += r.textQueue[0]
		r.textQueue = r.textQueue[1:]
	}
	r.currentPointerID = PointerController
	r.forwardText(text)
}

// processOthers handles the keyboard and controller for the selection:
// submit drives the controller pointer's press state machine, directional
// keys and axes navigate, Tab and cancel are forwarded as keys.
func (r *Router) processOthers() {
	ctrl := r.pointers.controller
	ctrl.delta = Vec2{}

	submitDown := r.bindingJustPressed(r.cfg.Submit[0]) || r.bindingJustPressed(r.cfg.Submit[1])
	submitUp := r.bindingJustReleased(r.cfg.Submit[0]) || r.bindingJustReleased(r.cfg.Submit[1])
	if submitDown || submitUp {
		r.stats.pointers++
		ctrl.current = r.Selected()
		r.currentPointerID = ctrl.id
		r.eventPos = ctrl.pos
		r.processPointer(ctrl, submitDown, submitUp)
		ctrl.current = nil
	}

	sel := r.Selected()
	if sel == nil {
		return
	}

	vertical, horizontal := 0, 0
	if r.cfg.UseKeyboard {
		if sel.AcceptsText {
			vertical += r.keyDirection(ebiten.KeyArrowUp, ebiten.KeyArrowDown)
			horizontal += r.keyDirection(ebiten.KeyArrowRight, ebiten.KeyArrowLeft)
		} else {
			vertical += r.keyDirection(ebiten.KeyW, ebiten.KeyS)
			vertical += r.keyDirection(ebiten.KeyArrowUp, ebiten.KeyArrowDown)
			horizontal += r.keyDirection(ebiten.KeyD, ebiten.KeyA)
			horizontal += r.keyDirection(ebiten.KeyArrowRight, ebiten.KeyArrowLeft)
		}
	}
	if r.cfg.UseController {
		if r.cfg.VerticalAxis != "" {
			vertical += r.axisDirection(r.cfg.VerticalAxis)
		}
		if r.cfg.HorizontalAxis != "" {
			horizontal += r.axisDirection(r.cfg.HorizontalAxis)
		}
	}

	r.currentPointerID = PointerController
	r.eventPos = ctrl.pos
	if vertical != 0 {
		k := KeyDown
		if vertical > 0 {
			k = KeyUp
		}
		r.forwardKey(k)
	}
	if horizontal != 0 {
		k := KeyLeft
		if horizontal > 0 {
			k = KeyRight
		}
		r.forwardKey(k)
	}
	if r.cfg.UseKeyboard && r.source.KeyJustPressed(ebiten.KeyTab) {
		r.forwardKey(KeyTab)
	}
	if r.bindingJustPressed(r.cfg.Cancel[0]) || r.bindingJustPressed(r.cfg.Cancel[1]) {
		r.forwardKey(KeyEscape)
	}
}

// keyDirection returns +1 for a fresh press of pos, -1 for neg, else 0.
func (r *Router) keyDirection(pos, neg ebiten.Key) int {
	if r.source.KeyJustPressed(pos) {
		return 1
	}
	if r.source.KeyJustPressed(neg) {
		return -1
	}
	return 0
}

// axisDirection converts an analog axis into a navigation step. Once a step
// fires, no axis may step again until the cooldown passes.
func (r *Router) axisDirection(name string) int {
	v := r.source.Axis(name)
	dir := 0
	switch {
	case v > r.cfg.AxisThreshold:
		dir = 1
	case v < -r.cfg.AxisThreshold:
		dir = -1
	}
	if dir == 0 || !r.axisLimiter.AllowN(r.clockTime(), 1) {
		return 0
	}
	return dir
}
