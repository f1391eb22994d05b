package uicam

import "math"

// clickMode decides whether a release over the pressed node emits a click.
type clickMode uint8

const (
	clickNone         clickMode = iota // click revoked
	clickAlways                        // click fires regardless of movement
	clickBasedOnDelta                  // click revoked once movement exceeds the threshold
)

// --- Per-pointer state ---

type pointerState struct {
	id    int
	touch bool

	pos        Vec2
	delta      Vec2 // since last frame
	totalDelta Vec2 // since press

	current         *Node     // node under the pointer
	pressed         *Node     // node that received press(true)
	pressedViewport *Viewport // viewport current at press time

	clickTime float64
	click     clickMode

	// highlighted is the node a touch holds a highlight reference on.
	highlighted *Node
}

func newPointerState(id int, touch bool) *pointerState {
	return &pointerState{
		id:        id,
		touch:     touch,
		clickTime: math.Inf(-1),
		click:     clickAlways,
	}
}

// isMouse reports whether the pointer is one of the three mouse buttons.
func (p *pointerState) isMouse() bool {
	return p.id <= PointerMouseLeft && p.id >= PointerMouseMiddle
}

// pointerTable owns every pointer record. Mouse and controller pointers live
// for the lifetime of the table; touch pointers are created on first
// contact and removed on release.
type pointerTable struct {
	mouse      [mouseButtonCount]*pointerState
	controller *pointerState
	touches    map[int]*pointerState
	touchOrder []int // creation order
}

func newPointerTable() pointerTable {
	var t pointerTable
	for i := range t.mouse {
		t.mouse[i] = newPointerState(PointerMouseLeft-i, false)
	}
	t.controller = newPointerState(PointerController, false)
	t.touches = make(map[int]*pointerState)
	return t
}

// touch returns the pointer for a touch id, creating it if needed.
func (t *pointerTable) touch(id int) *pointerState {
	if p, ok := t.touches[id]; ok {
		return p
	}
	p := newPointerState(id, true)
	t.touches[id] = p
	t.touchOrder = append(t.touchOrder, id)
	return p
}

// hasTouch reports whether a touch id is tracked.
func (t *pointerTable) hasTouch(id int) bool {
	_, ok := t.touches[id]
	return ok
}

// removeTouch forgets a touch id.
func (t *pointerTable) removeTouch(id int) {
	if _, ok := t.touches[id]; !ok {
		return
	}
	delete(t.touches, id)
	for i, tid := range t.touchOrder {
		if tid == id {
			copy(t.touchOrder[i:], t.touchOrder[i+1:])
			t.touchOrder = t.touchOrder[:len(t.touchOrder)-1]
			break
		}
	}
}

// touchCount returns the number of tracked touches.
func (t *pointerTable) touchCount() int {
	return len(t.touches)
}

// byID returns the pointer with the given id, or nil.
func (t *pointerTable) byID(id int) *pointerState {
	switch {
	case id == PointerController:
		return t.controller
	case id <= PointerMouseLeft && id >= PointerMouseMiddle:
		return t.mouse[PointerMouseLeft-id]
	}
	return t.touches[id]
}

// --- Introspection ---

// PointerInfo is a read-only snapshot of a pointer record.
type PointerInfo struct {
	ID         int
	Position   Vec2
	Delta      Vec2
	TotalDelta Vec2
	Current    *Node
	Pressed    *Node
	// ClickEligible reports whether releasing over Pressed would emit a click.
	ClickEligible bool
}

// Pointer returns a snapshot of the pointer with the given id.
func (r *Router) Pointer(id int) (PointerInfo, bool) {
	p := r.pointers.byID(id)
	if p == nil {
		return PointerInfo{}, false
	}
	return PointerInfo{
		ID:            p.id,
		Position:      p.pos,
		Delta:         p.delta,
		TotalDelta:    p.totalDelta,
		Current:       p.current,
		Pressed:       p.pressed,
		ClickEligible: p.click != clickNone,
	}, true
}

// TouchCount returns the number of touches currently tracked.
func (r *Router) TouchCount() int {
	return r.pointers.touchCount()
}

// CurrentPointerID returns the id of the pointer being processed, valid
// inside event callbacks.
func (r *Router) CurrentPointerID() int {
	return r.currentPointerID
}
