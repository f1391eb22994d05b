package uicam

// --- Router-level handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

// handlerRegistry stores router-level callbacks by event type.
type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered router-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	list := h.reg.byType[h.event]
	for i, e := range list {
		if e.id == h.id {
			h.reg.byType[h.event] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (r *Router) addHandler(t EventType, fn func(Event)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.byType[t] = append(r.handlers.byType[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: t}
}

// OnHover registers a router-level callback for hover changes.
func (r *Router) OnHover(fn func(Event)) CallbackHandle { return r.addHandler(EventHover, fn) }

// OnPress registers a router-level callback for press and release.
func (r *Router) OnPress(fn func(Event)) CallbackHandle { return r.addHandler(EventPress, fn) }

// OnSelect registers a router-level callback for selection changes.
func (r *Router) OnSelect(fn func(Event)) CallbackHandle { return r.addHandler(EventSelect, fn) }

// OnClick registers a router-level callback for clicks.
func (r *Router) OnClick(fn func(Event)) CallbackHandle { return r.addHandler(EventClick, fn) }

// OnDoubleClick registers a router-level callback for double clicks.
func (r *Router) OnDoubleClick(fn func(Event)) CallbackHandle {
	return r.addHandler(EventDoubleClick, fn)
}

// OnDrag registers a router-level callback for drags.
func (r *Router) OnDrag(fn func(Event)) CallbackHandle { return r.addHandler(EventDrag, fn) }

// OnDrop registers a router-level callback for drops.
func (r *Router) OnDrop(fn func(Event)) CallbackHandle { return r.addHandler(EventDrop, fn) }

// OnInput registers a router-level callback for text input.
func (r *Router) OnInput(fn func(Event)) CallbackHandle { return r.addHandler(EventInput, fn) }

// OnTooltip registers a router-level callback for tooltip show and hide.
func (r *Router) OnTooltip(fn func(Event)) CallbackHandle { return r.addHandler(EventTooltip, fn) }

// OnScroll registers a router-level callback for scrolling.
func (r *Router) OnScroll(fn func(Event)) CallbackHandle { return r.addHandler(EventScroll, fn) }

// OnKey registers a router-level callback for navigation keys.
func (r *Router) OnKey(fn func(Event)) CallbackHandle { return r.addHandler(EventKey, fn) }

// --- Dispatch ---

// send delivers ev to node through the current viewport.
func (r *Router) send(node *Node, ev Event) {
	r.sendVia(node, r.currentViewport, ev)
}

// sendVia fills in the routing fields of ev and delivers it: router-level
// handlers first, then the node's own callback, then the entity store.
// Nil and disposed nodes are skipped.
func (r *Router) sendVia(node *Node, vp *Viewport, ev Event) {
	if !node.alive() {
		return
	}
	ev.Node = node
	ev.EntityID = node.EntityID
	ev.UserData = node.UserData
	ev.PointerID = r.currentPointerID
	ev.Viewport = vp
	ev.Position = r.eventPos
	r.stats.events++

	for _, h := range r.handlers.byType[ev.Type] {
		h.fn(ev)
	}
	// A router-level handler may have disposed the node.
	if node.alive() {
		if fn := node.callback(ev.Type); fn != nil {
			fn(ev)
		}
	}
	if r.store != nil && ev.EntityID != 0 {
		r.store.EmitEvent(ev)
	}
}
