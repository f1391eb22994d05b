package uicam

// tooltipTimer is the mouse-only delayed-show, immediate-hide tooltip state.
type tooltipTimer struct {
	armed    bool
	deadline float64
	shown    *Node
}

// arm schedules a tooltip for the hovered node.
func (t *tooltipTimer) arm(now, delay float64) {
	t.armed = true
	t.deadline = now + delay
}

func (t *tooltipTimer) disarm() {
	t.armed = false
	t.deadline = 0
}

// pending reports whether a tooltip is scheduled.
func (t *tooltipTimer) pending() bool {
	return t.armed
}

// showTooltip sends tooltip(show) to the current tooltip node and disarms
// the timer. Hiding forgets the node.
func (r *Router) showTooltip(show bool) {
	r.tooltip.disarm()
	if r.tooltip.shown != nil {
		r.send(r.tooltip.shown, Event{Type: EventTooltip, State: show})
	}
	if !show {
		r.tooltip.shown = nil
	}
}

// cancelTooltip disarms a pending tooltip and hides a shown one.
// It is a no-op when neither exists.
func (r *Router) cancelTooltip() {
	if r.tooltip.shown != nil {
		r.showTooltip(false)
		return
	}
	r.tooltip.disarm()
}

// tooltipMoved handles mouse motion with no button held. A pending tooltip
// restarts its delay; a shown one is hidden.
func (r *Router) tooltipMoved() {
	if r.tooltip.pending() {
		r.tooltip.arm(r.now, r.cfg.TooltipDelay)
	} else if r.tooltip.shown != nil {
		r.showTooltip(false)
	}
}

// updateTooltip shows the tooltip once its deadline has passed.
func (r *Router) updateTooltip() {
	if r.hovered == nil || !r.tooltip.pending() || r.tooltip.deadline > r.now {
		return
	}
	r.tooltip.shown = r.hovered
	r.showTooltip(true)
}

// TooltipNode returns the node whose tooltip is shown, or nil.
func (r *Router) TooltipNode() *Node {
	return r.tooltip.shown
}
