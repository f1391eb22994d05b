package uicam

// Select makes node the global selection. Selecting the current selection
// is a no-op. Otherwise the old selection receives select(false) before the
// new one receives select(true); the two are never selected at once. Passing
// nil clears the selection.
func (r *Router) Select(node *Node) {
	if node != nil && !node.alive() {
		node = nil
	}
	old := r.selected
	if old == node {
		return
	}

	if old != nil {
		r.sendVia(old, r.ViewportForLayer(old.Layer), Event{Type: EventSelect, State: false})
	}
	r.selected = node
	if node != nil {
		r.sendVia(node, r.ViewportForLayer(node.Layer), Event{Type: EventSelect, State: true})
	}

	if old != nil && r.selectionLit {
		r.highlight(old, false)
	}
	r.selectionLit = false
	if node != nil && (r.cfg.UseKeyboard || r.cfg.UseController) {
		r.highlight(node, true)
		r.selectionLit = true
	}
}

// Selected returns the selected node, or nil. A disposed selection reads
// as nil.
func (r *Router) Selected() *Node {
	if r.selected != nil && !r.selected.alive() {
		r.selected = nil
		r.selectionLit = false
	}
	return r.selected
}

// forwardKey sends key(k) to the selection. No-op without a selection.
func (r *Router) forwardKey(k Key) {
	sel := r.Selected()
	if sel == nil {
		return
	}
	r.send(sel, Event{Type: EventKey, Key: k})
}

// forwardText sends textInput(text) to the selection. No-op without a
// selection or with empty text. Forwarded text cancels the tooltip.
func (r *Router) forwardText(text string) {
	sel := r.Selected()
	if sel == nil || text == "" {
		return
	}
	r.cancelTooltip()
	r.send(sel, Event{Type: EventInput, Text: text})
}
