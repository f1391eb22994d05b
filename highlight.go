package uicam

// highlightEntry records how many pointers (and the selection) currently
// consider a node hovered.
type highlightEntry struct {
	node  *Node
	count int
}

// highlightTable reference-counts hover state. hover(true) fires on the
// 0->1 transition and hover(false) on 1->0. Entries whose node was disposed
// are pruned lazily on the next scan.
type highlightTable struct {
	entries []highlightEntry
}

// find scans the table from the end, pruning stale entries, and returns the
// index of node or -1.
func (h *highlightTable) find(node *Node) int {
	for i := len(h.entries) - 1; i >= 0; i-- {
		e := h.entries[i]
		if !e.node.alive() {
			h.removeAt(i)
			continue
		}
		if e.node == node {
			return i
		}
	}
	return -1
}

func (h *highlightTable) removeAt(i int) {
	copy(h.entries[i:], h.entries[i+1:])
	h.entries[len(h.entries)-1] = highlightEntry{}
	h.entries = h.entries[:len(h.entries)-1]
}

// count returns the reference count for node.
func (h *highlightTable) count(node *Node) int {
	if i := h.find(node); i >= 0 {
		return h.entries[i].count
	}
	return 0
}

// highlight adds or removes one reference on node and fires hover on the
// 0->1 and 1->0 transitions.
func (r *Router) highlight(node *Node, on bool) {
	if !node.alive() {
		return
	}
	h := &r.highlights
	i := h.find(node)
	if i >= 0 {
		if on {
			h.entries[i].count++
			return
		}
		h.entries[i].count--
		if h.entries[i].count < 1 {
			h.removeAt(i)
			r.send(node, Event{Type: EventHover, State: false})
		}
		return
	}
	if on {
		h.entries = append(h.entries, highlightEntry{node: node, count: 1})
		r.send(node, Event{Type: EventHover, State: true})
	}
}

// IsHighlighted reports whether node is currently hovered by any pointer
// or highlighted as the selection.
func (r *Router) IsHighlighted(node *Node) bool {
	return node != nil && r.highlights.find(node) >= 0
}

// HighlightCount returns how many references hold node highlighted.
func (r *Router) HighlightCount(node *Node) int {
	return r.highlights.count(node)
}

// HoveredNode returns the node the primary mouse pointer hovers, or nil.
func (r *Router) HoveredNode() *Node {
	return r.hovered
}
