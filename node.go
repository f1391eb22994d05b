package uicam

// HitShape is used for custom hit testing regions by ShapeCaster.
type HitShape interface {
	Contains(x, y float64) bool
}

// Event carries the data for a single routed notification.
type Event struct {
	Type     EventType
	Node     *Node
	EntityID uint32
	UserData any

	// PointerID is the pointer that caused the event: PointerMouseLeft,
	// PointerMouseRight, PointerMouseMiddle, PointerController, or a touch ID.
	PointerID int
	// Viewport is the viewport the event was routed through. May be nil for
	// selection changes made outside a frame.
	Viewport *Viewport
	Position Vec2
	Delta    Vec2

	// State is the boolean payload of hover, press, select, and tooltip.
	State bool
	// Source is the dragged node for EventDrop.
	Source *Node
	// Text is the typed text for EventInput.
	Text string
	// Key is the navigation key for EventKey.
	Key Key
	// Scroll is the scroll axis value for EventScroll.
	Scroll float64
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: uicam is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an event target. Nodes are produced by the hit-test provider and
// receive routed events through their callbacks. A nil callback means the
// node does not handle that event; dispatch skips it.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Layer selects which viewports see this node (0-31).
	Layer uint8
	// Depth is the distance from the viewport used by ShapeCaster; lower is
	// closer to the viewer.
	Depth float64
	// HitShape is the node's hit area in world coordinates, used by ShapeCaster.
	HitShape HitShape

	// Visibility & interaction
	Visible      bool
	Interactable bool
	// AcceptsText marks text-entry nodes. While such a node is selected,
	// WASD keys are left to text input and only arrows navigate.
	AcceptsText bool

	// Metadata
	UserData any
	EntityID uint32

	// Callbacks
	OnHover       func(Event)
	OnPress       func(Event)
	OnSelect      func(Event)
	OnClick       func(Event)
	OnDoubleClick func(Event)
	OnDrag        func(Event)
	OnDrop        func(Event)
	OnInput       func(Event)
	OnTooltip     func(Event)
	OnScroll      func(Event)
	OnKey         func(Event)

	disposed bool
}

// NewNode creates a visible, interactable node on layer 0.
func NewNode(name string) *Node {
	return &Node{
		ID:           nextNodeID(),
		Name:         name,
		Visible:      true,
		Interactable: true,
	}
}

// NewShapeNode creates an interactable node with the given hit shape.
func NewShapeNode(name string, shape HitShape) *Node {
	n := NewNode(name)
	n.HitShape = shape
	return n
}

// Dispose marks the node as destroyed. Disposed nodes receive no further
// events and are pruned from the highlight table on its next scan.
func (n *Node) Dispose() {
	if n == nil || n.disposed {
		return
	}
	n.disposed = true
	n.OnHover = nil
	n.OnPress = nil
	n.OnSelect = nil
	n.OnClick = nil
	n.OnDoubleClick = nil
	n.OnDrag = nil
	n.OnDrop = nil
	n.OnInput = nil
	n.OnTooltip = nil
	n.OnScroll = nil
	n.OnKey = nil
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// alive reports whether n is a live node. A nil node is not alive.
func (n *Node) alive() bool {
	return n != nil && !n.disposed
}

// callback returns the node's handler for t, or nil.
func (n *Node) callback(t EventType) func(Event) {
	switch t {
	case EventHover:
		return n.OnHover
	case EventPress:
		return n.OnPress
	case EventSelect:
		return n.OnSelect
	case EventClick:
		return n.OnClick
	case EventDoubleClick:
		return n.OnDoubleClick
	case EventDrag:
		return n.OnDrag
	case EventDrop:
		return n.OnDrop
	case EventInput:
		return n.OnInput
	case EventTooltip:
		return n.OnTooltip
	case EventScroll:
		return n.OnScroll
	case EventKey:
		return n.OnKey
	}
	return nil
}

// String returns the node name, for logging.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}
