package uicam

import "math"

// Vec2 is a 2D vector used for screen positions, world positions, and deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Normalize maps (x, y) into the rectangle's unit space: (0,0) is the
// top-left corner and (1,1) the bottom-right. A degenerate rectangle maps
// every point to (-1,-1), which is outside.
func (r Rect) Normalize(x, y float64) (nx, ny float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return -1, -1
	}
	return (x - r.X) / r.Width, (y - r.Y) / r.Height
}

// LayerMask is a bitmask of the 32 node layers.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = math.MaxUint32

// LayerBit returns the mask containing only the given layer.
func LayerBit(layer uint8) LayerMask {
	if layer > 31 {
		return 0
	}
	return 1 << layer
}

// Has reports whether the mask includes layer.
func (m LayerMask) Has(layer uint8) bool {
	return m&LayerBit(layer) != 0
}

// EventType identifies a kind of routed event.
type EventType uint8

const (
	EventHover       EventType = iota // hover state changed (State = is over)
	EventPress                        // pointer pressed or released (State = is down)
	EventSelect                       // selection gained or lost (State = selected)
	EventClick                        // press then release over the same node
	EventDoubleClick                  // second click within the double-click window
	EventDrag                         // pressed node moved (Delta = per-frame delta)
	EventDrop                         // released over a different node (Source = dragged node)
	EventInput                        // text typed while selected
	EventTooltip                      // tooltip shown or hidden (State = show)
	EventScroll                       // scroll axis moved while hovered
	EventKey                          // keyboard or controller navigation key

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"hover", "press", "select", "click", "doubleClick", "drag",
	"drop", "textInput", "tooltip", "scroll", "key",
}

// String returns the event name.
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	mouseButtonCount = 3
)

// Key is a navigation key forwarded to the selected node.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyEscape
)

var keyNames = [...]string{"None", "Up", "Down", "Left", "Right", "Tab", "Escape"}

// String returns the key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Pointer IDs for the non-touch pointers. Touch pointers use the platform
// touch identifier, which is never negative.
const (
	PointerMouseLeft   = -1
	PointerMouseRight  = -2
	PointerMouseMiddle = -3
	PointerController  = -100
)

// FrameTime is the clock for a single tick.
type FrameTime struct {
	// Now is unscaled seconds since the router's clock started. Double-click,
	// tooltip, and axis cooldown deadlines compare against it.
	Now float64
	// Delta is the unscaled duration of this frame in seconds.
	Delta float64
	// TimeScale is the simulation speed multiplier (1 = normal).
	TimeScale float64
}
