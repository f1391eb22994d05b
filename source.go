package uicam

import "github.com/hajimehoshi/ebiten/v2"

// TouchPhase is the lifecycle stage of a touch in the current frame.
type TouchPhase uint8

const (
	TouchBegan    TouchPhase = iota // first frame of contact
	TouchMoved                      // still in contact
	TouchEnded                      // lifted this frame
	TouchCanceled                   // interrupted by the platform this frame
)

// Touch is one touch contact sampled for the current frame.
type Touch struct {
	ID       int
	Position Vec2
	Phase    TouchPhase
}

// InputSource samples raw device state once per frame. All edge queries
// (JustPressed, JustReleased) refer to the frame being ticked.
//
// EbitenSource is the production implementation; tests supply scripted ones.
type InputSource interface {
	CursorPosition() Vec2
	MouseButtonPressed(b MouseButton) bool
	MouseButtonJustPressed(b MouseButton) bool
	MouseButtonJustReleased(b MouseButton) bool

	// AppendTouches appends the touches active or ended this frame to buf.
	AppendTouches(buf []Touch) []Touch

	KeyJustPressed(k ebiten.Key) bool
	BindingJustPressed(b Binding) bool
	BindingJustReleased(b Binding) bool

	// Axis returns the value of a named axis. Unknown names read as 0.
	Axis(name string) float64

	// AppendInputChars appends the characters typed this frame to buf.
	AppendInputChars(buf []rune) []rune
}

// SetInputSource replaces the input source. Passing nil restores the
// Ebitengine source.
func (r *Router) SetInputSource(src InputSource) {
	if src == nil {
		src = NewEbitenSource()
	}
	r.source = src
}
