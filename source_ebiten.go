package uicam

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Axis names understood by EbitenSource.
const (
	AxisMouseWheel           = "MouseWheel"
	AxisMouseWheelX          = "MouseWheelX"
	AxisLeftStickHorizontal  = "LeftStickHorizontal"
	AxisLeftStickVertical    = "LeftStickVertical"
	AxisRightStickHorizontal = "RightStickHorizontal"
	AxisRightStickVertical   = "RightStickVertical"
)

// stickAxes maps axis names to standard gamepad axes. Vertical axes are
// flipped so that pushing up reads positive.
var stickAxes = map[string]struct {
	axis ebiten.StandardGamepadAxis
	sign float64
}{
	AxisLeftStickHorizontal:  {ebiten.StandardGamepadAxisLeftStickHorizontal, 1},
	AxisLeftStickVertical:    {ebiten.StandardGamepadAxisLeftStickVertical, -1},
	AxisRightStickHorizontal: {ebiten.StandardGamepadAxisRightStickHorizontal, 1},
	AxisRightStickVertical:   {ebiten.StandardGamepadAxisRightStickVertical, -1},
}

// EbitenSource reads input from Ebitengine. It must be used from the game's
// Update goroutine, like every other ebiten input call.
type EbitenSource struct {
	touchIDs     []ebiten.TouchID
	justPressed  []ebiten.TouchID
	justReleased []ebiten.TouchID
	gamepads     []ebiten.GamepadID
}

// NewEbitenSource creates an input source backed by ebiten and inpututil.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func ebitenButton(b MouseButton) ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// CursorPosition implements InputSource.
func (s *EbitenSource) CursorPosition() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}
}

// MouseButtonPressed implements InputSource.
func (s *EbitenSource) MouseButtonPressed(b MouseButton) bool {
	return ebiten.IsMouseButtonPressed(ebitenButton(b))
}

// MouseButtonJustPressed implements InputSource.
func (s *EbitenSource) MouseButtonJustPressed(b MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(ebitenButton(b))
}

// MouseButtonJustReleased implements InputSource.
func (s *EbitenSource) MouseButtonJustReleased(b MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(ebitenButton(b))
}

// AppendTouches implements InputSource. Touches that ended this frame are
// reported at their last known position.
func (s *EbitenSource) AppendTouches(buf []Touch) []Touch {
	s.justPressed = inpututil.AppendJustPressedTouchIDs(s.justPressed[:0])
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		phase := TouchMoved
		for _, jp := range s.justPressed {
			if jp == id {
				phase = TouchBegan
				break
			}
		}
		buf = append(buf, Touch{ID: int(id), Position: Vec2{float64(x), float64(y)}, Phase: phase})
	}

	s.justReleased = inpututil.AppendJustReleasedTouchIDs(s.justReleased[:0])
	for _, id := range s.justReleased {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		buf = append(buf, Touch{ID: int(id), Position: Vec2{float64(x), float64(y)}, Phase: TouchEnded})
	}
	return buf
}

// KeyJustPressed implements InputSource.
func (s *EbitenSource) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// BindingJustPressed implements InputSource. Gamepad bindings match any
// connected gamepad with a standard layout.
func (s *EbitenSource) BindingJustPressed(b Binding) bool {
	switch b.Kind {
	case BindKey:
		return inpututil.IsKeyJustPressed(b.Key)
	case BindGamepad:
		for _, id := range s.standardGamepads() {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.Button) {
				return true
			}
		}
	}
	return false
}

// BindingJustReleased implements InputSource.
func (s *EbitenSource) BindingJustReleased(b Binding) bool {
	switch b.Kind {
	case BindKey:
		return inpututil.IsKeyJustReleased(b.Key)
	case BindGamepad:
		for _, id := range s.standardGamepads() {
			if inpututil.IsStandardGamepadButtonJustReleased(id, b.Button) {
				return true
			}
		}
	}
	return false
}

// Axis implements InputSource. Stick axes read the first standard gamepad.
func (s *EbitenSource) Axis(name string) float64 {
	switch name {
	case AxisMouseWheel:
		_, y := ebiten.Wheel()
		return y
	case AxisMouseWheelX:
		x, _ := ebiten.Wheel()
		return x
	}
	a, ok := stickAxes[name]
	if !ok {
		return 0
	}
	pads := s.standardGamepads()
	if len(pads) == 0 {
		return 0
	}
	return a.sign * ebiten.StandardGamepadAxisValue(pads[0], a.axis)
}

// AppendInputChars implements InputSource.
func (s *EbitenSource) AppendInputChars(buf []rune) []rune {
	return ebiten.AppendInputChars(buf)
}

// standardGamepads returns connected gamepads with a standard layout.
func (s *EbitenSource) standardGamepads() []ebiten.GamepadID {
	all := ebiten.AppendGamepadIDs(s.gamepads[:0])
	n := 0
	for _, id := range all {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			all[n] = id
			n++
		}
	}
	s.gamepads = all[:n]
	return s.gamepads
}
