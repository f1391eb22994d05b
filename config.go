package uicam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// BindingKind selects which device a Binding reads.
type BindingKind uint8

const (
	BindNone    BindingKind = iota // unbound
	BindKey                        // keyboard key
	BindGamepad                    // standard gamepad button
)

// Binding is a key or gamepad button bound to an action.
type Binding struct {
	Kind   BindingKind
	Key    ebiten.Key
	Button ebiten.StandardGamepadButton
}

// KeyBinding binds a keyboard key.
func KeyBinding(k ebiten.Key) Binding {
	return Binding{Kind: BindKey, Key: k}
}

// GamepadBinding binds a standard gamepad button.
func GamepadBinding(b ebiten.StandardGamepadButton) Binding {
	return Binding{Kind: BindGamepad, Button: b}
}

const gamepadPrefix = "pad:"

var gamepadButtonNames = map[string]ebiten.StandardGamepadButton{
	"RightBottom":      ebiten.StandardGamepadButtonRightBottom,
	"RightRight":       ebiten.StandardGamepadButtonRightRight,
	"RightLeft":        ebiten.StandardGamepadButtonRightLeft,
	"RightTop":         ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight":    ebiten.StandardGamepadButtonFrontTopRight,
	"FrontBottomLeft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"FrontBottomRight": ebiten.StandardGamepadButtonFrontBottomRight,
	"CenterLeft":       ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight":      ebiten.StandardGamepadButtonCenterRight,
	"LeftStick":        ebiten.StandardGamepadButtonLeftStick,
	"RightStick":       ebiten.StandardGamepadButtonRightStick,
	"LeftTop":          ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":       ebiten.StandardGamepadButtonLeftBottom,
	"LeftLeft":         ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":        ebiten.StandardGamepadButtonLeftRight,
	"CenterCenter":     ebiten.StandardGamepadButtonCenterCenter,
}

// ParseBinding parses "" (unbound), an ebiten key name such as "Enter", or
// "pad:" followed by a standard gamepad button name such as "pad:RightBottom".
func ParseBinding(s string) (Binding, error) {
	if s == "" {
		return Binding{}, nil
	}
	if name, ok := strings.CutPrefix(s, gamepadPrefix); ok {
		b, ok := gamepadButtonNames[name]
		if !ok {
			return Binding{}, fmt.Errorf("parse binding %q: unknown gamepad button", s)
		}
		return GamepadBinding(b), nil
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return Binding{}, fmt.Errorf("parse binding %q: %w", s, err)
	}
	return KeyBinding(k), nil
}

// String returns the text form accepted by ParseBinding.
func (b Binding) String() string {
	switch b.Kind {
	case BindKey:
		return b.Key.String()
	case BindGamepad:
		for name, btn := range gamepadButtonNames {
			if btn == b.Button {
				return gamepadPrefix + name
			}
		}
	}
	return ""
}

// Config holds the router options.
type Config struct {
	UseMouse      bool
	UseTouch      bool
	UseKeyboard   bool
	UseController bool
	// EmulateTouchWithMouse processes the mouse even when UseMouse is false
	// and UseTouch is true (desktop testing of touch layouts).
	EmulateTouchWithMouse bool

	// EventMask filters the layers that receive events, on top of each
	// viewport's own masks.
	EventMask LayerMask

	// TooltipDelay is how long the mouse must rest over a node before its
	// tooltip shows, in seconds.
	TooltipDelay float64
	// StickyTooltip keeps a pending tooltip on course while the mouse moves
	// within the same node.
	StickyTooltip bool

	// MouseClickThreshold is how far, in pixels, a mouse may move between
	// press and release and still click.
	MouseClickThreshold float64
	// TouchClickThreshold is the same for touches; the effective value is
	// at least 10% of the viewport height.
	TouchClickThreshold float64
	// TouchDragCancelsClick makes touches movement-sensitive like the mouse.
	TouchDragCancelsClick bool

	// RangeDistance is the ray length for viewports that do not set their own.
	// Values <= 0 use each viewport's Far - Near.
	RangeDistance float64

	ScrollAxis     string
	VerticalAxis   string
	HorizontalAxis string

	Submit [2]Binding
	Cancel [2]Binding

	// DoubleClickWindow is the longest gap, in seconds, between two clicks
	// that still counts as a double click.
	DoubleClickWindow float64
	// AxisThreshold is how far an analog axis must be pushed to navigate.
	AxisThreshold float64
	// AxisCooldown is the delay, in seconds, before an axis may navigate again.
	AxisCooldown float64
	// FixedStep is the scaled-time interval at which the mouse hit test is
	// refreshed even when nothing moved.
	FixedStep float64
}

// DefaultConfig returns the desktop defaults: all devices enabled.
func DefaultConfig() Config {
	return Config{
		UseMouse:            true,
		UseTouch:            true,
		UseKeyboard:         true,
		UseController:       true,
		EventMask:           AllLayers,
		TooltipDelay:        1,
		StickyTooltip:       true,
		MouseClickThreshold: 10,
		TouchClickThreshold: 40,
		RangeDistance:       -1,
		ScrollAxis:          AxisMouseWheel,
		VerticalAxis:        AxisLeftStickVertical,
		HorizontalAxis:      AxisLeftStickHorizontal,
		Submit: [2]Binding{
			KeyBinding(ebiten.KeyEnter),
			GamepadBinding(ebiten.StandardGamepadButtonRightBottom),
		},
		Cancel: [2]Binding{
			KeyBinding(ebiten.KeyEscape),
			GamepadBinding(ebiten.StandardGamepadButtonRightRight),
		},
		DoubleClickWindow: 0.25,
		AxisThreshold:     0.75,
		AxisCooldown:      0.25,
		FixedStep:         0.02,
	}
}

// MobileConfig returns the defaults for touch devices: touch only.
func MobileConfig() Config {
	c := DefaultConfig()
	c.UseMouse = false
	c.UseKeyboard = false
	c.UseController = false
	return c
}

// ConsoleConfig returns the defaults for gamepad-only devices.
func ConsoleConfig() Config {
	c := DefaultConfig()
	c.UseMouse = false
	c.UseTouch = false
	c.UseKeyboard = false
	return c
}

// Validate reports every invalid option at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.TooltipDelay < 0 {
		result = multierror.Append(result, fmt.Errorf("tooltipDelay must be >= 0, got %v", c.TooltipDelay))
	}
	if c.MouseClickThreshold < 0 {
		result = multierror.Append(result, fmt.Errorf("mouseClickThreshold must be >= 0, got %v", c.MouseClickThreshold))
	}
	if c.TouchClickThreshold < 0 {
		result = multierror.Append(result, fmt.Errorf("touchClickThreshold must be >= 0, got %v", c.TouchClickThreshold))
	}
	if c.DoubleClickWindow <= 0 {
		result = multierror.Append(result, fmt.Errorf("doubleClickWindow must be > 0, got %v", c.DoubleClickWindow))
	}
	if c.AxisThreshold <= 0 || c.AxisThreshold > 1 {
		result = multierror.Append(result, fmt.Errorf("axisThreshold must be in (0, 1], got %v", c.AxisThreshold))
	}
	if c.AxisCooldown < 0 {
		result = multierror.Append(result, fmt.Errorf("axisCooldown must be >= 0, got %v", c.AxisCooldown))
	}
	if c.FixedStep <= 0 {
		result = multierror.Append(result, fmt.Errorf("fixedStep must be > 0, got %v", c.FixedStep))
	}
	for i, b := range append(c.Submit[:], c.Cancel[:]...) {
		if b.Kind > BindGamepad {
			result = multierror.Append(result, fmt.Errorf("binding %d: unknown kind %d", i, b.Kind))
		}
	}
	return result.ErrorOrNil()
}

// LoadConfig parses a JSON config. Missing fields keep their DefaultConfig
// value. The result is validated.
func LoadConfig(jsonData []byte) (Config, error) {
	c := DefaultConfig()
	if !gjson.ValidBytes(jsonData) {
		return c, errors.New("load config: invalid JSON")
	}
	root := gjson.ParseBytes(jsonData)
	if !root.IsObject() {
		return c, errors.New("load config: top level must be an object")
	}

	var result *multierror.Error
	readBool := func(key string, dst *bool) {
		v := root.Get(key)
		if !v.Exists() {
			return
		}
		if !v.IsBool() {
			result = multierror.Append(result, fmt.Errorf("%s: want bool, got %s", key, v.Type))
			return
		}
		*dst = v.Bool()
	}
	readFloat := func(key string, dst *float64) {
		v := root.Get(key)
		if !v.Exists() {
			return
		}
		if v.Type != gjson.Number {
			result = multierror.Append(result, fmt.Errorf("%s: want number, got %s", key, v.Type))
			return
		}
		*dst = v.Float()
	}
	readString := func(key string, dst *string) {
		v := root.Get(key)
		if !v.Exists() {
			return
		}
		if v.Type != gjson.String {
			result = multierror.Append(result, fmt.Errorf("%s: want string, got %s", key, v.Type))
			return
		}
		*dst = v.String()
	}
	readBindings := func(key string, dst *[2]Binding) {
		v := root.Get(key)
		if !v.Exists() {
			return
		}
		if !v.IsArray() || len(v.Array()) > 2 {
			result = multierror.Append(result, fmt.Errorf("%s: want array of at most 2 bindings", key))
			return
		}
		var out [2]Binding
		for i, item := range v.Array() {
			b, err := ParseBinding(item.String())
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s[%d]: %w", key, i, err))
				return
			}
			out[i] = b
		}
		*dst = out
	}

	readBool("useMouse", &c.UseMouse)
	readBool("useTouch", &c.UseTouch)
	readBool("useKeyboard", &c.UseKeyboard)
	readBool("useController", &c.UseController)
	readBool("emulateTouchWithMouse", &c.EmulateTouchWithMouse)
	if v := root.Get("eventMask"); v.Exists() {
		if v.Type != gjson.Number {
			result = multierror.Append(result, fmt.Errorf("eventMask: want number, got %s", v.Type))
		} else {
			c.EventMask = LayerMask(v.Uint())
		}
	}
	readFloat("tooltipDelay", &c.TooltipDelay)
	readBool("stickyTooltip", &c.StickyTooltip)
	readFloat("mouseClickThreshold", &c.MouseClickThreshold)
	readFloat("touchClickThreshold", &c.TouchClickThreshold)
	readBool("touchDragCancelsClick", &c.TouchDragCancelsClick)
	readFloat("rangeDistance", &c.RangeDistance)
	readString("scrollAxis", &c.ScrollAxis)
	readString("verticalAxis", &c.VerticalAxis)
	readString("horizontalAxis", &c.HorizontalAxis)
	readBindings("submit", &c.Submit)
	readBindings("cancel", &c.Cancel)
	readFloat("doubleClickWindow", &c.DoubleClickWindow)
	readFloat("axisThreshold", &c.AxisThreshold)
	readFloat("axisCooldown", &c.AxisCooldown)
	readFloat("fixedStep", &c.FixedStep)

	if err := result.ErrorOrNil(); err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}

// JSON encodes the config in the format LoadConfig reads.
func (c Config) JSON() ([]byte, error) {
	fields := []struct {
		key   string
		value any
	}{
		{"useMouse", c.UseMouse},
		{"useTouch", c.UseTouch},
		{"useKeyboard", c.UseKeyboard},
		{"useController", c.UseController},
		{"emulateTouchWithMouse", c.EmulateTouchWithMouse},
		{"eventMask", uint32(c.EventMask)},
		{"tooltipDelay", c.TooltipDelay},
		{"stickyTooltip", c.StickyTooltip},
		{"mouseClickThreshold", c.MouseClickThreshold},
		{"touchClickThreshold", c.TouchClickThreshold},
		{"touchDragCancelsClick", c.TouchDragCancelsClick},
		{"rangeDistance", c.RangeDistance},
		{"scrollAxis", c.ScrollAxis},
		{"verticalAxis", c.VerticalAxis},
		{"horizontalAxis", c.HorizontalAxis},
		{"submit", []string{c.Submit[0].String(), c.Submit[1].String()}},
		{"cancel", []string{c.Cancel[0].String(), c.Cancel[1].String()}},
		{"doubleClickWindow", c.DoubleClickWindow},
		{"axisThreshold", c.AxisThreshold},
		{"axisCooldown", c.AxisCooldown},
		{"fixedStep", c.FixedStep},
	}

	out := []byte("{}")
	for _, f := range fields {
		var err error
		out, err = sjson.SetBytes(out, f.key, f.value)
		if err != nil {
			return nil, fmt.Errorf("encode config %s: %w", f.key, err)
		}
	}
	return out, nil
}
