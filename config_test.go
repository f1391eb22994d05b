package uicam

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultConfigValid(t *testing.T) {
	for name, cfg := range map[string]Config{
		"default": DefaultConfig(),
		"mobile":  MobileConfig(),
		"console": ConsoleConfig(),
	} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestPresets(t *testing.T) {
	m := MobileConfig()
	if m.UseMouse || !m.UseTouch || m.UseKeyboard || m.UseController {
		t.Errorf("MobileConfig devices = %v/%v/%v/%v", m.UseMouse, m.UseTouch, m.UseKeyboard, m.UseController)
	}
	c := ConsoleConfig()
	if c.UseMouse || c.UseTouch || c.UseKeyboard || !c.UseController {
		t.Errorf("ConsoleConfig devices = %v/%v/%v/%v", c.UseMouse, c.UseTouch, c.UseKeyboard, c.UseController)
	}
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in      string
		want    Binding
		wantErr bool
	}{
		{"", Binding{}, false},
		{"Enter", KeyBinding(ebiten.KeyEnter), false},
		{"Escape", KeyBinding(ebiten.KeyEscape), false},
		{"pad:RightBottom", GamepadBinding(ebiten.StandardGamepadButtonRightBottom), false},
		{"pad:CenterRight", GamepadBinding(ebiten.StandardGamepadButtonCenterRight), false},
		{"pad:Nope", Binding{}, true},
		{"NotAKey", Binding{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBinding(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBinding(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBindingString(t *testing.T) {
	if got := GamepadBinding(ebiten.StandardGamepadButtonRightRight).String(); got != "pad:RightRight" {
		t.Errorf("gamepad String = %q", got)
	}
	if got := KeyBinding(ebiten.KeyEnter).String(); got != "Enter" {
		t.Errorf("key String = %q", got)
	}
	if got := (Binding{}).String(); got != "" {
		t.Errorf("unbound String = %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"useMouse": false,
		"tooltipDelay": 0.5,
		"stickyTooltip": false,
		"eventMask": 6,
		"verticalAxis": "RightStickVertical",
		"submit": ["Space", "pad:RightLeft"],
		"cancel": ["Backspace"]
	}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.UseMouse || !cfg.UseTouch {
		t.Errorf("devices: mouse=%v touch=%v", cfg.UseMouse, cfg.UseTouch)
	}
	if cfg.TooltipDelay != 0.5 || cfg.StickyTooltip {
		t.Errorf("tooltip: %v %v", cfg.TooltipDelay, cfg.StickyTooltip)
	}
	if cfg.EventMask != LayerBit(1)|LayerBit(2) {
		t.Errorf("EventMask = %b", cfg.EventMask)
	}
	if cfg.VerticalAxis != AxisRightStickVertical || cfg.HorizontalAxis != AxisLeftStickHorizontal {
		t.Errorf("axes = %q %q", cfg.VerticalAxis, cfg.HorizontalAxis)
	}
	if cfg.Submit[0] != KeyBinding(ebiten.KeySpace) ||
		cfg.Submit[1] != GamepadBinding(ebiten.StandardGamepadButtonRightLeft) {
		t.Errorf("Submit = %+v", cfg.Submit)
	}
	if cfg.Cancel[0] != KeyBinding(ebiten.KeyBackspace) || cfg.Cancel[1] != (Binding{}) {
		t.Errorf("Cancel = %+v", cfg.Cancel)
	}
	// Untouched fields keep their defaults.
	if cfg.MouseClickThreshold != 10 || cfg.DoubleClickWindow != 0.25 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"invalid JSON", `{`, []string{"invalid JSON"}},
		{"not an object", `[1,2]`, []string{"object"}},
		{"wrong types", `{"useMouse": "yes", "tooltipDelay": "soon"}`, []string{"useMouse", "tooltipDelay"}},
		{"bad binding", `{"submit": ["pad:Turbo"]}`, []string{"submit[0]"}},
		{"too many bindings", `{"cancel": ["A", "B", "C"]}`, []string{"cancel"}},
		{"invalid values", `{"tooltipDelay": -1, "fixedStep": 0}`, []string{"tooltipDelay", "fixedStep"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestValidateAggregates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DoubleClickWindow = 0
	cfg.AxisThreshold = 2
	cfg.MouseClickThreshold = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, w := range []string{"doubleClickWindow", "axisThreshold", "mouseClickThreshold"} {
		if !strings.Contains(err.Error(), w) {
			t.Errorf("error %q does not mention %q", err, w)
		}
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := ConsoleConfig()
	cfg.TooltipDelay = 2
	cfg.EventMask = LayerBit(4)
	data, err := cfg.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	got, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig(%s): %v", data, err)
	}
	if got != cfg {
		t.Errorf("round trip:\n got  %+v\n want %+v", got, cfg)
	}
}

func TestSetConfigResetsAxisCooldown(t *testing.T) {
	r := NewRouter(DefaultConfig())
	before := r.axisLimiter
	cfg := r.Config()
	cfg.TooltipDelay = 3
	r.SetConfig(cfg)
	if r.axisLimiter != before {
		t.Error("limiter replaced without a cooldown change")
	}
	cfg.AxisCooldown = 1
	r.SetConfig(cfg)
	if r.axisLimiter == before {
		t.Error("limiter not replaced after a cooldown change")
	}
}
