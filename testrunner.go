package uicam

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string
	X, Y   float64
	FromX  float64
	FromY  float64
	ToX    float64
	ToY    float64
	Frames int
	Held   bool
	Text   string
}

// TestRunner sequences injected input across ticks for automated testing.
// Attach to a Router via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached to a Router via SetTestRunner. The script is an object with a
// "steps" array; each step has an "action" of move, click, drag, text, or
// wait:
//
//	{"steps": [
//		{"action": "move", "x": 10, "y": 20},
//		{"action": "click", "x": 10, "y": 20},
//		{"action": "drag", "fromX": 10, "fromY": 20, "toX": 90, "toY": 20, "frames": 5},
//		{"action": "text", "text": "hello"},
//		{"action": "wait", "frames": 3}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	if !gjson.ValidBytes(jsonData) {
		return nil, errors.New("parse test script: invalid JSON")
	}
	steps := gjson.GetBytes(jsonData, "steps")
	if !steps.IsArray() || len(steps.Array()) == 0 {
		return nil, errors.New("parse test script: no steps")
	}

	var out []testStep
	for i, s := range steps.Array() {
		st := testStep{
			Action: s.Get("action").String(),
			X:      s.Get("x").Float(),
			Y:      s.Get("y").Float(),
			FromX:  s.Get("fromX").Float(),
			FromY:  s.Get("fromY").Float(),
			ToX:    s.Get("toX").Float(),
			ToY:    s.Get("toY").Float(),
			Frames: int(s.Get("frames").Int()),
			Held:   s.Get("held").Bool(),
			Text:   s.Get("text").String(),
		}
		switch st.Action {
		case "move", "click", "drag", "text", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		out = append(out, st)
	}
	return &TestRunner{steps: out}, nil
}

// SetTestRunner attaches a TestRunner to the router. The runner steps at the
// start of every tick, before input is processed.
func (r *Router) SetTestRunner(runner *TestRunner) {
	r.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (t *TestRunner) Done() bool {
	return t.done
}

// step advances the runner by one tick.
func (t *TestRunner) step(r *Router) {
	if t.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.Pending() {
		return
	}
	if t.waitCount > 0 {
		t.waitCount--
		return
	}
	if t.cursor >= len(t.steps) {
		t.done = true
		return
	}

	st := t.steps[t.cursor]
	t.cursor++

	switch st.Action {
	case "move":
		if st.Held {
			r.InjectMove(st.X, st.Y)
		} else {
			r.InjectHover(st.X, st.Y)
		}
	case "click":
		r.InjectClick(st.X, st.Y)
	case "drag":
		r.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "text":
		r.InjectText(st.Text)
	case "wait":
		if st.Frames > 0 {
			t.waitCount = st.Frames - 1 // this tick counts as one
		}
	}
}
