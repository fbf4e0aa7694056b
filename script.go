package backdrop

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in a session script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Path   string  `json:"path,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true, "drag": true,
	"zoom": true, "nudge": true, "reset": true, "load": true,
	"export": true, "wait": true, "quit": true,
}

// ScriptRunner plays a recorded session against an App, one step per frame:
// pointer actions go through the input injection queue, the rest drive the
// engine directly. Attach with App.SetScript.
//
// Script format:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 400, "fromY": 300, "toX": 250, "toY": 200, "frames": 10},
//	  {"action": "zoom", "value": 0.5},
//	  {"action": "wait", "frames": 2},
//	  {"action": "export", "label": "zoomed"},
//	  {"action": "quit"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON session script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. It returns ebiten.Termination when
// the script asks to quit.
func (r *ScriptRunner) step(a *App) error {
	if r.done {
		return nil
	}
	// Injected pointer samples drain before the next step runs.
	if a.input.Injected() > 0 {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "press":
		a.input.InjectPress(st.X, st.Y)
	case "move":
		a.input.InjectMove(st.X, st.Y)
	case "hover":
		a.input.InjectHover(st.X, st.Y)
	case "release":
		a.input.InjectRelease(st.X, st.Y)
	case "drag":
		a.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "zoom":
		a.zoom.SetValue(st.Value)
	case "nudge":
		a.engine.Nudge(Point{st.X, st.Y})
	case "reset":
		a.engine.Reset()
		a.zoom.Rewind()
	case "load":
		a.Load(st.Path)
	case "export":
		a.screen.QueueExport(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		err = ebiten.Termination
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && a.input.Injected() == 0 {
		r.done = true
	}
	return err
}
