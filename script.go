package floaty

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a frame script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a frame script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a sequence of view actions across frames, for automated
// visual checks of the animation. Supported actions are "pause", "resume",
// "wait" (frames), "screenshot" (label) and "quit".
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	quit      bool
}

// LoadScript parses a JSON frame script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "pause", "resume", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Quit reports whether a "quit" step has been reached.
func (r *ScriptRunner) Quit() bool {
	return r.quit
}

// Step advances the runner by one frame, applying at most one action to v.
func (r *ScriptRunner) Step(v *View) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "pause":
		v.Pause()
	case "resume":
		v.Resume()
	case "screenshot":
		v.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		r.quit = true
		r.done = true
		return
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
