package floaty

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "pause"},
			{"action": "wait", "frames": 3},
			{"action": "resume"},
			{"action": "quit"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": [{"action": "click"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerPauseWaitResume(t *testing.T) {
	v := newTestView(t)
	v.Attach()

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "pause"},
		{"action": "wait", "frames": 2},
		{"action": "resume"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Step(v)
	if !v.Paused() {
		t.Fatal("view should be paused after the pause step")
	}

	// wait consumes two frames, including the one it starts on.
	runner.Step(v)
	if runner.Done() {
		t.Fatal("runner should not be done while waiting")
	}
	runner.Step(v)
	if !v.Paused() {
		t.Fatal("view should still be paused during the wait")
	}

	runner.Step(v)
	if v.Paused() {
		t.Error("view should be resumed")
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
	if runner.Quit() {
		t.Error("runner should not request quit without a quit step")
	}
}

func TestRunnerScreenshotAndQuit(t *testing.T) {
	v := NewView(nil)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "one"},
		{"action": "quit"},
		{"action": "screenshot", "label": "never"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Step(v)
	if len(v.screenshotQueue) != 1 || v.screenshotQueue[0] != "one" {
		t.Fatalf("queue = %v, want [one]", v.screenshotQueue)
	}
	runner.Step(v)
	if !runner.Quit() || !runner.Done() {
		t.Fatal("runner should quit and be done")
	}
	runner.Step(v)
	if len(v.screenshotQueue) != 1 {
		t.Errorf("steps after quit should not run, queue = %v", v.screenshotQueue)
	}
}
