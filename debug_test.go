package floaty

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = prev })
	return &buf
}

func TestDebugLogDisabled(t *testing.T) {
	buf := captureDebug(t)
	v := NewView(nil)
	v.debugLog(frameStats{recycled: 3, drawn: 5})
	if buf.Len() != 0 {
		t.Errorf("debug output while disabled: %q", buf.String())
	}
}

func TestDebugLogEnabled(t *testing.T) {
	buf := captureDebug(t)
	v := NewView(nil)
	v.SetDebugMode(true)
	v.debugLog(frameStats{tickTime: time.Millisecond, recycled: 3, drawn: 5})

	out := buf.String()
	if !strings.HasPrefix(out, "[floaty]") {
		t.Errorf("output should start with [floaty], got %q", out)
	}
	for _, want := range []string{"recycled: 3", "drawn: 5/32", "1ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestDebugStatsCollectedOnTick(t *testing.T) {
	v := newTestView(t)
	v.SetDebugMode(true)
	if err := v.SetSize(400, 800); err != nil {
		t.Fatal(err)
	}
	v.Attach()
	v.Simulator().Object(0).Y = -1000
	_ = v.Update(frameStep)
	if v.stats.recycled != 1 {
		t.Errorf("recycled = %d, want 1", v.stats.recycled)
	}
}
