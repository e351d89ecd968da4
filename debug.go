package floaty

import (
	"fmt"
	"io"
	"os"
	"time"
)

// frameStats holds per-frame simulation metrics. The draw count is kept for
// every frame; tick timing and recycling only in debug mode.
type frameStats struct {
	tickTime time.Duration
	recycled int
	drawn    int
}

// debugOut is where diagnostics are written. Tests swap it out.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, per-frame tick
// time, recycled count and draw count are logged to stderr.
func (v *View) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// debugLog prints frame stats.
func (v *View) debugLog(stats frameStats) {
	if !v.debug {
		return
	}
	logf("tick: %v | recycled: %d | drawn: %d/%d",
		stats.tickTime, stats.recycled, stats.drawn, Count)
}

// logf writes one prefixed diagnostic line to debugOut.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[floaty] "+format+"\n", args...)
}
