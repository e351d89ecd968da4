package floaty

import "time"

// TimeListener receives the total play time and the time elapsed since the
// previous frame.
type TimeListener func(total, delta time.Duration)

// Animator is a pausable frame timer. The host calls Advance once per frame
// with that frame's wall-clock duration; while running the Animator
// accumulates play time and notifies its listener.
//
// Pausing freezes play time. Resuming restores the play time captured by
// Pause, so listeners continue from where they stopped instead of jumping
// by the paused duration.
type Animator struct {
	listener TimeListener

	running bool
	paused  bool
	// firstFrame marks the frame right after Start or Resume, which reports a
	// zero delta.
	firstFrame bool

	playTime  time.Duration
	savedTime time.Duration
}

// NewAnimator creates a stopped Animator that notifies listener.
func NewAnimator(listener TimeListener) *Animator {
	return &Animator{listener: listener}
}

// SetListener replaces the listener. A nil listener silences the Animator.
func (a *Animator) SetListener(listener TimeListener) {
	a.listener = listener
}

// Start begins (or restarts) the Animator from zero play time.
func (a *Animator) Start() {
	a.running = true
	a.paused = false
	a.firstFrame = true
	a.playTime = 0
}

// Cancel stops the Animator and releases its listener. A cancelled Animator
// must be started again and given a new listener before it is useful.
func (a *Animator) Cancel() {
	a.running = false
	a.paused = false
	a.listener = nil
}

// Pause freezes the Animator if it is running and remembers the current
// play time.
func (a *Animator) Pause() {
	if !a.running || a.paused {
		return
	}
	a.savedTime = a.playTime
	a.paused = true
}

// Resume restarts a paused Animator at the play time captured by Pause.
func (a *Animator) Resume() {
	if !a.running || !a.paused {
		return
	}
	a.Start()
	a.SetCurrentPlayTime(a.savedTime)
}

// IsRunning reports whether the Animator has been started and not cancelled.
// A paused Animator is still running.
func (a *Animator) IsRunning() bool { return a.running }

// IsPaused reports whether the Animator is paused.
func (a *Animator) IsPaused() bool { return a.paused }

// CurrentPlayTime returns the accumulated play time.
func (a *Animator) CurrentPlayTime() time.Duration { return a.playTime }

// SetCurrentPlayTime moves the play time to d. The next frame reports a zero
// delta from it.
func (a *Animator) SetCurrentPlayTime(d time.Duration) {
	a.playTime = d
	a.firstFrame = true
}

// Advance accounts for one host frame of the given duration. It does nothing
// while stopped or paused.
func (a *Animator) Advance(frame time.Duration) {
	if !a.running || a.paused {
		return
	}

	var delta time.Duration
	if a.firstFrame {
		a.firstFrame = false
	} else if frame > 0 {
		delta = frame
		a.playTime += delta
	}

	if a.listener != nil {
		a.listener(a.playTime, delta)
	}
}
