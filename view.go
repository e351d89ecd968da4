package floaty

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// View is an Ebitengine widget that fills its surface with floating copies
// of one sprite. It glues a Simulator to an Animator and an ImageDrawer.
//
// Typical lifecycle:
//
//	v := floaty.NewView(nil)
//	v.Init(sprite, ebiten.Monitor().DeviceScaleFactor())
//	v.Attach()
//	// each frame: v.SetSize(w, h); v.Update(dt); v.Draw(screen)
//	v.Detach()
type View struct {
	// Alpha is the overall opacity applied on top of every object's alpha.
	Alpha float64
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	sim      *Simulator
	animator *Animator
	drawer   *ImageDrawer
	sprite   *ebiten.Image
	fade     *Tween

	width, height int
	tickErr       error

	debug bool
	stats frameStats

	screenshotQueue []string
}

// NewView creates a detached view whose simulator draws from src. A nil src
// uses the default seeded source.
func NewView(src Source) *View {
	return &View{
		Alpha:         1,
		ScreenshotDir: "screenshots",
		sim:           NewSimulator(src),
		drawer:        NewImageDrawer(nil, nil),
	}
}

// Init sets the sprite to float and configures the simulator from the
// sprite's larger dimension and the device density.
//
// Calling Init again on a sized view changes the size of objects already in
// flight, since their extent is derived from the new sprite; their speeds are
// kept until each is recycled.
func (v *View) Init(sprite *ebiten.Image, density float64) error {
	if sprite == nil {
		return errors.New("floaty: nil sprite")
	}
	b := sprite.Bounds()
	v.sprite = sprite
	v.drawer.Sprite = sprite
	v.sim.Configure(max(b.Dx(), b.Dy()), density)
	return nil
}

// Simulator returns the view's simulator.
func (v *View) Simulator() *Simulator { return v.sim }

// Size returns the last laid out surface size.
func (v *View) Size() (int, int) { return v.width, v.height }

// laidOut reports whether the view has a known, non-zero surface size.
func (v *View) laidOut() bool {
	return v.width > 0 && v.height > 0 && v.sim.Sized()
}

// SetSize records the surface size. When it changes, or the simulator has
// not been sized yet, every object is reinitialized for the new dimensions.
// A failed resize leaves the previous size in place so the next call retries.
func (v *View) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		v.width, v.height = width, height
		return nil
	}
	if width == v.width && height == v.height && v.sim.Sized() {
		return nil
	}
	if err := v.sim.OnViewportResized(width, height); err != nil {
		return fmt.Errorf("resize view to %dx%d: %w", width, height, err)
	}
	v.width, v.height = width, height
	return nil
}

// Attach creates and starts the view's frame timer.
func (v *View) Attach() {
	if v.animator != nil {
		v.animator.Cancel()
	}
	v.animator = NewAnimator(v.onTimeUpdate)
	v.animator.Start()
}

// Detach stops the frame timer and releases its listener.
func (v *View) Detach() {
	if v.animator == nil {
		return
	}
	v.animator.Cancel()
	v.animator = nil
}

// Attached reports whether the view has a frame timer.
func (v *View) Attached() bool { return v.animator != nil }

// Pause freezes the animation if it is running.
func (v *View) Pause() {
	if v.animator != nil && v.animator.IsRunning() {
		v.animator.Pause()
	}
}

// Resume continues a paused animation from where it stopped.
func (v *View) Resume() {
	if v.animator != nil && v.animator.IsPaused() {
		v.animator.Resume()
	}
}

// Paused reports whether the animation is paused.
func (v *View) Paused() bool {
	return v.animator != nil && v.animator.IsPaused()
}

// Update advances fades and the frame timer by one host frame of the given
// duration. It returns the first simulation error raised during the frame.
func (v *View) Update(frame time.Duration) error {
	v.updateFade(float32(frame.Seconds()))

	if v.animator == nil {
		return nil
	}
	v.animator.Advance(frame)

	err := v.tickErr
	v.tickErr = nil
	return err
}

// onTimeUpdate is the animator listener. Frames before the view is laid out
// are ignored.
func (v *View) onTimeUpdate(_, delta time.Duration) {
	if !v.laidOut() {
		return
	}

	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}

	recycled, err := v.sim.Tick(delta.Seconds(), v.width, v.height)
	if err != nil && v.tickErr == nil {
		v.tickErr = err
	}

	if v.debug {
		v.stats.tickTime = time.Since(t0)
		v.stats.recycled = recycled
	}
}

// Draw renders every visible object onto screen, then writes any queued
// screenshots.
func (v *View) Draw(screen *ebiten.Image) {
	v.stats.drawn = 0
	if v.sprite != nil && v.laidOut() && v.Alpha > 0 {
		v.drawer.Target = screen
		v.drawer.Alpha = v.Alpha
		v.stats.drawn = v.sim.Render(v.drawer, v.height)
		v.drawer.Target = nil
		v.debugLog(v.stats)
	}
	v.flushScreenshots(screen)
}
