package floaty

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay displays the current FPS, TPS and the view's animation state
// in the top-left corner. The text is refreshed every ~0.5 seconds.
type FPSOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

// NewFPSOverlay creates an overlay. The backing image is allocated lazily on
// the first Draw.
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{dirty: true}
}

// Update accumulates dt seconds and schedules a redraw every half second.
func (o *FPSOverlay) Update(dt float64) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0
	o.dirty = true
}

// Draw paints the overlay onto screen.
func (o *FPSOverlay) Draw(screen *ebiten.Image, v *View) {
	if o.img == nil {
		// 120x48 is enough for three short debug lines.
		o.img = ebiten.NewImage(120, 48)
	}
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), overlayState(v)))
	}
	screen.DrawImage(o.img, nil)
}

// overlayState describes the view's animation state in one word.
func overlayState(v *View) string {
	switch {
	case v == nil || !v.Attached():
		return "detached"
	case v.Paused():
		return "paused"
	default:
		return "running"
	}
}
