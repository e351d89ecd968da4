package floaty

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the screen before the view draws. A zero Color leaves
	// the screen as Ebitengine clears it.
	ClearColor Color
	ShowFPS    bool
	// FadeIn, when positive, fades the view in over that many seconds.
	FadeIn float32
	// Script, when set, is stepped once per frame before the view updates.
	// A "quit" step ends Run.
	Script *ScriptRunner
	// UpdateFunc, when set, runs at the start of every frame. Returning
	// ebiten.Termination ends Run without error.
	UpdateFunc func() error
}

// game adapts a View to ebiten.Game.
type game struct {
	view      *View
	cfg       RunConfig
	fps       *FPSOverlay
	layoutErr error
}

// Run attaches v, opens a window and drives the view until the window is
// closed, a script quits, or an error occurs. The view is detached on return.
func Run(v *View, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{view: v, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = NewFPSOverlay()
	}
	if cfg.FadeIn > 0 {
		v.FadeIn(cfg.FadeIn)
	}

	v.Attach()
	defer v.Detach()

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update runs one frame: user hook, script, then the view with a fixed
// 1/TPS frame duration.
func (g *game) Update() error {
	if g.layoutErr != nil {
		return g.layoutErr
	}
	if g.cfg.UpdateFunc != nil {
		if err := g.cfg.UpdateFunc(); err != nil {
			return err
		}
	}
	if sc := g.cfg.Script; sc != nil {
		sc.Step(g.view)
		if sc.Quit() {
			return ebiten.Termination
		}
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	frame := time.Second / time.Duration(tps)
	if g.fps != nil {
		g.fps.Update(frame.Seconds())
	}
	return g.view.Update(frame)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.view.Draw(screen)
	if g.fps != nil {
		g.fps.Draw(screen, g.view)
	}
}

// Layout uses the window size as the surface size and forwards changes to
// the view.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := g.view.SetSize(outsideWidth, outsideHeight); err != nil && g.layoutErr == nil {
		g.layoutErr = err
	}
	return outsideWidth, outsideHeight
}
