// Package floaty renders a decorative layer of sprites drifting upward, for
// [Ebitengine].
//
// A fixed set of [Count] floating objects is spread across the surface with
// random position, scale, alpha and speed. Each frame the objects rise; once
// an object has fully left the top edge it is recycled in place below the
// bottom edge with a fresh random state. Objects rotate as they travel.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	view := floaty.NewView(nil)
//	if err := view.Init(sprite, ebiten.Monitor().DeviceScaleFactor()); err != nil {
//		log.Fatal(err)
//	}
//	floaty.Run(view, floaty.RunConfig{Title: "Bananas", Width: 480, Height: 800})
//
// For full control, drive a [View] from your own [ebiten.Game]: call
// [View.SetSize] from Layout, [View.Update] from Update and [View.Draw] from
// Draw, and call [View.Attach] before the first frame.
//
// # Simulation
//
// [Simulator] is the core and has no Ebitengine dependency in its API. It
// is ticked with an elapsed time in seconds and reports per-object
// [RenderParams], or draws every visible object through a [SpriteDrawer].
// Its random stream comes from an injectable [Source]; the default is seeded
// with [Seed], so the same viewport and frame deltas replay the same
// animation.
//
// # Pause and resume
//
// [View.Pause] and [View.Resume] freeze and continue the frame timer
// ([Animator]). Resuming continues from the stored play time, so objects do
// not jump by the time spent paused.
//
// [Ebitengine]: https://ebitengine.org
package floaty
