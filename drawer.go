package floaty

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageDrawer is a SpriteDrawer that draws a single shared sprite image onto
// a target Ebitengine image.
type ImageDrawer struct {
	Target *ebiten.Image
	Sprite *ebiten.Image
	// Alpha multiplies every sprite's own alpha. Zero value draws nothing;
	// NewImageDrawer sets it to 1.
	Alpha float64
	// Filter selects the texture filter used when the sprite is scaled.
	Filter ebiten.Filter

	op ebiten.DrawImageOptions
}

// NewImageDrawer creates an ImageDrawer drawing sprite onto target at full
// opacity with linear filtering.
func NewImageDrawer(target, sprite *ebiten.Image) *ImageDrawer {
	return &ImageDrawer{
		Target: target,
		Sprite: sprite,
		Alpha:  1,
		Filter: ebiten.FilterLinear,
	}
}

// DrawSprite stretches the sprite over [-size, size] around the origin,
// rotates it, and moves it to (x, y).
func (d *ImageDrawer) DrawSprite(x, y float64, size int, rotationDegrees float64, alpha uint8) {
	if d.Target == nil || d.Sprite == nil || size <= 0 {
		return
	}
	b := d.Sprite.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	op := &d.op
	op.GeoM.Reset()
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(2*float64(size)/float64(w), 2*float64(size)/float64(h))
	op.GeoM.Rotate(math.Mod(rotationDegrees, 360) * math.Pi / 180)
	op.GeoM.Translate(x, y)

	a := float32(float64(alpha) / 255 * clamp01(d.Alpha))
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(a)
	op.Filter = d.Filter

	d.Target.DrawImage(d.Sprite, op)
}
