package floaty

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a single float64 field with a gween tween. Call Update(dt)
// each frame; the value is written to the field on every update.
//
// There is no global animation manager. The View owns its opacity tween and
// updates it from View.Update.
type Tween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// newTween creates a Tween moving *field from its current value to `to`
// over duration seconds.
func newTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value to the field.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}

// FadeTo animates the view's overall opacity to alpha over duration seconds.
// A running fade is replaced. A non-positive duration applies alpha at once.
func (v *View) FadeTo(alpha float64, duration float32, fn ease.TweenFunc) *Tween {
	alpha = clamp01(alpha)
	if duration <= 0 {
		v.Alpha = alpha
		v.fade = nil
		return nil
	}
	v.fade = newTween(&v.Alpha, alpha, duration, fn)
	return v.fade
}

// FadeIn sets the view fully transparent and fades it to opaque over
// duration seconds with an ease-out curve.
func (v *View) FadeIn(duration float32) *Tween {
	v.Alpha = 0
	return v.FadeTo(1, duration, ease.OutQuad)
}

// updateFade advances the view's fade tween and drops it once finished.
func (v *View) updateFade(dt float32) {
	if v.fade == nil {
		return
	}
	v.fade.Update(dt)
	if v.fade.Done {
		v.fade = nil
	}
}
