package floaty

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrNotConfigured is returned when the simulator is used before Configure
// has set its base size and speed.
var ErrNotConfigured = errors.New("floaty: simulator not configured")

// Source supplies uniform random floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns the default deterministic source seeded with Seed.
func NewSource() Source {
	return rand.New(rand.NewPCG(Seed, 0))
}

// FloatingObject holds the state of one floating sprite. Y is measured at the
// object's center and decreases as the object rises.
type FloatingObject struct {
	X, Y  float64
	Scale float64
	Alpha float64
	Speed float64 // pixels per second
}

// RenderParams are the draw parameters of a single floating object.
type RenderParams struct {
	Visible         bool
	X, Y            float64
	PixelSize       int // half extent of the drawn sprite in pixels
	RotationDegrees float64
	AlphaByte       uint8
}

// SpriteDrawer draws one scaled, rotated, alpha-blended sprite centered at
// (x, y), covering [-size, size] on both axes before rotation.
type SpriteDrawer interface {
	DrawSprite(x, y float64, size int, rotationDegrees float64, alpha uint8)
}

// Simulator owns a fixed array of floating objects and advances them each
// frame. Objects are never added or removed; once an object has fully risen
// above the top edge it is reinitialized in place below the bottom edge.
//
// The simulator is not safe for concurrent use. It is expected to be driven
// from the host's update loop.
type Simulator struct {
	objects   [Count]FloatingObject
	rng       Source
	baseSize  float64
	baseSpeed float64

	configured bool
	sized      bool
}

// NewSimulator creates a simulator drawing from src. A nil src uses the
// default seeded source from NewSource.
func NewSimulator(src Source) *Simulator {
	if src == nil {
		src = NewSource()
	}
	return &Simulator{rng: src}
}

// Configure sets the base size from the sprite's larger intrinsic dimension
// and the base speed from the device density, using BaseSpeedDPPerSecond.
// Objects already in flight keep their current speed and size; only later
// initializations use the new values.
func (s *Simulator) Configure(spriteMaxDimension int, densityScale float64) {
	s.ConfigureSpeed(spriteMaxDimension, densityScale, BaseSpeedDPPerSecond)
}

// ConfigureSpeed is Configure with an explicit base speed constant in
// density-independent pixels per second.
func (s *Simulator) ConfigureSpeed(spriteMaxDimension int, densityScale, baseSpeedConstant float64) {
	s.baseSize = float64(spriteMaxDimension) / 2
	s.baseSpeed = baseSpeedConstant * densityScale
	s.configured = true
}

// Configured reports whether Configure has been called.
func (s *Simulator) Configured() bool { return s.configured }

// Sized reports whether OnViewportResized has populated the objects.
func (s *Simulator) Sized() bool { return s.sized }

// BaseSize returns half of the sprite's larger intrinsic dimension.
func (s *Simulator) BaseSize() float64 { return s.baseSize }

// BaseSpeed returns the density-scaled base speed in pixels per second.
func (s *Simulator) BaseSpeed() float64 { return s.baseSpeed }

// Objects returns a copy of the current object states in index order.
// The result is empty until the viewport has been sized.
func (s *Simulator) Objects() []FloatingObject {
	if !s.sized {
		return nil
	}
	out := make([]FloatingObject, Count)
	copy(out, s.objects[:])
	return out
}

// Object returns a pointer to the object at index i for in-place inspection.
// It panics if i is out of range.
func (s *Simulator) Object(i int) *FloatingObject {
	return &s.objects[i]
}

// OnViewportResized reinitializes every object for a surface of the given
// pixel dimensions. It must be called on the first layout and on every size
// change; each call advances the random stream.
func (s *Simulator) OnViewportResized(width, height int) error {
	if !s.configured {
		return ErrNotConfigured
	}
	for i := range s.objects {
		s.objects[i] = FloatingObject{}
		s.InitializeObject(&s.objects[i], width, height)
	}
	s.sized = true
	return nil
}

// InitializeObject randomizes obj to a new starting state below the bottom
// edge of a viewWidth x viewHeight surface. The four random draws happen in
// a fixed order (scale, x, y offset, alpha) so runs are reproducible.
func (s *Simulator) InitializeObject(obj *FloatingObject, viewWidth, viewHeight int) {
	w, h := float64(viewWidth), float64(viewHeight)

	obj.Scale = ScaleMin + ScaleRandom*s.rng.Float64()
	obj.X = w * s.rng.Float64()

	// Start just outside the bottom edge, then push further down by up to a
	// quarter of the height so recycled objects don't re-enter in lockstep.
	obj.Y = h
	obj.Y += obj.Scale * s.baseSize
	obj.Y += h * s.rng.Float64() / 4

	obj.Alpha = AlphaScalePart*obj.Scale + AlphaRandomPart*s.rng.Float64()
	// Bigger, brighter objects move faster.
	obj.Speed = s.baseSpeed * obj.Alpha * obj.Scale
}

// Tick advances every object by dt seconds and recycles the ones whose bottom
// edge has passed above the top of the surface. It returns the number of
// recycled objects. Ticking before the viewport is sized does nothing.
func (s *Simulator) Tick(dt float64, viewWidth, viewHeight int) (int, error) {
	if !s.configured {
		return 0, ErrNotConfigured
	}
	if !s.sized {
		return 0, nil
	}

	recycled := 0
	for i := range s.objects {
		obj := &s.objects[i]
		obj.Y -= obj.Speed * dt
		if obj.Y+obj.Scale*s.baseSize < 0 {
			s.InitializeObject(obj, viewWidth, viewHeight)
			recycled++
		}
	}
	return recycled, nil
}

// RenderParametersFor computes the draw parameters of obj on a surface of
// the given height. Objects entirely above or below the surface are reported
// as not visible and must not be drawn. An object whose extent only touches
// an edge covers no pixels and is not visible.
func (s *Simulator) RenderParametersFor(obj FloatingObject, viewHeight int) RenderParams {
	h := float64(viewHeight)
	size := obj.Scale * s.baseSize
	if obj.Y+size <= 0 || obj.Y-size >= h {
		return RenderParams{X: obj.X, Y: obj.Y}
	}

	// Rotation follows how far the bottom edge has travelled. Values past 360
	// are left for the drawer to wrap.
	var progress float64
	if h > 0 {
		progress = (obj.Y + size) / h
	}

	return RenderParams{
		Visible:         true,
		X:               obj.X,
		Y:               obj.Y,
		PixelSize:       int(math.Round(size)),
		RotationDegrees: 360 * progress,
		AlphaByte:       uint8(math.Round(255 * clamp01(obj.Alpha))),
	}
}

// Render draws every visible object through dst in index order and returns
// the number of draw calls made.
func (s *Simulator) Render(dst SpriteDrawer, viewHeight int) int {
	if !s.sized || dst == nil {
		return 0
	}
	drawn := 0
	for i := range s.objects {
		p := s.RenderParametersFor(s.objects[i], viewHeight)
		if !p.Visible {
			continue
		}
		dst.DrawSprite(p.X, p.Y, p.PixelSize, p.RotationDegrees, p.AlphaByte)
		drawn++
	}
	return drawn
}
