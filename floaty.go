package floaty

// Simulation constants. These are fixed for the widget and are not exposed
// through any configuration surface.
const (
	// Count is the number of floating objects owned by a Simulator.
	Count = 32
	// Seed seeds the default random source so every run replays the same
	// animation for the same viewport and frame deltas.
	Seed = 1337
	// BaseSpeedDPPerSecond is the base rise speed in density-independent
	// pixels per second, multiplied by the device density at Configure time.
	BaseSpeedDPPerSecond = 200

	// ScaleMin is the minimum scale of a floating object.
	ScaleMin = 0.45
	// ScaleRandom is the part of the scale that comes from randomness.
	ScaleRandom = 0.55
	// AlphaScalePart is the part of the alpha derived from the object's scale.
	AlphaScalePart = 0.5
	// AlphaRandomPart is the part of the alpha that comes from randomness.
	AlphaRandomPart = 0.5
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
