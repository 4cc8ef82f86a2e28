package interp

import "math"

const twoPi = 2 * math.Pi

// Clamp01 clamps v into [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp blends a towards b. The endpoints are returned exactly.
func Lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpAngle blends two angles in radians along the shorter arc. A non finite
// delta, as left by a freshly spawned instance, snaps to b.
func LerpAngle(a, b, t float64) float64 {
	d := b - a
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return b
	}
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + ShortestArc(d)*t
}

// ShortestArc wraps an angular delta into (-π, π].
func ShortestArc(d float64) float64 {
	d = math.Mod(d, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d <= -math.Pi {
		d += twoPi
	}
	return d
}

func blendField(mode FieldMode, a, b, t float64) float64 {
	if mode == Angular {
		return LerpAngle(a, b, t)
	}
	return Lerp(a, b, t)
}
