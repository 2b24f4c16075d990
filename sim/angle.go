package sim

import "math"

const fullTurn = 2 * math.Pi

// Wrap projects an angle onto [0, 2π)
func Wrap(angle float64) float64 {
	angle = math.Mod(angle, fullTurn)
	if angle < 0 {
		angle += fullTurn
	}
	// math.Mod of a tiny negative value can round up to a full turn
	if angle >= fullTurn {
		angle = 0
	}
	return angle
}

// CircularDistance returns the shortest angular distance between a and b, in [0, π]
func CircularDistance(a, b float64) float64 {
	d := math.Abs(Wrap(a) - Wrap(b))
	if d > math.Pi {
		d = fullTurn - d
	}
	return d
}

// ImpactAngle converts the target rotation at impact time into the angle the dart lands on.
// Darts always travel straight up, so the landing point is "straight down" (π/2 in screen
// coordinates) expressed in the target's local frame.
func ImpactAngle(rotation float64) float64 {
	return Wrap(math.Pi/2 - rotation)
}
