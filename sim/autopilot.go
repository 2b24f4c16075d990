package sim

import "math"

// Autopilot decides when to launch by predicting where a dart fired now would land.
// The prediction extrapolates the current angular velocity over the flight time; the
// spinner keeps smoothing toward its behavior target so the margin absorbs the error.
type Autopilot struct {
	tuning Tuning

	// Margin is the extra clearance required on top of the collision tolerance
	Margin float64
}

// NewAutopilot creates an autopilot with a default safety margin
func NewAutopilot(tuning Tuning) *Autopilot {
	return &Autopilot{
		tuning: tuning,
		Margin: 0.12,
	}
}

// FlightTicks returns the number of ticks a dart needs to reach a target of the given radius
func (a *Autopilot) FlightTicks(radius float64) float64 {
	travel := a.tuning.LaunchDistance - a.tuning.DartHalfLength - radius
	if travel <= 0 || a.tuning.ThrowSpeed <= 0 {
		return 0
	}
	return math.Ceil(travel / a.tuning.ThrowSpeed)
}

// PredictImpact returns the impact angle of a dart launched on the snapshot's tick
func (a *Autopilot) PredictImpact(s Snapshot) float64 {
	ticks := a.FlightTicks(s.Radius)
	return ImpactAngle(s.Rotation + s.Velocity*ticks)
}

// Clearance returns the angular distance from angle to the nearest occupied angle,
// or π when nothing is occupied
func Clearance(angle float64, occupied []StuckDart) float64 {
	best := math.Pi
	for _, d := range occupied {
		best = min(best, CircularDistance(d.Angle, angle))
	}
	return best
}

// ShouldLaunch reports whether launching now is both allowed and predicted to stick
func (a *Autopilot) ShouldLaunch(s Snapshot) bool {
	if s.State != StatePlaying || s.Projectile != nil || s.Darts <= 0 {
		return false
	}
	if s.Terminal {
		return true
	}
	return Clearance(a.PredictImpact(s), s.Occupied) >= a.tuning.CollisionTolerance+a.Margin
}
