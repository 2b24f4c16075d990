package sim

import (
	"math"
	"time"
)

// Behavior is a named angular-velocity modulation applied to the target
type Behavior int

const (
	BehaviorNormal Behavior = iota
	BehaviorFast
	BehaviorSlow
	BehaviorReverse
	BehaviorStutter
	behaviorCount
)

// String returns the behavior name
func (b Behavior) String() string {
	switch b {
	case BehaviorNormal:
		return "NORMAL"
	case BehaviorFast:
		return "FAST"
	case BehaviorSlow:
		return "SLOW"
	case BehaviorReverse:
		return "REVERSE"
	case BehaviorStutter:
		return "STUTTER"
	default:
		return "UNKNOWN"
	}
}

// Spinner drives the target rotation. Motion is the production implementation;
// the round machine only depends on this interface.
type Spinner interface {
	// Reset prepares the spinner for a new level (or a retry of the current one)
	Reset(spec LevelSpec)

	// Advance moves the simulation forward by elapsed and returns the current unwrapped angle
	Advance(elapsed time.Duration) float64

	// Angle returns the current unwrapped angle
	Angle() float64

	// Velocity returns the current angular velocity in radians per tick
	Velocity() float64

	// Behavior returns the active behavior
	Behavior() Behavior
}

// Motion is the angular motion controller. It owns the target rotation and periodically
// picks a random behavior whose target velocity the actual velocity is smoothed toward.
type Motion struct {
	tuning Tuning
	rng    Source

	// clock is never reset, so the stutter phase stays continuous across levels and behavior switches
	clock time.Duration

	spec     LevelSpec
	angle    float64
	velocity float64
	behavior Behavior

	nextBehaviorAt time.Duration
}

// NewMotion creates a motion controller configured for level 1
func NewMotion(tuning Tuning, rng Source) *Motion {
	m := &Motion{
		tuning: tuning,
		rng:    rng,
	}
	m.Reset(tuning.Level(1))
	return m
}

// Reset zeroes the rotation, restores the level base speed and forces a behavior
// re-roll on the next advance
func (m *Motion) Reset(spec LevelSpec) {
	m.spec = spec
	m.angle = 0
	m.velocity = spec.BaseSpeed
	m.behavior = BehaviorNormal
	m.nextBehaviorAt = m.clock
}

// Advance moves the rotation forward by elapsed simulated time
func (m *Motion) Advance(elapsed time.Duration) float64 {
	m.clock += elapsed
	ticks := m.tuning.Ticks(elapsed)

	// The prize wheel ignores behaviors and wobbles smoothly around a fixed speed
	if m.spec.Terminal {
		phase := m.clock.Seconds() / m.tuning.TerminalWobblePeriod.Seconds()
		m.velocity = m.spec.BaseSpeed + math.Sin(phase)*m.tuning.TerminalWobble
		m.angle += m.velocity * ticks
		return m.angle
	}

	if m.clock >= m.nextBehaviorAt {
		m.rollBehavior()
	}

	// Exponential smoothing, scaled so that one full tick applies exactly the Smoothing factor
	target := m.targetVelocity()
	alpha := 1 - math.Pow(1-m.tuning.Smoothing, ticks)
	m.velocity += (target - m.velocity) * alpha

	m.angle += m.velocity * ticks
	return m.angle
}

// rollBehavior picks the next behavior and schedules the following re-roll
func (m *Motion) rollBehavior() {
	m.behavior = Behavior(m.rng.Intn(int(behaviorCount)))
	jitter := time.Duration(m.rng.Float64() * float64(m.tuning.BehaviorJitter))
	m.nextBehaviorAt = m.clock + m.tuning.BehaviorInterval + jitter
}

// targetVelocity returns the velocity the active behavior asks for
func (m *Motion) targetVelocity() float64 {
	base := m.spec.BaseSpeed
	switch m.behavior {
	case BehaviorFast:
		return base * 2.0
	case BehaviorSlow:
		return base * 0.4
	case BehaviorReverse:
		return -base
	case BehaviorStutter:
		// Square wave gate keyed to the continuous clock
		if int64(m.clock/m.tuning.StutterPeriod)%2 == 0 {
			return base * 2.2
		}
		return 0
	default:
		return base
	}
}

// Angle returns the current unwrapped rotation
func (m *Motion) Angle() float64 {
	return m.angle
}

// Velocity returns the current angular velocity in radians per tick
func (m *Motion) Velocity() float64 {
	return m.velocity
}

// Behavior returns the active behavior
func (m *Motion) Behavior() Behavior {
	return m.behavior
}
