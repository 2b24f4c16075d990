package sim

import (
	"math"
	"time"
)

// TickDuration is the nominal length of one simulation tick (60 ticks per second).
// Angular velocities and projectile speeds are expressed per tick.
const TickDuration = time.Second / 60

// Tuning holds the static gameplay constants consumed by the simulation.
// The core never computes these; hosts pass them in once at construction.
type Tuning struct {
	// TicksPerSecond converts elapsed time into ticks
	TicksPerSecond float64

	// BaseSpeed and SpeedPerLevel give the level base speed: BaseSpeed + level*SpeedPerLevel (radians per tick)
	BaseSpeed     float64
	SpeedPerLevel float64

	// Smoothing is the per-tick low-pass factor applied to angular velocity
	Smoothing float64

	// Behavior re-roll interval is BehaviorInterval + rand*BehaviorJitter
	BehaviorInterval time.Duration
	BehaviorJitter   time.Duration

	// StutterPeriod is the half period of the stutter square wave
	StutterPeriod time.Duration

	// Terminal (prize wheel) rotation: TerminalSpeed + sin(t/TerminalWobblePeriod)*TerminalWobble
	TerminalSpeed        float64
	TerminalWobble       float64
	TerminalWobblePeriod time.Duration

	// TargetRadius is the target radius in pixels; the prize wheel adds TerminalRadiusBonus
	TargetRadius        float64
	TerminalRadiusBonus float64

	// LaunchDistance is the distance from the target centre to the launch origin
	LaunchDistance float64

	// ThrowSpeed is the projectile speed in pixels per tick
	ThrowSpeed float64

	// DartHalfLength is subtracted from the projectile position when testing for impact
	DartHalfLength float64

	// CollisionTolerance is the angular distance under which two darts overlap
	CollisionTolerance float64

	// ComboWindow is the maximum gap between sticks that keeps the multiplier growing
	ComboWindow time.Duration

	// LevelCompleteDelay lets the final impact register before the level completes
	LevelCompleteDelay time.Duration

	// DartsPerLevel is the allotment for levels below the terminal level
	DartsPerLevel int

	// MaxObstacles caps the pre-seeded obstacle count (min(level, MaxObstacles))
	MaxObstacles int

	// ObstacleOffset rotates the evenly spaced obstacle layout
	ObstacleOffset float64

	// StartingLives is the number of lives at game start
	StartingLives int

	// CrystalScore is awarded for each collected crystal; MaxCrystals of 0 disables crystals
	CrystalScore int
	MaxCrystals  int

	// TerminalLevel is the prize wheel level; the level before it ends with LEVEL_COMPLETE
	TerminalLevel int
}

// DefaultTuning returns the stock gameplay constants
func DefaultTuning() Tuning {
	return Tuning{
		TicksPerSecond:       60,
		BaseSpeed:            0.04,
		SpeedPerLevel:        0.012,
		Smoothing:            0.06,
		BehaviorInterval:     1000 * time.Millisecond,
		BehaviorJitter:       1500 * time.Millisecond,
		StutterPeriod:        450 * time.Millisecond,
		TerminalSpeed:        0.06,
		TerminalWobble:       0.02,
		TerminalWobblePeriod: time.Second,
		TargetRadius:         95,
		TerminalRadiusBonus:  60,
		LaunchDistance:       352,
		ThrowSpeed:           32,
		DartHalfLength:       35,
		CollisionTolerance:   0.22,
		ComboWindow:          1500 * time.Millisecond,
		LevelCompleteDelay:   500 * time.Millisecond,
		DartsPerLevel:        5,
		MaxObstacles:         4,
		ObstacleOffset:       0.5,
		StartingLives:        3,
		CrystalScore:         10,
		MaxCrystals:          2,
		TerminalLevel:        6,
	}
}

// Ticks converts an elapsed duration into (fractional) simulation ticks
func (t Tuning) Ticks(elapsed time.Duration) float64 {
	return elapsed.Seconds() * t.TicksPerSecond
}

// LevelSpec describes the layout and motion parameters of one level
type LevelSpec struct {
	Level     int
	Darts     int
	Obstacles int
	BaseSpeed float64
	Radius    float64
	Terminal  bool
	Crystals  bool
}

// Level returns the configuration for a level.
// Levels outside 1..TerminalLevel are clamped.
func (t Tuning) Level(level int) LevelSpec {
	level = max(1, min(level, t.TerminalLevel))

	if level == t.TerminalLevel {
		return LevelSpec{
			Level:     level,
			Darts:     1,
			Obstacles: 0,
			BaseSpeed: t.TerminalSpeed,
			Radius:    t.TargetRadius + t.TerminalRadiusBonus,
			Terminal:  true,
		}
	}

	obstacles := 0
	if level > 1 {
		obstacles = min(level, t.MaxObstacles)
	}
	return LevelSpec{
		Level:     level,
		Darts:     t.DartsPerLevel,
		Obstacles: obstacles,
		BaseSpeed: t.BaseSpeed + float64(level)*t.SpeedPerLevel,
		Radius:    t.TargetRadius,
		Crystals:  level >= 2 && t.MaxCrystals > 0,
	}
}

// ObstacleAngles returns the evenly spaced pre-seeded obstacle angles for a level
func (t Tuning) ObstacleAngles(spec LevelSpec) []float64 {
	if spec.Obstacles == 0 {
		return nil
	}
	angles := make([]float64, spec.Obstacles)
	for i := range angles {
		angles[i] = Wrap(2*math.Pi*float64(i)/float64(spec.Obstacles) + t.ObstacleOffset)
	}
	return angles
}
