package sim

import "time"

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	State State
	Level int
	Lives int
	Score int
	Darts int
	Combo int

	// Rotation is the unwrapped target rotation; Heading is its [0, 2π) projection
	Rotation float64
	Heading  float64
	Velocity float64
	Behavior Behavior

	Radius   float64
	Terminal bool

	// Projectile is nil when no dart is in flight
	Projectile *Projectile

	Occupied []StuckDart
	Crystals []Crystal

	Prize    Prize
	HasPrize bool

	Clock time.Duration
}

// Snapshot copies the current round state
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		State:    r.state,
		Level:    r.level,
		Lives:    r.lives,
		Score:    r.score,
		Darts:    r.darts,
		Combo:    r.Combo(),
		Rotation: r.spinner.Angle(),
		Heading:  Wrap(r.spinner.Angle()),
		Velocity: r.spinner.Velocity(),
		Behavior: r.spinner.Behavior(),
		Radius:   r.resolver.Radius(),
		Terminal: r.tuning.Level(r.level).Terminal,
		Occupied: r.occupancy.Darts(),
		Prize:    r.prize,
		HasPrize: r.hasPrize,
		Clock:    r.clock,
	}
	if p := r.resolver.Active(); p != nil {
		cp := *p
		s.Projectile = &cp
	}
	if len(r.crystals) > 0 {
		s.Crystals = make([]Crystal, len(r.crystals))
		copy(s.Crystals, r.crystals)
	}
	return s
}
