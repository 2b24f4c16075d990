package sim

import "time"

// ProjectileState is the lifecycle of the active projectile
type ProjectileState int

const (
	ProjectileInFlight ProjectileState = iota
	ProjectileResolved
)

// Projectile is the single dart in flight
type Projectile struct {
	ID uint64

	// Distance from the target centre along the launch axis, in pixels
	Distance float64

	State ProjectileState
}

// ImpactKind classifies a resolved impact
type ImpactKind int

const (
	ImpactStick ImpactKind = iota
	ImpactFailure
	ImpactPrize
)

// String returns the impact kind name
func (k ImpactKind) String() string {
	switch k {
	case ImpactStick:
		return "STICK"
	case ImpactFailure:
		return "FAILURE"
	case ImpactPrize:
		return "PRIZE_WON"
	default:
		return "UNKNOWN"
	}
}

// Impact is the outcome of one resolved projectile
type Impact struct {
	Kind         ImpactKind
	ProjectileID uint64
	Angle        float64

	// Dart is the claimed entry for a stick
	Dart StuckDart

	// Sector is the prize wheel sector for a prize impact
	Sector int
}

// Resolver owns at most one in-flight projectile and resolves its impact against the
// occupancy set or, in terminal mode, against the prize sector table
type Resolver struct {
	tuning    Tuning
	occupancy *Occupancy
	sectors   int

	spec   LevelSpec
	active *Projectile
	nextID uint64
}

// NewResolver creates a resolver bound to an occupancy set and a prize sector count
func NewResolver(tuning Tuning, occupancy *Occupancy, sectors int) *Resolver {
	return &Resolver{
		tuning:    tuning,
		occupancy: occupancy,
		sectors:   sectors,
		spec:      tuning.Level(1),
	}
}

// Reset drops any projectile in flight and adopts the level geometry
func (r *Resolver) Reset(spec LevelSpec) {
	r.spec = spec
	r.active = nil
}

// Launch creates a projectile at the origin. It is a no-op returning false when one is
// already in flight; ammunition is checked by the caller.
func (r *Resolver) Launch() (*Projectile, bool) {
	if r.active != nil {
		return nil, false
	}
	r.nextID++
	r.active = &Projectile{
		ID:       r.nextID,
		Distance: r.tuning.LaunchDistance,
		State:    ProjectileInFlight,
	}
	return r.active, true
}

// Active returns the projectile in flight, or nil
func (r *Resolver) Active() *Projectile {
	return r.active
}

// Radius returns the current target radius
func (r *Resolver) Radius() float64 {
	return r.spec.Radius
}

// Tick advances the projectile and resolves its impact exactly once, on the tick its
// leading edge crosses the target radius. Crossing is not interpolated: a fast dart may
// overshoot visually by less than one tick of travel.
func (r *Resolver) Tick(elapsed time.Duration, rotation float64) (Impact, bool) {
	p := r.active
	if p == nil {
		return Impact{}, false
	}

	p.Distance -= r.tuning.ThrowSpeed * r.tuning.Ticks(elapsed)
	if p.Distance-r.tuning.DartHalfLength > r.spec.Radius {
		return Impact{}, false
	}

	impact := r.resolve(p, ImpactAngle(rotation))
	p.State = ProjectileResolved
	r.active = nil
	return impact, true
}

// resolve classifies an impact angle
func (r *Resolver) resolve(p *Projectile, angle float64) Impact {
	impact := Impact{ProjectileID: p.ID, Angle: angle}

	// Every prize wheel impact wins; there is no occupancy to check
	if r.spec.Terminal {
		impact.Kind = ImpactPrize
		impact.Sector = SectorIndex(angle, r.sectors)
		return impact
	}

	dart, ok := r.occupancy.Claim(angle, OriginPlayer)
	if !ok {
		impact.Kind = ImpactFailure
		return impact
	}
	impact.Kind = ImpactStick
	impact.Dart = dart
	return impact
}
