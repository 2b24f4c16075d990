package sim

// Origin tags who placed a stuck dart
type Origin int

const (
	OriginPlayer Origin = iota
	OriginObstacle
)

// String returns the origin name
func (o Origin) String() string {
	if o == OriginObstacle {
		return "obstacle"
	}
	return "player"
}

// StuckDart is an angular position claimed on the target. Immutable once created.
type StuckDart struct {
	ID     int
	Angle  float64
	Origin Origin
}

// Occupancy is the ordered set of angles already claimed on the target
type Occupancy struct {
	tolerance float64
	darts     []StuckDart
	nextID    int
}

// NewOccupancy creates an empty occupancy set with the given collision tolerance
func NewOccupancy(tolerance float64) *Occupancy {
	return &Occupancy{
		tolerance: tolerance,
		darts:     make([]StuckDart, 0, 16),
	}
}

// Reset clears the set and seeds it with obstacle angles
func (o *Occupancy) Reset(obstacles []float64) {
	o.darts = o.darts[:0]
	for _, angle := range obstacles {
		o.darts = append(o.darts, StuckDart{ID: o.allocID(), Angle: Wrap(angle), Origin: OriginObstacle})
	}
}

func (o *Occupancy) allocID() int {
	o.nextID++
	return o.nextID
}

// Collides reports whether angle lies strictly within tolerance of any claimed angle.
// A distance of exactly the tolerance does not collide.
func (o *Occupancy) Collides(angle float64) bool {
	for _, d := range o.darts {
		if CircularDistance(d.Angle, angle) < o.tolerance {
			return true
		}
	}
	return false
}

// Claim records a new stuck dart at angle. It refuses (ok=false) when the angle overlaps
// an existing entry, so the set never contains overlapping darts.
func (o *Occupancy) Claim(angle float64, origin Origin) (StuckDart, bool) {
	if o.Collides(angle) {
		return StuckDart{}, false
	}
	dart := StuckDart{ID: o.allocID(), Angle: Wrap(angle), Origin: origin}
	o.darts = append(o.darts, dart)
	return dart, true
}

// Len returns the number of claimed angles, obstacles included
func (o *Occupancy) Len() int {
	return len(o.darts)
}

// Count returns the number of claimed angles with the given origin
func (o *Occupancy) Count(origin Origin) int {
	n := 0
	for _, d := range o.darts {
		if d.Origin == origin {
			n++
		}
	}
	return n
}

// Darts returns a copy of the claimed angles in insertion order
func (o *Occupancy) Darts() []StuckDart {
	out := make([]StuckDart, len(o.darts))
	copy(out, o.darts)
	return out
}

// Angles returns the claimed angles in insertion order
func (o *Occupancy) Angles() []float64 {
	out := make([]float64, len(o.darts))
	for i, d := range o.darts {
		out[i] = d.Angle
	}
	return out
}
