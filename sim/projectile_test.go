package sim

import (
	"math"
	"testing"
)

func newTestResolver(level int, obstacles ...float64) (*Resolver, *Occupancy) {
	tuning := DefaultTuning()
	o := NewOccupancy(tuning.CollisionTolerance)
	o.Reset(obstacles)
	r := NewResolver(tuning, o, len(Prizes))
	r.Reset(tuning.Level(level))
	return r, o
}

// fly ticks the resolver until impact, returning the impact and the tick count
func fly(t *testing.T, r *Resolver, rotation float64) (Impact, int) {
	t.Helper()
	for i := 1; i <= 100; i++ {
		if impact, ok := r.Tick(TickDuration, rotation); ok {
			return impact, i
		}
	}
	t.Fatalf("no impact after 100 ticks")
	return Impact{}, 0
}

func TestResolverSingleProjectile(t *testing.T) {
	r, _ := newTestResolver(1)
	if _, ok := r.Launch(); !ok {
		t.Fatalf("first launch rejected")
	}
	if _, ok := r.Launch(); ok {
		t.Fatalf("second launch accepted while in flight")
	}
	fly(t, r, 0)
	if r.Active() != nil {
		t.Fatalf("projectile not cleared after impact")
	}
	if _, ok := r.Launch(); !ok {
		t.Fatalf("launch after impact rejected")
	}
}

func TestResolverImpactFiresOnThresholdCrossing(t *testing.T) {
	r, _ := newTestResolver(1)
	p, _ := r.Launch()
	_, ticks := fly(t, r, 0)
	// 352 - 32k - 35 <= 95 first holds at k = 7
	if ticks != 7 {
		t.Fatalf("impact tick: got=%d want=7", ticks)
	}
	if p.State != ProjectileResolved {
		t.Fatalf("projectile state: got=%v want=resolved", p.State)
	}
	if _, ok := r.Tick(TickDuration, 0); ok {
		t.Fatalf("impact resolved twice")
	}
}

func TestResolverStickAndFailure(t *testing.T) {
	r, o := newTestResolver(2, 1.0)

	r.Launch()
	impact, _ := fly(t, r, math.Pi/2-1.1)
	if impact.Kind != ImpactFailure {
		t.Fatalf("near obstacle: got=%v want=FAILURE", impact.Kind)
	}
	if o.Len() != 1 {
		t.Fatalf("failure must not claim: len=%d", o.Len())
	}

	r.Launch()
	impact, _ = fly(t, r, math.Pi/2-2.0)
	if impact.Kind != ImpactStick {
		t.Fatalf("clear angle: got=%v want=STICK", impact.Kind)
	}
	if !approx(impact.Angle, 2.0, 1e-9) || !approx(impact.Dart.Angle, 2.0, 1e-9) {
		t.Fatalf("stick angle: got=%f", impact.Angle)
	}
	if o.Len() != 2 {
		t.Fatalf("stick must claim: len=%d", o.Len())
	}
}

func TestResolverPrizeSectors(t *testing.T) {
	cases := []struct {
		angle  float64
		sector int
	}{
		{0.1, 0},
		{1.3, 1},
		{2.6, 2},
		{4.0, 3},
		{6.2, 4},
	}
	for _, c := range cases {
		r, o := newTestResolver(6)
		r.Launch()
		impact, _ := fly(t, r, math.Pi/2-c.angle)
		if impact.Kind != ImpactPrize {
			t.Fatalf("angle=%f: got=%v want=PRIZE_WON", c.angle, impact.Kind)
		}
		if impact.Sector != c.sector {
			t.Fatalf("angle=%f: sector got=%d want=%d", c.angle, impact.Sector, c.sector)
		}
		if o.Len() != 0 {
			t.Fatalf("prize impact claimed an angle")
		}
	}
}

func TestSectorIndexMatchesFormula(t *testing.T) {
	n := len(Prizes)
	for a := 0.0; a < 2*math.Pi; a += 0.01 {
		want := int(math.Floor(a/(2*math.Pi/float64(n)))) % n
		if got := SectorIndex(a, n); got != want {
			t.Fatalf("angle=%f: got=%d want=%d", a, got, want)
		}
	}
}

func TestResolverResetDropsProjectile(t *testing.T) {
	r, _ := newTestResolver(1)
	r.Launch()
	r.Tick(TickDuration, 0)
	r.Reset(DefaultTuning().Level(2))
	if r.Active() != nil {
		t.Fatalf("reset kept the projectile")
	}
}
