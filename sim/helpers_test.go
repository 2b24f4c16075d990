package sim

import (
	"math"
	"testing"
	"time"
)

// scriptedSource replays fixed values and falls back to zero once exhausted
type scriptedSource struct {
	ints   []int
	floats []float64
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	s.calls++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// stubSpinner rotates at a constant velocity; tests set angle directly to aim
type stubSpinner struct {
	angle    float64
	velocity float64
	spec     LevelSpec
	resets   int
}

func (s *stubSpinner) Reset(spec LevelSpec) {
	s.spec = spec
	s.angle = 0
	s.resets++
}

func (s *stubSpinner) Advance(elapsed time.Duration) float64 {
	s.angle += s.velocity * elapsed.Seconds() * 60
	return s.angle
}

func (s *stubSpinner) Angle() float64     { return s.angle }
func (s *stubSpinner) Velocity() float64  { return s.velocity }
func (s *stubSpinner) Behavior() Behavior { return BehaviorNormal }

// testTuning is the stock tuning without random crystals
func testTuning() Tuning {
	t := DefaultTuning()
	t.MaxCrystals = 0
	return t
}

func newTestRound(t *testing.T) (*Round, *stubSpinner) {
	t.Helper()
	sp := &stubSpinner{}
	r := NewRound(testTuning(), &scriptedSource{}, sp)
	if !r.Start() {
		t.Fatalf("start rejected")
	}
	r.Tick(0)
	return r, sp
}

// throwAt launches a dart that lands on impact and ticks until it resolves
func throwAt(t *testing.T, r *Round, sp *stubSpinner, impact float64) []Event {
	t.Helper()
	sp.angle = math.Pi/2 - impact
	if !r.Launch() {
		t.Fatalf("launch rejected: state=%v darts=%d", r.State(), r.Darts())
	}
	var events []Event
	for i := 0; i < 60; i++ {
		events = append(events, r.Tick(TickDuration)...)
		if r.resolver.Active() == nil {
			return events
		}
	}
	t.Fatalf("dart never resolved")
	return nil
}

// idle ticks the round for at least d
func idle(r *Round, d time.Duration) []Event {
	var events []Event
	for elapsed := time.Duration(0); elapsed < d; elapsed += TickDuration {
		events = append(events, r.Tick(TickDuration)...)
	}
	return events
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
