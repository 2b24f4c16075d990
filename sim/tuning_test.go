package sim

import (
	"math"
	"testing"
)

func TestLevelTable(t *testing.T) {
	tuning := DefaultTuning()
	cases := []struct {
		level     int
		darts     int
		obstacles int
		terminal  bool
		radius    float64
	}{
		{1, 5, 0, false, 95},
		{2, 5, 2, false, 95},
		{3, 5, 3, false, 95},
		{4, 5, 4, false, 95},
		{5, 5, 4, false, 95},
		{6, 1, 0, true, 155},
	}
	for _, c := range cases {
		spec := tuning.Level(c.level)
		if spec.Darts != c.darts || spec.Obstacles != c.obstacles || spec.Terminal != c.terminal || spec.Radius != c.radius {
			t.Fatalf("level %d: got=%+v", c.level, spec)
		}
		if !c.terminal {
			want := 0.04 + float64(c.level)*0.012
			if !approx(spec.BaseSpeed, want, 1e-12) {
				t.Fatalf("level %d base speed: got=%f want=%f", c.level, spec.BaseSpeed, want)
			}
		}
	}
}

func TestLevelClampsOutOfRange(t *testing.T) {
	tuning := DefaultTuning()
	if got := tuning.Level(0).Level; got != 1 {
		t.Fatalf("level 0 clamped to %d", got)
	}
	if got := tuning.Level(9).Level; got != 6 {
		t.Fatalf("level 9 clamped to %d", got)
	}
}

func TestObstacleAnglesEvenlySpaced(t *testing.T) {
	tuning := DefaultTuning()
	angles := tuning.ObstacleAngles(tuning.Level(3))
	if len(angles) != 3 {
		t.Fatalf("count: got=%d want=3", len(angles))
	}
	for i, a := range angles {
		want := 2*math.Pi*float64(i)/3 + 0.5
		if !approx(a, want, 1e-12) {
			t.Fatalf("obstacle %d: got=%f want=%f", i, a, want)
		}
	}
	if got := tuning.ObstacleAngles(tuning.Level(1)); got != nil {
		t.Fatalf("level 1 has obstacles: %v", got)
	}
}
