package main

import (
	"testing"

	"neondarts/sim"
)

func TestRunIsDeterministic(t *testing.T) {
	tuning := sim.DefaultTuning()
	a := run(tuning, 3, 42, 20000)
	b := run(tuning, 3, 42, 20000)
	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("outcomes: got=%d,%d want=3", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("game %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestOutcomesAreConsistent(t *testing.T) {
	tuning := sim.DefaultTuning()
	for _, o := range run(tuning, 5, 7, 20000) {
		if o.Level < 1 || o.Level > tuning.TerminalLevel {
			t.Fatalf("seed %d: level %d out of range", o.Seed, o.Level)
		}
		if o.Failures > tuning.StartingLives {
			t.Fatalf("seed %d: %d failures with %d lives", o.Seed, o.Failures, tuning.StartingLives)
		}
		if o.Won && o.Level != tuning.TerminalLevel {
			t.Fatalf("seed %d: prize won at level %d", o.Seed, o.Level)
		}
		if o.Ended && !o.Won && o.Failures != tuning.StartingLives {
			t.Fatalf("seed %d: game over after %d failures", o.Seed, o.Failures)
		}
	}
}

func TestBudgetStopsPlay(t *testing.T) {
	o := play(sim.DefaultTuning(), 1, 10)
	if o.Ended || o.Ticks != 10 {
		t.Fatalf("budget ignored: %+v", o)
	}
}
