package game

import (
	"math/rand"
	"testing"
	"time"

	"neondarts/sim"
	"neondarts/theme"
)

func newTestEffects() *Effects {
	return NewEffects(DefaultConfig(), theme.Default(), rand.New(rand.NewSource(7)))
}

func TestShakeDecays(t *testing.T) {
	fx := newTestEffects()
	fx.Observe(sim.Event{Kind: sim.EventFail}, 95)
	if fx.Shake() != failShake {
		t.Fatalf("shake: got=%f want=%f", fx.Shake(), failShake)
	}

	fx.Update(sim.TickDuration)
	if fx.Shake() != failShake-shakeDecay {
		t.Fatalf("after one tick: got=%f want=%f", fx.Shake(), failShake-shakeDecay)
	}
	for i := 0; i < 19; i++ {
		fx.Update(sim.TickDuration)
	}
	if fx.Shake() != 0 {
		t.Fatalf("shake not spent after 20 ticks: %f", fx.Shake())
	}
	if x, y := fx.ShakeOffset(); x != 0 || y != 0 {
		t.Fatalf("offset without shake: %f,%f", x, y)
	}
}

func TestSparklesCapped(t *testing.T) {
	fx := newTestEffects()
	for i := 0; i < 200; i++ {
		fx.Update(sim.TickDuration)
	}
	if _, _, sparkles := fx.Counts(); sparkles != maxSparkles {
		t.Fatalf("sparkles: got=%d want=%d", sparkles, maxSparkles)
	}
}

func TestFireworksOnInterval(t *testing.T) {
	fx := newTestEffects()
	fx.Update(fireworkInterval)
	if _, fireworks, _ := fx.Counts(); fireworks != 0 {
		t.Fatalf("firework before the interval elapsed: %d", fireworks)
	}
	fx.Update(sim.TickDuration)
	if _, fireworks, _ := fx.Counts(); fireworks < 40 || fireworks > 80 {
		t.Fatalf("firework size: got=%d want 40..80", fireworks)
	}
}

func TestBoardIntro(t *testing.T) {
	fx := newTestEffects()
	fx.Observe(sim.Event{Kind: sim.EventLevelStarted, Level: 2}, 95)
	scale, alpha := fx.Board()
	if scale != 0.8 || alpha != 0 {
		t.Fatalf("intro start: scale=%f alpha=%f", scale, alpha)
	}
	for i := 0; i < 60; i++ {
		fx.Update(sim.TickDuration)
	}
	scale, alpha = fx.Board()
	if alpha != 1 || scale < 0.999 {
		t.Fatalf("intro end: scale=%f alpha=%f", scale, alpha)
	}
}

func TestImpactDebrisExpires(t *testing.T) {
	fx := newTestEffects()
	fx.Observe(sim.Event{Kind: sim.EventHit, Combo: 1}, 95)
	if debris, _, _ := fx.Counts(); debris != impactParticles {
		t.Fatalf("debris: got=%d want=%d", debris, impactParticles)
	}
	fx.Update(2 * time.Second)
	if debris, _, _ := fx.Counts(); debris != 0 {
		t.Fatalf("debris outlived its fade: %d", debris)
	}
}

func TestClearDropsBursts(t *testing.T) {
	fx := newTestEffects()
	fx.Observe(sim.Event{Kind: sim.EventPrizeWon, Prize: sim.Prizes[2]}, 155)
	fx.Observe(sim.Event{Kind: sim.EventFail}, 155)
	fx.Clear()
	debris, fireworks, _ := fx.Counts()
	if debris != 0 || fireworks != 0 || fx.Shake() != 0 {
		t.Fatalf("clear left debris=%d fireworks=%d shake=%f", debris, fireworks, fx.Shake())
	}
}
