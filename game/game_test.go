package game

import (
	"math/rand"
	"testing"
	"time"

	"neondarts/audio"
	"neondarts/sim"
	"neondarts/theme"
)

// steadySpinner rotates at a constant velocity per tick
type steadySpinner struct {
	angle    float64
	velocity float64
}

func (s *steadySpinner) Reset(sim.LevelSpec) { s.angle = 0 }

func (s *steadySpinner) Advance(elapsed time.Duration) float64 {
	s.angle += s.velocity * float64(elapsed) / float64(sim.TickDuration)
	return s.angle
}

func (s *steadySpinner) Angle() float64         { return s.angle }
func (s *steadySpinner) Velocity() float64      { return s.velocity }
func (s *steadySpinner) Behavior() sim.Behavior { return sim.BehaviorNormal }

// recordingSound captures played tones
type recordingSound struct {
	muted bool
	plays [][]audio.Tone
}

func (r *recordingSound) Play(tones ...audio.Tone) {
	if r.muted {
		return
	}
	r.plays = append(r.plays, tones)
}

func (r *recordingSound) SetMuted(m bool) { r.muted = m }
func (r *recordingSound) Muted() bool     { return r.muted }

func testTuning() sim.Tuning {
	t := sim.DefaultTuning()
	t.MaxCrystals = 0
	return t
}

func newSteadyRound(tuning sim.Tuning) *sim.Round {
	return sim.NewRound(tuning, rand.New(rand.NewSource(1)), &steadySpinner{velocity: 0.05})
}

// newTestGame builds a game without the ebiten-backed renderer
func newTestGame(attract bool) (*Game, *recordingSound) {
	tuning := testTuning()
	config := DefaultConfig()
	sound := &recordingSound{}
	g := &Game{
		config:    config,
		tuning:    tuning,
		round:     newSteadyRound(tuning),
		autopilot: sim.NewAutopilot(tuning),
		sound:     sound,
		hud:       &HUD{config: config, loc: NewLocalizer("en")},
		effects:   NewEffects(config, theme.Default(), rand.New(rand.NewSource(2))),
		monitor:   newFPSMonitor(),
	}
	if attract {
		g.demo = newSteadyRound(tuning)
	}
	return g, sound
}

// playUntil drives the round with the autopilot until it reaches state
func playUntil(t *testing.T, r *sim.Round, state sim.State) {
	t.Helper()
	a := sim.NewAutopilot(r.Tuning())
	for tick := 0; tick < 20000; tick++ {
		if r.State() == state {
			return
		}
		if a.ShouldLaunch(r.Snapshot()) {
			r.Launch()
		}
		r.Tick(sim.TickDuration)
	}
	t.Fatalf("never reached %v: %+v", state, r.Snapshot())
}

func TestStepStartsAndLaunches(t *testing.T) {
	g, sound := newTestGame(false)

	g.step(Intent{Confirm: true}, sim.TickDuration)
	if g.round.State() != sim.StatePlaying {
		t.Fatalf("state: got=%v want=PLAYING", g.round.State())
	}

	g.step(Intent{Launch: true}, sim.TickDuration)
	if g.round.Darts() != 4 {
		t.Fatalf("darts: got=%d want=4", g.round.Darts())
	}
	// A second launch while the first dart flies is dropped
	g.step(Intent{Launch: true}, sim.TickDuration)
	if g.round.Darts() != 4 {
		t.Fatalf("darts after double launch: got=%d want=4", g.round.Darts())
	}

	for i := 0; i < 20; i++ {
		g.step(Intent{}, sim.TickDuration)
	}
	if g.round.Score() != 1 {
		t.Fatalf("score: got=%d want=1", g.round.Score())
	}

	// Launch tone then stick tone at combo 1
	if len(sound.plays) != 2 {
		t.Fatalf("plays: got=%d want=2", len(sound.plays))
	}
	if got := sound.plays[1][0].Freq; got != 200 {
		t.Fatalf("stick pitch: got=%f want=200", got)
	}
	debris, _, _ := g.effects.Counts()
	if debris == 0 {
		t.Fatalf("stick spawned no particles")
	}
}

func TestStepDispatchesCallbacks(t *testing.T) {
	g, _ := newTestGame(false)
	var started []int
	hits := 0
	g.SetCallbacks(sim.Callbacks{
		OnLevelStarted: func(level int) { started = append(started, level) },
		OnHit:          func(int) { hits++ },
	})

	g.step(Intent{Confirm: true}, sim.TickDuration)
	if len(started) != 1 || started[0] != 1 {
		t.Fatalf("level started: got=%v want=[1]", started)
	}
	g.step(Intent{Launch: true}, sim.TickDuration)
	for i := 0; i < 20; i++ {
		g.step(Intent{}, sim.TickDuration)
	}
	if hits != 1 {
		t.Fatalf("hits: got=%d want=1", hits)
	}
}

func TestToggles(t *testing.T) {
	g, sound := newTestGame(false)

	g.step(Intent{ToggleMute: true}, sim.TickDuration)
	if !sound.Muted() {
		t.Fatalf("mute toggle ignored")
	}
	g.step(Intent{ToggleDebug: true}, sim.TickDuration)
	if !g.debug {
		t.Fatalf("debug toggle ignored")
	}
	before := g.hud.Localizer().Tag().String()
	g.step(Intent{ToggleLang: true}, sim.TickDuration)
	if g.hud.Localizer().Tag().String() == before {
		t.Fatalf("language toggle ignored")
	}
}

func TestAttractModeRunsBehindMenu(t *testing.T) {
	g, sound := newTestGame(true)

	for i := 0; i < 120; i++ {
		g.step(Intent{}, sim.TickDuration)
	}
	if g.round.State() != sim.StateMenu {
		t.Fatalf("player round left the menu: %v", g.round.State())
	}
	if g.demo.State() != sim.StatePlaying {
		t.Fatalf("demo state: got=%v want=PLAYING", g.demo.State())
	}
	if g.demo.Darts() >= testTuning().DartsPerLevel && g.demo.Level() == 1 {
		t.Fatalf("autopilot never launched in the demo")
	}
	if len(sound.plays) != 0 {
		t.Fatalf("demo events reached audio: %d plays", len(sound.plays))
	}

	snap, demo := g.visible()
	if !demo || snap.State != sim.StateMenu {
		t.Fatalf("menu should show the demo round: demo=%v state=%v", demo, snap.State)
	}

	g.step(Intent{Confirm: true}, sim.TickDuration)
	if g.round.State() != sim.StatePlaying {
		t.Fatalf("confirm did not start the game")
	}
	if _, demo := g.visible(); demo {
		t.Fatalf("demo still visible after start")
	}
}

func TestFailShakesBoard(t *testing.T) {
	g, _ := newTestGame(false)
	g.step(Intent{Confirm: true}, sim.TickDuration)

	// Freeze the board so every dart lands on the same angle
	tuning := testTuning()
	g.round = sim.NewRound(tuning, rand.New(rand.NewSource(1)), &steadySpinner{})
	g.round.Start()

	for i := 0; i < 2; i++ {
		g.step(Intent{Launch: true}, sim.TickDuration)
		for j := 0; j < 20; j++ {
			g.step(Intent{}, sim.TickDuration)
			if g.effects.Shake() > 0 {
				break
			}
		}
	}
	if g.round.Lives() != tuning.StartingLives-1 {
		t.Fatalf("lives: got=%d want=%d", g.round.Lives(), tuning.StartingLives-1)
	}
	if g.effects.Shake() <= 0 {
		t.Fatalf("failure did not shake the board")
	}
}
