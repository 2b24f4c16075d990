package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"neondarts/audio"
	"neondarts/sim"
	"neondarts/theme"
)

// maxFrameDelta caps the time one Update may advance the simulation
const maxFrameDelta = 100 * time.Millisecond

// Sound is the audio surface the game drives; *audio.Notifier implements it
type Sound interface {
	audio.Player
	SetMuted(muted bool)
	Muted() bool
}

// Game hosts a round inside ebiten: it samples input, ticks the simulation once per
// Update and fans the resulting events out to audio, effects and callbacks.
type Game struct {
	config Config
	tuning sim.Tuning

	round     *sim.Round
	callbacks sim.Callbacks

	// demo is the attract-mode round played by the autopilot behind the menu
	demo      *sim.Round
	autopilot *sim.Autopilot

	input    InputProvider
	sound    Sound
	renderer *Renderer
	hud      *HUD
	effects  *Effects

	debug    bool
	monitor  *fpsMonitor
	profiler *Profiler

	bonusPoints int
	bonusFlash  float64
	quote       string

	lastUpdateTime time.Time
}

// NewGame creates a new game instance. sound may be nil.
func NewGame(config Config, tuning sim.Tuning, th theme.Theme, sound Sound) *Game {
	face, err := LoadFace(config.FontPath)
	if err != nil {
		log.Printf("HUD font unavailable, using built-in face: %v", err)
		face, _ = LoadFace("")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		config:         config,
		tuning:         tuning,
		round:          sim.NewRound(tuning, nil, nil),
		autopilot:      sim.NewAutopilot(tuning),
		input:          NewDeviceInput(),
		sound:          sound,
		renderer:       NewRenderer(config, th, tuning, face),
		hud:            NewHUD(config, th, face, NewLocalizer(config.Lang)),
		effects:        NewEffects(config, th, rng),
		debug:          config.Debug,
		monitor:        newFPSMonitor(),
		quote:          quotes[rng.Intn(len(quotes))],
		lastUpdateTime: time.Now(),
	}
	g.callbacks = g.lifecycleLog()

	if config.Attract {
		g.demo = sim.NewRound(tuning, nil, nil)
	}
	if config.ProfileDir != "" {
		if g.profiler, err = NewProfiler(config.ProfileDir); err != nil {
			log.Printf("Profiling disabled: %v", err)
		}
	}
	return g
}

// SetCallbacks replaces the lifecycle callbacks
func (g *Game) SetCallbacks(c sim.Callbacks) {
	g.callbacks = c
}

// Round returns the player's round
func (g *Game) Round() *sim.Round {
	return g.round
}

// lifecycleLog returns the default callbacks, which log round transitions
func (g *Game) lifecycleLog() sim.Callbacks {
	return sim.Callbacks{
		OnLevelStarted: func(level int) {
			log.Printf("Level %d started (score %d, lives %d)", level, g.round.Score(), g.round.Lives())
		},
		OnLevelComplete: func(level int) {
			log.Printf("Level %d complete (score %d)", level, g.round.Score())
		},
		OnGameOver: func() {
			log.Printf("Game over at level %d with score %d", g.round.Level(), g.round.Score())
		},
		OnPrizeWon: func(p sim.Prize) {
			log.Printf("Prize won: %s (score %d)", p.Name, g.round.Score())
		},
	}
}

// Update advances the game by the wall-clock time since the previous call
func (g *Game) Update() error {
	now := time.Now()
	delta := now.Sub(g.lastUpdateTime)
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	g.step(g.input.Poll(), delta)
	return nil
}

// step applies one frame of input and advances everything by delta
func (g *Game) step(in Intent, delta time.Duration) {
	if in.ToggleDebug {
		g.debug = !g.debug
	}
	if in.ToggleMute && g.sound != nil {
		g.sound.SetMuted(!g.sound.Muted())
	}
	if in.ToggleLang {
		g.hud.SetLocalizer(g.hud.Localizer().Next())
	}

	if g.monitor.observe(delta) && g.profiler != nil {
		reason := fmt.Sprintf("fps%.0f-level%d", g.monitor.FPS(), g.round.Level())
		if err := g.profiler.CaptureProfile(reason); err == nil {
			log.Printf("FPS drop detected (%.0f FPS), capturing profile", g.monitor.FPS())
		}
	}

	wasMenu := g.round.State() == sim.StateMenu
	applyIntent(g.round, in)
	if wasMenu && g.round.State() != sim.StateMenu {
		// Drop whatever the demo left on screen
		g.effects.Clear()
	}

	events := g.round.Tick(delta)
	g.dispatch(events, true)

	if g.demo != nil && g.round.State() == sim.StateMenu {
		g.stepDemo(delta)
	}

	g.effects.Update(delta)
	g.bonusFlash = max(0, g.bonusFlash-delta.Seconds())
}

// stepDemo lets the autopilot play the attract round, looping forever
func (g *Game) stepDemo(delta time.Duration) {
	switch g.demo.State() {
	case sim.StateMenu:
		g.demo.Start()
	case sim.StateLevelComplete:
		g.demo.NextLevel()
	case sim.StateGameOver, sim.StatePrizeWon:
		g.demo.Restart()
	}
	if g.autopilot.ShouldLaunch(g.demo.Snapshot()) {
		g.demo.Launch()
	}
	g.dispatch(g.demo.Tick(delta), false)
}

// dispatch fans a batch of events out to effects, and for the player's round to
// audio and callbacks as well
func (g *Game) dispatch(events []sim.Event, player bool) {
	if len(events) == 0 {
		return
	}
	radius := g.round.Snapshot().Radius
	if !player {
		radius = g.demo.Snapshot().Radius
	}
	for _, ev := range events {
		g.effects.Observe(ev, radius)
		if ev.Kind == sim.EventBonus && player {
			g.bonusPoints = ev.Points
			g.bonusFlash = 1.2
		}
	}
	if !player {
		return
	}
	if g.sound != nil {
		audio.Announce(g.sound, events)
	}
	g.callbacks.Dispatch(events)
}

// visible returns the round to draw: the demo while the menu is up
func (g *Game) visible() (sim.Snapshot, bool) {
	if g.demo != nil && g.round.State() == sim.StateMenu {
		snap := g.demo.Snapshot()
		snap.State = sim.StateMenu
		return snap, true
	}
	return g.round.Snapshot(), false
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	snap, demo := g.visible()
	g.renderer.Render(screen, snap, g.effects)

	muted := g.sound != nil && g.sound.Muted()
	g.hud.Draw(screen, snap, HUDState{
		Muted:       muted,
		Demo:        demo,
		MaxLives:    g.tuning.StartingLives,
		Levels:      g.tuning.TerminalLevel - 1,
		BonusPoints: g.bonusPoints,
		BonusFlash:  g.bonusFlash,
		Quote:       g.quote,
	})

	if g.debug {
		drawDebug(screen, g.config, snap, g.monitor.FPS(), g.effects)
		drawPrediction(screen, g.config, g.autopilot, snap, g.effects)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
