package sim

import (
	"math"
	"time"
)

// State is the round lifecycle state
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateLevelComplete
	StatePrizeWon
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	case StateLevelComplete:
		return "LEVEL_COMPLETE"
	case StatePrizeWon:
		return "PRIZE_WON"
	default:
		return "UNKNOWN"
	}
}

// Crystal is a bonus item fixed to an angle on the target
type Crystal struct {
	ID        int
	Angle     float64
	Collected bool
}

// pendingCompletion is a deferred LEVEL_COMPLETE stamped with the generation that scheduled it
type pendingCompletion struct {
	dueAt      time.Duration
	generation uint64
}

// Round is the simulation context: it sequences levels, tracks lives, darts, score and
// combo, and wires the spinner, occupancy set and resolver together each tick.
// It is not safe for concurrent use; the host drives it from a single frame callback.
type Round struct {
	tuning    Tuning
	rng       Source
	spinner   Spinner
	occupancy *Occupancy
	resolver  *Resolver

	state State
	level int
	lives int
	darts int
	score int
	combo int

	// Time of the previous stick, for the combo window
	lastStickAt time.Duration
	hasStick    bool

	// clock is the simulated time since construction
	clock time.Duration

	// generation is bumped by every reset so stale deferred transitions are ignored
	generation uint64
	pending    *pendingCompletion

	crystals      []Crystal
	nextCrystalID int

	prize    Prize
	hasPrize bool

	// events buffered since the last Tick
	events []Event
}

// NewRound creates a round in the MENU state. A nil spinner selects the standard Motion
// controller driven by rng; a nil rng selects a time-seeded source.
func NewRound(tuning Tuning, rng Source, spinner Spinner) *Round {
	if rng == nil {
		rng = NewSource()
	}
	if spinner == nil {
		spinner = NewMotion(tuning, rng)
	}
	occupancy := NewOccupancy(tuning.CollisionTolerance)
	r := &Round{
		tuning:    tuning,
		rng:       rng,
		spinner:   spinner,
		occupancy: occupancy,
		resolver:  NewResolver(tuning, occupancy, len(Prizes)),
		state:     StateMenu,
		lives:     tuning.StartingLives,
		combo:     1,
	}
	r.setupLevel(1)
	r.events = r.events[:0]
	return r
}

// Start leaves the menu and begins level 1. It is a no-op outside the menu.
func (r *Round) Start() bool {
	if r.state != StateMenu {
		return false
	}
	r.restart()
	return true
}

// Restart begins a fresh run at level 1 with full lives and zero score
func (r *Round) Restart() {
	r.restart()
}

func (r *Round) restart() {
	r.score = 0
	r.lives = r.tuning.StartingLives
	r.hasPrize = false
	r.prize = Prize{}
	r.state = StatePlaying
	r.setupLevel(1)
	r.emit(Event{Kind: EventLevelStarted, Level: 1})
}

// NextLevel enters the prize wheel after the last regular level is complete.
// It is a no-op in any other state.
func (r *Round) NextLevel() bool {
	if r.state != StateLevelComplete {
		return false
	}
	r.state = StatePlaying
	r.setupLevel(r.tuning.TerminalLevel)
	r.emit(Event{Kind: EventLevelStarted, Level: r.level})
	return true
}

// Launch fires a dart. A launch while a dart is in flight, with no darts left, or outside
// PLAYING is dropped, not queued.
func (r *Round) Launch() bool {
	if r.state != StatePlaying || r.darts <= 0 {
		return false
	}
	if _, ok := r.resolver.Launch(); !ok {
		return false
	}
	r.darts--
	r.emit(Event{Kind: EventLaunched, Level: r.level, Ammo: r.darts})
	r.emit(Event{Kind: EventAmmoChanged, Level: r.level, Ammo: r.darts})
	return true
}

// Tick advances the simulation by elapsed and returns the events emitted since the
// previous tick, including those raised by Launch, Start, Restart and NextLevel.
func (r *Round) Tick(elapsed time.Duration) []Event {
	r.clock += elapsed

	if r.state == StatePlaying {
		rotation := r.spinner.Advance(elapsed)

		if impact, ok := r.resolver.Tick(elapsed, rotation); ok {
			r.applyImpact(impact)
		}

		r.checkPendingCompletion()
	}

	events := r.events
	r.events = nil
	return events
}

// applyImpact updates round state for a resolved impact
func (r *Round) applyImpact(impact Impact) {
	switch impact.Kind {
	case ImpactStick:
		r.applyStick(impact)
	case ImpactFailure:
		r.applyFailure(impact)
	case ImpactPrize:
		r.applyPrize(impact)
	}
}

func (r *Round) applyStick(impact Impact) {
	if r.hasStick && r.clock-r.lastStickAt < r.tuning.ComboWindow {
		r.combo++
	} else {
		r.combo = 1
	}
	r.lastStickAt = r.clock
	r.hasStick = true

	points := 1 * r.combo
	r.score += points
	r.emit(Event{Kind: EventHit, Level: r.level, Combo: r.combo, Points: points, Angle: impact.Angle, Ammo: r.darts})

	for i := range r.crystals {
		c := &r.crystals[i]
		if c.Collected || CircularDistance(c.Angle, impact.Angle) >= r.tuning.CollisionTolerance {
			continue
		}
		c.Collected = true
		r.score += r.tuning.CrystalScore
		r.emit(Event{Kind: EventBonus, Level: r.level, Combo: r.combo, Points: r.tuning.CrystalScore, Angle: c.Angle})
	}

	if r.darts == 0 && r.resolver.Active() == nil {
		r.pending = &pendingCompletion{
			dueAt:      r.clock + r.tuning.LevelCompleteDelay,
			generation: r.generation,
		}
	}
}

func (r *Round) applyFailure(impact Impact) {
	r.combo = 1
	r.hasStick = false
	r.lives = max(0, r.lives-1)
	r.emit(Event{Kind: EventFail, Level: r.level, Lives: r.lives, Angle: impact.Angle})

	if r.lives == 0 {
		r.state = StateGameOver
		r.invalidate()
		r.resolver.Reset(r.tuning.Level(r.level))
		r.emit(Event{Kind: EventGameOver, Level: r.level})
		return
	}

	// Non-fatal: silently retry the same level with a fresh layout
	r.setupLevel(r.level)
	r.emit(Event{Kind: EventLevelReset, Level: r.level, Ammo: r.darts, Lives: r.lives})
}

func (r *Round) applyPrize(impact Impact) {
	prize := Prizes[impact.Sector%len(Prizes)]
	r.prize = prize
	r.hasPrize = true
	r.state = StatePrizeWon
	r.invalidate()
	r.emit(Event{Kind: EventPrizeWon, Level: r.level, Angle: impact.Angle, Prize: prize})
}

// checkPendingCompletion honors a deferred LEVEL_COMPLETE only if no reset happened since
// it was scheduled and the level is still exhausted
func (r *Round) checkPendingCompletion() {
	p := r.pending
	if p == nil || r.clock < p.dueAt {
		return
	}
	r.pending = nil
	if p.generation != r.generation || r.darts != 0 || r.resolver.Active() != nil {
		return
	}

	completed := r.level
	r.emit(Event{Kind: EventLevelComplete, Level: completed})

	if completed >= r.tuning.TerminalLevel-1 {
		r.state = StateLevelComplete
		r.invalidate()
		return
	}
	r.setupLevel(completed + 1)
	r.emit(Event{Kind: EventLevelStarted, Level: r.level})
}

// setupLevel resets everything a level owns: obstacles, darts, combo, motion, projectile, crystals
func (r *Round) setupLevel(level int) {
	r.invalidate()

	spec := r.tuning.Level(level)
	r.level = spec.Level
	r.occupancy.Reset(r.tuning.ObstacleAngles(spec))
	r.resolver.Reset(spec)
	r.spinner.Reset(spec)
	r.darts = spec.Darts
	r.combo = 1
	r.hasStick = false
	r.crystals = r.rollCrystals(spec)

	r.emit(Event{Kind: EventAmmoChanged, Level: r.level, Ammo: r.darts})
}

// invalidate drops any deferred transition
func (r *Round) invalidate() {
	r.generation++
	r.pending = nil
}

func (r *Round) rollCrystals(spec LevelSpec) []Crystal {
	if !spec.Crystals {
		return nil
	}
	count := 1 + r.rng.Intn(r.tuning.MaxCrystals)
	crystals := make([]Crystal, count)
	for i := range crystals {
		r.nextCrystalID++
		crystals[i] = Crystal{
			ID:    r.nextCrystalID,
			Angle: r.rng.Float64() * 2 * math.Pi,
		}
	}
	return crystals
}

func (r *Round) emit(ev Event) {
	r.events = append(r.events, ev)
}

// State returns the lifecycle state
func (r *Round) State() State {
	return r.state
}

// Level returns the current level (1..TerminalLevel)
func (r *Round) Level() int {
	return r.level
}

// Lives returns the remaining lives
func (r *Round) Lives() int {
	return r.lives
}

// Score returns the accumulated score
func (r *Round) Score() int {
	return r.score
}

// Darts returns the darts remaining for the current level
func (r *Round) Darts() int {
	return r.darts
}

// Combo returns the multiplier the next stick builds on: 1 once the window has lapsed
func (r *Round) Combo() int {
	if !r.hasStick || r.clock-r.lastStickAt >= r.tuning.ComboWindow {
		return 1
	}
	return r.combo
}

// Prize returns the won prize, if any
func (r *Round) Prize() (Prize, bool) {
	return r.prize, r.hasPrize
}

// Tuning returns the constants the round was built with
func (r *Round) Tuning() Tuning {
	return r.tuning
}
