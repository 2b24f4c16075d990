package sim

// EventKind identifies a domain event emitted by the round machine
type EventKind int

const (
	// EventLaunched fires when a dart leaves the origin
	EventLaunched EventKind = iota

	// EventAmmoChanged carries the new darts-remaining count
	EventAmmoChanged

	// EventHit is a successful stick carrying the combo multiplier and points scored
	EventHit

	// EventBonus is a crystal collected by a stick
	EventBonus

	// EventFail is an impact on an occupied angle
	EventFail

	// EventLevelReset follows a non-fatal failure; the same level restarts
	EventLevelReset

	// EventLevelStarted fires on entering a new level
	EventLevelStarted

	// EventLevelComplete fires when every dart of a level has stuck
	EventLevelComplete

	// EventGameOver fires once, when the last life is lost
	EventGameOver

	// EventPrizeWon carries the prize of a terminal-mode impact
	EventPrizeWon
)

// String returns the event kind name
func (k EventKind) String() string {
	switch k {
	case EventLaunched:
		return "launched"
	case EventAmmoChanged:
		return "ammo_changed"
	case EventHit:
		return "hit"
	case EventBonus:
		return "bonus"
	case EventFail:
		return "fail"
	case EventLevelReset:
		return "level_reset"
	case EventLevelStarted:
		return "level_started"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	case EventPrizeWon:
		return "prize_won"
	default:
		return "unknown"
	}
}

// Event is a domain event. Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Level int

	// Combo and Points are set for hits and bonuses
	Combo  int
	Points int

	// Ammo is the darts-remaining count after the event
	Ammo int

	// Lives is the remaining lives after a failure
	Lives int

	// Angle is the impact angle on the target, for hits, bonuses, failures and prizes
	Angle float64

	Prize Prize
}

// Callbacks is the notification surface for hosts that prefer callbacks over the event list.
// Nil funcs are skipped.
type Callbacks struct {
	OnHit           func(combo int)
	OnBonus         func(points int)
	OnFail          func()
	OnLevelComplete func(level int)
	OnLevelStarted  func(level int)
	OnGameOver      func()
	OnPrizeWon      func(prize Prize)
	OnAmmoChanged   func(count int)
}

// Dispatch invokes the callbacks for a batch of events, in order
func (c Callbacks) Dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventHit:
			if c.OnHit != nil {
				c.OnHit(ev.Combo)
			}
		case EventBonus:
			if c.OnBonus != nil {
				c.OnBonus(ev.Points)
			}
		case EventFail:
			if c.OnFail != nil {
				c.OnFail()
			}
		case EventLevelComplete:
			if c.OnLevelComplete != nil {
				c.OnLevelComplete(ev.Level)
			}
		case EventLevelStarted:
			if c.OnLevelStarted != nil {
				c.OnLevelStarted(ev.Level)
			}
		case EventGameOver:
			if c.OnGameOver != nil {
				c.OnGameOver()
			}
		case EventPrizeWon:
			if c.OnPrizeWon != nil {
				c.OnPrizeWon(ev.Prize)
			}
		case EventAmmoChanged:
			if c.OnAmmoChanged != nil {
				c.OnAmmoChanged(ev.Ammo)
			}
		}
	}
}
