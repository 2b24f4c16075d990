package audio

import (
	"time"

	"neondarts/sim"
)

// Cue returns the tones announcing a simulation event, or nil for silent events
func Cue(ev sim.Event) []Tone {
	switch ev.Kind {
	case sim.EventLaunched:
		return []Tone{{Freq: 600, Duration: 100 * time.Millisecond, Gain: 0.05}}
	case sim.EventHit:
		// Pitch climbs with the combo multiplier
		return []Tone{{Freq: 150 + float64(ev.Combo)*50, Duration: 100 * time.Millisecond, Gain: 0.1}}
	case sim.EventBonus:
		return []Tone{
			{Freq: 1320, Duration: 60 * time.Millisecond, Gain: 0.08},
			{Freq: 1760, Duration: 80 * time.Millisecond, Gain: 0.08},
		}
	case sim.EventFail:
		return []Tone{{Freq: 110, Duration: 250 * time.Millisecond, Gain: 0.15}}
	case sim.EventLevelComplete:
		return []Tone{
			{Freq: 440, Duration: 90 * time.Millisecond, Gain: 0.1},
			{Freq: 660, Duration: 140 * time.Millisecond, Gain: 0.1},
		}
	case sim.EventGameOver:
		return []Tone{
			{Freq: 220, Duration: 150 * time.Millisecond, Gain: 0.12},
			{Freq: 147, Duration: 300 * time.Millisecond, Gain: 0.12},
		}
	case sim.EventPrizeWon:
		return []Tone{
			{Freq: 523, Duration: 90 * time.Millisecond, Gain: 0.1},
			{Freq: 659, Duration: 90 * time.Millisecond, Gain: 0.1},
			{Freq: 784, Duration: 90 * time.Millisecond, Gain: 0.1},
			{Freq: 1047, Duration: 220 * time.Millisecond, Gain: 0.1},
		}
	default:
		return nil
	}
}

// Announce plays the cue of every event in a batch
func Announce(p Player, events []sim.Event) {
	for _, ev := range events {
		if tones := Cue(ev); len(tones) > 0 {
			p.Play(tones...)
		}
	}
}
