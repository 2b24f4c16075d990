// Command autoplay runs headless games driven by the autopilot and reports how far each got.
// Tuning overrides come from the same NEONDARTS_* variables as the game.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"neondarts/config"
	"neondarts/sim"
)

// Outcome summarizes one headless game
type Outcome struct {
	Seed     int64
	Level    int
	Score    int
	Failures int
	Ticks    int

	// Ended is false when the tick budget ran out first
	Ended bool
	Prize sim.Prize
	Won   bool
}

// play runs one game to GAME_OVER or PRIZE_WON, advancing past LEVEL_COMPLETE on its own
func play(tuning sim.Tuning, seed int64, maxTicks int) Outcome {
	r := sim.NewRound(tuning, rand.New(rand.NewSource(seed)), nil)
	pilot := sim.NewAutopilot(tuning)
	r.Start()

	out := Outcome{Seed: seed}
	for out.Ticks < maxTicks {
		switch r.State() {
		case sim.StateLevelComplete:
			r.NextLevel()
		case sim.StateGameOver, sim.StatePrizeWon:
			out.Ended = true
		}
		if out.Ended {
			break
		}

		if pilot.ShouldLaunch(r.Snapshot()) {
			r.Launch()
		}
		for _, ev := range r.Tick(sim.TickDuration) {
			switch ev.Kind {
			case sim.EventFail:
				out.Failures++
			case sim.EventPrizeWon:
				out.Prize, out.Won = ev.Prize, true
			}
		}
		out.Ticks++
	}

	out.Level = r.Level()
	out.Score = r.Score()
	return out
}

// run plays games consecutive seeds starting at seed
func run(tuning sim.Tuning, games int, seed int64, maxTicks int) []Outcome {
	outcomes := make([]Outcome, 0, games)
	for i := 0; i < games; i++ {
		outcomes = append(outcomes, play(tuning, seed+int64(i), maxTicks))
	}
	return outcomes
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func main() {
	games := flag.Int("games", envInt("AUTOPLAY_GAMES", 10), "Number of games to play (or set AUTOPLAY_GAMES)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed of the first game")
	maxMinutes := flag.Int("max-minutes", 10, "Simulated time budget per game")
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	tuning := settings.ApplyTuning(sim.DefaultTuning())
	maxTicks := int(time.Duration(*maxMinutes) * time.Minute / sim.TickDuration)

	log.Printf("Autoplay: %d games from seed %d, GOMAXPROCS=%d", *games, *seed, runtime.GOMAXPROCS(0))
	start := time.Now()

	won, totalScore := 0, 0
	for _, o := range run(tuning, *games, *seed, maxTicks) {
		totalScore += o.Score
		switch {
		case o.Won:
			won++
			log.Printf("seed=%d prize=%q score=%d failures=%d time=%v",
				o.Seed, o.Prize.Name, o.Score, o.Failures, time.Duration(o.Ticks)*sim.TickDuration)
		case o.Ended:
			log.Printf("seed=%d game over at level %d score=%d", o.Seed, o.Level, o.Score)
		default:
			log.Printf("seed=%d stalled at level %d after %d ticks", o.Seed, o.Level, o.Ticks)
		}
	}

	if *games > 0 {
		log.Printf("Won %d/%d, mean score %.1f, took %v",
			won, *games, float64(totalScore)/float64(*games), time.Since(start).Round(time.Millisecond))
	}
}
