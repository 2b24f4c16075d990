package audio

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the speaker sample rate
const SampleRate = beep.SampleRate(44100)

// Tone describes one synthesized beep
type Tone struct {
	Freq     float64
	Duration time.Duration
	Gain     float64
}

// Player is anything that can sound a tone. Notifier is the speaker-backed implementation.
type Player interface {
	Play(tones ...Tone)
}

// Notifier plays short synthesized tones through the system speaker.
// Playback is fire-and-forget: nothing is ever read back, and when no output device is
// available the notifier stays silent.
type Notifier struct {
	ready atomic.Bool
	muted atomic.Bool
}

// NewNotifier initializes the speaker. Initialization failure is not an error for the
// caller; it is logged and the notifier degrades to silence. A muted notifier still opens
// the device so it can be unmuted later.
func NewNotifier(muted bool) *Notifier {
	n := &Notifier{}
	n.muted.Store(muted)
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return n
	}
	n.ready.Store(true)
	return n
}

// SetMuted toggles sound output
func (n *Notifier) SetMuted(muted bool) {
	n.muted.Store(muted)
}

// Muted reports whether output is muted
func (n *Notifier) Muted() bool {
	return n.muted.Load()
}

// Available reports whether a speaker was opened
func (n *Notifier) Available() bool {
	return n.ready.Load()
}

// Play queues the tones one after another on the speaker and returns immediately
func (n *Notifier) Play(tones ...Tone) {
	if !n.ready.Load() || n.muted.Load() || len(tones) == 0 {
		return
	}
	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		s, err := synth(t)
		if err != nil {
			log.Printf("Audio tone %.0fHz skipped: %v", t.Freq, err)
			continue
		}
		streamers = append(streamers, s)
	}
	if len(streamers) == 0 {
		return
	}
	speaker.Play(beep.Seq(streamers...))
}

// Close releases the speaker
func (n *Notifier) Close() {
	if n.ready.Swap(false) {
		speaker.Close()
	}
}

// synth renders a tone as a decaying sine
func synth(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	total := SampleRate.N(t.Duration)
	shaped := &decay{Streamer: beep.Take(total, sine), total: total}
	return &effects.Gain{Streamer: shaped, Gain: t.Gain - 1}, nil
}

// decay fades the tone out so it ends without a click
type decay struct {
	beep.Streamer
	total int
	pos   int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		// Quadratic fade from 1 down to 0.01 across the tone
		k := 1.0
		if d.total > 0 {
			k = 1 - 0.9*float64(d.pos)/float64(d.total)
		}
		samples[i][0] *= k * k
		samples[i][1] *= k * k
		d.pos++
	}
	return n, ok
}
