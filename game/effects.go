package game

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neondarts/sim"
	"neondarts/theme"
)

const (
	maxSparkles      = 30
	fireworkInterval = 1200 * time.Millisecond
	failShake        = 10.0
	shakeDecay       = 0.5 // per tick
	impactParticles  = 15
)

// fireworkColors is the palette for ambient fireworks
var fireworkColors = []color.NRGBA{
	{0xff, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0xff, 0x4d, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
	{0xff, 0x80, 0xbf, 0xff},
	{0xff, 0xaa, 0x00, 0xff},
}

// sparkleColors tint the drifting background sparkles
var sparkleColors = []color.NRGBA{
	{0xff, 0xff, 0xff, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
}

// Particle is a cosmetic point with a linear fade. Positions are screen pixels,
// velocities are pixels per tick.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Life    float64 // 1 when spawned, removed at 0
	Decay   float64 // life lost per tick
	Size    float64
	Color   color.NRGBA
	Sparkle bool
}

func (p *Particle) step(ticks float64) {
	p.X += p.VX * ticks
	p.Y += p.VY * ticks
	p.VY += p.Gravity * ticks
	p.Life -= p.Decay * ticks
}

// Effects owns everything that moves on screen but has no gameplay meaning.
// It reacts to simulation events and never writes back into the simulation.
type Effects struct {
	rng *rand.Rand

	width, height float64
	centreX       float64
	centreY       float64

	particles []Particle
	fireworks []Particle
	sparkles  []Particle

	shake float64

	// Board intro: scale eases from 0.8 to 1, alpha ramps from 0 to 1
	boardScale float64
	boardAlpha float64

	sinceFirework time.Duration

	flightColor color.NRGBA
	accentColor color.NRGBA
}

// NewEffects creates the effects layer for the given screen geometry and palette
func NewEffects(config Config, th theme.Theme, rng *rand.Rand) *Effects {
	cx, cy := config.BoardCentre()
	return &Effects{
		rng:         rng,
		width:       float64(config.ScreenWidth),
		height:      float64(config.ScreenHeight),
		centreX:     cx,
		centreY:     cy,
		boardScale:  0.8,
		flightColor: th.DartFlight,
		accentColor: th.Accent,
	}
}

// Observe reacts to one simulation event. Impacts always happen at the bottom of the
// board, directly above the launch origin.
func (e *Effects) Observe(ev sim.Event, radius float64) {
	impactX, impactY := e.centreX, e.centreY+radius

	switch ev.Kind {
	case sim.EventHit:
		e.burst(impactX, impactY, e.flightColor, impactParticles)
	case sim.EventBonus:
		e.burst(impactX, impactY, e.accentColor, impactParticles*2)
	case sim.EventFail:
		e.shake = failShake
		e.burst(impactX, impactY, color.NRGBA{0xf4, 0x3f, 0x5e, 0xff}, impactParticles)
	case sim.EventLevelStarted, sim.EventLevelReset:
		e.Intro()
	case sim.EventLevelComplete:
		e.explode(e.centreX, e.centreY, e.accentColor)
	case sim.EventPrizeWon:
		c := theme.PrizeColors[ev.Prize.ID%len(theme.PrizeColors)]
		e.explode(e.centreX, e.centreY, c)
		e.explode(e.centreX-e.width/4, e.centreY-radius, c)
		e.explode(e.centreX+e.width/4, e.centreY-radius, c)
	}
}

// Clear drops impact debris and fireworks, stops the shake and replays the intro
func (e *Effects) Clear() {
	e.particles = e.particles[:0]
	e.fireworks = e.fireworks[:0]
	e.shake = 0
	e.Intro()
}

// Intro restarts the board intro animation
func (e *Effects) Intro() {
	e.boardScale = 0.8
	e.boardAlpha = 0
}

// Update advances every effect by elapsed time
func (e *Effects) Update(elapsed time.Duration) {
	ticks := float64(elapsed) / float64(sim.TickDuration)
	if ticks <= 0 {
		return
	}

	e.shake = max(0, e.shake-shakeDecay*ticks)
	e.boardAlpha = min(1, e.boardAlpha+0.05*ticks)
	if e.boardScale < 1 {
		e.boardScale += (1 - e.boardScale) * (1 - math.Pow(0.85, ticks))
	}

	if len(e.sparkles) < maxSparkles {
		e.sparkles = append(e.sparkles, Particle{
			X:     e.rng.Float64() * e.width,
			Y:     e.rng.Float64() * e.height,
			VX:    (e.rng.Float64() - 0.5) * 0.4,
			VY:    (e.rng.Float64()-0.5)*0.4 - 0.1,
			Life:  1,
			Decay: 0.004,
			Size:  e.rng.Float64() * 1.5,
			Color: sparkleColors[e.rng.Intn(len(sparkleColors))],
		})
	}

	e.sinceFirework += elapsed
	if e.sinceFirework > fireworkInterval {
		e.sinceFirework = 0
		e.explode(e.rng.Float64()*e.width, e.rng.Float64()*e.height*0.4,
			fireworkColors[e.rng.Intn(len(fireworkColors))])
	}

	e.particles = stepParticles(e.particles, ticks)
	e.fireworks = stepParticles(e.fireworks, ticks)
	e.sparkles = stepParticles(e.sparkles, ticks)
}

// stepParticles advances and compacts a particle slice in place
func stepParticles(ps []Particle, ticks float64) []Particle {
	alive := ps[:0]
	for i := range ps {
		ps[i].step(ticks)
		if ps[i].Life > 0 {
			alive = append(alive, ps[i])
		}
	}
	return alive
}

// burst spawns impact debris
func (e *Effects) burst(x, y float64, c color.NRGBA, count int) {
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := e.rng.Float64()*5 + 2
		e.particles = append(e.particles, Particle{
			X: x, Y: y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Decay: 0.03,
			Size:  e.rng.Float64()*3 + 1,
			Color: c,
		})
	}
}

// explode spawns a firework of 40-80 particles
func (e *Effects) explode(x, y float64, c color.NRGBA) {
	count := 40 + e.rng.Intn(41)
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := e.rng.Float64()*6 + 2
		e.fireworks = append(e.fireworks, Particle{
			X: x, Y: y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Gravity: 0.04,
			Life:    1,
			Decay:   0.005 + e.rng.Float64()*0.01,
			Size:    e.rng.Float64()*3 + 1,
			Color:   c,
			Sparkle: e.rng.Float64() > 0.7,
		})
	}
}

// ShakeOffset returns a random board offset proportional to the remaining shake
func (e *Effects) ShakeOffset() (float64, float64) {
	if e.shake <= 0 {
		return 0, 0
	}
	return (e.rng.Float64() - 0.5) * e.shake * 4, (e.rng.Float64() - 0.5) * e.shake * 4
}

// Board returns the intro scale and alpha for the target
func (e *Effects) Board() (scale, alpha float64) {
	return e.boardScale, e.boardAlpha
}

// Shake returns the remaining shake magnitude
func (e *Effects) Shake() float64 {
	return e.shake
}

// Counts returns live particle counts: impact debris, fireworks, sparkles
func (e *Effects) Counts() (int, int, int) {
	return len(e.particles), len(e.fireworks), len(e.sparkles)
}

// DrawBackground draws sparkles and fireworks behind the board
func (e *Effects) DrawBackground(screen *ebiten.Image) {
	for _, s := range e.sparkles {
		drawParticle(screen, s, s.Life*0.4, false)
	}
	for _, f := range e.fireworks {
		white := f.Sparkle && e.rng.Float64() > 0.8
		drawParticle(screen, f, f.Life, white)
	}
}

// DrawForeground draws impact debris over the board
func (e *Effects) DrawForeground(screen *ebiten.Image) {
	for _, p := range e.particles {
		drawParticle(screen, p, p.Life, false)
	}
}

func drawParticle(screen *ebiten.Image, p Particle, alpha float64, white bool) {
	if p.Size <= 0 {
		return
	}
	c := p.Color
	if white {
		c = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	} else {
		// Fading particles wash out toward white
		c = theme.Blend(color.NRGBA{0xff, 0xff, 0xff, 0xff}, c, math.Min(1, alpha*1.5))
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), theme.WithAlpha(c, alpha), true)
}
