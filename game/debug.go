package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neondarts/sim"
)

// drawDebug prints motion and effect internals in the lower left corner (F1)
func drawDebug(screen *ebiten.Image, config Config, snap sim.Snapshot, fps float64, fx *Effects) {
	debris, fireworks, sparkles := fx.Counts()
	projectile := "-"
	if snap.Projectile != nil {
		projectile = fmt.Sprintf("%.0f", snap.Projectile.Distance)
	}
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", fps, ebiten.ActualTPS()),
		fmt.Sprintf("state %s  level %d  clock %v", snap.State, snap.Level, snap.Clock.Truncate(1e6)),
		fmt.Sprintf("behavior %s  vel %.4f  heading %.3f", snap.Behavior, snap.Velocity, snap.Heading),
		fmt.Sprintf("occupied %d  crystals %d  projectile %s", len(snap.Occupied), len(snap.Crystals), projectile),
		fmt.Sprintf("fx debris %d  fireworks %d  sparkles %d  shake %.1f", debris, fireworks, sparkles, fx.Shake()),
	}
	y := config.ScreenHeight - 90 - 16*len(lines)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, y+16*i)
	}
}

var (
	predictClear   = color.NRGBA{0, 255, 120, 200}
	predictBlocked = color.NRGBA{255, 40, 40, 200}
)

// drawPrediction marks where a dart launched now would land on the board as it is drawn
// this frame, green when the autopilot would fire and red otherwise
func drawPrediction(screen *ebiten.Image, config Config, pilot *sim.Autopilot, snap sim.Snapshot, fx *Effects) {
	if snap.State != sim.StatePlaying || snap.Terminal {
		return
	}
	scale, _ := fx.Board()
	cx, cy := config.BoardCentre()

	landing := pilot.PredictImpact(snap)
	world := snap.Rotation + landing
	r := snap.Radius * scale
	x := cx + r*math.Cos(world)
	y := cy + r*math.Sin(world)

	clr := predictBlocked
	if pilot.ShouldLaunch(snap) {
		clr = predictClear
	}
	vector.StrokeCircle(screen, float32(x), float32(y), 6, 2, clr, true)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(x), float32(y), 1, clr, true)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.2f", sim.Clearance(landing, snap.Occupied)), int(x)+8, int(y)-8)
}
