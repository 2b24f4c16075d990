package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neondarts/sim"
	"neondarts/theme"
)

const (
	boardSegments = 20

	// Dart geometry, measured back from the tip
	needleLength = 27.0
	barrelLength = 35.0
	flightLength = 25.0
	flightSpan   = 11.0
	barrelWidth  = 6.0
)

// Renderer draws the board, the darts and the effects layer
type Renderer struct {
	config Config
	theme  theme.Theme
	tuning sim.Tuning
	face   text.Face

	// whiteSub is a 1x1 white source for DrawTriangles
	whiteSub *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a new renderer
func NewRenderer(config Config, th theme.Theme, tuning sim.Tuning, face text.Face) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		config:   config,
		theme:    th,
		tuning:   tuning,
		face:     face,
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// boardView is the screen transform of the target for one frame
type boardView struct {
	cx, cy   float64
	rotation float64
	radius   float64
	scale    float64
	alpha    float64
}

// point returns the screen position of a target-local angle at dist from the centre
func (b boardView) point(localAngle, dist float64) (float64, float64) {
	a := b.rotation + localAngle
	return b.cx + math.Cos(a)*dist*b.scale, b.cy + math.Sin(a)*dist*b.scale
}

// Render draws one frame of the snapshot
func (r *Renderer) Render(screen *ebiten.Image, snap sim.Snapshot, fx *Effects) {
	screen.Fill(r.theme.Background)
	fx.DrawBackground(screen)

	cx, cy := r.config.BoardCentre()
	sx, sy := fx.ShakeOffset()
	scale, alpha := fx.Board()
	view := boardView{
		cx:       cx + sx,
		cy:       cy + sy,
		rotation: snap.Rotation,
		radius:   snap.Radius,
		scale:    scale,
		alpha:    alpha,
	}

	if snap.Terminal {
		r.drawPrizeWheel(screen, view)
	} else {
		r.drawBoard(screen, view)
	}
	r.drawCrystals(screen, view, snap.Crystals)
	for _, d := range snap.Occupied {
		r.drawStuckDart(screen, view, d)
	}

	// The dart in flight and the waiting dart ignore shake and intro scale
	if p := snap.Projectile; p != nil {
		r.drawDart(screen, cx, cy+p.Distance-r.tuning.DartHalfLength, 0, -1, 1, r.theme.DartFlight)
	} else if snap.State == sim.StatePlaying && snap.Darts > 0 {
		ox, oy := r.config.LaunchOrigin(r.tuning.LaunchDistance)
		r.drawDart(screen, ox, oy-r.tuning.DartHalfLength, 0, -1, 1, r.theme.DartFlight)
	}

	fx.DrawForeground(screen)
}

// drawBoard draws the striped target with its accent ring
func (r *Renderer) drawBoard(screen *ebiten.Image, v boardView) {
	dark := theme.Blend(r.theme.Target, color.NRGBA{A: 0xff}, 0.6)
	width := 2 * math.Pi / boardSegments
	for i := 0; i < boardSegments; i++ {
		c := r.theme.Target
		if i%2 == 1 {
			c = dark
		}
		start := float64(i)*width - math.Pi/2 - width/2
		r.fillSector(screen, v, start, start+width, theme.WithAlpha(c, v.alpha))
	}
	vector.StrokeCircle(screen, float32(v.cx), float32(v.cy), float32((v.radius+5)*v.scale), 3,
		theme.WithAlpha(r.theme.Accent, v.alpha), true)
}

// drawPrizeWheel draws one coloured sector per prize. Sector i covers target-local
// angles [i*w, (i+1)*w), the same mapping the resolver uses.
func (r *Renderer) drawPrizeWheel(screen *ebiten.Image, v boardView) {
	n := len(sim.Prizes)
	width := 2 * math.Pi / float64(n)
	for i, prize := range sim.Prizes {
		start := float64(i) * width
		c := theme.PrizeColors[i%len(theme.PrizeColors)]
		r.fillSector(screen, v, start, start+width, theme.WithAlpha(c, v.alpha))

		lx, ly := v.point(start+width/2, v.radius*0.65)
		drawText(screen, r.face, prize.Name, lx, ly-6, 1, text.AlignCenter,
			theme.WithAlpha(color.NRGBA{0x06, 0x01, 0x0a, 0xff}, v.alpha))
	}
	vector.StrokeCircle(screen, float32(v.cx), float32(v.cy), float32((v.radius+5)*v.scale), 3,
		theme.WithAlpha(color.NRGBA{0xff, 0xff, 0xff, 0xff}, v.alpha), true)
}

// fillSector fills a pie slice between two target-local angles
func (r *Renderer) fillSector(screen *ebiten.Image, v boardView, start, end float64, c color.NRGBA) {
	const steps = 12
	pts := make([][2]float64, 0, steps+2)
	pts = append(pts, [2]float64{v.cx, v.cy})
	for s := 0; s <= steps; s++ {
		a := start + (end-start)*float64(s)/steps
		x, y := v.point(a, v.radius)
		pts = append(pts, [2]float64{x, y})
	}
	r.fillPolygon(screen, pts, c)
}

// drawCrystals draws uncollected crystals as diamonds inside the rim
func (r *Renderer) drawCrystals(screen *ebiten.Image, v boardView, crystals []sim.Crystal) {
	for _, c := range crystals {
		if c.Collected {
			continue
		}
		x, y := v.point(c.Angle, v.radius*0.78)
		size := 8 * v.scale
		r.fillPolygon(screen, [][2]float64{
			{x, y - size}, {x + size*0.7, y}, {x, y + size}, {x - size*0.7, y},
		}, theme.WithAlpha(r.theme.Accent, v.alpha))
	}
}

// drawStuckDart draws a dart embedded at a target-local angle, tip pointing at the centre
func (r *Renderer) drawStuckDart(screen *ebiten.Image, v boardView, d sim.StuckDart) {
	tipX, tipY := v.point(d.Angle, v.radius-15)
	a := v.rotation + d.Angle
	flight := r.theme.DartFlight
	if d.Origin == sim.OriginObstacle {
		flight = theme.Blend(flight, r.theme.DartBarrel, 0.5)
	}
	r.drawDart(screen, tipX, tipY, -math.Cos(a), -math.Sin(a), v.scale, theme.WithAlpha(flight, v.alpha))
}

// drawDart draws a dart whose tip is at (tipX, tipY) pointing along (dirX, dirY)
func (r *Renderer) drawDart(screen *ebiten.Image, tipX, tipY, dirX, dirY, scale float64, flight color.NRGBA) {
	at := func(back, side float64) (float64, float64) {
		// Perpendicular is (-dirY, dirX)
		return tipX - dirX*back*scale - dirY*side*scale, tipY - dirY*back*scale + dirX*side*scale
	}

	alpha := float64(flight.A) / 255
	needle := theme.WithAlpha(color.NRGBA{0xf1, 0xf5, 0xf9, 0xff}, alpha)
	barrel := theme.WithAlpha(r.theme.DartBarrel, alpha)

	nx, ny := at(needleLength, 0)
	vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(nx), float32(ny), float32(1.5*scale), needle, true)

	bx, by := at(needleLength+barrelLength, 0)
	vector.StrokeLine(screen, float32(nx), float32(ny), float32(bx), float32(by), float32(barrelWidth*scale), barrel, true)

	back := needleLength + barrelLength
	lx, ly := at(back+flightLength, flightSpan)
	mx, my := at(back+flightLength*0.7, 0)
	rx, ry := at(back+flightLength, -flightSpan)
	r.fillPolygon(screen, [][2]float64{{bx, by}, {lx, ly}, {mx, my}, {rx, ry}}, flight)
}

// fillPolygon fills a polygon that is star-shaped around its first vertex
func (r *Renderer) fillPolygon(screen *ebiten.Image, pts [][2]float64, c color.NRGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	cr := float32(c.R) / 255
	cg := float32(c.G) / 255
	cb := float32(c.B) / 255
	ca := float32(c.A) / 255

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, p := range pts {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		r.indices = append(r.indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(r.vertices, r.indices, r.whiteSub, op)
}
