package game

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"neondarts/sim"
	"neondarts/theme"
)

// LoadFace returns the HUD font. An empty path selects the built-in bitmap face,
// which only covers ASCII.
func LoadFace(path string) (text.Face, error) {
	if path == "" {
		return text.NewGoXFace(basicfont.Face7x13), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: 14}, nil
}

// drawText draws s with its top edge at y, aligned horizontally around x
func drawText(screen *ebiten.Image, face text.Face, s string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

// HUDState is host-side information shown alongside the snapshot
type HUDState struct {
	Muted bool
	Demo  bool

	// MaxLives is the number of life icons, filled or not
	MaxLives int

	// Levels is the number of levels before the prize wheel
	Levels int

	// BonusPoints is shown while BonusFlash is positive
	BonusPoints int
	BonusFlash  float64

	Quote string
}

// HUD draws the overlay text and status icons
type HUD struct {
	config Config
	theme  theme.Theme
	face   text.Face
	loc    *Localizer
}

// NewHUD creates a new HUD
func NewHUD(config Config, th theme.Theme, face text.Face, loc *Localizer) *HUD {
	return &HUD{config: config, theme: th, face: face, loc: loc}
}

// SetLocalizer switches the HUD language
func (h *HUD) SetLocalizer(loc *Localizer) {
	h.loc = loc
}

// Localizer returns the active localizer
func (h *HUD) Localizer() *Localizer {
	return h.loc
}

// Draw renders the HUD for the snapshot
func (h *HUD) Draw(screen *ebiten.Image, snap sim.Snapshot, st HUDState) {
	w := float64(h.config.ScreenWidth)
	hgt := float64(h.config.ScreenHeight)
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	accent := h.theme.Accent

	if snap.State != sim.StateMenu || st.Demo {
		h.drawStatus(screen, snap, st)
	}

	switch snap.State {
	case sim.StateMenu:
		h.panel(screen, hgt*0.62, 150)
		drawText(screen, h.face, h.loc.Sprintf(msgTitle), w/2, hgt*0.62+14, 3, text.AlignCenter, accent)
		drawText(screen, h.face, h.loc.Sprintf(msgStart), w/2, hgt*0.62+64, 1, text.AlignCenter, white)
		drawText(screen, h.face, h.loc.Sprintf(msgHowTo), w/2, hgt*0.62+86, 1, text.AlignCenter, white)
		if st.Quote != "" {
			drawText(screen, h.face, h.loc.Sprintf(st.Quote), w/2, hgt*0.62+118, 1, text.AlignCenter,
				theme.WithAlpha(white, 0.6))
		}
	case sim.StatePlaying:
		if snap.Combo > 1 {
			drawText(screen, h.face, h.loc.Sprintf(msgCombo, snap.Combo), w/2, hgt-60, 2, text.AlignCenter, h.theme.DartFlight)
		}
		if st.BonusFlash > 0 {
			drawText(screen, h.face, h.loc.Sprintf(msgBonus, st.BonusPoints), w/2, hgt-90, 2, text.AlignCenter,
				theme.WithAlpha(accent, min(1, st.BonusFlash)))
		}
	case sim.StateLevelComplete:
		h.panel(screen, hgt*0.62, 110)
		drawText(screen, h.face, h.loc.Sprintf(msgSectorClear), w/2, hgt*0.62+16, 3, text.AlignCenter, accent)
		drawText(screen, h.face, h.loc.Sprintf(msgTotalScore, snap.Score), w/2, hgt*0.62+62, 1, text.AlignCenter, white)
		drawText(screen, h.face, h.loc.Sprintf(msgAccessPrize), w/2, hgt*0.62+84, 1, text.AlignCenter, white)
	case sim.StateGameOver:
		h.panel(screen, hgt*0.62, 110)
		drawText(screen, h.face, h.loc.Sprintf(msgGameOver), w/2, hgt*0.62+16, 3, text.AlignCenter,
			color.NRGBA{0xf4, 0x3f, 0x5e, 0xff})
		drawText(screen, h.face, h.loc.Sprintf(msgTotalScore, snap.Score), w/2, hgt*0.62+62, 1, text.AlignCenter, white)
		drawText(screen, h.face, h.loc.Sprintf(msgReboot), w/2, hgt*0.62+84, 1, text.AlignCenter, white)
	case sim.StatePrizeWon:
		h.panel(screen, hgt*0.62, 130)
		c := theme.PrizeColors[snap.Prize.ID%len(theme.PrizeColors)]
		drawText(screen, h.face, h.loc.Sprintf(msgRewardWon), w/2, hgt*0.62+16, 2, text.AlignCenter, white)
		drawText(screen, h.face, snap.Prize.Name, w/2, hgt*0.62+48, 3, text.AlignCenter, c)
		drawText(screen, h.face, h.loc.Sprintf(msgTotalScore, snap.Score), w/2, hgt*0.62+92, 1, text.AlignCenter, white)
		drawText(screen, h.face, h.loc.Sprintf(msgNewCycle), w/2, hgt*0.62+110, 1, text.AlignCenter, white)
	}
}

// drawStatus draws score, level, lives and darts remaining
func (h *HUD) drawStatus(screen *ebiten.Image, snap sim.Snapshot, st HUDState) {
	w := float64(h.config.ScreenWidth)
	hgt := float64(h.config.ScreenHeight)
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}

	drawText(screen, h.face, h.loc.Sprintf(msgScore, snap.Score), 16, 16, 2, text.AlignStart, white)
	level := h.loc.Sprintf(msgSector, snap.Level, st.Levels)
	if snap.Terminal {
		level = h.loc.Sprintf(msgPrizeWheel)
	}
	drawText(screen, h.face, level, 16, 46, 1, text.AlignStart, h.theme.Accent)

	if st.Demo {
		drawText(screen, h.face, h.loc.Sprintf(msgDemo), w-16, 46, 1, text.AlignEnd, h.theme.Accent)
	}
	if st.Muted {
		drawText(screen, h.face, h.loc.Sprintf(msgMuted), w-16, hgt-24, 1, text.AlignEnd, theme.WithAlpha(white, 0.5))
	}

	// Lives, right aligned
	starting := max(snap.Lives, st.MaxLives)
	for i := 0; i < starting; i++ {
		c := color.NRGBA{0x1e, 0x29, 0x3b, 0xff}
		if i < snap.Lives {
			c = color.NRGBA{0xf4, 0x3f, 0x5e, 0xff}
		}
		x := w - 24 - float64(starting-1-i)*22
		vector.DrawFilledCircle(screen, float32(x), 26, 8, c, true)
	}

	// Darts remaining, bottom left
	for i := 0; i < snap.Darts; i++ {
		x := float32(20 + i*12)
		vector.StrokeLine(screen, x, float32(hgt-20), x, float32(hgt-48), 4, h.theme.DartBarrel, true)
		vector.DrawFilledCircle(screen, x, float32(hgt-50), 4, h.theme.DartFlight, true)
	}
}

// panel dims a horizontal band behind overlay text
func (h *HUD) panel(screen *ebiten.Image, y, height float64) {
	vector.DrawFilledRect(screen, 0, float32(y), float32(h.config.ScreenWidth), float32(height),
		color.NRGBA{0, 0, 0, 0xa0}, true)
}
