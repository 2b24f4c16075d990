package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neondarts/sim"
)

// Intent is the set of player requests sampled for one frame.
// Each field is an edge: it is true only on the frame the key or touch went down.
type Intent struct {
	Launch  bool
	Confirm bool
	Restart bool

	ToggleDebug bool
	ToggleMute  bool
	ToggleLang  bool
}

// InputProvider samples player requests once per Update
type InputProvider interface {
	Poll() Intent
}

// DeviceInput reads keyboard, mouse and touch through ebiten
type DeviceInput struct {
	touches []ebiten.TouchID
}

// NewDeviceInput creates a new device input provider
func NewDeviceInput() *DeviceInput {
	return &DeviceInput{
		touches: make([]ebiten.TouchID, 0, 4),
	}
}

// Poll returns the intents for this frame. Space, left click and a new touch all launch.
func (d *DeviceInput) Poll() Intent {
	d.touches = inpututil.AppendJustPressedTouchIDs(d.touches[:0])

	return Intent{
		Launch: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(d.touches) > 0,
		Confirm:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
		ToggleMute:  inpututil.IsKeyJustPressed(ebiten.KeyM),
		ToggleLang:  inpututil.IsKeyJustPressed(ebiten.KeyL),
	}
}

// applyIntent forwards the gameplay part of an intent to the round.
// Launch is single-slot: the round ignores it while a dart is in flight or none remain.
// Confirm advances whatever screen is showing; Restart works outside the menu.
func applyIntent(round *sim.Round, in Intent) {
	switch round.State() {
	case sim.StateMenu:
		if in.Confirm || in.Launch {
			round.Start()
		}
	case sim.StatePlaying:
		if in.Launch {
			round.Launch()
		}
		if in.Restart {
			round.Restart()
		}
	case sim.StateLevelComplete:
		if in.Confirm {
			round.NextLevel()
		} else if in.Restart {
			round.Restart()
		}
	case sim.StateGameOver, sim.StatePrizeWon:
		if in.Confirm || in.Restart {
			round.Restart()
		}
	}
}
