// Package config loads runtime settings from NEONDARTS_* environment variables.
// Command-line flags in the mains override what is read here.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"neondarts/sim"
)

// Settings controls presentation and a small set of gameplay tuning overrides
type Settings struct {
	// ThemePath is an optional theme JSON file; ThemeName selects a built-in theme otherwise
	ThemePath string `env:"NEONDARTS_THEME"`
	ThemeName string `env:"NEONDARTS_THEME_NAME" envDefault:"Taipei Neon"`

	Muted bool   `env:"NEONDARTS_MUTE"`
	Lang  string `env:"NEONDARTS_LANG" envDefault:"en"`

	// FontPath is an optional TrueType/OpenType font for the HUD; needed for zh-TW glyphs
	FontPath string `env:"NEONDARTS_FONT"`

	// Attract lets the autopilot play behind the menu
	Attract bool `env:"NEONDARTS_ATTRACT" envDefault:"true"`

	ScreenWidth  int `env:"NEONDARTS_WIDTH"  envDefault:"480"`
	ScreenHeight int `env:"NEONDARTS_HEIGHT" envDefault:"768"`

	// ProfileDir enables FPS-drop profile capture into the directory when set
	ProfileDir string `env:"NEONDARTS_PROFILE_DIR"`

	Debug bool `env:"NEONDARTS_DEBUG"`

	Tolerance     float64       `env:"NEONDARTS_TOLERANCE"       envDefault:"0.22"`
	ComboWindow   time.Duration `env:"NEONDARTS_COMBO_WINDOW"    envDefault:"1500ms"`
	DartsPerLevel int           `env:"NEONDARTS_DARTS_PER_LEVEL" envDefault:"5"`
	StartingLives int           `env:"NEONDARTS_LIVES"           envDefault:"3"`
}

// Load parses the environment into Settings and validates the result
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the game cannot run with
func (s Settings) Validate() error {
	var errs []error
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight))
	}
	if s.Tolerance <= 0 || s.Tolerance >= 3.14 {
		errs = append(errs, fmt.Errorf("tolerance %.3f out of range (0, π)", s.Tolerance))
	}
	if s.ComboWindow < 0 {
		errs = append(errs, fmt.Errorf("combo window %v must not be negative", s.ComboWindow))
	}
	if s.DartsPerLevel < 1 {
		errs = append(errs, fmt.Errorf("darts per level %d must be at least 1", s.DartsPerLevel))
	}
	if s.StartingLives < 1 {
		errs = append(errs, fmt.Errorf("lives %d must be at least 1", s.StartingLives))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// ApplyTuning returns t with the overridable gameplay constants replaced
func (s Settings) ApplyTuning(t sim.Tuning) sim.Tuning {
	t.CollisionTolerance = s.Tolerance
	t.ComboWindow = s.ComboWindow
	t.DartsPerLevel = s.DartsPerLevel
	t.StartingLives = s.StartingLives
	return t
}
