package config

import (
	"testing"
	"time"

	"neondarts/sim"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ThemeName != "Taipei Neon" || s.Lang != "en" {
		t.Fatalf("defaults: %+v", s)
	}
	if s.ScreenWidth != 480 || s.ScreenHeight != 768 {
		t.Fatalf("screen: got=%dx%d want=480x768", s.ScreenWidth, s.ScreenHeight)
	}

	// Stock settings must leave the stock tuning untouched
	def := sim.DefaultTuning()
	if got := s.ApplyTuning(def); got != def {
		t.Fatalf("default settings changed tuning: got=%+v", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NEONDARTS_MUTE", "true")
	t.Setenv("NEONDARTS_LANG", "zh-TW")
	t.Setenv("NEONDARTS_TOLERANCE", "0.3")
	t.Setenv("NEONDARTS_COMBO_WINDOW", "2s")
	t.Setenv("NEONDARTS_DARTS_PER_LEVEL", "7")

	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !s.Muted || s.Lang != "zh-TW" {
		t.Fatalf("overrides: %+v", s)
	}
	tuning := s.ApplyTuning(sim.DefaultTuning())
	if tuning.CollisionTolerance != 0.3 {
		t.Fatalf("tolerance: got=%v want=0.3", tuning.CollisionTolerance)
	}
	if tuning.ComboWindow != 2*time.Second {
		t.Fatalf("combo window: got=%v want=2s", tuning.ComboWindow)
	}
	if tuning.DartsPerLevel != 7 {
		t.Fatalf("darts: got=%d want=7", tuning.DartsPerLevel)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	t.Setenv("NEONDARTS_WIDTH", "wide")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("NEONDARTS_DARTS_PER_LEVEL", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for zero darts")
	}
}
