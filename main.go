package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"neondarts/audio"
	"neondarts/config"
	"neondarts/game"
	"neondarts/sim"
	"neondarts/theme"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	// Flags default to the environment and override it when given
	themePath := flag.String("theme", settings.ThemePath, "Theme JSON file (or set NEONDARTS_THEME)")
	themeName := flag.String("theme-name", settings.ThemeName, "Built-in theme: \"Taipei Neon\" or \"Retro Pub\"")
	muted := flag.Bool("mute", settings.Muted, "Start with sound muted")
	lang := flag.String("lang", settings.Lang, "HUD language: en or zh-TW")
	font := flag.String("font", settings.FontPath, "TrueType/OpenType font for the HUD")
	attract := flag.Bool("attract", settings.Attract, "Let the autopilot play behind the menu")
	profileDir := flag.String("profile", settings.ProfileDir, "Capture CPU profiles into this directory on FPS drops")
	debug := flag.Bool("debug", settings.Debug, "Start with the debug overlay visible")
	flag.Parse()

	th := loadTheme(*themePath, *themeName)
	tuning := settings.ApplyTuning(sim.DefaultTuning())

	notifier := audio.NewNotifier(*muted)
	defer notifier.Close()
	if !notifier.Available() {
		log.Println("Audio device unavailable, running silent")
	}

	cfg := game.DefaultConfig()
	cfg.ScreenWidth = settings.ScreenWidth
	cfg.ScreenHeight = settings.ScreenHeight
	cfg.Lang = *lang
	cfg.FontPath = *font
	cfg.Attract = *attract
	cfg.ProfileDir = *profileDir
	cfg.Debug = *debug

	g := game.NewGame(cfg, tuning, th, notifier)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Neon Darts")
	ebiten.SetWindowResizable(true)

	log.Printf("Starting Neon Darts: theme=%q lang=%s attract=%v", th.Name, cfg.Lang, cfg.Attract)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadTheme prefers a theme file, then a built-in by name, then the default
func loadTheme(path, name string) theme.Theme {
	if path != "" {
		th, err := theme.Load(path)
		if err != nil {
			log.Printf("Theme %s not fully applied: %v", path, err)
		}
		return th
	}
	th, ok := theme.Builtin(name)
	if !ok {
		th = theme.Default()
		log.Printf("Unknown theme %q, using %q", name, th.Name)
	}
	return th
}
