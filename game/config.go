package game

// Config holds host configuration: screen geometry and presentation switches
type Config struct {
	// ScreenWidth is the logical screen width in pixels
	ScreenWidth int

	// ScreenHeight is the logical screen height in pixels
	ScreenHeight int

	// Lang selects the HUD language ("en", "zh-TW")
	Lang string

	// FontPath optionally replaces the built-in bitmap HUD font
	FontPath string

	// Debug starts with the F1 overlay visible
	Debug bool

	// Attract runs an autopilot demo behind the menu
	Attract bool

	// ProfileDir enables FPS-drop profiling into this directory when non-empty
	ProfileDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  480,
		ScreenHeight: 768,
		Lang:         "en",
		Attract:      true,
	}
}

// BoardCentre returns the screen position of the target centre
func (c Config) BoardCentre() (float64, float64) {
	return float64(c.ScreenWidth) / 2, float64(c.ScreenHeight)/3 + 40
}

// LaunchOrigin returns the screen position darts are thrown from, launchDistance below the centre
func (c Config) LaunchOrigin(launchDistance float64) (float64, float64) {
	x, y := c.BoardCentre()
	return x, y + launchDistance
}
