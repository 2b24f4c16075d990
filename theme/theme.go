// Package theme holds the colour palette used by the renderer. Themes carry no gameplay
// meaning; a missing or malformed theme falls back to the built-in default.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
)

// Theme is a named colour palette
type Theme struct {
	Name        string
	Description string

	Background color.NRGBA
	Target     color.NRGBA
	DartFlight color.NRGBA
	DartBarrel color.NRGBA
	Accent     color.NRGBA
}

// Default returns the built-in "Taipei Neon" theme
func Default() Theme {
	return Theme{
		Name:        "Taipei Neon",
		Description: "Inspired by the glowing energy of Shilin Night Market.",
		Background:  mustHex("#06010a"),
		Target:      mustHex("#1a082b"),
		DartFlight:  mustHex("#ff0080"),
		DartBarrel:  mustHex("#e2e8f0"),
		Accent:      mustHex("#00f7ff"),
	}
}

// RetroPub returns the classic pub alternative theme
func RetroPub() Theme {
	return Theme{
		Name:        "Retro Pub",
		Description: "Classic pub style.",
		Background:  mustHex("#1e1b4b"),
		Target:      mustHex("#0f172a"),
		DartFlight:  mustHex("#f43f5e"),
		DartBarrel:  mustHex("#94a3b8"),
		Accent:      mustHex("#22c55e"),
	}
}

// Builtin returns a built-in theme by name, or false
func Builtin(name string) (Theme, bool) {
	for _, t := range []Theme{Default(), RetroPub()} {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// PrizeColors are the prize wheel sector colours, in sector order
var PrizeColors = []color.NRGBA{
	mustHex("#ff00ff"),
	mustHex("#00ffff"),
	mustHex("#ffff00"),
	mustHex("#ff4d00"),
	mustHex("#00ff00"),
}

// colorFields maps JSON keys to theme fields
var colorFields = []struct {
	key string
	get func(*Theme) *color.NRGBA
}{
	{"backgroundColor", func(t *Theme) *color.NRGBA { return &t.Background }},
	{"targetColor", func(t *Theme) *color.NRGBA { return &t.Target }},
	{"knifeHandleColor", func(t *Theme) *color.NRGBA { return &t.DartFlight }},
	{"knifeBladeColor", func(t *Theme) *color.NRGBA { return &t.DartBarrel }},
	{"accentColor", func(t *Theme) *color.NRGBA { return &t.Accent }},
}

// Parse reads a theme document. Every field that is missing or invalid keeps the default
// value; the returned error lists those fields but the returned theme is always usable.
func Parse(data []byte) (Theme, error) {
	t := Default()
	if !gjson.ValidBytes(data) {
		return t, errors.New("theme: malformed JSON")
	}

	var errs []error
	if name := gjson.GetBytes(data, "name"); name.Type == gjson.String && name.String() != "" {
		t.Name = name.String()
	}
	if desc := gjson.GetBytes(data, "description"); desc.Type == gjson.String {
		t.Description = desc.String()
	}
	for _, f := range colorFields {
		v := gjson.GetBytes(data, f.key)
		if !v.Exists() {
			errs = append(errs, fmt.Errorf("theme: missing %s", f.key))
			continue
		}
		c, err := Hex(v.String())
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: %s: %w", f.key, err))
			continue
		}
		*f.get(&t) = c
	}
	return t, errors.Join(errs...)
}

// Load reads and parses a theme file, falling back to the default on any failure
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Hex parses a #rrggbb colour
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend mixes two colours in Lab space; t=0 returns a, t=1 returns b.
// Alpha is interpolated linearly.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	t = max(0, min(1, t))
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// WithAlpha returns c with its alpha scaled by k (0..1)
func WithAlpha(c color.NRGBA, k float64) color.NRGBA {
	k = max(0, min(1, k))
	c.A = uint8(float64(c.A)*k + 0.5)
	return c
}
