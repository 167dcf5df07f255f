// Package palette holds the color presets and the persisted preset choice.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Default is used when nothing valid is saved.
const Default = "Neon Cyan"

// ErrUnknownPreset is returned for names not in Presets.
var ErrUnknownPreset = errors.New("unknown palette preset")

// Colors are the named slots of one preset, as #rrggbb.
type Colors struct {
	Bg           string
	Fg           string
	FgSecondary  string
	Accent       string
	AccentHover  string
	CardBg       string
	Border       string
	Muted        string
	Success      string
	SuccessHover string
}

// Preset is a named palette.
type Preset struct {
	Name   string
	Colors Colors
}

// Presets in menu order.
var Presets = []Preset{
	{Name: "Gruvbox Dark", Colors: Colors{
		Bg: "#282828", Fg: "#ebdbb2", FgSecondary: "#bdae93",
		Accent: "#fabd2f", AccentHover: "#d79921",
		CardBg: "#3c3836", Border: "#504945", Muted: "#7c6f64",
		Success: "#b8bb26", SuccessHover: "#98971a",
	}},
	{Name: "Gruvbox Light", Colors: Colors{
		Bg: "#fbf1c7", Fg: "#3c3836", FgSecondary: "#665c54",
		Accent: "#d79921", AccentHover: "#b57614",
		CardBg: "#f2e5bc", Border: "#d5c4a1", Muted: "#7c6f64",
		Success: "#98971a", SuccessHover: "#79740e",
	}},
	{Name: "Tokyo Night", Colors: Colors{
		Bg: "#1a1b26", Fg: "#c0caf5", FgSecondary: "#9aa5ce",
		Accent: "#7aa2f7", AccentHover: "#5a82d7",
		CardBg: "#24283b", Border: "#414868", Muted: "#565f89",
		Success: "#9ece6a", SuccessHover: "#7ea84a",
	}},
	{Name: "Cyberpunk", Colors: Colors{
		Bg: "#0b0f1a", Fg: "#e6e6e6", FgSecondary: "#b0b0b0",
		Accent: "#ff2a6d", AccentHover: "#df0a4d",
		CardBg: "#1b1f36", Border: "#2b2f46", Muted: "#6b6f86",
		Success: "#05ffa1", SuccessHover: "#00df81",
	}},
	{Name: "Neon Cyan", Colors: Colors{
		Bg: "#07161b", Fg: "#d7f9ff", FgSecondary: "#a0c9d1",
		Accent: "#00f5ff", AccentHover: "#00d5df",
		CardBg: "#0b2a33", Border: "#1b3a43", Muted: "#5b7a83",
		Success: "#00ff9f", SuccessHover: "#00df7f",
	}},
}

// Names returns the preset names in menu order.
func Names() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by exact name.
func Lookup(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve finds a preset ignoring case, for command-line input.
func Resolve(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
}

// IsLight reports whether the preset is meant for a light background.
func (p Preset) IsLight() bool {
	return strings.Contains(p.Name, "Light")
}

// Accent returns a console color for the accent slot.
func (p Preset) Accent() *color.Color {
	return rgb(p.Colors.Accent)
}

// AccentHover returns the darker accent shade.
func (p Preset) AccentHover() *color.Color {
	return rgb(p.Colors.AccentHover)
}

// Success returns a console color for the success slot.
func (p Preset) Success() *color.Color {
	return rgb(p.Colors.Success)
}

func (p Preset) SuccessHover() *color.Color {
	return rgb(p.Colors.SuccessHover)
}

// Muted returns a console color for the muted slot.
func (p Preset) Muted() *color.Color {
	return rgb(p.Colors.Muted)
}

// Swatch renders the main slots as colored blocks.
func (p Preset) Swatch() string {
	slots := []string{p.Colors.Bg, p.Colors.CardBg, p.Colors.Accent, p.Colors.Success, p.Colors.Muted, p.Colors.Fg}
	var b strings.Builder
	for _, hex := range slots {
		r, g, bl, err := parseHex(hex)
		if err != nil {
			continue
		}
		b.WriteString(color.BgRGB(r, g, bl).Sprint("   "))
	}
	return b.String()
}

func rgb(hex string) *color.Color {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return color.New(color.Reset)
	}
	return color.RGB(r, g, b)
}

// parseHex reads "#rrggbb".
func parseHex(hex string) (int, int, int, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}
