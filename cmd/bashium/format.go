package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lvim-tech/bashium/pkg/config"
	"github.com/lvim-tech/bashium/pkg/hardware"
	"github.com/lvim-tech/bashium/pkg/modules"
	"github.com/lvim-tech/bashium/pkg/palette"
)

const (
	entryHardware = config.MenuEntryHardware
	entryPalette  = config.MenuEntryPalette
	entryBack     = "← Back"

	activeMark = "* "
)

func menuLabel(m modules.Module) string {
	name := m.Name
	if !m.Enabled {
		name += " (not available)"
	}
	if summary := m.Summary(); summary != "" {
		return name + " - " + summary
	}
	return name
}

func hardwareLines(facts hardware.Facts) []string {
	var lines []string
	for _, row := range facts.Summary() {
		lines = append(lines, row[0]+": "+row[1])
	}
	return lines
}

func paletteLabel(name, active string) string {
	if name == active {
		return activeMark + name
	}
	return strings.Repeat(" ", len(activeMark)) + name
}

func paletteFromLabel(label string) string {
	return strings.TrimSpace(strings.TrimPrefix(label, activeMark))
}

// consoleTint holds the colors used for CLI output. Light presets are made
// for a pale background, so their darker hover shades are used instead.
type consoleTint struct {
	label, ready, forced, muted *color.Color
}

func tintFor(p palette.Preset) consoleTint {
	if p.IsLight() {
		return consoleTint{label: p.AccentHover(), ready: p.SuccessHover(), forced: p.AccentHover(), muted: p.Muted()}
	}
	return consoleTint{label: p.Accent(), ready: p.Success(), forced: p.Accent(), muted: p.Muted()}
}

// printFacts writes the hardware summary with tinted labels.
func printFacts(w io.Writer, facts hardware.Facts, p palette.Preset) {
	tint := tintFor(p)
	for _, row := range facts.Summary() {
		fmt.Fprintf(w, "%s %s\n", tint.label.Sprintf("%-12s", row[0]), row[1])
	}
}

// printModules writes one line per module with its status and script path.
func printModules(w io.Writer, mods []modules.Module, p palette.Preset) {
	width := 0
	for _, m := range mods {
		width = max(width, len(m.Name))
	}

	tint := tintFor(p)
	for _, m := range mods {
		status := fmt.Sprintf("%-8s", m.Status())
		switch m.Status() {
		case "ready":
			status = tint.ready.Sprint(status)
		case "forced":
			status = tint.forced.Sprint(status)
		default:
			status = tint.muted.Sprint(status)
		}
		fmt.Fprintf(w, "%s %-*s  %s\n", status, width, m.Name, m.Summary())
		fmt.Fprintf(w, "%s %-*s  %s\n", strings.Repeat(" ", 8), width, "", tint.muted.Sprint(m.Path))
	}
}
