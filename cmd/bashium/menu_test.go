package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lvim-tech/bashium/pkg/config"
	"github.com/lvim-tech/bashium/pkg/hardware"
	"github.com/lvim-tech/bashium/pkg/launcher"
	"github.com/lvim-tech/bashium/pkg/log"
	"github.com/lvim-tech/bashium/pkg/modules"
	"github.com/lvim-tech/bashium/pkg/palette"
)

// scriptedMenu answers Show calls from a fixed list; an empty answer cancels.
type scriptedMenu struct {
	answers []string
	prompts []string
	shown   [][]string
}

func (m *scriptedMenu) Name() string { return "scripted" }

func (m *scriptedMenu) Show(options []string, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	m.shown = append(m.shown, options)
	if len(m.answers) == 0 {
		return "", launcher.ErrCancelled
	}
	answer := m.answers[0]
	m.answers = m.answers[1:]
	if answer == "" {
		return "", launcher.ErrCancelled
	}
	return answer, nil
}

type recordedNotifier struct {
	infos  []string
	errors []string
}

func (n *recordedNotifier) Notify(title, message string) {
	n.infos = append(n.infos, title+": "+message)
}

func (n *recordedNotifier) Error(title, message string) {
	n.errors = append(n.errors, title+": "+message)
}

func newTestSession(t *testing.T, answers ...string) (*menuSession, *scriptedMenu, *recordedNotifier, *[]string) {
	t.Helper()

	cfg := &config.Config{
		Modules: []config.ModuleConfig{
			{Name: "Configuration", Path: "configuration", Description: "Base setup"},
			{Name: "NVIDIA", Path: "configuration/nvidia.sh", Description: "Drivers", Requires: config.RequiresNVIDIA},
		},
	}
	catalog, err := modules.Build(cfg, hardware.Facts{}, "/srv/bashium")
	if err != nil {
		t.Fatal(err)
	}

	menu := &scriptedMenu{answers: answers}
	notes := &recordedNotifier{}
	var launched []string

	s := &menuSession{
		menu:     menu,
		catalog:  catalog,
		confirm:  true,
		palettes: palette.NewStore(t.TempDir()),
		notifier: notes,
		logger:   log.Nop(),
		launch: func(m modules.Module) error {
			launched = append(launched, m.Name)
			return nil
		},
	}
	return s, menu, notes, &launched
}

func TestMenu_ConfirmAndLaunch(t *testing.T) {
	s, menu, notes, launched := newTestSession(t, "Configuration - Base setup", "Yes")

	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(*launched) != 1 || (*launched)[0] != "Configuration" {
		t.Errorf("launched = %v", *launched)
	}
	if menu.prompts[1] != "Run Configuration?" {
		t.Errorf("confirm prompt = %q", menu.prompts[1])
	}
	if len(notes.infos) != 1 || !strings.Contains(notes.infos[0], "Started Configuration") {
		t.Errorf("infos = %v", notes.infos)
	}
}

func TestMenu_DeclineReturnsToMenu(t *testing.T) {
	s, menu, _, launched := newTestSession(t, "Configuration - Base setup", "No")

	if err := s.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(*launched) != 0 {
		t.Errorf("launched = %v, want nothing", *launched)
	}
	// top menu, confirm, top menu again (cancelled)
	if len(menu.prompts) != 3 {
		t.Errorf("prompts = %v", menu.prompts)
	}
}

func TestMenu_NoConfirm(t *testing.T) {
	s, menu, _, launched := newTestSession(t, "Configuration - Base setup")
	s.confirm = false

	if err := s.run(); err != nil {
		t.Fatal(err)
	}
	if len(*launched) != 1 || len(menu.prompts) != 1 {
		t.Errorf("launched = %v, prompts = %v", *launched, menu.prompts)
	}
}

func TestMenu_DisabledModuleIsRefused(t *testing.T) {
	s, menu, notes, launched := newTestSession(t)
	first, _ := s.catalog.Find("NVIDIA")
	menu.answers = []string{menuLabel(first)}

	if err := s.run(); err != nil {
		t.Fatal(err)
	}
	if len(*launched) != 0 {
		t.Errorf("launched = %v", *launched)
	}
	if len(notes.errors) != 1 || !strings.Contains(notes.errors[0], "run --force NVIDIA") {
		t.Errorf("errors = %v", notes.errors)
	}
	if !strings.Contains(menu.shown[0][1], "(not available)") {
		t.Errorf("disabled label = %q", menu.shown[0][1])
	}
}

func TestMenu_LaunchFailureIsReported(t *testing.T) {
	s, _, notes, _ := newTestSession(t, "Configuration - Base setup", "Yes")
	s.launch = func(modules.Module) error { return errors.New("no terminal emulator found") }

	if err := s.run(); err != nil {
		t.Fatal(err)
	}
	if len(notes.errors) != 1 || !strings.HasPrefix(notes.errors[0], "Execution error: no terminal") {
		t.Errorf("errors = %v", notes.errors)
	}
}

func TestMenu_Palette(t *testing.T) {
	s, menu, notes, _ := newTestSession(t, entryPalette, paletteLabel("Tokyo Night", palette.Default))

	if err := s.run(); err != nil {
		t.Fatal(err)
	}
	if got := s.palettes.Load(); got != "Tokyo Night" {
		t.Errorf("saved palette = %q", got)
	}
	if len(notes.infos) != 1 {
		t.Errorf("infos = %v", notes.infos)
	}
	if menu.shown[1][0] != entryBack {
		t.Errorf("palette menu starts with %q", menu.shown[1][0])
	}
	found := false
	for _, opt := range menu.shown[1] {
		if opt == activeMark+palette.Default {
			found = true
		}
	}
	if !found {
		t.Errorf("active palette not marked in %q", menu.shown[1])
	}
}

func TestMenu_HardwareInfo(t *testing.T) {
	s, menu, _, _ := newTestSession(t, entryHardware, entryBack)
	s.facts = hardware.Facts{NVIDIA: true, USBDevices: 3}

	if err := s.run(); err != nil {
		t.Fatal(err)
	}
	if menu.prompts[1] != "Hardware" {
		t.Fatalf("prompts = %v", menu.prompts)
	}
	joined := strings.Join(menu.shown[1], "\n")
	for _, want := range []string{"NVIDIA: Detected", "USB Devices: USB: 3 device(s)"} {
		if !strings.Contains(joined, want) {
			t.Errorf("hardware screen missing %q:\n%s", want, joined)
		}
	}
}

func TestPaletteLabel(t *testing.T) {
	active := paletteLabel("Cyberpunk", "Cyberpunk")
	other := paletteLabel("Gruvbox Dark", "Cyberpunk")

	if active != "* Cyberpunk" || other != "  Gruvbox Dark" {
		t.Errorf("labels = %q, %q", active, other)
	}
	if paletteFromLabel(active) != "Cyberpunk" || paletteFromLabel(other) != "Gruvbox Dark" {
		t.Error("paletteFromLabel did not strip the marker")
	}
}

func TestPrintModules(t *testing.T) {
	mods := []modules.Module{
		{Name: "Firmware", Path: "/srv/configuration/firmware.sh", Description: "Install firmware", Enabled: true},
		{Name: "NVIDIA", Path: "/srv/configuration/nvidia.sh", Description: "No NVIDIA GPU detected on this system."},
	}
	p, _ := palette.Lookup(palette.Default)

	var buf bytes.Buffer
	printModules(&buf, mods, p)

	out := buf.String()
	for _, want := range []string{"ready", "disabled", "Firmware", "/srv/configuration/nvidia.sh"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
