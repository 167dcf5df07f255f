package palette

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "bashium"))

	for _, name := range Names() {
		if err := s.Save(name); err != nil {
			t.Fatalf("Save(%q): %v", name, err)
		}
		if got := s.Load(); got != name {
			t.Errorf("Load() = %q, want %q", got, name)
		}
	}
}

func TestStore_FileFormat(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := s.Save("Tokyo Night"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, PreferenceFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"palette_preset":"Tokyo Night"}` {
		t.Errorf("file = %s", data)
	}
}

func TestStore_LoadFallsBackToDefault(t *testing.T) {
	tests := map[string]string{
		"corrupt":   `{"palette_preset":`,
		"unknown":   `{"palette_preset":"Solarized"}`,
		"wrong key": `{"theme":"Cyberpunk"}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, PreferenceFile), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := NewStore(dir).Load(); got != Default {
				t.Errorf("Load() = %q, want %q", got, Default)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		if got := NewStore(t.TempDir()).Load(); got != Default {
			t.Errorf("Load() = %q, want %q", got, Default)
		}
	})
}

func TestStore_SaveRejectsUnknown(t *testing.T) {
	dir := t.TempDir()
	err := NewStore(dir).Save("Solarized")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("error = %v, want ErrUnknownPreset", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, PreferenceFile)); !os.IsNotExist(statErr) {
		t.Error("nothing should be written for an unknown preset")
	}
}

func TestStore_Active(t *testing.T) {
	s := NewStore(t.TempDir())
	if got := s.Active().Name; got != Default {
		t.Errorf("Active() = %q, want %q", got, Default)
	}
	if err := s.Save("Gruvbox Light"); err != nil {
		t.Fatal(err)
	}
	p := s.Active()
	if p.Name != "Gruvbox Light" || !p.IsLight() {
		t.Errorf("Active() = %+v", p)
	}
}

func TestResolve(t *testing.T) {
	p, err := Resolve("  tokyo night ")
	if err != nil || p.Name != "Tokyo Night" {
		t.Errorf("Resolve = %+v, %v", p, err)
	}
	if _, err := Resolve("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresets_ValidColors(t *testing.T) {
	if _, ok := Lookup(Default); !ok {
		t.Fatalf("default preset %q missing", Default)
	}
	for _, p := range Presets {
		c := p.Colors
		for _, hex := range []string{c.Bg, c.Fg, c.FgSecondary, c.Accent, c.AccentHover, c.CardBg, c.Border, c.Muted, c.Success, c.SuccessHover} {
			if _, _, _, err := parseHex(hex); err != nil {
				t.Errorf("%s: %v", p.Name, err)
			}
		}
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, err := parseHex("#ff2a6d")
	if err != nil {
		t.Fatal(err)
	}
	if r != 0xff || g != 0x2a || b != 0x6d {
		t.Errorf("parseHex = %d,%d,%d", r, g, b)
	}
	if _, _, _, err := parseHex("#fff"); err == nil {
		t.Error("short color should fail")
	}
	if _, _, _, err := parseHex("#gggggg"); err == nil {
		t.Error("non-hex color should fail")
	}
}
