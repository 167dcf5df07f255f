package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PreferenceFile is the JSON file inside the config directory.
const PreferenceFile = "config.json"

type preference struct {
	PalettePreset string `json:"palette_preset"`
}

// Store persists the chosen preset name.
type Store struct {
	Path string
}

// NewStore returns a Store for the given config directory.
func NewStore(dir string) *Store {
	return &Store{Path: filepath.Join(dir, PreferenceFile)}
}

// Load returns the saved preset name. A missing, unreadable or corrupt file,
// or a name that is not a known preset, yields Default.
func (s *Store) Load() string {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Default
	}

	var pref preference
	if err := json.Unmarshal(data, &pref); err != nil {
		return Default
	}
	if _, ok := Lookup(pref.PalettePreset); !ok {
		return Default
	}
	return pref.PalettePreset
}

// Save overwrites the file with name.
func (s *Store) Save(name string) error {
	if _, ok := Lookup(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.Marshal(preference{PalettePreset: name})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	return nil
}

// Active returns the saved preset.
func (s *Store) Active() Preset {
	p, _ := Lookup(s.Load())
	return p
}
