package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ModuleOverride is a loosely typed per-module tweak from [module_overrides.<name>].
type ModuleOverride struct {
	Enabled     *bool  `mapstructure:"enabled"`
	Path        string `mapstructure:"path"`
	Description string `mapstructure:"description"`
}

// GetModuleOverride decodes the override table for a module. Names match
// case-insensitively. Values like "false" or 0 are accepted for booleans.
func (c *Config) GetModuleOverride(name string) (ModuleOverride, bool, error) {
	var raw map[string]any
	for key, values := range c.ModuleOverrides {
		if strings.EqualFold(key, name) {
			raw = values
			break
		}
	}
	if raw == nil {
		return ModuleOverride{}, false, nil
	}

	var override ModuleOverride
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &override,
	})
	if err != nil {
		return ModuleOverride{}, false, err
	}
	if err := decoder.Decode(raw); err != nil {
		return ModuleOverride{}, false, fmt.Errorf("module_overrides.%s: %w", name, err)
	}

	return override, true, nil
}
