// Package modules turns the configured script entries into the module list
// shown in the menu, gated by hardware facts.
package modules

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lvim-tech/bashium/pkg/config"
	"github.com/lvim-tech/bashium/pkg/hardware"
	"github.com/lvim-tech/bashium/pkg/utils"
)

// ErrUnknownModule is returned by Find for names not in the catalog.
var ErrUnknownModule = errors.New("unknown module")

// Module is one maintenance task bound to a script.
type Module struct {
	Name        string
	Path        string
	Description string
	// Requires is the hardware fact the module depends on ("" for none).
	Requires string
	Enabled  bool
	// Forced is set when a config override decided Enabled.
	Forced bool
}

// Catalog is the ordered module list for one run.
type Catalog struct {
	modules []Module
}

// Build resolves paths against scriptsDir, applies overrides and derives the
// enabled flags from facts.
func Build(cfg *config.Config, facts hardware.Facts, scriptsDir string) (*Catalog, error) {
	c := &Catalog{}

	for _, mc := range cfg.Modules {
		m := Module{
			Name:        mc.Name,
			Path:        mc.Path,
			Description: decorate(mc, facts),
			Requires:    mc.Requires,
			Enabled:     facts.Satisfies(mc.Requires),
		}

		override, ok, err := cfg.GetModuleOverride(mc.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			if override.Path != "" {
				m.Path = override.Path
			}
			if override.Description != "" {
				m.Description = override.Description
			}
			if override.Enabled != nil {
				m.Enabled = *override.Enabled
				m.Forced = true
			}
		}

		m.Path = resolvePath(m.Path, scriptsDir)
		c.modules = append(c.modules, m)
	}

	return c, nil
}

// decorate adds the hardware summary the module depends on to its description.
func decorate(mc config.ModuleConfig, facts hardware.Facts) string {
	desc := strings.TrimSpace(mc.Description)

	switch mc.Requires {
	case config.RequiresWiFi:
		return join(desc, facts.WiFiSummary())
	case config.RequiresBluetooth:
		return join(desc, facts.BluetoothSummary())
	case config.RequiresNVIDIA:
		if !facts.NVIDIA {
			return "No NVIDIA GPU detected on this system."
		}
		return join("Detected NVIDIA GPU.", desc)
	case config.RequiresNonFree:
		return join(desc, "Non-free repository: "+facts.NonFreeSummary())
	default:
		return desc
	}
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

func resolvePath(path, scriptsDir string) string {
	path = utils.ExpandHomeDir(path)
	if filepath.IsAbs(path) || scriptsDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(scriptsDir, path)
}

// All returns every module in configured order.
func (c *Catalog) All() []Module {
	return append([]Module(nil), c.modules...)
}

// Enabled returns the modules whose hardware requirements are met.
func (c *Catalog) Enabled() []Module {
	var enabled []Module
	for _, m := range c.modules {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}
	return enabled
}

// Find looks a module up by name, ignoring case.
func (c *Catalog) Find(name string) (Module, error) {
	for _, m := range c.modules {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("%w: %q", ErrUnknownModule, name)
}

// Names returns the module names in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.modules))
	for i, m := range c.modules {
		names[i] = m.Name
	}
	return names
}

// Summary is the first line of the description.
func (m Module) Summary() string {
	first, _, _ := strings.Cut(m.Description, "\n")
	return first
}

// Status is a short word for listings.
func (m Module) Status() string {
	switch {
	case m.Enabled && m.Forced:
		return "forced"
	case m.Enabled:
		return "ready"
	default:
		return "disabled"
	}
}
