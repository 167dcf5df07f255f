// Package config provides configuration management for bashium.
// It handles loading, merging, and accessing configuration from the embedded
// defaults and the user or system config files.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigData string

// FileName is the name of the TOML config inside the config directory.
const FileName = "config.toml"

// systemConfigPath is consulted when the user has no config of their own.
var systemConfigPath = "/etc/bashium/config.toml"

// Entries the menu lists after the modules. Module names may not reuse them.
const (
	MenuEntryHardware = "Hardware info"
	MenuEntryPalette  = "Palette"
)

// Known values for ModuleConfig.Requires.
const (
	RequiresNothing   = ""
	RequiresWiFi      = "wifi"
	RequiresBluetooth = "bluetooth"
	RequiresNVIDIA    = "nvidia"
	RequiresNonFree   = "nonfree"
)

// Config is the merged runtime configuration.
type Config struct {
	DefaultLauncher string                    `toml:"default_launcher"`
	ScriptsDir      string                    `toml:"scripts_dir"`
	Terminal        string                    `toml:"terminal"`
	Confirm         bool                      `toml:"confirm"`
	ProbeTimeout    int                       `toml:"probe_timeout"`
	Launchers       LauncherConfig            `toml:"launchers"`
	Notifications   NotificationConfig        `toml:"notifications"`
	Log             LogConfig                 `toml:"log"`
	Modules         []ModuleConfig            `toml:"modules"`
	ModuleOverrides map[string]map[string]any `toml:"module_overrides"`
}

// LauncherConfig holds extra arguments for every menu program.
type LauncherConfig struct {
	Rofi   LauncherCommand `toml:"rofi"`
	Dmenu  LauncherCommand `toml:"dmenu"`
	Fzf    LauncherCommand `toml:"fzf"`
	Bemenu LauncherCommand `toml:"bemenu"`
	Fuzzel LauncherCommand `toml:"fuzzel"`
}

// LauncherCommand describes how a menu program is started.
type LauncherCommand struct {
	Args []string `toml:"args"`
}

// NotificationConfig controls how launch failures reach the user.
type NotificationConfig struct {
	Enabled        bool   `toml:"enabled"`
	Tool           string `toml:"tool"` // auto, dunstify, notify-send
	Timeout        int    `toml:"timeout"`
	Urgency        string `toml:"urgency"`
	ShowInTerminal bool   `toml:"show_in_terminal"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	MaxSize int    `toml:"max_size"` // megabytes
	MaxAge  int    `toml:"max_age"`  // days
	Level   string `toml:"level"`
}

// ModuleConfig is one maintenance script entry.
type ModuleConfig struct {
	Name        string `toml:"name"`
	Path        string `toml:"path"`
	Description string `toml:"description"`
	Requires    string `toml:"requires"`
}

// NotificationConfigFile is the optional-field form used when reading TOML.
type NotificationConfigFile struct {
	Enabled        *bool   `toml:"enabled"`
	Tool           *string `toml:"tool"`
	Timeout        *int    `toml:"timeout"`
	Urgency        *string `toml:"urgency"`
	ShowInTerminal *bool   `toml:"show_in_terminal"`
}

// LogConfigFile is the optional-field form used when reading TOML.
type LogConfigFile struct {
	MaxSize *int    `toml:"max_size"`
	MaxAge  *int    `toml:"max_age"`
	Level   *string `toml:"level"`
}

// ConfigFile is what a user or system config file decodes into.
// Pointers tell "unset" apart from zero values.
type ConfigFile struct {
	DefaultLauncher *string                   `toml:"default_launcher"`
	ScriptsDir      *string                   `toml:"scripts_dir"`
	Terminal        *string                   `toml:"terminal"`
	Confirm         *bool                     `toml:"confirm"`
	ProbeTimeout    *int                      `toml:"probe_timeout"`
	Launchers       LauncherConfig            `toml:"launchers"`
	Notifications   NotificationConfigFile    `toml:"notifications"`
	Log             LogConfigFile             `toml:"log"`
	Modules         []ModuleConfig            `toml:"modules"`
	ModuleOverrides map[string]map[string]any `toml:"module_overrides"`
}

// Load builds the configuration for the given config directory.
// Embedded defaults are always read first. The user file in dir wins over the
// system file; only one of the two is merged.
func Load(dir string) (*Config, error) {
	cfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	for _, path := range []string{filepath.Join(dir, FileName), systemConfigPath} {
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		fileCfg, err := loadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfigs(cfg, fileCfg)
		break
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs lays the file values over the defaults.
func mergeConfigs(defaultCfg *Config, fileCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if fileCfg.DefaultLauncher != nil {
		merged.DefaultLauncher = *fileCfg.DefaultLauncher
	}
	if fileCfg.ScriptsDir != nil {
		merged.ScriptsDir = *fileCfg.ScriptsDir
	}
	if fileCfg.Terminal != nil {
		merged.Terminal = *fileCfg.Terminal
	}
	if fileCfg.Confirm != nil {
		merged.Confirm = *fileCfg.Confirm
	}
	if fileCfg.ProbeTimeout != nil {
		merged.ProbeTimeout = *fileCfg.ProbeTimeout
	}

	mergeLauncherConfigs(&merged.Launchers, &fileCfg.Launchers)
	mergeNotificationConfig(&merged.Notifications, &fileCfg.Notifications)
	mergeLogConfig(&merged.Log, &fileCfg.Log)

	// A user module list replaces the default one as a whole
	if len(fileCfg.Modules) > 0 {
		merged.Modules = append([]ModuleConfig(nil), fileCfg.Modules...)
	}

	if len(fileCfg.ModuleOverrides) > 0 {
		overrides := make(map[string]map[string]any, len(merged.ModuleOverrides)+len(fileCfg.ModuleOverrides))
		for name, values := range merged.ModuleOverrides {
			overrides[name] = values
		}
		for name, values := range fileCfg.ModuleOverrides {
			overrides[name] = values
		}
		merged.ModuleOverrides = overrides
	}

	return &merged
}

func mergeLauncherConfigs(merged *LauncherConfig, user *LauncherConfig) {
	if len(user.Rofi.Args) > 0 {
		merged.Rofi.Args = user.Rofi.Args
	}
	if len(user.Dmenu.Args) > 0 {
		merged.Dmenu.Args = user.Dmenu.Args
	}
	if len(user.Fzf.Args) > 0 {
		merged.Fzf.Args = user.Fzf.Args
	}
	if len(user.Bemenu.Args) > 0 {
		merged.Bemenu.Args = user.Bemenu.Args
	}
	if len(user.Fuzzel.Args) > 0 {
		merged.Fuzzel.Args = user.Fuzzel.Args
	}
}

func mergeNotificationConfig(merged *NotificationConfig, user *NotificationConfigFile) {
	if user.Enabled != nil {
		merged.Enabled = *user.Enabled
	}
	if user.Tool != nil && *user.Tool != "" {
		merged.Tool = *user.Tool
	}
	if user.Timeout != nil {
		merged.Timeout = *user.Timeout
	}
	if user.Urgency != nil && *user.Urgency != "" {
		merged.Urgency = *user.Urgency
	}
	if user.ShowInTerminal != nil {
		merged.ShowInTerminal = *user.ShowInTerminal
	}
}

func mergeLogConfig(merged *LogConfig, user *LogConfigFile) {
	if user.MaxSize != nil {
		merged.MaxSize = *user.MaxSize
	}
	if user.MaxAge != nil {
		merged.MaxAge = *user.MaxAge
	}
	if user.Level != nil && *user.Level != "" {
		merged.Level = *user.Level
	}
}

func (c *Config) validate() error {
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = 5
	}
	c.DefaultLauncher = strings.ToLower(strings.TrimSpace(c.DefaultLauncher))

	seen := make(map[string]bool, len(c.Modules))
	for i, m := range c.Modules {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("modules[%d]: name is required", i)
		}
		if strings.TrimSpace(m.Path) == "" {
			return fmt.Errorf("module %q: path is required", m.Name)
		}
		if isMenuEntry(m.Name) {
			return fmt.Errorf("module %q: name is reserved for a menu entry", m.Name)
		}
		key := strings.ToLower(m.Name)
		if seen[key] {
			return fmt.Errorf("module %q is defined twice", m.Name)
		}
		seen[key] = true

		switch m.Requires {
		case RequiresNothing, RequiresWiFi, RequiresBluetooth, RequiresNVIDIA, RequiresNonFree:
		default:
			return fmt.Errorf("module %q: unsupported requires %q (wifi, bluetooth, nvidia, nonfree)", m.Name, m.Requires)
		}
	}
	return nil
}

func isMenuEntry(name string) bool {
	name = strings.TrimSpace(name)
	return strings.EqualFold(name, MenuEntryHardware) || strings.EqualFold(name, MenuEntryPalette)
}

// GetLauncherArgs returns the configured extra arguments for a menu program.
func (c *Config) GetLauncherArgs(name string) []string {
	switch name {
	case "rofi":
		return c.Launchers.Rofi.Args
	case "dmenu":
		return c.Launchers.Dmenu.Args
	case "fzf":
		return c.Launchers.Fzf.Args
	case "bemenu":
		return c.Launchers.Bemenu.Args
	case "fuzzel":
		return c.Launchers.Fuzzel.Args
	default:
		return nil
	}
}

// ErrConfigExists is returned by InitUserConfig when it would overwrite a file.
var ErrConfigExists = errors.New("config already exists")

// InitUserConfig writes the default config into dir.
func InitUserConfig(dir string) (string, error) {
	path := filepath.Join(dir, FileName)

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigData), 0o644); err != nil {
		return path, fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
