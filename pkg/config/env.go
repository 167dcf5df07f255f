package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Env holds the environment overrides bashium understands.
type Env struct {
	Home       string `env:"HOME"`
	ConfigHome string `env:"XDG_CONFIG_HOME"`

	ConfigDir  string `env:"BASHIUM_CONFIG_DIR"`
	ScriptsDir string `env:"BASHIUM_SCRIPTS_DIR"`
	Terminal   string `env:"BASHIUM_TERMINAL"`
	Launcher   string `env:"BASHIUM_LAUNCHER"`
	Debug      bool   `env:"BASHIUM_DEBUG"`
}

// LoadEnv reads the process environment, after loading envFile if given.
// Variables already set in the environment are not replaced by the file.
func LoadEnv(envFile string) (*Env, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}
	return ParseEnv(nil)
}

// ParseEnv parses the given variables. A nil map means the process environment.
func ParseEnv(environment map[string]string) (*Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}
	return &e, nil
}

// Dir returns the bashium config directory.
func (e *Env) Dir() string {
	if e.ConfigDir != "" {
		return e.ConfigDir
	}
	if e.ConfigHome != "" {
		return filepath.Join(e.ConfigHome, "bashium")
	}
	return filepath.Join(e.Home, ".config", "bashium")
}

// Apply copies non-empty environment overrides onto c.
func (e *Env) Apply(c *Config) {
	if e.ScriptsDir != "" {
		c.ScriptsDir = e.ScriptsDir
	}
	if e.Terminal != "" {
		c.Terminal = e.Terminal
	}
	if e.Launcher != "" {
		c.DefaultLauncher = strings.ToLower(e.Launcher)
	}
	if e.Debug {
		c.Log.Level = "debug"
	}
}
