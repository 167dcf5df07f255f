package launcher

import (
	"fmt"
	"strings"

	"github.com/lvim-tech/bashium/pkg/config"
	"github.com/lvim-tech/bashium/pkg/utils"
)

var constructors = map[string]func(args []string) *Menu{
	"rofi":   NewRofi,
	"dmenu":  NewDmenu,
	"fzf":    NewFzf,
	"bemenu": NewBemenu,
	"fuzzel": NewFuzzel,
}

// Names lists the supported menu programs.
var Names = []string{"rofi", "dmenu", "fzf", "bemenu", "fuzzel"}

// New returns the named launcher with its configured arguments.
func New(name string, cfg *config.Config) (*Menu, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownLauncher, name, strings.Join(Names, ", "))
	}
	return ctor(cfg.GetLauncherArgs(name)), nil
}

// Environment is what auto-detection looks at.
type Environment struct {
	Display    utils.ServerType
	InTerminal bool
	HasCommand func(string) bool
}

// CurrentEnvironment inspects the running session.
func CurrentEnvironment() Environment {
	return Environment{
		Display:    utils.DetectDisplayServer(),
		InTerminal: utils.IsTerminal(),
		HasCommand: utils.CommandExists,
	}
}

// priority orders menu programs for a session type.
func priority(env Environment) []string {
	var order []string
	switch env.Display {
	case utils.Wayland:
		order = []string{"fuzzel", "bemenu", "rofi"}
	case utils.X11:
		order = []string{"rofi", "dmenu", "bemenu"}
	}
	if env.InTerminal {
		order = append(order, "fzf")
	}
	return order
}

// Select picks a launcher: the explicit name if given, then the configured
// default, then the first installed program for the session.
func Select(name string, cfg *config.Config, env Environment) (*Menu, error) {
	if name == "" {
		name = cfg.DefaultLauncher
	}
	if name != "" {
		return New(name, cfg)
	}

	for _, candidate := range priority(env) {
		if env.HasCommand(candidate) {
			return New(candidate, cfg)
		}
	}
	return nil, ErrNoLauncher
}
