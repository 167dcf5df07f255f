package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/lvim-tech/bashium/pkg/config"
	"github.com/lvim-tech/bashium/pkg/hardware"
	"github.com/lvim-tech/bashium/pkg/log"
	"github.com/lvim-tech/bashium/pkg/modules"
	"github.com/lvim-tech/bashium/pkg/palette"
	"github.com/lvim-tech/bashium/pkg/terminal"
	"github.com/lvim-tech/bashium/pkg/utils"
)

type globalOptions struct {
	configDir  string
	scriptsDir string
	terminal   string
	envFile    string
	debug      bool
	console    bool
}

func addGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVar(&opts.configDir, "config-dir", "", "config directory (default $XDG_CONFIG_HOME/bashium)")
	fs.StringVar(&opts.scriptsDir, "scripts-dir", "", "directory the module paths are relative to")
	fs.StringVarP(&opts.terminal, "terminal", "t", "", "preferred terminal emulator")
	fs.StringVar(&opts.envFile, "env-file", "", "load environment variables from a .env file")
	fs.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	fs.BoolVar(&opts.console, "console", false, "echo log lines to the console")
}

// app is everything a command needs after startup.
type app struct {
	dir      string
	cfg      *config.Config
	logger   *log.Logger
	notifier *utils.Notifier
	palettes *palette.Store
}

// loadApp reads the environment and config and opens the log file.
func loadApp(opts *globalOptions) (*app, error) {
	env, err := config.LoadEnv(opts.envFile)
	if err != nil {
		return nil, err
	}

	dir := opts.configDir
	if dir == "" {
		dir = env.Dir()
	}
	dir = utils.ExpandHomeDir(dir)

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	env.Apply(cfg)

	if opts.scriptsDir != "" {
		cfg.ScriptsDir = opts.scriptsDir
	}
	if opts.terminal != "" {
		cfg.Terminal = opts.terminal
	}

	logger := log.NewLogger(
		log.WithName("bashium"),
		log.WithFile(filepath.Join(dir, log.FileName), cfg.Log.MaxSize, cfg.Log.MaxAge),
		log.WithLevel(cfg.Log.Level),
		log.WithDebug(opts.debug),
		log.WithConsole(opts.console),
	)
	logger.Debug("config loaded from %s", dir)

	return &app{
		dir:      dir,
		cfg:      cfg,
		logger:   logger,
		notifier: utils.NewNotifier(cfg.Notifications),
		palettes: palette.NewStore(dir),
	}, nil
}

// scriptsDir is the base for relative module paths: the configured
// directory, or the one holding the binary.
func (a *app) scriptsDir() string {
	if a.cfg.ScriptsDir != "" {
		return utils.ExpandHomeDir(a.cfg.ScriptsDir)
	}
	return utils.ExecutableDir()
}

// probe runs hardware detection once.
func (a *app) probe(ctx context.Context) hardware.Facts {
	timeout := time.Duration(a.cfg.ProbeTimeout) * time.Second
	prober := hardware.New(timeout)

	start := time.Now()
	facts := prober.Probe(ctx)
	a.logger.Named("hardware").Debug("probe finished in %s: %+v", time.Since(start).Round(time.Millisecond), facts)
	return facts
}

// catalog probes the hardware and builds the module list.
func (a *app) catalog(ctx context.Context) (*modules.Catalog, hardware.Facts, error) {
	facts := a.probe(ctx)
	c, err := modules.Build(a.cfg, facts, a.scriptsDir())
	if err != nil {
		return nil, facts, fmt.Errorf("failed to build module list: %w", err)
	}
	return c, facts, nil
}

func (a *app) terminalLauncher() *terminal.Launcher {
	return terminal.New(a.cfg.Terminal, a.logger.Named("terminal"))
}

// launch opens m in a terminal and records the outcome.
func (a *app) launch(m modules.Module) error {
	a.logger.Info("launching %s (%s)", m.Name, m.Path)
	if err := a.terminalLauncher().Launch(m.Path); err != nil {
		a.logger.Error(err, "failed to launch %s", m.Name)
		return err
	}
	return nil
}
