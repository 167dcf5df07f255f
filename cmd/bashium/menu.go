package main

import (
	"fmt"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/bashium/pkg/hardware"
	"github.com/lvim-tech/bashium/pkg/launcher"
	"github.com/lvim-tech/bashium/pkg/log"
	"github.com/lvim-tech/bashium/pkg/modules"
	"github.com/lvim-tech/bashium/pkg/palette"
)

type notifier interface {
	Notify(title, message string)
	Error(title, message string)
}

// menuSession is one interactive run of the top-level menu.
type menuSession struct {
	menu     launcher.Launcher
	catalog  *modules.Catalog
	facts    hardware.Facts
	confirm  bool
	palettes *palette.Store
	notifier notifier
	logger   *log.Logger
	launch   func(modules.Module) error
}

func runMenu(cmd *cobra.Command, opts *globalOptions, launcherName string) error {
	a, err := loadApp(opts)
	if err != nil {
		return err
	}

	menu, err := launcher.Select(launcherName, a.cfg, launcher.CurrentEnvironment())
	if err != nil {
		return err
	}
	a.logger.Debug("using launcher %s %v", menu.Name(), menu.Args())

	catalog, facts, err := a.catalog(cmd.Context())
	if err != nil {
		return err
	}

	s := &menuSession{
		menu:     menu,
		catalog:  catalog,
		facts:    facts,
		confirm:  a.cfg.Confirm,
		palettes: a.palettes,
		notifier: a.notifier,
		logger:   a.logger,
		launch:   a.launch,
	}
	return s.run()
}

// run shows the menu until a module starts or the user cancels.
func (s *menuSession) run() error {
	for {
		var options []string
		byLabel := make(map[string]modules.Module)

		for _, m := range s.catalog.All() {
			label := menuLabel(m)
			options = append(options, label)
			byLabel[label] = m
		}
		options = append(options, entryHardware, entryPalette)

		choice, err := s.menu.Show(options, "bashium")
		if err != nil {
			if launcher.IsCancelled(err) {
				return nil
			}
			return err
		}

		switch choice {
		case entryHardware:
			if err := s.showHardware(); err != nil {
				return err
			}
			continue
		case entryPalette:
			if err := s.choosePalette(); err != nil {
				return err
			}
			continue
		}

		m, ok := byLabel[choice]
		if !ok {
			s.notifier.Error("Error", fmt.Sprintf("Unknown option: %s", choice))
			continue
		}

		done, err := s.start(m)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// start reports whether m was launched.
func (s *menuSession) start(m modules.Module) (bool, error) {
	if !m.Enabled {
		s.notifier.Error(m.Name, fmt.Sprintf("%s is not available on this system. Run: bashium run --force %s", m.Name, shellescape.Quote(m.Name)))
		return false, nil
	}

	if s.confirm {
		ok, err := launcher.Confirm(s.menu, fmt.Sprintf("Run %s?", m.Name))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if err := s.launch(m); err != nil {
		s.notifier.Error("Execution error", err.Error())
		return false, nil
	}

	s.notifier.Notify("Bashium", fmt.Sprintf("Started %s", m.Name))
	return true, nil
}

func (s *menuSession) showHardware() error {
	options := append([]string{entryBack}, hardwareLines(s.facts)...)
	_, err := s.menu.Show(options, "Hardware")
	if err != nil && !launcher.IsCancelled(err) {
		return err
	}
	return nil
}

func (s *menuSession) choosePalette() error {
	active := s.palettes.Load()

	options := []string{entryBack}
	for _, name := range palette.Names() {
		options = append(options, paletteLabel(name, active))
	}

	choice, err := s.menu.Show(options, "Palette")
	if err != nil {
		if launcher.IsCancelled(err) {
			return nil
		}
		return err
	}
	if choice == entryBack {
		return nil
	}

	name := paletteFromLabel(choice)
	if err := s.palettes.Save(name); err != nil {
		s.logger.Error(err, "failed to save palette %q", name)
		s.notifier.Error("Palette", err.Error())
		return nil
	}
	s.logger.Info("palette set to %s", name)
	s.notifier.Notify("Palette", fmt.Sprintf("Palette set to %s", name))
	return nil
}
