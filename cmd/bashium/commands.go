package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/bashium/pkg/config"
	"github.com/lvim-tech/bashium/pkg/hardware"
	"github.com/lvim-tech/bashium/pkg/modules"
	"github.com/lvim-tech/bashium/pkg/palette"
	"github.com/lvim-tech/bashium/pkg/terminal"
	"github.com/lvim-tech/bashium/pkg/utils"
)

func newProbeCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Show detected hardware",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			facts := a.probe(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(facts)
			}
			printFacts(cmd.OutOrStdout(), facts, a.palettes.Active())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the facts as JSON")
	return cmd
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List modules and whether they can run here",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			catalog, _, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			mods := catalog.All()
			if available {
				mods = catalog.Enabled()
			}
			printModules(cmd.OutOrStdout(), mods, a.palettes.Active())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&available, "available", "a", false, "only list modules whose hardware was detected")
	return cmd
}

// completeModules offers module names without probing the hardware.
func completeModules(opts *globalOptions) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		a, err := loadApp(opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		catalog, err := modules.Build(a.cfg, hardware.Facts{}, a.scriptsDir())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []cobra.Completion
		for _, name := range catalog.Names() {
			if strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete)) {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	var force, printOnly bool

	cmd := &cobra.Command{
		Use:   "run <module>",
		Short: "Open a module's script in a terminal",
		Long: `Open a module's script in a new terminal window. Modules whose hardware
was not detected are refused unless --force is given.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeModules(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			catalog, _, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			m, err := catalog.Find(args[0])
			if err != nil {
				return err
			}
			if !m.Enabled && !force {
				return fmt.Errorf("module %q is not available on this system (use --force to run it anyway)", m.Name)
			}

			if printOnly {
				plan, err := a.terminalLauncher().Prepare(m.Path)
				out := cmd.OutOrStdout()
				if err != nil {
					var noTerm *terminal.NoTerminalError
					if errors.As(err, &noTerm) {
						fmt.Fprintln(out, plan.Command.Manual)
						return nil
					}
					return err
				}
				fmt.Fprintln(out, shellescape.QuoteCommand(plan.Argv))
				return nil
			}

			if err := a.launch(m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s in a new terminal.\n", m.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "run even if the hardware was not detected")
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the terminal command instead of running it")
	return cmd
}

func newPaletteCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show or change the color palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPalettes(cmd, opts)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List palette presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listPalettes(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "get",
			Short: "Print the active palette",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := loadApp(opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.palettes.Load())
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <name>",
			Short:     "Save the active palette",
			Args:      cobra.ExactArgs(1),
			ValidArgs: palette.Names(),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := loadApp(opts)
				if err != nil {
					return err
				}
				p, err := palette.Resolve(args[0])
				if err != nil {
					return err
				}
				if err := a.palettes.Save(p.Name); err != nil {
					return err
				}
				a.logger.Info("palette set to %s", p.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "Palette set to %s\n", p.Name)
				return nil
			},
		},
	)

	return cmd
}

func listPalettes(cmd *cobra.Command, opts *globalOptions) error {
	a, err := loadApp(opts)
	if err != nil {
		return err
	}

	active := a.palettes.Load()
	for _, name := range palette.Names() {
		p, _ := palette.Lookup(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.Swatch(), paletteLabel(name, active))
	}
	return nil
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to the config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadEnv(opts.envFile)
			if err != nil {
				return err
			}
			dir := opts.configDir
			if dir == "" {
				dir = env.Dir()
			}

			path, err := config.InitUserConfig(utils.ExpandHomeDir(dir))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config initialized at: %s\n", path)
			fmt.Fprintln(out, "\nYou can now edit the config file to customize bashium.")
			fmt.Fprintln(out, "Run 'bashium' to start using it!")
			return nil
		},
	}
}
