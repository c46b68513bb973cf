// root.go - Root command, persistent flags and configuration setup
package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbosity  int
	logPath    string
	workers    int

	cfg      *config.Config
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "chess-rules",
		Short:         "Validate chess moves and classify positions",
		Version:       programVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.IntVar(&a.verbosity, "verbosity", 1, "Diagnostics level: 0 silent, 1 summaries, 2 per move")
	flags.StringVarP(&a.logPath, "log-file", "l", "", "Append diagnostics to this file instead of stderr")
	flags.IntVarP(&a.workers, "workers", "j", 0, "Validation workers (0 = number of CPUs)")

	cmd.AddCommand(
		newMovesCmd(a),
		newPlayCmd(a),
		newStatusCmd(a),
		newValidateCmd(a),
		newPerftCmd(a),
		newRecordCmd(a),
	)
	return cmd
}

// setup builds the configuration: defaults, then the config file, then any
// flags given explicitly on the command line.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbosity") {
		cfg.Verbosity = a.verbosity
	}
	if flags.Changed("log-file") {
		cfg.LogPath = a.logPath
	}
	if flags.Changed("workers") {
		cfg.Worker.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.SetOutput(cmd.OutOrStdout())
	cfg.SetLog(cmd.ErrOrStderr())
	closeLog, err := cfg.OpenLog()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.closeLog = closeLog
	return nil
}

func (a *app) teardown() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}
