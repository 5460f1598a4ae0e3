// SPDX-License-Identifier: MIT

// Package cli wires the footballteam command tree: the root command solves a
// roster read from stdin, generate prints random rosters and verify
// cross-checks the selector against the brute-force reference.
package cli

import (
	"github.com/katalvlaran/footballteam/internal/config"
	"github.com/katalvlaran/footballteam/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags onto viper keys. Flags missing from the
// running command are skipped.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"stats":      "report.stats",
	"count":      "generate.count",
	"seed":       "generate.seed",
	"min":        "generate.min",
	"max":        "generate.max",
}

// app carries the state shared by every command of one invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *logrus.Logger

	configFile string
	inputFile  string
	outputFile string
}

func newApp() *app {
	return &app{
		cfg: config.Default(),
		log: logging.Discard(),
	}
}

// Execute runs the root command against the process's stdio.
func Execute() error {
	a := newApp()
	root := a.command()
	a.log = logging.New(root.ErrOrStderr(), a.cfg.Log.Level, a.cfg.Log.Format)

	if err := root.Execute(); err != nil {
		a.log.WithError(err).Error("footballteam failed")
		return err
	}
	return nil
}

// command builds the command tree bound to a.
func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "footballteam",
		Short: "Select the most effective balanced team",
		Long: `footballteam reads a roster from stdin and prints the balanced team with
the largest total effectiveness.

Input:  N, then N integer effectiveness values (player i gets id i).
Output: the total on the first line, the ascending member ids on the second.

A team is balanced when no member is more effective than its two weakest
members combined.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSolve,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file (YAML)")
	pf.String("log-level", a.cfg.Log.Level, "log level: trace, debug, info, warn, error")
	pf.String("log-format", a.cfg.Log.Format, "log format: text or json")
	pf.StringVarP(&a.outputFile, "output", "o", "", "write results to file instead of stdout")

	root.Flags().StringVarP(&a.inputFile, "input", "i", "", "read the roster from file instead of stdin")
	root.Flags().Bool("stats", a.cfg.Report.Stats, "log summary statistics of the selected team")

	root.AddCommand(a.generateCommand(), a.verifyCommand())

	return root
}

// setup loads configuration and replaces the bootstrap logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if err = bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	a.v, a.cfg = v, cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  v.ConfigFileUsed(),
	}).Debug("configuration loaded")

	return nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
