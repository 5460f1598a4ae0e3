// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/footballteam/roster"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a reproducible random roster",
		Long: `Generate prints a random roster in the input format, so it can be piped
back into footballteam. The same seed always yields the same roster.`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}

	defaults := a.cfg.Generate
	cmd.Flags().IntP("count", "n", defaults.Count, "number of players")
	cmd.Flags().Int64("seed", defaults.Seed, "random seed (0 selects the default seed)")
	cmd.Flags().Int64("min", defaults.Min, "smallest effectiveness value")
	cmd.Flags().Int64("max", defaults.Max, "largest effectiveness value")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) (err error) {
	g := a.cfg.Generate
	players, err := roster.Generate(g.Count, roster.WithSeed(g.Seed), roster.WithRange(g.Min, g.Max))
	if err != nil {
		return fmt.Errorf("generate roster: %w", err)
	}
	a.log.WithFields(logrus.Fields{
		"count": g.Count,
		"seed":  g.Seed,
		"min":   g.Min,
		"max":   g.Max,
	}).Debug("roster generated")

	out, closeOut, err := openOutput(a.outputFile, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer func() {
		err = errors.Join(err, closeOut())
	}()

	if err = roster.Format(out, players); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}
