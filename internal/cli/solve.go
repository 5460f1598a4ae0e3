// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/footballteam/roster"
	"github.com/katalvlaran/footballteam/team"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	players, err := a.readRoster(cmd)
	if err != nil {
		return err
	}

	best := team.SelectMaximalTeam(players)
	a.log.WithFields(logrus.Fields{
		"players": len(players),
		"total":   best.Total,
		"size":    best.Size(),
	}).Debug("team selected")

	if a.cfg.Report.Stats {
		a.logSummary(players, best)
	}

	return a.writeTeam(cmd, best)
}

// readRoster parses the roster from --input or the command's stdin.
func (a *app) readRoster(cmd *cobra.Command) ([]team.Player, error) {
	in, closeIn, err := openInput(a.inputFile, cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer closeIn()

	players, err := roster.Read(in)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	a.log.WithField("players", len(players)).Debug("roster loaded")

	return players, nil
}

// writeTeam prints t to --output or the command's stdout.
func (a *app) writeTeam(cmd *cobra.Command, t team.Team) (err error) {
	out, closeOut, err := openOutput(a.outputFile, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer func() {
		err = errors.Join(err, closeOut())
	}()

	if err = roster.Write(out, t); err != nil {
		return fmt.Errorf("write team: %w", err)
	}
	return nil
}

func (a *app) logSummary(players []team.Player, t team.Team) {
	s, err := team.Summarize(players, t)
	if err != nil {
		a.log.WithError(err).Warn("no team summary")
		return
	}

	a.log.WithFields(logrus.Fields{
		"size":   s.Size,
		"total":  s.Total,
		"min":    s.Min,
		"max":    s.Max,
		"mean":   s.Mean,
		"median": s.Median,
		"stddev": s.StdDev,
	}).Info("team summary")
}
