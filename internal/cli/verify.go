// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/footballteam/team"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) verifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the selector against the brute-force reference",
		Long: `Verify solves the roster twice: with the O(N log N) selector and with the
exhaustive O(N²) reference. It prints the selected team and fails when the
two best totals differ. Rosters with negative values may legitimately
disagree, since the fast selector is only exhaustive for non-negative ones.`,
		Args: cobra.NoArgs,
		RunE: a.runVerify,
	}
	cmd.Flags().StringVarP(&a.inputFile, "input", "i", "", "read the roster from file instead of stdin")

	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, _ []string) error {
	players, err := a.readRoster(cmd)
	if err != nil {
		return err
	}

	fast := team.SelectMaximalTeam(players)
	slow := team.SelectBruteForce(players)
	fields := logrus.Fields{
		"players":     len(players),
		"fast_total":  fast.Total,
		"brute_total": slow.Total,
	}
	if fast.Total != slow.Total {
		a.log.WithFields(fields).Error("totals differ")
		return fmt.Errorf("fast=%d brute=%d: %w", fast.Total, slow.Total, ErrMismatch)
	}
	a.log.WithFields(fields).Info("totals agree")

	return a.writeTeam(cmd, fast)
}
