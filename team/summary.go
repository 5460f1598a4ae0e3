// SPDX-License-Identifier: MIT

package team

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summarize computes descriptive statistics of t, looking members up in
// roster by ID.
//
// Errors:
//   - ErrEmptyTeam     — t has no members.
//   - ErrUnknownPlayer — a member ID is not present in roster.
func Summarize(roster []Player, t Team) (Summary, error) {
	if len(t.Members) == 0 {
		return Summary{}, ErrEmptyTeam
	}

	byID := make(map[int]int64, len(roster))
	for _, p := range roster {
		byID[p.ID] = p.Effectiveness
	}

	data := make(stats.Float64Data, 0, len(t.Members))
	s := Summary{Size: len(t.Members)}
	for i, id := range t.Members {
		e, ok := byID[id]
		if !ok {
			return Summary{}, fmt.Errorf("member %d: %w", id, ErrUnknownPlayer)
		}
		if i == 0 || e < s.Min {
			s.Min = e
		}
		if i == 0 || e > s.Max {
			s.Max = e
		}
		s.Total += e
		data = append(data, float64(e))
	}

	var err error
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviationPopulation(data); err != nil {
		return Summary{}, fmt.Errorf("stddev: %w", err)
	}

	return s, nil
}
