// SPDX-License-Identifier: MIT

package team

import "cmp"

// Player is a single roster entry.
//
// Fields:
//   - Effectiveness — the score summed into a team total. May be negative.
//   - ID            — the caller-assigned identity, 1-based input position
//     when built with NewPlayers. IDs are expected to be unique.
type Player struct {
	Effectiveness int64
	ID            int
}

// Compare orders players by Effectiveness ascending, then by ID ascending.
// It returns -1, 0 or +1 and is suitable for slices.SortStableFunc.
func Compare(a, b Player) int {
	if c := cmp.Compare(a.Effectiveness, b.Effectiveness); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}

// Less reports whether p sorts before q in the (Effectiveness, ID) order.
func (p Player) Less(q Player) bool {
	return Compare(p, q) < 0
}

// Team is the result of a selection.
//
// Total is the exact sum of Effectiveness over Members. Members holds the
// player IDs in ascending numeric order, without duplicates. An empty roster
// yields Team{Total: 0, Members: []int{}}.
type Team struct {
	Total   int64
	Members []int
}

// Size returns the number of selected players.
func (t Team) Size() int { return len(t.Members) }

// Window is a half-open range [Begin, End) over the effectiveness-sorted
// roster, together with the total effectiveness of the players inside it.
type Window struct {
	Begin int
	End   int
	Sum   int64
}

// Len returns the number of players covered by the window.
func (w Window) Len() int { return w.End - w.Begin }

// Summary describes a selected team.
//
// Mean, Median and StdDev are computed over member effectiveness values;
// StdDev is the population standard deviation.
type Summary struct {
	Size   int
	Total  int64
	Min    int64
	Max    int64
	Mean   float64
	Median float64
	StdDev float64
}
