// SPDX-License-Identifier: MIT

package team

import (
	"math"
	"slices"
	"sort"
)

// SelectMaximalTeam — maximal balanced team
//
// Description:
//
//	Returns the balanced team with the largest total effectiveness. Once the
//	roster is sorted, the two weakest members of any candidate block are the
//	first two players of that block, so for a fixed start the admissible
//	players form a prefix of the remaining roster. That prefix ends right
//	before the first player more effective than the pair sum and is found by
//	binary search.
//
// Algorithm Outline:
//  1. Empty roster ⇒ Team{Total: 0, Members: []int{}}.
//  2. Stable-sort a copy by (Effectiveness, ID).
//  3. Build prefix sums S[0..N], S[0] = 0, S[k] = S[k-1] + e[k-1].
//  4. best = [0, 1) with total e[0] (the weakest player alone).
//  5. For begin = 0..N-2:
//     ceiling = e[begin] + e[begin+1]
//     end     = first k with (e[k], ID[k]) > (ceiling, +∞)
//     if end < begin+2 ⇒ skip this start
//     sum     = S[end] - S[begin]
//     if sum > best.Sum ⇒ best = [begin, end)
//  6. Collect the IDs of best and sort them ascending.
//
// Only strict improvements replace the best window, so among equal totals
// the earliest start wins.
//
// Negative values:
//
//	When the start is negative, the pair sum can fall below the start's
//	successor, leaving a window that is empty or does not even hold the
//	pair. A plain upper-bound scan would score such a window, e.g. [-5, -5]
//	would yield total 0 with no members. These starts are skipped instead,
//	so the result always has at least one member and Total always equals
//	the members' sum: [-5, -5] yields -5 with member 1.
//
// Complexity:
//
//	Time   = O(N log N)
//	Memory = O(N)
func SelectMaximalTeam(players []Player) Team {
	if len(players) == 0 {
		return Team{Total: 0, Members: []int{}}
	}

	sorted := SortPlayers(players)
	prefix := prefixSums(sorted)

	// A lone player is always a valid team.
	best := Window{Begin: 0, End: 1, Sum: sorted[0].Effectiveness}
	scanWindows(sorted, prefix, func(w Window) {
		if w.Sum > best.Sum {
			best = w
		}
	})

	return materialize(sorted, best)
}

// CandidateWindows returns, in ascending Begin order, the window scored for
// every start position that has a successor. Indices refer to the order
// produced by SortPlayers. End never decreases from one window to the next.
//
// Starts whose own pair does not fit under its ceiling (possible only when
// the start is negative) produce no window.
func CandidateWindows(players []Player) []Window {
	if len(players) < 2 {
		return []Window{}
	}

	sorted := SortPlayers(players)
	prefix := prefixSums(sorted)
	windows := make([]Window, 0, len(sorted)-1)
	scanWindows(sorted, prefix, func(w Window) {
		windows = append(windows, w)
	})

	return windows
}

// SortPlayers returns a copy of players stable-sorted by (Effectiveness, ID).
// The input slice is left untouched.
func SortPlayers(players []Player) []Player {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, Compare)

	return sorted
}

// scanWindows calls visit with the maximal window for each start position.
func scanWindows(sorted []Player, prefix []int64, visit func(Window)) {
	var begin, end int
	for begin = 0; begin+1 < len(sorted); begin++ {
		ceiling := pairCeiling(sorted[begin].Effectiveness, sorted[begin+1].Effectiveness)
		end = upperBound(sorted, ceiling)
		if end < begin+2 {
			continue
		}
		visit(Window{Begin: begin, End: end, Sum: prefix[end] - prefix[begin]})
	}
}

// upperBound returns the first index whose player sorts strictly after the
// sentinel (ceiling, math.MaxInt). Players with Effectiveness == ceiling
// therefore always fall inside the window.
func upperBound(sorted []Player, ceiling int64) int {
	key := Player{Effectiveness: ceiling, ID: math.MaxInt}

	return sort.Search(len(sorted), func(i int) bool {
		return Compare(sorted[i], key) > 0
	})
}

// prefixSums returns S with len(S) == len(sorted)+1 and
// S[k] = sorted[0].Effectiveness + ... + sorted[k-1].Effectiveness.
func prefixSums(sorted []Player) []int64 {
	prefix := make([]int64, len(sorted)+1)
	for i, p := range sorted {
		prefix[i+1] = prefix[i] + p.Effectiveness
	}

	return prefix
}

// pairCeiling adds the two weakest effectiveness values, saturating at the
// int64 bounds instead of wrapping around.
func pairCeiling(a, b int64) int64 {
	sum := a + b
	switch {
	case a > 0 && b > 0 && sum < 0:
		return math.MaxInt64
	case a < 0 && b < 0 && sum >= 0:
		return math.MinInt64
	}

	return sum
}

// materialize turns a window over sorted into a Team with ascending IDs.
func materialize(sorted []Player, w Window) Team {
	members := make([]int, 0, w.Len())
	for _, p := range sorted[w.Begin:w.End] {
		members = append(members, p.ID)
	}
	slices.Sort(members)

	return Team{Total: w.Sum, Members: members}
}
