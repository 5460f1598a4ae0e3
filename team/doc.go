// SPDX-License-Identifier: MIT

// Package team selects the most effective balanced team from a roster of
// players.
//
// 🚀 What is a balanced team?
//
//	Take any block of players that is contiguous once the roster is sorted
//	by effectiveness. The block is balanced when no member is more effective
//	than the two weakest members combined:
//
//	  max(e) ≤ e_min1 + e_min2
//
//	A single player is always a team on its own. Among all balanced blocks
//	we want the one with the largest total effectiveness.
//
// ✨ Key features:
//   - SelectMaximalTeam: O(N log N) sort + prefix sums + one binary search
//     per window start
//   - CandidateWindows: exposes the per-start windows the selector scores
//   - SelectBruteForce: O(N²) reference used to cross-check the selector
//   - IsBalanced: membership rule for an arbitrary group of players
//   - Summarize: descriptive statistics of a selected team
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/footballteam/team"
//
//	players := team.NewPlayers([]int64{1, 2, 3, 4, 5})
//	best := team.SelectMaximalTeam(players)
//	fmt.Println(best.Total, best.Members) // 14 [2 3 4 5]
//
// Determinism:
//
//	Players are ordered by (Effectiveness, ID). Ties between windows with the
//	same total keep the earliest window start, so identical rosters always
//	produce identical teams. The caller's slice is never reordered.
//
// Performance:
//
//   - Time:   O(N log N)
//   - Memory: O(N) (sorted copy, prefix sums, member ids)
//
// See example_test.go for runnable examples.
package team
