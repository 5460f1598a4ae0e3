// Package footballteam picks the most effective balanced team from a roster
// of players.
//
// 🚀 What is footballteam?
//
//	A small, dependency-light library plus a batch CLI:
//		• team/    — the selector: sort, prefix sums, one binary search per start
//		• roster/  — text input/output and reproducible random rosters
//		• cmd/footballteam — stdin → stdout solver with generate/verify helpers
//
// ✨ The rule:
//
//	A team is a block of players contiguous in effectiveness order in which
//	nobody is more effective than the two weakest members combined. The
//	selector returns the block with the largest total, in O(N log N).
//
// Quick example:
//
//	$ printf '5\n1 2 3 4 5\n' | footballteam
//	14
//	2 3 4 5
//
//	go get github.com/katalvlaran/footballteam/team
package footballteam
