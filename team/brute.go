// SPDX-License-Identifier: MIT

package team

// SelectBruteForce is the exhaustive O(N²) reference for SelectMaximalTeam.
//
// Every contiguous block of the sorted roster is tested against the balance
// rule, single players included. Blocks are visited by ascending start, then
// ascending end, and only strict improvements are kept.
//
// For rosters without negative effectiveness both selectors agree on Total.
// Members may differ when several blocks share the best total. With negative
// values the fast selector is not exhaustive and the reference may find a
// larger total.
//
// Complexity: O(N²) time, O(N) memory.
func SelectBruteForce(players []Player) Team {
	if len(players) == 0 {
		return Team{Total: 0, Members: []int{}}
	}

	sorted := SortPlayers(players)
	prefix := prefixSums(sorted)
	n := len(sorted)

	best := Window{Begin: 0, End: 1, Sum: sorted[0].Effectiveness}
	var begin, end int
	for begin = 0; begin < n; begin++ {
		if sum := sorted[begin].Effectiveness; sum > best.Sum {
			best = Window{Begin: begin, End: begin + 1, Sum: sum}
		}
		if begin+1 == n {
			break
		}
		ceiling := pairCeiling(sorted[begin].Effectiveness, sorted[begin+1].Effectiveness)
		for end = begin + 2; end <= n; end++ {
			// sorted ⇒ the last member is the strongest one
			if sorted[end-1].Effectiveness > ceiling {
				break
			}
			if sum := prefix[end] - prefix[begin]; sum > best.Sum {
				best = Window{Begin: begin, End: end, Sum: sum}
			}
		}
	}

	return materialize(sorted, best)
}

// IsBalanced reports whether players form a valid team: nobody is more
// effective than the two weakest members combined. One player is always
// balanced; an empty group is not a team.
func IsBalanced(players []Player) bool {
	switch len(players) {
	case 0:
		return false
	case 1:
		return true
	}

	sorted := SortPlayers(players)
	ceiling := pairCeiling(sorted[0].Effectiveness, sorted[1].Effectiveness)

	return sorted[len(sorted)-1].Effectiveness <= ceiling
}

// NewPlayers builds a roster from effectiveness values in input order,
// assigning IDs 1..N.
func NewPlayers(effectiveness []int64) []Player {
	players := make([]Player, len(effectiveness))
	for i, e := range effectiveness {
		players[i] = Player{Effectiveness: e, ID: i + 1}
	}

	return players
}
