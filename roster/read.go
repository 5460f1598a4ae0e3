// SPDX-License-Identifier: MIT

package roster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/footballteam/team"
)

// maxPrealloc bounds the capacity reserved from the declared count.
const maxPrealloc = 1 << 16

// Read parses a roster from r. Tokens after the N-th value are ignored.
//
// Errors:
//   - ErrMissingCount     — r holds no tokens.
//   - ErrBadCount         — the count is not a non-negative integer.
//   - ErrBadEffectiveness — a value is not a 64-bit signed integer.
//   - ErrShortInput       — r ends before N values were read.
//   - any error returned by r itself.
func Read(r io.Reader) ([]team.Player, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("roster: read count: %w", err)
		}
		return nil, ErrMissingCount
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("count %q: %w", sc.Text(), ErrBadCount)
	}

	// n is not trusted until its values are read
	players := make([]team.Player, 0, min(n, maxPrealloc))
	var i int
	for i = 1; i <= n; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("roster: read player %d: %w", i, err)
			}
			return nil, fmt.Errorf("got %d of %d values: %w", i-1, n, ErrShortInput)
		}
		e, perr := strconv.ParseInt(sc.Text(), 10, 64)
		if perr != nil {
			return nil, fmt.Errorf("player %d value %q: %w", i, sc.Text(), ErrBadEffectiveness)
		}
		players = append(players, team.Player{Effectiveness: e, ID: i})
	}

	return players, nil
}
