// SPDX-License-Identifier: MIT

package roster

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/footballteam/team"
)

// Write prints t as two lines: the total, then the member IDs separated by
// single spaces. An empty team prints "0\n\n".
func Write(w io.Writer, t team.Team) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], t.Total, 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	if err := writeInts(bw, buf, t.Members); err != nil {
		return err
	}

	return bw.Flush()
}

// Format prints players in the input format accepted by Read, in slice
// order. Read(Format(players)) restores the effectiveness values and assigns
// IDs 1..N.
func Format(w io.Writer, players []team.Player) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(len(players)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	values := make([]int64, len(players))
	for i, p := range players {
		values[i] = p.Effectiveness
	}
	if err := writeInts(bw, buf, values); err != nil {
		return err
	}

	return bw.Flush()
}

// writeInts writes values space-separated and terminates the line.
func writeInts[T int | int64](bw *bufio.Writer, buf []byte, values []T) error {
	for i, v := range values {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.WriteByte('\n')
}
