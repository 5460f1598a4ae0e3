// SPDX-License-Identifier: MIT

package cli

import "errors"

// ErrMismatch is returned by verify when the fast selector and the
// brute-force reference disagree on the best total.
var ErrMismatch = errors.New("cli: selector disagrees with brute-force reference")
