// SPDX-License-Identifier: MIT

package roster

import "errors"

// Sentinel errors are never formatted at definition site. Read and Generate
// wrap them with positional context using %w.
var (
	// ErrMissingCount indicates that the input holds no player count at all.
	ErrMissingCount = errors.New("roster: missing player count")

	// ErrBadCount indicates that the player count is not a non-negative integer.
	ErrBadCount = errors.New("roster: invalid player count")

	// ErrBadEffectiveness indicates a token that is not a 64-bit signed integer.
	ErrBadEffectiveness = errors.New("roster: invalid effectiveness value")

	// ErrShortInput indicates fewer effectiveness values than the declared count.
	ErrShortInput = errors.New("roster: fewer values than declared count")

	// ErrNegativeSize indicates a negative roster size passed to Generate.
	ErrNegativeSize = errors.New("roster: negative roster size")

	// ErrBadRange indicates an empty or unrepresentable effectiveness range.
	ErrBadRange = errors.New("roster: invalid effectiveness range")
)
