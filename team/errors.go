// SPDX-License-Identifier: MIT

package team

import "errors"

// Selection itself never fails; these sentinels belong to the reporting
// helpers. Match them with errors.Is.
var (
	// ErrEmptyTeam indicates that a summary was requested for a team without members.
	ErrEmptyTeam = errors.New("team: team has no members")

	// ErrUnknownPlayer indicates that a team member ID is absent from the roster.
	ErrUnknownPlayer = errors.New("team: member not found in roster")
)
