// SPDX-License-Identifier: MIT

// Package roster is the text boundary of the team selector.
//
// Input format (whitespace-separated tokens):
//
//	N
//	e_1 e_2 ... e_N
//
// Player i (1-based) receives ID i. Output format:
//
//	<total>
//	<id_1> <id_2> ... <id_k>
//
// Read fails fast on malformed input and reports the problem through one of
// the sentinel errors in errors.go; callers match them with errors.Is.
// Generate builds deterministic random rosters for tests, benchmarks and the
// `generate` command.
package roster
