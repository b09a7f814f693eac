// Package objects holds Acacia's compile-time-only geometry and selector
// built-ins: Pos, Offset, Rot, and the Enfilter predicate builder
// (SPEC_FULL.md §5, restored from objects/rotation.py and
// mccmdgen/expression/entity_filter.py in original_source/acaciamc). None of
// these have a runtime form — spec.md §3's storability axes mark Pos/Rot/
// Offset/Enfilter compile-time only — so every value here is fully resolved
// during analysis and only ever contributes literal command text or
// `execute` subcommand context, never a scoreboard slot.
package objects

import "strconv"

// ExecuteSubcmd is one `execute <subcommand> <args>` fragment accumulated by
// Pos/Rot while the compiler resolves where/how a command should run, e.g.
// `positioned ~ ~ ~` or `rotated as @e[...]`. Mirrors the original's
// cmds.ExecuteEnv.
type ExecuteSubcmd struct {
	Subcmd string
	Args   string
}

func (e ExecuteSubcmd) String() string {
	return e.Subcmd + " " + e.Args
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
