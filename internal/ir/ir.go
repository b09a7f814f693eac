// Package ir is the intermediate operation sequence spec.md §3
// "Intermediate operation (IR instruction)" describes: a tagged value
// carrying operand references that resolve to allocated scoreboard names
// or selectors at emission (spec.md §4.7). The analyzer lowers runtime
// expressions and statements into Instr sequences; the emitter is the only
// stage that turns an Instr into command text.
package ir

// Kind tags one intermediate operation.
type Kind int

const (
	OpAssignLiteral Kind = iota // Dst = Lit
	OpScoreAdd                  // Dst += Src
	OpScoreSub                  // Dst -= Src
	OpScoreMul                  // Dst *= Src
	OpScoreDiv                  // Dst /= Src
	OpScoreMod                  // Dst %= Src
	OpScoreCopy                 // Dst = Src
	OpTagAdd                    // tag Selector add Tag
	OpTagRemove                 // tag Selector remove Tag
	OpConditional                // execute if <Cond> run {Then} else {Else}
	OpCall                      // invoke the interface/function file at Target
	OpRaw                       // verbatim command line, already interpolated
	OpTellraw                   // tellraw Selector {"text": Line}, Line rendered as a plain text component
)

// Slot is one allocated scoreboard name: the (objective, player-name) pair
// spec.md's glossary calls a "scoreboard slot". Objective is fixed per
// compilation (the `--scoreboard` option); only Name varies per slot.
type Slot struct {
	Name string
}

// Cond is a scoreboard-range test: `score <Slot> <objective> matches Min..Max`,
// optionally negated (`unless` instead of `if`).
type Cond struct {
	Slot     *Slot
	Min, Max int32
	Unless   bool
}

// Instr is one intermediate operation.
type Instr struct {
	Kind Kind

	Dst *Slot
	Src *Slot
	Lit int32

	Tag      string
	Selector string // entity selector text the op applies to; "@s" if empty ("@a" for OpTellraw)

	Cond *Cond
	Then []*Instr
	Else []*Instr

	Target string // OpCall: interface path, e.g. "combat.on_hit"
	Line   string // OpRaw/OpTellraw: literal command text (minus leading '/')
}

// Interface is one `interface path.subpath:` declaration's lowered body,
// destined for its own `.mcfunction` file (spec.md §4.7).
type Interface struct {
	Path string
	Body []*Instr
}

// Program is everything the analyzer produced for one compilation: the
// literal-constant initializers belonging in the init file, the top-level
// main-file body, and every declared interface.
type Program struct {
	Init       []*Instr
	Main       []*Instr
	Interfaces []*Interface
}
