package emitter

import (
	"fmt"

	"github.com/creepebucket/AcaciaMC/internal/ir"
)

func (r *renderer) renderBlock(instrs []*ir.Instr) []string {
	var lines []string
	for _, in := range instrs {
		lines = append(lines, r.renderInstr(in)...)
	}
	return lines
}

func (r *renderer) renderInstr(in *ir.Instr) []string {
	switch in.Kind {
	case ir.OpConditional:
		return r.renderConditional(in)
	case ir.OpCall:
		return []string{"function " + r.cfg.qualify(in.Target)}
	default:
		return []string{renderSimple(in, r.cfg)}
	}
}

func (r *renderer) renderConditional(in *ir.Instr) []string {
	var out []string
	out = append(out, r.renderBranch(in.Cond, r.renderBlock(in.Then))...)
	if len(in.Else) > 0 {
		out = append(out, r.renderBranch(negate(in.Cond), r.renderBlock(in.Else))...)
	}
	return out
}

// renderBranch folds body into the execute chain when it fits the
// max-inline budget, otherwise sinks it into a fresh helper file called
// once from the execute chain (spec.md §4.7).
func (r *renderer) renderBranch(cond *ir.Cond, body []string) []string {
	if len(body) == 0 {
		return nil
	}
	condStr := renderCond(cond, r.cfg.scoreboard())
	if len(body) <= r.cfg.maxInline() {
		lines := make([]string, len(body))
		for i, line := range body {
			lines[i] = "execute " + condStr + " run " + line
		}
		return lines
	}
	helper := r.newHelperPath()
	r.setFile(helper, body)
	return []string{"execute " + condStr + " run function " + r.cfg.qualify(helper)}
}

func renderCond(c *ir.Cond, objective string) string {
	verb := "if"
	if c.Unless {
		verb = "unless"
	}
	rng := fmt.Sprintf("%d", c.Min)
	if c.Max != c.Min {
		rng = fmt.Sprintf("%d..%d", c.Min, c.Max)
	}
	return fmt.Sprintf("%s score %s %s matches %s", verb, c.Slot.Name, objective, rng)
}

func negate(c *ir.Cond) *ir.Cond {
	return &ir.Cond{Slot: c.Slot, Min: c.Min, Max: c.Max, Unless: !c.Unless}
}

const opSelectorSelf = "@s"
const tellrawSelectorAll = "@a"

func selectorOr(sel, fallback string) string {
	if sel == "" {
		return fallback
	}
	return sel
}

func renderSimple(in *ir.Instr, cfg Config) string {
	obj := cfg.scoreboard()
	switch in.Kind {
	case ir.OpAssignLiteral:
		return fmt.Sprintf("scoreboard players set %s %s %d", in.Dst.Name, obj, in.Lit)
	case ir.OpScoreAdd:
		return scoreOp(in, obj, "+=")
	case ir.OpScoreSub:
		return scoreOp(in, obj, "-=")
	case ir.OpScoreMul:
		return scoreOp(in, obj, "*=")
	case ir.OpScoreDiv:
		return scoreOp(in, obj, "/=")
	case ir.OpScoreMod:
		return scoreOp(in, obj, "%=")
	case ir.OpScoreCopy:
		return scoreOp(in, obj, "=")
	case ir.OpTagAdd:
		return fmt.Sprintf("tag %s add %s", selectorOr(in.Selector, opSelectorSelf), in.Tag)
	case ir.OpTagRemove:
		return fmt.Sprintf("tag %s remove %s", selectorOr(in.Selector, opSelectorSelf), in.Tag)
	case ir.OpRaw:
		return in.Line
	case ir.OpTellraw:
		return fmt.Sprintf("tellraw %s {\"text\":%q}", selectorOr(in.Selector, tellrawSelectorAll), in.Line)
	default:
		return fmt.Sprintf("# unhandled ir op %d", in.Kind)
	}
}

func scoreOp(in *ir.Instr, objective, op string) string {
	return fmt.Sprintf("scoreboard players operation %s %s %s %s %s", in.Dst.Name, objective, op, in.Src.Name, objective)
}
