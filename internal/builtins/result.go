package builtins

import (
	"github.com/creepebucket/AcaciaMC/internal/ir"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
)

func init() {
	register(&Func{Name: "print", Emit: emitTellraw})
	register(&Func{Name: "tellraw", Emit: emitTellraw})
}

// emitTellraw lowers print(...)/tellraw(...) to a single tellraw command,
// concatenating every argument's textual rendering (tools/resultlib.py's
// tell() helper, restored per the math/print supplemented-feature note).
func emitTellraw(args []*consteval.Value) []*ir.Instr {
	var text string
	for _, v := range args {
		text += v.Text()
	}
	return []*ir.Instr{{Kind: ir.OpTellraw, Line: text}}
}
