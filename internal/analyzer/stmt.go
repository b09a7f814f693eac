package analyzer

import (
	"github.com/creepebucket/AcaciaMC/internal/builtins"
	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/ir"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
	"github.com/creepebucket/AcaciaMC/internal/semantics/symbols"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// analyzeStmt lowers one statement to its runtime instruction sequence,
// declaring any names it introduces into scope as a side effect.
func (a *Analyzer) analyzeStmt(stmt ast.Statement, scope *symbols.Scope) []*ir.Instr {
	switch s := stmt.(type) {
	case *ast.PassStmt:
		return nil

	case *ast.VarDecl:
		return a.analyzeVarDecl(s, scope)

	case *ast.ConstDecl:
		v, ok := a.mustConst(s.Init, scope)
		if !ok {
			return nil
		}
		if _, dup := scope.Declare(&symbols.Binding{Name: s.Name.Name, Kind: symbols.BindConst, Type: v.Type, Slot: v}); !dup {
			a.shadowed(s.Name)
		}
		return nil

	case *ast.ReferenceDecl:
		return a.analyzeReferenceDecl(s, scope)

	case *ast.DeclAssignStmt:
		slot, instrs, t, ok := a.lowerExpr(s.Rhs, scope)
		if !ok {
			return nil
		}
		if _, dup := scope.Declare(&symbols.Binding{Name: s.Name.Name, Kind: symbols.BindRuntimeVar, Type: t, Slot: slot}); !dup {
			a.shadowed(s.Name)
		}
		return instrs

	case *ast.AssignStmt:
		return a.analyzeAssign(s, scope)

	case *ast.AugAssignStmt:
		return a.analyzeAugAssign(s, scope)

	case *ast.IfStmt:
		return a.analyzeIf(s, scope)

	case *ast.WhileStmt:
		return a.analyzeWhile(s, scope)

	case *ast.ForInStmt:
		return a.analyzeForIn(s, scope)

	case *ast.RawCommandStmt:
		return a.analyzeRawCommand(s, scope)

	case *ast.ResultStmt:
		if !scope.HasResult {
			a.Diag.Add(diagnostics.NewError("'result' is only valid inside a function body").
				WithCode(diagnostics.ErrResultOutOfFn).
				WithPrimaryLabel(a.FilePath, s.Loc(), "not inside a function"))
			a.fail()
		}
		return nil

	case *ast.NewCallStmt:
		if !scope.InNewMethod {
			a.Diag.Add(diagnostics.NewError("'new(...)' is only valid inside an entity template's 'new' method").
				WithCode(diagnostics.ErrNewOutOfScope).
				WithPrimaryLabel(a.FilePath, s.Loc(), "not inside a 'new' method"))
			a.fail()
		}
		return nil

	case *ast.ImportStmt:
		// The imported module is not loaded or resolved; only the local
		// name is reserved so references to it resolve instead of raising
		// *name-not-defined*.
		name := lastPathSegment(s.Path)
		if s.Alias != nil {
			name = s.Alias.Name
		}
		scope.Put(&symbols.Binding{Name: name, Kind: symbols.BindModule, Decl: s})
		return nil

	case *ast.ExprStmt:
		return a.analyzeExprStmt(s, scope)

	default:
		a.Diag.Add(diagnostics.NewError("statement is not supported here").
			WithCode(diagnostics.ErrInvalidOperand).
			WithPrimaryLabel(a.FilePath, stmt.Loc(), "unsupported statement"))
		a.fail()
		return nil
	}
}

func (a *Analyzer) shadowed(name *ast.IdentifierExpr) {
	a.Diag.Add(diagnostics.NewError("'"+name.Name+"' is already declared in this scope").
		WithCode(diagnostics.ErrShadowedName).
		WithPrimaryLabel(a.FilePath, name.Loc(), "redeclared here"))
	a.fail()
}

func lastPathSegment(path string) string {
	last := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' || path[i] == '/' {
			last = path[i+1:]
			break
		}
	}
	return last
}

func (a *Analyzer) analyzeVarDecl(s *ast.VarDecl, scope *symbols.Scope) []*ir.Instr {
	slot, instrs, t, ok := a.lowerExpr(s.Init, scope)
	if !ok {
		return nil
	}
	if s.Type != nil {
		annotated := a.resolveTypeExpr(s.Type, scope)
		if !typesEqual(annotated, t) {
			a.Diag.Add(diagnostics.NewError("initializer type does not match the declared type").
				WithCode(diagnostics.ErrWrongAssignType).
				WithPrimaryLabel(a.FilePath, s.Init.Loc(), "has type "+t.String()).
				WithSecondaryLabel(a.FilePath, s.Type.Loc(), "declared as "+annotated.String()))
			a.fail()
			return instrs
		}
	}
	if _, dup := scope.Declare(&symbols.Binding{Name: s.Name.Name, Kind: symbols.BindRuntimeVar, Type: t, Slot: slot}); !dup {
		a.shadowed(s.Name)
	}
	return instrs
}

func (a *Analyzer) analyzeReferenceDecl(s *ast.ReferenceDecl, scope *symbols.Scope) []*ir.Instr {
	id, ok := s.Target.(*ast.IdentifierExpr)
	if !ok {
		a.Diag.Add(diagnostics.NewError("reference target must be an assignable name").
			WithCode(diagnostics.ErrCantRef).
			WithPrimaryLabel(a.FilePath, s.Target.Loc(), "not assignable"))
		a.fail()
		return nil
	}
	b, ok := scope.Lookup(id.Name)
	if !ok || (b.Kind != symbols.BindRuntimeVar && b.Kind != symbols.BindReference) {
		a.Diag.Add(diagnostics.NewError("'"+id.Name+"' is not a referenceable runtime location").
			WithCode(diagnostics.ErrCantRef).
			WithPrimaryLabel(a.FilePath, s.Target.Loc(), "cannot take a reference to this"))
		a.fail()
		return nil
	}
	if _, dup := scope.Declare(&symbols.Binding{Name: s.Name.Name, Kind: symbols.BindReference, Type: b.Type, Slot: b.Slot}); !dup {
		a.shadowed(s.Name)
	}
	return nil
}

func (a *Analyzer) analyzeAssign(s *ast.AssignStmt, scope *symbols.Scope) []*ir.Instr {
	id, ok := s.Lhs.(*ast.IdentifierExpr)
	if !ok {
		a.Diag.Add(diagnostics.NewError("assignment target must be a name").
			WithCode(diagnostics.ErrInvalidAssignTgt).
			WithPrimaryLabel(a.FilePath, s.Lhs.Loc(), "not assignable"))
		a.fail()
		return nil
	}
	b, ok := scope.Lookup(id.Name)
	if !ok || (b.Kind != symbols.BindRuntimeVar && b.Kind != symbols.BindReference) {
		a.Diag.Add(diagnostics.NewError("'"+id.Name+"' is not an assignable runtime location").
			WithCode(diagnostics.ErrInvalidAssignTgt).
			WithPrimaryLabel(a.FilePath, s.Lhs.Loc(), "cannot assign to this"))
		a.fail()
		return nil
	}
	slot, instrs, t, ok := a.lowerExpr(s.Rhs, scope)
	if !ok {
		return nil
	}
	if !typesEqual(b.Type, t) {
		a.Diag.Add(diagnostics.NewError("assigned value's type does not match '"+id.Name+"'").
			WithCode(diagnostics.ErrWrongAssignType).
			WithPrimaryLabel(a.FilePath, s.Rhs.Loc(), "has type "+t.String()))
		a.fail()
		return instrs
	}
	dst, _ := b.Slot.(*ir.Slot)
	return append(instrs, &ir.Instr{Kind: ir.OpScoreCopy, Dst: dst, Src: slot})
}

func (a *Analyzer) analyzeAugAssign(s *ast.AugAssignStmt, scope *symbols.Scope) []*ir.Instr {
	id, ok := s.Lhs.(*ast.IdentifierExpr)
	if !ok {
		a.Diag.Add(diagnostics.NewError("assignment target must be a name").
			WithCode(diagnostics.ErrInvalidAssignTgt).
			WithPrimaryLabel(a.FilePath, s.Lhs.Loc(), "not assignable"))
		a.fail()
		return nil
	}
	b, ok := scope.Lookup(id.Name)
	if !ok || (b.Kind != symbols.BindRuntimeVar && b.Kind != symbols.BindReference) {
		a.Diag.Add(diagnostics.NewError("'"+id.Name+"' is not an assignable runtime location").
			WithCode(diagnostics.ErrInvalidAssignTgt).
			WithPrimaryLabel(a.FilePath, s.Lhs.Loc(), "cannot assign to this"))
		a.fail()
		return nil
	}
	opKind, ok := tokOpToIR(s.Op)
	if !ok {
		a.Diag.Add(diagnostics.NewError("unsupported augmented-assignment operator").
			WithCode(diagnostics.ErrInvalidOperand).
			WithPrimaryLabel(a.FilePath, s.Loc(), "here"))
		a.fail()
		return nil
	}
	rslot, instrs, _, ok := a.lowerExpr(s.Rhs, scope)
	if !ok {
		return nil
	}
	dst, _ := b.Slot.(*ir.Slot)
	return append(instrs, &ir.Instr{Kind: opKind, Dst: dst, Src: rslot})
}

func (a *Analyzer) analyzeIf(s *ast.IfStmt, scope *symbols.Scope) []*ir.Instr {
	cond, condInstrs, constVal, ok := a.lowerCond(s.Cond, scope)
	if !ok {
		return nil
	}
	if cond == nil {
		// Fully constant-folded: only the chosen branch is ever emitted
		// (spec.md §8 property 5).
		if constVal {
			return a.analyzeBlock(s.Body, scope)
		}
		return a.analyzeElse(s.Else, scope)
	}

	then := a.analyzeBlock(s.Body, symbols.NewScope(scope))
	var els []*ir.Instr
	if s.Else != nil {
		els = a.analyzeElse(s.Else, scope)
	}
	return append(condInstrs, &ir.Instr{Kind: ir.OpConditional, Cond: cond, Then: then, Else: els})
}

func (a *Analyzer) analyzeElse(els ast.Node, scope *symbols.Scope) []*ir.Instr {
	switch e := els.(type) {
	case nil:
		return nil
	case *ast.IfStmt:
		return a.analyzeIf(e, scope)
	case *ast.Block:
		return a.analyzeBlock(e, symbols.NewScope(scope))
	default:
		return nil
	}
}

func (a *Analyzer) analyzeBlock(b *ast.Block, scope *symbols.Scope) []*ir.Instr {
	var instrs []*ir.Instr
	for _, st := range b.Stmts {
		instrs = append(instrs, a.analyzeStmt(st, scope)...)
	}
	return instrs
}

// analyzeWhile lowers a runtime while-loop to a self-recursive helper
// interface: `execute if <cond> run { <body>; call helper }`, the common
// Minecraft datapack idiom for looping via function recursion. A
// constant-true condition is *endlesswhileloop*; a constant-false one
// contributes no instructions at all.
func (a *Analyzer) analyzeWhile(s *ast.WhileStmt, scope *symbols.Scope) []*ir.Instr {
	if v, ok := a.tryConst(s.Cond, scope); ok {
		if v.Kind != consteval.VBool {
			a.Diag.Add(diagnostics.NewError("condition must be bool").
				WithCode(diagnostics.ErrWrongWhileCond).
				WithPrimaryLabel(a.FilePath, s.Cond.Loc(), "not a bool value"))
			a.fail()
			return nil
		}
		if v.B {
			a.Diag.Add(diagnostics.NewError("while loop condition is always true").
				WithCode(diagnostics.ErrEndlessWhile).
				WithPrimaryLabel(a.FilePath, s.Cond.Loc(), "never becomes false"))
			a.fail()
		}
		return nil
	}

	cond, condInstrs, _, ok := a.lowerCond(s.Cond, scope)
	if !ok {
		return nil
	}
	helperPath := a.newHelperPath("while")
	bodyScope := symbols.NewScope(scope)
	body := a.analyzeBlock(s.Body, bodyScope)
	body = append(body, &ir.Instr{Kind: ir.OpCall, Target: helperPath})

	helperCond, helperCondInstrs, _, ok := a.lowerCond(s.Cond, bodyScope)
	if !ok {
		return nil
	}
	helperBody := append(helperCondInstrs, &ir.Instr{Kind: ir.OpConditional, Cond: helperCond, Then: body})
	a.prog.Interfaces = append(a.prog.Interfaces, &ir.Interface{Path: helperPath, Body: helperBody})

	return append(condInstrs, &ir.Instr{Kind: ir.OpConditional, Cond: cond, Then: []*ir.Instr{{Kind: ir.OpCall, Target: helperPath}}})
}

func (a *Analyzer) newHelperPath(prefix string) string {
	n := a.slotN
	a.slotN++
	return a.Cfg.TagPrefix + "_" + prefix + itoa(n)
}

// analyzeForIn unrolls a for-in loop over a compile-time list or map
// (spec.md §4.3): Seq must fold to a constant container, and the body is
// analyzed once per element with Var bound as a fresh compile-time
// constant each iteration.
func (a *Analyzer) analyzeForIn(s *ast.ForInStmt, scope *symbols.Scope) []*ir.Instr {
	seq, ok := a.tryConst(s.Seq, scope)
	if !ok {
		a.Diag.Add(diagnostics.NewError("for-in sequence must be a compile-time list or map").
			WithCode(diagnostics.ErrInvalidOperand).
			WithPrimaryLabel(a.FilePath, s.Seq.Loc(), "not a compile-time constant"))
		a.fail()
		return nil
	}

	var instrs []*ir.Instr
	switch seq.Kind {
	case consteval.VList:
		for _, el := range seq.List {
			iter := symbols.NewScope(scope)
			iter.Put(&symbols.Binding{Name: s.Var.Name, Kind: symbols.BindConst, Type: el.Type, Slot: el})
			instrs = append(instrs, a.analyzeBlock(s.Body, iter)...)
		}
	case consteval.VMap:
		for _, en := range seq.Map {
			iter := symbols.NewScope(scope)
			iter.Put(&symbols.Binding{Name: s.Var.Name, Kind: symbols.BindConst, Type: en.Key.Type, Slot: en.Key})
			instrs = append(instrs, a.analyzeBlock(s.Body, iter)...)
		}
	default:
		a.Diag.Add(diagnostics.NewError("for-in sequence must be a compile-time list or map").
			WithCode(diagnostics.ErrInvalidOperand).
			WithPrimaryLabel(a.FilePath, s.Seq.Loc(), "not iterable"))
		a.fail()
		return nil
	}
	return instrs
}

// analyzeRawCommand lowers a verbatim `/`-prefixed command, substituting
// `${name}` holes naming a compile-time constant with its rendered text
// (spec.md §4.1). A hole naming a runtime variable has no textual
// representation to splice into a command string and is rejected.
func (a *Analyzer) analyzeRawCommand(s *ast.RawCommandStmt, scope *symbols.Scope) []*ir.Instr {
	var line string
	for _, seg := range s.Segments {
		switch seg.Kind {
		case tokens.SegText:
			line += seg.Text
		case tokens.SegInterp:
			b, ok := scope.Lookup(seg.Text)
			if !ok || b.Kind != symbols.BindConst {
				a.Diag.Add(diagnostics.NewError("'"+seg.Text+"' is not a compile-time constant").
					WithCode(diagnostics.ErrNotConstName).
					WithPrimaryLabel(a.FilePath, s.Loc(), "cannot be interpolated into a raw command"))
				a.fail()
				continue
			}
			v, _ := b.Slot.(*consteval.Value)
			line += v.Text()
		}
	}
	return []*ir.Instr{{Kind: ir.OpRaw, Line: line}}
}

func (a *Analyzer) analyzeExprStmt(s *ast.ExprStmt, scope *symbols.Scope) []*ir.Instr {
	if call, ok := s.X.(*ast.CallExpr); ok {
		if id, ok := call.Fun.(*ast.IdentifierExpr); ok {
			if _, isUserFunc := a.funcs[id.Name]; !isUserFunc {
				if fn, ok := builtins.Lookup(id.Name); ok && fn.Emit != nil {
					return a.lowerBuiltinEmit(call, fn, scope)
				}
			}
		}
		if _, ok := a.tryConstCall(call, scope); ok {
			return nil // pure fold with no observable side effect
		}
	}
	_, instrs, _, ok := a.lowerExpr(s.X, scope)
	if !ok {
		return nil
	}
	return instrs
}

// lowerBuiltinEmit folds every argument of a statement-position native
// call (print/tellraw) and hands them to the builtin's Emit function.
// Only compile-time-foldable arguments are supported by this pass; runtime
// score interpolation into tellraw's score component is future work.
func (a *Analyzer) lowerBuiltinEmit(call *ast.CallExpr, fn *builtins.Func, scope *symbols.Scope) []*ir.Instr {
	args := make([]*consteval.Value, 0, len(call.Args))
	for _, argExpr := range call.Args {
		if kv, ok := argExpr.(*ast.KeyValueExpr); ok {
			argExpr = kv.Value
		}
		v, ok := a.tryConst(argExpr, scope)
		if !ok {
			a.Diag.Add(diagnostics.NewError(fn.Name+"() arguments must be compile-time constants").
				WithCode(diagnostics.ErrInvalidOperand).
				WithPrimaryLabel(a.FilePath, argExpr.Loc(), "not a compile-time constant"))
			a.fail()
			return nil
		}
		args = append(args, v)
	}
	return fn.Emit(args)
}

func typesEqual(a, b types.Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}
