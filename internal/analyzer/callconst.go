package analyzer

import (
	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
	"github.com/creepebucket/AcaciaMC/internal/semantics/symbols"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// callConst fully evaluates a call to decl whose every argument is a
// compile-time constant, by interpreting its body as a straight-line (plus
// if/elif/else) const program. This is what makes spec.md §8 S2 -- an
// arithmetic function invoked with literal arguments -- fold to a single
// constant with no runtime call emitted at all.
//
// Bodies containing while-loops (or any other statement kind runConstBody
// does not handle) are out of reach of this interpreter: the call does not
// fold, and lowerExpr then reports it as an unsupported runtime
// expression. Calls to other user functions inside the body fold through
// mustConst like any other constant call.
func (a *Analyzer) callConst(decl *ast.FuncDecl, args []*consteval.Value) (*consteval.Value, bool) {
	fnScope := symbols.NewScope(a.globals)
	fnScope.Runtime = false
	fnScope.HasResult = true
	if decl.Result != nil {
		fnScope.ResultType = a.resolveTypeExpr(decl.Result, a.globals)
	} else {
		fnScope.ResultType = types.None
	}

	for i, p := range decl.Params {
		var v *consteval.Value
		if i < len(args) {
			v = args[i]
		} else if p.Default != nil {
			dv, ok := a.mustConst(p.Default, a.globals)
			if !ok {
				return nil, false
			}
			v = dv
		} else {
			return nil, false
		}
		fnScope.Put(&symbols.Binding{Name: p.Name.Name, Kind: symbols.BindConst, Type: v.Type, Slot: v})
	}

	v, returned, ok := a.runConstBody(decl.Body.Stmts, fnScope)
	if !ok {
		return nil, false
	}
	if !returned {
		return consteval.NoneVal(), true
	}
	return v, true
}

// runConstBody interprets stmts as a const program; returned is true once
// a ResultStmt has fired, at which point the caller must stop descending
// into sibling statements.
func (a *Analyzer) runConstBody(stmts []ast.Statement, scope *symbols.Scope) (*consteval.Value, bool, bool) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.PassStmt:
			continue
		case *ast.ConstDecl:
			v, ok := a.mustConst(s.Init, scope)
			if !ok {
				return nil, false, false
			}
			scope.Put(&symbols.Binding{Name: s.Name.Name, Kind: symbols.BindConst, Type: v.Type, Slot: v})
		case *ast.VarDecl:
			v, ok := a.mustConst(s.Init, scope)
			if !ok {
				return nil, false, false
			}
			scope.Put(&symbols.Binding{Name: s.Name.Name, Kind: symbols.BindConst, Type: v.Type, Slot: v})
		case *ast.DeclAssignStmt:
			v, ok := a.mustConst(s.Rhs, scope)
			if !ok {
				return nil, false, false
			}
			scope.Put(&symbols.Binding{Name: s.Name.Name, Kind: symbols.BindConst, Type: v.Type, Slot: v})
		case *ast.AssignStmt:
			id, ok := s.Lhs.(*ast.IdentifierExpr)
			if !ok {
				return nil, false, false
			}
			v, ok := a.mustConst(s.Rhs, scope)
			if !ok {
				return nil, false, false
			}
			b, ok := scope.Lookup(id.Name)
			if !ok {
				return nil, false, false
			}
			b.Slot = v
		case *ast.AugAssignStmt:
			id, ok := s.Lhs.(*ast.IdentifierExpr)
			if !ok {
				return nil, false, false
			}
			b, ok := scope.Lookup(id.Name)
			if !ok {
				return nil, false, false
			}
			cur, _ := b.Slot.(*consteval.Value)
			binOp, ok := augToBinOp(s.Op)
			if !ok {
				return nil, false, false
			}
			synthetic := &ast.BinaryExpr{X: litExprOf(cur), Y: s.Rhs, Op: binOp, Location: s.Location}
			v, ok := a.mustConst(synthetic, scope)
			if !ok {
				return nil, false, false
			}
			b.Slot = v
		case *ast.IfStmt:
			cond, ok := a.mustConst(s.Cond, scope)
			if !ok {
				return nil, false, false
			}
			if cond.Kind != consteval.VBool {
				a.Diag.Add(diagnostics.NewError("condition must be bool").
					WithCode(diagnostics.ErrWrongIfCond).
					WithPrimaryLabel(a.FilePath, s.Cond.Loc(), "not a bool value"))
				return nil, false, false
			}
			if cond.B {
				v, ret, ok := a.runConstBody(s.Body.Stmts, symbols.NewScope(scope))
				if !ok {
					return nil, false, false
				}
				if ret {
					return v, true, true
				}
			} else if s.Else != nil {
				var elseStmts []ast.Statement
				switch e := s.Else.(type) {
				case *ast.IfStmt:
					elseStmts = []ast.Statement{e}
				case *ast.Block:
					elseStmts = e.Stmts
				}
				v, ret, ok := a.runConstBody(elseStmts, symbols.NewScope(scope))
				if !ok {
					return nil, false, false
				}
				if ret {
					return v, true, true
				}
			}
		case *ast.ResultStmt:
			if s.Value == nil {
				return consteval.NoneVal(), true, true
			}
			v, ok := a.mustConst(s.Value, scope)
			if !ok {
				return nil, false, false
			}
			return v, true, true
		default:
			return nil, false, false
		}
	}
	return nil, false, true
}

// litExprOf wraps an already-evaluated constant back into a literal-shaped
// BasicLit so it can be fed through the binary-op evaluator uniformly when
// desugaring `lhs += rhs` to `lhs = lhs + rhs`; Value carries no source
// span, so this node is only ever used internally and never surfaced in a
// diagnostic.
func litExprOf(v *consteval.Value) ast.Expression {
	switch v.Kind {
	case consteval.VInt:
		return &ast.BasicLit{Kind: ast.INT, Value: itoa(int(v.I))}
	case consteval.VFloat:
		return &ast.BasicLit{Kind: ast.FLOAT, Value: itoa(int(v.F))}
	case consteval.VBool:
		s := "False"
		if v.B {
			s = "True"
		}
		return &ast.BasicLit{Kind: ast.BOOL, Value: s}
	default:
		return &ast.BasicLit{Kind: ast.NONE}
	}
}

// augToBinOp maps an augmented-assignment operator to the plain binary
// operator the const evaluator understands.
func augToBinOp(op tokens.Kind) (tokens.Kind, bool) {
	switch op {
	case tokens.PLUS_EQ:
		return tokens.PLUS, true
	case tokens.MINUS_EQ:
		return tokens.MINUS, true
	case tokens.STAR_EQ:
		return tokens.STAR, true
	case tokens.SLASH_EQ:
		return tokens.SLASH, true
	case tokens.PERCENT_EQ:
		return tokens.PERCENT, true
	}
	return op, false
}
