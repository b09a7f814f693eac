// Package analyzer is the central two-world walker spec.md §4.3 describes:
// it assigns every expression a static type and a world category, resolves
// names through the lexical scope stack, evaluates compile-time
// expressions eagerly via consteval, computes entity-template MROs via the
// entity package, and lowers runtime statements into the ir package's
// intermediate operation sequence for the emitter to consume.
package analyzer

import (
	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/ir"
	"github.com/creepebucket/AcaciaMC/internal/semantics/consteval"
	"github.com/creepebucket/AcaciaMC/internal/semantics/entity"
	"github.com/creepebucket/AcaciaMC/internal/semantics/symbols"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// Config carries the small set of CLI-configurable facts the analyzer
// needs while lowering (spec.md §6): the main/init file names are reserved
// interface paths, and the tag prefix namespaces virtual-dispatch tags.
type Config struct {
	MainFile  string
	InitFile  string
	TagPrefix string
}

// Analyzer walks one module's AST to a complete ir.Program.
type Analyzer struct {
	Diag     *diagnostics.DiagnosticBag
	FilePath string
	Cfg      Config

	eval *consteval.Evaluator

	funcs     map[string]*ast.FuncDecl
	templates map[string]*entity.Template
	structs   map[string]*types.StructType

	globals *symbols.Scope
	slotN   int

	prog *ir.Program
	ok   bool
}

// New creates an Analyzer for one module's worth of source.
func New(filePath string, diag *diagnostics.DiagnosticBag, cfg Config) *Analyzer {
	a := &Analyzer{
		Diag:      diag,
		FilePath:  filePath,
		Cfg:       cfg,
		eval:      &consteval.Evaluator{Diag: diag, FilePath: filePath},
		funcs:     map[string]*ast.FuncDecl{},
		templates: map[string]*entity.Template{},
		structs:   map[string]*types.StructType{},
		globals:   symbols.NewScope(nil),
		prog:      &ir.Program{},
		ok:        true,
	}
	a.globals.Runtime = true
	return a
}

// Run analyzes mod in full and returns the resulting program. ok reports
// whether analysis completed without error; callers must not emit a
// program with ok == false (spec.md §5 atomic-emission guarantee).
func (a *Analyzer) Run(mod *ast.Module) (*ir.Program, bool) {
	a.collectDecls(mod)
	a.buildTemplates(mod)
	for _, stmt := range mod.Stmts {
		switch stmt.(type) {
		case *ast.FuncDecl, *ast.EntityDecl, *ast.StructDecl:
			continue // handled by collectDecls/buildTemplates
		case *ast.InterfaceDecl:
			a.analyzeInterface(stmt.(*ast.InterfaceDecl))
		default:
			instrs := a.analyzeStmt(stmt, a.globals)
			switch stmt.(type) {
			case *ast.DeclAssignStmt, *ast.VarDecl:
				// A top-level declaration whose initializer folded to a
				// literal is set once, in the init file.
				if len(instrs) == 1 && instrs[0].Kind == ir.OpAssignLiteral {
					a.prog.Init = append(a.prog.Init, instrs...)
					continue
				}
			}
			a.prog.Main = append(a.prog.Main, instrs...)
		}
	}
	return a.prog, a.ok && !a.Diag.HasErrors()
}

func (a *Analyzer) fail() { a.ok = false }

func (a *Analyzer) newSlot() *ir.Slot {
	name := "v" + itoa(a.slotN)
	a.slotN++
	return &ir.Slot{Name: name}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// collectDecls pre-registers every top-level function/entity/struct name so
// forward references (a function calling one declared later, an entity
// naming a base declared later) resolve.
func (a *Analyzer) collectDecls(mod *ast.Module) {
	for _, stmt := range mod.Stmts {
		switch d := stmt.(type) {
		case *ast.FuncDecl:
			a.funcs[d.Name.Name] = d
			a.globals.Put(&symbols.Binding{Name: d.Name.Name, Kind: symbols.BindFunction, Decl: d})
		case *ast.EntityDecl:
			a.globals.Put(&symbols.Binding{Name: d.Name.Name, Kind: symbols.BindEntityTemplate, Decl: d})
		case *ast.StructDecl:
			a.globals.Put(&symbols.Binding{Name: d.Name.Name, Kind: symbols.BindStructTemplate, Decl: d})
		}
	}
}

// buildTemplates resolves every EntityDecl/StructDecl to its fully merged
// entity.Template / types.StructType, in dependency order (bases before
// derived), detecting reference cycles.
func (a *Analyzer) buildTemplates(mod *ast.Module) {
	entDecls := map[string]*ast.EntityDecl{}
	structDecls := map[string]*ast.StructDecl{}
	for _, stmt := range mod.Stmts {
		switch d := stmt.(type) {
		case *ast.EntityDecl:
			entDecls[d.Name.Name] = d
		case *ast.StructDecl:
			structDecls[d.Name.Name] = d
		}
	}

	building := map[string]bool{}
	var resolve func(name string) (*entity.Template, bool)
	resolve = func(name string) (*entity.Template, bool) {
		if t, ok := a.templates[name]; ok {
			return t, true
		}
		decl, ok := entDecls[name]
		if !ok {
			return nil, false
		}
		if building[name] {
			a.Diag.Add(diagnostics.NewError("entity template '"+name+"' participates in a base-reference cycle").
				WithCode(diagnostics.ErrMRO).
				WithPrimaryLabel(a.FilePath, decl.Loc(), "cyclic base reference"))
			a.fail()
			return nil, false
		}
		building[name] = true
		bases := make([]*entity.Template, 0, len(decl.Bases))
		for _, b := range decl.Bases {
			bt, ok := resolve(b.Name)
			if !ok {
				a.Diag.Add(diagnostics.NewError("undefined base template '"+b.Name+"'").
					WithCode(diagnostics.ErrNameNotDefined).
					WithPrimaryLabel(a.FilePath, b.Loc(), "not an entity template"))
				a.fail()
				continue
			}
			bases = append(bases, bt)
		}
		t, ok := entity.Build(decl, bases, a.FilePath, a.Diag)
		building[name] = false
		if !ok {
			a.fail()
			return nil, false
		}
		a.templates[name] = t
		return t, true
	}

	for name := range entDecls {
		resolve(name)
	}

	for name, decl := range structDecls {
		fields := make([]types.StructField, 0, len(decl.Fields))
		seen := map[string]bool{}
		for _, f := range decl.Fields {
			if seen[f.Name.Name] {
				a.Diag.Add(diagnostics.NewError("duplicate struct field '"+f.Name.Name+"'").
					WithCode(diagnostics.ErrDuplicateStructField).
					WithPrimaryLabel(a.FilePath, f.Name.Loc(), "redeclared here"))
				a.fail()
				continue
			}
			seen[f.Name.Name] = true
			ft := a.resolveTypeExpr(f.Type, a.globals)
			fields = append(fields, types.StructField{Name: f.Name.Name, Type: ft})
		}
		a.structs[name] = types.NewStruct(name, fields)
	}
}

// resolveTypeExpr validates a type-reference expression (spec.md §3
// "type-reference expressions are parsed as ordinary expressions") and
// returns the types.Type it names.
func (a *Analyzer) resolveTypeExpr(expr ast.Expression, scope *symbols.Scope) types.Type {
	id, ok := expr.(*ast.IdentifierExpr)
	if !ok {
		a.Diag.Add(diagnostics.NewError("not a valid type reference").
			WithCode(diagnostics.ErrInvalidOperand).
			WithPrimaryLabel(a.FilePath, expr.Loc(), "expected a type name"))
		a.fail()
		return types.Any
	}
	switch id.Name {
	case "int":
		return types.Int
	case "bool":
		return types.Bool
	case "float":
		return types.Float
	case "string":
		return types.String
	case "Pos":
		return types.Pos
	case "Rot":
		return types.Rot
	case "Offset":
		return types.Offset
	case "Enfilter":
		return types.Enfilter
	case "None":
		return types.None
	}
	if st, ok := a.structs[id.Name]; ok {
		return st
	}
	if t, ok := a.templates[id.Name]; ok {
		return types.NewEntity(t.Name)
	}
	a.Diag.Add(diagnostics.NewError("'"+id.Name+"' is not a known type").
		WithCode(diagnostics.ErrNameNotDefined).
		WithPrimaryLabel(a.FilePath, expr.Loc(), "undefined type"))
	a.fail()
	return types.Any
}

func (a *Analyzer) analyzeInterface(d *ast.InterfaceDecl) {
	if d.Path == a.Cfg.MainFile || d.Path == a.Cfg.InitFile {
		a.Diag.Add(diagnostics.NewError("interface path '"+d.Path+"' collides with a reserved file name").
			WithCode(diagnostics.ErrReservedIfacePath).
			WithPrimaryLabel(a.FilePath, d.Loc(), "reserved path"))
		a.fail()
		return
	}
	for _, existing := range a.prog.Interfaces {
		if existing.Path == d.Path {
			a.Diag.Add(diagnostics.NewError("interface path '"+d.Path+"' is declared more than once").
				WithCode(diagnostics.ErrDuplicateIface).
				WithPrimaryLabel(a.FilePath, d.Loc(), "duplicate declaration"))
			a.fail()
			return
		}
	}

	scope := symbols.NewScope(a.globals)
	scope.Runtime = true
	var body []*ir.Instr
	for _, s := range d.Body.Stmts {
		body = append(body, a.analyzeStmt(s, scope)...)
	}
	a.prog.Interfaces = append(a.prog.Interfaces, &ir.Interface{Path: d.Path, Body: body})
}

// tokOpToIR maps a binary/aug-assign operator token to its scoreboard-op
// instruction kind.
func tokOpToIR(op tokens.Kind) (ir.Kind, bool) {
	switch op {
	case tokens.PLUS, tokens.PLUS_EQ:
		return ir.OpScoreAdd, true
	case tokens.MINUS, tokens.MINUS_EQ:
		return ir.OpScoreSub, true
	case tokens.STAR, tokens.STAR_EQ:
		return ir.OpScoreMul, true
	case tokens.SLASH, tokens.SLASH_EQ:
		return ir.OpScoreDiv, true
	case tokens.PERCENT, tokens.PERCENT_EQ:
		return ir.OpScoreMod, true
	}
	return 0, false
}
