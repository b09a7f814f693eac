package parser

import (
	"strings"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
	"github.com/creepebucket/AcaciaMC/internal/types"
)

// parseBlock parses `: NEWLINE INDENT stmt+ DEDENT` following a header
// that has not yet consumed its trailing `:`. A header with no indented
// suite after it, or an indented suite with no statements, is
// *empty-block*.
func (p *Parser) parseBlock() *ast.Block {
	start := p.peek().Start
	p.expect(tokens.COLON)
	p.expect(tokens.NEWLINE)
	if !p.check(tokens.INDENT) {
		tok := p.peek()
		p.errorf(tok.Start, tok.End, diagnostics.ErrEmptyBlock, "empty block")
		return &ast.Block{Location: p.spanFrom(start)}
	}
	indentTok := p.advance()
	if p.check(tokens.DEDENT) {
		p.errorf(indentTok.Start, p.peek().End, diagnostics.ErrEmptyBlock, "empty block")
		p.advance()
		return &ast.Block{Location: p.spanFrom(start)}
	}
	var stmts []ast.Statement
	for !p.check(tokens.DEDENT) && !p.atEnd() {
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(tokens.DEDENT)
	return &ast.Block{Stmts: stmts, Location: p.spanFrom(start)}
}

// --- top level / statement dispatch ---

func (p *Parser) parseTopLevel() ast.Statement {
	p.skipNewlines()
	if p.atEnd() {
		return nil
	}
	return p.parseStmt()
}

func (p *Parser) parseStmt() ast.Statement {
	p.skipNewlines()
	switch p.peekKind() {
	case tokens.KW_IMPORT:
		return p.parseImportStmt()
	case tokens.KW_PASS:
		return p.parsePassStmt()
	case tokens.KW_IF:
		return p.parseIfStmt()
	case tokens.KW_WHILE:
		return p.parseWhileStmt()
	case tokens.KW_FOR:
		return p.parseForInStmt()
	case tokens.KW_DEF, tokens.KW_INLINE:
		return p.parseFuncDecl(ast.MQNone)
	case tokens.KW_ENTITY:
		return p.parseEntityDecl()
	case tokens.KW_STRUCT:
		return p.parseStructDecl()
	case tokens.KW_INTERFACE:
		return p.parseInterfaceDecl()
	case tokens.KW_REFERENCE:
		return p.parseReferenceDecl()
	case tokens.KW_RESULT:
		return p.parseResultStmt()
	case tokens.KW_NEW:
		return p.parseNewCallStmt()
	case tokens.RAW_COMMAND:
		return p.parseRawCommandStmt()
	case tokens.KW_CONST:
		// `const def` is a compile-time-flavor function; any other
		// token after `const` is a plain constant declaration.
		if p.peekAt(1).Kind == tokens.KW_DEF {
			return p.parseFuncDecl(ast.MQNone)
		}
		return p.parseConstDecl()
	case tokens.KW_VIRTUAL, tokens.KW_OVERRIDE, tokens.KW_STATIC:
		return p.parseQualifiedMethod()
	default:
		return p.parseSimpleStmtLine()
	}
}

// parseQualifiedMethod handles a `virtual`/`override`/`static` prefix on
// a method def, meaningful only inside an entity body; elsewhere the
// analyzer rejects the stray qualifier on a free function.
func (p *Parser) parseQualifiedMethod() ast.Statement {
	var q ast.MethodQualifier
	switch p.advance().Kind {
	case tokens.KW_VIRTUAL:
		q = ast.MQVirtual
	case tokens.KW_OVERRIDE:
		q = ast.MQOverride
	case tokens.KW_STATIC:
		q = ast.MQStatic
	}
	return p.parseFuncDecl(q)
}

func (p *Parser) parsePassStmt() *ast.PassStmt {
	start := p.expect(tokens.KW_PASS).Start
	p.expect(tokens.NEWLINE)
	return &ast.PassStmt{Location: p.spanFrom(start)}
}

// parseSimpleStmtLine dispatches a logical line headed by an expression:
// annotated var-decl (`name: Type = init`), walrus var-decl (`name :=
// init`), assign, augmented assign, or a bare expression statement. No
// `var` keyword exists (spec.md never names one); the colon itself is
// the var-decl marker, distinguishing it from a plain assignment.
func (p *Parser) parseSimpleStmtLine() ast.Statement {
	start := p.peek().Start
	lhs := p.parseExpr()

	switch p.peekKind() {
	case tokens.COLON:
		p.advance()
		typ := p.parseExpr()
		p.expect(tokens.ASSIGN)
		init := p.parseExpr()
		p.expect(tokens.NEWLINE)
		return &ast.VarDecl{Name: p.requireName(lhs, start), Type: typ, Init: init, Location: p.spanFrom(start)}
	case tokens.WALRUS:
		p.advance()
		rhs := p.parseExpr()
		p.expect(tokens.NEWLINE)
		return &ast.DeclAssignStmt{Name: p.requireName(lhs, start), Rhs: rhs, Location: p.spanFrom(start)}
	case tokens.ASSIGN:
		p.advance()
		rhs := p.parseExpr()
		p.expect(tokens.NEWLINE)
		return &ast.AssignStmt{Lhs: lhs, Rhs: rhs, Location: p.spanFrom(start)}
	case tokens.PLUS_EQ, tokens.MINUS_EQ, tokens.STAR_EQ, tokens.SLASH_EQ, tokens.PERCENT_EQ:
		op := p.advance().Kind
		rhs := p.parseExpr()
		p.expect(tokens.NEWLINE)
		return &ast.AugAssignStmt{Lhs: lhs, Op: op, Rhs: rhs, Location: p.spanFrom(start)}
	default:
		p.expect(tokens.NEWLINE)
		return &ast.ExprStmt{X: lhs, Location: p.spanFrom(start)}
	}
}

// requireName narrows a parsed expression to a plain name for binding
// forms (`name: T = e`, `name := e`) that only accept one; anything else
// is *invalid-assign-target*.
func (p *Parser) requireName(e ast.Expression, start source.Position) *ast.IdentifierExpr {
	if ident, ok := e.(*ast.IdentifierExpr); ok {
		return ident
	}
	p.errorf(start, p.toks[p.pos-1].End, diagnostics.ErrInvalidAssignTgt, "left side must be a plain name")
	return &ast.IdentifierExpr{Name: "<invalid>"}
}

func (p *Parser) parseImportStmt() *ast.ImportStmt {
	start := p.expect(tokens.KW_IMPORT).Start
	pathTok := p.expect(tokens.STRING)
	path := stringLiteralText(pathTok)
	var alias *ast.IdentifierExpr
	if p.check(tokens.KW_AS) {
		p.advance()
		alias = p.parseIdentifier()
	}
	p.expect(tokens.NEWLINE)
	return &ast.ImportStmt{Path: path, Alias: alias, Location: p.spanFrom(start)}
}

// stringLiteralText recovers the plain text of a string token with no
// holes, for the rare grammar positions (import path, entity type) that
// require a literal rather than a general formatted-string expression.
func stringLiteralText(tok tokens.Token) string {
	var b strings.Builder
	for _, s := range tok.Segments {
		if s.Kind == tokens.SegText {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.expect(tokens.KW_IF).Start
	cond := p.parseExpr()
	body := p.parseBlock()
	stmt := &ast.IfStmt{Cond: cond, Body: body}
	if p.check(tokens.KW_ELIF) {
		elifStart := p.peek().Start
		p.advance()
		elifCond := p.parseExpr()
		elifBody := p.parseBlock()
		elif := &ast.IfStmt{Cond: elifCond, Body: elifBody, Location: p.spanFrom(elifStart)}
		stmt.Else = p.continueElifChain(elif)
	} else if p.check(tokens.KW_ELSE) {
		p.advance()
		stmt.Else = p.parseBlock()
	}
	stmt.Location = p.spanFrom(start)
	return stmt
}

// continueElifChain recursively attaches further elif/else branches onto
// an already-built elif IfStmt, returning it as the Else of its caller.
func (p *Parser) continueElifChain(elif *ast.IfStmt) ast.Node {
	if p.check(tokens.KW_ELIF) {
		start := p.peek().Start
		p.advance()
		cond := p.parseExpr()
		body := p.parseBlock()
		next := &ast.IfStmt{Cond: cond, Body: body, Location: p.spanFrom(start)}
		elif.Else = p.continueElifChain(next)
	} else if p.check(tokens.KW_ELSE) {
		p.advance()
		elif.Else = p.parseBlock()
	}
	return elif
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.expect(tokens.KW_WHILE).Start
	cond := p.parseExpr()
	body := p.parseBlock()
	return &ast.WhileStmt{Cond: cond, Body: body, Location: p.spanFrom(start)}
}

func (p *Parser) parseForInStmt() *ast.ForInStmt {
	start := p.expect(tokens.KW_FOR).Start
	v := p.parseIdentifier()
	p.expect(tokens.KW_IN)
	seq := p.parseExpr()
	body := p.parseBlock()
	return &ast.ForInStmt{Var: v, Seq: seq, Body: body, Location: p.spanFrom(start)}
}

func (p *Parser) parseReferenceDecl() *ast.ReferenceDecl {
	start := p.expect(tokens.KW_REFERENCE).Start
	name := p.parseIdentifier()
	p.expect(tokens.ASSIGN)
	target := p.parseExpr()
	p.expect(tokens.NEWLINE)
	return &ast.ReferenceDecl{Name: name, Target: target, Location: p.spanFrom(start)}
}

func (p *Parser) parseConstDecl() *ast.ConstDecl {
	start := p.expect(tokens.KW_CONST).Start
	name := p.parseIdentifier()
	p.expect(tokens.ASSIGN)
	init := p.parseExpr()
	p.expect(tokens.NEWLINE)
	return &ast.ConstDecl{Name: name, Init: init, Location: p.spanFrom(start)}
}

func (p *Parser) parseResultStmt() *ast.ResultStmt {
	start := p.expect(tokens.KW_RESULT).Start
	var val ast.Expression
	if !p.check(tokens.NEWLINE) {
		val = p.parseExpr()
	}
	p.expect(tokens.NEWLINE)
	return &ast.ResultStmt{Value: val, Location: p.spanFrom(start)}
}

func (p *Parser) parseNewCallStmt() *ast.NewCallStmt {
	start := p.expect(tokens.KW_NEW).Start
	p.expect(tokens.LPAREN)
	var args []ast.Expression
	if !p.check(tokens.RPAREN) {
		args = append(args, p.parseCallArg())
		for p.check(tokens.COMMA) {
			p.advance()
			if p.check(tokens.RPAREN) {
				break
			}
			args = append(args, p.parseCallArg())
		}
	}
	p.expect(tokens.RPAREN)
	p.expect(tokens.NEWLINE)
	return &ast.NewCallStmt{Args: args, Location: p.spanFrom(start)}
}

func (p *Parser) parseRawCommandStmt() *ast.RawCommandStmt {
	tok := p.advance()
	p.expect(tokens.NEWLINE)
	return &ast.RawCommandStmt{Segments: tok.Segments, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
}

// parseFuncDecl parses `[inline|const] def name(params) [-> result]:`.
// qualifier is whatever entity-method modifier (virtual/override/static)
// already preceded this def, or MQNone at top level.
func (p *Parser) parseFuncDecl(qualifier ast.MethodQualifier) *ast.FuncDecl {
	start := p.peek().Start
	flavor := types.FlavorRuntime
	if p.check(tokens.KW_INLINE) {
		p.advance()
		flavor = types.FlavorInline
	} else if p.check(tokens.KW_CONST) {
		p.advance()
		flavor = types.FlavorCompileTime
	}
	p.expect(tokens.KW_DEF)
	name := p.parseIdentifier()
	p.expect(tokens.LPAREN)
	var params []*ast.Param
	if !p.check(tokens.RPAREN) {
		params = append(params, p.parseParam())
		for p.check(tokens.COMMA) {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(tokens.RPAREN)
	var result ast.Expression
	if p.check(tokens.ARROW) {
		p.advance()
		result = p.parseExpr()
	}
	body := p.parseBlock()
	return &ast.FuncDecl{
		Name:      name,
		Params:    params,
		Result:    result,
		Body:      body,
		Flavor:    flavor,
		Qualifier: qualifier,
		Location:  p.spanFrom(start),
	}
}

// parseParam parses one parameter: an optional `reference`/`const` port
// prefix, a name, an optional `: Type` annotation, and an optional
// `= default` (spec.md §4 Function: type is optional only when a
// default is present).
func (p *Parser) parseParam() *ast.Param {
	port := types.PortByValue
	switch p.peekKind() {
	case tokens.KW_REFERENCE:
		p.advance()
		port = types.PortByReference
	case tokens.KW_CONST:
		p.advance()
		port = types.PortConst
	}
	name := p.parseIdentifier()
	var typ, def ast.Expression
	if p.check(tokens.COLON) {
		p.advance()
		typ = p.parseExpr()
	}
	if p.check(tokens.ASSIGN) {
		p.advance()
		def = p.parseExpr()
	}
	return &ast.Param{Name: name, Type: typ, Default: def, Port: port}
}

// parseEntityDecl parses `entity Name[(Base, ...)]:` followed by a body
// whose `const type = ...` / `const spawn_pos = ...` lines are pulled
// into EntityType/SpawnPos rather than kept as generic statements;
// remaining lines are attribute declarations (`name: Type`) or methods.
func (p *Parser) parseEntityDecl() *ast.EntityDecl {
	start := p.expect(tokens.KW_ENTITY).Start
	name := p.parseIdentifier()
	var bases []*ast.IdentifierExpr
	if p.check(tokens.LPAREN) {
		p.advance()
		if !p.check(tokens.RPAREN) {
			bases = append(bases, p.parseIdentifier())
			for p.check(tokens.COMMA) {
				p.advance()
				bases = append(bases, p.parseIdentifier())
			}
		}
		p.expect(tokens.RPAREN)
	}
	decl := &ast.EntityDecl{Name: name, Bases: bases}

	p.expect(tokens.COLON)
	p.expect(tokens.NEWLINE)
	indentTok := p.expect(tokens.INDENT)
	if p.check(tokens.DEDENT) {
		p.errorf(indentTok.Start, p.peek().End, diagnostics.ErrEmptyBlock, "empty block")
		p.advance()
		decl.Location = p.spanFrom(start)
		return decl
	}
	for !p.check(tokens.DEDENT) && !p.atEnd() {
		p.parseEntityBodyLine(decl)
	}
	p.expect(tokens.DEDENT)
	decl.Location = p.spanFrom(start)
	return decl
}

func (p *Parser) parseEntityBodyLine(decl *ast.EntityDecl) {
	p.skipNewlines()
	if p.check(tokens.DEDENT) || p.atEnd() {
		return
	}
	switch p.peekKind() {
	case tokens.KW_DEF, tokens.KW_INLINE:
		decl.Methods = append(decl.Methods, p.parseFuncDecl(ast.MQNone))
		return
	case tokens.KW_VIRTUAL, tokens.KW_OVERRIDE, tokens.KW_STATIC:
		decl.Methods = append(decl.Methods, p.parseQualifiedMethod().(*ast.FuncDecl))
		return
	case tokens.KW_CONST:
		if p.peekAt(1).Kind == tokens.KW_DEF {
			decl.Methods = append(decl.Methods, p.parseFuncDecl(ast.MQNone))
			return
		}
		start := p.advance().Start
		nameTok := p.expect(tokens.IDENTIFIER)
		p.expect(tokens.ASSIGN)
		init := p.parseExpr()
		p.expect(tokens.NEWLINE)
		loc := p.spanFrom(start)
		switch nameTok.Value {
		case "type":
			decl.EntityType = init
		case "spawn_pos":
			decl.SpawnPos = init
		default:
			p.errorf(*loc.Start, *loc.End, diagnostics.ErrUnexpectedToken,
				"unknown entity const %q (expected 'type' or 'spawn_pos')", nameTok.Value)
		}
		return
	default:
		attr := p.parseAttribute()
		decl.Attributes = append(decl.Attributes, attr)
	}
}

// parseAttribute parses one `name: Type` attribute line.
func (p *Parser) parseAttribute() *ast.Attribute {
	name := p.parseIdentifier()
	p.expect(tokens.COLON)
	typ := p.parseExpr()
	p.expect(tokens.NEWLINE)
	return &ast.Attribute{Name: name, Type: typ}
}

func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.expect(tokens.KW_STRUCT).Start
	name := p.parseIdentifier()
	p.expect(tokens.COLON)
	p.expect(tokens.NEWLINE)
	indentTok := p.expect(tokens.INDENT)
	var fields []*ast.Attribute
	if p.check(tokens.DEDENT) {
		p.errorf(indentTok.Start, p.peek().End, diagnostics.ErrEmptyBlock, "empty block")
		p.advance()
		return &ast.StructDecl{Name: name, Location: p.spanFrom(start)}
	}
	for !p.check(tokens.DEDENT) && !p.atEnd() {
		p.skipNewlines()
		if p.check(tokens.DEDENT) || p.atEnd() {
			break
		}
		fields = append(fields, p.parseAttribute())
	}
	p.expect(tokens.DEDENT)
	return &ast.StructDecl{Name: name, Fields: fields, Location: p.spanFrom(start)}
}

// parseInterfaceDecl parses `interface a.b.c:` — a dotted path naming
// the `.mcfunction` file the body is emitted into (spec.md §3 Interface).
func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.expect(tokens.KW_INTERFACE).Start
	var parts []string
	parts = append(parts, p.expect(tokens.IDENTIFIER).Value)
	for p.check(tokens.DOT) {
		p.advance()
		parts = append(parts, p.expect(tokens.IDENTIFIER).Value)
	}
	body := p.parseBlock()
	return &ast.InterfaceDecl{Path: strings.Join(parts, "."), Body: body, Location: p.spanFrom(start)}
}
