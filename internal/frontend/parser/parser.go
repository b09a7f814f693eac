// Package parser implements Acacia's recursive-descent parser (spec.md
// §4.2): a walk over the lexer's token stream producing the typed AST in
// internal/frontend/ast.
//
// Unlike the teacher's semicolon/brace-delimited grammar, blocks are
// introduced by a trailing `:` and the lexer's own INDENT/DEDENT/NEWLINE
// tokens, so block parsing (parseBlock, in decl.go) has no equivalent in
// the teacher and is original, built directly against spec.md §4.1/§4.2.
package parser

import (
	"fmt"

	"github.com/creepebucket/AcaciaMC/internal/diagnostics"
	"github.com/creepebucket/AcaciaMC/internal/frontend/ast"
	"github.com/creepebucket/AcaciaMC/internal/frontend/lexer"
	"github.com/creepebucket/AcaciaMC/internal/source"
	"github.com/creepebucket/AcaciaMC/internal/tokens"
)

// Parser holds the transient state of parsing a single token stream into
// a Module. A fresh Parser is created per file; nothing is retained
// across files.
type Parser struct {
	toks     []tokens.Token
	pos      int
	diag     *diagnostics.DiagnosticBag
	filepath string
}

// Parse builds a Module from a token stream already produced by the
// lexer (indentation and segmentation already resolved).
func Parse(toks []tokens.Token, filepath string, diag *diagnostics.DiagnosticBag) *ast.Module {
	p := &Parser{toks: toks, filepath: filepath, diag: diag}
	start := p.peek().Start
	var stmts []ast.Statement
	for !p.atEnd() {
		s := p.parseTopLevel()
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	return &ast.Module{
		FullPath: filepath,
		Stmts:    stmts,
		Location: p.spanFrom(start),
	}
}

// --- token cursor ---

func (p *Parser) peek() tokens.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) peekKind() tokens.Kind { return p.peek().Kind }

func (p *Parser) peekAt(offset int) tokens.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) atEnd() bool { return p.peekKind() == tokens.EOF }

func (p *Parser) advance() tokens.Token {
	t := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(k tokens.Kind) bool { return p.peekKind() == k }

func (p *Parser) match(kinds ...tokens.Kind) bool {
	for _, k := range kinds {
		if p.peekKind() == k {
			return true
		}
	}
	return false
}

func (p *Parser) expect(k tokens.Kind) tokens.Token {
	if p.check(k) {
		return p.advance()
	}
	tok := p.peek()
	p.errorf(tok.Start, tok.End, diagnostics.ErrUnexpectedToken,
		"expected %s, found %s", k, p.describe(tok))
	return tok
}

func (p *Parser) describe(t tokens.Token) string {
	if t.Value != "" {
		return fmt.Sprintf("%q", t.Value)
	}
	return string(t.Kind)
}

func (p *Parser) errorf(start, end source.Position, code, format string, args ...any) {
	loc := source.NewLocation(&p.filepath, &start, &end)
	p.diag.Add(diagnostics.NewError(fmt.Sprintf(format, args...)).
		WithCode(code).
		WithPrimaryLabel(p.filepath, loc, ""))
}

// skipNewlines consumes zero or more stray NEWLINE tokens, used between
// top-level statements and at the start of a block body.
func (p *Parser) skipNewlines() {
	for p.check(tokens.NEWLINE) {
		p.advance()
	}
}

func (p *Parser) spanFrom(start source.Position) source.Location {
	end := start
	if p.pos > 0 {
		end = p.toks[p.pos-1].End
	}
	return *source.NewLocation(&p.filepath, &start, &end)
}

func locOf(n ast.Node) *source.Location {
	if n == nil {
		return nil
	}
	return n.Loc()
}

func spanOf(a, b ast.Node) source.Location {
	al, bl := locOf(a), locOf(b)
	if al == nil {
		return *bl
	}
	if bl == nil {
		return *al
	}
	return *source.NewLocation(al.Filename, al.Start, bl.End)
}

// --- expressions ---
// Precedence, lowest to highest (spec.md §4.2): or; and; not (Python-
// style prefix, binding looser than comparisons — spec.md §4.2 lists
// `not` again at the unary level, but in a standard recursive-descent
// grammar a leading `not` is always captured by this looser rule first,
// so that second mention is read as a restatement rather than a second
// independent production); comparison chain; + -; * / %; unary + - not;
// postfix (attribute/call/subscript).

func (p *Parser) parseExpr() ast.Expression { return p.parseOr() }

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.check(tokens.KW_OR) {
		op := p.advance().Kind
		right := p.parseAnd()
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Location: spanOf(left, right)}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseNot()
	for p.check(tokens.KW_AND) {
		op := p.advance().Kind
		right := p.parseNot()
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Location: spanOf(left, right)}
	}
	return left
}

func (p *Parser) parseNot() ast.Expression {
	if p.check(tokens.KW_NOT) {
		op := p.advance()
		x := p.parseNot()
		end := locOf(x).End
		return &ast.UnaryExpr{Op: tokens.KW_NOT, X: x, Location: *source.NewLocation(&p.filepath, &op.Start, end)}
	}
	return p.parseCompare()
}

var compareOps = []tokens.Kind{tokens.EQ, tokens.NE, tokens.LT, tokens.LE, tokens.GT, tokens.GE}

func (p *Parser) parseCompare() ast.Expression {
	first := p.parseAdditive()
	if !p.match(compareOps...) {
		return first
	}
	operands := []ast.Expression{first}
	var ops []tokens.Kind
	for p.match(compareOps...) {
		ops = append(ops, p.advance().Kind)
		operands = append(operands, p.parseAdditive())
	}
	return &ast.CompareExpr{
		Operands: operands,
		Ops:      ops,
		Location: spanOf(operands[0], operands[len(operands)-1]),
	}
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.match(tokens.PLUS, tokens.MINUS) {
		op := p.advance().Kind
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Location: spanOf(left, right)}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.match(tokens.STAR, tokens.SLASH, tokens.PERCENT) {
		op := p.advance().Kind
		right := p.parseUnary()
		left = &ast.BinaryExpr{X: left, Op: op, Y: right, Location: spanOf(left, right)}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.match(tokens.PLUS, tokens.MINUS, tokens.KW_NOT) {
		op := p.advance()
		x := p.parseUnary()
		end := locOf(x).End
		return &ast.UnaryExpr{Op: op.Kind, X: x, Location: *source.NewLocation(&p.filepath, &op.Start, end)}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	x := p.parsePrimary()
	for {
		switch p.peekKind() {
		case tokens.LPAREN:
			x = p.parseCallExpr(x)
		case tokens.LBRACKET:
			x = p.parseSubscriptExpr(x)
		case tokens.DOT:
			x = p.parseAttributeExpr(x)
		default:
			return x
		}
	}
}

func (p *Parser) parseCallExpr(fun ast.Expression) *ast.CallExpr {
	p.advance() // (
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
	end := p.expect(tokens.RPAREN).End
	return &ast.CallExpr{Fun: fun, Args: args, Location: *source.NewLocation(&p.filepath, locOf(fun).Start, &end)}
}

// parseCallArg parses a positional argument or a `name = value` keyword
// argument (spec.md §4.4 default parameters are bound by name at the
// call site).
func (p *Parser) parseCallArg() ast.Expression {
	if p.check(tokens.IDENTIFIER) && p.peekAt(1).Kind == tokens.ASSIGN {
		name := p.parseIdentifier()
		p.advance() // =
		val := p.parseExpr()
		return &ast.KeyValueExpr{Key: name, Value: val, Location: spanOf(name, val)}
	}
	return p.parseExpr()
}

func (p *Parser) parseSubscriptExpr(x ast.Expression) *ast.SubscriptExpr {
	p.advance() // [
	idx := p.parseExpr()
	end := p.expect(tokens.RBRACKET).End
	return &ast.SubscriptExpr{X: x, Index: idx, Location: *source.NewLocation(&p.filepath, locOf(x).Start, &end)}
}

func (p *Parser) parseAttributeExpr(x ast.Expression) *ast.AttributeExpr {
	p.advance() // .
	tok := p.expect(tokens.IDENTIFIER)
	return &ast.AttributeExpr{X: x, Attr: tok.Value, Location: *source.NewLocation(&p.filepath, locOf(x).Start, &tok.End)}
}

func (p *Parser) parseIdentifier() *ast.IdentifierExpr {
	tok := p.expect(tokens.IDENTIFIER)
	return &ast.IdentifierExpr{Name: tok.Value, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()
	switch tok.Kind {
	case tokens.INT:
		p.advance()
		return &ast.BasicLit{Kind: ast.INT, Value: tok.Value, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
	case tokens.FLOAT:
		p.advance()
		return &ast.BasicLit{Kind: ast.FLOAT, Value: tok.Value, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
	case tokens.KW_TRUE, tokens.KW_FALSE:
		p.advance()
		return &ast.BasicLit{Kind: ast.BOOL, Value: tok.Value, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
	case tokens.KW_NONE:
		p.advance()
		return &ast.BasicLit{Kind: ast.NONE, Value: tok.Value, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
	case tokens.STRING:
		p.advance()
		return p.buildFString(tok)
	case tokens.IDENTIFIER:
		return p.parsePostfixIdentOrStructLit()
	case tokens.LPAREN:
		p.advance()
		x := p.parseExpr()
		p.expect(tokens.RPAREN)
		end := p.toks[p.pos-1].End
		return &ast.ParenExpr{X: x, Location: *source.NewLocation(&p.filepath, &tok.Start, &end)}
	case tokens.LBRACKET:
		return p.parseListExpr()
	case tokens.LBRACE:
		return p.parseMapExpr()
	case tokens.PIPE:
		return p.parseSelectorLitExpr()
	default:
		p.errorf(tok.Start, tok.End, diagnostics.ErrUnexpectedToken, "unexpected %s in expression", p.describe(tok))
		p.advance()
		return &ast.IdentifierExpr{Name: "<error>", Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
	}
}

// parsePostfixIdentOrStructLit distinguishes a bare name from a struct/
// entity composite literal `Name{.field = value, ...}`.
func (p *Parser) parsePostfixIdentOrStructLit() ast.Expression {
	name := p.parseIdentifier()
	if !p.check(tokens.LBRACE) {
		return name
	}
	start := p.advance().Start // {
	var fields []*ast.KeyValueExpr
	for !p.check(tokens.RBRACE) && !p.atEnd() {
		p.expect(tokens.DOT)
		fname := p.parseIdentifier()
		p.expect(tokens.ASSIGN)
		val := p.parseExpr()
		fields = append(fields, &ast.KeyValueExpr{Key: fname, Value: val, Location: spanOf(fname, val)})
		if p.check(tokens.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(tokens.RBRACE).End
	return &ast.StructLitExpr{Template: name, Fields: fields, Location: *source.NewLocation(&p.filepath, &start, &end)}
}

func (p *Parser) parseListExpr() *ast.ListExpr {
	start := p.expect(tokens.LBRACKET).Start
	var elts []ast.Expression
	for !p.check(tokens.RBRACKET) && !p.atEnd() {
		elts = append(elts, p.parseExpr())
		if p.check(tokens.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(tokens.RBRACKET).End
	return &ast.ListExpr{Elts: elts, Location: *source.NewLocation(&p.filepath, &start, &end)}
}

func (p *Parser) parseMapExpr() *ast.MapExpr {
	start := p.expect(tokens.LBRACE).Start
	var entries []ast.MapEntry
	for !p.check(tokens.RBRACE) && !p.atEnd() {
		key := p.parseExpr()
		p.expect(tokens.COLON)
		val := p.parseExpr()
		entries = append(entries, ast.MapEntry{Key: key, Value: val})
		if p.check(tokens.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(tokens.RBRACE).End
	return &ast.MapExpr{Entries: entries, Location: *source.NewLocation(&p.filepath, &start, &end)}
}

// parseSelectorLitExpr parses `|sel: obj|` and its `|p: obj, r=5|`
// keyword-argument forms (spec.md §4.3 Selector literal). An item with no
// `name =` prefix (the objective) is kept in Args with a nil Key.
func (p *Parser) parseSelectorLitExpr() *ast.SelectorLitExpr {
	start := p.expect(tokens.PIPE).Start
	kindTok := p.expect(tokens.IDENTIFIER)
	p.expect(tokens.COLON)
	var args []*ast.KeyValueExpr
	for !p.check(tokens.PIPE) && !p.atEnd() {
		if !(p.check(tokens.IDENTIFIER) && p.peekAt(1).Kind == tokens.ASSIGN) {
			val := p.parseExpr()
			args = append(args, &ast.KeyValueExpr{Value: val, Location: *locOf(val)})
		} else {
			name := p.parseIdentifier()
			p.expect(tokens.ASSIGN)
			val := p.parseExpr()
			args = append(args, &ast.KeyValueExpr{Key: name, Value: val, Location: spanOf(name, val)})
		}
		if p.check(tokens.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(tokens.PIPE).End
	return &ast.SelectorLitExpr{Kind: kindTok.Value, Args: args, Location: *source.NewLocation(&p.filepath, &start, &end)}
}

// buildFString turns a lexer STRING token's segment list into an
// FStringExpr, re-lexing and re-parsing each SegHole's raw text as a
// nested expression (spec.md §4.1: a hole carries unparsed expression
// source until the parser gets to it). A SegFont segment carries only
// the font name applying to the text that follows it, not a nested
// expression — `\font{name}` is a run-in directive, not a delimited
// scope.
func (p *Parser) buildFString(tok tokens.Token) *ast.FStringExpr {
	segs := make([]ast.FStringSeg, 0, len(tok.Segments))
	for _, s := range tok.Segments {
		switch s.Kind {
		case tokens.SegText:
			segs = append(segs, ast.FStringSeg{Kind: ast.FSegText, Text: s.Text})
		case tokens.SegHole:
			segs = append(segs, ast.FStringSeg{Kind: ast.FSegHole, Expr: p.parseSubExpr(s)})
		case tokens.SegFont:
			segs = append(segs, ast.FStringSeg{Kind: ast.FSegFont, Font: s.Text})
		}
	}
	return &ast.FStringExpr{Segments: segs, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
}

// parseSubExpr re-lexes a hole/font segment's raw text at its own source
// position and parses a single expression from it, reporting
// *invalid-fexpr* if anything but a full expression remains.
func (p *Parser) parseSubExpr(s tokens.StringSegment) ast.Expression {
	sub := lexer.New(p.filepath, s.Text, p.diag)
	subToks := sub.Tokenize(false)
	offset(subToks, s.Start)
	subParser := &Parser{toks: subToks, filepath: p.filepath, diag: p.diag}
	subParser.skipNewlines()
	if subParser.atEnd() {
		p.errorf(s.Start, s.End, diagnostics.ErrInvalidFExpr, "empty interpolation")
		return &ast.IdentifierExpr{Name: "<error>", Location: *source.NewLocation(&p.filepath, &s.Start, &s.End)}
	}
	expr := subParser.parseExpr()
	subParser.skipNewlines()
	if !subParser.atEnd() {
		tok := subParser.peek()
		p.errorf(tok.Start, tok.End, diagnostics.ErrInvalidFExpr, "unexpected %s after interpolation expression", subParser.describe(tok))
	}
	return expr
}

// offset shifts every token's position in place by the hole's starting
// position within the outer file, since the sub-lexer scans the
// segment's text in isolation starting at line 1, column 1.
func offset(toks []tokens.Token, base source.Position) {
	for i := range toks {
		if toks[i].Start.Line == 1 {
			toks[i].Start.Column += base.Column - 1
		}
		toks[i].Start.Line += base.Line - 1
		toks[i].Start.Index += base.Index
		if toks[i].End.Line == 1 {
			toks[i].End.Column += base.Column - 1
		}
		toks[i].End.Line += base.Line - 1
		toks[i].End.Index += base.Index
	}
}
