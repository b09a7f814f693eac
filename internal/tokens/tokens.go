// Package tokens defines the token kinds the Acacia tokenizer (spec.md §4.1)
// produces: keywords, operators, literals with segment lists for strings and
// raw commands, and the structural INDENT/DEDENT/NEWLINE family.
package tokens

import (
	"fmt"
	"os"

	"github.com/creepebucket/AcaciaMC/colors"
	"github.com/creepebucket/AcaciaMC/internal/source"
)

type Kind string

const (
	// Structure
	INDENT  Kind = "INDENT"
	DEDENT  Kind = "DEDENT"
	NEWLINE Kind = "NEWLINE"
	EOF     Kind = "EOF"

	// Literals
	IDENTIFIER  Kind = "identifier"
	INT         Kind = "int literal"
	FLOAT       Kind = "float literal"
	STRING      Kind = "string literal"
	RAW_COMMAND Kind = "raw command"

	// Keywords
	KW_IMPORT    Kind = "import"
	KW_AS        Kind = "as"
	KW_CONST     Kind = "const"
	KW_REFERENCE Kind = "reference"
	KW_IF        Kind = "if"
	KW_ELIF      Kind = "elif"
	KW_ELSE      Kind = "else"
	KW_WHILE     Kind = "while"
	KW_FOR       Kind = "for"
	KW_IN        Kind = "in"
	KW_PASS      Kind = "pass"
	KW_DEF       Kind = "def"
	KW_ENTITY    Kind = "entity"
	KW_STRUCT    Kind = "struct"
	KW_INTERFACE Kind = "interface"
	KW_RESULT    Kind = "result"
	KW_NEW       Kind = "new"
	KW_VIRTUAL   Kind = "virtual"
	KW_OVERRIDE  Kind = "override"
	KW_STATIC    Kind = "static"
	KW_INLINE    Kind = "inline"
	KW_AND       Kind = "and"
	KW_OR        Kind = "or"
	KW_NOT       Kind = "not"
	KW_TRUE      Kind = "True"
	KW_FALSE     Kind = "False"
	KW_NONE      Kind = "None"

	// Punctuation / operators
	COLON        Kind = ":"
	COMMA        Kind = ","
	DOT          Kind = "."
	LPAREN       Kind = "("
	RPAREN       Kind = ")"
	LBRACKET     Kind = "["
	RBRACKET     Kind = "]"
	LBRACE       Kind = "{"
	RBRACE       Kind = "}"
	PIPE         Kind = "|"
	ARROW        Kind = "->"
	ASSIGN       Kind = "="
	WALRUS       Kind = ":="
	PLUS_EQ      Kind = "+="
	MINUS_EQ     Kind = "-="
	STAR_EQ      Kind = "*="
	SLASH_EQ     Kind = "/="
	PERCENT_EQ   Kind = "%="
	PLUS         Kind = "+"
	MINUS        Kind = "-"
	STAR         Kind = "*"
	SLASH        Kind = "/"
	PERCENT      Kind = "%"
	EQ           Kind = "=="
	NE           Kind = "!="
	LT           Kind = "<"
	LE           Kind = "<="
	GT           Kind = ">"
	GE           Kind = ">="
)

var keywords = map[string]Kind{
	"import":    KW_IMPORT,
	"as":        KW_AS,
	"const":     KW_CONST,
	"reference": KW_REFERENCE,
	"if":        KW_IF,
	"elif":      KW_ELIF,
	"else":      KW_ELSE,
	"while":     KW_WHILE,
	"for":       KW_FOR,
	"in":        KW_IN,
	"pass":      KW_PASS,
	"def":       KW_DEF,
	"entity":    KW_ENTITY,
	"struct":    KW_STRUCT,
	"interface": KW_INTERFACE,
	"result":    KW_RESULT,
	"new":       KW_NEW,
	"virtual":   KW_VIRTUAL,
	"override":  KW_OVERRIDE,
	"static":    KW_STATIC,
	"inline":    KW_INLINE,
	"and":       KW_AND,
	"or":        KW_OR,
	"not":       KW_NOT,
	"True":      KW_TRUE,
	"False":     KW_FALSE,
	"None":      KW_NONE,
}

func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER
}

func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// builtinTypes are the names of Acacia's closed set of built-in types
// (spec.md §3): int/bool/float/string, the geometry types, entity-filter,
// and the untyped top type Any.
var builtinTypes = map[string]bool{
	"int":      true,
	"bool":     true,
	"float":    true,
	"string":   true,
	"Pos":      true,
	"Rot":      true,
	"Offset":   true,
	"Enfilter": true,
	"Any":      true,
}

// IsBuiltinType reports whether s names one of Acacia's built-in types.
func IsBuiltinType(s string) bool {
	return builtinTypes[s]
}

// StringSegmentKind distinguishes the pieces a string or raw-command literal
// is split into (spec.md §3 Token).
type StringSegmentKind int

const (
	SegText StringSegmentKind = iota
	SegHole                   // {expr}
	SegFont                   // \font{spec}
	SegInterp                 // ${name} inside a raw command
)

// StringSegment is one piece of a segmented string/raw-command literal.
// For SegHole/SegInterp, Text carries the unparsed expression/name source;
// the parser re-lexes and re-parses it as an expression in-place.
type StringSegment struct {
	Kind  StringSegmentKind
	Text  string
	Start source.Position
	End   source.Position
}

// Token is a single lexical unit. For STRING and RAW_COMMAND, Segments holds
// the decomposed content and Value is unused; for every other kind Value is
// the literal source text.
type Token struct {
	Kind     Kind
	Value    string
	Segments []StringSegment
	Start    source.Position
	End      source.Position
}

func New(kind Kind, value string, start, end source.Position) Token {
	return Token{Kind: kind, Value: value, Start: start, End: end}
}

func NewSegmented(kind Kind, segments []StringSegment, start, end source.Position) Token {
	return Token{Kind: kind, Segments: segments, Start: start, End: end}
}

func (t Token) Debug(filename string) {
	colors.GREY.Fprintf(os.Stderr, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	fmt.Fprintf(os.Stderr, "%s %q\n", t.Kind, t.Value)
}
