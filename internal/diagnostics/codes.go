package diagnostics

// Error kinds, grouped by the pipeline stage that raises them (spec.md §7).
// Codes are the bare kind name rather than a terse alphanumeric code, so a
// diagnostic's Code field doubles as the stable identifier the testable
// properties in spec.md §8 refer to (e.g. "notconstname").
const (
	// Lexical
	ErrInvalidChar           = "invalid-char"
	ErrUnclosedQuote         = "unclosed-quote"
	ErrUnclosedLongComment   = "unclosed-long-comment"
	ErrInvalidDedent         = "invalid-dedent"
	ErrIntOverflow           = "int-overflow"
	ErrCharAfterContinuation = "char-after-continuation"
	ErrEOFAfterContinuation  = "eof-after-continuation"
	ErrUnmatchedBracketPair  = "unmatched-bracket-pair"
	ErrUnclosedBracket       = "unclosed-bracket"
	ErrInvalidUnicodeEscape  = "invalid-unicode-escape"
	ErrUnclosedFExpr         = "unclosed-fexpr-hole"
	ErrUnclosedFontScope     = "unclosed-font-scope"

	// Syntactic
	ErrUnexpectedToken  = "unexpected-token"
	ErrEmptyBlock       = "empty-block"
	ErrInvalidAssignTgt = "invalid-assign-target"
	ErrInvalidFExpr     = "invalid-fexpr"

	// Name / Type
	ErrNameNotDefined = "name-not-defined"
	ErrHasNoAttribute = "has-no-attribute"
	ErrWrongAssignType = "wrongassigntype"
	ErrWrongArgType   = "wrong-arg-type"
	ErrInvalidOperand = "invalid-operand"
	ErrUncallable     = "uncallable"
	ErrNotIterable    = "not-iterable"
	ErrNoGetItem      = "no-getitem"
	ErrShadowedName   = "shadowedname"
	ErrWrongIfCond    = "wrongifcondition"
	ErrWrongWhileCond = "wrongwhilecondition"
	ErrEndlessWhile   = "endlesswhileloop"
	ErrResultOutOfFn  = "resultoutofscope"
	ErrNewOutOfScope  = "newoutofscope"

	// World coherence
	ErrNotConstName    = "notconstname"
	ErrNotConstAttr    = "notconstattr"
	ErrArgNotConst     = "argnotconst"
	ErrNonRTResult     = "nonrtresult"
	ErrCantRef         = "cantref"
	ErrCantRefArg      = "cantrefarg"
	ErrArgDefaultNC    = "argdefaultnotconst"
	ErrRefDefaultNC    = "nonrefargdefaultnotconst"
	ErrMultipleResults = "multipleresults"

	// Entity template / MRO
	ErrMRO                     = "mro"
	ErrEFieldMultipleDefs      = "efieldmultipledefs"
	ErrMethodAttrConflict      = "methodattrconflict"
	ErrMultipleNewMethods      = "multiplenewmethods"
	ErrMultipleVirtualMethod   = "multiplevirtualmethod"
	ErrOverrideResultMismatch  = "overrideresultmismatch"
	ErrOverrideQualifier       = "overridequalifier"
	ErrNotOverriding           = "notoverriding"
	ErrInstOverrideStatic      = "instoverridestatic"
	ErrStaticOverrideInst      = "staticoverrideinst"
	ErrUnsupportedEFieldStruct = "unsupportedefieldinstruct"
	ErrDuplicateStructField    = "duplicatestructfield"

	// Compile-time constant evaluation
	ErrConstArithmetic    = "constarithmetic"
	ErrListIndexOOB       = "listindexoutofbounds"
	ErrMapKeyNotFound     = "mapkeynotfound"
	ErrInvalidMapKey      = "invalidmapkey"
	ErrListMultNonLiteral = "listmultimesnonliteral"

	// Emission / environment
	ErrIO                = "io-error"
	ErrModuleNotFound    = "module-not-found"
	ErrCircularParse     = "circularparse"
	ErrReservedIfacePath = "reservedinterfacepath"
	ErrDuplicateIface    = "duplicateinterface"

	// Internal
	ErrInternal = "internal-error"
)
