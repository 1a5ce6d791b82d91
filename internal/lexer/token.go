package lexer

import (
	"fmt"

	"github.com/orizon-lang/ecmaparse/internal/position"
)

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types
const (
	// 特殊トークン
	TokenEOF TokenType = iota
	TokenIllegal

	// リテラル
	TokenIdentifier
	TokenPrivateName
	TokenString
	TokenTemplateNoSubstitution
	TokenTemplateHead
	TokenTemplateMiddle
	TokenTemplateTail
	TokenRegex
	TokenJSXText

	// 数値リテラル
	TokenDecimal
	TokenNonOctalDecimal
	TokenLegacyOctal
	TokenBinary
	TokenOctal
	TokenHex
	TokenDecimalBigInt
	TokenBinaryBigInt
	TokenOctalBigInt
	TokenHexBigInt

	// 区切り記号
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenQuestion
	TokenQuestionDot
	TokenColon
	TokenArrow
	TokenAt

	// 代入演算子
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenMulAssign
	TokenDivAssign
	TokenModAssign
	TokenExpAssign
	TokenShlAssign
	TokenShrAssign
	TokenUShrAssign
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
	TokenLogicalAndAssign
	TokenLogicalOrAssign
	TokenNullishAssign

	// 演算子
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenMod
	TokenExp
	TokenInc
	TokenDec
	TokenShl
	TokenShr
	TokenUShr
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenNot
	TokenLogicalAnd
	TokenLogicalOr
	TokenNullish
	TokenLt
	TokenGt
	TokenLe
	TokenGe
	TokenEq
	TokenNotEq
	TokenStrictEq
	TokenStrictNotEq

	// キーワード
	keywordBegin
	TokenAwait
	TokenBreak
	TokenCase
	TokenCatch
	TokenClass
	TokenConst
	TokenContinue
	TokenDebugger
	TokenDefault
	TokenDelete
	TokenDo
	TokenElse
	TokenEnum
	TokenExport
	TokenExtends
	TokenFalse
	TokenFinally
	TokenFor
	TokenFunction
	TokenIf
	TokenImport
	TokenIn
	TokenInstanceof
	TokenLet
	TokenNew
	TokenNull
	TokenReturn
	TokenSuper
	TokenSwitch
	TokenThis
	TokenThrow
	TokenTrue
	TokenTry
	TokenTypeof
	TokenVar
	TokenVoid
	TokenWhile
	TokenWith
	TokenYield
	keywordEnd
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF:     "EOF",
	TokenIllegal: "ILLEGAL",

	TokenIdentifier:             "IDENTIFIER",
	TokenPrivateName:            "PRIVATE_NAME",
	TokenString:                 "STRING",
	TokenTemplateNoSubstitution: "TEMPLATE",
	TokenTemplateHead:           "TEMPLATE_HEAD",
	TokenTemplateMiddle:         "TEMPLATE_MIDDLE",
	TokenTemplateTail:           "TEMPLATE_TAIL",
	TokenRegex:                  "REGEX",
	TokenJSXText:                "JSX_TEXT",

	TokenDecimal:         "DECIMAL",
	TokenNonOctalDecimal: "NON_OCTAL_DECIMAL",
	TokenLegacyOctal:     "LEGACY_OCTAL",
	TokenBinary:          "BINARY",
	TokenOctal:           "OCTAL",
	TokenHex:             "HEX",
	TokenDecimalBigInt:   "DECIMAL_BIGINT",
	TokenBinaryBigInt:    "BINARY_BIGINT",
	TokenOctalBigInt:     "OCTAL_BIGINT",
	TokenHexBigInt:       "HEX_BIGINT",

	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenLBracket:    "[",
	TokenRBracket:    "]",
	TokenSemicolon:   ";",
	TokenComma:       ",",
	TokenDot:         ".",
	TokenEllipsis:    "...",
	TokenQuestion:    "?",
	TokenQuestionDot: "?.",
	TokenColon:       ":",
	TokenArrow:       "=>",
	TokenAt:          "@",

	TokenAssign:           "=",
	TokenPlusAssign:       "+=",
	TokenMinusAssign:      "-=",
	TokenMulAssign:        "*=",
	TokenDivAssign:        "/=",
	TokenModAssign:        "%=",
	TokenExpAssign:        "**=",
	TokenShlAssign:        "<<=",
	TokenShrAssign:        ">>=",
	TokenUShrAssign:       ">>>=",
	TokenAndAssign:        "&=",
	TokenOrAssign:         "|=",
	TokenXorAssign:        "^=",
	TokenLogicalAndAssign: "&&=",
	TokenLogicalOrAssign:  "||=",
	TokenNullishAssign:    "??=",

	TokenPlus:        "+",
	TokenMinus:       "-",
	TokenMul:         "*",
	TokenDiv:         "/",
	TokenMod:         "%",
	TokenExp:         "**",
	TokenInc:         "++",
	TokenDec:         "--",
	TokenShl:         "<<",
	TokenShr:         ">>",
	TokenUShr:        ">>>",
	TokenBitAnd:      "&",
	TokenBitOr:       "|",
	TokenBitXor:      "^",
	TokenBitNot:      "~",
	TokenNot:         "!",
	TokenLogicalAnd:  "&&",
	TokenLogicalOr:   "||",
	TokenNullish:     "??",
	TokenLt:          "<",
	TokenGt:          ">",
	TokenLe:          "<=",
	TokenGe:          ">=",
	TokenEq:          "==",
	TokenNotEq:       "!=",
	TokenStrictEq:    "===",
	TokenStrictNotEq: "!==",

	TokenAwait:      "await",
	TokenBreak:      "break",
	TokenCase:       "case",
	TokenCatch:      "catch",
	TokenClass:      "class",
	TokenConst:      "const",
	TokenContinue:   "continue",
	TokenDebugger:   "debugger",
	TokenDefault:    "default",
	TokenDelete:     "delete",
	TokenDo:         "do",
	TokenElse:       "else",
	TokenEnum:       "enum",
	TokenExport:     "export",
	TokenExtends:    "extends",
	TokenFalse:      "false",
	TokenFinally:    "finally",
	TokenFor:        "for",
	TokenFunction:   "function",
	TokenIf:         "if",
	TokenImport:     "import",
	TokenIn:         "in",
	TokenInstanceof: "instanceof",
	TokenLet:        "let",
	TokenNew:        "new",
	TokenNull:       "null",
	TokenReturn:     "return",
	TokenSuper:      "super",
	TokenSwitch:     "switch",
	TokenThis:       "this",
	TokenThrow:      "throw",
	TokenTrue:       "true",
	TokenTry:        "try",
	TokenTypeof:     "typeof",
	TokenVar:        "var",
	TokenVoid:       "void",
	TokenWhile:      "while",
	TokenWith:       "with",
	TokenYield:      "yield",
}

var keywords = func() map[string]TokenType {
	m := make(map[string]TokenType, keywordEnd-keywordBegin)
	for tt := keywordBegin + 1; tt < keywordEnd; tt++ {
		m[tokenNames[tt]] = tt
	}
	return m
}()

// reservedInStrict lists the words that are only reserved in strict mode code.
var reservedInStrict = map[string]bool{
	"implements": true,
	"interface":  true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
}

// LookupKeyword returns the keyword token type for ident, or TokenIdentifier.
func LookupKeyword(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokenIdentifier
}

// IsReservedInStrict reports whether name may not be used as an identifier
// in strict mode code even though it is not a keyword.
func IsReservedInStrict(name string) bool {
	return reservedInStrict[name]
}

// IsKeyword reports whether tt is a keyword token.
func (tt TokenType) IsKeyword() bool {
	return tt > keywordBegin && tt < keywordEnd
}

// IsNumeric reports whether tt is one of the numeric literal kinds.
func (tt TokenType) IsNumeric() bool {
	return tt >= TokenDecimal && tt <= TokenHexBigInt
}

// IsBigInt reports whether tt is a BigInt literal kind.
func (tt TokenType) IsBigInt() bool {
	return tt >= TokenDecimalBigInt && tt <= TokenHexBigInt
}

// IsAssign reports whether tt is an assignment operator.
func (tt TokenType) IsAssign() bool {
	return tt >= TokenAssign && tt <= TokenNullishAssign
}

// IsTemplate reports whether tt starts or continues a template literal.
func (tt TokenType) IsTemplate() bool {
	return tt >= TokenTemplateNoSubstitution && tt <= TokenTemplateTail
}

// IsIdentifierName reports whether tt may appear where an IdentifierName
// is expected (property names, member access, import names).
func (tt TokenType) IsIdentifierName() bool {
	return tt == TokenIdentifier || tt.IsKeyword()
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // exact source text
	Value   string // decoded value (identifier name, cooked string)
	Span    position.Span

	NewlineBefore bool // a line terminator precedes the token
	SpaceBefore   bool // whitespace or a comment precedes the token
	Escaped       bool // identifier written with unicode escapes
	LegacyOctal   bool // legacy octal escape or literal, forbidden in strict mode
	BadEscape     bool // template with an invalid escape, cooked value undefined
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Pos: %s}", t.Type, t.Literal, t.Span.Start)
}

// Is reports whether the token has any of the given types.
func (t Token) Is(types ...TokenType) bool {
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}
