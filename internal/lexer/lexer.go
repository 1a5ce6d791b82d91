// Package lexer converts ECMAScript and TypeScript source text into tokens.
//
// The lexer is pull based: the parser asks for one token at a time and
// tells the lexer when a slash starts a regular expression or when a
// closing angle bracket must be split. Template literals are tracked with
// a brace stack so that `}` inside a substitution resumes the template.
package lexer

import (
	"sort"
	"unicode/utf8"

	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/errors"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

const eof = -1

// Lexer represents the lexical analyzer
type Lexer struct {
	input        string
	file         *position.SourceFile
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination

	// braces holds one entry per open `{` (<= 0) or `${` (> 0).
	braces []int

	cur     Token
	lastEnd position.Position
	err     *errors.SyntaxError
}

// State is an opaque copy of the lexer's mutable state.
type State struct {
	position     int
	readPosition int
	ch           rune
	braces       []int
	cur          Token
	lastEnd      position.Position
	err          *errors.SyntaxError
}

// New creates a lexer for source. A leading hashbang line is skipped.
func New(source, filename string) *Lexer {
	l := &Lexer{
		input:  source,
		file:   position.NewSourceFile(filename, source),
		braces: make([]int, 0, 8),
	}
	l.readChar()
	if l.ch == '#' && l.peekChar() == '!' {
		for l.ch != eof && !isLineTerminator(l.ch) {
			l.readChar()
		}
	}
	l.cur = Token{Type: TokenEOF, Span: l.spanFrom(0)}

	return l
}

// File returns the source file the lexer reads from.
func (l *Lexer) File() *position.SourceFile {
	return l.file
}

// Current returns the most recently scanned token.
func (l *Lexer) Current() Token {
	return l.cur
}

// LastTokenEnd returns the end of the token before Current.
func (l *Lexer) LastTokenEnd() position.Position {
	return l.lastEnd
}

// Err returns the first lexical error, if any. Once set, NextToken only
// produces TokenIllegal.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}

	return l.err
}

// BraceDepth returns the number of open braces and template substitutions.
func (l *Lexer) BraceDepth() int {
	return len(l.braces)
}

// NextToken advances to and returns the next token.
func (l *Lexer) NextToken() Token {
	l.lastEnd = l.cur.Span.End
	l.cur = l.scan()

	return l.cur
}

// Lookahead returns the token after Current without consuming it.
func (l *Lexer) Lookahead() Token {
	return l.LookaheadN(1)
}

// LookaheadN returns the n-th token after Current without consuming
// anything.
func (l *Lexer) LookaheadN(n int) Token {
	s := l.Snapshot()
	defer l.Restore(s)

	tok := l.cur
	for i := 0; i < n; i++ {
		tok = l.NextToken()
	}

	return tok
}

// Snapshot captures the lexer state for a later Restore.
func (l *Lexer) Snapshot() State {
	braces := make([]int, len(l.braces))
	copy(braces, l.braces)

	return State{
		position:     l.position,
		readPosition: l.readPosition,
		ch:           l.ch,
		braces:       braces,
		cur:          l.cur,
		lastEnd:      l.lastEnd,
		err:          l.err,
	}
}

// Restore rewinds the lexer to s.
func (l *Lexer) Restore(s State) {
	l.position = s.position
	l.readPosition = s.readPosition
	l.ch = s.ch
	l.braces = append(l.braces[:0], s.braces...)
	l.cur = s.cur
	l.lastEnd = s.lastEnd
	l.err = s.err
}

// ReLexGreater splits a current token that starts with `>` so that only a
// single `>` is consumed. TypeScript type argument lists rely on this.
func (l *Lexer) ReLexGreater() Token {
	switch l.cur.Type {
	case TokenShr, TokenUShr, TokenGe, TokenShrAssign, TokenUShrAssign:
		l.splitCurrent(TokenGt)
	}

	return l.cur
}

// ReLexLess splits `<<`, `<<=` and `<=` into a single `<`.
func (l *Lexer) ReLexLess() Token {
	switch l.cur.Type {
	case TokenShl, TokenShlAssign, TokenLe:
		l.splitCurrent(TokenLt)
	}

	return l.cur
}

func (l *Lexer) splitCurrent(tt TokenType) {
	start := l.cur.Span.Start.Offset
	l.seek(start + 1)
	l.cur.Type = tt
	l.cur.Literal = l.input[start : start+1]
	l.cur.Value = l.cur.Literal
	l.cur.Span = l.spanFrom(start)
}

// Tokenize scans all of source. Slashes are read as regular expressions
// wherever the previous token cannot end an expression.
func Tokenize(source, filename string) ([]Token, error) {
	l := New(source, filename)
	tokens := make([]Token, 0, len(source)/4)
	prev := Token{Type: TokenSemicolon}

	for {
		tok := l.NextToken()
		if tok.Is(TokenDiv, TokenDivAssign) && regexAllowedAfter(prev) {
			var err error
			if tok, err = l.ReadRegex(); err != nil {
				return tokens, err
			}
		}
		if err := l.Err(); err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		prev = tok
	}
}

func regexAllowedAfter(prev Token) bool {
	switch prev.Type {
	case TokenIdentifier, TokenPrivateName, TokenString, TokenRegex,
		TokenTemplateNoSubstitution, TokenTemplateTail,
		TokenRParen, TokenRBracket, TokenRBrace,
		TokenThis, TokenSuper, TokenTrue, TokenFalse, TokenNull,
		TokenInc, TokenDec:
		return false
	}

	return !prev.Type.IsNumeric()
}

// Character reading

func (l *Lexer) readChar() {
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = eof
		l.position = len(l.input)
		return
	}
	r, w := rune(l.input[l.readPosition]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRuneInString(l.input[l.readPosition:])
	}
	l.ch = r
	l.readPosition += w
}

func (l *Lexer) peekChar() rune {
	return l.runeAt(l.readPosition)
}

func (l *Lexer) runeAt(offset int) rune {
	if offset >= len(l.input) {
		return eof
	}
	r := rune(l.input[offset])
	if r >= utf8.RuneSelf {
		r, _ = utf8.DecodeRuneInString(l.input[offset:])
	}

	return r
}

func (l *Lexer) seek(offset int) {
	l.readPosition = offset
	l.readChar()
}

// Token construction

func (l *Lexer) spanFrom(start int) position.Span {
	return position.NewSpan(l.file.PositionFromOffset(start), l.file.PositionFromOffset(l.position))
}

func (l *Lexer) makeToken(tt TokenType, start int, value string) Token {
	return Token{
		Type:    tt,
		Literal: l.input[start:l.position],
		Value:   value,
		Span:    l.spanFrom(start),
	}
}

func (l *Lexer) fail(code diagnostic.Code, start int, args ...interface{}) Token {
	span := l.spanFrom(start)
	if l.err == nil {
		l.err = errors.Lexical(string(code), code.Format(args...), span)
	}

	return Token{Type: TokenIllegal, Literal: l.input[start:l.position], Span: span}
}

// Scanning

func (l *Lexer) scan() Token {
	if l.err != nil {
		return Token{Type: TokenIllegal, Span: l.spanFrom(l.position)}
	}

	newline, space, ok := l.skipWhitespace()
	if !ok {
		return Token{Type: TokenIllegal, Span: l.spanFrom(l.position)}
	}

	tok := l.scanToken()
	tok.NewlineBefore = newline
	tok.SpaceBefore = space || newline

	return tok
}

func (l *Lexer) scanToken() Token {
	start := l.position

	switch ch := l.ch; {
	case ch == eof:
		return l.makeToken(TokenEOF, start, "")
	case ch == '{':
		l.braces = append(l.braces, -1)
		l.readChar()
		return l.makeToken(TokenLBrace, start, "{")
	case ch == '}':
		if n := len(l.braces); n > 0 {
			top := l.braces[n-1]
			l.braces = l.braces[:n-1]
			if top > 0 {
				return l.readTemplate(start, false)
			}
		}
		l.readChar()
		return l.makeToken(TokenRBrace, start, "}")
	case ch == '`':
		return l.readTemplate(start, true)
	case ch == '"' || ch == '\'':
		return l.readString(start, ch)
	case ch == '.' && isDecimalDigit(l.peekChar()):
		return l.readNumber(start)
	case isDecimalDigit(ch):
		return l.readNumber(start)
	case ch == '#':
		return l.readPrivateName(start)
	case isIdentifierStart(ch) || ch == '\\':
		return l.readIdentifierToken(start)
	case ch < utf8.RuneSelf:
		if tok, ok := l.readPunctuator(start); ok {
			return tok
		}
	}

	l.readChar()
	return l.fail(diagnostic.CodeUnexpectedCharacter, start, l.input[start:l.position])
}

// skipWhitespace skips whitespace and comments, reporting whether a line
// terminator or any trivia was seen.
func (l *Lexer) skipWhitespace() (newline, space, ok bool) {
	for {
		switch {
		case isLineTerminator(l.ch):
			newline = true
			l.readChar()
		case isWhitespace(l.ch):
			space = true
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			space = true
			for l.ch != eof && !isLineTerminator(l.ch) {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			space = true
			start := l.position
			l.readChar()
			l.readChar()
			for {
				if l.ch == eof {
					l.fail(diagnostic.CodeUnterminatedComment, start)
					return newline, space, false
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				if isLineTerminator(l.ch) {
					newline = true
				}
				l.readChar()
			}
		default:
			return newline, space, true
		}
	}
}

func (l *Lexer) readPunctuator(start int) (Token, bool) {
	candidates := operatorIndex[l.ch]
	for _, op := range candidates {
		if len(l.input)-start < len(op.text) || l.input[start:start+len(op.text)] != op.text {
			continue
		}
		// `?.` directly followed by a digit is a conditional and a number
		if op.tt == TokenQuestionDot && isDecimalDigit(l.runeAt(start+2)) {
			continue
		}
		l.seek(start + len(op.text))
		return l.makeToken(op.tt, start, op.text), true
	}

	return Token{}, false
}

type operator struct {
	text string
	tt   TokenType
}

// operatorIndex maps a first byte to its operators, longest first.
var operatorIndex = func() map[rune][]operator {
	index := make(map[rune][]operator)
	for tt, name := range tokenNames {
		if tt < TokenLBrace || tt > TokenStrictNotEq || tt == TokenLBrace || tt == TokenRBrace {
			continue
		}
		first := rune(name[0])
		index[first] = append(index[first], operator{text: name, tt: tt})
	}
	for _, ops := range index {
		sort.Slice(ops, func(i, j int) bool { return len(ops[i].text) > len(ops[j].text) })
	}

	return index
}()
