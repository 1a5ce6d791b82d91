package lexer

import (
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
)

// ReadJSXIdentifier extends the current identifier or keyword token with
// any following `-` and identifier characters, as allowed in JSX names.
func (l *Lexer) ReadJSXIdentifier() Token {
	if !l.cur.Type.IsIdentifierName() {
		return l.cur
	}

	start := l.cur.Span.Start.Offset
	l.seek(l.cur.Span.End.Offset)
	for l.ch == '-' || isIdentifierPart(l.ch) {
		l.readChar()
	}

	text := l.input[start:l.position]
	newline, space := l.cur.NewlineBefore, l.cur.SpaceBefore
	l.cur = l.makeToken(TokenIdentifier, start, text)
	l.cur.NewlineBefore = newline
	l.cur.SpaceBefore = space

	return l.cur
}

// ReadJSXString scans the next token. A quoted attribute value is read
// verbatim, without escapes and across line breaks; anything else is
// scanned normally.
func (l *Lexer) ReadJSXString() Token {
	l.lastEnd = l.cur.Span.End
	if l.err != nil {
		l.cur = l.scan()
		return l.cur
	}

	newline, space, ok := l.skipWhitespace()
	if !ok {
		l.cur = Token{Type: TokenIllegal, Span: l.spanFrom(l.position)}
		return l.cur
	}
	if l.ch != '"' && l.ch != '\'' {
		l.cur = l.scanToken()
		l.cur.NewlineBefore, l.cur.SpaceBefore = newline, space || newline
		return l.cur
	}

	start, quote := l.position, l.ch
	l.readChar()
	for l.ch != quote {
		if l.ch == eof {
			l.cur = l.fail(diagnostic.CodeUnterminatedString, start)
			return l.cur
		}
		l.readChar()
	}
	l.readChar()

	l.cur = l.makeToken(TokenString, start, l.input[start+1:l.position-1])
	l.cur.NewlineBefore, l.cur.SpaceBefore = newline, space || newline

	return l.cur
}

// ReadJSXText scans the next JSX child starting right after the current
// token: `<`, `{`, end of input, or a run of text.
func (l *Lexer) ReadJSXText() Token {
	l.ReLexGreater()
	l.lastEnd = l.cur.Span.End
	if l.err != nil {
		l.cur = l.scan()
		return l.cur
	}

	start := l.cur.Span.End.Offset
	l.seek(start)

	switch l.ch {
	case eof:
		l.cur = l.makeToken(TokenEOF, start, "")
	case '<':
		l.readChar()
		l.cur = l.makeToken(TokenLt, start, "<")
	case '{':
		l.braces = append(l.braces, -1)
		l.readChar()
		l.cur = l.makeToken(TokenLBrace, start, "{")
	default:
		for l.ch != eof && l.ch != '<' && l.ch != '{' {
			l.readChar()
		}
		text := l.input[start:l.position]
		l.cur = l.makeToken(TokenJSXText, start, text)
	}

	return l.cur
}
