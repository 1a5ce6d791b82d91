package lexer

import (
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
)

const regexFlags = "dgimsuvy"

// ReadRegex re-scans the current `/` or `/=` token as a regular expression
// literal. The token's Value is the pattern body; SplitRegex separates the
// flags.
func (l *Lexer) ReadRegex() (Token, error) {
	if !l.cur.Is(TokenDiv, TokenDivAssign) {
		return l.cur, nil
	}

	start := l.cur.Span.Start.Offset
	newline, space := l.cur.NewlineBefore, l.cur.SpaceBefore
	l.seek(start + 1)

	inClass := false
scan:
	for {
		switch {
		case l.ch == eof || isLineTerminator(l.ch):
			l.cur = l.fail(diagnostic.CodeUnterminatedRegex, start)
			return l.cur, l.Err()
		case l.ch == '\\':
			l.readChar()
			if l.ch == eof || isLineTerminator(l.ch) {
				l.cur = l.fail(diagnostic.CodeUnterminatedRegex, start)
				return l.cur, l.Err()
			}
		case l.ch == '[':
			inClass = true
		case l.ch == ']':
			inClass = false
		case l.ch == '/' && !inClass:
			break scan
		}
		l.readChar()
	}
	bodyEnd := l.position
	l.readChar() // closing slash

	flagStart := l.position
	for isIdentifierPart(l.ch) || l.ch == '\\' {
		if l.ch == '\\' {
			l.readChar()
			l.cur = l.fail(diagnostic.CodeInvalidRegexFlags, start, l.input[flagStart:l.position])
			return l.cur, l.Err()
		}
		l.readChar()
	}
	flags := l.input[flagStart:l.position]
	if !validRegexFlags(flags) {
		l.cur = l.fail(diagnostic.CodeInvalidRegexFlags, start, flags)
		return l.cur, l.Err()
	}

	tok := l.makeToken(TokenRegex, start, l.input[start+1:bodyEnd])
	tok.NewlineBefore = newline
	tok.SpaceBefore = space
	l.cur = tok

	return tok, nil
}

func validRegexFlags(flags string) bool {
	seen := 0
	for _, f := range flags {
		i := strings.IndexRune(regexFlags, f)
		if i < 0 || seen&(1<<i) != 0 {
			return false
		}
		seen |= 1 << i
	}

	return !(strings.ContainsRune(flags, 'u') && strings.ContainsRune(flags, 'v'))
}

// SplitRegex splits a regular expression literal into pattern and flags.
func SplitRegex(literal string) (pattern, flags string) {
	i := strings.LastIndexByte(literal, '/')
	if i <= 0 {
		return literal, ""
	}

	return literal[1:i], literal[i+1:]
}
