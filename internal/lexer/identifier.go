package lexer

import (
	"strings"
	"unicode"

	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
)

const (
	zwnj = '\u200C'
	zwj  = '\u200D'
)

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029'
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', '\u00A0', '\uFEFF':
		return true
	}

	return ch > 0x7F && unicode.Is(unicode.Zs, ch)
}

func isIdentifierStart(ch rune) bool {
	if ch < 0x80 {
		return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '$' || ch == '_'
	}

	return unicode.IsLetter(ch) || unicode.Is(unicode.Nl, ch) || unicode.Is(unicode.Other_ID_Start, ch)
}

func isIdentifierPart(ch rune) bool {
	if ch < 0x80 {
		return isIdentifierStart(ch) || isDecimalDigit(ch)
	}

	return isIdentifierStart(ch) || ch == zwnj || ch == zwj ||
		unicode.In(ch, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

// IsIdentifierName reports whether s is a valid IdentifierName.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if i == 0 && !isIdentifierStart(ch) {
			return false
		}
		if i > 0 && !isIdentifierPart(ch) {
			return false
		}
	}

	return true
}

// readIdentifierName reads an IdentifierName, decoding unicode escapes.
// It reports whether any escape was used.
func (l *Lexer) readIdentifierName(start int) (string, bool, Token, bool) {
	var sb strings.Builder
	escaped := false
	first := true

	for {
		ch := l.ch
		if ch == '\\' {
			escStart := l.position
			if l.peekChar() != 'u' {
				l.readChar()
				return "", false, l.fail(diagnostic.CodeInvalidUnicodeEscape, escStart), false
			}
			l.readChar()
			r, ok := l.readUnicodeEscape()
			if !ok || (first && !isIdentifierStart(r)) || (!first && !isIdentifierPart(r)) {
				return "", false, l.fail(diagnostic.CodeInvalidUnicodeEscape, escStart), false
			}
			sb.WriteRune(r)
			escaped = true
			first = false
			continue
		}
		if (first && !isIdentifierStart(ch)) || (!first && !isIdentifierPart(ch)) {
			break
		}
		sb.WriteRune(ch)
		l.readChar()
		first = false
	}

	if sb.Len() == 0 {
		l.readChar()
		return "", false, l.fail(diagnostic.CodeUnexpectedCharacter, start, l.input[start:l.position]), false
	}

	return sb.String(), escaped, Token{}, true
}

func (l *Lexer) readIdentifierToken(start int) Token {
	name, escaped, bad, ok := l.readIdentifierName(start)
	if !ok {
		return bad
	}

	tok := l.makeToken(LookupKeyword(name), start, name)
	tok.Escaped = escaped

	return tok
}

func (l *Lexer) readPrivateName(start int) Token {
	l.readChar() // #
	if !isIdentifierStart(l.ch) && l.ch != '\\' {
		return l.fail(diagnostic.CodeUnexpectedCharacter, start, "#")
	}

	name, escaped, bad, ok := l.readIdentifierName(l.position)
	if !ok {
		return bad
	}

	tok := l.makeToken(TokenPrivateName, start, name)
	tok.Escaped = escaped

	return tok
}
