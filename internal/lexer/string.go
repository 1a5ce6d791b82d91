package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
)

// escapeResult describes the outcome of one escape sequence.
type escapeResult int

const (
	escapeOK escapeResult = iota
	escapeLegacyOctal
	escapeInvalid
	escapeEOF
)

func (l *Lexer) readString(start int, quote rune) Token {
	var sb strings.Builder
	legacy := false
	l.readChar()

	for {
		switch {
		case l.ch == quote:
			l.readChar()
			tok := l.makeToken(TokenString, start, sb.String())
			tok.LegacyOctal = legacy
			return tok
		case l.ch == eof || l.ch == '\n' || l.ch == '\r':
			return l.fail(diagnostic.CodeUnterminatedString, start)
		case l.ch == '\\':
			escStart := l.position
			switch res, code := l.readEscape(&sb, false); res {
			case escapeLegacyOctal:
				legacy = true
			case escapeInvalid:
				return l.fail(code, escStart)
			case escapeEOF:
				return l.fail(diagnostic.CodeUnterminatedString, start)
			}
		default:
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
}

// readTemplate reads a template chunk. When head is true the current char
// is the opening backtick, otherwise it is the `}` closing a substitution.
func (l *Lexer) readTemplate(start int, head bool) Token {
	var sb strings.Builder
	bad := false
	l.readChar()

	for {
		switch {
		case l.ch == eof:
			return l.fail(diagnostic.CodeUnterminatedTemplate, start)
		case l.ch == '`':
			l.readChar()
			tt := TokenTemplateTail
			if head {
				tt = TokenTemplateNoSubstitution
			}
			return l.templateToken(tt, start, &sb, bad)
		case l.ch == '$' && l.peekChar() == '{':
			l.readChar()
			l.readChar()
			l.braces = append(l.braces, 1)
			tt := TokenTemplateMiddle
			if head {
				tt = TokenTemplateHead
			}
			return l.templateToken(tt, start, &sb, bad)
		case l.ch == '\\':
			switch res, _ := l.readEscape(&sb, true); res {
			case escapeInvalid:
				bad = true
			case escapeEOF:
				return l.fail(diagnostic.CodeUnterminatedTemplate, start)
			}
		case l.ch == '\r':
			// CR and CRLF are normalized to LF in the cooked value
			l.readChar()
			if l.ch == '\n' {
				l.readChar()
			}
			sb.WriteByte('\n')
		default:
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) templateToken(tt TokenType, start int, sb *strings.Builder, bad bool) Token {
	tok := l.makeToken(tt, start, sb.String())
	if bad {
		tok.BadEscape = true
		tok.Value = ""
	}

	return tok
}

// TemplateRaw returns the raw text of a template chunk without its
// delimiters, with line terminators normalized.
func TemplateRaw(tok Token) string {
	raw := tok.Literal
	switch tok.Type {
	case TokenTemplateNoSubstitution, TokenTemplateTail:
		raw = raw[1 : len(raw)-1]
	case TokenTemplateHead, TokenTemplateMiddle:
		raw = raw[1 : len(raw)-2]
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	return strings.ReplaceAll(raw, "\r", "\n")
}

// readEscape decodes the escape sequence at `\` into sb. Templates reject
// legacy octal escapes and \8 \9.
func (l *Lexer) readEscape(sb *strings.Builder, template bool) (escapeResult, diagnostic.Code) {
	l.readChar() // backslash
	ch := l.ch

	switch ch {
	case eof:
		return escapeEOF, ""
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '\r':
		l.readChar()
		if l.ch == '\n' {
			l.readChar()
		}
		return escapeOK, ""
	case '\n', '\u2028', '\u2029':
		// line continuation
	case 'x':
		l.readChar()
		hi, lo := hexValue(l.ch), hexValue(l.peekChar())
		if hi < 0 || lo < 0 {
			return escapeInvalid, diagnostic.CodeInvalidHexEscape
		}
		l.readChar()
		sb.WriteRune(rune(hi<<4 | lo))
	case 'u':
		r, ok := l.readUnicodeEscape()
		if !ok {
			return escapeInvalid, diagnostic.CodeInvalidUnicodeEscape
		}
		l.writeCodePoint(sb, r)
		return escapeOK, ""
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if ch == '0' && !isDecimalDigit(l.peekChar()) {
			sb.WriteByte(0)
			break
		}
		if template {
			return escapeInvalid, diagnostic.CodeTemplateInvalidEscape
		}
		sb.WriteRune(l.readLegacyOctalEscape())
		return escapeLegacyOctal, ""
	case '8', '9':
		if template {
			return escapeInvalid, diagnostic.CodeTemplateInvalidEscape
		}
		sb.WriteRune(ch)
		l.readChar()
		return escapeLegacyOctal, ""
	default:
		sb.WriteRune(ch)
	}

	l.readChar()
	return escapeOK, ""
}

// readLegacyOctalEscape reads up to three octal digits with a value of at
// most 0377 and leaves the lexer after them.
func (l *Lexer) readLegacyOctalEscape() rune {
	value := l.ch - '0'
	maxDigits := 3
	if value > 3 {
		maxDigits = 2
	}
	l.readChar()
	for i := 1; i < maxDigits && isOctalDigit(l.ch); i++ {
		value = value*8 + (l.ch - '0')
		l.readChar()
	}

	return value
}

// readUnicodeEscape reads the part of `\uXXXX` or `\u{X...}` after the
// backslash, starting at `u`, and leaves the lexer after the sequence.
func (l *Lexer) readUnicodeEscape() (rune, bool) {
	l.readChar() // u

	if l.ch == '{' {
		l.readChar()
		value, digits := 0, 0
		for isHexDigit(l.ch) {
			value = value*16 + hexValue(l.ch)
			if value > utf8.MaxRune {
				return 0, false
			}
			digits++
			l.readChar()
		}
		if l.ch != '}' || digits == 0 {
			return 0, false
		}
		l.readChar()
		return rune(value), true
	}

	value := 0
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.ch) {
			return 0, false
		}
		value = value*16 + hexValue(l.ch)
		l.readChar()
	}

	return rune(value), true
}

// writeCodePoint appends r, combining a trailing surrogate with a leading
// surrogate written just before it.
func (l *Lexer) writeCodePoint(sb *strings.Builder, r rune) {
	if r >= 0xDC00 && r <= 0xDFFF {
		s := sb.String()
		if n := len(s); n >= 3 {
			if hi, ok := decodeWTF8Surrogate(s[n-3:]); ok {
				combined := (hi-0xD800)<<10 + (r - 0xDC00) + 0x10000
				sb.Reset()
				sb.WriteString(s[:n-3])
				sb.WriteRune(combined)
				return
			}
		}
	}
	if r >= 0xD800 && r <= 0xDFFF {
		// lone surrogates are kept in their generalized UTF-8 form
		sb.WriteString(encodeWTF8Surrogate(r))
		return
	}
	sb.WriteRune(r)
}

func encodeWTF8Surrogate(r rune) string {
	return string([]byte{
		byte(0xE0 | (r >> 12)),
		byte(0x80 | ((r >> 6) & 0x3F)),
		byte(0x80 | (r & 0x3F)),
	})
}

func decodeWTF8Surrogate(s string) (rune, bool) {
	if len(s) != 3 || s[0] != 0xED || s[1] < 0xA0 || s[1] > 0xAF {
		return 0, false
	}
	r := rune(s[0]&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F)

	return r, true
}
