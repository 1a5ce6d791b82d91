package lexer

import (
	"strconv"
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
)

func isDecimalDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
func isOctalDigit(ch rune) bool   { return '0' <= ch && ch <= '7' }
func isBinaryDigit(ch rune) bool  { return ch == '0' || ch == '1' }

func isHexDigit(ch rune) bool {
	return isDecimalDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func hexValue(ch rune) int {
	switch {
	case isDecimalDigit(ch):
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10
	}

	return -1
}

// readDigits consumes digits accepted by valid, with `_` separators when
// allowed. It returns the digit count and false for a misplaced separator.
func (l *Lexer) readDigits(valid func(rune) bool, allowSeparator bool) (int, bool) {
	n := 0
	lastSeparator := false
	for {
		if l.ch == '_' {
			if !allowSeparator || n == 0 || lastSeparator {
				return n, false
			}
			lastSeparator = true
			l.readChar()
			continue
		}
		if !valid(l.ch) {
			break
		}
		lastSeparator = false
		n++
		l.readChar()
	}

	return n, !lastSeparator
}

func (l *Lexer) readNumber(start int) Token {
	if l.ch == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			return l.readRadixNumber(start, 16, isHexDigit, TokenHex, TokenHexBigInt)
		case 'o', 'O':
			return l.readRadixNumber(start, 8, isOctalDigit, TokenOctal, TokenOctalBigInt)
		case 'b', 'B':
			return l.readRadixNumber(start, 2, isBinaryDigit, TokenBinary, TokenBinaryBigInt)
		}
		if isDecimalDigit(l.peekChar()) || l.peekChar() == '_' {
			return l.readLegacyNumber(start)
		}
	}

	tt := TokenDecimal
	if l.ch != '.' {
		if _, ok := l.readDigits(isDecimalDigit, true); !ok {
			return l.fail(diagnostic.CodeNumericSeparator, start)
		}
	}

	if l.ch == 'n' {
		l.readChar()
		return l.finishNumber(start, TokenDecimalBigInt)
	}

	if tok, ok := l.readFraction(start); !ok {
		return tok
	}

	return l.finishNumber(start, tt)
}

// readFraction reads an optional `.digits` and exponent part.
func (l *Lexer) readFraction(start int) (Token, bool) {
	if l.ch == '.' {
		l.readChar()
		if _, ok := l.readDigits(isDecimalDigit, true); !ok {
			return l.fail(diagnostic.CodeNumericSeparator, start), false
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		n, ok := l.readDigits(isDecimalDigit, true)
		if !ok {
			return l.fail(diagnostic.CodeNumericSeparator, start), false
		}
		if n == 0 {
			return l.fail(diagnostic.CodeInvalidNumber, start, 10), false
		}
	}

	return Token{}, true
}

func (l *Lexer) readRadixNumber(start, radix int, valid func(rune) bool, tt, bigTT TokenType) Token {
	l.readChar() // 0
	l.readChar() // prefix
	n, ok := l.readDigits(valid, true)
	if !ok {
		return l.fail(diagnostic.CodeNumericSeparator, start)
	}
	if n == 0 {
		return l.fail(diagnostic.CodeInvalidNumber, start, radix)
	}
	if l.ch == 'n' {
		l.readChar()
		tt = bigTT
	}

	return l.finishNumber(start, tt)
}

// readLegacyNumber reads a literal with a leading zero such as 017 or 089.
func (l *Lexer) readLegacyNumber(start int) Token {
	octal := true
	for isDecimalDigit(l.ch) || l.ch == '_' {
		if l.ch == '_' {
			l.readChar()
			return l.fail(diagnostic.CodeNumericSeparator, start)
		}
		if !isOctalDigit(l.ch) {
			octal = false
		}
		l.readChar()
	}

	if l.ch == 'n' {
		l.readChar()
		return l.fail(diagnostic.CodeInvalidBigInt, start)
	}

	if octal {
		tok := l.finishNumber(start, TokenLegacyOctal)
		tok.LegacyOctal = true
		return tok
	}

	if tok, ok := l.readFraction(start); !ok {
		return tok
	}
	tok := l.finishNumber(start, TokenNonOctalDecimal)
	tok.LegacyOctal = true

	return tok
}

// finishNumber rejects an identifier start or digit directly after the
// literal and builds the token.
func (l *Lexer) finishNumber(start int, tt TokenType) Token {
	if isIdentifierStart(l.ch) || isDecimalDigit(l.ch) || l.ch == '\\' {
		l.readChar()
		return l.fail(diagnostic.CodeIdentifierAfterNum, start)
	}

	tok := l.makeToken(tt, start, "")
	tok.Value = strings.ReplaceAll(tok.Literal, "_", "")

	return tok
}

// ParseNumber returns the numeric value of a numeric literal token. BigInt
// literals are approximated by the nearest float64.
func ParseNumber(tt TokenType, literal string) float64 {
	text := strings.ReplaceAll(literal, "_", "")
	if tt.IsBigInt() {
		text = strings.TrimSuffix(text, "n")
	}

	switch tt {
	case TokenHex, TokenHexBigInt:
		return parseRadix(text[2:], 16)
	case TokenOctal, TokenOctalBigInt:
		return parseRadix(text[2:], 8)
	case TokenBinary, TokenBinaryBigInt:
		return parseRadix(text[2:], 2)
	case TokenLegacyOctal:
		return parseRadix(text[1:], 8)
	}

	// out of range values saturate to ±Inf
	v, _ := strconv.ParseFloat(text, 64)

	return v
}

func parseRadix(digits string, base float64) float64 {
	v := 0.0
	for _, ch := range digits {
		v = v*base + float64(hexValue(ch))
	}

	return v
}
