package lexer

import (
	"strings"
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/errors"
)

func TestBasicTokens(t *testing.T) {
	input := `function main() {
	print("Hello, world!");
}`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenFunction, "function"},
		{TokenIdentifier, "main"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenLBrace, "{"},
		{TokenIdentifier, "print"},
		{TokenLParen, "("},
		{TokenString, `"Hello, world!"`},
		{TokenRParen, ")"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenEOF, ""},
	}

	l := New(input, "main.js")

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperatorsLongestMatch(t *testing.T) {
	input := `a >>>= b >>> c >> d >= e ?? f ??= g ?. h -= i ** j **= k => ... === !== &&= ||= ++ -- @`

	expected := []TokenType{
		TokenIdentifier, TokenUShrAssign, TokenIdentifier, TokenUShr, TokenIdentifier,
		TokenShr, TokenIdentifier, TokenGe, TokenIdentifier, TokenNullish, TokenIdentifier,
		TokenNullishAssign, TokenIdentifier, TokenQuestionDot, TokenIdentifier,
		TokenMinusAssign, TokenIdentifier, TokenExp, TokenIdentifier, TokenExpAssign,
		TokenIdentifier, TokenArrow, TokenEllipsis, TokenStrictEq, TokenStrictNotEq,
		TokenLogicalAndAssign, TokenLogicalOrAssign, TokenInc, TokenDec, TokenAt, TokenEOF,
	}

	l := New(input, "")
	for i, tt := range expected {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (%q)", i, tt, tok.Type, tok.Literal)
		}
	}
}

func TestOptionalChainBeforeDigit(t *testing.T) {
	l := New("a?.5:1", "")

	expected := []struct {
		tt      TokenType
		literal string
	}{
		{TokenIdentifier, "a"},
		{TokenQuestion, "?"},
		{TokenDecimal, ".5"},
		{TokenColon, ":"},
		{TokenDecimal, "1"},
	}
	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.tt || tok.Literal != e.literal {
			t.Fatalf("tests[%d] - wrong token. expected=%s %q, got=%s %q", i, e.tt, e.literal, tok.Type, tok.Literal)
		}
	}
}

func TestNumericLiteralKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
		value    float64
	}{
		{"0", TokenDecimal, 0},
		{"0.5", TokenDecimal, 0.5},
		{"1e10", TokenDecimal, 1e10},
		{"0x1F", TokenHex, 31},
		{"0b101", TokenBinary, 5},
		{"0o17", TokenOctal, 15},
		{".25", TokenDecimal, 0.25},
		{"1_000_000", TokenDecimal, 1000000},
		{"017", TokenLegacyOctal, 15},
		{"089", TokenNonOctalDecimal, 89},
		{"09.5", TokenNonOctalDecimal, 9.5},
		{"10n", TokenDecimalBigInt, 10},
		{"0xFFn", TokenHexBigInt, 255},
		{"0b11n", TokenBinaryBigInt, 3},
		{"0o7n", TokenOctalBigInt, 7},
		{"2.5E-3", TokenDecimal, 0.0025},
	}

	for i, tt := range tests {
		l := New(tt.input, "")
		tok := l.NextToken()

		if err := l.Err(); err != nil {
			t.Fatalf("tests[%d] - unexpected error for %q: %v", i, tt.input, err)
		}
		if tok.Type != tt.expected {
			t.Fatalf("tests[%d] - kind wrong for %q. expected=%s, got=%s", i, tt.input, tt.expected, tok.Type)
		}
		if tok.Literal != tt.input {
			t.Fatalf("tests[%d] - raw text not preserved. expected=%q, got=%q", i, tt.input, tok.Literal)
		}
		if got := ParseNumber(tok.Type, tok.Literal); got != tt.value {
			t.Fatalf("tests[%d] - value wrong for %q. expected=%v, got=%v", i, tt.input, tt.value, got)
		}
	}
}

func TestNumericLiteralErrors(t *testing.T) {
	tests := []struct {
		input string
		code  string
	}{
		{"1_", "E0006"},
		{"1__0", "E0006"},
		{"0_1", "E0006"},
		{"0x_1", "E0006"},
		{"0x", "E0007"},
		{"0b2", "E0007"},
		{"1e", "E0007"},
		{"07n", "E0013"},
		{"3in x", "E0008"},
		{"0x1g", "E0008"},
	}

	for i, tt := range tests {
		l := New(tt.input, "")
		tok := l.NextToken()

		if tok.Type != TokenIllegal {
			t.Fatalf("tests[%d] - expected illegal token for %q, got=%s", i, tt.input, tok.Type)
		}
		se, ok := errors.AsSyntaxError(l.Err())
		if !ok {
			t.Fatalf("tests[%d] - expected SyntaxError for %q, got=%v", i, tt.input, l.Err())
		}
		if se.Code != tt.code || se.Category != errors.CategoryLexical {
			t.Fatalf("tests[%d] - wrong error for %q. expected=%s, got=%s %s", i, tt.input, tt.code, se.Category, se.Code)
		}
		if next := l.NextToken(); next.Type != TokenIllegal {
			t.Fatalf("tests[%d] - lexer continued after fatal error: %s", i, next.Type)
		}
	}
}

func TestLookaheadHasNoSideEffects(t *testing.T) {
	l := New("let x = `a${b}c` + y;", "")
	l.NextToken()
	l.NextToken()

	before := l.Snapshot()
	peek := l.Lookahead()
	peek3 := l.LookaheadN(3)

	if peek.Type != TokenAssign {
		t.Fatalf("lookahead wrong. expected=%s, got=%s", TokenAssign, peek.Type)
	}
	if peek3.Type != TokenIdentifier || peek3.Literal != "b" {
		t.Fatalf("lookahead(3) wrong. got=%s %q", peek3.Type, peek3.Literal)
	}

	after := l.Snapshot()
	if before.position != after.position || before.readPosition != after.readPosition ||
		before.cur != after.cur || before.lastEnd != after.lastEnd || len(before.braces) != len(after.braces) {
		t.Fatalf("lookahead changed lexer state")
	}

	if tok := l.NextToken(); tok.Type != TokenAssign {
		t.Fatalf("next after lookahead wrong. got=%s", tok.Type)
	}
}

func TestLookaheadRestoresError(t *testing.T) {
	l := New(`a "unterminated`, "")
	l.NextToken()

	if tok := l.Lookahead(); tok.Type != TokenIllegal {
		t.Fatalf("expected illegal lookahead, got=%s", tok.Type)
	}
	if l.Err() != nil {
		t.Fatalf("lookahead leaked error: %v", l.Err())
	}
}

func TestTemplateNesting(t *testing.T) {
	l := New("`a${ {x:1} }b`", "")

	expected := []struct {
		tt    TokenType
		value string
	}{
		{TokenTemplateHead, "a"},
		{TokenLBrace, "{"},
		{TokenIdentifier, "x"},
		{TokenColon, ":"},
		{TokenDecimal, "1"},
		{TokenRBrace, "}"},
		{TokenTemplateTail, "b"},
		{TokenEOF, ""},
	}

	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.tt || tok.Value != e.value {
			t.Fatalf("tests[%d] - wrong token. expected=%s %q, got=%s %q", i, e.tt, e.value, tok.Type, tok.Value)
		}
	}

	if l.BraceDepth() != 0 {
		t.Fatalf("brace stack not empty: %d", l.BraceDepth())
	}
}

func TestTemplateChunks(t *testing.T) {
	l := New("`x${a}y${b}z` `plain\r\nline`", "")

	expected := []struct {
		tt    TokenType
		value string
		raw   string
	}{
		{TokenTemplateHead, "x", "x"},
		{TokenIdentifier, "a", ""},
		{TokenTemplateMiddle, "y", "y"},
		{TokenIdentifier, "b", ""},
		{TokenTemplateTail, "z", "z"},
		{TokenTemplateNoSubstitution, "plain\nline", "plain\nline"},
	}

	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.tt || tok.Value != e.value {
			t.Fatalf("tests[%d] - wrong token. expected=%s %q, got=%s %q", i, e.tt, e.value, tok.Type, tok.Value)
		}
		if e.raw != "" && TemplateRaw(tok) != e.raw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q", i, e.raw, TemplateRaw(tok))
		}
	}
}

func TestTemplateBadEscape(t *testing.T) {
	l := New("`\\unicode and \\01`", "")
	tok := l.NextToken()

	if l.Err() != nil {
		t.Fatalf("bad template escape must not be fatal: %v", l.Err())
	}
	if !tok.BadEscape || tok.Value != "" {
		t.Fatalf("expected BadEscape with empty cooked value, got=%v %q", tok.BadEscape, tok.Value)
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input  string
		value  string
		legacy bool
	}{
		{`"a\nb"`, "a\nb", false},
		{`'\x41B\u{43}'`, "ABC", false},
		{`"\uD83D\uDE00"`, "\U0001F600", false},
		{"\"line\\\ncontinued\"", "linecontinued", false},
		{`"\0"`, "\x00", false},
		{`"\101"`, "A", true},
		{`"\8"`, "8", true},
		{`"\'"`, "'", false},
	}

	for i, tt := range tests {
		l := New(tt.input, "")
		tok := l.NextToken()
		if l.Err() != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, l.Err())
		}
		if tok.Type != TokenString || tok.Value != tt.value {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, tok.Value)
		}
		if tok.LegacyOctal != tt.legacy {
			t.Fatalf("tests[%d] - legacy flag wrong. expected=%v", i, tt.legacy)
		}
	}
}

func TestUnterminatedLiterals(t *testing.T) {
	tests := []struct {
		input string
		code  string
	}{
		{`"abc`, "E0001"},
		{"'abc\n'", "E0001"},
		{"`abc", "E0002"},
		{"/* never closed", "E0003"},
		{`"\x4"`, "E0011"},
		{`"\u{110000}"`, "E0010"},
		{"#", "E0012"},
	}

	for i, tt := range tests {
		l := New(tt.input, "")
		for tok := l.NextToken(); tok.Type != TokenEOF && tok.Type != TokenIllegal; tok = l.NextToken() {
		}

		se, ok := errors.AsSyntaxError(l.Err())
		if !ok {
			t.Fatalf("tests[%d] - expected a lexical error for %q", i, tt.input)
		}
		if se.Code != tt.code {
			t.Fatalf("tests[%d] - code wrong for %q. expected=%s, got=%s", i, tt.input, tt.code, se.Code)
		}
	}
}

func TestReadRegex(t *testing.T) {
	tests := []struct {
		input   string
		pattern string
		flags   string
		code    string
	}{
		{"/ab+c/gi", "ab+c", "gi", ""},
		{"/[/]/", "[/]", "", ""},
		{`/a\/b/u`, `a\/b`, "u", ""},
		{"/=x/", "=x", "", ""},
		{"/a/gg", "", "", "E0005"},
		{"/a/uv", "", "", "E0005"},
		{"/a/q", "", "", "E0005"},
		{"/abc\n/", "", "", "E0004"},
		{"/[abc/", "", "", "E0004"},
	}

	for i, tt := range tests {
		l := New(tt.input, "")
		l.NextToken()
		tok, err := l.ReadRegex()

		if tt.code != "" {
			se, ok := errors.AsSyntaxError(err)
			if !ok || se.Code != tt.code {
				t.Fatalf("tests[%d] - expected error %s for %q, got=%v", i, tt.code, tt.input, err)
			}
			continue
		}

		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		pattern, flags := SplitRegex(tok.Literal)
		if tok.Type != TokenRegex || pattern != tt.pattern || flags != tt.flags || tok.Value != tt.pattern {
			t.Fatalf("tests[%d] - regex wrong. expected=%q %q, got=%q %q", i, tt.pattern, tt.flags, pattern, flags)
		}
		if next := l.NextToken(); next.Type != TokenEOF {
			t.Fatalf("tests[%d] - expected EOF after regex, got=%s", i, next.Type)
		}
	}
}

func TestReLexGreater(t *testing.T) {
	l := New("a<b<c>>=d", "")
	for i := 0; i < 6; i++ {
		l.NextToken()
	}
	if l.Current().Type != TokenShrAssign {
		t.Fatalf("setup wrong. got=%s", l.Current().Type)
	}

	expected := []TokenType{TokenGt, TokenGe}
	tok := l.ReLexGreater()
	if tok.Type != expected[0] || tok.Literal != ">" {
		t.Fatalf("first split wrong. got=%s %q", tok.Type, tok.Literal)
	}
	if tok = l.NextToken(); tok.Type != expected[1] {
		t.Fatalf("remainder wrong. expected=%s, got=%s", expected[1], tok.Type)
	}
	if tok.SpaceBefore {
		t.Fatalf("split token should not report leading space")
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input   string
		tt      TokenType
		value   string
		escaped bool
	}{
		{"foo", TokenIdentifier, "foo", false},
		{"$_x1", TokenIdentifier, "$_x1", false},
		{"\\u0061b", TokenIdentifier, "ab", true},
		{"caf\\u{E9}", TokenIdentifier, "café", true},
		{"ünïcödé", TokenIdentifier, "ünïcödé", false},
		{"yield", TokenYield, "yield", false},
		{"l\\u0065t", TokenLet, "let", true},
		{"#priv", TokenPrivateName, "priv", false},
		{"async", TokenIdentifier, "async", false},
	}

	for i, tt := range tests {
		l := New(tt.input, "")
		tok := l.NextToken()
		if l.Err() != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, l.Err())
		}
		if tok.Type != tt.tt || tok.Value != tt.value || tok.Escaped != tt.escaped {
			t.Fatalf("tests[%d] - wrong token. expected=%s %q %v, got=%s %q %v",
				i, tt.tt, tt.value, tt.escaped, tok.Type, tok.Value, tok.Escaped)
		}
		if tok.Literal != tt.input {
			t.Fatalf("tests[%d] - literal wrong. got=%q", i, tok.Literal)
		}
	}
}

func TestTriviaFlags(t *testing.T) {
	l := New("#!/usr/bin/env node\na /* c\n */ b // x\nc  d", "")

	expected := []struct {
		literal string
		newline bool
		space   bool
	}{
		{"a", true, true},
		{"b", true, true},
		{"c", true, true},
		{"d", false, true},
	}

	for i, e := range expected {
		tok := l.NextToken()
		if tok.Literal != e.literal || tok.NewlineBefore != e.newline || tok.SpaceBefore != e.space {
			t.Fatalf("tests[%d] - wrong token. expected=%q nl=%v sp=%v, got=%q nl=%v sp=%v",
				i, e.literal, e.newline, e.space, tok.Literal, tok.NewlineBefore, tok.SpaceBefore)
		}
	}

	if end := l.LastTokenEnd(); end.Line != 4 || end.Column != 2 {
		t.Fatalf("last token end wrong. got=%s", end)
	}
}

func TestSpans(t *testing.T) {
	l := New("let\n  answer = 42;", "a.js")
	l.NextToken()
	tok := l.NextToken()

	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 3 || tok.Span.End.Column != 9 {
		t.Fatalf("span wrong. got=%s", tok.Span)
	}
	if tok.Span.Start.Filename != "a.js" {
		t.Fatalf("filename not propagated. got=%q", tok.Span.Start.Filename)
	}
}

func TestJSXReaders(t *testing.T) {
	l := New(`<my-tag data-x="a\b
c">hi {name}</my-tag>`, "")

	if tok := l.NextToken(); tok.Type != TokenLt {
		t.Fatalf("expected <, got=%s", tok.Type)
	}
	l.NextToken()
	if tok := l.ReadJSXIdentifier(); tok.Value != "my-tag" {
		t.Fatalf("jsx name wrong. got=%q", tok.Value)
	}
	l.NextToken()
	if tok := l.ReadJSXIdentifier(); tok.Value != "data-x" {
		t.Fatalf("jsx attribute wrong. got=%q", tok.Value)
	}
	if tok := l.NextToken(); tok.Type != TokenAssign {
		t.Fatalf("expected =, got=%s", tok.Type)
	}
	if tok := l.ReadJSXString(); tok.Type != TokenString || tok.Value != "a\\b\nc" {
		t.Fatalf("jsx string wrong. got=%s %q", tok.Type, tok.Value)
	}
	if tok := l.NextToken(); tok.Type != TokenGt {
		t.Fatalf("expected >, got=%s", tok.Type)
	}
	if tok := l.ReadJSXText(); tok.Type != TokenJSXText || tok.Value != "hi " {
		t.Fatalf("jsx text wrong. got=%s %q", tok.Type, tok.Value)
	}
	if tok := l.ReadJSXText(); tok.Type != TokenLBrace {
		t.Fatalf("expected {, got=%s", tok.Type)
	}
	l.NextToken()
	if tok := l.NextToken(); tok.Type != TokenRBrace {
		t.Fatalf("expected }, got=%s", tok.Type)
	}
	if tok := l.ReadJSXText(); tok.Type != TokenLt {
		t.Fatalf("expected <, got=%s", tok.Type)
	}
	if l.BraceDepth() != 0 {
		t.Fatalf("brace stack not empty: %d", l.BraceDepth())
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("x = a / b; y = /re/g.test(s)", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var kinds []string
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type.String())
	}
	got := strings.Join(kinds, " ")
	expected := "IDENTIFIER = IDENTIFIER / IDENTIFIER ; IDENTIFIER = REGEX . IDENTIFIER ( IDENTIFIER ) EOF"
	if got != expected {
		t.Fatalf("token stream wrong.\nexpected=%s\ngot=     %s", expected, got)
	}

	if _, err := Tokenize(`"open`, ""); err == nil {
		t.Fatalf("expected error for unterminated string")
	}
}

func BenchmarkTokenize(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("const value = compute(`item ${i}`, 0x1F, [1, 2, 3]) ?? fallback;\n")
		sb.WriteString("if (value >= 10 && !done) { total += value ** 2; }\n")
	}
	src := sb.String()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(src, "bench.js"); err != nil {
			b.Fatalf("tokenize failed: %v", err)
		}
	}
}
