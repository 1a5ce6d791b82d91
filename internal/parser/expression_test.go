package parser

import (
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
)

func TestNumericLiteralKinds(t *testing.T) {
	tests := []struct {
		input         string
		expectedKind  lexer.TokenType
		expectedValue float64
	}{
		{"42", lexer.TokenDecimal, 42},
		{"1.5e3", lexer.TokenDecimal, 1500},
		{".5", lexer.TokenDecimal, 0.5},
		{"1_000", lexer.TokenDecimal, 1000},
		{"0x1F", lexer.TokenHex, 31},
		{"0o17", lexer.TokenOctal, 15},
		{"0b101", lexer.TokenBinary, 5},
		{"017", lexer.TokenLegacyOctal, 15},
		{"089", lexer.TokenNonOctalDecimal, 89},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, scriptConfig())

		num, ok := firstExpression(t, res.Program).(*ast.NumericLiteral)
		if !ok {
			t.Fatalf("tests[%d] - expression is not *ast.NumericLiteral. got=%T",
				i, firstExpression(t, res.Program))
		}
		if num.NumberKind != tt.expectedKind {
			t.Fatalf("tests[%d] - number kind wrong. expected=%q, got=%q",
				i, tt.expectedKind, num.NumberKind)
		}
		if num.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%v, got=%v",
				i, tt.expectedValue, num.Value)
		}
		if num.Raw != tt.input {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q", i, tt.input, num.Raw)
		}
	}
}

func TestBigIntLiteral(t *testing.T) {
	res := mustParse(t, "0x10n", scriptConfig())

	big, ok := firstExpression(t, res.Program).(*ast.BigIntLiteral)
	if !ok {
		t.Fatalf("expression is not *ast.BigIntLiteral. got=%T", firstExpression(t, res.Program))
	}
	if big.Raw != "0x10n" {
		t.Fatalf("raw wrong. expected=%q, got=%q", "0x10n", big.Raw)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		operator lexer.TokenType
		left     ast.Kind
		right    ast.Kind
	}{
		{"a + b * c", lexer.TokenPlus, ast.KindIdentifier, ast.KindBinaryExpression},
		{"a * b + c", lexer.TokenPlus, ast.KindBinaryExpression, ast.KindIdentifier},
		{"a ** b ** c", lexer.TokenExp, ast.KindIdentifier, ast.KindBinaryExpression},
		{"a < b > c", lexer.TokenGt, ast.KindBinaryExpression, ast.KindIdentifier},
		{"a in b instanceof c", lexer.TokenInstanceof, ast.KindBinaryExpression, ast.KindIdentifier},
		{"a / b / c", lexer.TokenDiv, ast.KindBinaryExpression, ast.KindIdentifier},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, scriptConfig())

		bin, ok := firstExpression(t, res.Program).(*ast.BinaryExpression)
		if !ok {
			t.Fatalf("tests[%d] - expression is not *ast.BinaryExpression. got=%T",
				i, firstExpression(t, res.Program))
		}
		if bin.Operator != tt.operator {
			t.Fatalf("tests[%d] - operator wrong. expected=%q, got=%q", i, tt.operator, bin.Operator)
		}
		if bin.Left.Kind() != tt.left || bin.Right.Kind() != tt.right {
			t.Fatalf("tests[%d] - operands wrong. expected=(%q, %q), got=(%q, %q)",
				i, tt.left, tt.right, bin.Left.Kind(), bin.Right.Kind())
		}
	}
}

func TestLogicalAndConditional(t *testing.T) {
	res := mustParse(t, "a ?? (b || c)", scriptConfig())
	logical, ok := firstExpression(t, res.Program).(*ast.LogicalExpression)
	if !ok {
		t.Fatalf("expression is not *ast.LogicalExpression. got=%T", firstExpression(t, res.Program))
	}
	if logical.Operator != lexer.TokenNullish {
		t.Fatalf("operator wrong. expected=%q, got=%q", lexer.TokenNullish, logical.Operator)
	}
	if res.Failed() {
		t.Fatalf("parenthesized mixing should be accepted, got=%v", diagCodes(res.Diagnostics))
	}

	res = mustParse(t, "a ? b : c ? d : e", scriptConfig())
	cond, ok := firstExpression(t, res.Program).(*ast.ConditionalExpression)
	if !ok {
		t.Fatalf("expression is not *ast.ConditionalExpression. got=%T", firstExpression(t, res.Program))
	}
	if _, ok := cond.Alternate.(*ast.ConditionalExpression); !ok {
		t.Fatalf("alternate is not *ast.ConditionalExpression. got=%T", cond.Alternate)
	}
}

func TestRegexAndDivision(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Kind
	}{
		{"/ab+c/gi", ast.KindRegExpLiteral},
		{"x = /=/", ast.KindAssignmentExpression},
		{"a / 2", ast.KindBinaryExpression},
		{"(a) / 2", ast.KindBinaryExpression},
		{"f(/x/)", ast.KindCallExpression},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, scriptConfig())

		if got := firstExpression(t, res.Program).Kind(); got != tt.expected {
			t.Fatalf("tests[%d] - %q: kind wrong. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}

	res := mustParse(t, "/ab+c/gi", scriptConfig())
	re := firstExpression(t, res.Program).(*ast.RegExpLiteral)
	if re.Pattern != "ab+c" || re.Flags != "gi" {
		t.Fatalf("regex wrong. expected=(%q, %q), got=(%q, %q)", "ab+c", "gi", re.Pattern, re.Flags)
	}
}

func TestNestedTemplates(t *testing.T) {
	res := mustParse(t, "`a${ `b${ {c: 1}.c }` }d${e}`", scriptConfig())

	outer, ok := firstExpression(t, res.Program).(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expression is not *ast.TemplateLiteral. got=%T", firstExpression(t, res.Program))
	}
	if len(outer.Quasis) != 3 || len(outer.Expressions) != 2 {
		t.Fatalf("outer template shape wrong. expected 3 quasis and 2 expressions, got=%d and %d",
			len(outer.Quasis), len(outer.Expressions))
	}
	expectedRaw := []string{"a", "d", ""}
	for i, q := range outer.Quasis {
		if q.Raw != expectedRaw[i] {
			t.Fatalf("quasis[%d] - raw wrong. expected=%q, got=%q", i, expectedRaw[i], q.Raw)
		}
		if q.Tail != (i == len(outer.Quasis)-1) {
			t.Fatalf("quasis[%d] - tail wrong. got=%t", i, q.Tail)
		}
	}

	inner, ok := outer.Expressions[0].(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("first substitution is not *ast.TemplateLiteral. got=%T", outer.Expressions[0])
	}
	if len(inner.Expressions) != 1 || inner.Expressions[0].Kind() != ast.KindMemberExpression {
		t.Fatalf("inner template substitution wrong. got=%d expressions", len(inner.Expressions))
	}
}

func TestTaggedTemplateInvalidEscape(t *testing.T) {
	res := mustParse(t, "tag`\\unicode`", scriptConfig())

	tagged, ok := firstExpression(t, res.Program).(*ast.TaggedTemplateExpression)
	if !ok {
		t.Fatalf("expression is not *ast.TaggedTemplateExpression. got=%T", firstExpression(t, res.Program))
	}
	if !tagged.Quasi.Quasis[0].Invalid {
		t.Fatalf("quasi should be marked invalid")
	}
	if res.Failed() {
		t.Fatalf("tagged template escape should be accepted, got=%v", diagCodes(res.Diagnostics))
	}
}

func TestArrowFunctions(t *testing.T) {
	tests := []struct {
		input   string
		params  int
		async   bool
		concise bool
	}{
		{"x => x", 1, false, true},
		{"(a, b) => { return a; }", 2, false, false},
		{"() => ({})", 0, false, true},
		{"async x => x", 1, true, true},
		{"async (a, {b}, [c], ...d) => a", 4, true, true},
		{"(a = 1, {b} = {}) => a", 2, false, true},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, scriptConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - unexpected diagnostics: %v", i, diagCodes(res.Diagnostics))
		}

		arrow, ok := firstExpression(t, res.Program).(*ast.ArrowFunctionExpression)
		if !ok {
			t.Fatalf("tests[%d] - expression is not *ast.ArrowFunctionExpression. got=%T",
				i, firstExpression(t, res.Program))
		}
		if len(arrow.Params) != tt.params {
			t.Fatalf("tests[%d] - param count wrong. expected=%d, got=%d", i, tt.params, len(arrow.Params))
		}
		if arrow.Async != tt.async || arrow.Concise != tt.concise {
			t.Fatalf("tests[%d] - flags wrong. expected=(%t, %t), got=(%t, %t)",
				i, tt.async, tt.concise, arrow.Async, arrow.Concise)
		}
	}
}

func TestAsyncCallIsNotArrow(t *testing.T) {
	res := mustParse(t, "async(a, b)", scriptConfig())

	call, ok := firstExpression(t, res.Program).(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression is not *ast.CallExpression. got=%T", firstExpression(t, res.Program))
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("argument count wrong. expected=2, got=%d", len(call.Arguments))
	}
}

func TestDestructuringAssignment(t *testing.T) {
	inputs := []string{
		"[a, b] = [b, a];",
		"({a, b: {c}, ...rest} = obj);",
		"({a = 1} = {});",
		"[x.y, z[0]] = arr;",
		"for ([k, v] of entries) {}",
	}

	for i, input := range inputs {
		res := mustParse(t, input, scriptConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - %q: unexpected diagnostics: %v", i, input, diagCodes(res.Diagnostics))
		}
	}
}

func TestOptionalChaining(t *testing.T) {
	res := mustParse(t, "a?.b.c", scriptConfig())

	outer, ok := firstExpression(t, res.Program).(*ast.MemberExpression)
	if !ok {
		t.Fatalf("expression is not *ast.MemberExpression. got=%T", firstExpression(t, res.Program))
	}
	if outer.Optional {
		t.Fatalf("outer access should not be optional")
	}
	inner, ok := outer.Object.(*ast.MemberExpression)
	if !ok || !inner.Optional {
		t.Fatalf("inner access should be an optional *ast.MemberExpression. got=%T", outer.Object)
	}
}

func TestParseExpressionEntryPoint(t *testing.T) {
	expr, diags, err := ParseExpression("a + b", scriptConfig())
	if err != nil {
		t.Fatalf("ParseExpression failed: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(diags))
	}
	if expr.Kind() != ast.KindBinaryExpression {
		t.Fatalf("kind wrong. expected=%q, got=%q", ast.KindBinaryExpression, expr.Kind())
	}

	if _, _, err := ParseExpression("a +", scriptConfig()); err == nil {
		t.Fatalf("expected fatal error for incomplete expression")
	}
}
