package parser

import (
	"strings"
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/errors"
)

func scriptConfig() config.Config {
	return config.Default()
}

func moduleConfig() config.Config {
	cfg := config.Default()
	cfg.SourceType = config.SourceModule
	return cfg
}

func tsConfig() config.Config {
	cfg := moduleConfig()
	cfg.Plugins.TypeScript = true
	return cfg
}

func jsxConfig() config.Config {
	cfg := moduleConfig()
	cfg.Plugins.JSX = true
	return cfg
}

func mustParse(t *testing.T, src string, cfg config.Config) *Result {
	t.Helper()

	res, err := Parse(src, cfg, WithFilename("test.js"))
	if err != nil {
		t.Fatalf("Parse(%q) returned fatal error: %v", src, err)
	}
	return res
}

func diagCodes(diags []diagnostic.Diagnostic) []diagnostic.Code {
	out := make([]diagnostic.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func hasCode(diags []diagnostic.Diagnostic, code diagnostic.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// firstExpression returns the expression of the program's first statement.
func firstExpression(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()

	if len(prog.Body) == 0 {
		t.Fatalf("program has no statements")
	}
	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is not *ast.ExpressionStatement. got=%T", prog.Body[0])
	}
	return stmt.Expression
}

func TestStatementKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []ast.Kind
	}{
		{"var a = 1;", []ast.Kind{ast.KindVariableDeclaration}},
		{"let a, b = 2; const c = 3;", []ast.Kind{ast.KindVariableDeclaration, ast.KindVariableDeclaration}},
		{"function f() {}", []ast.Kind{ast.KindFunctionDeclaration}},
		{"async function f() { await x; }", []ast.Kind{ast.KindFunctionDeclaration}},
		{"class A {}", []ast.Kind{ast.KindClassDeclaration}},
		{"if (a) b; else c;", []ast.Kind{ast.KindIfStatement}},
		{"for (;;) break;", []ast.Kind{ast.KindForStatement}},
		{"for (const k in o) {}", []ast.Kind{ast.KindForInStatement}},
		{"for (let v of xs) {}", []ast.Kind{ast.KindForOfStatement}},
		{"while (a) {}", []ast.Kind{ast.KindWhileStatement}},
		{"do x(); while (a)", []ast.Kind{ast.KindDoWhileStatement}},
		{"switch (a) { case 1: break; default: }", []ast.Kind{ast.KindSwitchStatement}},
		{"try {} catch (e) {} finally {}", []ast.Kind{ast.KindTryStatement}},
		{"try {} catch {}", []ast.Kind{ast.KindTryStatement}},
		{"throw new Error('x');", []ast.Kind{ast.KindThrowStatement}},
		{"outer: for (;;) { continue outer; }", []ast.Kind{ast.KindLabeledStatement}},
		{"with (o) {}", []ast.Kind{ast.KindWithStatement}},
		{"debugger;", []ast.Kind{ast.KindDebuggerStatement}},
		{";", []ast.Kind{ast.KindEmptyStatement}},
		{"{ a; }", []ast.Kind{ast.KindBlockStatement}},
		{"let\nx = 1", []ast.Kind{ast.KindVariableDeclaration}},
		{"let = 1", []ast.Kind{ast.KindExpressionStatement}},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, scriptConfig())

		if res.Failed() {
			t.Fatalf("tests[%d] - unexpected diagnostics for %q: %v", i, tt.input, diagCodes(res.Diagnostics))
		}
		if len(res.Program.Body) != len(tt.expected) {
			t.Fatalf("tests[%d] - statement count wrong. expected=%d, got=%d",
				i, len(tt.expected), len(res.Program.Body))
		}
		for j, kind := range tt.expected {
			if got := res.Program.Body[j].Kind(); got != kind {
				t.Fatalf("tests[%d] - statement %d kind wrong. expected=%q, got=%q",
					i, j, kind, got)
			}
		}
	}
}

func TestProgramSpanAndSourceType(t *testing.T) {
	src := "a;\nb;\n"

	res := mustParse(t, src, moduleConfig())

	if res.Program.SourceType != config.SourceModule {
		t.Fatalf("source type wrong. expected=%q, got=%q", config.SourceModule, res.Program.SourceType)
	}
	span := res.Program.GetSpan()
	if span.Start.Offset != 0 || span.End.Offset != len(src) {
		t.Fatalf("program span wrong. expected=[0,%d), got=[%d,%d)",
			len(src), span.Start.Offset, span.End.Offset)
	}
}

func TestHashbang(t *testing.T) {
	res := mustParse(t, "#!/usr/bin/env node\nfoo();", scriptConfig())

	if res.Program.Hashbang != "/usr/bin/env node" {
		t.Fatalf("hashbang wrong. expected=%q, got=%q", "/usr/bin/env node", res.Program.Hashbang)
	}
	if len(res.Program.Body) != 1 {
		t.Fatalf("statement count wrong. expected=1, got=%d", len(res.Program.Body))
	}
}

func TestDirectives(t *testing.T) {
	res := mustParse(t, `"use strict"; 'other'; x;`, scriptConfig())

	expected := []string{"use strict", "other", ""}
	for i, want := range expected {
		stmt, ok := res.Program.Body[i].(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("tests[%d] - statement is not *ast.ExpressionStatement. got=%T", i, res.Program.Body[i])
		}
		if stmt.Directive != want {
			t.Fatalf("tests[%d] - directive wrong. expected=%q, got=%q", i, want, stmt.Directive)
		}
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	tests := []struct {
		input      string
		statements int
	}{
		{"a\nb", 2},
		{"a = 1\n++b", 2},
		{"return_ = 1\n(b)", 1},
		{"x\n/re/g.test(y)", 1},
		{"{ a } b", 2},
		{"do {} while (a) b", 2},
		{"var a = 1\nvar b = 2", 2},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, scriptConfig())

		if res.Failed() {
			t.Fatalf("tests[%d] - unexpected diagnostics for %q: %v", i, tt.input, diagCodes(res.Diagnostics))
		}
		if len(res.Program.Body) != tt.statements {
			t.Fatalf("tests[%d] - statement count wrong for %q. expected=%d, got=%d",
				i, tt.input, tt.statements, len(res.Program.Body))
		}
	}
}

func TestRestrictedProductions(t *testing.T) {
	res := mustParse(t, "function f() { return\n1 }", scriptConfig())

	fn := res.Program.Body[0].(*ast.FunctionDeclaration)
	body := fn.Body.Body
	if len(body) != 2 {
		t.Fatalf("body statement count wrong. expected=2, got=%d", len(body))
	}
	ret, ok := body[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("first statement is not *ast.ReturnStatement. got=%T", body[0])
	}
	if ret.Argument != nil {
		t.Fatalf("return argument should be nil, got=%T", ret.Argument)
	}

	res = mustParse(t, "a\n++\nb", scriptConfig())
	if len(res.Program.Body) != 2 {
		t.Fatalf("postfix across newline: statement count wrong. expected=2, got=%d", len(res.Program.Body))
	}
}

func TestMissingSemicolonIsReported(t *testing.T) {
	res := mustParse(t, "a b", scriptConfig())

	if !hasCode(res.Diagnostics, diagnostic.CodeMissingSemicolon) {
		t.Fatalf("expected %s, got=%v", diagnostic.CodeMissingSemicolon, diagCodes(res.Diagnostics))
	}
	if len(res.Program.Body) != 2 {
		t.Fatalf("statement count wrong. expected=2, got=%d", len(res.Program.Body))
	}
}

func TestDuplicateLexicalBinding(t *testing.T) {
	res := mustParse(t, "let x; let x;", scriptConfig())

	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostic count wrong. expected=1, got=%d (%v)", len(res.Diagnostics), diagCodes(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.Code != diagnostic.CodeDuplicateIdentifier {
		t.Fatalf("code wrong. expected=%q, got=%q", diagnostic.CodeDuplicateIdentifier, d.Code)
	}
	spans := d.Spans()
	if len(spans) != 2 {
		t.Fatalf("span count wrong. expected=2, got=%d", len(spans))
	}
	if spans[0].Start.Offset != 11 || spans[1].Start.Offset != 4 {
		t.Fatalf("spans wrong. expected offsets 11 and 4, got=%d and %d",
			spans[0].Start.Offset, spans[1].Start.Offset)
	}
}

func TestVarRedeclarationIsAllowed(t *testing.T) {
	inputs := []string{
		"var x; var x;",
		"function f() {} var f;",
		"var x; { var x; }",
		"function g() { var a; { var a; } }",
		"let a; { let a; }",
	}

	for i, input := range inputs {
		res := mustParse(t, input, scriptConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - unexpected diagnostics for %q: %v", i, input, diagCodes(res.Diagnostics))
		}
	}
}

func TestEarlyErrors(t *testing.T) {
	tests := []struct {
		input    string
		module   bool
		expected diagnostic.Code
	}{
		{"let a; var a;", false, diagnostic.CodeDuplicateIdentifier},
		{"const a = 1; function a() {}", false, diagnostic.CodeDuplicateIdentifier},
		{"{ var b; let b; }", false, diagnostic.CodeDuplicateIdentifier},
		{"try {} catch (e) { let e; }", false, diagnostic.CodeDuplicateIdentifier},
		{"return 1;", false, diagnostic.CodeIllegalReturn},
		{"break;", false, diagnostic.CodeIllegalBreak},
		{"while (a) { break missing; }", false, diagnostic.CodeUndefinedLabel},
		{"l: l: ;", false, diagnostic.CodeDuplicateLabel},
		{"'use strict'; with (a) {}", false, diagnostic.CodeWithInStrict},
		{"'use strict'; delete x;", false, diagnostic.CodeDeleteIdentifier},
		{"'use strict'; var eval;", false, diagnostic.CodeStrictEvalArguments},
		{"'use strict'; 010;", false, diagnostic.CodeLegacyOctalStrict},
		{"function f(a, a) { 'use strict'; }", false, diagnostic.CodeDuplicateParameter},
		{"(a, a) => 1;", false, diagnostic.CodeDuplicateParameter},
		{"function f(a = 1) { 'use strict'; }", false, diagnostic.CodeUseStrictNonSimple},
		{"switch (a) { default: default: }", false, diagnostic.CodeDuplicateDefaultCase},
		{"const a;", false, diagnostic.CodeMissingInitializer},
		{"a ?? b || c;", false, diagnostic.CodeNullishMixing},
		{"-a ** 2;", false, diagnostic.CodeExponentUnary},
		{"({a = 1});", false, diagnostic.CodeCoverInitializedName},
		{"({__proto__: 1, __proto__: 2});", false, diagnostic.CodeDuplicateProto},
		{"new.target;", false, diagnostic.CodeNewTargetOutside},
		{"class A { constructor() {} constructor() {} }", false, diagnostic.CodeDuplicateConstructor},
		{"class A { m() { return this.#x; } }", false, diagnostic.CodeUndefinedPrivateName},
		{"class A { #x; #x; }", false, diagnostic.CodeDuplicatePrivateName},
		{"class A { static prototype() {} }", false, diagnostic.CodeStaticPrototype},
		{"class A { get constructor() {} }", false, diagnostic.CodeConstructorSpecial},
		{"class A { constructor = 1; }", false, diagnostic.CodeFieldConstructor},
		{"class A { m() { super(); } }", false, diagnostic.CodeSuperCallOutsideCtor},
		{"import a from 'a';", false, diagnostic.CodeModuleSyntaxInScript},
		{"export { b };", true, diagnostic.CodeUndefinedExport},
		{"export const a = 1; export { a };", true, diagnostic.CodeDuplicateExport},
		{"export default 1; export default 2;", true, diagnostic.CodeDuplicateExport},
		{"if (a) let b = 1;", false, diagnostic.CodeLexicalInStatement},
		{"throw\nerr;", false, diagnostic.CodeThrowNewline},
		{"a?.b`c`;", false, diagnostic.CodeOptionalChainTemplate},
		{"var await;", true, diagnostic.CodeAwaitIdentifier},
		{"function* g() { var yield; }", false, diagnostic.CodeYieldIdentifier},
	}

	for i, tt := range tests {
		cfg := scriptConfig()
		if tt.module {
			cfg = moduleConfig()
		}
		res := mustParse(t, tt.input, cfg)

		if !hasCode(res.Diagnostics, tt.expected) {
			t.Fatalf("tests[%d] - %q: expected diagnostic %q, got=%v",
				i, tt.input, tt.expected, diagCodes(res.Diagnostics))
		}
	}
}

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected diagnostic.Code
	}{
		{"var 1 = 2;", diagnostic.CodeUnexpectedToken},
		{"(a + b) = 1;", diagnostic.CodeInvalidAssignmentTarget},
		{"if (a {}", diagnostic.CodeExpectedToken},
		{"'unterminated", diagnostic.CodeUnterminatedString},
		{"`open ${a}", diagnostic.CodeUnterminatedTemplate},
		{"1_", diagnostic.CodeNumericSeparator},
	}

	for i, tt := range tests {
		res, err := Parse(tt.input, scriptConfig())
		if err == nil {
			t.Fatalf("tests[%d] - %q: expected fatal error, got diagnostics=%v",
				i, tt.input, diagCodes(res.Diagnostics))
		}
		se, ok := errors.AsSyntaxError(err)
		if !ok {
			t.Fatalf("tests[%d] - error is not *errors.SyntaxError. got=%T", i, err)
		}
		if se.Code != string(tt.expected) {
			t.Fatalf("tests[%d] - %q: code wrong. expected=%q, got=%q (%s)",
				i, tt.input, tt.expected, se.Code, se.Message)
		}
	}
}

func TestManyIndependentDiagnostics(t *testing.T) {
	src := strings.Join([]string{
		"let a; let a;",
		"const b;",
		"break;",
		"'x'; with (o) {}",
	}, "\n")

	res := mustParse(t, src, scriptConfig())

	for _, code := range []diagnostic.Code{
		diagnostic.CodeDuplicateIdentifier,
		diagnostic.CodeMissingInitializer,
		diagnostic.CodeIllegalBreak,
	} {
		if !hasCode(res.Diagnostics, code) {
			t.Fatalf("expected diagnostic %q, got=%v", code, diagCodes(res.Diagnostics))
		}
	}
}

func TestConfigAllowances(t *testing.T) {
	cfg := scriptConfig()
	cfg.AllowReturnOutsideFunction = true

	res := mustParse(t, "return 1;", cfg)
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	cfg = moduleConfig()
	cfg.AllowUndeclaredExports = true
	res = mustParse(t, "export { missing };", cfg)
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}
}

func TestFeatureVersionGate(t *testing.T) {
	cfg := scriptConfig()
	cfg.ECMAVersion = "2019"

	res := mustParse(t, "a ?? b; a?.b;", cfg)

	if !hasCode(res.Diagnostics, diagnostic.CodeFeatureVersion) {
		t.Fatalf("expected %q, got=%v", diagnostic.CodeFeatureVersion, diagCodes(res.Diagnostics))
	}

	cfg.ECMAVersion = "2020"
	res = mustParse(t, "a ?? b; a?.b;", cfg)
	if res.Failed() {
		t.Fatalf("unexpected diagnostics at 2020: %v", diagCodes(res.Diagnostics))
	}
}

func TestIndependentParsers(t *testing.T) {
	sources := []string{"let a = 1;", "let a; let a;", "class A { #x; m() { this.#x } }"}

	done := make(chan int, len(sources))
	results := make([]*Result, len(sources))
	for i, src := range sources {
		go func(i int, src string) {
			res, err := Parse(src, scriptConfig())
			if err == nil {
				results[i] = res
			}
			done <- i
		}(i, src)
	}
	for range sources {
		<-done
	}

	expected := []int{0, 1, 0}
	for i, want := range expected {
		if results[i] == nil {
			t.Fatalf("tests[%d] - parse failed", i)
		}
		if got := len(results[i].Diagnostics); got != want {
			t.Fatalf("tests[%d] - diagnostic count wrong. expected=%d, got=%d", i, want, got)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	src := strings.Repeat(`
class Queue {
  #items = [];
  push(item) { this.#items.push(item); return this; }
  *[Symbol.iterator]() { yield* this.#items; }
  static from(xs) { const q = new Queue(); for (const x of xs) q.push(x); return q; }
}
const total = [1, 2, 3].map((n) => n ** 2).reduce((a, b) => a + b, 0);
async function load(url) { try { return await fetch(url); } catch { return null; } }
label: for (let i = 0; i < 10; i++) { if (i % 2) continue label; }
const msg = `+"`total ${total} in ${`nested ${total}`}`"+`;
`, 50)

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Parse(src, scriptConfig()); err != nil {
			b.Fatal(err)
		}
	}
}
