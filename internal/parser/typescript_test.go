package parser

import (
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
)

func TestTypeScriptDeclarations(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Kind
	}{
		{"type ID = string | number;", ast.KindTSTypeAliasDeclaration},
		{"interface Shape extends Base<T> { area(): number; readonly name?: string; [key: string]: unknown }", ast.KindTSInterfaceDeclaration},
		{"enum Color { Red, Green = 2, 'Blue' }", ast.KindTSEnumDeclaration},
		{"const enum Flags { A = 1 << 0 }", ast.KindTSEnumDeclaration},
		{"declare const VERSION: string;", ast.KindVariableDeclaration},
		{"declare function f(x: number): void;", ast.KindTSDeclareFunction},
		{"abstract class A { abstract m(): void; }", ast.KindClassDeclaration},
		{"let x: Array<Map<string, number>> = [];", ast.KindVariableDeclaration},
		{"function id<T extends object = {}>(x: T): T { return x; }", ast.KindFunctionDeclaration},
		{"type Fn = (a: number, ...rest: string[]) => void;", ast.KindTSTypeAliasDeclaration},
		{"type Ctor = new () => object;", ast.KindTSTypeAliasDeclaration},
		{"type C<T> = T extends string ? 'str' : T extends infer U ? U : never;", ast.KindTSTypeAliasDeclaration},
		{"type M<T> = { readonly [K in keyof T]?: T[K] };", ast.KindTSTypeAliasDeclaration},
		{"type Tup = [name: string, age?: number, ...rest: boolean[]];", ast.KindTSTypeAliasDeclaration},
		{"type Tpl = `prefix-${string}`;", ast.KindTSTypeAliasDeclaration},
		{"type Q = typeof config.value;", ast.KindTSTypeAliasDeclaration},
		{"function isStr(x: unknown): x is string { return true; }", ast.KindFunctionDeclaration},
		{"class P { constructor(private readonly x: number, public y?: string) {} }", ast.KindClassDeclaration},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, tsConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - %q: unexpected diagnostics: %v", i, tt.input, diagCodes(res.Diagnostics))
		}

		if got := res.Program.Body[0].Kind(); got != tt.expected {
			t.Fatalf("tests[%d] - %q: kind wrong. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}

func TestTypeMemberSignatures(t *testing.T) {
	res := mustParse(t, "interface I { <T>(x: T): T; new (a: number, b?: string): I; m<U>(...u: U[]): void; }", tsConfig())
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	decl, ok := res.Program.Body[0].(*ast.TSInterfaceDeclaration)
	if !ok {
		t.Fatalf("statement is not *ast.TSInterfaceDeclaration. got=%T", res.Program.Body[0])
	}
	members := decl.Body.Body
	if len(members) != 3 {
		t.Fatalf("member count wrong. expected=3, got=%d", len(members))
	}

	call, ok := members[0].(*ast.TSCallSignatureDeclaration)
	if !ok {
		t.Fatalf("members[0] is not *ast.TSCallSignatureDeclaration. got=%T", members[0])
	}
	if call.TypeParameters == nil || len(call.Params) != 1 || call.ReturnType == nil {
		t.Fatalf("call signature incomplete. got=%+v", call)
	}

	ctor, ok := members[1].(*ast.TSConstructSignatureDeclaration)
	if !ok {
		t.Fatalf("members[1] is not *ast.TSConstructSignatureDeclaration. got=%T", members[1])
	}
	if len(ctor.Params) != 2 || ctor.ReturnType == nil {
		t.Fatalf("construct signature incomplete. got=%+v", ctor)
	}

	method, ok := members[2].(*ast.TSMethodSignature)
	if !ok {
		t.Fatalf("members[2] is not *ast.TSMethodSignature. got=%T", members[2])
	}
	if method.TypeParameters == nil || len(method.Params) != 1 || method.ReturnType == nil {
		t.Fatalf("method signature incomplete. got=%+v", method)
	}
}

func TestGenericCallVersusComparison(t *testing.T) {
	res := mustParse(t, "f<T>(x);", tsConfig())
	call, ok := firstExpression(t, res.Program).(*ast.CallExpression)
	if !ok {
		t.Fatalf("f<T>(x): expression is not *ast.CallExpression. got=%T", firstExpression(t, res.Program))
	}
	if call.TypeArguments == nil || len(call.TypeArguments.Params) != 1 {
		t.Fatalf("f<T>(x): type arguments missing")
	}

	res = mustParse(t, "a < b > c;", tsConfig())
	bin, ok := firstExpression(t, res.Program).(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("a < b > c: expression is not *ast.BinaryExpression. got=%T", firstExpression(t, res.Program))
	}
	if bin.Operator != lexer.TokenGt {
		t.Fatalf("a < b > c: operator wrong. expected=%q, got=%q", lexer.TokenGt, bin.Operator)
	}

	res = mustParse(t, "f<T>(x);", moduleConfig())
	if _, ok := firstExpression(t, res.Program).(*ast.BinaryExpression); !ok {
		t.Fatalf("plain JavaScript should read f<T>(x) as comparisons. got=%T", firstExpression(t, res.Program))
	}
}

func TestNestedGenericsClose(t *testing.T) {
	res := mustParse(t, "let m: Map<string, Array<Set<number>>>;", tsConfig())

	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}
	decl := res.Program.Body[0].(*ast.VariableDeclaration)
	id := decl.Declarations[0].ID.(*ast.Identifier)
	if id.TypeAnnotation == nil {
		t.Fatalf("type annotation missing")
	}
	ref, ok := id.TypeAnnotation.TypeAnnotation.(*ast.TSTypeReference)
	if !ok {
		t.Fatalf("annotation is not *ast.TSTypeReference. got=%T", id.TypeAnnotation.TypeAnnotation)
	}
	if len(ref.TypeArguments.Params) != 2 {
		t.Fatalf("type argument count wrong. expected=2, got=%d", len(ref.TypeArguments.Params))
	}
}

func TestTypeScriptExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Kind
	}{
		{"x as string;", ast.KindTSAsExpression},
		{"x satisfies T;", ast.KindTSSatisfiesExpression},
		{"x!;", ast.KindTSNonNullExpression},
		{"<number>x;", ast.KindTSTypeAssertion},
		{"(x: number): string => String(x);", ast.KindArrowFunctionExpression},
		{"<T>(x: T) => x;", ast.KindArrowFunctionExpression},
	}

	for i, tt := range tests {
		cfg := tsConfig()
		res := mustParse(t, tt.input, cfg)
		if res.Failed() {
			t.Fatalf("tests[%d] - %q: unexpected diagnostics: %v", i, tt.input, diagCodes(res.Diagnostics))
		}

		if got := firstExpression(t, res.Program).Kind(); got != tt.expected {
			t.Fatalf("tests[%d] - %q: kind wrong. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}

func TestTypeOnlyExports(t *testing.T) {
	src := "interface Props {} type Alias = Props; export { Props, Alias }; export type { Props as P };"

	res := mustParse(t, src, tsConfig())
	if res.Failed() {
		t.Fatalf("type names should satisfy exports, got=%v", diagCodes(res.Diagnostics))
	}
}

func TestNestedTypeNamesDoNotSatisfyExports(t *testing.T) {
	res := mustParse(t, "function f() { type T = number; } export { T };", tsConfig())
	if !hasCode(res.Diagnostics, diagnostic.CodeUndefinedExport) {
		t.Fatalf("nested type alias should not satisfy export, got=%v", diagCodes(res.Diagnostics))
	}
}

func TestArrowSpeculationPrivateNames(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"class A { m() { return (x = this.#q): number => x; } }", 1},
		{"class A { m() { return <T>(x: T = this.#q) => x; } }", 1},
		{"class A { m() { let x; return (x = this.#q, 1); } }", 1},
		{"class A { #q; m() { let x; return (x = this.#q, 1); } }", 0},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, tsConfig())

		got := 0
		for _, d := range res.Diagnostics {
			if d.Code == diagnostic.CodeUndefinedPrivateName {
				got++
			}
		}
		if got != tt.expected {
			t.Fatalf("tests[%d] - %q: undefined private name count wrong. expected=%d, got=%d (%v)",
				i, tt.input, tt.expected, got, diagCodes(res.Diagnostics))
		}
	}
}

func TestTypeImports(t *testing.T) {
	res := mustParse(t, `import type { A } from "a"; import { type B, c } from "b";`, tsConfig())
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	first := res.Program.Body[0].(*ast.ImportDeclaration)
	if !first.TypeOnly {
		t.Fatalf("first import should be type-only")
	}
	second := res.Program.Body[1].(*ast.ImportDeclaration)
	spec := second.Specifiers[0].(*ast.ImportSpecifier)
	if !spec.TypeOnly {
		t.Fatalf("specifier B should be type-only")
	}
}

func TestFunctionOverloads(t *testing.T) {
	src := `function f(x: string): string;
function f(x: number): number;
function f(x: any) { return x; }`

	res := mustParse(t, src, tsConfig())
	if res.Failed() {
		t.Fatalf("overloads should not clash, got=%v", diagCodes(res.Diagnostics))
	}
	if len(res.Program.Body) != 3 {
		t.Fatalf("statement count wrong. expected=3, got=%d", len(res.Program.Body))
	}
	if res.Program.Body[0].Kind() != ast.KindTSDeclareFunction {
		t.Fatalf("overload kind wrong. expected=%q, got=%q", ast.KindTSDeclareFunction, res.Program.Body[0].Kind())
	}
}

func TestTypeScriptRequiresPlugin(t *testing.T) {
	if _, err := Parse("let x: number = 1;", moduleConfig()); err == nil {
		t.Fatalf("type annotation without the TypeScript plugin should fail")
	}
}
