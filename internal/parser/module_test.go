package parser

import (
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
)

func TestImportDeclarations(t *testing.T) {
	tests := []struct {
		input      string
		specifiers int
		source     string
		attributes int
	}{
		{`import "side-effect";`, 0, "side-effect", 0},
		{`import a from "a";`, 1, "a", 0},
		{`import * as ns from "ns";`, 1, "ns", 0},
		{`import a, { b, c as d } from "m";`, 3, "m", 0},
		{`import { "string name" as s } from "m";`, 1, "m", 0},
		{`import data from "./data.json" with { type: "json" };`, 1, "./data.json", 1},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, moduleConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - unexpected diagnostics: %v", i, diagCodes(res.Diagnostics))
		}

		decl, ok := res.Program.Body[0].(*ast.ImportDeclaration)
		if !ok {
			t.Fatalf("tests[%d] - statement is not *ast.ImportDeclaration. got=%T", i, res.Program.Body[0])
		}
		if len(decl.Specifiers) != tt.specifiers {
			t.Fatalf("tests[%d] - specifier count wrong. expected=%d, got=%d",
				i, tt.specifiers, len(decl.Specifiers))
		}
		if decl.Source.Value != tt.source {
			t.Fatalf("tests[%d] - source wrong. expected=%q, got=%q", i, tt.source, decl.Source.Value)
		}
		if len(decl.Attributes) != tt.attributes {
			t.Fatalf("tests[%d] - attribute count wrong. expected=%d, got=%d",
				i, tt.attributes, len(decl.Attributes))
		}
	}
}

func TestExportDeclarations(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Kind
	}{
		{"export const a = 1;", ast.KindExportNamedDeclaration},
		{"export function f() {}", ast.KindExportNamedDeclaration},
		{"export class C {}", ast.KindExportNamedDeclaration},
		{"let a; export { a as b };", ast.KindExportNamedDeclaration},
		{`export { x } from "m";`, ast.KindExportNamedDeclaration},
		{`export * from "m";`, ast.KindExportAllDeclaration},
		{`export * as ns from "m";`, ast.KindExportAllDeclaration},
		{"export default function () {}", ast.KindExportDefaultDeclaration},
		{"export default class {}", ast.KindExportDefaultDeclaration},
		{"export default a + b;", ast.KindExportDefaultDeclaration},
		{"export default async function named() {}", ast.KindExportDefaultDeclaration},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, moduleConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - %q: unexpected diagnostics: %v", i, tt.input, diagCodes(res.Diagnostics))
		}

		last := res.Program.Body[len(res.Program.Body)-1]
		if last.Kind() != tt.expected {
			t.Fatalf("tests[%d] - kind wrong. expected=%q, got=%q", i, tt.expected, last.Kind())
		}
	}
}

func TestModuleIsStrict(t *testing.T) {
	res := mustParse(t, "with (a) {}", moduleConfig())

	if !hasCode(res.Diagnostics, diagnostic.CodeWithInStrict) {
		t.Fatalf("expected %q, got=%v", diagnostic.CodeWithInStrict, diagCodes(res.Diagnostics))
	}
}

func TestExportReferenceDeclaredLater(t *testing.T) {
	res := mustParse(t, "export { later }; function later() {}", moduleConfig())

	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}
}

func TestModuleItemNotTopLevel(t *testing.T) {
	res := mustParse(t, `{ import a from "a"; }`, moduleConfig())

	if !hasCode(res.Diagnostics, diagnostic.CodeModuleSyntaxNotTopLevel) {
		t.Fatalf("expected %q, got=%v", diagnostic.CodeModuleSyntaxNotTopLevel, diagCodes(res.Diagnostics))
	}
}

func TestDynamicImportAndMeta(t *testing.T) {
	res := mustParse(t, `import("m").then(f); import.meta.url;`, moduleConfig())
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	res = mustParse(t, `import.meta;`, scriptConfig())
	if !hasCode(res.Diagnostics, diagnostic.CodeImportMetaOutsideModule) {
		t.Fatalf("expected %q, got=%v", diagnostic.CodeImportMetaOutsideModule, diagCodes(res.Diagnostics))
	}
}

func TestClassMembers(t *testing.T) {
	src := `class Point extends Base {
  static count = 0;
  #x = 0;
  y;
  constructor(x) { super(); this.#x = x; }
  get x() { return this.#x; }
  set x(v) { this.#x = v; }
  static #make() { return new Point(0); }
  async *items() { yield 1; }
  [Symbol.iterator]() {}
  static { Point.count++; }
  has(o) { return #x in o; }
}`

	res := mustParse(t, src, scriptConfig())
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	decl, ok := res.Program.Body[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("statement is not *ast.ClassDeclaration. got=%T", res.Program.Body[0])
	}
	if decl.ID.Name != "Point" {
		t.Fatalf("class name wrong. expected=%q, got=%q", "Point", decl.ID.Name)
	}
	if decl.SuperClass == nil {
		t.Fatalf("super class missing")
	}

	expected := []ast.Kind{
		ast.KindPropertyDefinition,
		ast.KindPropertyDefinition,
		ast.KindPropertyDefinition,
		ast.KindMethodDefinition,
		ast.KindMethodDefinition,
		ast.KindMethodDefinition,
		ast.KindMethodDefinition,
		ast.KindMethodDefinition,
		ast.KindMethodDefinition,
		ast.KindStaticBlock,
		ast.KindMethodDefinition,
	}
	if len(decl.Body.Body) != len(expected) {
		t.Fatalf("member count wrong. expected=%d, got=%d", len(expected), len(decl.Body.Body))
	}
	for i, kind := range expected {
		if got := decl.Body.Body[i].Kind(); got != kind {
			t.Fatalf("members[%d] - kind wrong. expected=%q, got=%q", i, kind, got)
		}
	}

	ctor := decl.Body.Body[3].(*ast.MethodDefinition)
	if ctor.MethodKind != ast.MethodConstructor {
		t.Fatalf("constructor kind wrong. got=%q", ctor.MethodKind)
	}
	getter := decl.Body.Body[4].(*ast.MethodDefinition)
	if getter.MethodKind != ast.MethodGet {
		t.Fatalf("getter kind wrong. got=%q", getter.MethodKind)
	}
}

func TestPrivateAccessorPairs(t *testing.T) {
	res := mustParse(t, "class A { get #v() { return 1; } set #v(x) {} }", scriptConfig())
	if res.Failed() {
		t.Fatalf("getter and setter pair should be accepted, got=%v", diagCodes(res.Diagnostics))
	}

	res = mustParse(t, "class A { get #v() {} static set #v(x) {} }", scriptConfig())
	if !hasCode(res.Diagnostics, diagnostic.CodeDuplicatePrivateName) {
		t.Fatalf("expected %q, got=%v", diagnostic.CodeDuplicatePrivateName, diagCodes(res.Diagnostics))
	}
}

func TestPrivateNameForwardReference(t *testing.T) {
	res := mustParse(t, "class A { m() { return this.#later; } #later = 1; }", scriptConfig())

	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}
}

func TestDecorators(t *testing.T) {
	src := "@sealed class A { @log() method() {} @observable field = 1; }"

	res := mustParse(t, src, scriptConfig())
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	decl := res.Program.Body[0].(*ast.ClassDeclaration)
	if len(decl.Decorators) != 1 {
		t.Fatalf("class decorator count wrong. expected=1, got=%d", len(decl.Decorators))
	}
	method := decl.Body.Body[0].(*ast.MethodDefinition)
	if len(method.Decorators) != 1 {
		t.Fatalf("method decorator count wrong. expected=1, got=%d", len(method.Decorators))
	}
}

func TestFieldArgumentsAreRejected(t *testing.T) {
	res := mustParse(t, "class A { x = arguments; }", scriptConfig())

	if !hasCode(res.Diagnostics, diagnostic.CodeArgumentsInField) {
		t.Fatalf("expected %q, got=%v", diagnostic.CodeArgumentsInField, diagCodes(res.Diagnostics))
	}
}
