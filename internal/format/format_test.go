package format

import (
	"reflect"
	"strings"
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/parser"
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

func parseClean(t *testing.T, src string, cfg config.Config) *ast.Program {
	t.Helper()

	res, err := parser.Parse(src, cfg)
	if err != nil {
		t.Fatalf("Parse(%q) returned fatal error: %v", src, err)
	}
	if res.Failed() {
		t.Fatalf("Parse(%q) reported %d diagnostics: %s", src, len(res.Diagnostics), res.Diagnostics[0].Message)
	}
	return res.Program
}

// assertRoundTrip prints src, parses the output again and checks that both
// trees match and that printing is stable.
func assertRoundTrip(t *testing.T, i int, src string, cfg config.Config) {
	t.Helper()

	first := parseClean(t, src, cfg)
	printed := Node(first, DefaultOptions())

	res, err := parser.Parse(printed, cfg)
	if err != nil {
		t.Fatalf("tests[%d] - printed output failed to parse: %v\n%s", i, err, printed)
	}
	if res.Failed() {
		t.Fatalf("tests[%d] - printed output reported diagnostics: %s\n%s", i, res.Diagnostics[0].Message, printed)
	}

	if !reflect.DeepEqual(ast.Dump(first, false), ast.Dump(res.Program, false)) {
		t.Fatalf("tests[%d] - tree changed after printing.\ninput:\n%s\noutput:\n%s", i, src, printed)
	}
	if again := Node(res.Program, DefaultOptions()); again != printed {
		t.Fatalf("tests[%d] - printing is not stable. first=%q, second=%q", i, printed, again)
	}
}

func TestRoundTripScript(t *testing.T) {
	tests := []string{
		"#!/usr/bin/env node\nlet a;",
		"'use strict'; x;",
		"var i, j = 1, k;",
		"for (var i = 0, n = a.length; i < n; i++) { s += a[i]; }",
		"for (;;) break;",
		"for (const k in o) if (k) continue;",
		"for (let [k, v] of entries) {}",
		"outer: for (;;) { inner: while (x) { break outer; } }",
		"do x++; while (x < 3)",
		"if (a) if (b) c(); else d(); else e();",
		"switch (x) { case 1: case 2: f(); break; default: g(); }",
		"try { f(); } catch { g(); } finally { h(); }",
		"try { f(); } catch ({ message }) { log(message); }",
		"with (obj) { x; }",
		"debugger;",
		";",
		"throw new Error(`bad ${value}`);",
		"function f(a, b = 2, ...rest) { return a + b; }",
		"function* g() { yield; yield* h(); }",
		"async function f() { await g(); for await (const x of y) {} }",
		"var f = function named() {};",
		"x = a + b * c - (d - e);",
		"x = (a + b) * c;",
		"x = a ** b ** c;",
		"x = (-a) ** 2;",
		"x = - -y + + +z - - --w;",
		"x = typeof a === 'string' && !b || void 0;",
		"x = a ? b : c ? d : e;",
		"x = (a, b);",
		"x += 1; y **= 2; z ??= 3; w >>>= 4;",
		"delete a.b; a++; --b;",
		"1..toString(); 1 .toString(); 1.5.toFixed(); 0x10.toString();",
		"x = [1, , 2, ,];",
		"x = [, ];",
		"x = [...a, ...b];",
		"x = { a, b: 2, 'c': 3, 4: 5, [d]: 6, ...e };",
		"x = { get a() { return 1; }, set a(v) {}, async *b() {}, c() {} };",
		"({ a, b: [c], ...d } = e);",
		"[a, b = 1, [c], ...d] = e;",
		"({ a = 1 } = {});",
		"f(...args); new X; new X(); new (f())(); new a.b.C(1);",
		"a?.b; a?.[0]; a?.(); a?.b.c(); (a?.b).c;",
		"x = () => ({});",
		"x = async (a, { b }) => { await a; };",
		"x = a => b => a + b;",
		"x = `a${`b${c}`}d`;",
		"x = tag`hello ${world}`;",
		"x = tag`\\unicode`;",
		"x = /ab+c/gi.test(s) / 2;",
		"x = 'single' + \"double\" + 1n + 0b101 + 0o17 + .5e3;",
		"x = this; y = null; z = true && false;",
		"class A extends B { static count = 0; #x = 0; y; constructor(x) { super(); this.#x = x; } get x() { return this.#x; } set x(v) { this.#x = v; } static #make() { return new A(0); } async *items() { yield 1; } [Symbol.iterator]() {} static { A.count++; } has(o) { return #x in o; } }",
		"const C = class extends (a, B) {};",
		"@sealed class A { @log() method() {} @observable field = 1; accessor v = 2; }",
		"function f() { return new.target; }",
		"label: { break label; }",
	}

	for i, src := range tests {
		assertRoundTrip(t, i, src, scriptConfig())
	}
}

func TestRoundTripModule(t *testing.T) {
	tests := []string{
		`import "side-effect";`,
		`import a from "a";`,
		`import * as ns from "ns";`,
		`import a, { b, c as d } from "m";`,
		`import a, * as ns from "m";`,
		`import { "string name" as s } from "m";`,
		`import data from "./data.json" with { type: "json" };`,
		"export const a = 1, b = 2;",
		"export function f() {}",
		"export class C {}",
		"let a; export { a as b, a };",
		"export {};",
		`export { x } from "m";`,
		`export { default as y, "str" as z } from "m";`,
		`export * from "m";`,
		`export * as ns from "m";`,
		"export default function () {}",
		"export default class {}",
		"export default a + b;",
		"export default (function () {});",
		"export default async function named() {}",
		"@dec export class D {}",
		`const m = await import("m", { with: { type: "json" } }); import.meta.url;`,
	}

	for i, src := range tests {
		assertRoundTrip(t, i, src, moduleConfig())
	}
}

func TestRoundTripTypeScript(t *testing.T) {
	tests := []string{
		"type ID = string | number;",
		"type U = | A;",
		"type I = & A & B;",
		"interface Shape extends Base<T> { area(): number; readonly name?: string; [key: string]: unknown; new (x: number): Shape; <T>(y: T): T; get size(): number }",
		"interface Empty {}",
		"enum Color { Red, Green = 2, 'Blue' }",
		"const enum Flags { A = 1 << 0 }",
		"declare const VERSION: string;",
		"declare function f(x: number): void;",
		"abstract class A<T> implements I, J<T> { abstract m(): void; protected static readonly x?: number; private y!: string; override z = 1; declare w: T; static [key: string]: number; }",
		"let x: Array<Map<string, number>> = [];",
		"let m: Map<string, Array<Set<number>>>;",
		"let n!: number;",
		"function id<const T extends object = {}>(x: T): T { return x; }",
		"type Fn = (a: number, ...rest: string[]) => void;",
		"type Ctor = abstract new () => object;",
		"type C<T> = T extends string ? 'str' : T extends Array<infer U> ? U : never;",
		"type M<T> = { readonly [K in keyof T]?: T[K] };",
		"type N<T> = { -readonly [K in keyof T as `get${K}`]-?: T[K] };",
		"type Tup = [name: string, age?: number, ...rest: boolean[]];",
		"type Opt = [string, number?, ...boolean[]];",
		"type Tpl = `prefix-${string}`;",
		"type Q = typeof config.value;",
		"type L = -1 | 'a' | true | null;",
		"type P = (string | number)[];",
		"type K = keyof typeof obj;",
		"type R = { a: string; b(): void; readonly [k: string]: unknown };",
		"function isStr(x: unknown): x is string { return true; }",
		"function assert(x: unknown): asserts x is string {}",
		"function check(this: Window, x?: number) {}",
		"class P { constructor(private readonly x: number, public y?: string) {} }",
		"class G<in out T> {}",
		"x as string; x satisfies T; x!; <number>x; f<T>; y = [1] as const;",
		"f<T>(x); new Map<string, number>(); tag<T>`x`;",
		"const g = <T>(x: T): T => x;",
		"const h = async (x: number): Promise<void> => {};",
		"function f(x: string): string;\nfunction f(x: number): number;\nfunction f(x: any) { return x; }",
		`import type { A } from "a"; import { type B, c } from "b";`,
		`export type { A as B } from "m"; export type * from "n";`,
		"interface Props {} type Alias = Props; export { Props, Alias };",
	}

	for i, src := range tests {
		assertRoundTrip(t, i, src, tsConfig())
	}
}

func TestRoundTripJSX(t *testing.T) {
	tests := []string{
		`<div className="box" data-id='7' {...rest} hidden>Hello &amp; {name}<br/></div>;`,
		"<a.b.c />;",
		"<svg:rect width={1} />;",
		"const view = <><A>{items.map(i => <li key={i}>{i}</li>)}</A>{/* note */}</>;",
		"x = <p>\n  multi\n  line\n</p>;",
		"f(<a/>, <b>x</b>);",
		"cond ? <a attr=<b/> /> : <c/>;",
	}

	for i, src := range tests {
		assertRoundTrip(t, i, src, jsxConfig())
	}
}

func TestPrintedText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"let a=1", "let a = 1;\n"},
		{"if(a)b();else{c}", "if (a) b(); else {\n  c;\n}\n"},
		{"function f(a,b=2){return a+b}", "function f(a, b = 2) {\n  return a + b;\n}\n"},
		{"x=- -y", "x = - -y;\n"},
		{"1 .toString()", "1 .toString();\n"},
		{"new X", "new X();\n"},
		{"x=[a,,]", "x = [a, ,];\n"},
		{"for(;;){}", "for (;;) {}\n"},
		{"switch(x){case 1:f();default:}", "switch (x) {\n  case 1:\n    f();\n  default:\n}\n"},
		{"a\nb", "a;\nb;\n"},
	}

	for i, tt := range tests {
		got, err := Source(tt.input, scriptConfig(), DefaultOptions())
		if err != nil {
			t.Fatalf("tests[%d] - Source(%q) failed: %v", i, tt.input, err)
		}
		if got != tt.expected {
			t.Fatalf("tests[%d] - printed text wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestOptions(t *testing.T) {
	got, err := Source("if (a) { b; }", scriptConfig(), Options{Indent: "\t", CRLF: true})
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	if want := "if (a) {\r\n\tb;\r\n}\r\n"; got != want {
		t.Fatalf("output wrong. expected=%q, got=%q", want, got)
	}

	got, err = Source("", scriptConfig(), Options{})
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	if got != "\n" {
		t.Fatalf("empty program should print a single newline. got=%q", got)
	}
}

func TestSourceFatalError(t *testing.T) {
	_, err := Source("let x = ;", scriptConfig(), DefaultOptions())
	if err == nil {
		t.Fatalf("expected error for invalid source")
	}
	if !strings.HasPrefix(err.Error(), "format: ") {
		t.Fatalf("error should be prefixed. got=%q", err.Error())
	}
}

func TestNodeExpression(t *testing.T) {
	expr, _, err := parser.ParseExpression("a+b*c", scriptConfig())
	if err != nil {
		t.Fatalf("ParseExpression failed: %v", err)
	}

	if got := Node(expr, DefaultOptions()); got != "a + b * c\n" {
		t.Fatalf("expression text wrong. expected=%q, got=%q", "a + b * c\n", got)
	}
}
