package parser

import (
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
)

func TestJSXElement(t *testing.T) {
	src := `<div className="box" data-id='7' {...rest} hidden>Hello &amp; {name}<br/></div>;`

	res := mustParse(t, src, jsxConfig())
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	el, ok := firstExpression(t, res.Program).(*ast.JSXElement)
	if !ok {
		t.Fatalf("expression is not *ast.JSXElement. got=%T", firstExpression(t, res.Program))
	}
	if name := jsxName(el.OpeningElement.Name); name != "div" {
		t.Fatalf("element name wrong. expected=%q, got=%q", "div", name)
	}
	if len(el.OpeningElement.Attributes) != 4 {
		t.Fatalf("attribute count wrong. expected=4, got=%d", len(el.OpeningElement.Attributes))
	}

	dataID := el.OpeningElement.Attributes[1].(*ast.JSXAttribute)
	if name := jsxName(dataID.Name); name != "data-id" {
		t.Fatalf("dashed attribute name wrong. expected=%q, got=%q", "data-id", name)
	}
	if v := dataID.Value.(*ast.StringLiteral).Value; v != "7" {
		t.Fatalf("attribute value wrong. expected=%q, got=%q", "7", v)
	}
	if _, ok := el.OpeningElement.Attributes[2].(*ast.JSXSpreadAttribute); !ok {
		t.Fatalf("third attribute is not *ast.JSXSpreadAttribute. got=%T", el.OpeningElement.Attributes[2])
	}
	if hidden := el.OpeningElement.Attributes[3].(*ast.JSXAttribute); hidden.Value != nil {
		t.Fatalf("boolean attribute should have no value. got=%T", hidden.Value)
	}

	expected := []ast.Kind{ast.KindJSXText, ast.KindJSXExpressionContainer, ast.KindJSXElement}
	if len(el.Children) != len(expected) {
		t.Fatalf("child count wrong. expected=%d, got=%d", len(expected), len(el.Children))
	}
	for i, kind := range expected {
		if got := el.Children[i].Kind(); got != kind {
			t.Fatalf("children[%d] - kind wrong. expected=%q, got=%q", i, kind, got)
		}
	}
	text := el.Children[0].(*ast.JSXText)
	if text.Value != "Hello & " || text.Raw != "Hello &amp; " {
		t.Fatalf("text wrong. expected=(%q, %q), got=(%q, %q)", "Hello & ", "Hello &amp; ", text.Value, text.Raw)
	}
	if el.ClosingElement == nil {
		t.Fatalf("closing element missing")
	}
}

func TestJSXNames(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<a.b.c />;", "a.b.c"},
		{"<svg:rect />;", "svg:rect"},
		{"<my-element></my-element>;", "my-element"},
	}

	for i, tt := range tests {
		res := mustParse(t, tt.input, jsxConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - unexpected diagnostics: %v", i, diagCodes(res.Diagnostics))
		}

		el, ok := firstExpression(t, res.Program).(*ast.JSXElement)
		if !ok {
			t.Fatalf("tests[%d] - expression is not *ast.JSXElement. got=%T", i, firstExpression(t, res.Program))
		}
		if got := jsxName(el.OpeningElement.Name); got != tt.expected {
			t.Fatalf("tests[%d] - name wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestJSXFragmentAndNesting(t *testing.T) {
	src := "const view = <><A>{items.map(i => <li key={i}>{i}</li>)}</A>{/* note */}</>;"

	res := mustParse(t, src, jsxConfig())
	if res.Failed() {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(res.Diagnostics))
	}

	decl := res.Program.Body[0].(*ast.VariableDeclaration)
	frag, ok := decl.Declarations[0].Init.(*ast.JSXFragment)
	if !ok {
		t.Fatalf("initializer is not *ast.JSXFragment. got=%T", decl.Declarations[0].Init)
	}
	if len(frag.Children) != 2 {
		t.Fatalf("fragment child count wrong. expected=2, got=%d", len(frag.Children))
	}
	container := frag.Children[1].(*ast.JSXExpressionContainer)
	if _, ok := container.Expression.(*ast.JSXEmptyExpression); !ok {
		t.Fatalf("comment container should hold *ast.JSXEmptyExpression. got=%T", container.Expression)
	}
}

func TestJSXTagMismatch(t *testing.T) {
	res := mustParse(t, "<a></b>;", jsxConfig())

	if !hasCode(res.Diagnostics, diagnostic.CodeJSXTagMismatch) {
		t.Fatalf("expected %q, got=%v", diagnostic.CodeJSXTagMismatch, diagCodes(res.Diagnostics))
	}
}

func TestJSXAdjacentElements(t *testing.T) {
	_, err := Parse("<a/><b/>;", jsxConfig())
	if err == nil {
		t.Fatalf("adjacent elements should fail")
	}
}

func TestJSXAfterExpressions(t *testing.T) {
	inputs := []string{
		"f(<a/>, <b>x</b>);",
		"cond ? <a/> : <b/>;",
		"return_ = () => <a href={url}>{label}</a>;",
		"x = a < b;",
	}

	for i, input := range inputs {
		res := mustParse(t, input, jsxConfig())
		if res.Failed() {
			t.Fatalf("tests[%d] - %q: unexpected diagnostics: %v", i, input, diagCodes(res.Diagnostics))
		}
	}
}
