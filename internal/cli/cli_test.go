package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	ecmaerrors "github.com/orizon-lang/ecmaparse/internal/errors"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

func span(file string, line, col, length int) position.Span {
	start := position.Position{Filename: file, Line: line, Column: col, Offset: col - 1}
	end := start
	end.Column += length
	end.Offset += length
	return position.NewSpan(start, end)
}

func TestPrintVersion(t *testing.T) {
	var text bytes.Buffer
	if err := PrintVersion(&text, "ecmaparse", false); err != nil {
		t.Fatalf("PrintVersion failed: %v", err)
	}
	if !strings.HasPrefix(text.String(), "ecmaparse "+Version+"\n") {
		t.Fatalf("text output wrong. got=%q", text.String())
	}

	var out bytes.Buffer
	if err := PrintVersion(&out, "ecmaparse", true); err != nil {
		t.Fatalf("PrintVersion failed: %v", err)
	}
	var info VersionInfo
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("json output invalid: %v", err)
	}
	if info.Version != Version || info.GoVersion == "" {
		t.Fatalf("json output wrong. got=%+v", info)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{nil, 0},
		{&ExitError{Code: 1}, 1},
		{errors.New("boom"), 2},
	}
	for i, tt := range tests {
		if got := ExitCode(tt.err); got != tt.expected {
			t.Fatalf("tests[%d] - exit code wrong. expected=%d, got=%d", i, tt.expected, got)
		}
	}
}

func TestRenderDiagnostic(t *testing.T) {
	file := position.NewSourceFile("a.js", "let a = ;\n")
	d := diagnostic.Diagnostic{
		Code:    diagnostic.Code("E1"),
		Message: "unexpected token",
		Span:    span("a.js", 1, 9, 1),
		Related: []diagnostic.RelatedInformation{{Message: "declared here", Span: span("a.js", 1, 5, 1)}},
	}

	var out bytes.Buffer
	r := &Renderer{Out: &out}
	r.Diagnostic(d, file)

	expected := "a.js:1:9: SyntaxError[E1]: unexpected token\n" +
		"1 | let a = ;\n" +
		"  |         ^\n" +
		"  note: declared here a.js:1:5:\n"
	if out.String() != expected {
		t.Fatalf("rendered diagnostic wrong.\nexpected=%q\ngot=%q", expected, out.String())
	}
}

func TestRenderWithoutFile(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{Out: &out}
	r.Diagnostics([]diagnostic.Diagnostic{
		{Code: "E2", Message: "first", Span: span("", 2, 3, 1), Category: diagnostic.DiagnosticLexical},
		{Code: "E3", Message: "second", Level: diagnostic.DiagnosticWarning},
	}, nil)

	expected := "2:3: LexicalError[E2]: first\n<input>: SyntaxError[E3]: second\n"
	if out.String() != expected {
		t.Fatalf("rendered diagnostics wrong.\nexpected=%q\ngot=%q", expected, out.String())
	}
}

func TestRenderError(t *testing.T) {
	file := position.NewSourceFile("b.js", "@\n")
	tests := []struct {
		err      error
		expected string
	}{
		{
			fmt.Errorf("wrapped: %w", ecmaerrors.Lexical("L1", "invalid character", span("b.js", 1, 1, 1))),
			"b.js:1:1: LexicalError[L1]: invalid character\n1 | @\n  | ^\n",
		},
		{
			errors.New("failed to read b.js"),
			"error: failed to read b.js\n",
		},
	}

	for i, tt := range tests {
		var out bytes.Buffer
		r := &Renderer{Out: &out}
		r.Error(tt.err, file)
		if out.String() != tt.expected {
			t.Fatalf("tests[%d] - rendered error wrong.\nexpected=%q\ngot=%q", i, tt.expected, out.String())
		}
	}
}

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		files, failed, errs int
		expected            string
	}{
		{1, 0, 0, "1 file checked, no errors\n"},
		{3, 0, 0, "3 files checked, no errors\n"},
		{3, 1, 1, "1 error in 1 of 3 files\n"},
		{2, 2, 5, "5 errors in 2 of 2 files\n"},
	}

	for i, tt := range tests {
		var out bytes.Buffer
		r := &Renderer{Out: &out}
		r.Summary(tt.files, tt.failed, tt.errs)
		if out.String() != tt.expected {
			t.Fatalf("tests[%d] - summary wrong. expected=%q, got=%q", i, tt.expected, out.String())
		}
	}
}

func TestColorKeepsText(t *testing.T) {
	var out bytes.Buffer
	r := &Renderer{Out: &out, Color: true}
	r.Summary(1, 0, 0)
	if !strings.Contains(out.String(), "1 file checked, no errors") {
		t.Fatalf("styled output lost its text. got=%q", out.String())
	}
}

func TestIsTerminalBuffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
	if NewRenderer(&bytes.Buffer{}).Color {
		t.Fatalf("renderer for a buffer should not use color")
	}
}
