package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	ecmaerrors "github.com/orizon-lang/ecmaparse/internal/errors"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorOK      = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPath    = lipgloss.Color("#7C3AED")
)

// Styles
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	OKStyle      = lipgloss.NewStyle().Foreground(colorOK)
	PathStyle    = lipgloss.NewStyle().Foreground(colorPath).Bold(true)
	GutterStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	CaretStyle   = lipgloss.NewStyle().Foreground(colorError)
)

// Renderer writes diagnostics in a compiler-style layout:
//
//	path:line:col: SyntaxError[code]: message
//	 3 | let a = ;
//	   |         ^
//
// Styles are applied only when Color is set.
type Renderer struct {
	Out   io.Writer
	Color bool
}

// NewRenderer creates a renderer for w, enabling color when w is a
// terminal.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{Out: w, Color: IsTerminal(w)}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.Color {
		return text
	}
	return s.Render(text)
}

// Diagnostic writes d with a caret excerpt from file, which may be nil.
func (r *Renderer) Diagnostic(d diagnostic.Diagnostic, file *position.SourceFile) {
	level := ErrorStyle
	if d.Level == diagnostic.DiagnosticWarning {
		level = WarningStyle
	}

	if d.Span.Start.Filename == "" && file != nil {
		d.Span.Start.Filename = file.Filename
	}

	header := fmt.Sprintf("%s[%s]", d.Category, d.Code)
	fmt.Fprintf(r.Out, "%s %s %s\n", r.location(d.Span), r.style(level, header+":"), d.Message)
	r.excerpt(file, d.Span)

	for _, rel := range d.Related {
		if !rel.Span.Start.IsValid() {
			continue
		}
		fmt.Fprintf(r.Out, "  %s %s %s\n", r.style(GutterStyle, "note:"), rel.Message, r.location(rel.Span))
	}
}

// Diagnostics writes every diagnostic in order.
func (r *Renderer) Diagnostics(ds []diagnostic.Diagnostic, file *position.SourceFile) {
	for _, d := range ds {
		r.Diagnostic(d, file)
	}
}

// Error writes a fatal error. Syntax errors get the same layout as
// diagnostics; other errors are written as a single line.
func (r *Renderer) Error(err error, file *position.SourceFile) {
	se, ok := ecmaerrors.AsSyntaxError(err)
	if !ok {
		fmt.Fprintf(r.Out, "%s %v\n", r.style(ErrorStyle, "error:"), err)
		return
	}

	category := diagnostic.DiagnosticSyntax
	if se.Category == ecmaerrors.CategoryLexical {
		category = diagnostic.DiagnosticLexical
	}
	r.Diagnostic(diagnostic.Diagnostic{
		Code:     diagnostic.Code(se.Code),
		Message:  se.Message,
		Span:     se.Span,
		Category: category,
	}, file)
}

// Summary writes the closing line of a check run.
func (r *Renderer) Summary(files, failed, errors int) {
	if errors == 0 {
		fmt.Fprintf(r.Out, "%s\n", r.style(OKStyle, fmt.Sprintf("%d %s checked, no errors", files, plural(files, "file"))))
		return
	}
	fmt.Fprintf(r.Out, "%s\n", r.style(ErrorStyle, fmt.Sprintf("%d %s in %d of %d %s",
		errors, plural(errors, "error"), failed, files, plural(files, "file"))))
}

// Muted styles secondary text such as status lines.
func (r *Renderer) Muted(text string) string {
	return r.style(GutterStyle, text)
}

func (r *Renderer) location(span position.Span) string {
	start := span.Start
	if !start.IsValid() {
		name := start.Filename
		if name == "" {
			name = "<input>"
		}
		return r.style(PathStyle, name+":")
	}
	loc := fmt.Sprintf("%d:%d:", start.Line, start.Column)
	if start.Filename != "" {
		loc = start.Filename + ":" + loc
	}
	return r.style(PathStyle, loc)
}

// excerpt reuses position.Excerpt and styles the gutter and caret lines.
func (r *Renderer) excerpt(file *position.SourceFile, span position.Span) {
	if file == nil || !span.Start.IsValid() {
		return
	}

	text := strings.TrimSuffix(position.Excerpt(file, span, 0), "\n")
	for _, line := range strings.Split(text, "\n") {
		gutter, code, ok := strings.Cut(line, " | ")
		if !ok {
			fmt.Fprintln(r.Out, line)
			continue
		}
		if strings.TrimSpace(gutter) == "" {
			code = r.style(CaretStyle, code)
		}
		fmt.Fprintf(r.Out, "%s %s\n", r.style(GutterStyle, gutter+" |"), code)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
