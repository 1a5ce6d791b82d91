// Diagnostic values and the fluent builder used by the lexer and parser.

package diagnostic

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/position"
)

// DiagnosticLevel represents the severity level of a diagnostic message.
type DiagnosticLevel int

const (
	DiagnosticError DiagnosticLevel = iota
	DiagnosticWarning
)

func (dl DiagnosticLevel) String() string {
	switch dl {
	case DiagnosticError:
		return "error"
	case DiagnosticWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// DiagnosticCategory represents the category of diagnostic.
type DiagnosticCategory int

const (
	DiagnosticSyntax DiagnosticCategory = iota
	DiagnosticLexical
)

func (dc DiagnosticCategory) String() string {
	switch dc {
	case DiagnosticSyntax:
		return "SyntaxError"
	case DiagnosticLexical:
		return "LexicalError"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Code     Code
	Message  string
	Span     position.Span
	Related  []RelatedInformation
	Level    DiagnosticLevel
	Category DiagnosticCategory
}

// RelatedInformation points at a second location involved in a diagnostic,
// such as the first declaration of a duplicated binding.
type RelatedInformation struct {
	Message string
	Span    position.Span
}

func (d Diagnostic) String() string {
	if d.Span.Start.IsValid() {
		return fmt.Sprintf("[%s]: %s (%d,%d)", d.Category, d.Message, d.Span.Start.Line, d.Span.Start.Column)
	}

	return fmt.Sprintf("[%s]: %s", d.Category, d.Message)
}

// Spans returns the primary span followed by every related span.
func (d Diagnostic) Spans() []position.Span {
	spans := make([]position.Span, 0, 1+len(d.Related))
	spans = append(spans, d.Span)
	for _, r := range d.Related {
		spans = append(spans, r.Span)
	}

	return spans
}

// DiagnosticBuilder helps construct diagnostic messages with fluent API.
type DiagnosticBuilder struct {
	diagnostic *Diagnostic
}

// NewDiagnostic creates a new diagnostic builder.
func NewDiagnostic() *DiagnosticBuilder {
	return &DiagnosticBuilder{diagnostic: &Diagnostic{}}
}

func (db *DiagnosticBuilder) Error() *DiagnosticBuilder {
	db.diagnostic.Level = DiagnosticError

	return db
}

func (db *DiagnosticBuilder) Warning() *DiagnosticBuilder {
	db.diagnostic.Level = DiagnosticWarning

	return db
}

func (db *DiagnosticBuilder) Syntax() *DiagnosticBuilder {
	db.diagnostic.Category = DiagnosticSyntax

	return db
}

func (db *DiagnosticBuilder) Lexical() *DiagnosticBuilder {
	db.diagnostic.Category = DiagnosticLexical

	return db
}

// Code sets the code and, when no message was given yet, the catalogue
// message formatted with args.
func (db *DiagnosticBuilder) Code(code Code, args ...interface{}) *DiagnosticBuilder {
	db.diagnostic.Code = code
	if db.diagnostic.Message == "" {
		db.diagnostic.Message = code.Format(args...)
	}

	return db
}

func (db *DiagnosticBuilder) Message(message string) *DiagnosticBuilder {
	db.diagnostic.Message = message

	return db
}

func (db *DiagnosticBuilder) Span(span position.Span) *DiagnosticBuilder {
	db.diagnostic.Span = span

	return db
}

func (db *DiagnosticBuilder) Related(message string, span position.Span) *DiagnosticBuilder {
	db.diagnostic.Related = append(db.diagnostic.Related, RelatedInformation{
		Message: message,
		Span:    span,
	})

	return db
}

func (db *DiagnosticBuilder) Build() Diagnostic {
	return *db.diagnostic
}

// FormatDiagnostic renders d as a header line followed by a caret excerpt
// of the offending line, when file is known.
func FormatDiagnostic(d Diagnostic, file *position.SourceFile) string {
	var sb strings.Builder

	sb.WriteString(d.String())
	sb.WriteString("\n")

	if file == nil || !d.Span.Start.IsValid() {
		return sb.String()
	}

	sb.WriteString(position.Excerpt(file, d.Span, 0))

	for _, r := range d.Related {
		if !r.Span.Start.IsValid() {
			continue
		}
		fmt.Fprintf(&sb, "  note: %s (%d,%d)\n", r.Message, r.Span.Start.Line, r.Span.Start.Column)
	}

	return sb.String()
}
