package diagnostic

import (
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/position"
)

// Handler collects recoverable diagnostics for one parse. Speculative
// parsing takes a Checkpoint before trying a production and rolls back to
// it when the attempt is abandoned.
type Handler struct {
	diagnostics []Diagnostic
}

// NewHandler creates an empty handler.
func NewHandler() *Handler {
	return &Handler{diagnostics: make([]Diagnostic, 0)}
}

// Push appends d.
func (h *Handler) Push(d Diagnostic) {
	h.diagnostics = append(h.diagnostics, d)
}

// Report builds and pushes an error diagnostic for code at span.
func (h *Handler) Report(code Code, span position.Span, args ...interface{}) {
	h.Push(NewDiagnostic().Error().Syntax().Code(code, args...).Span(span).Build())
}

// Diagnostics returns a copy of the collected diagnostics in report order.
func (h *Handler) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(h.diagnostics))
	copy(out, h.diagnostics)

	return out
}

// Last returns the most recently pushed diagnostic.
func (h *Handler) Last() (Diagnostic, bool) {
	if len(h.diagnostics) == 0 {
		return Diagnostic{}, false
	}
	return h.diagnostics[len(h.diagnostics)-1], true
}

// HasErrors reports whether any diagnostic has error level.
func (h *Handler) HasErrors() bool {
	for _, d := range h.diagnostics {
		if d.Level == DiagnosticError {
			return true
		}
	}

	return false
}

func (h *Handler) Len() int {
	return len(h.diagnostics)
}

// Checkpoint returns the current length for a later Rollback.
func (h *Handler) Checkpoint() int {
	return len(h.diagnostics)
}

// Rollback drops every diagnostic pushed after checkpoint.
func (h *Handler) Rollback(checkpoint int) {
	if checkpoint < 0 {
		checkpoint = 0
	}
	if checkpoint < len(h.diagnostics) {
		h.diagnostics = h.diagnostics[:checkpoint]
	}
}

// Pop removes and returns the last diagnostic.
func (h *Handler) Pop() (Diagnostic, bool) {
	if len(h.diagnostics) == 0 {
		return Diagnostic{}, false
	}
	d := h.diagnostics[len(h.diagnostics)-1]
	h.diagnostics = h.diagnostics[:len(h.diagnostics)-1]

	return d, true
}

// Format renders every diagnostic against source.
func (h *Handler) Format(source *position.SourceFile) string {
	var sb strings.Builder
	for _, d := range h.diagnostics {
		sb.WriteString(FormatDiagnostic(d, source))
	}

	return sb.String()
}
