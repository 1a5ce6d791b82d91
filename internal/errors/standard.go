// Package errors provides the fatal error values produced by the lexer and parser
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/orizon-lang/ecmaparse/internal/position"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	// CategoryLexical marks malformed tokens; the file produced no AST.
	CategoryLexical ErrorCategory = "LEXICAL"
	// CategorySyntax marks a production that could not produce any node.
	CategorySyntax ErrorCategory = "SYNTAX"
)

// SyntaxError is a fatal lexing or parsing failure.
type SyntaxError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Span     position.Span
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	if e.Span.Start.IsValid() {
		return fmt.Sprintf("%s: [%s:%s] %s", e.Span.Start, e.Category, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Lexical creates a lexical error.
func Lexical(code, message string, span position.Span) *SyntaxError {
	return &SyntaxError{Category: CategoryLexical, Code: code, Message: message, Span: span}
}

// Syntax creates a syntax error.
func Syntax(code, message string, span position.Span) *SyntaxError {
	return &SyntaxError{Category: CategorySyntax, Code: code, Message: message, Span: span}
}

// AsSyntaxError extracts a *SyntaxError from err's chain.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsLexical reports whether err carries a lexical SyntaxError.
func IsLexical(err error) bool {
	se, ok := AsSyntaxError(err)
	return ok && se.Category == CategoryLexical
}
