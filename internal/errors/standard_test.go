package errors

import (
	"fmt"
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/position"
)

func TestSyntaxErrorFormatting(t *testing.T) {
	span := position.Span{
		Start: position.Position{Filename: "a.js", Line: 2, Column: 3, Offset: 10},
		End:   position.Position{Filename: "a.js", Line: 2, Column: 4, Offset: 11},
	}

	err := Lexical("unterminated_string", "Unterminated string constant", span)
	if got := err.Error(); got != "a.js:2:3: [LEXICAL:unterminated_string] Unterminated string constant" {
		t.Fatalf("Error() = %q", got)
	}
	if err.Category != CategoryLexical || err.Code != "unterminated_string" {
		t.Fatalf("fields wrong. got=%+v", err)
	}

	noPos := Syntax("unexpected_token", "Unexpected token", position.Span{})
	if got := noPos.Error(); got != "[SYNTAX:unexpected_token] Unexpected token" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestAsSyntaxErrorThroughWrapping(t *testing.T) {
	inner := Lexical("bad_escape", "Invalid escape", position.Span{})
	wrapped := fmt.Errorf("parse main.js: %w", inner)

	se, ok := AsSyntaxError(wrapped)
	if !ok || se != inner {
		t.Fatalf("expected to unwrap the original error")
	}
	if !IsLexical(wrapped) {
		t.Fatalf("expected IsLexical to be true")
	}
	if IsLexical(fmt.Errorf("plain")) {
		t.Fatalf("plain errors are not lexical")
	}
}
