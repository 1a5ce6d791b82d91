// Package format prints syntax trees back to source text.
//
// The output is valid input for the parser and re-parses to the same tree
// (spans aside). Comments and original layout are not preserved.
package format

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/parser"
)

// Options controls printing style.
type Options struct {
	// Indent is the text written once per nesting level.
	Indent string
	// CRLF ends lines with \r\n instead of \n.
	CRLF bool
}

// DefaultOptions returns two-space indentation with LF line endings.
func DefaultOptions() Options {
	return Options{Indent: "  "}
}

// Node prints n.
func Node(n ast.Node, opts Options) string {
	return NewPrinter(opts).Print(n)
}

// Source parses src under cfg and prints the resulting program. Parse
// diagnostics do not stop printing; a fatal parse error does.
func Source(src string, cfg config.Config, opts Options) (string, error) {
	res, err := parser.Parse(src, cfg)
	if err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return Node(res.Program, opts), nil
}

// finish ends the text with exactly one line break and applies the line
// ending style.
func finish(text string, opts Options) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return lineEnd(opts)
	}
	text += "\n"
	if opts.CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}

func lineEnd(opts Options) string {
	if opts.CRLF {
		return "\r\n"
	}
	return "\n"
}
