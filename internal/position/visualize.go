// Package position provides source position tracking for the parser.
//
// This file contains the excerpt renderer used by diagnostics.
package position

import (
	"fmt"
	"strings"
)

// Excerpt renders span against file with the given number of context lines.
func Excerpt(file *SourceFile, span Span, context int) string {
	var result strings.Builder

	startLine := max(1, span.Start.Line-context)
	endLine := min(file.LineCount(), span.End.Line+context)
	width := len(fmt.Sprint(endLine))

	for lineNum := startLine; lineNum <= endLine; lineNum++ {
		line := file.GetLine(lineNum)
		result.WriteString(fmt.Sprintf("%*d | %s\n", width, lineNum, line))

		if lineNum >= span.Start.Line && lineNum <= span.End.Line {
			result.WriteString(strings.Repeat(" ", width))
			result.WriteString(" | ")
			addHighlighting(&result, lineNum, line, span)
			result.WriteString("\n")
		}
	}

	return result.String()
}

func addHighlighting(result *strings.Builder, lineNum int, line string, span Span) {
	startCol, endCol := 1, len(line)+1
	if lineNum == span.Start.Line {
		startCol = span.Start.Column
	}
	if lineNum == span.End.Line {
		endCol = span.End.Column
	}

	for i := 1; i < startCol && i <= len(line); i++ {
		if line[i-1] == '\t' {
			result.WriteByte('\t')
		} else {
			result.WriteByte(' ')
		}
	}

	// zero width spans still get a single caret
	n := endCol - startCol
	if n <= 0 {
		n = 1
	}
	result.WriteString(strings.Repeat("^", n))
}
