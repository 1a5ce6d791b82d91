package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/ecmaparse/internal/cli"
	"github.com/orizon-lang/ecmaparse/internal/lexer"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the tokens of a file",
		Long: `Print one token per line as LINE:COLUMN, type and source text.
FILE "-" reads standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(src, path)

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Span.Start.Line, tok.Span.Start.Column, tok.Type, tok.Literal)
			}

			if err != nil {
				cli.NewRenderer(cmd.ErrOrStderr()).Error(err, position.NewSourceFile(path, src))
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
