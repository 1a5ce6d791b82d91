package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/cli"
	"github.com/orizon-lang/ecmaparse/internal/format"
	"github.com/orizon-lang/ecmaparse/internal/parser"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

func newParseCmd(flags *globalFlags) *cobra.Command {
	var (
		grammar    grammarFlags
		jsonOutput bool
		spans      bool
		expression bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file",
		Long: `Parse FILE and print its syntax tree, as JSON with --json or as
re-printed source otherwise. FILE "-" reads standard input.

Diagnostics go to standard error; the exit status is 1 when any was found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			path := args[0]
			cfg = grammar.apply(cfg.ForFile(path))

			src, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			opts := []parser.Option{parser.WithFilename(path), parser.WithLogger(flags.logger(cmd.ErrOrStderr()))}
			stderr := cli.NewRenderer(cmd.ErrOrStderr())

			var (
				node  ast.Node
				diags int
			)
			if expression {
				expr, ds, err := parser.ParseExpression(src, cfg, opts...)
				if err != nil {
					stderr.Error(err, position.NewSourceFile(path, src))
					return &cli.ExitError{Code: 1}
				}
				stderr.Diagnostics(ds, position.NewSourceFile(path, src))
				node, diags = expr, len(ds)
			} else {
				res, err := parser.Parse(src, cfg, opts...)
				if err != nil {
					stderr.Error(err, position.NewSourceFile(path, src))
					return &cli.ExitError{Code: 1}
				}
				stderr.Diagnostics(res.Diagnostics, res.File)
				node, diags = res.Program, len(res.Diagnostics)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(ast.Dump(node, spans)); err != nil {
					return fmt.Errorf("failed to encode tree: %w", err)
				}
			} else {
				fmt.Fprint(out, format.Node(node, format.DefaultOptions()))
			}

			if diags > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}

	grammar.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the tree as JSON")
	cmd.Flags().BoolVar(&spans, "spans", false, "include start and end offsets in JSON output")
	cmd.Flags().BoolVarP(&expression, "expression", "e", false, "parse a single expression")

	return cmd
}

// readSource reads path, or stdin when path is "-".
func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
