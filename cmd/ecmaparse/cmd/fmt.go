package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/ecmaparse/internal/batch"
	"github.com/orizon-lang/ecmaparse/internal/cli"
	"github.com/orizon-lang/ecmaparse/internal/format"
)

func newFmtCmd(flags *globalFlags) *cobra.Command {
	var (
		grammar      grammarFlags
		writeInPlace bool
		listOnly     bool
		indent       string
		crlf         bool
	)

	cmd := &cobra.Command{
		Use:   "fmt PATH...",
		Short: "Re-print files from their syntax trees",
		Long: `Re-print source files from their syntax trees. The output parses to
the same tree; comments are dropped. Files with syntax errors are reported
and left alone.

Flags:
  -w  write the result to the source file instead of standard output
  -l  list files whose printed form differs from their contents`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			cfg = grammar.apply(cfg)

			paths, err := batch.Collect(args)
			if err != nil {
				return err
			}

			report, err := batch.ParseFiles(cmd.Context(), paths, cfg, batch.Options{
				ByExtension: true,
				Logger:      flags.logger(cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}

			opts := format.Options{Indent: indent, CRLF: crlf}
			stderr := cli.NewRenderer(cmd.ErrOrStderr())
			out := cmd.OutOrStdout()
			failed := false

			for _, f := range report.Files {
				if f.Failed() {
					failed = true
					renderFile(stderr, f)
					continue
				}

				text := format.Node(f.Program, opts)
				switch {
				case listOnly:
					if text != f.Source {
						fmt.Fprintln(out, f.Path)
					}
				case writeInPlace:
					if text == f.Source {
						continue
					}
					if err := os.WriteFile(f.Path, []byte(text), 0o644); err != nil {
						return fmt.Errorf("failed to write %s: %w", f.Path, err)
					}
				default:
					fmt.Fprint(out, text)
				}
			}

			if failed {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}

	grammar.register(cmd)
	cmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "write result to the source file")
	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "list files whose formatting differs")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation unit")
	cmd.Flags().BoolVar(&crlf, "crlf", false, "end lines with CRLF")

	return cmd
}
