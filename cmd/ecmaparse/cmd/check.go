package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/ecmaparse/internal/batch"
	"github.com/orizon-lang/ecmaparse/internal/cli"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var (
		grammar     grammarFlags
		jsonOutput  bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Report syntax errors in files and directories",
		Long: `Parse every source file under the given paths concurrently and
report their syntax errors. Directories are searched recursively for
.js .mjs .cjs .jsx .ts .mts .cts and .tsx files; node_modules, vendor and
hidden directories are skipped. The grammar follows each file's extension.

The exit status is 1 when any file has an error.`,
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
				Concurrency: concurrency,
				ByExtension: true,
				Logger:      flags.logger(cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := writeReportJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				renderReport(cli.NewRenderer(cmd.OutOrStdout()), report)
			}

			if report.ErrorCount() > 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}

	grammar.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the report as JSON")
	cmd.Flags().IntVarP(&concurrency, "jobs", "j", 0, "files parsed in parallel (default: ECMAPARSE_MAX_CONCURRENCY or GOMAXPROCS)")

	return cmd
}

// checkFiles parses paths and renders the outcome, returning the number of
// errors. Used by check and watch.
func checkFiles(ctx context.Context, r *cli.Renderer, paths []string, cfg config.Config, opts batch.Options) (int, error) {
	opts.ByExtension = true
	report, err := batch.ParseFiles(ctx, paths, cfg, opts)
	if err != nil {
		return 0, err
	}
	renderReport(r, report)
	return report.ErrorCount(), nil
}

func renderReport(r *cli.Renderer, report *batch.Report) {
	for _, f := range report.Files {
		renderFile(r, f)
	}
	r.Summary(len(report.Files), report.FailedFiles(), report.ErrorCount())
}

func renderFile(r *cli.Renderer, f batch.FileResult) {
	if f.Err == nil {
		r.Diagnostics(f.Diagnostics, f.File)
		return
	}
	// fatal errors leave no parsed file behind
	file := f.File
	if file == nil && f.Source != "" {
		file = position.NewSourceFile(f.Path, f.Source)
	}
	r.Error(f.Err, file)
}

type jsonDiagnostic struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Length   int    `json:"length"`
	Text     string `json:"text,omitempty"`
}

type jsonFile struct {
	Path        string           `json:"path"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

type jsonReport struct {
	ID        string     `json:"id"`
	Files     []jsonFile `json:"files"`
	Errors    int        `json:"errors"`
	ElapsedMS int64      `json:"elapsed_ms"`
}

func writeReportJSON(w io.Writer, report *batch.Report) error {
	out := jsonReport{
		ID:        report.ID.String(),
		Files:     make([]jsonFile, 0, len(report.Files)),
		Errors:    report.ErrorCount(),
		ElapsedMS: report.Elapsed.Milliseconds(),
	}
	for _, f := range report.Files {
		jf := jsonFile{Path: f.Path, Diagnostics: []jsonDiagnostic{}}
		if f.Err != nil {
			jf.Error = f.Err.Error()
		}
		for _, d := range f.Diagnostics {
			jd := jsonDiagnostic{
				Code:     string(d.Code),
				Category: d.Category.String(),
				Message:  d.Message,
				Line:     d.Span.Start.Line,
				Column:   d.Span.Start.Column,
				Length:   d.Span.Length(),
			}
			if f.File != nil {
				jd.Text = f.File.GetSpanText(d.Span)
			}
			jf.Diagnostics = append(jf.Diagnostics, jd)
		}
		out.Files = append(out.Files, jf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
