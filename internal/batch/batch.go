// Package batch parses many files concurrently.
//
// Each file gets its own parser; nothing is shared between parses except
// the optional Cache. Results keep the order of the input paths.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/orizon-lang/ecmaparse/internal/ast"
	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/diagnostic"
	"github.com/orizon-lang/ecmaparse/internal/parser"
	"github.com/orizon-lang/ecmaparse/internal/position"
)

// Options controls ParseFiles.
type Options struct {
	// Concurrency limits parallel parses; zero uses DefaultConcurrency.
	Concurrency int
	// Cache, when set, memoizes results across calls.
	Cache *Cache
	// ByExtension adjusts the config per file with config.ForFile.
	ByExtension bool
	// Logger receives debug records; nil discards them.
	Logger *slog.Logger
}

// FileResult is the outcome for one path. Err holds a read failure or a
// fatal syntax error; Program is nil in both cases.
type FileResult struct {
	Path        string
	Program     *ast.Program
	Diagnostics []diagnostic.Diagnostic
	File        *position.SourceFile
	Source      string
	Err         error
}

// Failed reports whether the file has a fatal error or any diagnostic.
func (r FileResult) Failed() bool {
	return r.Err != nil || len(r.Diagnostics) > 0
}

// Report collects the results of one ParseFiles call.
type Report struct {
	ID      uuid.UUID
	Files   []FileResult
	Elapsed time.Duration
}

// ErrorCount returns the number of diagnostics plus fatal errors.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Diagnostics)
		if f.Err != nil {
			n++
		}
	}
	return n
}

// FailedFiles returns the number of files with at least one error.
func (r *Report) FailedFiles() int {
	n := 0
	for _, f := range r.Files {
		if f.Failed() {
			n++
		}
	}
	return n
}

// DefaultConcurrency returns ECMAPARSE_MAX_CONCURRENCY when set to a
// positive number (capped at 1024), otherwise GOMAXPROCS.
func DefaultConcurrency() int {
	if v := strings.TrimSpace(os.Getenv("ECMAPARSE_MAX_CONCURRENCY")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 1024 {
				return 1024
			}
			return n
		}
	}

	return runtime.GOMAXPROCS(0)
}

// ParseFiles reads and parses paths under cfg. Per-file failures are
// recorded in the report; the returned error is non-nil only when ctx is
// cancelled before every file was parsed.
func ParseFiles(ctx context.Context, paths []string, cfg config.Config, opts Options) (*Report, error) {
	started := time.Now()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With(slog.String("component", "batch"))

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency()
	}
	semaphore := make(chan struct{}, limit)

	report := &Report{ID: uuid.New(), Files: make([]FileResult, len(paths))}

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			select {
			case semaphore <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-semaphore }()

			if err := gctx.Err(); err != nil {
				return err
			}

			fileCfg := cfg
			if opts.ByExtension {
				fileCfg = cfg.ForFile(path)
			}
			report.Files[i] = parseFile(path, fileCfg, opts.Cache, logger)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s cancelled: %w", report.ID, err)
	}

	report.Elapsed = time.Since(started)
	logger.Debug("batch finished",
		slog.String("id", report.ID.String()),
		slog.Int("files", len(paths)),
		slog.Int("errors", report.ErrorCount()),
		slog.Duration("elapsed", report.Elapsed))

	return report, nil
}

func parseFile(path string, cfg config.Config, cache *Cache, logger *slog.Logger) FileResult {
	out := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		out.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return out
	}
	out.Source = string(data)

	var res *parser.Result
	if cache != nil {
		res, err = cache.Parse(path, out.Source, cfg)
	} else {
		res, err = parser.Parse(out.Source, cfg, parser.WithFilename(path))
	}
	if err != nil {
		logger.Debug("fatal error", slog.String("path", path), slog.String("error", err.Error()))
		out.Err = err
		return out
	}

	out.Program = res.Program
	out.Diagnostics = res.Diagnostics
	out.File = res.File
	logger.Debug("parsed", slog.String("path", path), slog.Int("diagnostics", len(res.Diagnostics)))

	return out
}
