package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/config"
	ecmaerrors "github.com/orizon-lang/ecmaparse/internal/errors"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return dir
}

func TestParseFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.js":     "let a = 1;",
		"types.ts":  "let b: number = 2;",
		"dup.js":    "let c; let c;",
		"fatal.js":  "let = = ;",
		"module.js": "export const d = 1;",
	})
	paths := []string{
		filepath.Join(dir, "ok.js"),
		filepath.Join(dir, "types.ts"),
		filepath.Join(dir, "dup.js"),
		filepath.Join(dir, "fatal.js"),
		filepath.Join(dir, "missing.js"),
	}

	report, err := ParseFiles(context.Background(), paths, config.Default(), Options{Concurrency: 2, ByExtension: true})
	if err != nil {
		t.Fatalf("ParseFiles failed: %v", err)
	}

	if len(report.Files) != len(paths) {
		t.Fatalf("result count wrong. expected=%d, got=%d", len(paths), len(report.Files))
	}
	for i, f := range report.Files {
		if f.Path != paths[i] {
			t.Fatalf("files[%d] - order wrong. expected=%q, got=%q", i, paths[i], f.Path)
		}
	}

	tests := []struct {
		failed      bool
		diagnostics int
		hasErr      bool
	}{
		{false, 0, false},
		{false, 0, false},
		{true, 1, false},
		{true, 0, true},
		{true, 0, true},
	}
	for i, tt := range tests {
		f := report.Files[i]
		if f.Failed() != tt.failed {
			t.Fatalf("files[%d] - failed wrong. expected=%t, got=%t", i, tt.failed, f.Failed())
		}
		if len(f.Diagnostics) != tt.diagnostics {
			t.Fatalf("files[%d] - diagnostic count wrong. expected=%d, got=%d", i, tt.diagnostics, len(f.Diagnostics))
		}
		if (f.Err != nil) != tt.hasErr {
			t.Fatalf("files[%d] - error wrong. expected error=%t, got=%v", i, tt.hasErr, f.Err)
		}
	}

	if _, ok := ecmaerrors.AsSyntaxError(report.Files[3].Err); !ok {
		t.Fatalf("fatal parse should carry a syntax error. got=%v", report.Files[3].Err)
	}
	if !errors.Is(report.Files[4].Err, os.ErrNotExist) {
		t.Fatalf("missing file should wrap os.ErrNotExist. got=%v", report.Files[4].Err)
	}
	if report.ErrorCount() != 3 {
		t.Fatalf("error count wrong. expected=3, got=%d", report.ErrorCount())
	}
	if report.FailedFiles() != 3 {
		t.Fatalf("failed file count wrong. expected=3, got=%d", report.FailedFiles())
	}
	if report.ID.String() == "" {
		t.Fatalf("report ID missing")
	}
}

func TestParseFilesByExtension(t *testing.T) {
	dir := writeFiles(t, map[string]string{"types.ts": "let b: number = 2;"})
	paths := []string{filepath.Join(dir, "types.ts")}

	report, err := ParseFiles(context.Background(), paths, config.Default(), Options{})
	if err != nil {
		t.Fatalf("ParseFiles failed: %v", err)
	}
	if report.Files[0].Err == nil {
		t.Fatalf("type annotations should fail without per-extension config")
	}
}

func TestParseFilesCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.js": "a;", "b.js": "b;"})
	paths := []string{filepath.Join(dir, "a.js"), filepath.Join(dir, "b.js")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ParseFiles(ctx, paths, config.Default(), Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got=%v", err)
	}
}

func TestCacheHitsAndKeys(t *testing.T) {
	cache := NewCache()
	cfg := config.Default()

	first, err := cache.Parse("a.js", "let a = 1;", cfg)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	second, err := cache.Parse("a.js", "let a = 1;", cfg)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if first != second {
		t.Fatalf("identical content should return the cached result")
	}

	module := cfg
	module.SourceType = config.SourceModule
	if _, err := cache.Parse("a.js", "let a = 1;", module); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cache.Len() != 2 {
		t.Fatalf("a different config should get its own entry. expected=2, got=%d", cache.Len())
	}

	hits, parses := cache.Stats()
	if hits != 1 || parses != 2 {
		t.Fatalf("stats wrong. expected=(1, 2), got=(%d, %d)", hits, parses)
	}

	if Key("a.js", "x", cfg) == Key("a.js", "y", cfg) {
		t.Fatalf("different content should have different keys")
	}
	if Key("a.js", "x", cfg) == Key("b.js", "x", cfg) {
		t.Fatalf("different filenames should have different keys")
	}

	cache.Forget("a.js", "let a = 1;", cfg)
	if cache.Len() != 1 {
		t.Fatalf("Forget should drop the entry. got=%d entries", cache.Len())
	}
}

func TestCacheFatalErrors(t *testing.T) {
	cache := NewCache()

	_, err1 := cache.Parse("a.js", "let = = ;", config.Default())
	_, err2 := cache.Parse("a.js", "let = = ;", config.Default())
	if err1 == nil || err1 != err2 {
		t.Fatalf("fatal errors should be cached. got=%v and %v", err1, err2)
	}
}

func TestCacheConcurrentParsesOnce(t *testing.T) {
	cache := NewCache()
	cfg := config.Default()
	src := "function f(a, b) { return a + b; }"

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Parse("a.js", src, cfg); err != nil {
				t.Errorf("Parse failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if _, parses := cache.Stats(); parses != 1 {
		t.Fatalf("identical concurrent requests should parse once. got=%d parses", parses)
	}
}

func TestParseFilesWithCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.js": "let x; let x;", "b.js": "let x; let x;"})
	paths := []string{filepath.Join(dir, "a.js"), filepath.Join(dir, "b.js")}
	cache := NewCache()

	for round := 0; round < 2; round++ {
		report, err := ParseFiles(context.Background(), paths, config.Default(), Options{Cache: cache})
		if err != nil {
			t.Fatalf("ParseFiles failed: %v", err)
		}

		for i, f := range report.Files {
			if f.File == nil || f.File.Filename != paths[i] {
				t.Fatalf("round %d files[%d] - source file wrong. expected=%q, got=%+v", round, i, paths[i], f.File)
			}
			if len(f.Diagnostics) != 1 {
				t.Fatalf("round %d files[%d] - diagnostic count wrong. expected=1, got=%d", round, i, len(f.Diagnostics))
			}
			if got := f.Diagnostics[0].Span.Start.Filename; got != paths[i] {
				t.Fatalf("round %d files[%d] - diagnostic filename wrong. expected=%q, got=%q", round, i, paths[i], got)
			}
		}
	}

	hits, parses := cache.Stats()
	if parses != 2 || hits != 2 {
		t.Fatalf("stats wrong. expected=(2, 2), got=(%d, %d)", hits, parses)
	}
}

func TestCollect(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.js":                  "",
		"src/b.ts":              "",
		"src/c.tsx":             "",
		"src/notes.md":          "",
		"node_modules/x/y.js":   "",
		".hidden/z.js":          "",
		"src/deep/nested/d.mjs": "",
	})

	files, err := Collect([]string{dir, filepath.Join(dir, "a.js")})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "src", "b.ts"),
		filepath.Join(dir, "src", "c.tsx"),
		filepath.Join(dir, "src", "deep", "nested", "d.mjs"),
	}
	if len(files) != len(expected) {
		t.Fatalf("file count wrong. expected=%v, got=%v", expected, files)
	}
	for i := range expected {
		if files[i] != expected[i] {
			t.Fatalf("files[%d] - wrong. expected=%q, got=%q", i, expected[i], files[i])
		}
	}

	if _, err := Collect([]string{filepath.Join(dir, "nope")}); err == nil {
		t.Fatalf("missing path should fail")
	}
}
