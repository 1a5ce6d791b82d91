package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orizon-lang/ecmaparse/internal/cli"
)

// run executes the command tree with a fresh config file so the test does
// not pick up one from the working directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), ".ecmaparse.toml")
	if err := os.WriteFile(cfgPath, []byte("source_type = \"script\"\n"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var info cli.VersionInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("version output is not JSON: %v", err)
	}
	if info.Version != cli.Version {
		t.Fatalf("version wrong. expected=%q, got=%q", cli.Version, info.Version)
	}
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	js := writeFile(t, dir, "a.js", "a+b ;")
	ts := writeFile(t, dir, "b.ts", "let x:number=1")

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"parse", js}, "a + b;\n"},
		{[]string{"parse", ts}, "let x: number = 1;\n"},
		{[]string{"parse", "--module", js}, "a + b;\n"},
	}

	for i, tt := range tests {
		out, stderr, err := run(t, tt.args...)
		if err != nil {
			t.Fatalf("tests[%d] - parse failed: %v (%s)", i, err, stderr)
		}
		if out != tt.expected {
			t.Fatalf("tests[%d] - output wrong. expected=%q, got=%q", i, tt.expected, out)
		}
	}
}

func TestParseCommandJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "a;")

	out, _, err := run(t, "parse", "--json", "--spans", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if tree["type"] != "Program" {
		t.Fatalf("root type wrong. expected=%q, got=%v", "Program", tree["type"])
	}
	if _, ok := tree["end"]; !ok {
		t.Fatalf("--spans should add offsets. got=%v", tree)
	}
}

func TestParseCommandErrors(t *testing.T) {
	dir := t.TempDir()
	recoverable := writeFile(t, dir, "dup.js", "let c; let c;")
	fatal := writeFile(t, dir, "fatal.js", "let = = ;")

	for i, path := range []string{recoverable, fatal} {
		_, stderr, err := run(t, "parse", path)
		if cli.ExitCode(err) != 1 {
			t.Fatalf("tests[%d] - exit code wrong. expected=1, got=%d (%v)", i, cli.ExitCode(err), err)
		}
		if !strings.Contains(stderr, filepath.Base(path)) {
			t.Fatalf("tests[%d] - diagnostics should name the file. got=%q", i, stderr)
		}
	}
}

func TestParseCommandExpression(t *testing.T) {
	path := writeFile(t, t.TempDir(), "e.js", "(a, b) => a * b")

	out, _, err := run(t, "parse", "-e", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(out, "=>") {
		t.Fatalf("expression output wrong. got=%q", out)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "let a = /x/g;")

	out, _, err := run(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("token count wrong. expected=6, got=%d (%q)", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "1:1\t") || !strings.HasSuffix(lines[0], "\t\"let\"") {
		t.Fatalf("first token wrong. got=%q", lines[0])
	}
	if !strings.HasSuffix(lines[3], "\t\"/x/g\"") {
		t.Fatalf("regex token wrong. got=%q", lines[3])
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.js", "let a = 1;")
	writeFile(t, dir, "types.ts", "let b: string = '';")
	writeFile(t, dir, "dup.js", "let c; let c;")

	out, _, err := run(t, "check", dir)
	if cli.ExitCode(err) != 1 {
		t.Fatalf("exit code wrong. expected=1, got=%d (%v)", cli.ExitCode(err), err)
	}
	if !strings.Contains(out, "1 error in 1 of 3 files") {
		t.Fatalf("summary missing. got=%q", out)
	}

	clean := t.TempDir()
	writeFile(t, clean, "ok.js", "let a = 1;")
	out, _, err = run(t, "check", clean)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "1 file checked, no errors") {
		t.Fatalf("summary wrong. got=%q", out)
	}
}

func TestCheckCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.js", "let a = 1;")
	writeFile(t, dir, "fatal.js", "let = = ;")
	writeFile(t, dir, "dup.js", "let c; let c;")

	out, _, err := run(t, "check", "--json", dir)
	if cli.ExitCode(err) != 1 {
		t.Fatalf("exit code wrong. expected=1, got=%d", cli.ExitCode(err))
	}

	var report struct {
		ID     string `json:"id"`
		Errors int    `json:"errors"`
		Files  []struct {
			Path        string `json:"path"`
			Error       string `json:"error"`
			Diagnostics []struct {
				Line   int    `json:"line"`
				Column int    `json:"column"`
				Length int    `json:"length"`
				Text   string `json:"text"`
			} `json:"diagnostics"`
		} `json:"files"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if report.ID == "" || report.Errors != 2 || len(report.Files) != 3 {
		t.Fatalf("report wrong. got=%+v", report)
	}

	dup := report.Files[0]
	if len(dup.Diagnostics) != 1 {
		t.Fatalf("dup.js diagnostics wrong. got=%+v", dup)
	}
	d := dup.Diagnostics[0]
	if d.Line != 1 || d.Column != 12 || d.Length != 1 || d.Text != "c" {
		t.Fatalf("dup.js diagnostic span wrong. got=%+v", d)
	}
	if report.Files[1].Error == "" {
		t.Fatalf("fatal.js should carry its error. got=%+v", report.Files[1])
	}
}

func TestFmtCommand(t *testing.T) {
	dir := t.TempDir()
	messy := writeFile(t, dir, "messy.js", "if(a){b}")
	tidy := writeFile(t, dir, "tidy.js", "a;\n")

	out, _, err := run(t, "fmt", "-l", dir)
	if err != nil {
		t.Fatalf("fmt -l failed: %v", err)
	}
	if out != messy+"\n" {
		t.Fatalf("listed files wrong. expected=%q, got=%q", messy+"\n", out)
	}

	if _, _, err := run(t, "fmt", "-w", messy, tidy); err != nil {
		t.Fatalf("fmt -w failed: %v", err)
	}
	data, err := os.ReadFile(messy)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "if (a) {\n  b;\n}\n" {
		t.Fatalf("rewritten file wrong. got=%q", string(data))
	}
}

func TestMissingConfig(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "check", "."})

	if err := root.Execute(); err == nil {
		t.Fatalf("missing config file should fail")
	}
}
