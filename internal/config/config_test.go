package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.IsModule() {
		t.Fatalf("default config should be a script")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Supports(FeatureImportAttributes) {
		t.Fatalf("latest should support every feature")
	}
}

func TestVersionForms(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
		latest   bool
		wantErr  bool
	}{
		{"latest", 0, true, false},
		{"", 0, true, false},
		{"2020", 2020, false, false},
		{"es2021", 2021, false, false},
		{"ES2017", 2017, false, false},
		{"6", 2015, false, false},
		{"11", 2020, false, false},
		{"5", 0, false, true},
		{"abc", 0, false, true},
	}

	for i, tt := range tests {
		cfg := Config{SourceType: SourceScript, ECMAVersion: tt.input}
		v, err := cfg.Version()
		if tt.wantErr {
			if err == nil {
				t.Fatalf("tests[%d] - expected error for %q", i, tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error for %q: %v", i, tt.input, err)
		}
		if tt.latest {
			if v != nil {
				t.Fatalf("tests[%d] - expected latest, got=%s", i, v)
			}
			continue
		}
		if v.Major() != tt.expected {
			t.Fatalf("tests[%d] - version wrong. expected=%d, got=%d", i, tt.expected, v.Major())
		}
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		version  string
		feature  Feature
		expected bool
	}{
		{"2019", FeatureOptionalChaining, false},
		{"2020", FeatureOptionalChaining, true},
		{"2020", FeatureLogicalAssignment, false},
		{"2021", FeatureNumericSeparators, true},
		{"2021", FeatureClassFields, false},
		{"es2022", FeatureClassStaticBlock, true},
		{"2023", FeatureRegExpUnicodeSets, false},
		{"2024", FeatureRegExpUnicodeSets, true},
		{"2024", FeatureImportAttributes, false},
	}

	for i, tt := range tests {
		cfg := Config{ECMAVersion: tt.version}
		if got := cfg.Supports(tt.feature); got != tt.expected {
			t.Fatalf("tests[%d] - Supports(%s) at %s wrong. expected=%t, got=%t",
				i, tt.feature, tt.version, tt.expected, got)
		}
	}

	if FeatureClassFields.MinVersion() != "2022" {
		t.Fatalf("MinVersion wrong. got=%q", FeatureClassFields.MinVersion())
	}
}

func TestValidate(t *testing.T) {
	bad := Config{SourceType: "commonjs"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected invalid source type error")
	}
	bad = Config{SourceType: SourceModule, ECMAVersion: "es3"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected invalid version error")
	}
}

func TestLoadTOMLAndYAML(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "a.toml")
	tomlData := `source_type = "module"
ecma_version = "es2020"
allow_return_outside_function = true

[plugins]
typescript = true
`
	if err := os.WriteFile(tomlPath, []byte(tomlData), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load toml failed: %v", err)
	}
	if !cfg.IsModule() || cfg.ECMAVersion != "es2020" || !cfg.AllowReturnOutsideFunction || !cfg.Plugins.TypeScript {
		t.Fatalf("toml config wrong: %+v", cfg)
	}
	if !cfg.Plugins.Decorators {
		t.Fatalf("defaults not kept for missing fields: %+v", cfg)
	}

	yamlPath := filepath.Join(dir, "b.yaml")
	yamlData := "source_type: script\necma_version: \"2022\"\nplugins:\n  jsx: true\n"
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("Load yaml failed: %v", err)
	}
	if cfg.IsModule() || !cfg.Plugins.JSX || cfg.ECMAVersion != "2022" {
		t.Fatalf("yaml config wrong: %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "c.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte(`source_type = "amd"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, ok := Find(nested); ok {
		// a config above the temp dir would be found; only assert when absent
		t.Skip("config file present above temp dir")
	}

	want := filepath.Join(root, ".ecmaparse.yaml")
	if err := os.WriteFile(want, []byte("source_type: module\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := Find(nested)
	if !ok || got != want {
		t.Fatalf("Find wrong. expected=%q, got=%q (%t)", want, got, ok)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		path       string
		sourceType string
		typeScript bool
		jsx        bool
	}{
		{"a.js", SourceScript, false, false},
		{"a.mjs", SourceModule, false, false},
		{"a.cjs", SourceScript, false, false},
		{"a.jsx", SourceScript, false, true},
		{"a.ts", SourceScript, true, false},
		{"a.mts", SourceModule, true, false},
		{"dir/A.TSX", SourceScript, true, true},
		{"README.md", SourceScript, false, false},
	}

	for i, tt := range tests {
		cfg := Default().ForFile(tt.path)
		if cfg.SourceType != tt.sourceType {
			t.Fatalf("tests[%d] - %s: source type wrong. expected=%q, got=%q", i, tt.path, tt.sourceType, cfg.SourceType)
		}
		if cfg.Plugins.TypeScript != tt.typeScript || cfg.Plugins.JSX != tt.jsx {
			t.Fatalf("tests[%d] - %s: plugins wrong. expected=(%t, %t), got=(%t, %t)",
				i, tt.path, tt.typeScript, tt.jsx, cfg.Plugins.TypeScript, cfg.Plugins.JSX)
		}
	}

	if IsSourceFile("notes.txt") || !IsSourceFile("x.tsx") {
		t.Fatalf("IsSourceFile misclassified extensions")
	}
}
