// Package config holds the parse configuration: source type, target
// ECMAScript version and grammar plugins.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	semver "github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Source types
const (
	SourceScript = "script"
	SourceModule = "module"
)

// LatestVersion accepts every supported feature.
const LatestVersion = "latest"

// FileNames are the config files looked up by Find, in order.
var FileNames = []string{".ecmaparse.toml", ".ecmaparse.yaml", ".ecmaparse.yml"}

// Plugins enables grammar extensions
type Plugins struct {
	TypeScript       bool `toml:"typescript" yaml:"typescript" json:"typescript"`
	JSX              bool `toml:"jsx" yaml:"jsx" json:"jsx"`
	ImportAttributes bool `toml:"import_attributes" yaml:"import_attributes" json:"importAttributes"`
	Decorators       bool `toml:"decorators" yaml:"decorators" json:"decorators"`
}

// Config holds the parse configuration
type Config struct {
	SourceType  string `toml:"source_type" yaml:"source_type" json:"sourceType"`
	ECMAVersion string `toml:"ecma_version" yaml:"ecma_version" json:"ecmaVersion"`

	AllowReturnOutsideFunction    bool `toml:"allow_return_outside_function" yaml:"allow_return_outside_function" json:"allowReturnOutsideFunction"`
	AllowAwaitOutsideFunction     bool `toml:"allow_await_outside_function" yaml:"allow_await_outside_function" json:"allowAwaitOutsideFunction"`
	AllowNewTargetOutsideFunction bool `toml:"allow_new_target_outside_function" yaml:"allow_new_target_outside_function" json:"allowNewTargetOutsideFunction"`
	AllowUndeclaredExports        bool `toml:"allow_undeclared_exports" yaml:"allow_undeclared_exports" json:"allowUndeclaredExports"`

	Plugins Plugins `toml:"plugins" yaml:"plugins" json:"plugins"`
}

// Default returns a script configuration targeting the latest version with
// decorators and import attributes enabled.
func Default() Config {
	return Config{
		SourceType:  SourceScript,
		ECMAVersion: LatestVersion,
		Plugins: Plugins{
			ImportAttributes: true,
			Decorators:       true,
		},
	}
}

// IsModule reports whether the source is parsed as a module.
func (c Config) IsModule() bool {
	return c.SourceType == SourceModule
}

// Validate checks the source type and version string.
func (c Config) Validate() error {
	switch c.SourceType {
	case "", SourceScript, SourceModule:
	default:
		return fmt.Errorf("invalid source type %q: expected %q or %q", c.SourceType, SourceScript, SourceModule)
	}
	if _, err := c.Version(); err != nil {
		return err
	}

	return nil
}

// Fingerprint returns a stable string identifying the settings that
// influence parse results.
func (c Config) Fingerprint() string {
	return fmt.Sprintf("%s|%s|%t%t%t%t|%t%t%t%t",
		c.SourceType, c.ECMAVersion,
		c.AllowReturnOutsideFunction, c.AllowAwaitOutsideFunction,
		c.AllowNewTargetOutsideFunction, c.AllowUndeclaredExports,
		c.Plugins.TypeScript, c.Plugins.JSX, c.Plugins.ImportAttributes, c.Plugins.Decorators)
}

// SourceExtensions are the file extensions parsed by the batch and watch
// commands.
var SourceExtensions = []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".mts", ".cts", ".tsx"}

// IsSourceFile reports whether path has one of SourceExtensions.
func IsSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ForFile adjusts c for the extension of path: .mjs/.mts are modules,
// .cjs/.cts scripts, .ts files enable TypeScript, .jsx and .tsx enable JSX.
// Other extensions return c unchanged.
func (c Config) ForFile(path string) Config {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mjs":
		c.SourceType = SourceModule
	case ".cjs":
		c.SourceType = SourceScript
	case ".jsx":
		c.Plugins.JSX = true
	case ".ts":
		c.Plugins.TypeScript = true
	case ".mts":
		c.Plugins.TypeScript = true
		c.SourceType = SourceModule
	case ".cts":
		c.Plugins.TypeScript = true
		c.SourceType = SourceScript
	case ".tsx":
		c.Plugins.TypeScript = true
		c.Plugins.JSX = true
	}
	return c
}

// Load reads a configuration file. The format is chosen by extension:
// .toml, or .yaml/.yml. Fields missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Find searches dir and its parents for a config file and returns its path.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range FileNames {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Version returns the configured ECMAScript version as a year, or nil for
// "latest". Accepted forms: "latest", "2022", "es2022", "ES2022" and the
// edition numbers "6" through "16".
func (c Config) Version() (*semver.Version, error) {
	raw := strings.ToLower(strings.TrimSpace(c.ECMAVersion))
	if raw == "" || raw == LatestVersion || raw == "esnext" {
		return nil, nil
	}
	raw = strings.TrimPrefix(raw, "es")

	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid ECMAScript version %q: %w", c.ECMAVersion, err)
	}
	if v.Major() >= 6 && v.Major() < 2000 {
		// edition number: ES6 is ES2015
		v = semver.New(2009+v.Major(), 0, 0, "", "")
	}
	if v.Major() < 2015 {
		return nil, fmt.Errorf("unsupported ECMAScript version %q: 2015 or later is required", c.ECMAVersion)
	}

	return v, nil
}
