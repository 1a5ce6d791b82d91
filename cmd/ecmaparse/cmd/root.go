// Package cmd implements the ecmaparse subcommands.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/ecmaparse/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	cfgFile string
	verbose bool
}

// grammarFlags select the grammar on top of the loaded config.
type grammarFlags struct {
	typescript bool
	jsx        bool
	module     bool
}

func (g *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&g.typescript, "ts", false, "enable TypeScript syntax")
	cmd.Flags().BoolVar(&g.jsx, "jsx", false, "enable JSX syntax")
	cmd.Flags().BoolVar(&g.module, "module", false, "parse as a module")
}

func (g *grammarFlags) apply(cfg config.Config) config.Config {
	if g.typescript {
		cfg.Plugins.TypeScript = true
	}
	if g.jsx {
		cfg.Plugins.JSX = true
	}
	if g.module {
		cfg.SourceType = config.SourceModule
	}
	return cfg
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "ecmaparse",
		Short: "ECMAScript and TypeScript parser",
		Long: `ecmaparse parses JavaScript, TypeScript and JSX sources.

Configuration is read from --config, or from the nearest
.ecmaparse.toml / .ecmaparse.yaml above the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default: nearest .ecmaparse.toml or .ecmaparse.yaml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newParseCmd(flags),
		newTokensCmd(),
		newCheckCmd(flags),
		newFmtCmd(flags),
		newWatchCmd(flags),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads --config when given, otherwise the nearest config file,
// otherwise the defaults.
func (f *globalFlags) loadConfig() (config.Config, error) {
	path := f.cfgFile
	if path == "" {
		found, ok := config.Find(".")
		if !ok {
			return config.Default(), nil
		}
		path = found
	}
	return config.Load(path)
}

func (f *globalFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
