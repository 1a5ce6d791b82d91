// Command ecmaparse parses ECMAScript and TypeScript sources and reports
// their syntax errors.
package main

import (
	"log"
	"os"

	"github.com/orizon-lang/ecmaparse/cmd/ecmaparse/cmd"
	"github.com/orizon-lang/ecmaparse/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ecmaparse: ")

	if err := cmd.Execute(); err != nil {
		if _, reported := err.(*cli.ExitError); !reported {
			log.Print(err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
