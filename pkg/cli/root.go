// Package cli builds the command line for a binary that registers test
// groups with a harness.Runner:
//
//	func main() {
//		runner := harness.NewRunner()
//		harness.Register(runner, harness.Named("parser.empty", (*ParserGroup).TestEmpty))
//		os.Exit(cli.Execute(runner))
//	}
package cli

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"harness/internal/config"
	"harness/pkg/harness"
)

var version = "dev"

// NewRootCommand creates the command tree around runner.
func NewRootCommand(runner *harness.Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "harness [prefix]",
		Short:   "Run registered unit tests",
		Long:    `Run the unit tests registered with this binary, optionally only those whose name starts with a prefix. The exit status is non-zero when any test failed.`,
		Version: version,

		// Execute prints errors itself so failed runs don't print twice.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags Flags

	logger := log.New()
	logger.SetOutput(os.Stderr)

	cmds := NewCommands(cfg, runner, logger)
	cmds.Register(rootCmd, &flags, cfg, logger)

	return rootCmd
}

// Execute runs the command line against os.Args and returns the process exit
// code: 0 when no test failed, 1 otherwise.
func Execute(runner *harness.Runner) int {
	return ExitCode(NewRootCommand(runner).Execute())
}

// ExitCode maps the error returned by the root command to an exit code,
// printing errors other than failed tests.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var failed *FailedError
	if !errors.As(err, &failed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}
