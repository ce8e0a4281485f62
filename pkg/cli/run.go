package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"harness/internal/config"
	"harness/pkg/harness"
)

// FailedError is returned by the run command when tests failed.
type FailedError struct {
	Count int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%d tests failed", e.Count)
}

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	runner *harness.Runner
	log    *log.Logger
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, runner *harness.Runner, logger *log.Logger) *RunCommand {
	return &RunCommand{
		config: cfg,
		runner: runner,
		log:    logger,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	rc.runner.Apply(
		harness.WithOutput(cmd.OutOrStdout()),
		harness.WithLogger(rc.log),
		harness.WithColor(rc.config.Color),
		harness.WithNameWidth(rc.config.NameWidth),
		harness.WithFailFast(rc.config.FailFast),
	)

	filter := rc.config.GetFilter(args)
	summary := rc.runner.Execute(filter)

	rc.log.WithFields(log.Fields{
		"ran":      summary.Ran,
		"passed":   summary.Passed(),
		"skipped":  summary.Skipped,
		"failed":   summary.Failed,
		"crashed":  summary.Crashed,
		"duration": summary.Duration,
	}).Debug("Run finished")

	if summary.Failed > 0 {
		return &FailedError{Count: summary.Failed}
	}
	return nil
}
