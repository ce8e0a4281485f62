package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"harness/internal/config"
	"harness/pkg/harness"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, runner *harness.Runner, logger *log.Logger) *Commands {
	return &Commands{
		Run:  NewRunCommand(cfg, runner, logger),
		List: NewListCommand(cfg, runner),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *Flags, cfg *config.Config, logger *log.Logger) {
	// Configuration is resolved once for whichever command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded

		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		logger.SetLevel(level)
		logger.WithFields(log.Fields{
			"config":   flags.ConfigFile,
			"env_file": flags.EnvFile,
			"filter":   cfg.Filter,
		}).Debug("Loaded configuration")
		return nil
	}

	pflags := rootCmd.PersistentFlags()
	pflags.StringVarP(&flags.Filter, "filter", "f", "", "Only run tests whose name starts with this prefix")
	pflags.BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failed or crashed test")
	pflags.BoolVar(&flags.NoColor, "no-color", false, "Disable coloured output")
	pflags.IntVar(&flags.NameWidth, "width", 0, fmt.Sprintf("Width of the test name column (default %d)", config.DefaultNameWidth))
	pflags.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pflags.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file")
	pflags.StringVar(&flags.EnvFile, "env-file", config.DefaultEnvFile, "Path to a dotenv file with HARNESS_* variables")

	// Running the root command without a subcommand runs the tests
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = c.Run.Execute

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [prefix]",
		Short: "Run registered tests",
		Long:  "Run the registered tests whose name starts with prefix, in registration order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Run.Execute,
	}
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List registered tests",
		Long:  "List the registered tests grouped by test group without running them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)
}
