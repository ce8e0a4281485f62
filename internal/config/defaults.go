package config

import "harness/pkg/harness"

const (
	// DefaultNameWidth is the column outcome tags are aligned to
	DefaultNameWidth = harness.DefaultNameWidth
	// DefaultLogLevel is the logrus level used without --verbose
	DefaultLogLevel = "info"
	// DefaultEnvFile is the dotenv file read when present
	DefaultEnvFile = ".env"
)

// Environment variables read after the dotenv file is loaded.
const (
	EnvFilter    = "HARNESS_FILTER"
	EnvNameWidth = "HARNESS_NAME_WIDTH"
	EnvNoColor   = "HARNESS_NO_COLOR"
	EnvFailFast  = "HARNESS_FAIL_FAST"
	EnvLogLevel  = "HARNESS_LOG_LEVEL"
)
