package main

import (
	"os"

	"harness/internal/demo"
	"harness/pkg/cli"
	"harness/pkg/harness"
)

func main() {
	// Create the runner and register the test groups
	runner := harness.NewRunner()
	demo.Register(runner)

	os.Exit(cli.Execute(runner))
}
