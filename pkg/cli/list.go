package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"harness/internal/config"
	"harness/pkg/harness"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	runner *harness.Runner
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, runner *harness.Runner) *ListCommand {
	return &ListCommand{
		config: cfg,
		runner: runner,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests := lc.runner.Select(lc.config.GetFilter(args))
	out := cmd.OutOrStdout()

	p := newPalette(lc.config.Color)
	if len(tests) == 0 {
		p.warn.Fprintln(out, "No tests found")
		return nil
	}

	printTestTree(out, tests, p)
	return nil
}

type palette struct {
	header *color.Color
	group  *color.Color
	test   *color.Color
	warn   *color.Color
}

func newPalette(colored bool) palette {
	p := palette{
		header: color.New(color.FgGreen),
		group:  color.New(color.FgCyan),
		test:   color.New(color.FgYellow),
		warn:   color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.header, p.group, p.test, p.warn} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// groupedTests keeps groups in the order their first test was registered.
type groupedTests struct {
	name  string
	tests []harness.Test
}

func groupTests(tests []harness.Test) []groupedTests {
	var groups []groupedTests
	index := make(map[string]int)
	for _, test := range tests {
		i, ok := index[test.GroupName]
		if !ok {
			i = len(groups)
			index[test.GroupName] = i
			groups = append(groups, groupedTests{name: test.GroupName})
		}
		groups[i].tests = append(groups[i].tests, test)
	}
	return groups
}

// printTestTree prints tests as a tree of groups and test names.
func printTestTree(out io.Writer, tests []harness.Test, p palette) {
	groups := groupTests(tests)
	p.header.Fprintf(out, "Found %d test(s) in %d group(s):\n\n", len(tests), len(groups))

	for i, group := range groups {
		isLastGroup := i == len(groups)-1
		if isLastGroup {
			p.group.Fprintf(out, "└── %s\n", group.name)
		} else {
			p.group.Fprintf(out, "├── %s\n", group.name)
		}

		for j, test := range group.tests {
			isLastTest := j == len(group.tests)-1

			var prefix string
			if isLastGroup {
				if isLastTest {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastTest {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Fprintf(out, "%s%s\n", prefix, p.test.Sprint(test.Name))
		}
	}
}
