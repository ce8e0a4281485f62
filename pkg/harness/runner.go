package harness

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"harness/pkg/assert"
)

// DefaultNameWidth is the column the outcome tags are aligned to.
const DefaultNameWidth = 76

// Runner owns the registered groups and their tests and executes them one
// after another. A Runner is not safe for concurrent use.
type Runner struct {
	instances []Group
	groups    []registration
	tests     []Test

	out       io.Writer
	log       log.FieldLogger
	source    *SourceReader
	nameWidth int
	colored   bool
	failFast  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where the report is written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger log.FieldLogger) Option {
	return func(r *Runner) { r.log = logger }
}

// WithSourceFs sets the filesystem failing source lines are read from.
func WithSourceFs(fs afero.Fs) Option {
	return func(r *Runner) { r.source = NewSourceReader(fs) }
}

// WithNameWidth sets the width of the test name column.
func WithNameWidth(width int) Option {
	return func(r *Runner) {
		if width > 0 {
			r.nameWidth = width
		}
	}
}

// WithColor turns coloured outcome tags on or off.
func WithColor(enabled bool) Option {
	return func(r *Runner) { r.colored = enabled }
}

// WithFailFast stops a run after the first failed or crashed test.
func WithFailFast(enabled bool) Option {
	return func(r *Runner) { r.failFast = enabled }
}

// NewRunner creates an empty Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		out:       os.Stdout,
		log:       log.StandardLogger(),
		source:    NewSourceReader(nil),
		nameWidth: DefaultNameWidth,
		colored:   !color.NoColor,
	}
	r.Apply(opts...)
	return r
}

// Apply changes the configuration of an existing Runner.
func (r *Runner) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(r)
	}
}

// Tests returns the registered tests in registration order.
func (r *Runner) Tests() []Test {
	tests := make([]Test, len(r.tests))
	copy(tests, r.tests)
	return tests
}

// Select returns the registered tests whose name starts with filter.
func (r *Runner) Select(filter string) []Test {
	return FilterByPrefix(r.tests, filter)
}

// Run executes the tests selected by filter and returns how many failed.
// Skipped and crashed tests don't count.
func (r *Runner) Run(filter string) int {
	return r.Execute(filter).Failed
}

// Execute runs the tests selected by filter and returns the run summary.
func (r *Runner) Execute(filter string) Summary {
	// Registrations are logged per run, through the logger in effect now.
	for _, g := range r.groups {
		r.log.WithFields(log.Fields{
			"group": g.name,
			"tests": g.tests,
		}).Debug("Registered test group")
	}

	selected := r.Select(filter)
	r.log.WithFields(log.Fields{
		"filter":     filter,
		"selected":   len(selected),
		"registered": len(r.tests),
	}).Debug("Selected tests")

	rep := newReporter(r.out, r.nameWidth, r.colored)
	rep.header(len(selected))

	var summary Summary
	startTime := time.Now()
	for _, test := range selected {
		rep.name(test.Name)
		result := r.runTest(test)
		summary.record(result)
		rep.outcome(result, r.context(result))

		if r.failFast && (result.Outcome == Failed || result.Outcome == Crashed) {
			r.log.WithField("test", test.Name).Debug("Stopping run after first failure")
			break
		}
	}
	summary.Duration = time.Since(startTime)

	rep.summary(summary)
	return summary
}

func (r *Runner) runTest(test Test) Result {
	start := time.Now()
	result := classify(test.Name, test.invoke())
	result.Duration = time.Since(start)
	return result
}

// context returns the source line of a failed check, or "" when it can't be
// read.
func (r *Runner) context(result Result) string {
	if result.Outcome != Failed || result.Location.IsZero() {
		return ""
	}
	line, ok := r.source.Line(result.Location.File, result.Location.Line)
	if !ok {
		r.log.WithField("location", result.Location).Debug("No source context for failure")
		return ""
	}
	return line
}

// classify maps the value a test panicked with to its outcome.
func classify(name string, sig any) Result {
	result := Result{Name: name, Outcome: Passed}
	if sig == nil {
		return result
	}

	err, ok := sig.(error)
	if !ok {
		result.Outcome = Crashed
		result.Message = fmt.Sprint(sig)
		return result
	}

	var stub *assert.NotImplementedError
	var failure *assert.AssertionError
	switch {
	case errors.As(err, &stub):
		result.Outcome = Skipped
		result.Location = stub.Location
	case errors.As(err, &failure):
		result.Outcome = Failed
		result.Message = failure.Message
		result.Location = failure.Location
	default:
		result.Outcome = Crashed
		result.Message = err.Error()
	}
	return result
}
