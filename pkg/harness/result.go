package harness

import (
	"fmt"
	"strings"
	"time"

	"harness/pkg/assert"
)

// Outcome is the terminal state of a single test.
type Outcome int

const (
	Passed Outcome = iota
	Skipped
	Failed
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	case Crashed:
		return "crashed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result represents the outcome of running one test
type Result struct {
	Name     string
	Outcome  Outcome
	Message  string          // Assertion message or crash description
	Location assert.Location // Where the failing check or stub was called
	Duration time.Duration
}

// Summary holds the counts for one run. Nothing carries over between runs.
type Summary struct {
	Ran      int
	Skipped  int
	Failed   int
	Crashed  int
	Results  []Result
	Duration time.Duration
}

// Passed returns the number of tests that ran without a signal.
func (s Summary) Passed() int {
	return s.Ran - s.Skipped - s.Failed - s.Crashed
}

// Line returns the one-line summary printed after a run.
func (s Summary) Line() string {
	if s.Skipped == 0 && s.Failed == 0 && s.Crashed == 0 {
		return "All tests passed"
	}

	var parts []string
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d tests skipped", s.Skipped))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d tests failed", s.Failed))
	}
	if s.Crashed > 0 {
		parts = append(parts, fmt.Sprintf("%d tests crashed", s.Crashed))
	}
	return strings.Join(parts, ", ")
}

func (s *Summary) record(r Result) {
	s.Ran++
	switch r.Outcome {
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	case Crashed:
		s.Crashed++
	}
	s.Results = append(s.Results, r)
}
