package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary_Line(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		line    string
	}{
		{name: "nothing ran", summary: Summary{}, line: "All tests passed"},
		{name: "all passed", summary: Summary{Ran: 4}, line: "All tests passed"},
		{name: "only skipped", summary: Summary{Ran: 2, Skipped: 1}, line: "1 tests skipped"},
		{name: "only failed", summary: Summary{Ran: 2, Failed: 2}, line: "2 tests failed"},
		{name: "only crashed", summary: Summary{Ran: 1, Crashed: 1}, line: "1 tests crashed"},
		{name: "skipped and crashed", summary: Summary{Ran: 3, Skipped: 1, Crashed: 2}, line: "1 tests skipped, 2 tests crashed"},
		{name: "all categories", summary: Summary{Ran: 6, Skipped: 1, Failed: 2, Crashed: 3}, line: "1 tests skipped, 2 tests failed, 3 tests crashed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.line, tt.summary.Line())
		})
	}
}

func TestSummary_Record(t *testing.T) {
	var s Summary
	for _, outcome := range []Outcome{Passed, Skipped, Failed, Failed, Crashed, Passed} {
		s.record(Result{Outcome: outcome})
	}

	assert.Equal(t, 6, s.Ran)
	assert.Equal(t, 2, s.Passed())
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, 1, s.Crashed)
	assert.Len(t, s.Results, 6)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "passed", Passed.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "crashed", Crashed.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}
