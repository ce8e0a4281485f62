package harness

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	nameIndent = "    "
	infoIndent = "        "
	separator  = "-----------------------"
)

// reporter writes the per-test lines and the run summary.
type reporter struct {
	w     io.Writer
	width int

	ok      *color.Color
	skipped *color.Color
	failed  *color.Color
	crashed *color.Color
}

func newReporter(w io.Writer, width int, colored bool) *reporter {
	rep := &reporter{
		w:       w,
		width:   width,
		ok:      color.New(color.FgGreen),
		skipped: color.New(color.FgBlue),
		failed:  color.New(color.FgYellow),
		crashed: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{rep.ok, rep.skipped, rep.failed, rep.crashed} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return rep
}

func (rep *reporter) header(count int) {
	fmt.Fprintf(rep.w, "\nRunning %d tests\n\n", count)
}

// name prints the test name padded or cut to the name column.
func (rep *reporter) name(name string) {
	fmt.Fprint(rep.w, padColumn(nameIndent+name, rep.width))
}

// outcome prints the outcome tag and, for failures and crashes, the details.
// context is the source line of a failed check, empty when unavailable.
func (rep *reporter) outcome(result Result, context string) {
	switch result.Outcome {
	case Passed:
		rep.ok.Fprintln(rep.w, "   OK   ")
	case Skipped:
		rep.skipped.Fprintln(rep.w, " SKIPPED")
	case Failed:
		rep.failed.Fprintln(rep.w, " FAILED ")
		fmt.Fprintf(rep.w, "%s%s\n", infoIndent, result.Message)
		if !result.Location.IsZero() {
			fmt.Fprintf(rep.w, "%s%s\n", infoIndent, result.Location)
			if line := strings.TrimSpace(context); line != "" {
				fmt.Fprintf(rep.w, "%s%s\n\n", infoIndent, line)
			}
		}
	case Crashed:
		rep.crashed.Fprintln(rep.w, " CRASHED")
		fmt.Fprintf(rep.w, "%s%s\n", infoIndent, result.Message)
	}
}

func (rep *reporter) summary(s Summary) {
	fmt.Fprintln(rep.w, separator)
	fmt.Fprintf(rep.w, "%s\n\n", s.Line())
}

// padColumn pads s with spaces to width runes, or cuts it to width.
func padColumn(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}
