package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test or subtest by the names of all its enclosing scopes.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// PrintResults writes a human-readable summary of a test run, listing every failed
// test with its errors.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		passColor.Fprintf(dest, "All tests passed (%d total)\n", len(results.Tests))
		return
	}
	failColor.Fprintf(dest, "FAILED TESTS (%d of %d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(dest, "  * %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(dest, "    %s\n", line)
			}
		}
	}
}

// PrintWarningSummary writes the warning log's per-severity totals followed by every
// critical entry, since those are the ones that should not go unread.
func PrintWarningSummary(dest io.Writer, log *WarningLog) {
	summary := log.Summary()
	if summary.Total() == 0 {
		return
	}
	warnColor.Fprintf(dest, "Warnings recorded during this run: %s\n", summary)
	for _, w := range log.BySeverity(SeverityCritical) {
		fmt.Fprintf(dest, "  ! %s: %s\n", w.TestName, w.Message)
	}
}
