package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dataheck/tickload/pkg/tickload"
)

var (
	summarySuccess = lipgloss.Color("#00CC66")
	summaryWarn    = lipgloss.Color("#FFAA00")
	summaryMuted   = lipgloss.Color("#666666")

	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryGoodStyle  = lipgloss.NewStyle().Foreground(summarySuccess).Bold(true)
	summaryWarnStyle  = lipgloss.NewStyle().Foreground(summaryWarn).Bold(true)
	summaryMutedStyle = lipgloss.NewStyle().Foreground(summaryMuted)
)

// printSummary renders the final run report to stderr. Stdout stays clean for
// pipeline consumption.
func printSummary(report tickload.LoadReport) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, summaryTitleStyle.Render(fmt.Sprintf("Run %s", report.RunID)))

	fmt.Fprintf(os.Stderr, "  Candidates  %d\n", report.Candidates)
	fmt.Fprintf(os.Stderr, "  Loaded      %s\n", summaryGoodStyle.Render(fmt.Sprintf("%d", report.Loaded)))

	skipStyle := summaryMutedStyle
	if report.Skipped > 0 {
		skipStyle = summaryWarnStyle
	}
	fmt.Fprintf(os.Stderr, "  Skipped     %s\n", skipStyle.Render(fmt.Sprintf("%d", report.Skipped)))

	abandonStyle := summaryMutedStyle
	if report.Abandoned > 0 {
		abandonStyle = summaryWarnStyle
	}
	fmt.Fprintf(os.Stderr, "  Abandoned   %s\n", abandonStyle.Render(fmt.Sprintf("%d", report.Abandoned)))

	fmt.Fprintf(os.Stderr, "  Rows        %d inserted, %d duplicates\n", report.Rows, report.Duplicates)
	fmt.Fprintf(os.Stderr, "  Elapsed     %s\n", report.Elapsed.Round(time.Millisecond))
}
