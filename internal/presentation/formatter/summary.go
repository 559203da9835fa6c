package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/worktrack/go-work-balance/internal/balance"
	"github.com/worktrack/go-work-balance/internal/util"
)

// SummaryFormatter renders the balance report as a plain text summary.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format writes the sectioned summary report.
func (f *SummaryFormatter) Format(w io.Writer, report *BalanceReport) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Work Time Balance Report")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Week starts: %s\n", report.WeekStartDay)
	fmt.Fprintln(w)

	for _, row := range report.Rows {
		fmt.Fprintf(w, "%s:\n", row.Label)
		fmt.Fprintf(w, "  Worked:    %s\n", util.FormatDuration(row.Worked))
		fmt.Fprintf(w, "  Target:    %s\n", util.FormatDuration(row.Target))
		fmt.Fprintf(w, "  Remaining: %s\n", util.FormatDuration(row.Remaining))
		fmt.Fprintf(w, "  Status:    %s\n", statusLabel(row.Status))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	return nil
}

func statusLabel(status balance.Status) string {
	switch status {
	case balance.StatusUnder:
		return "under target"
	case balance.StatusAt:
		return "at target"
	case balance.StatusOver:
		return "over target"
	default:
		return "unknown"
	}
}
