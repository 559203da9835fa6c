package formatter

import (
	"encoding/json"
	"io"
	"time"

	"github.com/worktrack/go-work-balance/internal/util"
)

// JSONFormatter renders the balance report as indented JSON.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonEntry struct {
	Period           string `json:"period"`
	Worked           string `json:"worked"`
	WorkedSeconds    int64  `json:"workedSeconds"`
	Remaining        string `json:"remaining"`
	RemainingSeconds int64  `json:"remainingSeconds"`
	Target           string `json:"target"`
	Status           string `json:"status"`
}

type jsonReport struct {
	GeneratedAt time.Time   `json:"generatedAt"`
	WeekStart   string      `json:"weekStart"`
	Entries     []jsonEntry `json:"entries"`
}

func (f *JSONFormatter) Format(w io.Writer, report *BalanceReport) error {
	out := jsonReport{
		GeneratedAt: report.GeneratedAt,
		WeekStart:   report.WeekStartDay.String(),
	}

	for _, row := range report.Rows {
		out.Entries = append(out.Entries, jsonEntry{
			Period:           row.Label,
			Worked:           util.FormatDuration(row.Worked),
			WorkedSeconds:    int64(row.Worked.Seconds()),
			Remaining:        util.FormatDuration(row.Remaining),
			RemainingSeconds: int64(row.Remaining.Seconds()),
			Target:           util.FormatDuration(row.Target),
			Status:           row.Status.String(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
