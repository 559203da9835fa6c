package formatter

import (
	"encoding/csv"
	"io"

	"github.com/worktrack/go-work-balance/internal/util"
)

// CSVFormatter renders the balance report as CSV rows.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, report *BalanceReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	headers := []string{"Period", "Worked", "Remaining", "Target", "Status"}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := []string{
			row.Label,
			util.FormatDuration(row.Worked),
			util.FormatDuration(row.Remaining),
			util.FormatDuration(row.Target),
			row.Status.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
