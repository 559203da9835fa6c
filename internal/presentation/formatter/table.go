package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/worktrack/go-work-balance/internal/balance"
	"github.com/worktrack/go-work-balance/internal/util"
)

// TableFormatter renders the balance report as a bordered terminal table.
type TableFormatter struct {
	headers []string
}

// NewTableFormatter creates a table formatter with the standard columns.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"", "Worked", "Remaining"},
	}
}

// Format writes the bordered table. Worked and Remaining cells are
// color-coded by status when the report enables color.
func (f *TableFormatter) Format(w io.Writer, report *BalanceReport) error {
	widths := f.calculateColumnWidths(report)

	f.printBorder(w, widths, "top")
	f.printRow(w, []cell{{text: f.headers[0]}, {text: f.headers[1]}, {text: f.headers[2]}}, widths)
	f.printBorder(w, widths, "middle")

	for _, row := range report.Rows {
		cells := []cell{
			{text: row.Label},
			{text: util.FormatDuration(row.Worked), color: statusColor(row.Status, report.Colored)},
			{text: util.FormatDuration(row.Remaining), color: statusColor(row.Status, report.Colored)},
		}
		f.printRow(w, cells, widths)
	}

	f.printBorder(w, widths, "bottom")
	return nil
}

type cell struct {
	text  string
	color string
}

// statusColor maps a balance status to its ANSI color: green under target,
// yellow exactly at it, red over it.
func statusColor(status balance.Status, colored bool) string {
	if !colored {
		return ""
	}
	switch status {
	case balance.StatusUnder:
		return util.ColorGreen
	case balance.StatusAt:
		return util.ColorYellow
	case balance.StatusOver:
		return util.ColorRed
	default:
		return ""
	}
}

// calculateColumnWidths determines the width for each column based on content
func (f *TableFormatter) calculateColumnWidths(report *BalanceReport) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, row := range report.Rows {
		values := []string{
			row.Label,
			util.FormatDuration(row.Worked),
			util.FormatDuration(row.Remaining),
		}
		for i, value := range values {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(w io.Writer, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	fmt.Fprint(w, left)
	for i, width := range widths {
		fmt.Fprint(w, strings.Repeat("─", width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			fmt.Fprint(w, middle)
		}
	}
	fmt.Fprintln(w, right)
}

// printRow prints one row; the label column is left-aligned, duration
// columns right-aligned. Padding is computed on the plain text so ANSI
// color codes do not skew the widths.
func (f *TableFormatter) printRow(w io.Writer, cells []cell, widths []int) {
	fmt.Fprint(w, "│")
	for i, c := range cells {
		padding := widths[i] - util.GetDisplayWidth(c.text)
		if padding < 0 {
			padding = 0
		}

		text := c.text
		if c.color != "" {
			text = c.color + text + util.ColorReset
		}

		if i == 0 {
			fmt.Fprintf(w, " %s%s │", text, strings.Repeat(" ", padding))
		} else {
			fmt.Fprintf(w, " %s%s │", strings.Repeat(" ", padding), text)
		}
	}
	fmt.Fprintln(w)
}
