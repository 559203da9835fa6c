package formatter

import (
	"io"
	"time"

	"github.com/worktrack/go-work-balance/internal/balance"
)

// BalanceRow is one rendered line of the balance report.
type BalanceRow struct {
	Label     string
	Worked    time.Duration
	Remaining time.Duration
	Target    time.Duration
	Status    balance.Status
}

// BalanceReport is the presentation view of a balance result: the daily row
// first, the weekly row second.
type BalanceReport struct {
	GeneratedAt  time.Time
	WeekStartDay time.Weekday
	Rows         []BalanceRow
	Colored      bool
}

// Formatter renders a balance report to a writer.
type Formatter interface {
	Format(w io.Writer, report *BalanceReport) error
}

// NewReport builds the presentation view from an evaluated balance result.
func NewReport(result balance.BalanceResult, now time.Time, weekStartDay time.Weekday, dailyTarget, weeklyTarget time.Duration, colored bool) *BalanceReport {
	return &BalanceReport{
		GeneratedAt:  now,
		WeekStartDay: weekStartDay,
		Colored:      colored,
		Rows: []BalanceRow{
			{
				Label:     "Today",
				Worked:    result.Daily.Worked,
				Remaining: result.Daily.Remaining,
				Target:    dailyTarget,
				Status:    result.Daily.Status,
			},
			{
				Label:     "Since " + weekStartDay.String(),
				Worked:    result.Weekly.Worked,
				Remaining: result.Weekly.Remaining,
				Target:    weeklyTarget,
				Status:    result.Weekly.Status,
			},
		},
	}
}
