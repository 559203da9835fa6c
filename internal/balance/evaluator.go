package balance

import "time"

// Evaluate computes the remaining time and status for both periods.
// remaining = target - worked, unclamped, so overtime shows up as a
// negative remainder. The function is total: zero or negative targets are
// legal inputs and produce well-defined statuses.
func Evaluate(workedToday, workedWeek, dailyTarget, weeklyTarget time.Duration) BalanceResult {
	return BalanceResult{
		Daily:  evaluatePeriod(PeriodDaily, workedToday, dailyTarget),
		Weekly: evaluatePeriod(PeriodWeekly, workedWeek, weeklyTarget),
	}
}

func evaluatePeriod(period Period, worked, target time.Duration) BalanceEntry {
	remaining := target - worked

	var status Status
	switch {
	case remaining == 0:
		status = StatusAt
	case remaining < 0:
		status = StatusOver
	default:
		status = StatusUnder
	}

	return BalanceEntry{
		Period:    period,
		Worked:    worked,
		Remaining: remaining,
		Status:    status,
	}
}
