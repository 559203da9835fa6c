package balance

import "time"

// TodayStart returns midnight of now's calendar date, in now's location.
func TodayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// WeekStart returns midnight of the most recent date at or before now whose
// weekday equals weekStart. When now itself falls on the week-start weekday
// the weekly window collapses onto the daily one.
func WeekStart(now time.Time, weekStart time.Weekday) time.Time {
	daysBack := (int(now.Weekday()) - int(weekStart) + 7) % 7
	return TodayStart(now).AddDate(0, 0, -daysBack)
}

// Aggregate sums the worked portions of activities that overlap the daily
// and weekly windows ending at now. Only KindWork activities contribute;
// breaks and ignored spans are skipped outright. Activities need not be
// sorted or non-overlapping, and an activity never contributes time past
// now. Both sums are always >= 0.
func Aggregate(activities []Activity, now time.Time, weekStart time.Weekday) (workedToday, workedWeek time.Duration) {
	todayStart := TodayStart(now)
	wkStart := WeekStart(now, weekStart)

	for _, a := range activities {
		switch a.Kind {
		case KindWork:
			// counted below
		case KindBreak, KindIgnored:
			continue
		default:
			continue
		}

		end := now
		if a.End != nil && a.End.Before(now) {
			end = *a.End
		}

		workedToday += overlap(a.Start, end, todayStart, now)
		workedWeek += overlap(a.Start, end, wkStart, now)
	}

	return workedToday, workedWeek
}

// overlap returns the duration of the intersection of [start, end] with
// [windowStart, windowEnd], clamped to zero for empty or inverted spans.
func overlap(start, end, windowStart, windowEnd time.Time) time.Duration {
	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
