package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Monday 2022-01-03; week starting the prior Sunday 2022-01-02.
var monday = time.Date(2022, 1, 3, 16, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(monday.Year(), monday.Month(), monday.Day(), hour, min, 0, 0, time.UTC)
}

func span(name string, start, end time.Time, kind ActivityKind) Activity {
	return Activity{Name: name, Start: start, End: &end, Kind: kind}
}

func TestTodayStart(t *testing.T) {
	start := TodayStart(monday)
	assert.Equal(t, time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC), start)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		weekStart time.Weekday
		expected  time.Time
	}{
		{
			name:      "monday with sunday week start",
			now:       monday,
			weekStart: time.Sunday,
			expected:  time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday with monday week start collapses to today",
			now:       monday,
			weekStart: time.Monday,
			expected:  time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday with tuesday week start goes back six days",
			now:       monday,
			weekStart: time.Tuesday,
			expected:  time.Date(2021, 12, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "saturday with sunday week start",
			now:       time.Date(2022, 1, 8, 12, 0, 0, 0, time.UTC),
			weekStart: time.Sunday,
			expected:  time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStart(tt.now, tt.weekStart))
		})
	}
}

func TestWeekStartNeverExceedsSevenDays(t *testing.T) {
	for day := 0; day < 7; day++ {
		now := monday.AddDate(0, 0, day)
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			start := WeekStart(now, wd)
			assert.False(t, start.After(now), "week start after now for %v/%v", now, wd)
			assert.LessOrEqual(t, now.Sub(start), 8*24*time.Hour)
			assert.Equal(t, wd, start.Weekday())
		}
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name          string
		activities    []Activity
		expectedToday time.Duration
		expectedWeek  time.Duration
	}{
		{
			name:          "empty sequence",
			activities:    nil,
			expectedToday: 0,
			expectedWeek:  0,
		},
		{
			name: "work and break entries",
			activities: []Activity{
				span("project-x", at(9, 0), at(12, 30), KindWork),
				span("lunch", at(12, 30), at(13, 0), KindBreak),
				span("project-x", at(13, 0), at(16, 0), KindWork),
			},
			expectedToday: 6*time.Hour + 30*time.Minute,
			expectedWeek:  6*time.Hour + 30*time.Minute,
		},
		{
			name: "ignored activities never count",
			activities: []Activity{
				span("commute", at(8, 0), at(9, 0), KindIgnored),
				span("project-x", at(9, 0), at(10, 0), KindWork),
			},
			expectedToday: time.Hour,
			expectedWeek:  time.Hour,
		},
		{
			name: "yesterday's work counts toward the week only",
			activities: []Activity{
				span("project-x", monday.AddDate(0, 0, -1).Add(-6*time.Hour), monday.AddDate(0, 0, -1).Add(-2*time.Hour), KindWork),
				span("project-x", at(9, 0), at(10, 0), KindWork),
			},
			expectedToday: time.Hour,
			expectedWeek:  5 * time.Hour,
		},
		{
			name: "activity straddling week start is clipped",
			activities: []Activity{
				// Saturday 22:00 to Sunday 02:00; only the Sunday half is in window.
				span("night-shift", time.Date(2022, 1, 1, 22, 0, 0, 0, time.UTC), time.Date(2022, 1, 2, 2, 0, 0, 0, time.UTC), KindWork),
			},
			expectedToday: 0,
			expectedWeek:  2 * time.Hour,
		},
		{
			name: "activity straddling today's midnight is split",
			activities: []Activity{
				span("night-shift", at(0, 0).Add(-time.Hour), at(1, 0), KindWork),
			},
			expectedToday: time.Hour,
			expectedWeek:  2 * time.Hour,
		},
		{
			name: "activity entirely outside both windows",
			activities: []Activity{
				span("old-project", monday.AddDate(0, 0, -30), monday.AddDate(0, 0, -29), KindWork),
			},
			expectedToday: 0,
			expectedWeek:  0,
		},
		{
			name: "ongoing activity runs to now",
			activities: []Activity{
				{Name: "project-x", Start: at(15, 0), Kind: KindWork},
			},
			expectedToday: time.Hour,
			expectedWeek:  time.Hour,
		},
		{
			name: "end after now is clamped to now",
			activities: []Activity{
				span("project-x", at(15, 0), at(18, 0), KindWork),
			},
			expectedToday: time.Hour,
			expectedWeek:  time.Hour,
		},
		{
			name: "inverted span contributes zero",
			activities: []Activity{
				span("broken", at(12, 0), at(10, 0), KindWork),
				span("project-x", at(9, 0), at(10, 0), KindWork),
			},
			expectedToday: time.Hour,
			expectedWeek:  time.Hour,
		},
		{
			name: "overlapping work activities sum independently",
			activities: []Activity{
				span("project-x", at(9, 0), at(11, 0), KindWork),
				span("project-y", at(10, 0), at(11, 0), KindWork),
			},
			expectedToday: 3 * time.Hour,
			expectedWeek:  3 * time.Hour,
		},
		{
			name: "full week span splits across windows",
			activities: []Activity{
				// Exactly [week start, now].
				span("marathon", time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC), monday, KindWork),
			},
			expectedToday: 16 * time.Hour,
			expectedWeek:  40 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today, week := Aggregate(tt.activities, monday, time.Sunday)
			assert.Equal(t, tt.expectedToday, today, "workedToday mismatch")
			assert.Equal(t, tt.expectedWeek, week, "workedWeek mismatch")
			assert.GreaterOrEqual(t, week, time.Duration(0))
			assert.GreaterOrEqual(t, today, time.Duration(0))
		})
	}
}

func TestAggregateIgnoresNonWorkTimes(t *testing.T) {
	base := []Activity{
		span("project-x", at(9, 0), at(12, 0), KindWork),
	}
	noise := append([]Activity{}, base...)
	noise = append(noise,
		span("lunch", at(0, 0), at(23, 0), KindBreak),
		span("commute", monday.AddDate(0, 0, -3), monday, KindIgnored),
	)

	baseToday, baseWeek := Aggregate(base, monday, time.Sunday)
	noiseToday, noiseWeek := Aggregate(noise, monday, time.Sunday)
	assert.Equal(t, baseToday, noiseToday)
	assert.Equal(t, baseWeek, noiseWeek)
}

func TestAggregateIsIdempotent(t *testing.T) {
	activities := []Activity{
		span("project-x", at(9, 0), at(12, 30), KindWork),
		span("lunch", at(12, 30), at(13, 0), KindBreak),
		span("project-x", at(13, 0), at(16, 0), KindWork),
	}

	t1, w1 := Aggregate(activities, monday, time.Sunday)
	t2, w2 := Aggregate(activities, monday, time.Sunday)
	assert.Equal(t, t1, t2)
	assert.Equal(t, w1, w2)
}

func TestAggregateTodayNeverExceedsWeek(t *testing.T) {
	// All work inside [week start, now] implies workedToday <= workedWeek.
	activities := []Activity{
		span("a", time.Date(2022, 1, 2, 8, 0, 0, 0, time.UTC), time.Date(2022, 1, 2, 16, 0, 0, 0, time.UTC), KindWork),
		span("b", at(9, 0), at(12, 0), KindWork),
		span("c", at(13, 0), at(15, 30), KindWork),
	}

	today, week := Aggregate(activities, monday, time.Sunday)
	assert.LessOrEqual(t, today, week)
}
