package balance

import "time"

// ActivityKind classifies how an activity counts toward worked time.
type ActivityKind int

const (
	KindWork ActivityKind = iota
	KindBreak
	KindIgnored
)

// String returns the lowercase name of the kind.
func (k ActivityKind) String() string {
	switch k {
	case KindWork:
		return "work"
	case KindBreak:
		return "break"
	case KindIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Activity is a single classified span of tracked time. A nil End means the
// activity is still ongoing and extends to the reference time of the
// computation. Activities are immutable inputs; nothing here mutates them.
type Activity struct {
	Name  string
	Start time.Time
	End   *time.Time
	Kind  ActivityKind
}

// Period identifies one of the two fixed reporting windows.
type Period int

const (
	PeriodDaily Period = iota
	PeriodWeekly
)

// String returns the capitalized name of the period.
func (p Period) String() string {
	switch p {
	case PeriodDaily:
		return "Daily"
	case PeriodWeekly:
		return "Weekly"
	default:
		return "Unknown"
	}
}

// Status classifies a balance relative to its target.
type Status int

const (
	StatusUnder Status = iota
	StatusAt
	StatusOver
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusUnder:
		return "under"
	case StatusAt:
		return "at"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// BalanceEntry is the evaluated balance for one period. Remaining is signed:
// negative means overtime.
type BalanceEntry struct {
	Period    Period
	Worked    time.Duration
	Remaining time.Duration
	Status    Status
}

// BalanceResult holds the daily and weekly entries, in that fixed order.
type BalanceResult struct {
	Daily  BalanceEntry
	Weekly BalanceEntry
}
