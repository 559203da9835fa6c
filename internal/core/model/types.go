package model

import (
	"strings"
	"time"

	"github.com/worktrack/go-work-balance/internal/balance"
)

// TimeEntry is one line of the work log: the moment an activity ended and
// what it was. The span of the activity runs from the previous entry's
// timestamp to this one.
type TimeEntry struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Comment   string `json:"comment,omitempty"`
}

// ParseTimestamp parses the entry timestamp as RFC3339.
func (e TimeEntry) ParseTimestamp() (time.Time, error) {
	return time.Parse(time.RFC3339, e.Timestamp)
}

// Kind classifies the entry name: a trailing "***" marks ignored time, a
// trailing "**" marks a break, and the day-start marker never counts as
// worked time. Everything else is working time.
func (e TimeEntry) Kind() balance.ActivityKind {
	name := strings.TrimSpace(e.Name)
	switch {
	case strings.HasSuffix(name, IgnoredSuffix):
		return balance.KindIgnored
	case strings.HasSuffix(name, BreakSuffix):
		return balance.KindBreak
	case name == HelloEntryName:
		return balance.KindIgnored
	default:
		return balance.KindWork
	}
}

// CleanName returns the entry name with any classification suffix removed.
func (e TimeEntry) CleanName() string {
	name := strings.TrimSpace(e.Name)
	name = strings.TrimSuffix(name, IgnoredSuffix)
	name = strings.TrimSuffix(name, BreakSuffix)
	return strings.TrimSpace(name)
}
