package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/worktrack/go-work-balance/internal/balance"
	"github.com/worktrack/go-work-balance/internal/core/model"
	"github.com/worktrack/go-work-balance/internal/util"
)

// Builder turns raw log entries into classified activities. An entry
// records the moment an activity ended, so each activity spans two
// consecutive entries and takes the later entry's name and kind.
type Builder struct{}

// NewBuilder creates a timeline Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build sorts entries chronologically across files and pairs them into
// activities. Entries with unparseable timestamps are dropped with a
// warning. The open span after the last entry is not emitted: its name is
// unknown until the next entry is logged.
func (b *Builder) Build(entries []model.TimeEntry) []balance.Activity {
	type stamped struct {
		entry model.TimeEntry
		at    time.Time
	}

	stampedEntries := make([]stamped, 0, len(entries))
	for _, entry := range entries {
		at, err := entry.ParseTimestamp()
		if err != nil {
			util.LogWarn(fmt.Sprintf("Drop entry with invalid timestamp %q (%s): %v", entry.Timestamp, entry.Name, err))
			continue
		}
		stampedEntries = append(stampedEntries, stamped{entry: entry, at: at})
	}

	sort.SliceStable(stampedEntries, func(i, j int) bool {
		return stampedEntries[i].at.Before(stampedEntries[j].at)
	})

	if len(stampedEntries) < 2 {
		return nil
	}

	activities := make([]balance.Activity, 0, len(stampedEntries)-1)
	for i := 1; i < len(stampedEntries); i++ {
		prev := stampedEntries[i-1]
		next := stampedEntries[i]

		end := next.at
		activities = append(activities, balance.Activity{
			Name:  next.entry.CleanName(),
			Start: prev.at,
			End:   &end,
			Kind:  next.entry.Kind(),
		})
	}

	return activities
}
