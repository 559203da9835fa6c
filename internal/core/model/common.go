package model

// Entry name markers
const (
	// HelloEntryName marks the start of a tracked day; the span before it is
	// untracked and never counts as worked time.
	HelloEntryName = "hello"

	// BreakSuffix marks an entry as a break (e.g. "lunch**").
	BreakSuffix = "**"

	// IgnoredSuffix marks an entry as ignored time (e.g. "commute***").
	IgnoredSuffix = "***"
)

// FileEvent describes a change to a watched log file.
type FileEvent struct {
	Path      string
	Operation string
}
