package report

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/worktrack/go-work-balance/internal/balance"
	"github.com/worktrack/go-work-balance/internal/core/model"
	"github.com/worktrack/go-work-balance/internal/core/timeline"
	"github.com/worktrack/go-work-balance/internal/data/parser"
	"github.com/worktrack/go-work-balance/internal/data/scanner"
	"github.com/worktrack/go-work-balance/internal/presentation/formatter"
	"github.com/worktrack/go-work-balance/internal/util"
)

// Config holds everything a single balance run needs.
type Config struct {
	LogDir       string
	OutputFormat string
	DailyTarget  time.Duration
	WeeklyTarget time.Duration
	WeekStartDay time.Weekday
	Concurrency  int
	Colored      bool

	// Writer receives the formatted report; defaults to stdout.
	Writer io.Writer
	// NowFunc supplies the reference time; defaults to the timezone-aware
	// time provider.
	NowFunc func() time.Time
}

// Reporter computes and renders one balance report per Run call. It holds
// no state between runs beyond the parser's file memo.
type Reporter struct {
	config  *Config
	scanner *scanner.FileScanner
	parser  *parser.Parser
	builder *timeline.Builder
	writer  io.Writer
	now     func() time.Time
}

// New creates a Reporter from the given config.
func New(config *Config) *Reporter {
	if config.Concurrency == 0 {
		config.Concurrency = runtime.NumCPU()
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stdout
	}

	now := config.NowFunc
	if now == nil {
		now = util.GetTimeProvider().Now
	}

	return &Reporter{
		config:  config,
		scanner: scanner.NewFileScanner(config.LogDir),
		parser:  parser.NewParser(config.Concurrency),
		builder: timeline.NewBuilder(),
		writer:  writer,
		now:     now,
	}
}

// Run executes one balance computation: scan, parse, build the timeline,
// aggregate, evaluate, render.
func (r *Reporter) Run() error {
	startTime := time.Now()
	now := r.now()

	// Phase 1: Scan files
	scanStart := time.Now()
	files, err := r.scanner.Scan()
	if err != nil {
		return fmt.Errorf("failed to scan log directory: %w", err)
	}
	scanDuration := time.Since(scanStart)
	util.LogDebug(fmt.Sprintf("Phase 1 - File scan duration: %v, found %d files", scanDuration, len(files)))

	// Phase 2: Parse entries
	parseStart := time.Now()
	var entries []model.TimeEntry
	for result := range r.parser.ParseFiles(files) {
		if result.Error != nil {
			util.LogWarn(fmt.Sprintf("Failed to parse file %s: %v", result.File, result.Error))
			continue
		}
		entries = append(entries, result.Entries...)
	}
	parseDuration := time.Since(parseStart)
	util.LogDebug(fmt.Sprintf("Phase 2 - Parse duration: %v, total entries: %d", parseDuration, len(entries)))

	// Phase 3: Build activity timeline
	buildStart := time.Now()
	activities := r.builder.Build(entries)
	buildDuration := time.Since(buildStart)
	util.LogDebug(fmt.Sprintf("Phase 3 - Timeline build duration: %v, activities: %d", buildDuration, len(activities)))

	// Phase 4: Aggregate worked time
	workedToday, workedWeek := balance.Aggregate(activities, now, r.config.WeekStartDay)
	util.LogDebug(fmt.Sprintf("Phase 4 - Aggregated worked time: today=%v week=%v", workedToday, workedWeek))

	// Phase 5: Evaluate against targets
	result := balance.Evaluate(workedToday, workedWeek, r.config.DailyTarget, r.config.WeeklyTarget)

	// Phase 6: Format and output
	view := formatter.NewReport(result, now, r.config.WeekStartDay,
		r.config.DailyTarget, r.config.WeeklyTarget, r.config.Colored)
	err = r.formatAndOutput(view)

	totalDuration := time.Since(startTime)
	util.LogDebug(fmt.Sprintf("Total duration: %v (scan:%v parse:%v build:%v)",
		totalDuration, scanDuration, parseDuration, buildDuration))

	return err
}

func (r *Reporter) formatAndOutput(view *formatter.BalanceReport) error {
	switch r.config.OutputFormat {
	case "json":
		return formatter.NewJSONFormatter().Format(r.writer, view)
	case "csv":
		return formatter.NewCSVFormatter().Format(r.writer, view)
	case "summary":
		return formatter.NewSummaryFormatter().Format(r.writer, view)
	default:
		return formatter.NewTableFormatter().Format(r.writer, view)
	}
}
