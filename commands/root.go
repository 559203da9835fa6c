package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/worktrack/go-work-balance/internal/config"
	"github.com/worktrack/go-work-balance/internal/report"
	"github.com/worktrack/go-work-balance/internal/util"
)

var (
	// Logging related
	debug bool

	// Config file path
	configFile string

	// Data path
	logDir string

	// Targets
	dailyHours  float64
	weeklyHours float64
	weekStart   string

	// Output related
	outputFormat string
	timezone     string
	noColor      bool
	watch        bool

	rootCmd = &cobra.Command{
		Use:   "go-work-balance [flags]",
		Short: "Work time balance reporting tool",
		Long: `go-work-balance reads time tracking log files and reports worked time
for today and the current week against configurable daily and weekly targets.

Examples:
  go-work-balance                                  # Report with default targets (8h/40h)
  go-work-balance --daily-hrs 7.5 --weekly-hrs 37.5 # Custom targets
  go-work-balance --week-start monday              # Week starts on Monday
  go-work-balance --dir /path/to/logs              # Read logs from specified directory
  go-work-balance --output json                    # Output in JSON format
  go-work-balance --watch                          # Re-render on log file changes`,
		RunE: runBalance,
	}
)

const (
	defaultLogFile    = "~/.go-work-balance/logs/app.log"
	defaultConfigFile = "~/.go-work-balance/config.yaml"
)

func init() {
	// Targets
	rootCmd.Flags().Float64Var(&dailyHours, "daily-hrs", 8,
		"Daily work target in hours")
	rootCmd.Flags().Float64Var(&weeklyHours, "weekly-hrs", 40,
		"Weekly work target in hours")
	rootCmd.Flags().StringVar(&weekStart, "week-start", "sunday",
		"First day of the week (monday..sunday)")

	// Input data configuration
	rootCmd.PersistentFlags().StringVar(&logDir, "dir", "",
		"Time log directory path (default ~/.go-work-balance/log)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", defaultConfigFile,
		"Config file path")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "",
		"Alias for --output")
	rootCmd.Flags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Re-render the report whenever a log file changes")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runBalance(cmd *cobra.Command, args []string) error {
	// Determine log level based on debug flag
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	// Handle format alias
	if format := cmd.Flags().Lookup("format"); format != nil && format.Changed {
		outputFormat = format.Value.String()
	}

	// Initialize logging
	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)

	// Layer configuration: defaults, config file, environment, then any
	// flags the user actually set.
	path := configFile
	if env := os.Getenv("WORKBAL_CONFIG"); env != "" && !cmd.Flags().Changed("config") {
		path = env
	}
	cfg, err := config.Load(expandPath(path))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return err
	}

	weekStartDay, err := cfg.WeekStartDay()
	if err != nil {
		return err
	}

	reportConfig := &report.Config{
		LogDir:       expandPath(cfg.LogDir),
		OutputFormat: cfg.Output,
		DailyTarget:  util.HoursToDuration(cfg.DailyHours),
		WeeklyTarget: util.HoursToDuration(cfg.WeeklyHours),
		WeekStartDay: weekStartDay,
		Concurrency:  runtime.NumCPU(),
		Colored:      !cfg.NoColor && util.IsTerminal(),
	}

	if watch {
		return report.Watch(reportConfig)
	}
	return report.New(reportConfig).Run()
}

// applyFlagOverrides copies flag values the user set explicitly over the
// layered config so command-line always wins.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("daily-hrs") {
		cfg.DailyHours = dailyHours
	}
	if flags.Changed("weekly-hrs") {
		cfg.WeeklyHours = weeklyHours
	}
	if flags.Changed("week-start") {
		cfg.WeekStart = weekStart
	}
	if flags.Changed("dir") {
		cfg.LogDir = logDir
	}
	if flags.Changed("output") || flags.Changed("format") {
		cfg.Output = outputFormat
	}
	if flags.Changed("timezone") {
		cfg.Timezone = timezone
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColor
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
