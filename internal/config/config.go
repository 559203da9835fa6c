package config

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Config holds the resolved settings for a balance run.
type Config struct {
	DailyHours  float64 `koanf:"daily_hrs"`
	WeeklyHours float64 `koanf:"weekly_hrs"`
	WeekStart   string  `koanf:"week_start"`
	LogDir      string  `koanf:"dir"`
	Output      string  `koanf:"output"`
	Timezone    string  `koanf:"timezone"`
	NoColor     bool    `koanf:"no_color"`
}

// Default returns the built-in configuration: an 8 hour day, a 40 hour week
// starting on Sunday.
func Default() *Config {
	return &Config{
		DailyHours:  8,
		WeeklyHours: 40,
		WeekStart:   "sunday",
		LogDir:      "~/.go-work-balance/log",
		Output:      "table",
		Timezone:    "Local",
	}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a case-insensitive weekday name.
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("invalid week start day '%s' (expected monday..sunday)", name)
	}
	return day, nil
}

// WeekStartDay returns the configured week start as a time.Weekday.
func (c *Config) WeekStartDay() (time.Weekday, error) {
	return ParseWeekday(c.WeekStart)
}

// Validate checks the configuration for values that cannot be acted on.
func (c *Config) Validate() error {
	if math.IsNaN(c.DailyHours) || math.IsInf(c.DailyHours, 0) {
		return fmt.Errorf("daily_hrs must be a finite number, got %v", c.DailyHours)
	}
	if math.IsNaN(c.WeeklyHours) || math.IsInf(c.WeeklyHours, 0) {
		return fmt.Errorf("weekly_hrs must be a finite number, got %v", c.WeeklyHours)
	}
	if _, err := c.WeekStartDay(); err != nil {
		return err
	}
	switch c.Output {
	case "table", "json", "csv", "summary":
	default:
		return fmt.Errorf("unknown output format '%s' (expected table, json, csv or summary)", c.Output)
	}
	if c.LogDir == "" {
		return fmt.Errorf("log directory must not be empty")
	}
	return nil
}
