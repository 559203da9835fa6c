package config

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8.0, cfg.DailyHours)
	assert.Equal(t, 40.0, cfg.WeeklyHours)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, "table", cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Weekday
		expectError bool
	}{
		{name: "sunday", input: "sunday", expected: time.Sunday},
		{name: "monday", input: "monday", expected: time.Monday},
		{name: "mixed case", input: "Friday", expected: time.Friday},
		{name: "surrounding whitespace", input: " saturday ", expected: time.Saturday},
		{name: "abbreviation rejected", input: "mon", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseWeekday(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, day)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero targets are valid", mutate: func(c *Config) { c.DailyHours = 0; c.WeeklyHours = 0 }},
		{name: "negative targets are valid", mutate: func(c *Config) { c.DailyHours = -1 }},
		{name: "nan daily target", mutate: func(c *Config) { c.DailyHours = math.NaN() }, expectError: true},
		{name: "infinite weekly target", mutate: func(c *Config) { c.WeeklyHours = math.Inf(1) }, expectError: true},
		{name: "bad week start", mutate: func(c *Config) { c.WeekStart = "someday" }, expectError: true},
		{name: "bad output format", mutate: func(c *Config) { c.Output = "xml" }, expectError: true},
		{name: "empty log dir", mutate: func(c *Config) { c.LogDir = "" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
