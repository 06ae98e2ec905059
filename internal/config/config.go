// Package config loads and validates the bot's YAML configuration.
//
// The file carries only non-secret settings: the event source, the weekly
// schedule, and the destination channel ID. Credentials (Discord bot token,
// Twitter keys) come from environment variables and never touch the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mkrogh/ufc-weekly-bot/internal/schedule"
)

// Source kinds selectable in configuration.
const (
	SourceUFCStats = "ufcstats"
	SourceICS      = "ics"
)

// SourceConfig selects which parser variant feeds the pipeline.
type SourceConfig struct {
	// Kind is "ufcstats" or "ics".
	Kind string `yaml:"kind"`
	// URL is the feed endpoint for the ics kind. The ufcstats kind reads
	// the fixed upcoming-events URL and ignores this field.
	URL string `yaml:"url,omitempty"`
}

// ScheduleConfig is the weekly posting slot.
type ScheduleConfig struct {
	// Weekday is a lowercase English weekday name, e.g. "friday".
	Weekday string `yaml:"weekday"`
	Hour    int    `yaml:"hour"`
	Minute  int    `yaml:"minute"`
	// Timezone is an IANA zone identifier, e.g. "Europe/Copenhagen".
	Timezone string `yaml:"timezone"`
}

// DiscordConfig identifies the destination channel. The bot token is read
// from the DISCORD_TOKEN environment variable, not from this file.
type DiscordConfig struct {
	ChannelID string `yaml:"channel_id"`
}

// Config is the top-level application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Discord  DiscordConfig  `yaml:"discord"`

	// TwitterMirror enables cross-posting the weekly message to Twitter,
	// using credentials from the environment.
	TwitterMirror bool `yaml:"twitter_mirror"`
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

// Default returns the built-in configuration: scrape UFCStats and post
// Fridays at 12:00 Copenhagen time.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Kind: SourceUFCStats,
		},
		Schedule: ScheduleConfig{
			Weekday:  "friday",
			Hour:     12,
			Minute:   0,
			Timezone: "Europe/Copenhagen",
		},
	}
}

// Load reads configuration from the given YAML path. An empty path yields
// the defaults. Values from the file overlay the defaults, so omitted keys
// keep their built-in values. DISCORD_CHANNEL_ID, when set, overrides the
// file's channel ID.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if env := os.Getenv("DISCORD_CHANNEL_ID"); env != "" {
		cfg.Discord.ChannelID = env
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize lowercases the enumerated fields so the validation and lookup
// maps only deal with one spelling.
func (c *Config) Normalize() {
	c.Source.Kind = strings.ToLower(strings.TrimSpace(c.Source.Kind))
	c.Schedule.Weekday = strings.ToLower(strings.TrimSpace(c.Schedule.Weekday))
}

// Validate checks every field the rest of the program consumes as
// already-validated.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceUFCStats:
	case SourceICS:
		if c.Source.URL == "" {
			return errors.New("source.url is required for the ics source")
		}
	default:
		return fmt.Errorf("unknown source.kind %q (want %q or %q)",
			c.Source.Kind, SourceUFCStats, SourceICS)
	}

	if _, ok := weekdays[c.Schedule.Weekday]; !ok {
		return fmt.Errorf("unknown schedule.weekday %q", c.Schedule.Weekday)
	}
	if c.Schedule.Hour < 0 || c.Schedule.Hour > 23 {
		return fmt.Errorf("schedule.hour %d out of range 0-23", c.Schedule.Hour)
	}
	if c.Schedule.Minute < 0 || c.Schedule.Minute > 59 {
		return fmt.Errorf("schedule.minute %d out of range 0-59", c.Schedule.Minute)
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("loading schedule.timezone %q: %w", c.Schedule.Timezone, err)
	}

	return nil
}

// ScheduleSpec converts the validated schedule settings into the
// scheduler's spec.
func (c *Config) ScheduleSpec() (schedule.Spec, error) {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return schedule.Spec{}, fmt.Errorf("loading timezone: %w", err)
	}
	return schedule.Spec{
		Weekday: weekdays[c.Schedule.Weekday],
		Hour:    c.Schedule.Hour,
		Minute:  c.Schedule.Minute,
		Loc:     loc,
	}, nil
}
