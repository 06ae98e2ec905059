package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Source.Kind != SourceUFCStats {
		t.Errorf("unexpected default source kind: %q", cfg.Source.Kind)
	}
	if cfg.Schedule.Weekday != "friday" || cfg.Schedule.Hour != 12 || cfg.Schedule.Minute != 0 {
		t.Errorf("unexpected default schedule: %+v", cfg.Schedule)
	}
	if cfg.Schedule.Timezone != "Europe/Copenhagen" {
		t.Errorf("unexpected default timezone: %q", cfg.Schedule.Timezone)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
schedule:
  weekday: Saturday
  hour: 18
discord:
  channel_id: "42"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Schedule.Weekday != "saturday" {
		t.Errorf("weekday not normalized: %q", cfg.Schedule.Weekday)
	}
	if cfg.Schedule.Hour != 18 {
		t.Errorf("unexpected hour: %d", cfg.Schedule.Hour)
	}
	// Omitted keys keep their defaults.
	if cfg.Schedule.Timezone != "Europe/Copenhagen" {
		t.Errorf("omitted timezone lost its default: %q", cfg.Schedule.Timezone)
	}
	if cfg.Discord.ChannelID != "42" {
		t.Errorf("unexpected channel ID: %q", cfg.Discord.ChannelID)
	}
}

func TestLoadEnvChannelOverride(t *testing.T) {
	path := writeConfig(t, `
discord:
  channel_id: "42"
`)
	t.Setenv("DISCORD_CHANNEL_ID", "99")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Discord.ChannelID != "99" {
		t.Errorf("env override not applied: %q", cfg.Discord.ChannelID)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
	}{
		{"unknown source kind", func(c *Config) { c.Source.Kind = "espn" }},
		{"ics without url", func(c *Config) { c.Source.Kind = SourceICS; c.Source.URL = "" }},
		{"unknown weekday", func(c *Config) { c.Schedule.Weekday = "fredag" }},
		{"hour too large", func(c *Config) { c.Schedule.Hour = 24 }},
		{"negative minute", func(c *Config) { c.Schedule.Minute = -1 }},
		{"bad timezone", func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			cfg.Normalize()
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestScheduleSpec(t *testing.T) {
	cfg := Default()
	cfg.Schedule.Weekday = "saturday"
	cfg.Schedule.Hour = 9
	cfg.Schedule.Minute = 30

	spec, err := cfg.ScheduleSpec()
	if err != nil {
		t.Fatalf("ScheduleSpec failed: %v", err)
	}
	if spec.Weekday != time.Saturday || spec.Hour != 9 || spec.Minute != 30 {
		t.Errorf("unexpected spec: %+v", spec)
	}
	if spec.Loc == nil || spec.Loc.String() != "Europe/Copenhagen" {
		t.Errorf("unexpected location: %v", spec.Loc)
	}
}
