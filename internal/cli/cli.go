// Package cli wires configuration, source, notifiers, and scheduler into
// the ufc-weekly-bot command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkrogh/ufc-weekly-bot/internal/bot"
	"github.com/mkrogh/ufc-weekly-bot/internal/config"
	"github.com/mkrogh/ufc-weekly-bot/internal/fetch"
	"github.com/mkrogh/ufc-weekly-bot/internal/logger"
	"github.com/mkrogh/ufc-weekly-bot/internal/notifier"
	"github.com/mkrogh/ufc-weekly-bot/internal/schedule"
	"github.com/mkrogh/ufc-weekly-bot/internal/source"
)

const ExitError = 1

var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ufc-weekly-bot",
		Short: "Post the next upcoming UFC event to a Discord channel",
		Long: `A bot that resolves the next upcoming UFC event and posts a compact
summary (event name, date, location, fight card) to a Discord channel,
either on a weekly schedule or on demand.`,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (built-in defaults when omitted)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newPostCmd())

	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the weekly scheduler until interrupted",
		RunE:  runDaemon,
	}
}

func newPostCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Resolve and post the next event once, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the message instead of sending it")
	return cmd
}

func setup(dryRun bool) (*bot.Bot, *config.Config, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	fetcher := fetch.New()
	var src source.Source
	switch cfg.Source.Kind {
	case config.SourceICS:
		src = source.NewFeed(fetcher, cfg.Source.URL)
	default:
		src = source.NewUFCStats(fetcher)
	}

	notifiers, err := buildNotifiers(cfg, dryRun)
	if err != nil {
		return nil, nil, err
	}

	// Validated by config.Load; cannot fail here.
	loc, _ := time.LoadLocation(cfg.Schedule.Timezone)

	return bot.New(src, notifiers, loc), cfg, nil
}

func buildNotifiers(cfg *config.Config, dryRun bool) ([]notifier.Notifier, error) {
	if dryRun {
		return []notifier.Notifier{notifier.NewDryRunNotifier()}, nil
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}
	if cfg.Discord.ChannelID == "" {
		return nil, fmt.Errorf("discord.channel_id (or DISCORD_CHANNEL_ID) is required")
	}

	dn, err := notifier.NewDiscordNotifier(token, cfg.Discord.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("initializing Discord notifier: %w", err)
	}
	notifiers := []notifier.Notifier{dn}

	if cfg.TwitterMirror {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return nil, fmt.Errorf("initializing Twitter mirror: %w", err)
		}
		notifiers = append(notifiers, tw)
	}

	return notifiers, nil
}

func runDaemon(cmd *cobra.Command, args []string) error {
	b, cfg, err := setup(false)
	if err != nil {
		return err
	}

	spec, err := cfg.ScheduleSpec()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("scheduler starting", logger.Fields{
		"weekday":  cfg.Schedule.Weekday,
		"time":     fmt.Sprintf("%02d:%02d", cfg.Schedule.Hour, cfg.Schedule.Minute),
		"timezone": cfg.Schedule.Timezone,
		"source":   cfg.Source.Kind,
	})

	err = schedule.New(spec, b.ResolveAndPost).Run(ctx)
	if err == context.Canceled {
		logger.Info("scheduler stopped", logger.Fields(logger.MetricsSnapshot()))
		return nil
	}
	return err
}

func runOnce(dryRun bool) error {
	b, _, err := setup(dryRun)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.ResolveAndPost(ctx); err != nil {
		return fmt.Errorf("posting update: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
