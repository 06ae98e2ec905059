// Package bot wires the pipeline: fetch → parse → resolve → format →
// deliver, executed once per trigger.
//
// The pipeline is stateless; every invocation owns its own fetched bytes
// and parsed records, so a manual trigger overlapping a scheduled one is
// harmless beyond producing two messages. Transport and parse failures stop
// at this boundary: they are logged in full and converted into a single
// fallback message so a broken source can never take down the scheduler.
package bot

import (
	"context"
	"errors"
	"time"

	"github.com/mkrogh/ufc-weekly-bot/internal/event"
	"github.com/mkrogh/ufc-weekly-bot/internal/format"
	"github.com/mkrogh/ufc-weekly-bot/internal/logger"
	"github.com/mkrogh/ufc-weekly-bot/internal/notifier"
	"github.com/mkrogh/ufc-weekly-bot/internal/source"
)

const (
	// FallbackMessage is posted when the source cannot be fetched or
	// parsed. NoEventMessage is posted when the source parsed cleanly but
	// listed nothing upcoming; that is a normal outcome, not a failure.
	FallbackMessage = "Couldn't fetch the next UFC event right now. (The source might have changed.)"
	NoEventMessage  = "No upcoming UFC event found."
)

// Bot runs the posting pipeline against one source and a set of
// notification destinations.
type Bot struct {
	source    source.Source
	notifiers []notifier.Notifier
	loc       *time.Location
}

// New creates a Bot. loc is the timezone used when rendering structured
// event times.
func New(src source.Source, notifiers []notifier.Notifier, loc *time.Location) *Bot {
	return &Bot{source: src, notifiers: notifiers, loc: loc}
}

// ResolveAndPost executes the pipeline once. It always attempts a delivery,
// the resolved card on success or one of the fixed texts otherwise, and
// returns the underlying error so the manual trigger path can relay it.
func (b *Bot) ResolveAndPost(ctx context.Context) error {
	start := time.Now()
	events, err := b.source.Upcoming(ctx)
	logger.RecordTiming("pipeline.fetch", time.Since(start))
	if err != nil {
		logger.Error("resolving upcoming events failed", nil, err)
		logger.IncrCounter("pipeline.errors")
		b.deliver(ctx, FallbackMessage)
		return err
	}

	evt, err := event.NextUpcoming(events)
	if errors.Is(err, event.ErrNoUpcomingEvent) {
		logger.Info("no upcoming event listed", nil)
		return b.deliver(ctx, NoEventMessage)
	}

	bouts, err := b.source.FightCard(ctx, &evt)
	if err != nil {
		logger.Error("loading fight card failed", logger.Fields{
			"event": evt.Title,
		}, err)
		logger.IncrCounter("pipeline.errors")
		b.deliver(ctx, FallbackMessage)
		return err
	}
	evt.Bouts = bouts

	logger.Info("resolved next event", logger.Fields{
		"event": evt.Title,
		"date":  evt.DateText,
		"bouts": len(evt.Bouts),
	})

	return b.deliver(ctx, format.Message(evt, b.loc))
}

// deliver fans the text out to every notifier, logging and collecting
// individual failures rather than stopping at the first one.
func (b *Bot) deliver(ctx context.Context, text string) error {
	var errs []error
	for _, n := range b.notifiers {
		if err := n.Notify(ctx, text); err != nil {
			logger.Error("delivery failed", nil, err)
			logger.IncrCounter("posts.failed")
			errs = append(errs, err)
			continue
		}
		logger.IncrCounter("posts.sent")
	}
	return errors.Join(errs...)
}
