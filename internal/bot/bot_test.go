package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mkrogh/ufc-weekly-bot/internal/event"
	"github.com/mkrogh/ufc-weekly-bot/internal/notifier"
	"github.com/mkrogh/ufc-weekly-bot/internal/source"
)

type fakeSource struct {
	events  []event.Event
	bouts   []event.Bout
	upErr   error
	cardErr error
}

func (f *fakeSource) Upcoming(ctx context.Context) ([]event.Event, error) {
	return f.events, f.upErr
}

func (f *fakeSource) FightCard(ctx context.Context, evt *event.Event) ([]event.Bout, error) {
	return f.bouts, f.cardErr
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(ctx context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, text)
	return nil
}

func newTestBot(src source.Source, n notifier.Notifier) *Bot {
	return New(src, []notifier.Notifier{n}, time.UTC)
}

func TestResolveAndPost(t *testing.T) {
	src := &fakeSource{
		events: []event.Event{
			{Title: "UFC 321", DateText: "November 22, 2025", Location: "Las Vegas"},
			{Title: "UFC 322", DateText: "December 06, 2025"},
		},
		bouts: []event.Bout{
			{SideA: "Alpha", SideB: "Bravo", WeightClass: "Lightweight"},
		},
	}
	sink := &fakeNotifier{}

	if err := newTestBot(src, sink).ResolveAndPost(context.Background()); err != nil {
		t.Fatalf("ResolveAndPost failed: %v", err)
	}

	if len(sink.messages) != 1 {
		t.Fatalf("expected 1 delivered message, got %d", len(sink.messages))
	}
	msg := sink.messages[0]
	if !strings.Contains(msg, "UFC 321") {
		t.Errorf("expected the first event, got:\n%s", msg)
	}
	if strings.Contains(msg, "UFC 322") {
		t.Errorf("later events must not be posted, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Alpha vs Bravo") {
		t.Errorf("expected the fight card, got:\n%s", msg)
	}
}

func TestResolveAndPostTransportFailure(t *testing.T) {
	wantErr := errors.New("connection refused")
	src := &fakeSource{upErr: wantErr}
	sink := &fakeNotifier{}

	err := newTestBot(src, sink).ResolveAndPost(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the underlying error to propagate, got %v", err)
	}

	if len(sink.messages) != 1 || sink.messages[0] != FallbackMessage {
		t.Fatalf("expected the fallback message, got %v", sink.messages)
	}
}

func TestResolveAndPostParseFailure(t *testing.T) {
	src := &fakeSource{upErr: &source.ParseError{Source: "ufcstats", Detail: "table missing"}}
	sink := &fakeNotifier{}

	if err := newTestBot(src, sink).ResolveAndPost(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if len(sink.messages) != 1 || sink.messages[0] != FallbackMessage {
		t.Fatalf("expected the fallback message, got %v", sink.messages)
	}
}

func TestResolveAndPostNoUpcomingEvent(t *testing.T) {
	src := &fakeSource{}
	sink := &fakeNotifier{}

	// No upcoming event is a normal outcome: its own message, no error.
	if err := newTestBot(src, sink).ResolveAndPost(context.Background()); err != nil {
		t.Fatalf("no upcoming event must not be an error, got %v", err)
	}
	if len(sink.messages) != 1 || sink.messages[0] != NoEventMessage {
		t.Fatalf("expected the no-event message, got %v", sink.messages)
	}
}

func TestResolveAndPostCardFailure(t *testing.T) {
	src := &fakeSource{
		events:  []event.Event{{Title: "UFC 321"}},
		cardErr: errors.New("timeout"),
	}
	sink := &fakeNotifier{}

	if err := newTestBot(src, sink).ResolveAndPost(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if len(sink.messages) != 1 || sink.messages[0] != FallbackMessage {
		t.Fatalf("expected the fallback message, got %v", sink.messages)
	}
}

func TestResolveAndPostEmptyCard(t *testing.T) {
	src := &fakeSource{events: []event.Event{{Title: "UFC 321", DateText: "November 22, 2025"}}}
	sink := &fakeNotifier{}

	// Zero parseable bouts degrades to "event found, card TBA".
	if err := newTestBot(src, sink).ResolveAndPost(context.Background()); err != nil {
		t.Fatalf("ResolveAndPost failed: %v", err)
	}
	if len(sink.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sink.messages))
	}
	if !strings.Contains(sink.messages[0], "UFC 321") {
		t.Errorf("expected the event header, got:\n%s", sink.messages[0])
	}
}

func TestResolveAndPostNotifierFailure(t *testing.T) {
	src := &fakeSource{events: []event.Event{{Title: "UFC 321"}}}
	failing := &fakeNotifier{err: errors.New("channel not found")}
	working := &fakeNotifier{}

	b := New(src, []notifier.Notifier{failing, working}, time.UTC)
	if err := b.ResolveAndPost(context.Background()); err == nil {
		t.Fatal("expected the delivery error to surface")
	}

	// A failing destination must not block the others.
	if len(working.messages) != 1 {
		t.Fatalf("expected delivery to the remaining notifier, got %d messages", len(working.messages))
	}
}
