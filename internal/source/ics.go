package source

import (
	"bytes"
	"context"
	"net/url"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/mkrogh/ufc-weekly-bot/internal/event"
	"github.com/mkrogh/ufc-weekly-bot/internal/fetch"
)

// Feed reads upcoming events from an iCalendar subscription. Feed entries
// carry no bout structure; the event body text travels in Description and
// is rendered verbatim by the formatter.
type Feed struct {
	fetcher fetch.Fetcher
	url     string
	now     func() time.Time
}

// NewFeed creates a Feed source for the given ICS URL.
func NewFeed(f fetch.Fetcher, feedURL string) *Feed {
	return &Feed{fetcher: f, url: feedURL, now: time.Now}
}

// Upcoming fetches the feed and returns its future events sorted by start
// time ascending. Components whose start is not strictly after the current
// instant are excluded outright, so a feed of only past events resolves to
// an empty sequence.
func (s *Feed) Upcoming(ctx context.Context) ([]event.Event, error) {
	body, err := s.fetcher.Get(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return parseFeed(body, s.now())
}

// FightCard is a no-op: calendar feeds carry no bout structure.
func (s *Feed) FightCard(ctx context.Context, evt *event.Event) ([]event.Bout, error) {
	return nil, nil
}

func parseFeed(body []byte, now time.Time) ([]event.Event, error) {
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Source: "ics", Detail: "decoding calendar", Err: err}
	}

	events := make([]event.Event, 0)
	for _, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil || !start.After(now) {
			continue
		}

		evt := event.Event{
			Title:     event.DefaultTitle,
			StartTime: start,
		}
		if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
			evt.Title = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
			evt.Location = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
			evt.Description = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
			evt.DetailURL = uidAsURL(p.Value)
		}

		events = append(events, evt)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}

// uidAsURL returns the UID when it is an absolute http(s) URL, which some
// feeds use as a stable event link. Any other UID shape yields no link.
func uidAsURL(uid string) string {
	u, err := url.Parse(uid)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return uid
}
