package source

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mkrogh/ufc-weekly-bot/internal/event"
	"github.com/mkrogh/ufc-weekly-bot/internal/fetch"
	"github.com/mkrogh/ufc-weekly-bot/internal/logger"
)

// UpcomingURL is the UFCStats listing of upcoming events, soonest first.
const UpcomingURL = "https://ufcstats.com/statistics/events/upcoming"

// Selectors for the fight card page. The primary set matches the clickable
// bout rows of the event table; the fallback set matches the older
// per-fight detail blocks and is only consulted when the primary yields
// nothing.
const (
	boutRowSelector      = "tr.b-fight-details__table-row.b-fight-details__table-row__hover.js-fight-details-click"
	boutWeightSelector   = "td.b-fight-details__table-col"
	fighterLinkSelector  = "a.b-link.b-link_style_black"
	fallbackBoutSelector = "div.b-fight-details__fight"
)

// UFCStats scrapes ufcstats.com for the upcoming event list and per-event
// fight cards.
type UFCStats struct {
	fetcher fetch.Fetcher
	url     string
}

// NewUFCStats creates a UFCStats source reading from UpcomingURL.
func NewUFCStats(f fetch.Fetcher) *UFCStats {
	return &UFCStats{fetcher: f, url: UpcomingURL}
}

// Upcoming fetches and parses the upcoming-events table. The table lists
// events chronologically, so the first returned event is the next one.
func (s *UFCStats) Upcoming(ctx context.Context) ([]event.Event, error) {
	body, err := s.fetcher.Get(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return parseUpcoming(body)
}

func parseUpcoming(body []byte) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Source: "ufcstats", Detail: "reading document", Err: err}
	}

	table := doc.Find("table.b-statistics__table-events").First()
	if table.Length() == 0 {
		return nil, &ParseError{Source: "ufcstats", Detail: "upcoming events table not found"}
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		return nil, &ParseError{Source: "ufcstats", Detail: "no event rows in upcoming table"}
	}

	events := make([]event.Event, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a").First()
		title := strings.TrimSpace(link.Text())
		detailURL, _ := link.Attr("href")
		dateText := strings.TrimSpace(row.Find("td:nth-of-type(2)").Text())
		location := strings.TrimSpace(row.Find("td:nth-of-type(3)").Text())

		// The table pads with an empty spacer row; skip anything that
		// yields neither a title nor a date.
		if title == "" && dateText == "" {
			return
		}

		events = append(events, event.New(title, dateText, location, detailURL))
	})

	return events, nil
}

// FightCard fetches the event detail page and parses its bout rows in card
// order. An event without a detail URL, or a page with zero parseable
// bouts, degrades to an empty card rather than an error.
func (s *UFCStats) FightCard(ctx context.Context, evt *event.Event) ([]event.Bout, error) {
	if evt.DetailURL == "" {
		return nil, nil
	}
	body, err := s.fetcher.Get(ctx, evt.DetailURL)
	if err != nil {
		return nil, err
	}
	return parseFightCard(body)
}

func parseFightCard(body []byte) ([]event.Bout, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Source: "ufcstats", Detail: "reading document", Err: err}
	}

	bouts := make([]event.Bout, 0)
	doc.Find(boutRowSelector).Each(func(_ int, row *goquery.Selection) {
		weight := strings.TrimSpace(row.Find(boutWeightSelector).First().Text())

		// Each fighter's name link appears several times per row, once per
		// nested info block. Keep the first two distinct names in
		// first-seen order.
		names := make([]string, 0, 4)
		row.Find(fighterLinkSelector).Each(func(_ int, a *goquery.Selection) {
			names = append(names, strings.TrimSpace(a.Text()))
		})
		fighters := distinctNames(names)
		if len(fighters) < 2 {
			return
		}
		bouts = append(bouts, event.Bout{
			WeightClass: weight,
			SideA:       fighters[0],
			SideB:       fighters[1],
		})
	})

	if len(bouts) > 0 {
		return bouts, nil
	}

	// Fallback for the alternate markup shape. Logged when it produces
	// bouts so selector drift on the site stays observable.
	doc.Find(fallbackBoutSelector).Each(func(_ int, fight *goquery.Selection) {
		weight := strings.TrimSpace(fight.Find("i.b-fight-details__fight-title").First().Text())

		names := make([]string, 0, 2)
		fight.Find("div.b-fight-details__person a").Each(func(_ int, a *goquery.Selection) {
			names = append(names, strings.TrimSpace(a.Text()))
		})
		fighters := distinctNames(names)
		if len(fighters) < 2 {
			return
		}
		bouts = append(bouts, event.Bout{
			WeightClass: weight,
			SideA:       fighters[0],
			SideB:       fighters[1],
		})
	})

	if len(bouts) > 0 {
		logger.Warn("fight card parsed via fallback selectors", logger.Fields{
			"bouts": len(bouts),
		})
	}

	return bouts, nil
}

// distinctNames drops empty strings and repeated occurrences while
// preserving first-seen order.
func distinctNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
