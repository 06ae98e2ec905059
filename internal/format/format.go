// Package format renders an event into the bounded plain-text message that
// gets posted to the channel. Rendering is pure: no I/O, no clock.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkrogh/ufc-weekly-bot/internal/event"
)

// MaxBoutLines caps the rendered fight card. Cards longer than this get a
// trailing "…and N more bouts" summary line, which keeps the message well
// under any chat platform's length ceiling.
const MaxBoutLines = 8

// Message renders an event and its bouts. The output is a header block
// (title, date, location, link) followed by either the fight card, the
// feed description verbatim, or nothing.
func Message(evt event.Event, loc *time.Location) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s**\n", evt.Title)
	fmt.Fprintf(&b, "📅 %s", dateLine(evt, loc))
	if evt.Location != "" {
		fmt.Fprintf(&b, "  •  📍 %s", evt.Location)
	}
	b.WriteString("\n")
	if evt.DetailURL != "" {
		fmt.Fprintf(&b, "🔗 More: %s\n", evt.DetailURL)
	}

	switch {
	case len(evt.Bouts) > 0:
		b.WriteString("\n**Fight Card**\n")
		writeFightCard(&b, evt.Bouts)
	case evt.Description != "":
		b.WriteString("\n")
		writeDescription(&b, evt.Description)
	}

	return strings.TrimRight(b.String(), "\n")
}

// dateLine prefers the source's own date text: UFCStats prints a bare date
// with no time-of-day, and localizing a date-only timestamp would shift it
// across midnight in western zones. Only feed events, which carry a real
// instant, get localized.
func dateLine(evt event.Event, loc *time.Location) string {
	if evt.DateText != "" {
		return evt.DateText
	}
	if !evt.StartTime.IsZero() {
		return evt.StartTime.In(loc).Format("Monday, January 2, 2006 at 15:04")
	}
	return "TBA"
}

func writeFightCard(b *strings.Builder, bouts []event.Bout) {
	shown := bouts
	if len(shown) > MaxBoutLines {
		shown = shown[:MaxBoutLines]
	}

	// Card order in = card order out, never re-sorted.
	for _, bout := range shown {
		if bout.WeightClass != "" {
			fmt.Fprintf(b, "• %s vs %s  —  *%s*\n", bout.SideA, bout.SideB, bout.WeightClass)
		} else {
			fmt.Fprintf(b, "• %s vs %s\n", bout.SideA, bout.SideB)
		}
	}

	if len(bouts) > MaxBoutLines {
		fmt.Fprintf(b, "…and %d more bouts\n", len(bouts)-MaxBoutLines)
	}
}

// writeDescription reproduces the feed body line for line, skipping blank
// lines. Feeds escape newlines as literal "\n" per RFC 5545, so both forms
// are handled.
func writeDescription(b *strings.Builder, description string) {
	text := strings.ReplaceAll(description, `\n`, "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}
