package source

import (
	"context"
	"fmt"

	"github.com/mkrogh/ufc-weekly-bot/internal/event"
)

// Source produces upcoming events in chronological order, soonest first.
type Source interface {
	// Upcoming returns the ordered sequence of upcoming events, without
	// bouts. An empty slice means the source listed nothing, which is a
	// valid outcome, not an error.
	Upcoming(ctx context.Context) ([]event.Event, error)

	// FightCard loads the ordered bout list for one event. Sources that
	// carry no bout structure return nil, nil.
	FightCard(ctx context.Context, evt *event.Event) ([]event.Bout, error)
}

// ParseError reports that a payload was present but structurally
// unrecognized, e.g. an expected container was missing. It is distinct from
// both transport failures and the empty-but-valid case: a missing table
// usually means the source changed its markup, and that must not be
// mistaken for "no events scheduled".
type ParseError struct {
	Source string
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %s: %v", e.Source, e.Detail, e.Err)
	}
	return fmt.Sprintf("parsing %s: %s", e.Source, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }
