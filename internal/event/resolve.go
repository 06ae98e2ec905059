package event

import "errors"

// ErrNoUpcomingEvent reports that a source parsed cleanly but listed no
// future events. It is a normal outcome, deliberately distinct from the
// parse and transport error types, and callers render it as its own
// user-visible message.
var ErrNoUpcomingEvent = errors.New("no upcoming event found")

// NextUpcoming returns the next event from a sequence that is already in
// chronological order (both sources guarantee this: UFCStats lists soonest
// first, and the feed parser sorts ascending after filtering).
func NextUpcoming(events []Event) (Event, error) {
	if len(events) == 0 {
		return Event{}, ErrNoUpcomingEvent
	}
	return events[0], nil
}
