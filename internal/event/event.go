package event

import "time"

// DefaultTitle is used when a source row carries no readable event name.
const DefaultTitle = "UFC Event"

// Event represents one upcoming UFC card.
type Event struct {
	Title string `json:"title"`

	// DateText is the date exactly as the source printed it. StartTime is
	// the structured equivalent and is the zero value when the source gave
	// no parseable timestamp; callers must check IsZero before localizing.
	DateText  string    `json:"date_text,omitempty"`
	StartTime time.Time `json:"start_time,omitempty"`

	Location  string `json:"location,omitempty"`
	DetailURL string `json:"detail_url,omitempty"`

	// Description carries the free-text body from calendar-feed sources.
	// Tabular sources leave it empty and populate Bouts instead.
	Description string `json:"description,omitempty"`

	// Bouts is in card order, top of the page first. Order is preserved
	// from the source and never re-sorted.
	Bouts []Bout `json:"bouts,omitempty"`
}

// Bout is one scheduled pairing within an event.
type Bout struct {
	WeightClass string `json:"weight_class,omitempty"`
	SideA       string `json:"side_a"`
	SideB       string `json:"side_b"`
}

// New creates an Event, substituting DefaultTitle for an empty title.
func New(title, dateText, location, detailURL string) Event {
	if title == "" {
		title = DefaultTitle
	}
	return Event{
		Title:     title,
		DateText:  dateText,
		StartTime: ParseDate(dateText),
		Location:  location,
		DetailURL: detailURL,
	}
}
