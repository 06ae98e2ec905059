package event

import "time"

// dateLayouts are the formats UFCStats has been observed to print in its
// upcoming-events table, most common first.
var dateLayouts = []string{
	"January 02, 2006",
	"January 2, 2006",
	"Jan 02, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// ParseDate attempts to parse source date text into a time.Time.
// Returns time.Time{} (zero value) if parsing fails, so callers can fall
// back to rendering the raw text verbatim.
func ParseDate(dateText string) time.Time {
	if dateText == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateText); err == nil {
			return t
		}
	}
	return time.Time{}
}
