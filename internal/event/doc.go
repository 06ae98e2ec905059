// Package event provides the data model for UFC events and their bouts.
//
// An Event is one upcoming card with a start time, location, and the ordered
// fight card scraped or decoded from the source. The package also resolves
// "the next upcoming event" from an already-ordered sequence and parses the
// free-text date strings UFCStats publishes.
package event
