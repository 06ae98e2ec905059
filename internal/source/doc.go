// Package source turns external event listings into the normalized event
// model.
//
// Two interchangeable variants implement the same contract: UFCStats scrapes
// the public upcoming-events table plus the per-event fight card page, and
// Feed decodes an iCalendar subscription. The variant is selected once from
// configuration and never mixed at runtime.
package source
