// Package notifier delivers the rendered weekly message to its
// destinations.
//
// The primary destination is a Discord channel; an optional Twitter mirror
// cross-posts a truncated copy. A dry-run implementation prints instead of
// sending so the message can be previewed locally.
package notifier
