package notifier

import "context"

// Notifier defines the interface for delivering a rendered message to a
// destination channel.
type Notifier interface {
	// Notify delivers one message.
	Notify(ctx context.Context, text string) error
}
