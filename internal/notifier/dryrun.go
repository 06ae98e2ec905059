package notifier

import (
	"context"
	"fmt"
)

// DryRunNotifier prints what would be sent without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the message that would be posted
func (n *DryRunNotifier) Notify(ctx context.Context, text string) error {
	fmt.Println("--- Message ---")
	fmt.Println(text)
	fmt.Printf("\n(Length: %d characters)\n", len(text))
	return nil
}
