package notifier

import (
	"context"
	"fmt"

	"github.com/mkrogh/ufc-weekly-bot/internal/discord"
)

// DiscordNotifier posts messages to a Discord channel.
type DiscordNotifier struct {
	client *discord.Client
}

// NewDiscordNotifier creates a Discord notifier for the given bot token and
// channel.
func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	client, err := discord.NewClient(botToken, channelID)
	if err != nil {
		return nil, fmt.Errorf("creating discord client: %w", err)
	}
	return &DiscordNotifier{client: client}, nil
}

// Notify sends the message to the configured channel.
func (n *DiscordNotifier) Notify(ctx context.Context, text string) error {
	return n.client.SendMessage(ctx, text)
}
