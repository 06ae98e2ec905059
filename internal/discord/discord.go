// Package discord is a minimal Discord REST client covering the one call
// this bot needs: creating a message in a channel.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	apiBaseURL = "https://discord.com/api/v10"
	timeout    = 10 * time.Second
)

// Client represents a Discord bot API client bound to one channel.
type Client struct {
	botToken   string
	channelID  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Discord client.
func NewClient(botToken, channelID string) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	return &Client{
		botToken:  botToken,
		channelID: channelID,
		baseURL:   apiBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SendMessage posts a text message to the configured channel.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	url := fmt.Sprintf("%s/channels/%s/messages", c.baseURL, c.channelID)

	payload := map[string]interface{}{
		"content": text,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.botToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("discord API error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
