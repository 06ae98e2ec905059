package notifier

import (
	"context"
	"fmt"
	"os"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
)

// tweetLimit is Twitter's hard message length ceiling.
const tweetLimit = 280

// TwitterNotifier mirrors the weekly post to Twitter, truncated to the
// platform limit.
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterNotifier{client: twitter.NewClient(httpClient)}, nil
}

// Notify posts the message as a single tweet.
func (n *TwitterNotifier) Notify(ctx context.Context, text string) error {
	tweet := truncateTweet(text)

	_, _, err := n.client.Statuses.Update(tweet, nil)
	if err != nil {
		return fmt.Errorf("posting tweet: %w", err)
	}
	return nil
}

// truncateTweet cuts the text to the tweet limit, ending with an ellipsis
// when anything was dropped.
func truncateTweet(text string) string {
	runes := []rune(text)
	if len(runes) <= tweetLimit {
		return text
	}
	return string(runes[:tweetLimit-1]) + "…"
}
