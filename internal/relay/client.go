// internal/relay/client.go
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the relay bot client
type Config struct {
	// BaseURL is the base URL of the bot API
	BaseURL string
	// Token authenticates against the bot API
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// Client posts messages to the external messaging channel. It is a
// plain JSON-over-HTTP client; delivery is best effort and callers
// treat failures as non-fatal.
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new relay client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		config: config,
		client: client,
	}
}

// Enabled reports whether the relay has been configured.
func (c *Client) Enabled() bool {
	return c.config.BaseURL != "" && c.config.Token != ""
}

// SendMessageRequest represents a message delivery request
type SendMessageRequest struct {
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
}

// SendMessageResponse represents a message delivery response
type SendMessageResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SendMessage delivers a text message to the given channel.
func (c *Client) SendMessage(ctx context.Context, channelID, text string) error {
	if !c.Enabled() {
		return errors.New("relay is not configured")
	}
	if channelID == "" || text == "" {
		return errors.New("channel_id and text are required")
	}

	endpoint := fmt.Sprintf("%s/messages", c.config.BaseURL)

	body, err := json.Marshal(SendMessageRequest{ChannelID: channelID, Text: text})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	httpResp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer httpResp.Body.Close()

	var resp SendMessageResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK || !resp.Ok {
		if resp.Error != "" {
			return fmt.Errorf("relay rejected message: %s", resp.Error)
		}
		return fmt.Errorf("relay rejected message: status %d", httpResp.StatusCode)
	}

	return nil
}
