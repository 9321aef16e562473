// Package companion is the HTTP client for the AI companion service,
// which generates chat replies and community icebreaker prompts. The
// service is a separate deployment; this package only speaks its JSON
// API and translates failures into apperror values the handlers can map.
package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sakif/wellverse/internal/apperror"
)

// DefaultIcebreakerCount is used when the caller does not ask for a
// specific number of starter messages.
const DefaultIcebreakerCount = 3

// Client talks to the companion service at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the service at baseURL. A nil httpClient
// gets a default with a 30 second timeout; generation can be slow.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type replyRequest struct {
	UserInput string `json:"userInput"`
}

type replyResponse struct {
	Response string `json:"response"`
}

// Reply sends the user's message and returns the companion's response.
func (c *Client) Reply(ctx context.Context, userInput string) (string, error) {
	var out replyResponse
	if err := c.post(ctx, "/reply", replyRequest{UserInput: userInput}, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

type icebreakersRequest struct {
	Topic       string `json:"topic"`
	NumMessages int    `json:"numMessages"`
}

type icebreakersResponse struct {
	Messages []string `json:"messages"`
}

// Icebreakers returns count conversation starters for the topic.
// count values below one fall back to DefaultIcebreakerCount.
func (c *Client) Icebreakers(ctx context.Context, topic string, count int) ([]string, error) {
	if count < 1 {
		count = DefaultIcebreakerCount
	}
	var out icebreakersResponse
	if err := c.post(ctx, "/icebreakers", icebreakersRequest{Topic: topic, NumMessages: count}, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("companion: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("companion: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.RemoteUnavailable("companion")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperror.RemoteUnavailable("companion")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.RemoteUnavailable("companion")
	}
	return nil
}
