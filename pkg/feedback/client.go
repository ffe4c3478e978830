package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client submits feedback to the persistence endpoint over HTTP.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a submitter posting to the given endpoint URL
// (typically http://host:port/api/feedback).
func NewClient(url string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type submission struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Submit posts the draft and decodes the acknowledgment.
func (c *Client) Submit(ctx context.Context, rating int, comment string) (Ack, error) {
	body, err := json.Marshal(submission{Rating: rating, Comment: comment})
	if err != nil {
		return Ack{}, fmt.Errorf("marshaling feedback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		return Ack{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Ack{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Ack{}, fmt.Errorf("feedback endpoint returned status %d", resp.StatusCode)
	}

	var ack Ack
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return Ack{}, fmt.Errorf("decoding acknowledgment: %w", err)
	}
	return ack, nil
}
