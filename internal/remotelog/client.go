package remotelog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client delivers validated records to the collector over HTTP with bearer
// authorization.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Log validates the record and POSTs it to the collector. Validation
// failures are reported without sending anything; transport failures and
// non-2xx responses come back as errors for the caller to decide on.
func (c *Client) Log(ctx context.Context, stack, level, pkg, message string) error {
	record := Record{
		Stack:   stack,
		Level:   level,
		Package: pkg,
		Message: message,
	}

	if err := record.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal log record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build log request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send log record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("log collector responded with status %d", resp.StatusCode)
	}

	return nil
}
