package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"contactform/internal/form"
)

// Sender delivers a validated submission to the backend endpoint.
type Sender interface {
	Send(ctx context.Context, in form.Input) error
}

// HTTPSender posts submissions as JSON to a configured endpoint.
type HTTPSender struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSender creates a sender for the given endpoint URL
func NewHTTPSender(endpoint string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send issues a single POST with the JSON-encoded submission. Any 2xx status
// counts as success; the response body is never consumed.
func (s *HTTPSender) Send(ctx context.Context, in form.Input) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
