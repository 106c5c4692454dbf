package arcade

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const registrationCountPath = "/api/registrations/count"

// CountClient reads the registration count from the club API.
type CountClient struct {
	baseURL string
	client  *http.Client
}

// NewCountClient targets the club web server at baseURL.
func NewCountClient(baseURL string) *CountClient {
	return &CountClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client: &http.Client{
			Timeout:   timeouts.CountFetch,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type countEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   *int   `json:"count"`
}

// Fetch performs one request. There is no retry; callers surface failures.
func (c *CountClient) Fetch(ctx context.Context) (int, error) {
	if c == nil || c.baseURL == "" {
		return 0, errors.New("count api url is required")
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.CountFetch)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+registrationCountPath, nil)
	if err != nil {
		return 0, fmt.Errorf("build count request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch registration count: %w", err)
	}
	defer resp.Body.Close()

	var body countEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode registration count: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !body.Success || body.Count == nil {
		return 0, fmt.Errorf("registration count unavailable: status=%d message=%q", resp.StatusCode, body.Message)
	}
	return *body.Count, nil
}
