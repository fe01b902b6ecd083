// Package supabase provides a minimal client for the REST
// backend-as-a-service used for connectivity probing and schema sync.
// Calls are best-effort request/response round trips: no retries, no
// backoff; failures are returned for the caller to surface.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrBadCredentials is returned when the service rejects the anon key.
var ErrBadCredentials = errors.New("supabase: invalid credentials")

// Client talks to one Supabase project.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// New creates a client for the project at baseURL authenticated by the
// anonymous key.
func New(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Probe checks that the project's REST endpoint is reachable with the
// configured key.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return fmt.Errorf("supabase: build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: probe: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrBadCredentials
	case resp.StatusCode >= 300:
		return fmt.Errorf("supabase: probe: unexpected status %s", resp.Status)
	}
	return nil
}
