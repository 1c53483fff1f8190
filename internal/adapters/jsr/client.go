// Package jsr implements the RegistryClient port against a JSR-style registry.
package jsr

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/molt/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

var _ ports.RegistryClient = (*Client)(nil)

// Client fetches registry documents over HTTPS. The registry is immutable
// content, so there is no retry policy here; a failed fetch is terminal for
// the run and re-invoking resolution is the recovery path.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with a default timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(client *http.Client) *Client {
	return &Client{httpClient: client}
}

// FetchBytes retrieves the raw body at url. Any transport error or non-2xx
// status yields domain.ErrFetchFailed annotated with the URL.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		ferr := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(ferr, "cause", err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		ferr := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(ferr, "cause", err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		ferr := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(ferr, "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ferr := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(ferr, "cause", err.Error())
	}

	return body, nil
}
