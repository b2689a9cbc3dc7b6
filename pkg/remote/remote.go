// Package remote issues JSON requests to third-party APIs and maps their
// failures onto the domain remote error kinds.
package remote

import (
	"Go-Pantry-Tracker/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout      = 30 * time.Second
	maxErrorBodyPreview = 256
	userAgent           = "Go-Pantry-Tracker/1.0"
)

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// GetJSON fetches rawURL and decodes a 200 response body into out.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return TransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyPreview))
		return StatusError(resp.StatusCode, resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteMalformed, req.URL.Path, err)
	}
	return nil
}

func TransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", domain.ErrRemoteTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
}

func StatusError(code int, status, body string) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrRemoteNotConfigured, status)
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRemoteRateLimited, status)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, status)
	default:
		return fmt.Errorf("%w: %s - %s", domain.ErrRemoteUnavailable, status, body)
	}
}
