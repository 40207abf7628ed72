package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single upstream call.
const DefaultTimeout = 3 * time.Second

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 512

type httpGetter struct {
	service string
	baseURL string
	client  *http.Client
}

func newGetter(service, baseURL string, timeout time.Duration) httpGetter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return httpGetter{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// getJSON fetches path with query and decodes a 2xx body into out.
func (g httpGetter) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", g.service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do request: %w", g.service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Service: g.service, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", g.service, err)
	}
	return nil
}
