// Package clients has the shared plumbing for the content API clients in its subpackages.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"emperror.dev/errors"
)

// UserAgent is sent with every API request.
const UserAgent = "ebina (https://github.com/tracreed/ebina)"

// ErrNoResults is returned by clients when a lookup matched nothing.
const ErrNoResults = errors.Sentinel("no results found")

// DefaultClient is used by clients that aren't given an *http.Client.
var DefaultClient = &http.Client{Timeout: 15 * time.Second}

// StatusError is a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsStatus returns true if err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Do sends req and decodes the JSON response body into v.
func Do(c *http.Client, req *http.Request, v any) error {
	if c == nil {
		c = DefaultClient
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return errors.Wrap(err, "doing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(b))}
	}

	if v == nil {
		return nil
	}
	return errors.Wrap(json.NewDecoder(resp.Body).Decode(v), "decoding response")
}

// GetJSON is a GET request decoding into v.
func GetJSON(ctx context.Context, c *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	return Do(c, req, v)
}

// PostJSON posts body as JSON and decodes the response into v.
func PostJSON(ctx context.Context, c *http.Client, url string, body, v any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encoding body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	return Do(c, req, v)
}
