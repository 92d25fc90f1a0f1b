package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestTimeout = 10 * time.Second

// Client is a small JSON client over one API base URL. All transport
// failures come back as *Error.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

func New(base string, log zerolog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}
}

// GetJSON issues GET base+path and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON issues POST base+path with a JSON body and decodes the response
// body into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnexpected, Message: fmt.Sprintf("encode body: %v", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &Error{Kind: KindUnexpected, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("request_id", requestID).Str("method", method).Str("path", path).Err(err).Msg("api request failed")
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return badStatus(resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindUnexpected, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func mapTransportError(err error) *Error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &Error{Kind: KindNetwork}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &Error{Kind: KindNetwork}
	}
	return &Error{Kind: KindUnexpected, Message: err.Error()}
}

func httpStatusMessage(status int) string {
	return fmt.Sprintf("HTTP %d", status)
}
