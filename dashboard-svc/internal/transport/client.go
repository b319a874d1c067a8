package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HeaderProvider computes the auth and tenant headers for an outbound call.
type HeaderProvider interface {
	AuthHeaders() http.Header
}

type Client struct {
	baseURL string
	client  HTTPClient
	headers HeaderProvider
}

func NewClient(baseURL string, client HTTPClient) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithHeaders returns a copy that attaches the provider's headers to every call.
func (c *Client) WithHeaders(provider HeaderProvider) *Client {
	cp := *c
	cp.headers = provider
	return &cp
}

// Public returns a copy that attaches no auth or tenant headers.
func (c *Client) Public() *Client {
	cp := *c
	cp.headers = nil
	return &cp
}

func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Fetch issues a single request. Caller headers win over computed ones.
func (c *Client) Fetch(ctx context.Context, method, rawURL string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if c.headers != nil {
		for k, v := range c.headers.AuthHeaders() {
			req.Header[k] = v
		}
	}
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// JSON sends body as JSON (when non-nil) to base URL + path and decodes the
// response into out. It reports whether anything was decoded.
func (c *Client) JSON(ctx context.Context, method, path string, query url.Values, body, out any) (bool, error) {
	var (
		reader io.Reader
		header http.Header
	)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
		header = http.Header{"Content-Type": {"application/json"}}
	}

	resp, err := c.Fetch(ctx, method, c.URL(path, query), reader, header)
	if err != nil {
		return false, err
	}
	return Decode(resp, out)
}

// Decode closes the response. Non-2xx statuses become *APIError; an empty or
// malformed 2xx body is not an error and yields false.
func Decode(resp *http.Response, out any) (bool, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, newAPIError(resp.StatusCode, raw)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read body: %w", err)
	}
	if out == nil {
		return false, nil
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		log.Printf("Warning: [TRANSPORT] unparseable %d response from %s: %v", resp.StatusCode, requestURL(resp), err)
		return false, nil
	}
	return true, nil
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return "unknown"
	}
	return resp.Request.URL.Redacted()
}
