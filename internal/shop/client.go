package shop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/httputil"
)

// Client issues GET requests against the target site with one persistent
// set of session headers. It has two call modes: Fetch (probing — any HTTP
// status is handed back to the caller) and FetchStrict (non-2xx is an
// error). There is no retry in either mode.
type Client struct {
	base    *url.URL
	httpc   *http.Client
	headers http.Header
}

func NewClient(base string, httpc *http.Client) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", base)
	}
	return &Client{
		base:    u,
		httpc:   httpc,
		headers: httputil.SessionHeaders(),
	}, nil
}

// BaseURL returns the configured site base.
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.base.String(), "/")
}

// Origin returns scheme://host of the target site.
func (c *Client) Origin() string {
	return c.base.Scheme + "://" + c.base.Host
}

// Resolve joins a possibly-relative href against the site base. Absolute
// URLs pass through unchanged.
func (c *Client) Resolve(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return c.base.ResolveReference(ref).String()
}

// Fetch issues a probing GET: the body and status are returned for any
// HTTP response, and only transport-level failures produce an error.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values, extra http.Header) (string, int, error) {
	target := c.Resolve(path)
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", 0, fmt.Errorf("build request for %s: %w", target, err)
	}
	for key, vals := range c.headers {
		req.Header[key] = vals
	}
	for key, vals := range extra {
		req.Header[key] = vals
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read %s: %w", target, err)
	}
	return string(body), resp.StatusCode, nil
}

// FetchStrict issues a strict GET: any non-2xx status is a fatal error for
// the call.
func (c *Client) FetchStrict(ctx context.Context, path string, params url.Values, extra http.Header) (string, error) {
	body, status, err := c.Fetch(ctx, path, params, extra)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("get %s: unexpected status %d", path, status)
	}
	return body, nil
}
