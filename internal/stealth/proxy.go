package stealth

import (
	"net/http"
	"net/url"
	"sync"
)

// ProxyProvider abstracts an egress route.
type ProxyProvider interface {
	Transport() http.RoundTripper
	Name() string
}

// DirectProvider routes traffic directly (no proxy).
type DirectProvider struct {
	Base http.RoundTripper
}

func (d *DirectProvider) Transport() http.RoundTripper { return d.Base }
func (d *DirectProvider) Name() string                 { return "direct" }

// StaticProvider routes all traffic through a single fixed proxy URL.
// Keep-alives stay enabled: the target sees one consistent client.
type StaticProvider struct {
	URL *url.URL

	transport http.RoundTripper
	once      sync.Once
}

// NewStaticProvider parses rawURL into a provider; returns nil when the
// URL is empty or unparseable, so callers can fall back to direct routing.
func NewStaticProvider(rawURL string) *StaticProvider {
	if rawURL == "" {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return &StaticProvider{URL: u}
}

func (s *StaticProvider) Name() string { return "static" }

func (s *StaticProvider) Transport() http.RoundTripper {
	s.once.Do(func() {
		s.transport = &http.Transport{
			Proxy: http.ProxyURL(s.URL),
		}
	})
	return s.transport
}
