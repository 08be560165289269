package stealth

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// PolitenessTransport is an http.RoundTripper that applies the politeness
// pipeline before every request:
// Fingerprint fill-in → RobotsCheck → RateLimiter → Delay → Send
//
// It never overrides headers the session has already set; the run keeps one
// persistent identity across all requests.
type PolitenessTransport struct {
	Base        http.RoundTripper
	Robots      *RobotsChecker
	Fingerprint *Fingerprint
	Proxy       ProxyProvider
	Delay       *HumanDelay
	RateLimiter *rate.Limiter
}

func (t *PolitenessTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Fingerprint != nil {
		if req.Header.Get("User-Agent") == "" {
			req.Header.Set("User-Agent", t.Fingerprint.UserAgent)
		}
		for key, vals := range t.Fingerprint.Headers {
			if req.Header.Get(key) == "" {
				for _, v := range vals {
					req.Header.Add(key, v)
				}
			}
		}
	}

	if t.Robots != nil {
		allowed, err := t.Robots.IsAllowed(req.Header.Get("User-Agent"), req.URL.String())
		if err == nil && !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", req.URL.Path)
		}
	}

	if t.RateLimiter != nil {
		if err := t.RateLimiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	if t.Delay != nil {
		if err := t.Delay.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("delay: %w", err)
		}
	}

	transport := t.Base
	if t.Proxy != nil {
		transport = t.Proxy.Transport()
	}
	if transport == nil {
		transport = http.DefaultTransport
	}

	return transport.RoundTrip(req)
}
