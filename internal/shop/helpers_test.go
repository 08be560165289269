package shop_test

import (
	"net/http/httptest"
	"testing"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
	"github.com/stretchr/testify/require"
)

// newTestScraper wires a scraper against a fake site, without the
// politeness delay so tests run at full speed.
func newTestScraper(t *testing.T, ts *httptest.Server, opts shop.Options) *shop.Scraper {
	t.Helper()
	client, err := shop.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return shop.NewScraper(client, opts, nil)
}
