package shop_test

import (
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRejectsRelativeBase(t *testing.T) {
	_, err := shop.NewClient("relative/path", http.DefaultClient)
	require.Error(t, err)
}

func TestFetchProbingReturnsAnyStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "gone")
	}))
	defer ts.Close()

	client, err := shop.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	body, status, err := client.Fetch(context.Background(), "/missing", nil, nil)
	require.NoError(t, err, "probing mode never treats an HTTP status as a failure")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "gone", body)
}

func TestFetchStrictRejectsNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, err := shop.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	_, err = client.FetchStrict(context.Background(), "/broken", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestFetchSendsSessionHeaders(t *testing.T) {
	var ua, accept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		accept = r.Header.Get("Accept")
	}))
	defer ts.Close()

	client, err := shop.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	_, _, err = client.Fetch(context.Background(), "/", nil, nil)
	require.NoError(t, err)
	assert.Contains(t, ua, "Mozilla/5.0")
	assert.Contains(t, accept, "text/html")
}

func TestFetchDecompressesGzip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		fmt.Fprint(gz, "compressed payload")
		gz.Close()
	}))
	defer ts.Close()

	client, err := shop.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	body, status, err := client.Fetch(context.Background(), "/gz", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "compressed payload", body)
}

func TestResolve(t *testing.T) {
	client, err := shop.NewClient("https://shop.example", http.DefaultClient)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example/product/5", client.Resolve("/product/5"))
	assert.Equal(t, "https://other.example/x", client.Resolve("https://other.example/x"))
	assert.Equal(t, "https://shop.example", client.BaseURL())
	assert.Equal(t, "https://shop.example", client.Origin())
}
