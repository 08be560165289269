package jsonblob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanMixedContent(t *testing.T) {
	got := Scan(`prefix {"a":1} middle [1,2] suffix`)

	require.Len(t, got, 2)
	assert.Equal(t, map[string]any{"a": float64(1)}, got[0])
	assert.Equal(t, []any{float64(1), float64(2)}, got[1])
}

func TestScanNoJSON(t *testing.T) {
	assert.Empty(t, Scan("<html><body>plain markup, no data</body></html>"))
	assert.Empty(t, Scan(""))
}

func TestScanNestedObjectConsumedWhole(t *testing.T) {
	got := Scan(`{"a":{"b":1}} tail`)

	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": float64(1)}}, got[0])
}

func TestScanUnbalancedOuterFindsInner(t *testing.T) {
	// The truncated outer object fails to decode; the scan advances one
	// character at a time and still recovers the balanced inner literal.
	got := Scan(`{"a": {"b": 1}`)

	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{"b": float64(1)}, got[0])
}

func TestScanScriptTag(t *testing.T) {
	html := `<script>window.__STATE__ = {"reviews":[{"date":"2023-01-05","text":"solid"}]};</script>`

	got := Scan(html)

	require.Len(t, got, 1)
	obj, ok := got[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "reviews")
}
