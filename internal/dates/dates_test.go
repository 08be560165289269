package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpochScales(t *testing.T) {
	sec, ok := Parse(float64(1672531200))
	require.True(t, ok)
	milli, ok := Parse(float64(1672531200000))
	require.True(t, ok)

	assert.True(t, sec.Equal(milli), "second and millisecond epochs must agree")
	assert.Equal(t, "2023-01-01T00:00:00Z", sec.Format(time.RFC3339))
}

func TestParseFreeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"iso date", "2023-05-14", "2023-05-14T00:00:00Z", true},
		{"iso datetime with zone", "2023-05-14T10:30:00+02:00", "2023-05-14T08:30:00Z", true},
		{"zoneless assumes utc", "2023-05-14 10:30:00", "2023-05-14T10:30:00Z", true},
		{"not a date", "not a date", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.UTC().Format(time.RFC3339))
			}
		})
	}
}

func TestParseUnsupportedValues(t *testing.T) {
	for _, v := range []any{nil, map[string]any{}, []any{"2023-01-01"}} {
		_, ok := Parse(v)
		assert.False(t, ok, "%#v must not parse", v)
	}
}

func TestRestrictToYear(t *testing.T) {
	in2023 := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	in2022 := time.Date(2022, 12, 31, 23, 59, 59, 0, time.UTC)

	got, ok := RestrictToYear(in2023, 2023)
	require.True(t, ok)
	assert.Equal(t, in2023, got)

	_, ok = RestrictToYear(in2022, 2023)
	assert.False(t, ok, "an off-year instant is discarded, never re-labeled")
}
