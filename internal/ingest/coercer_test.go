package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDateSerialNumbers(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   time.Time
	}{
		{
			name:  "serial one is the last day of 1899",
			input: float64(1),
			want:  time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unix epoch boundary",
			input: float64(25569),
			want:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "fractional serial keeps the time of day",
			input: 25569.5,
			want:  time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "integer input",
			input: 25570,
			want:  time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "numeric string from a raw worksheet read",
			input: "25569",
			want:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "out of range serial still produces a date",
			input: float64(-1000000),
			want:  time.UnixMilli(int64(-1000000-25569) * 86400 * 1000).UTC(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceDate(tt.input)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.want), "want %v, got %v", tt.want, got)
		})
	}
}

func TestCoerceDatePassthrough(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	got := CoerceDate(now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))

	got = CoerceDate(&now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))
}

func TestCoerceDateStrings(t *testing.T) {
	got := CoerceDate("2024-03-15")
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())

	assert.Nil(t, CoerceDate("not a date"))
	assert.Nil(t, CoerceDate(""))
	assert.Nil(t, CoerceDate("   "))
}

func TestCoerceDateUnsupportedTypes(t *testing.T) {
	assert.Nil(t, CoerceDate(nil))
	assert.Nil(t, CoerceDate(true))
	assert.Nil(t, CoerceDate(false))
	assert.Nil(t, CoerceDate(struct{}{}))
	assert.Nil(t, CoerceDate(map[string]string{"a": "b"}))
}
