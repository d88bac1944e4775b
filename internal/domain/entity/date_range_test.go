package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateTimeRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	r, err := NewDateTimeRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, start, r.Start())
	assert.Equal(t, end, r.End())

	_, err = NewDateTimeRange(start, start)
	assert.NoError(t, err, "a zero-length window is valid")
}

func TestNewDateTimeRange_StartAfterEnd(t *testing.T) {
	start := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Second)

	_, err := NewDateTimeRange(start, end)
	require.Error(t, err)
	assert.Equal(t, "start_date must be before end_date", err.Error())
}

func TestDateTimeRange_Contains(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	r, err := NewDateTimeRange(start, end)
	require.NoError(t, err)

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.True(t, r.Contains(start.Add(time.Hour)))
	assert.False(t, r.Contains(end.Add(time.Nanosecond)))
	assert.False(t, r.Contains(start.Add(-time.Nanosecond)))
}

func TestLastDays(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	r := LastDays(now, 30)
	assert.Equal(t, now, r.End())
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), r.Start())
}
