package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)
	require.Equal(t, start, m.Now())

	m.Advance(90 * time.Second)
	require.Equal(t, start.Add(90*time.Second), m.Now())

	later := start.Add(24 * time.Hour)
	m.Set(later)
	require.Equal(t, later, m.Now())
}

func TestRealClockIsUTC(t *testing.T) {
	now := NewReal().Now()
	require.Equal(t, time.UTC, now.Location())
	require.WithinDuration(t, time.Now(), now, time.Second)
}
