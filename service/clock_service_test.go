package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "October 15, 2026 • 3:04 PM", FormatClock(time.Date(2026, 10, 15, 15, 4, 0, 0, time.UTC)))
	assert.Equal(t, "January 1, 2027 • 12:00 AM", FormatClock(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestClockService_PeriodicJob(t *testing.T) {
	cs := NewClockService(time.UTC)
	var minutes atomic.Int64
	base := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	cs.now = func() time.Time { return base.Add(time.Duration(minutes.Add(1)) * time.Minute) }
	cs.Refresh()
	assert.Equal(t, "October 15, 2026 • 9:01 AM", cs.Label())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cs.StartPeriodicJob(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return cs.Label() != "October 15, 2026 • 9:01 AM"
	}, time.Second, 5*time.Millisecond)
}
