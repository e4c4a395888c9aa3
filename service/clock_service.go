package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// FormatClock renders t like "October 15, 2026 • 3:04 PM".
func FormatClock(t time.Time) string {
	return t.Format("January 2, 2006") + " • " + t.Format("3:04 PM")
}

// ClockService keeps the dashboard clock label fresh.
type ClockService struct {
	mu       sync.RWMutex
	label    string
	location *time.Location
	now      func() time.Time
}

// NewClockService formats times in loc; nil means time.Local.
func NewClockService(loc *time.Location) *ClockService {
	if loc == nil {
		loc = time.Local
	}
	cs := &ClockService{location: loc, now: time.Now}
	cs.Refresh()
	return cs
}

// Refresh recomputes the label from the wall clock.
func (cs *ClockService) Refresh() {
	label := FormatClock(cs.now().In(cs.location))
	cs.mu.Lock()
	cs.label = label
	cs.mu.Unlock()
}

// Label returns the last computed label.
func (cs *ClockService) Label() string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.label
}

// StartPeriodicJob refreshes the label every interval until ctx is done.
func (cs *ClockService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go cs.startPeriodicJob(ctx, interval)
}

func (cs *ClockService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[ClockService] Stopping clock job.")
			return
		case <-ticker.C:
			cs.Refresh()
		}
	}
}
