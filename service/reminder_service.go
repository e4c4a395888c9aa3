package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"uv-dashboard/models"
)

const REMINDER_CONFIRMATION = "Reminder set successfully!"

// NextApplicationLabel is two hours after t, capped at 23h, as "H:MM".
func NextApplicationLabel(t time.Time) string {
	next := t.Hour() + 2
	if next > 23 {
		next = 23
	}
	return fmt.Sprintf("%d:%02d", next, t.Minute())
}

// ReminderService validates reminder settings and computes the label shown for them.
type ReminderService struct {
	mu       sync.Mutex
	location *time.Location
	status   *models.ReminderStatus
	now      func() time.Time
}

// NewReminderService computes labels in loc; nil means time.Local.
func NewReminderService(loc *time.Location) *ReminderService {
	if loc == nil {
		loc = time.Local
	}
	return &ReminderService{location: loc, now: time.Now}
}

// SetReminder requires first application and end times; the interval is informational.
func (rs *ReminderService) SetReminder(cfg models.ReminderConfig) (*models.ReminderStatus, error) {
	cfg.FirstApplication = strings.TrimSpace(cfg.FirstApplication)
	cfg.EndTime = strings.TrimSpace(cfg.EndTime)
	if cfg.FirstApplication == "" || cfg.EndTime == "" {
		return nil, ErrMissingReminderFields
	}

	status := &models.ReminderStatus{
		Config:       cfg,
		NextLabel:    NextApplicationLabel(rs.now().In(rs.location)),
		Confirmation: REMINDER_CONFIRMATION,
	}

	rs.mu.Lock()
	rs.status = status
	rs.mu.Unlock()

	log.Printf("[ReminderService] Reminder set, next application at %s", status.NextLabel)
	out := *status
	return &out, nil
}

// Current returns the last reminder set, or nil.
func (rs *ReminderService) Current() *models.ReminderStatus {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.status == nil {
		return nil
	}
	out := *rs.status
	return &out
}
