package services

import (
	"testing"
	"time"

	"uv-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextApplicationLabel(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2026, 10, 15, h, m, 0, 0, time.UTC) }

	assert.Equal(t, "11:05", NextApplicationLabel(day(9, 5)))
	assert.Equal(t, "2:30", NextApplicationLabel(day(0, 30)))
	assert.Equal(t, "23:00", NextApplicationLabel(day(21, 0)))
	assert.Equal(t, "23:59", NextApplicationLabel(day(22, 59)))
	assert.Equal(t, "23:10", NextApplicationLabel(day(23, 10)))
}

func TestReminderService_SetReminder(t *testing.T) {
	rs := NewReminderService(time.UTC)
	rs.now = func() time.Time { return time.Date(2026, 10, 15, 13, 7, 0, 0, time.UTC) }

	status, err := rs.SetReminder(models.ReminderConfig{FirstApplication: "08:00", Interval: "2", EndTime: "18:00"})

	require.NoError(t, err)
	assert.Equal(t, "15:07", status.NextLabel)
	assert.Equal(t, REMINDER_CONFIRMATION, status.Confirmation)
	assert.Equal(t, status, rs.Current())
}

func TestReminderService_UsesConfiguredLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	rs := NewReminderService(ist)
	// 06:22 IST
	rs.now = func() time.Time { return time.Date(2026, 10, 15, 0, 52, 0, 0, time.UTC) }

	status, err := rs.SetReminder(models.ReminderConfig{FirstApplication: "08:00", EndTime: "18:00"})

	require.NoError(t, err)
	assert.Equal(t, "8:22", status.NextLabel)
}

func TestReminderService_MissingFields(t *testing.T) {
	rs := NewReminderService(time.UTC)

	for _, cfg := range []models.ReminderConfig{
		{FirstApplication: "", EndTime: "18:00"},
		{FirstApplication: "08:00", EndTime: "  "},
		{},
	} {
		status, err := rs.SetReminder(cfg)
		assert.ErrorIs(t, err, ErrMissingReminderFields)
		assert.Nil(t, status)
	}
	assert.Nil(t, rs.Current())
}
