package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"uv-dashboard/models"
	services "uv-dashboard/service"
)

type ReminderHandler struct {
	reminderService *services.ReminderService
}

func NewReminderHandler(reminderService *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// SetReminder handles POST /v1/reminders
func (h *ReminderHandler) SetReminder(w http.ResponseWriter, r *http.Request) {
	var cfg models.ReminderConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid reminder body")
		return
	}
	status, err := h.reminderService.SetReminder(cfg)
	if errors.Is(err, services.ErrMissingReminderFields) {
		writeError(w, http.StatusUnprocessableEntity, services.REMINDER_INCOMPLETE_PROMPT)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// GetReminder handles GET /v1/reminders
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reminderService.Current())
}
