package models

// ReminderConfig holds the raw values of the reminder form.
type ReminderConfig struct {
	FirstApplication string `json:"first_application"`
	Interval         string `json:"interval"`
	EndTime          string `json:"end_time"`
}

// ReminderStatus is shown after a reminder has been set. Nothing is scheduled.
type ReminderStatus struct {
	Config       ReminderConfig `json:"config"`
	NextLabel    string         `json:"next_application"`
	Confirmation string         `json:"confirmation"`
}
