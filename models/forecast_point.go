package models

import "time"

// ForecastPoint is one hourly sample of the synthetic forecast series.
type ForecastPoint struct {
	Time time.Time `json:"uv_time"`
	UV   float64   `json:"uv"`
}
